// Package journal is the append-only audit trail of accepted requests:
// CRC-framed binary records in size- and age-rotated segment files.
// It is write-side infrastructure only; the engine never replays it.
package journal

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

var ErrCorruptRecord = errors.New("journal: corrupt record")

type Config struct {
	Dir             string
	SegmentSize     int64
	SegmentDuration time.Duration
}

type Journal struct {
	dir             string
	segmentSize     int64
	segmentDuration time.Duration

	current      *segment
	nextIndex    int
	lastRotation time.Time
}

func Open(cfg Config) (*Journal, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	paths, err := segmentPaths(cfg.Dir)
	if err != nil {
		return nil, err
	}
	index := len(paths)

	seg, err := openSegment(cfg.Dir, index)
	if err != nil {
		return nil, err
	}

	return &Journal{
		dir:             cfg.Dir,
		segmentSize:     cfg.SegmentSize,
		segmentDuration: cfg.SegmentDuration,
		current:         seg,
		nextIndex:       index,
		lastRotation:    time.Now(),
	}, nil
}

// frame: [payloadLen u32][crc u32][type u8][seq u64][time i64][payload]
const frameHeader = 4 + 4 + 1 + 8 + 8

func encodeFrame(r *Record) []byte {
	buf := make([]byte, frameHeader+len(r.Data))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(r.Data)))
	buf[8] = byte(r.Type)
	binary.BigEndian.PutUint64(buf[9:17], r.Seq)
	binary.BigEndian.PutUint64(buf[17:25], uint64(r.Time))
	copy(buf[25:], r.Data)
	binary.BigEndian.PutUint32(buf[4:8], crc32.ChecksumIEEE(buf[8:]))
	return buf
}

func (j *Journal) Append(r *Record) error {
	if err := j.current.append(encodeFrame(r)); err != nil {
		return err
	}
	if j.shouldRotate() {
		return j.rotate()
	}
	return nil
}

func (j *Journal) Sync() error {
	return j.current.sync()
}

func (j *Journal) Close() error {
	return j.current.close()
}

func (j *Journal) shouldRotate() bool {
	return j.current.offset >= j.segmentSize ||
		time.Since(j.lastRotation) >= j.segmentDuration
}

func (j *Journal) rotate() error {
	if err := j.current.close(); err != nil {
		return err
	}
	j.nextIndex++

	seg, err := openSegment(j.dir, j.nextIndex)
	if err != nil {
		return err
	}
	j.current = seg
	j.lastRotation = time.Now()
	return nil
}

// Scan visits every record across all segments in append order. Used
// by audit tooling, not the engine.
func Scan(dir string, fn func(*Record) error) error {
	paths, err := segmentPaths(dir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := scanFile(path, fn); err != nil {
			return err
		}
	}
	return nil
}

func scanFile(path string, fn func(*Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header := make([]byte, frameHeader)
	for {
		if _, err := io.ReadFull(f, header[:8]); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		payloadLen := binary.BigEndian.Uint32(header[0:4])
		sum := binary.BigEndian.Uint32(header[4:8])

		body := make([]byte, frameHeader-8+int(payloadLen))
		if _, err := io.ReadFull(f, body); err != nil {
			return ErrCorruptRecord
		}
		if crc32.ChecksumIEEE(body) != sum {
			return ErrCorruptRecord
		}

		rec := &Record{
			Type: RecordType(body[0]),
			Seq:  binary.BigEndian.Uint64(body[1:9]),
			Time: int64(binary.BigEndian.Uint64(body[9:17])),
			Data: body[17:],
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

func segmentPaths(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "segment-*.journal"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
