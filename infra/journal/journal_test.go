package journal

import (
	"testing"
	"time"
)

func openTestJournal(t *testing.T, dir string) *Journal {
	t.Helper()
	j, err := Open(Config{
		Dir:             dir,
		SegmentSize:     1 << 20,
		SegmentDuration: time.Hour,
	})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	return j
}

func TestAppendAndScanRoundTrip(t *testing.T) {
	dir := t.TempDir()
	j := openTestJournal(t, dir)

	records := []*Record{
		NewRecord(RecordEnter, 1, []byte(`{"order":1}`)),
		NewRecord(RecordUpdate, 2, []byte(`{"order":1,"qty":5}`)),
		NewRecord(RecordDelete, 3, nil),
	}
	for _, r := range records {
		if err := j.Append(r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := j.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	var got []*Record
	if err := Scan(dir, func(r *Record) error {
		got = append(got, r)
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(got) != len(records) {
		t.Fatalf("scanned %d records, want %d", len(got), len(records))
	}
	for i, r := range records {
		if got[i].Type != r.Type || got[i].Seq != r.Seq || string(got[i].Data) != string(r.Data) {
			t.Errorf("record %d = %+v, want %+v", i, got[i], r)
		}
	}
}

func TestRotationBySize(t *testing.T) {
	dir := t.TempDir()
	j, err := Open(Config{
		Dir:             dir,
		SegmentSize:     64,
		SegmentDuration: time.Hour,
	})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}

	payload := make([]byte, 128)
	for i := uint64(1); i <= 3; i++ {
		if err := j.Append(NewRecord(RecordEnter, i, payload)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	j.Close()

	paths, err := segmentPaths(dir)
	if err != nil {
		t.Fatalf("segment paths: %v", err)
	}
	if len(paths) < 3 {
		t.Errorf("got %d segments, want at least 3", len(paths))
	}

	var count int
	if err := Scan(dir, func(*Record) error {
		count++
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if count != 3 {
		t.Errorf("scanned %d records, want 3", count)
	}
}

func TestReopenContinuesNewSegment(t *testing.T) {
	dir := t.TempDir()
	j := openTestJournal(t, dir)
	if err := j.Append(NewRecord(RecordEnter, 1, []byte("a"))); err != nil {
		t.Fatalf("append: %v", err)
	}
	j.Close()

	j2 := openTestJournal(t, dir)
	if err := j2.Append(NewRecord(RecordEnter, 2, []byte("b"))); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	j2.Close()

	var seqs []uint64
	if err := Scan(dir, func(r *Record) error {
		seqs = append(seqs, r.Seq)
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 2 {
		t.Errorf("seqs = %v, want [1 2]", seqs)
	}
}
