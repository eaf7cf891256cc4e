package outbox

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type EventState uint8

const (
	StateNew EventState = iota
	StateSent
	StateAcked
	StateFailed
)

func (s EventState) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Event --------------------

// TradeEvent is the durable fact a trade leaves behind for downstream
// consumers. Seq is assigned by the engine and doubles as the outbox key.
type TradeEvent struct {
	Seq      uint64 `json:"seq"`
	Symbol   string `json:"symbol"`
	Price    uint64 `json:"price"`
	Quantity uint64 `json:"quantity"`
	BuyID    uint64 `json:"buy_id"`
	SellID   uint64 `json:"sell_id"`
	At       int64  `json:"at"`
}

type Entry struct {
	State       EventState
	Retries     uint32
	LastAttempt int64
	Event       TradeEvent
}

// value encoding: [state:1][retries:4][lastAttempt:8][payload:json]
func encodeEntry(e Entry) ([]byte, error) {
	payload, err := json.Marshal(e.Event)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 13+len(payload))
	buf[0] = byte(e.State)
	binary.BigEndian.PutUint32(buf[1:5], e.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(e.LastAttempt))
	copy(buf[13:], payload)
	return buf, nil
}

func decodeEntry(b []byte) (Entry, error) {
	if len(b) < 13 {
		return Entry{}, errors.New("invalid outbox entry length")
	}
	e := Entry{
		State:       EventState(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
	}
	if err := json.Unmarshal(b[13:], &e.Event); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// -------------------- Outbox --------------------

type Outbox struct {
	db *pebble.DB
}

func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// -------------------- API --------------------

// Put inserts a new trade event, keyed by its sequence number.
func (o *Outbox) Put(ev TradeEvent) error {
	val, err := encodeEntry(Entry{State: StateNew, Event: ev})
	if err != nil {
		return err
	}
	return o.db.Set(keyFor(ev.Seq), val, pebble.Sync)
}

// MarkSent records a delivery attempt before the publish goes out.
func (o *Outbox) MarkSent(seq uint64) error {
	return o.transition(seq, StateSent)
}

// MarkAcked records broker acknowledgement.
func (o *Outbox) MarkAcked(seq uint64) error {
	return o.transition(seq, StateAcked)
}

// MarkFailed records a failed publish so the next sweep retries it.
func (o *Outbox) MarkFailed(seq uint64) error {
	return o.transition(seq, StateFailed)
}

func (o *Outbox) transition(seq uint64, state EventState) error {
	e, err := o.Get(seq)
	if err != nil {
		return err
	}
	e.State = state
	e.LastAttempt = time.Now().UnixNano()
	if state == StateSent || state == StateFailed {
		e.Retries++
	}
	val, err := encodeEntry(e)
	if err != nil {
		return err
	}
	return o.db.Set(keyFor(seq), val, pebble.Sync)
}

// Delete removes ACKED entries (cleanup).
func (o *Outbox) Delete(seq uint64) error {
	return o.db.Delete(keyFor(seq), pebble.Sync)
}

// Get returns the current entry for a sequence number.
func (o *Outbox) Get(seq uint64) (Entry, error) {
	val, closer, err := o.db.Get(keyFor(seq))
	if err != nil {
		return Entry{}, err
	}
	defer closer.Close()

	return decodeEntry(val)
}

// -------------------- Scan --------------------

// ScanPending iterates entries that still need a publish attempt,
// in sequence order. Used by the broadcaster.
func (o *Outbox) ScanPending(fn func(seq uint64, e Entry) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("event/"),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		e, err := decodeEntry(iter.Value())
		if err != nil {
			return err
		}

		if e.State != StateNew && e.State != StateFailed {
			continue
		}

		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}

		if err := fn(seq, e); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("event/%020d", seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("event/"))), "%d", &seq)
	return seq, err
}
