package outbox

import (
	"testing"
)

func testEvent(seq uint64) TradeEvent {
	return TradeEvent{
		Seq:      seq,
		Symbol:   "TYR1",
		Price:    100,
		Quantity: 50,
		BuyID:    1,
		SellID:   2,
		At:       1234567890,
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer o.Close()

	ev := testEvent(7)
	if err := o.Put(ev); err != nil {
		t.Fatalf("put: %v", err)
	}

	e, err := o.Get(7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e.State != StateNew {
		t.Errorf("state = %v, want NEW", e.State)
	}
	if e.Event != ev {
		t.Errorf("event = %+v, want %+v", e.Event, ev)
	}
}

func TestLifecycleTransitions(t *testing.T) {
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer o.Close()

	if err := o.Put(testEvent(1)); err != nil {
		t.Fatalf("put: %v", err)
	}

	if err := o.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	e, _ := o.Get(1)
	if e.State != StateSent || e.Retries != 1 {
		t.Errorf("after send: state=%v retries=%d, want SENT/1", e.State, e.Retries)
	}

	if err := o.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	e, _ = o.Get(1)
	if e.State != StateAcked {
		t.Errorf("after ack: state=%v, want ACKED", e.State)
	}

	if err := o.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := o.Get(1); err == nil {
		t.Error("expected error reading deleted entry")
	}
}

func TestScanPendingSkipsSentAndAcked(t *testing.T) {
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer o.Close()

	for seq := uint64(1); seq <= 4; seq++ {
		if err := o.Put(testEvent(seq)); err != nil {
			t.Fatalf("put %d: %v", seq, err)
		}
	}
	o.MarkSent(2)
	o.MarkSent(3)
	o.MarkAcked(3)
	o.MarkSent(4)
	o.MarkFailed(4)

	var seqs []uint64
	if err := o.ScanPending(func(seq uint64, e Entry) error {
		seqs = append(seqs, seq)
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}

	// 1 is NEW, 4 is FAILED; 2 (SENT) and 3 (ACKED) are skipped.
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 4 {
		t.Errorf("pending seqs = %v, want [1 4]", seqs)
	}
}
