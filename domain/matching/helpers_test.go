package matching

import "time"

type testBroker struct {
	credit int64
}

func (b *testBroker) HasEnoughCredit(amount int64) bool { return b.credit >= amount }
func (b *testBroker) DecreaseCreditBy(amount int64)     { b.credit -= amount }
func (b *testBroker) IncreaseCreditBy(amount int64)     { b.credit += amount }

type testShareholder struct {
	positions map[string]int64
}

func newTestShareholder() *testShareholder {
	return &testShareholder{positions: make(map[string]int64)}
}

func (s *testShareholder) HasEnoughPositionsOn(sec *Security, quantity int64) bool {
	return s.positions[sec.Symbol] >= quantity
}

func (s *testShareholder) IncPosition(sec *Security, quantity int64) {
	s.positions[sec.Symbol] += quantity
}

func (s *testShareholder) DecPosition(sec *Security, quantity int64) {
	s.positions[sec.Symbol] -= quantity
}

var entryClock int64

func nextEntryTime() int64 {
	entryClock++
	return entryClock
}

func newTestSecurity() *Security {
	return NewSecurity("TYR1")
}

type orderSpec struct {
	id          uint64
	side        Side
	qty         int64
	price       int64
	minExec     int64
	peak        int64
	stop        int64
	broker      *testBroker
	shareholder *testShareholder
}

func makeRequest(spec orderSpec) *OrderRequest {
	broker := spec.broker
	if broker == nil {
		broker = &testBroker{credit: 1 << 40}
	}
	shareholder := spec.shareholder
	if shareholder == nil {
		shareholder = newTestShareholder()
		shareholder.positions["TYR1"] = 1 << 40
	}
	return &OrderRequest{
		RequestID:   spec.id,
		OrderID:     spec.id,
		Side:        spec.side,
		Quantity:    spec.qty,
		Price:       spec.price,
		EntryTime:   nextEntryTime(),
		MinExecQty:  spec.minExec,
		PeakSize:    spec.peak,
		StopPrice:   spec.stop,
		Broker:      broker,
		Shareholder: shareholder,
	}
}

// restingOrder builds an already-queued order directly, bypassing risk
// checks, for book-level tests.
func restingOrder(sec *Security, spec orderSpec) *Order {
	req := makeRequest(spec)
	kind, err := req.kind()
	if err != nil {
		panic(err)
	}
	o := sec.buildOrder(req, kind)
	return o
}

func init() {
	entryClock = time.Now().UnixNano()
}
