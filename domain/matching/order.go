package matching

type OrderKind int

const (
	KindLimit OrderKind = iota
	KindIceberg
	KindStopLimit
)

type OrderStatus int

const (
	OrderNew OrderStatus = iota
	OrderQueued
	OrderUpdating
	OrderSnapshot
)

// Order is the single order record. The three order types are a tagged
// variant over it: KindIceberg additionally uses PeakSize/Displayed,
// KindStopLimit additionally uses StopPrice/RequestID. Kind-specific
// behavior is dispatched in the methods below.
//
// Quantity is the remaining total quantity, hidden reserve included.
// For a queued iceberg order, Displayed is the disclosed slice; only
// the disclosed slice is visible to matching.
type Order struct {
	ID         uint64
	Side       Side
	Price      int64
	Quantity   int64
	MinExecQty int64
	EntryTime  int64
	Status     OrderStatus
	Kind       OrderKind

	PeakSize  int64
	Displayed int64
	StopPrice int64
	RequestID uint64

	Security    *Security
	Broker      Broker
	Shareholder Shareholder
}

// OpenQuantity is the quantity visible to the matching loop: the
// disclosed slice for a queued iceberg, the remaining total otherwise.
func (o *Order) OpenQuantity() int64 {
	if o.Kind == KindIceberg && (o.Status == OrderQueued || o.Status == OrderSnapshot) {
		return o.Displayed
	}
	return o.Quantity
}

// TotalQuantity is the remaining quantity including any hidden reserve.
func (o *Order) TotalQuantity() int64 { return o.Quantity }

// Value is the credit needed to rest the remainder at its own limit.
func (o *Order) Value() int64 { return o.Price * o.Quantity }

// Decrease consumes open quantity. For a queued iceberg both the
// disclosed slice and the total shrink together.
func (o *Order) Decrease(amount int64) {
	if amount > o.OpenQuantity() {
		panic("matching: decrease exceeds open quantity")
	}
	o.Quantity -= amount
	if o.Kind == KindIceberg && (o.Status == OrderQueued || o.Status == OrderSnapshot) {
		o.Displayed -= amount
	}
}

// Replenish reveals the next disclosed slice from the hidden reserve.
func (o *Order) Replenish() {
	if o.Kind != KindIceberg {
		return
	}
	o.Displayed = minQty(o.Quantity, o.PeakSize)
}

// CrossesWith reports price compatibility with a resting order on the
// opposite side.
func (o *Order) CrossesWith(other *Order) bool {
	if o.Side == Buy {
		return o.Price >= other.Price
	}
	return o.Price <= other.Price
}

// MustActivate reports whether a parked stop-limit order has been
// triggered by the last transaction price (strict crossing).
func (o *Order) MustActivate(lastTradePrice int64) bool {
	if o.Side == Buy {
		return o.StopPrice < lastTradePrice
	}
	return o.StopPrice > lastTradePrice
}

// ActiveOnEntry reports whether a freshly submitted stop-limit order
// participates immediately instead of being parked (inclusive crossing).
func (o *Order) ActiveOnEntry(lastTradePrice int64) bool {
	if o.Side == Buy {
		return o.StopPrice <= lastTradePrice
	}
	return o.StopPrice >= lastTradePrice
}

// Snapshot captures a value copy of the order, used for rollback and
// update-failure restore. The copy shares the same broker/shareholder
// handles but none of the book's mutations reach it.
func (o *Order) Snapshot() *Order {
	c := *o
	c.Status = OrderSnapshot
	return &c
}

// markQueued transitions the order into the book. Queuing an iceberg
// order reveals its disclosed slice from the remaining quantity.
// Rollback restores bypass this (PutFront) so a rolled-back slice
// keeps its exact pre-attempt disclosure.
func (o *Order) markQueued() {
	if o.Kind == KindIceberg {
		o.Displayed = minQty(o.Quantity, o.PeakSize)
	}
	o.Status = OrderQueued
}

// applyUpdate mutates the order in place from an update request. The
// minimum-execution threshold is applied once at initial acceptance and
// is never updatable.
func (o *Order) applyUpdate(req *OrderRequest) {
	o.Quantity = req.Quantity
	o.Price = req.Price
	switch o.Kind {
	case KindIceberg:
		o.PeakSize = req.PeakSize
		if o.Displayed > o.PeakSize {
			o.Displayed = o.PeakSize
		}
	case KindStopLimit:
		o.StopPrice = req.StopPrice
	}
}

// losesPriority reports whether applying req would cost the order its
// queue position: any quantity increase, any price change, or an
// iceberg peak increase.
func (o *Order) losesPriority(req *OrderRequest) bool {
	if req.Quantity > o.Quantity {
		return true
	}
	if req.Price != o.Price {
		return true
	}
	if o.Kind == KindIceberg && req.PeakSize > o.PeakSize {
		return true
	}
	return false
}

func minQty(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
