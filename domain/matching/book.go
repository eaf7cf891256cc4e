package matching

// OrderBook holds the resting orders of one instrument as two sorted
// queues. The sole invariant: after every mutation each side is fully
// sorted by its queues-before relation. Lookups are linear scans,
// acceptable at the per-instrument scale this engine targets.
type OrderBook struct {
	buy  []*Order
	sell []*Order

	// before is the queues-before relation. The active book orders by
	// price-time; the inactive book overrides this with stop-price
	// ordering. Keeping the comparator on the book (not the order)
	// means a triggered stop order behaves as a plain order the moment
	// it enters the active book.
	before func(a, b *Order) bool
}

func NewOrderBook() *OrderBook {
	return &OrderBook{before: priceTimeBefore}
}

// priceTimeBefore: best price first, earlier entry breaks ties.
func priceTimeBefore(a, b *Order) bool {
	if a.Price != b.Price {
		if a.Side == Buy {
			return a.Price > b.Price
		}
		return a.Price < b.Price
	}
	return a.EntryTime < b.EntryTime
}

func (b *OrderBook) queue(side Side) *[]*Order {
	if side == Buy {
		return &b.buy
	}
	return &b.sell
}

// Enqueue inserts the order at its sorted position and marks it queued.
func (b *OrderBook) Enqueue(o *Order) {
	q := b.queue(o.Side)
	i := 0
	for i < len(*q) && !b.before(o, (*q)[i]) {
		i++
	}
	o.markQueued()
	*q = append(*q, nil)
	copy((*q)[i+1:], (*q)[i:])
	(*q)[i] = o
}

func (b *OrderBook) FindByID(side Side, id uint64) *Order {
	for _, o := range *b.queue(side) {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// RemoveByID removes the order and reports whether it was present.
func (b *OrderBook) RemoveByID(side Side, id uint64) bool {
	q := b.queue(side)
	for i, o := range *q {
		if o.ID == id {
			*q = append((*q)[:i], (*q)[i+1:]...)
			return true
		}
	}
	return false
}

func (b *OrderBook) HasOrders(side Side) bool {
	return len(*b.queue(side)) > 0
}

func (b *OrderBook) First(side Side) *Order {
	q := *b.queue(side)
	if len(q) == 0 {
		return nil
	}
	return q[0]
}

func (b *OrderBook) RemoveFirst(side Side) {
	q := b.queue(side)
	if len(*q) > 0 {
		*q = (*q)[1:]
	}
}

// MatchCandidate returns the best opposite-side order if it is price
// compatible with o, without removing it.
func (b *OrderBook) MatchCandidate(o *Order) *Order {
	best := b.First(o.Side.Opposite())
	if best == nil || !o.CrossesWith(best) {
		return nil
	}
	return best
}

// PutFront reinstates an order at the head of its side, bypassing the
// sorted insert. Only rollback may use this: undoing matches in reverse
// chronological order restores the original relative order exactly.
func (b *OrderBook) PutFront(o *Order) {
	o.Status = OrderQueued
	q := b.queue(o.Side)
	*q = append([]*Order{o}, (*q)...)
}

// Restore replaces any current entry for the order's id with the given
// (pre-matching) state at the front of its side.
func (b *OrderBook) Restore(o *Order) {
	b.RemoveByID(o.Side, o.ID)
	b.PutFront(o)
}

// TotalSellQuantityBy sums open sell quantity resting for a
// shareholder, for pre-trade position sufficiency checks.
func (b *OrderBook) TotalSellQuantityBy(sh Shareholder) int64 {
	var total int64
	for _, o := range b.sell {
		if o.Shareholder == sh {
			total += o.TotalQuantity()
		}
	}
	return total
}

// Each visits every resting order on one side in queue order.
func (b *OrderBook) Each(side Side, fn func(*Order)) {
	for _, o := range *b.queue(side) {
		fn(o)
	}
}

// Len reports the number of resting orders on one side.
func (b *OrderBook) Len(side Side) int {
	return len(*b.queue(side))
}

// PriceLevel is one aggregated depth entry.
type PriceLevel struct {
	Price    int64
	Quantity int64
}

// Depth aggregates open quantity by price, best first, up to max levels
// (0 means all). Hidden iceberg reserve is not disclosed.
func (b *OrderBook) Depth(side Side, max int) []PriceLevel {
	var levels []PriceLevel
	for _, o := range *b.queue(side) {
		n := len(levels)
		if n > 0 && levels[n-1].Price == o.Price {
			levels[n-1].Quantity += o.OpenQuantity()
			continue
		}
		if max > 0 && n == max {
			break
		}
		levels = append(levels, PriceLevel{Price: o.Price, Quantity: o.OpenQuantity()})
	}
	return levels
}
