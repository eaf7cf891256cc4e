package matching

// InactiveOrderBook parks stop-limit orders that have not yet
// triggered. Ordering is by trigger proximity: BUY side ascending stop
// price (rising prices trigger the lowest stop first), SELL side
// descending stop price. Ties break by entry time.
type InactiveOrderBook struct {
	OrderBook
}

func NewInactiveOrderBook() *InactiveOrderBook {
	b := &InactiveOrderBook{}
	b.before = stopPriceBefore
	return b
}

func stopPriceBefore(a, b *Order) bool {
	if a.StopPrice != b.StopPrice {
		if a.Side == Buy {
			return a.StopPrice < b.StopPrice
		}
		return a.StopPrice > b.StopPrice
	}
	return a.EntryTime < b.EntryTime
}

// PopIfEligible removes and returns the first order on the side if its
// trigger condition holds against the last transaction price, else nil
// without mutating the book.
func (b *InactiveOrderBook) PopIfEligible(side Side, lastTradePrice int64) *Order {
	first := b.First(side)
	if first == nil || !first.MustActivate(lastTradePrice) {
		return nil
	}
	b.RemoveFirst(side)
	return first
}
