package matching

// Trade records one execution. Buy and Sell are snapshots of the two
// orders taken before their quantities were reduced, so rollback can
// reinstate the resting side exactly as it was.
type Trade struct {
	Security *Security
	Price    int64
	Quantity int64
	Buy      *Order
	Sell     *Order
}

func newTrade(security *Security, price, quantity int64, a, b *Order) *Trade {
	t := &Trade{Security: security, Price: price, Quantity: quantity}
	if a.Side == Buy {
		t.Buy, t.Sell = a.Snapshot(), b.Snapshot()
	} else {
		t.Buy, t.Sell = b.Snapshot(), a.Snapshot()
	}
	return t
}

// Value is the credit moved by this trade.
func (t *Trade) Value() int64 { return t.Price * t.Quantity }
