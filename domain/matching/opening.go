package matching

// OpeningRange is the result of opening-price discovery: the price
// range maximizing tradable volume and the volume achieved there.
type OpeningRange struct {
	MinPrice int64
	MaxPrice int64
	Quantity int64
}

// OpeningRange scans both sides for the price that maximizes matchable
// volume. Sell levels are walked from worst (highest) to best while buy
// quantity at prices >= each level accumulates from the best buy down;
// the tradable volume at a level is min(cumulative sell, cumulative
// buy). Ties resolve toward the lowest qualifying sell price. A book
// with no crossing liquidity yields the zero range.
func (b *OrderBook) OpeningRange() OpeningRange {
	var r OpeningRange
	var sellQty, buyQty int64
	var maxBuyPrice int64 = -1
	bi := 0
	for si := len(b.sell) - 1; si >= 0; si-- {
		level := b.sell[si]
		sellQty += level.TotalQuantity()
		for bi < len(b.buy) && b.buy[bi].Price >= level.Price {
			buyQty += b.buy[bi].TotalQuantity()
			maxBuyPrice = b.buy[bi].Price
			bi++
		}
		tradable := minQty(sellQty, buyQty)
		if tradable > r.Quantity {
			r.MinPrice = level.Price
			r.MaxPrice = maxBuyPrice
			r.Quantity = tradable
		} else if tradable == r.Quantity && r.Quantity > 0 {
			r.MinPrice = level.Price
		}
	}
	return r
}

// ClosestTo picks the opening price inside the range nearest to the
// reference price.
func (r OpeningRange) ClosestTo(price int64) int64 {
	if r.Quantity == 0 {
		return 0
	}
	if price < r.MinPrice {
		return r.MinPrice
	}
	if price > r.MaxPrice {
		return r.MaxPrice
	}
	return price
}

// SplitAtPrice removes every order eligible to trade at the opening
// price (buys priced >= it, sells priced <= it) into a secondary book,
// preserving relative order.
func (b *OrderBook) SplitAtPrice(openingPrice int64) *OrderBook {
	out := NewOrderBook()
	for len(b.buy) > 0 && b.buy[0].Price >= openingPrice {
		out.buy = append(out.buy, b.buy[0])
		b.buy = b.buy[1:]
	}
	for len(b.sell) > 0 && b.sell[0].Price <= openingPrice {
		out.sell = append(out.sell, b.sell[0])
		b.sell = b.sell[1:]
	}
	return out
}
