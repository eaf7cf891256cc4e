package matching

// Matcher is the stateless matching algorithm. All ledger effects of a
// partially completed attempt are reversed before an abort returns:
// callers never observe a trade from a rolled-back attempt.
type Matcher struct{}

// Match runs the core loop: consume the best price-compatible opposite
// order until liquidity or the incoming order is exhausted. Continuous
// trades price at the resting order; auction trades price at the
// discovered opening price. In continuous mode a buy order's credit is
// verified per trade and the whole attempt rolls back on the first
// shortfall.
func (m Matcher) Match(order *Order) *MatchResult {
	sec := order.Security
	book := sec.Book
	openingPrice := sec.OpeningPrice
	var trades []*Trade

	for order.OpenQuantity() > 0 {
		resting := book.MatchCandidate(order)
		if resting == nil {
			break
		}

		price := resting.Price
		if sec.State == StateAuction {
			price = openingPrice
		}
		qty := minQty(order.OpenQuantity(), resting.OpenQuantity())
		trade := newTrade(sec, price, qty, order, resting)

		if sec.State == StateContinuous && order.Side == Buy {
			if !order.Broker.HasEnoughCredit(trade.Value()) {
				m.rollback(order, trades)
				return notEnoughCredit()
			}
			order.Broker.DecreaseCreditBy(trade.Value())
		}
		trade.Sell.Broker.IncreaseCreditBy(trade.Value())
		trades = append(trades, trade)

		if order.OpenQuantity() >= resting.OpenQuantity() {
			order.Decrease(qty)
			book.RemoveFirst(resting.Side)
			if resting.Kind == KindIceberg {
				resting.Decrease(qty)
				resting.Replenish()
				if resting.Quantity > 0 {
					// The refilled slice queues as of the order that
					// consumed the previous one, behind any order
					// already resting at the same price.
					resting.EntryTime = order.EntryTime
					book.Enqueue(resting)
				}
			}
		} else {
			resting.Decrease(qty)
			order.Decrease(qty)
		}
	}
	return executedResult(order, trades)
}

// rollback reverses the ledger effects of every trade in the aborted
// attempt, then reinstates the consumed resting orders in reverse
// chronological order so the book's priority order is exactly as it was
// before the attempt.
func (m Matcher) rollback(order *Order, trades []*Trade) {
	var total int64
	for _, t := range trades {
		total += t.Value()
	}
	if order.Side == Buy {
		order.Broker.IncreaseCreditBy(total)
		for _, t := range trades {
			t.Sell.Broker.DecreaseCreditBy(t.Value())
		}
	} else {
		order.Broker.DecreaseCreditBy(total)
	}

	book := order.Security.Book
	for i := len(trades) - 1; i >= 0; i-- {
		if order.Side == Buy {
			book.Restore(trades[i].Sell)
		} else {
			book.Restore(trades[i].Buy)
		}
	}
}

// Execute is the continuous entry path: match, reserve credit for any
// buy-side remainder, enforce the minimum-execution threshold on fresh
// orders, enqueue the remainder, and apply position changes for the
// retained trades.
func (m Matcher) Execute(order *Order) *MatchResult {
	initial := order.TotalQuantity()
	result := m.Match(order)
	if result.Outcome == OutcomeNotEnoughCredit {
		return result
	}

	if result.Remainder.TotalQuantity() > 0 {
		reserved := int64(0)
		if order.Side == Buy {
			if !order.Broker.HasEnoughCredit(order.Value()) {
				m.rollback(order, result.Trades)
				return notEnoughCredit()
			}
			reserved = order.Value()
			order.Broker.DecreaseCreditBy(reserved)
		}
		executed := initial - result.Remainder.TotalQuantity()
		if order.Status == OrderNew && executed < order.MinExecQty {
			if reserved > 0 {
				order.Broker.IncreaseCreditBy(reserved)
			}
			m.rollback(order, result.Trades)
			return notEnoughInitialTransaction()
		}
		order.Security.Book.Enqueue(result.Remainder)
	}

	m.applyPositions(result.Trades)
	return result
}

// ExecuteAuction is the uncrossing path: match at the opening price,
// always enqueue the remainder, and refund the buy side the price
// improvement between its limit and the uniform opening price (auction
// credit was reserved at limit).
func (m Matcher) ExecuteAuction(order *Order) *MatchResult {
	initial := order.TotalQuantity()
	result := m.Match(order)

	if result.Remainder.TotalQuantity() > 0 {
		order.Security.Book.Enqueue(result.Remainder)
	}
	if order.Side == Buy {
		executed := initial - order.TotalQuantity()
		refund := (order.Price - order.Security.OpeningPrice) * executed
		if refund != 0 {
			order.Broker.IncreaseCreditBy(refund)
		}
	}

	m.applyPositions(result.Trades)
	return result
}

func (m Matcher) applyPositions(trades []*Trade) {
	for _, t := range trades {
		t.Buy.Shareholder.IncPosition(t.Security, t.Quantity)
		t.Sell.Shareholder.DecPosition(t.Security, t.Quantity)
	}
}
