package matching

// MatchingState is the per-instrument trading mode.
type MatchingState int

const (
	StateContinuous MatchingState = iota
	StateAuction
)

func (s MatchingState) String() string {
	if s == StateAuction {
		return "AUCTION"
	}
	return "CONTINUOUS"
}

// OpeningData is the discovered uniform price for auction uncrossing.
type OpeningData struct {
	Price            int64
	TradableQuantity int64
}

// Security is the per-instrument state machine. It owns the active and
// inactive order books, the matching mode, the last transaction price,
// and the pending-activation queue, and is driven by strictly
// sequential calls: one instrument, one logical actor.
type Security struct {
	Symbol   string
	TickSize int64
	LotSize  int64

	Book         *OrderBook
	InactiveBook *InactiveOrderBook

	State          MatchingState
	LastTradePrice int64
	OpeningPrice   int64

	matcher    Matcher
	executable []*Order
}

func NewSecurity(symbol string) *Security {
	return &Security{
		Symbol:       symbol,
		TickSize:     1,
		LotSize:      1,
		Book:         NewOrderBook(),
		InactiveBook: NewInactiveOrderBook(),
		State:        StateContinuous,
	}
}

func (s *Security) buildOrder(req *OrderRequest, kind OrderKind) *Order {
	return &Order{
		ID:          req.OrderID,
		Side:        req.Side,
		Price:       req.Price,
		Quantity:    req.Quantity,
		MinExecQty:  req.MinExecQty,
		EntryTime:   req.EntryTime,
		Status:      OrderNew,
		Kind:        kind,
		PeakSize:    req.PeakSize,
		StopPrice:   req.StopPrice,
		RequestID:   req.RequestID,
		Security:    s,
		Broker:      req.Broker,
		Shareholder: req.Shareholder,
	}
}

// NewOrder validates and routes a new-order request. Sell orders are
// position-checked against existing resting sell quantity. Stop orders
// either participate immediately or are parked inactive (buy side after
// a credit pre-check, no debit). In auction mode active orders are
// credit-reserved and deposited without matching.
func (s *Security) NewOrder(req *OrderRequest) (SecurityStatus, error) {
	if req.Side == Sell &&
		!req.Shareholder.HasEnoughPositionsOn(s, s.Book.TotalSellQuantityBy(req.Shareholder)+req.Quantity) {
		return SecurityStatus{Kind: StatusNotEnoughPositions}, nil
	}

	kind, err := req.kind()
	if err != nil {
		return SecurityStatus{}, err
	}
	order := s.buildOrder(req, kind)

	if kind == KindStopLimit && !order.ActiveOnEntry(s.LastTradePrice) {
		if order.Side == Buy && !order.Broker.HasEnoughCredit(order.Value()) {
			return SecurityStatus{Kind: StatusNotEnoughCredit}, nil
		}
		s.InactiveBook.Enqueue(order)
		return SecurityStatus{Kind: StatusQueuedAsInactive}, nil
	}

	if s.State == StateAuction {
		if order.Side == Buy {
			if !order.Broker.HasEnoughCredit(order.Value()) {
				return SecurityStatus{Kind: StatusNotEnoughCredit}, nil
			}
			order.Broker.DecreaseCreditBy(order.Value())
		}
		s.Book.Enqueue(order)
		return SecurityStatus{Kind: StatusAuctioned}, nil
	}

	result := s.matcher.Execute(order)
	return s.statusFor(result, false, kind == KindStopLimit), nil
}

// DeleteOrder removes an order. Untriggered stop orders leave the
// inactive book with no ledger effect (parked buys were only
// pre-checked, never debited). Resting buy orders are refunded their
// reservation.
func (s *Security) DeleteOrder(req *DeleteRequest) error {
	if order := s.InactiveBook.FindByID(req.Side, req.OrderID); order != nil {
		s.InactiveBook.RemoveByID(req.Side, req.OrderID)
		return nil
	}
	order := s.Book.FindByID(req.Side, req.OrderID)
	if order == nil {
		return ErrOrderNotFound
	}
	if order.Side == Buy {
		order.Broker.IncreaseCreditBy(order.Value())
	}
	s.Book.RemoveByID(req.Side, req.OrderID)
	return nil
}

// UpdateOrder applies an update atomically: either the new parameters
// take effect (rematching if queue priority is lost) or the pre-update
// order is restored with its reservation. A stop-price request is
// looked up in the inactive book; everything else in the active book.
func (s *Security) UpdateOrder(req *OrderRequest) (SecurityStatus, error) {
	inactive := req.StopPrice != 0
	var order *Order
	if inactive {
		order = s.InactiveBook.FindByID(req.Side, req.OrderID)
	} else {
		order = s.Book.FindByID(req.Side, req.OrderID)
	}
	if order == nil {
		return SecurityStatus{}, ErrOrderNotFound
	}
	order.Status = OrderUpdating

	if req.Side == Sell &&
		!order.Shareholder.HasEnoughPositionsOn(s,
			s.Book.TotalSellQuantityBy(order.Shareholder)-order.Quantity+req.Quantity) {
		order.Status = OrderQueued
		return SecurityStatus{Kind: StatusNotEnoughPositions}, nil
	}

	losesPriority := order.losesPriority(req)
	original := order.Snapshot()
	order.applyUpdate(req)

	if inactive {
		return s.updateInactive(order, original), nil
	}

	// Refund the original reservation up front; every branch below
	// re-reserves (or restores) explicitly.
	if order.Side == Buy {
		order.Broker.IncreaseCreditBy(original.Value())
	}

	if !losesPriority {
		if order.Side == Buy {
			if !order.Broker.HasEnoughCredit(order.Value()) {
				return s.restoreOriginal(order, original), nil
			}
			order.Broker.DecreaseCreditBy(order.Value())
		}
		order.Status = OrderQueued
		return SecurityStatus{Kind: StatusUpdated}, nil
	}

	s.Book.RemoveByID(req.Side, req.OrderID)

	if s.State == StateContinuous {
		result := s.matcher.Execute(order)
		if result.Outcome != OutcomeExecuted {
			s.requeueOriginal(original)
		}
		return s.statusFor(result, true, false), nil
	}

	// Auction mode: no immediate match, re-enqueue at the new terms.
	if order.Side == Buy {
		if !order.Broker.HasEnoughCredit(order.Value()) {
			s.requeueOriginal(original)
			return SecurityStatus{Kind: StatusNotEnoughCredit}, nil
		}
		order.Broker.DecreaseCreditBy(order.Value())
	}
	s.Book.Enqueue(order)
	return SecurityStatus{Kind: StatusUpdated}, nil
}

// updateInactive handles updates to a still-parked stop order: activate
// and rematch if the new terms trigger, re-park at the new trigger
// priority if the stop price moved, otherwise keep it in place after
// re-running the buy-side credit pre-check.
func (s *Security) updateInactive(order, original *Order) SecurityStatus {
	if order.MustActivate(s.LastTradePrice) {
		s.InactiveBook.RemoveByID(order.Side, order.ID)
		result := s.matcher.Execute(order)
		return s.statusFor(result, true, true)
	}
	if order.Side == Buy && !order.Broker.HasEnoughCredit(order.Value()) {
		*order = *original
		order.Status = OrderQueued
		return SecurityStatus{Kind: StatusNotEnoughCredit}
	}
	if order.StopPrice != original.StopPrice {
		s.InactiveBook.RemoveByID(order.Side, order.ID)
		s.InactiveBook.Enqueue(order)
		return SecurityStatus{Kind: StatusUpdated}
	}
	order.Status = OrderQueued
	return SecurityStatus{Kind: StatusUpdated}
}

// restoreOriginal undoes an in-place update whose re-reservation
// failed, re-reserving at the original terms.
func (s *Security) restoreOriginal(order, original *Order) SecurityStatus {
	*order = *original
	order.Status = OrderQueued
	order.Broker.DecreaseCreditBy(order.Value())
	return SecurityStatus{Kind: StatusNotEnoughCredit}
}

// requeueOriginal reinstates the pre-update order after a failed
// rematch. Enqueueing re-reveals a full disclosed slice, so an
// iceberg's partially consumed slice is put back explicitly.
func (s *Security) requeueOriginal(original *Order) {
	displayed := original.Displayed
	s.Book.Enqueue(original)
	if original.Kind == KindIceberg {
		original.Displayed = displayed
	}
	if original.Side == Buy {
		original.Broker.DecreaseCreditBy(original.Value())
	}
}

// CheckExecutableOrders records a settled trade price. If the price
// moved, the side whose trigger direction matches the movement is
// drained of newly eligible stop orders into the pending-activation
// queue.
func (s *Security) CheckExecutableOrders(tradePrice int64) {
	previous := s.LastTradePrice
	s.LastTradePrice = tradePrice
	if tradePrice == previous {
		return
	}
	side := Sell
	if tradePrice > previous {
		side = Buy
	}
	for {
		order := s.InactiveBook.PopIfEligible(side, s.LastTradePrice)
		if order == nil {
			return
		}
		s.executable = append(s.executable, order)
	}
}

// HandleExecutableOrders runs the activation cascade for a settled
// trade price: each activated order is executed in turn and its own
// trades may pull further stop orders into the queue. The queue is
// drained iteratively, never recursively, so cascade depth stays
// bounded.
func (s *Security) HandleExecutableOrders(tradePrice int64) []*MatchResult {
	s.CheckExecutableOrders(tradePrice)
	var results []*MatchResult
	for len(s.executable) > 0 {
		order := s.executable[0]
		s.executable = s.executable[1:]
		result := s.matcher.Execute(order)
		if n := len(result.Trades); n > 0 {
			s.CheckExecutableOrders(result.Trades[n-1].Price)
		}
		results = append(results, result)
	}
	return results
}

// EnqueueExecutableOrders deposits pending activations directly into
// the active book without matching. Used while in auction mode, where
// activated stop orders must wait for the next uncrossing. Buy orders
// are reserved at limit like any other auction deposit; parked stops
// carried only a pre-check, so an activation whose broker can no
// longer cover it is dropped.
func (s *Security) EnqueueExecutableOrders() []*MatchResult {
	var results []*MatchResult
	for len(s.executable) > 0 {
		order := s.executable[0]
		s.executable = s.executable[1:]
		if order.Side == Buy {
			if !order.Broker.HasEnoughCredit(order.Value()) {
				results = append(results, &MatchResult{Outcome: OutcomeNotEnoughCredit, Remainder: order})
				continue
			}
			order.Broker.DecreaseCreditBy(order.Value())
		}
		s.Book.Enqueue(order)
		results = append(results, &MatchResult{Outcome: OutcomeExecuted, Remainder: order})
	}
	return results
}

// FindOpeningData discovers the opening price: the tradable-volume
// maximizing range clamped toward the last transaction price.
func (s *Security) FindOpeningData() OpeningData {
	r := s.Book.OpeningRange()
	s.OpeningPrice = r.ClosestTo(s.LastTradePrice)
	return OpeningData{Price: s.OpeningPrice, TradableQuantity: r.Quantity}
}

// RunAuctionedOrders uncrosses the book at the opening price: the best
// buy order is popped and executed until an attempt produces no trades
// (the popped order re-enters as its own remainder) or a side empties.
func (s *Security) RunAuctionedOrders() []*MatchResult {
	var results []*MatchResult
	for s.Book.HasOrders(Buy) && s.Book.HasOrders(Sell) {
		order := s.Book.First(Buy)
		s.Book.RemoveFirst(Buy)
		result := s.matcher.ExecuteAuction(order)
		if len(result.Trades) == 0 {
			break
		}
		results = append(results, result)
	}
	return results
}

// ChangeMatchingState performs the explicit mode transition. Leaving
// auction mode runs price discovery and uncrossing first; the resulting
// trades then feed the stop activation cascade, matched immediately
// when entering continuous trading and deposited unmatched when rolling
// into another auction. Uncrossing results and per-activation results
// are reported separately.
func (s *Security) ChangeMatchingState(target MatchingState) (uncross, activations []*MatchResult) {
	if s.State != StateAuction {
		s.State = target
		return nil, nil
	}

	opening := s.FindOpeningData()
	uncross = s.RunAuctionedOrders()
	s.State = target

	if len(uncross) > 0 {
		if target == StateContinuous {
			activations = s.HandleExecutableOrders(opening.Price)
		} else {
			s.CheckExecutableOrders(opening.Price)
			activations = s.EnqueueExecutableOrders()
		}
	}
	return uncross, activations
}

func (s *Security) statusFor(result *MatchResult, update, stop bool) SecurityStatus {
	switch result.Outcome {
	case OutcomeExecuted:
		kind := StatusAccepted
		switch {
		case update && stop:
			kind = StatusUpdatedAndActivated
		case update:
			kind = StatusUpdated
		case stop:
			kind = StatusAcceptedAndActivated
		}
		return SecurityStatus{Kind: kind, Trades: result.Trades}
	case OutcomeNotEnoughPositions:
		return SecurityStatus{Kind: StatusNotEnoughPositions}
	case OutcomeNotEnoughInitialTransaction:
		return SecurityStatus{Kind: StatusNotEnoughInitialTransaction}
	default:
		return SecurityStatus{Kind: StatusNotEnoughCredit}
	}
}
