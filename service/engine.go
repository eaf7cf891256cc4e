package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"tyr/domain/matching"
	"tyr/infra/journal"
	"tyr/infra/ledger"
	"tyr/infra/outbox"
	"tyr/infra/sequence"
)

var ErrUnknownSecurity = errors.New("service: unknown security")

// OrderCommand is the transport-independent form of a new-order or
// update-order request. Parties are referenced by ID and resolved
// against the ledger.
type OrderCommand struct {
	Symbol        string `json:"symbol"`
	RequestID     uint64 `json:"request_id"`
	OrderID       uint64 `json:"order_id"`
	Side          int    `json:"side"`
	Quantity      int64  `json:"quantity"`
	Price         int64  `json:"price"`
	MinExecQty    int64  `json:"min_exec_qty,omitempty"`
	PeakSize      int64  `json:"peak_size,omitempty"`
	StopPrice     int64  `json:"stop_price,omitempty"`
	BrokerID      string `json:"broker_id"`
	ShareholderID string `json:"shareholder_id"`
}

// DeleteCommand identifies an order to remove.
type DeleteCommand struct {
	Symbol  string `json:"symbol"`
	Side    int    `json:"side"`
	OrderID uint64 `json:"order_id"`
}

// TradeInfo is one executed trade as reported to callers and published
// downstream.
type TradeInfo struct {
	Seq      uint64
	Price    int64
	Quantity int64
	BuyID    uint64
	SellID   uint64
}

// Activation reports a stop order that triggered as a consequence of
// another request, with the trades its own execution produced.
type Activation struct {
	OrderID uint64
	Status  matching.StatusKind
	Trades  []TradeInfo
}

// OrderResponse is the outcome of one command: the direct status and
// trades, plus any stop activations the trades cascaded into.
type OrderResponse struct {
	RequestID   uint64
	OrderID     uint64
	Status      matching.StatusKind
	Trades      []TradeInfo
	Activations []Activation
}

type secEntry struct {
	mu  sync.Mutex
	sec *matching.Security
}

// EngineService is the write entry point. The journal and outbox are
// optional: a nil journal skips audit records, a nil outbox skips
// downstream publication. Each security is driven strictly
// sequentially behind its own lock.
type EngineService struct {
	mu         sync.RWMutex
	securities map[string]*secEntry

	ledger *ledger.Ledger
	seqGen *sequence.Sequencer
	jrnl   *journal.Journal
	box    *outbox.Outbox
}

func NewEngineService(
	led *ledger.Ledger,
	seqGen *sequence.Sequencer,
	jrnl *journal.Journal,
	box *outbox.Outbox,
) *EngineService {
	return &EngineService{
		securities: make(map[string]*secEntry),
		ledger:     led,
		seqGen:     seqGen,
		jrnl:       jrnl,
		box:        box,
	}
}

// RegisterSecurity creates and registers a fresh security. Registering
// an existing symbol returns the security already listed.
func (s *EngineService) RegisterSecurity(symbol string) *matching.Security {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.securities[symbol]; ok {
		return e.sec
	}
	sec := matching.NewSecurity(symbol)
	s.securities[symbol] = &secEntry{sec: sec}
	return sec
}

// AttachSecurity registers a security restored from a snapshot.
func (s *EngineService) AttachSecurity(sec *matching.Security) {
	s.mu.Lock()
	s.securities[sec.Symbol] = &secEntry{sec: sec}
	s.mu.Unlock()
}

// Securities returns all listed securities, for snapshotting.
func (s *EngineService) Securities() []*matching.Security {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*matching.Security, 0, len(s.securities))
	for _, e := range s.securities {
		out = append(out, e.sec)
	}
	return out
}

func (s *EngineService) entry(symbol string) (*secEntry, error) {
	s.mu.RLock()
	e, ok := s.securities[symbol]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSecurity, symbol)
	}
	return e, nil
}

func (s *EngineService) resolve(cmd *OrderCommand) (*matching.OrderRequest, error) {
	broker, err := s.ledger.Broker(cmd.BrokerID)
	if err != nil {
		return nil, fmt.Errorf("broker %q: %w", cmd.BrokerID, err)
	}
	holder, err := s.ledger.Shareholder(cmd.ShareholderID)
	if err != nil {
		return nil, fmt.Errorf("shareholder %q: %w", cmd.ShareholderID, err)
	}
	side := matching.Side(cmd.Side)
	if side != matching.Buy && side != matching.Sell {
		return nil, matching.ErrUnknownSide
	}
	return &matching.OrderRequest{
		RequestID:   cmd.RequestID,
		OrderID:     cmd.OrderID,
		Side:        side,
		Quantity:    cmd.Quantity,
		Price:       cmd.Price,
		EntryTime:   time.Now().UnixNano(),
		MinExecQty:  cmd.MinExecQty,
		PeakSize:    cmd.PeakSize,
		StopPrice:   cmd.StopPrice,
		Broker:      broker,
		Shareholder: holder,
	}, nil
}

// journalAppend records the command for audit. Failures are logged, not
// fatal: the engine's source of truth is the in-memory state plus
// snapshots, the journal is an audit trail.
func (s *EngineService) journalAppend(t journal.RecordType, seq uint64, v any) {
	if s.jrnl == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[service] journal encode: %v", err)
		return
	}
	if err := s.jrnl.Append(journal.NewRecord(t, seq, data)); err != nil {
		log.Printf("[service] journal append: %v", err)
	}
}

// publish seq-stamps trades and hands them to the outbox.
func (s *EngineService) publish(symbol string, trades []*matching.Trade) []TradeInfo {
	if len(trades) == 0 {
		return nil
	}
	out := make([]TradeInfo, 0, len(trades))
	now := time.Now().UnixNano()
	for _, t := range trades {
		info := TradeInfo{
			Seq:      s.seqGen.Next(),
			Price:    t.Price,
			Quantity: t.Quantity,
			BuyID:    t.Buy.ID,
			SellID:   t.Sell.ID,
		}
		out = append(out, info)
		if s.box == nil {
			continue
		}
		ev := outbox.TradeEvent{
			Seq:      info.Seq,
			Symbol:   symbol,
			Price:    uint64(info.Price),
			Quantity: uint64(info.Quantity),
			BuyID:    info.BuyID,
			SellID:   info.SellID,
			At:       now,
		}
		if err := s.box.Put(ev); err != nil {
			log.Printf("[service] outbox put seq=%d: %v", ev.Seq, err)
		}
	}
	return out
}

// cascade runs the stop-order activation cascade after trades settled
// in continuous trading, publishing each activation's trades.
func (s *EngineService) cascade(e *secEntry, trades []TradeInfo) []Activation {
	if len(trades) == 0 || e.sec.State != matching.StateContinuous {
		return nil
	}
	results := e.sec.HandleExecutableOrders(trades[len(trades)-1].Price)
	return s.activations(e.sec.Symbol, results)
}

func (s *EngineService) activations(symbol string, results []*matching.MatchResult) []Activation {
	var out []Activation
	for _, r := range results {
		a := Activation{Status: matching.StatusActivated}
		if r.Remainder != nil {
			a.OrderID = r.Remainder.ID
		}
		if r.Outcome == matching.OutcomeExecuted {
			a.Trades = s.publish(symbol, r.Trades)
		} else {
			a.Status = matching.StatusNotEnoughCredit
		}
		out = append(out, a)
	}
	return out
}

// EnterOrder journals and executes a new-order command, then drives
// any stop activations its trades trigger.
func (s *EngineService) EnterOrder(cmd *OrderCommand) (*OrderResponse, error) {
	e, err := s.entry(cmd.Symbol)
	if err != nil {
		return nil, err
	}
	req, err := s.resolve(cmd)
	if err != nil {
		return nil, err
	}
	s.journalAppend(journal.RecordEnter, cmd.RequestID, cmd)

	e.mu.Lock()
	defer e.mu.Unlock()

	status, err := e.sec.NewOrder(req)
	if err != nil {
		return nil, err
	}
	resp := &OrderResponse{
		RequestID: cmd.RequestID,
		OrderID:   cmd.OrderID,
		Status:    status.Kind,
		Trades:    s.publish(cmd.Symbol, status.Trades),
	}
	resp.Activations = s.cascade(e, resp.Trades)
	return resp, nil
}

// UpdateOrder journals and executes an update-order command
// atomically, then drives any stop activations.
func (s *EngineService) UpdateOrder(cmd *OrderCommand) (*OrderResponse, error) {
	e, err := s.entry(cmd.Symbol)
	if err != nil {
		return nil, err
	}
	req, err := s.resolve(cmd)
	if err != nil {
		return nil, err
	}
	s.journalAppend(journal.RecordUpdate, cmd.RequestID, cmd)

	e.mu.Lock()
	defer e.mu.Unlock()

	status, err := e.sec.UpdateOrder(req)
	if err != nil {
		return nil, err
	}
	resp := &OrderResponse{
		RequestID: cmd.RequestID,
		OrderID:   cmd.OrderID,
		Status:    status.Kind,
		Trades:    s.publish(cmd.Symbol, status.Trades),
	}
	resp.Activations = s.cascade(e, resp.Trades)
	return resp, nil
}

// DeleteOrder journals and removes an order.
func (s *EngineService) DeleteOrder(cmd *DeleteCommand) error {
	e, err := s.entry(cmd.Symbol)
	if err != nil {
		return err
	}
	side := matching.Side(cmd.Side)
	if side != matching.Buy && side != matching.Sell {
		return matching.ErrUnknownSide
	}
	s.journalAppend(journal.RecordDelete, cmd.OrderID, cmd)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sec.DeleteOrder(&matching.DeleteRequest{Side: side, OrderID: cmd.OrderID})
}

// ChangeState journals and performs a trading-mode transition. Leaving
// an auction uncrosses the book; the uncrossing trades are published
// like any others and the stop activations they triggered are reported
// per order.
func (s *EngineService) ChangeState(symbol string, target matching.MatchingState) (*OrderResponse, error) {
	e, err := s.entry(symbol)
	if err != nil {
		return nil, err
	}
	s.journalAppend(journal.RecordState, uint64(target), struct {
		Symbol string `json:"symbol"`
		State  string `json:"state"`
	}{symbol, target.String()})

	e.mu.Lock()
	defer e.mu.Unlock()

	uncross, cascades := e.sec.ChangeMatchingState(target)
	resp := &OrderResponse{Status: matching.StatusAccepted}
	for _, r := range uncross {
		if r.Outcome != matching.OutcomeExecuted {
			continue
		}
		resp.Trades = append(resp.Trades, s.publish(symbol, r.Trades)...)
	}
	resp.Activations = s.activations(symbol, cascades)
	return resp, nil
}

// Depth returns the aggregated book for one side of a security.
func (s *EngineService) Depth(symbol string, side matching.Side, max int) ([]matching.PriceLevel, error) {
	e, err := s.entry(symbol)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sec.Book.Depth(side, max), nil
}
