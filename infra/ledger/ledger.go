// Package ledger provides the in-memory credit and position tables
// behind the domain's Broker and Shareholder interfaces. Orders on
// different instruments may share a broker or shareholder, so every
// balance mutation is serialized behind a per-entity mutex.
package ledger

import (
	"errors"
	"sync"

	"tyr/domain/matching"
)

var ErrUnknownParty = errors.New("ledger: unknown party")

type Broker struct {
	ID string

	mu     sync.Mutex
	credit int64
}

func (b *Broker) HasEnoughCredit(amount int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.credit >= amount
}

func (b *Broker) DecreaseCreditBy(amount int64) {
	b.mu.Lock()
	b.credit -= amount
	b.mu.Unlock()
}

func (b *Broker) IncreaseCreditBy(amount int64) {
	b.mu.Lock()
	b.credit += amount
	b.mu.Unlock()
}

func (b *Broker) Credit() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.credit
}

type Shareholder struct {
	ID string

	mu        sync.Mutex
	positions map[string]int64
}

func (s *Shareholder) HasEnoughPositionsOn(sec *matching.Security, quantity int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positions[sec.Symbol] >= quantity
}

func (s *Shareholder) IncPosition(sec *matching.Security, quantity int64) {
	s.mu.Lock()
	s.positions[sec.Symbol] += quantity
	s.mu.Unlock()
}

func (s *Shareholder) DecPosition(sec *matching.Security, quantity int64) {
	s.mu.Lock()
	s.positions[sec.Symbol] -= quantity
	s.mu.Unlock()
}

func (s *Shareholder) PositionOn(symbol string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positions[symbol]
}

// Ledger is the registry of brokers and shareholders.
type Ledger struct {
	mu           sync.RWMutex
	brokers      map[string]*Broker
	shareholders map[string]*Shareholder
}

func New() *Ledger {
	return &Ledger{
		brokers:      make(map[string]*Broker),
		shareholders: make(map[string]*Shareholder),
	}
}

// CreditBroker creates the broker if needed and adds to its balance.
func (l *Ledger) CreditBroker(id string, amount int64) *Broker {
	l.mu.Lock()
	b, ok := l.brokers[id]
	if !ok {
		b = &Broker{ID: id}
		l.brokers[id] = b
	}
	l.mu.Unlock()
	if amount != 0 {
		b.IncreaseCreditBy(amount)
	}
	return b
}

// GrantPosition creates the shareholder if needed and adds to its
// position on a symbol.
func (l *Ledger) GrantPosition(id, symbol string, quantity int64) *Shareholder {
	l.mu.Lock()
	s, ok := l.shareholders[id]
	if !ok {
		s = &Shareholder{ID: id, positions: make(map[string]int64)}
		l.shareholders[id] = s
	}
	l.mu.Unlock()
	if quantity != 0 {
		s.mu.Lock()
		s.positions[symbol] += quantity
		s.mu.Unlock()
	}
	return s
}

func (l *Ledger) Broker(id string) (*Broker, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.brokers[id]
	if !ok {
		return nil, ErrUnknownParty
	}
	return b, nil
}

func (l *Ledger) Shareholder(id string) (*Shareholder, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.shareholders[id]
	if !ok {
		return nil, ErrUnknownParty
	}
	return s, nil
}
