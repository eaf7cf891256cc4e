// Package snapshot persists and restores the resting state of the
// engine: every security's books, trading mode and reference prices,
// plus the sequence watermark. A snapshot taken at shutdown and loaded
// at startup carries the books across restarts; credit and position
// balances travel separately through the ledger.
package snapshot

import (
	"time"

	"tyr/domain/matching"
)

type Snapshot struct {
	Seq        uint64
	Created    time.Time
	Securities []SecurityEntry
}

type SecurityEntry struct {
	Symbol         string
	State          int
	LastTradePrice int64
	OpeningPrice   int64
	Active         []OrderEntry
	Inactive       []OrderEntry
}

type OrderEntry struct {
	ID            uint64
	Side          int
	Kind          int
	Price         int64
	Quantity      int64
	Displayed     int64
	PeakSize      int64
	MinExecQty    int64
	StopPrice     int64
	EntryTime     int64
	BrokerID      string
	ShareholderID string
}

func orderEntry(o *matching.Order, brokerID, shareholderID string) OrderEntry {
	return OrderEntry{
		ID:            o.ID,
		Side:          int(o.Side),
		Kind:          int(o.Kind),
		Price:         o.Price,
		Quantity:      o.Quantity,
		Displayed:     o.Displayed,
		PeakSize:      o.PeakSize,
		MinExecQty:    o.MinExecQty,
		StopPrice:     o.StopPrice,
		EntryTime:     o.EntryTime,
		BrokerID:      brokerID,
		ShareholderID: shareholderID,
	}
}
