package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"tyr/domain/matching"
	"tyr/infra/ledger"
)

// Load reads Dir/snapshot.bin. A missing file is a fresh start, not an
// error: it returns (nil, nil).
func Load(dir string) (*Snapshot, error) {
	f, err := os.Open(filepath.Join(dir, "snapshot.bin"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Restore rebuilds securities from a snapshot. Parties are resolved
// through the ledger, created with zero balances when unseen; balances
// themselves are bootstrapped separately.
func Restore(s *Snapshot, l *ledger.Ledger) []*matching.Security {
	securities := make([]*matching.Security, 0, len(s.Securities))
	for _, se := range s.Securities {
		sec := matching.NewSecurity(se.Symbol)
		sec.State = matching.MatchingState(se.State)
		sec.LastTradePrice = se.LastTradePrice
		sec.OpeningPrice = se.OpeningPrice
		for _, e := range se.Active {
			restoreOrder(sec.Book, sec, l, e)
		}
		for _, e := range se.Inactive {
			restoreOrder(sec.InactiveBook, sec, l, e)
		}
		securities = append(securities, sec)
	}
	return securities
}

type enqueuer interface {
	Enqueue(*matching.Order)
}

func restoreOrder(book enqueuer, sec *matching.Security, l *ledger.Ledger, e OrderEntry) {
	o := &matching.Order{
		ID:          e.ID,
		Side:        matching.Side(e.Side),
		Kind:        matching.OrderKind(e.Kind),
		Price:       e.Price,
		Quantity:    e.Quantity,
		PeakSize:    e.PeakSize,
		MinExecQty:  e.MinExecQty,
		StopPrice:   e.StopPrice,
		EntryTime:   e.EntryTime,
		Security:    sec,
		Broker:      l.CreditBroker(e.BrokerID, 0),
		Shareholder: l.GrantPosition(e.ShareholderID, sec.Symbol, 0),
	}
	book.Enqueue(o)
	// Enqueue reveals a fresh disclosed slice; put back what the
	// snapshot actually saw so a partially consumed peak survives.
	if o.Kind == matching.KindIceberg {
		o.Displayed = e.Displayed
	}
}
