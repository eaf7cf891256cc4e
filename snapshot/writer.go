package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"tyr/domain/matching"
	"tyr/infra/ledger"
)

type Writer struct {
	Dir string
}

// Write captures every security's books into Dir/snapshot.bin. The file
// is written to a temp name and renamed, so a crash mid-write leaves
// the previous snapshot intact.
func (w *Writer) Write(seq uint64, securities []*matching.Security) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:        seq,
		Created:    time.Now(),
		Securities: make([]SecurityEntry, 0, len(securities)),
	}
	for _, sec := range securities {
		s.Securities = append(s.Securities, captureSecurity(sec))
	}

	tmp := filepath.Join(w.Dir, "snapshot.bin.tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(w.Dir, "snapshot.bin"))
}

func captureSecurity(sec *matching.Security) SecurityEntry {
	e := SecurityEntry{
		Symbol:         sec.Symbol,
		State:          int(sec.State),
		LastTradePrice: sec.LastTradePrice,
		OpeningPrice:   sec.OpeningPrice,
	}
	capture := func(o *matching.Order) OrderEntry {
		var brokerID, shareholderID string
		if b, ok := o.Broker.(*ledger.Broker); ok {
			brokerID = b.ID
		}
		if sh, ok := o.Shareholder.(*ledger.Shareholder); ok {
			shareholderID = sh.ID
		}
		return orderEntry(o, brokerID, shareholderID)
	}
	for _, side := range []matching.Side{matching.Buy, matching.Sell} {
		sec.Book.Each(side, func(o *matching.Order) {
			e.Active = append(e.Active, capture(o))
		})
		sec.InactiveBook.Each(side, func(o *matching.Order) {
			e.Inactive = append(e.Inactive, capture(o))
		})
	}
	return e
}
