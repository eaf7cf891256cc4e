package service

import (
	"context"
	"log"
	"time"

	"tyr/domain/matching"
	"tyr/snapshot"
)

// StartSnapshotJob periodically writes a full-book snapshot until the
// context is cancelled, then writes once more, so a clean shutdown
// always leaves a current snapshot behind.
func (s *EngineService) StartSnapshotJob(ctx context.Context, dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				s.writeSnapshot(w)
				return
			case <-t.C:
				s.writeSnapshot(w)
			}
		}
	}()
}

// writeSnapshot captures all securities with their command locks held,
// so the written books are a consistent point-in-time view.
func (s *EngineService) writeSnapshot(w *snapshot.Writer) {
	s.mu.RLock()
	entries := make([]*secEntry, 0, len(s.securities))
	for _, e := range s.securities {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	secs := make([]*matching.Security, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		secs = append(secs, e.sec)
	}
	defer func() {
		for _, e := range entries {
			e.mu.Unlock()
		}
	}()

	if err := w.Write(s.seqGen.Current(), secs); err != nil {
		log.Printf("[service] snapshot write: %v", err)
	}
}
