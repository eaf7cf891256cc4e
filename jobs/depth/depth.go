// Package depth periodically publishes aggregated book depth to a
// Kafka market-data topic. The feed is lossy on purpose: a missed tick
// is superseded by the next one, so it rides the fast fire-and-forget
// producer instead of the outbox.
package depth

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tyr/domain/matching"
	"tyr/infra/kafka"
	"tyr/service"
)

type Level struct {
	Price    int64 `json:"price"`
	Quantity int64 `json:"quantity"`
}

type Message struct {
	Symbol string  `json:"symbol"`
	At     int64   `json:"at"`
	Bids   []Level `json:"bids"`
	Asks   []Level `json:"asks"`
}

type Publisher struct {
	svc      *service.EngineService
	producer *kafka.Producer
	interval time.Duration
	levels   int
}

func New(svc *service.EngineService, producer *kafka.Producer, interval time.Duration, levels int) *Publisher {
	return &Publisher{
		svc:      svc,
		producer: producer,
		interval: interval,
		levels:   levels,
	}
}

func (p *Publisher) Start(ctx context.Context) {
	log.Println("[depth] started")

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.publishOnce(ctx)
			}
		}
	}()
}

func (p *Publisher) publishOnce(ctx context.Context) {
	for _, sec := range p.svc.Securities() {
		msg := Message{
			Symbol: sec.Symbol,
			At:     time.Now().UnixNano(),
			Bids:   p.side(sec.Symbol, matching.Buy),
			Asks:   p.side(sec.Symbol, matching.Sell),
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			log.Printf("[depth] encode %s: %v", sec.Symbol, err)
			continue
		}
		if err := p.producer.Send(ctx, sec.Symbol, payload); err != nil {
			log.Printf("[depth] publish %s: %v", sec.Symbol, err)
		}
	}
}

func (p *Publisher) side(symbol string, side matching.Side) []Level {
	book, err := p.svc.Depth(symbol, side, p.levels)
	if err != nil {
		return nil
	}
	levels := make([]Level, 0, len(book))
	for _, l := range book {
		levels = append(levels, Level{Price: l.Price, Quantity: l.Quantity})
	}
	return levels
}
