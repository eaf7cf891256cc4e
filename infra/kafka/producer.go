package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

type Config struct {
	Brokers []string
	Topic   string
	// Lossy trades durability for latency: fire-and-forget with
	// leader-only acks. Suited to feeds superseded by the next tick,
	// like market depth.
	Lossy bool
}

// Producer publishes keyed messages to a single topic. Messages sharing a
// key (the security symbol) land on one partition, so per-symbol ordering
// holds.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(cfg Config) *Producer {
	acks := kafka.RequireAll
	if cfg.Lossy {
		acks = kafka.RequireOne
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			RequiredAcks: acks,
			Async:        cfg.Lossy,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *Producer) Send(ctx context.Context, symbol string, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(symbol),
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
