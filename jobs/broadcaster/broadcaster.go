// Package broadcaster drains the trade outbox to Kafka. Delivery is
// at-least-once: an event is marked SENT before the publish and ACKED
// only on broker confirmation, so a crash between the two replays it.
package broadcaster

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"

	"tyr/infra/outbox"
)

type Broadcaster struct {
	box      *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

func New(box *outbox.Outbox, brokers []string, topic string) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		box:      box,
		producer: producer,
		topic:    topic,
		interval: 250 * time.Millisecond,
	}, nil
}

func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

func (b *Broadcaster) drainOnce() {
	err := b.box.ScanPending(func(seq uint64, e outbox.Entry) error {
		if err := b.box.MarkSent(seq); err != nil {
			return err
		}

		payload, err := json.Marshal(e.Event)
		if err != nil {
			return err
		}
		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(e.Event.Symbol),
			Value: sarama.ByteEncoder(payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			// FAILED entries are picked up again on the next sweep.
			_ = b.box.MarkFailed(seq)
			return nil
		}

		return b.box.MarkAcked(seq)
	})
	if err != nil {
		log.Printf("[broadcaster] drain: %v", err)
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
