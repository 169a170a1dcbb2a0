package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"ledgerhook/internal/core"

	"github.com/segmentio/kafka-go"
)

const defaultTopic = "ledger_entry_recorded"

// Publisher emits entry-recorded events to a Kafka topic. Events are keyed
// by transaction hash so redeliveries of the same on-chain event land in
// the same partition.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(broker string, topic string) *Publisher {
	if topic == "" {
		topic = defaultTopic
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) PublishEntryRecorded(ctx context.Context, event core.EntryRecordedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal entry recorded event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TxHash),
		Value: data,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
