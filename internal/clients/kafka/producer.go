package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"growth-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// Producer handles publishing domain events to Kafka
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:        kafka.TCP(config.Brokers...),
		Topic:       config.Topic,
		Balancer:    &kafka.Hash{},
		Async:       false,
		Compression: kafka.Snappy,
		BatchSize:   100,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// EventMessage represents an event message structure
type EventMessage struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	CreatorID string                 `json:"creator_id"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

// PublishEvent publishes an event to Kafka. Events are keyed by creator so one
// creator's events stay ordered within a partition.
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.CreatorID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "creator_id", Value: []byte(event.CreatorID)},
		},
		Time: event.Timestamp,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to publish event to Kafka", err)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug(ctx, "event published to Kafka")
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
