package notifications

import (
	"context"
	"time"

	"growth-server/internal/clients/kafka"

	"github.com/google/uuid"
)

// EventChannel publishes notifications as domain events so downstream consumers
// (CRM sync, analytics) see every milestone decision, win and payout.
type EventChannel struct {
	publisher EventPublisher
	now       func() time.Time
}

func NewEventChannel(publisher EventPublisher) *EventChannel {
	return &EventChannel{
		publisher: publisher,
		now:       time.Now,
	}
}

func (c *EventChannel) Name() string { return "event" }

func (c *EventChannel) Send(ctx context.Context, n Notification) error {
	return c.publisher.PublishEvent(ctx, kafka.EventMessage{
		ID:        uuid.NewString(),
		Type:      n.Kind,
		CreatorID: n.Recipient.String(),
		Data:      n.Payload,
		Timestamp: c.now().UTC(),
	})
}
