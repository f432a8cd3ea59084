package notifications

import (
	"context"

	"growth-server/internal/observability"

	"github.com/google/uuid"
)

const (
	KindMilestoneApproved   = "milestone.approved"
	KindMilestoneRejected   = "milestone.rejected"
	KindCompetitionWon      = "competition.won"
	KindPeriodWon           = "period.won"
	KindRedemptionFulfilled = "redemption.fulfilled"
)

// Notification is one message to one creator
type Notification struct {
	Kind      string
	Recipient uuid.UUID
	Payload   map[string]interface{}
}

// Dispatcher fans a notification out to every configured channel. A failing channel
// is logged and does not stop the others.
type Dispatcher struct {
	channels []Channel
	logger   *observability.Logger
}

func NewDispatcher(logger *observability.Logger, channels ...Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		logger:   logger,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, n Notification) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "notification_kind", Value: n.Kind},
		observability.Field{Key: "recipient_id", Value: n.Recipient.String()},
	)

	for _, ch := range d.channels {
		if err := ch.Send(ctx, n); err != nil {
			d.logger.Error(observability.WithFields(ctx, observability.Field{Key: "channel", Value: ch.Name()}), "failed to deliver notification", err)
		}
	}
}

// Nop discards every notification
type Nop struct{}

func (Nop) Notify(context.Context, Notification) {}
