package notifications

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=notifications

import (
	"context"

	"growth-server/internal/clients/kafka"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

// Notifier delivers a notification on a best-effort basis. It never reports failure
// to the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Channel is one delivery path a Dispatcher fans out to
type Channel interface {
	Name() string
	Send(ctx context.Context, n Notification) error
}

// Mailer sends a rendered email
type Mailer interface {
	SendEmail(ctx context.Context, to string, subject string, htmlContent string) (string, error)
}

// EventPublisher writes a domain event to the event bus
type EventPublisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// CreatorLookup resolves the recipient of a notification
type CreatorLookup interface {
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
}
