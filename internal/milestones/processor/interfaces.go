package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"growth-server/internal/notifications"
	redemptionProcessor "growth-server/internal/redemptions/processor"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

// MilestoneStore defines the database operations required by MilestoneProcessor
type MilestoneStore interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetSubmissionByIDForUpdate(ctx context.Context, submissionID uuid.UUID) (store.Submission, error)
	ReviewSubmission(ctx context.Context, submissionID uuid.UUID, params store.ReviewSubmissionParams) (store.Submission, error)
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
}

// RewardCatalog resolves the reward for a milestone tier
type RewardCatalog interface {
	RewardForTier(ctx context.Context, tier string) (*store.Reward, error)
}

// RedemptionIssuer creates reward obligations idempotently
type RedemptionIssuer interface {
	Issue(ctx context.Context, params redemptionProcessor.IssueParams) (store.Redemption, bool, error)
}

// Notifier delivers best-effort notifications
type Notifier interface {
	Notify(ctx context.Context, n notifications.Notification)
}
