package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"growth-server/internal/notifications"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

// RedemptionStore defines the database operations required by RedemptionProcessor
type RedemptionStore interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	LockRedemptionSource(ctx context.Context, source string, sourceID string) error
	GetRedemptionBySource(ctx context.Context, source string, sourceID string) (store.Redemption, error)
	CreateRedemption(ctx context.Context, params store.CreateRedemptionParams) (store.Redemption, error)
	GetRedemptionByID(ctx context.Context, redemptionID uuid.UUID) (store.Redemption, error)
	GetRedemptionByIDForUpdate(ctx context.Context, redemptionID uuid.UUID) (store.Redemption, error)
	ClaimRedemption(ctx context.Context, redemptionID uuid.UUID, creatorID uuid.UUID, params store.ClaimRedemptionParams) (store.Redemption, error)
	ApproveRedemption(ctx context.Context, redemptionID uuid.UUID, approvedBy uuid.UUID) (store.Redemption, error)
	FulfillRedemption(ctx context.Context, redemptionID uuid.UUID, params store.FulfillRedemptionParams) (store.Redemption, error)
	ListRedemptionsByCreator(ctx context.Context, creatorID uuid.UUID, limit int, offset int) ([]store.Redemption, error)
	ListRedemptionsByStatus(ctx context.Context, status string, limit int, offset int) ([]store.Redemption, error)
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
	GetRewardByID(ctx context.Context, rewardID uuid.UUID) (store.Reward, error)
}

// Allocator issues redemption display ids
type Allocator interface {
	Allocate(ctx context.Context, counter string) (string, error)
}

// Notifier delivers best-effort notifications
type Notifier interface {
	Notify(ctx context.Context, n notifications.Notification)
}
