package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"growth-server/internal/store"

	"github.com/google/uuid"
)

// RewardStore defines the database operations required by RewardProcessor
type RewardStore interface {
	CreateReward(ctx context.Context, params store.CreateRewardParams) (store.Reward, error)
	GetRewardByID(ctx context.Context, rewardID uuid.UUID) (store.Reward, error)
	GetActiveRewardsByCategory(ctx context.Context, category string) ([]store.Reward, error)
	GetActiveRewardByTier(ctx context.Context, tier string) (store.Reward, error)
	ListRewards(ctx context.Context, category string) ([]store.Reward, error)
	SetRewardStatus(ctx context.Context, rewardID uuid.UUID, status string) (store.Reward, error)
}
