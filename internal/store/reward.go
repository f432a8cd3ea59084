package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateRewardParams represents parameters for creating a reward
type CreateRewardParams struct {
	Name             string
	Description      *string
	Category         string
	Tier             *string
	Rank             *int
	FulfillmentType  string
	CashAmountCents  int64
	StoreCreditCents int64
	ProductName      *string
}

const rewardColumns = `id, name, description, category, tier, rank, fulfillment_type, cash_amount_cents, store_credit_cents, product_name, status, created_at, updated_at`

const sqlCreateReward = `
INSERT INTO rewards (name, description, category, tier, rank, fulfillment_type, cash_amount_cents, store_credit_cents, product_name)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + rewardColumns

// CreateReward creates a new reward. Only one active reward may exist per
// (category, tier) and (category, rank); a clash returns ErrUniqueViolation.
func (s *Store) CreateReward(ctx context.Context, params CreateRewardParams) (Reward, error) {
	var reward Reward
	err := s.conn(ctx).GetContext(ctx, &reward, sqlCreateReward,
		params.Name,
		params.Description,
		params.Category,
		params.Tier,
		params.Rank,
		params.FulfillmentType,
		params.CashAmountCents,
		params.StoreCreditCents,
		params.ProductName)
	if err != nil {
		if isUniqueViolation(err) {
			return Reward{}, fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		}
		return Reward{}, fmt.Errorf("failed to create reward: %w", err)
	}
	return reward, nil
}

const sqlGetRewardByID = `
SELECT ` + rewardColumns + `
FROM rewards
WHERE id = $1
`

// GetRewardByID retrieves a reward by ID
func (s *Store) GetRewardByID(ctx context.Context, rewardID uuid.UUID) (Reward, error) {
	var reward Reward
	if err := s.conn(ctx).GetContext(ctx, &reward, sqlGetRewardByID, rewardID); err != nil {
		if isNoRows(err) {
			return Reward{}, ErrNotFound
		}
		return Reward{}, fmt.Errorf("failed to get reward by id: %w", err)
	}
	return reward, nil
}

const sqlGetActiveRewardsByCategory = `
SELECT ` + rewardColumns + `
FROM rewards
WHERE category = $1 AND status = 'active'
ORDER BY rank ASC NULLS LAST, created_at ASC
`

// GetActiveRewardsByCategory retrieves the active rewards of a category
func (s *Store) GetActiveRewardsByCategory(ctx context.Context, category string) ([]Reward, error) {
	rewards := []Reward{}
	if err := s.conn(ctx).SelectContext(ctx, &rewards, sqlGetActiveRewardsByCategory, category); err != nil {
		return nil, fmt.Errorf("failed to get active rewards: %w", err)
	}
	return rewards, nil
}

const sqlGetActiveRewardByTier = `
SELECT ` + rewardColumns + `
FROM rewards
WHERE category = 'milestone' AND tier = $1 AND status = 'active'
`

// GetActiveRewardByTier retrieves the active milestone reward for a tier
func (s *Store) GetActiveRewardByTier(ctx context.Context, tier string) (Reward, error) {
	var reward Reward
	if err := s.conn(ctx).GetContext(ctx, &reward, sqlGetActiveRewardByTier, tier); err != nil {
		if isNoRows(err) {
			return Reward{}, ErrNotFound
		}
		return Reward{}, fmt.Errorf("failed to get reward by tier: %w", err)
	}
	return reward, nil
}

const sqlListRewards = `
SELECT ` + rewardColumns + `
FROM rewards
WHERE ($1::text = '' OR category = $1)
ORDER BY category ASC, rank ASC NULLS LAST, created_at DESC
`

// ListRewards retrieves every reward. An empty category matches all.
func (s *Store) ListRewards(ctx context.Context, category string) ([]Reward, error) {
	rewards := []Reward{}
	if err := s.conn(ctx).SelectContext(ctx, &rewards, sqlListRewards, category); err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}

const sqlSetRewardStatus = `
UPDATE rewards
SET status = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + rewardColumns

// SetRewardStatus activates or deactivates a reward
func (s *Store) SetRewardStatus(ctx context.Context, rewardID uuid.UUID, status string) (Reward, error) {
	var reward Reward
	if err := s.conn(ctx).GetContext(ctx, &reward, sqlSetRewardStatus, rewardID, status); err != nil {
		if isNoRows(err) {
			return Reward{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return Reward{}, fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		}
		return Reward{}, fmt.Errorf("failed to set reward status: %w", err)
	}
	return reward, nil
}
