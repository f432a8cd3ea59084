package processor

import (
	"context"
	"errors"
	"strings"

	"growth-server/internal/observability"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrRewardNotFound         = errors.New("reward not found")
	ErrInvalidCategory        = errors.New("invalid reward category")
	ErrInvalidFulfillmentType = errors.New("invalid fulfillment type")
	ErrInvalidTier            = errors.New("invalid milestone tier")
	ErrRewardTargetMissing    = errors.New("milestone rewards need a tier and ranked rewards need a rank")
	ErrInvalidAmount          = errors.New("reward amounts do not match its fulfillment type")
	ErrRewardSlotTaken        = errors.New("an active reward already exists for this tier or rank")
)

type RewardProcessor struct {
	store  RewardStore
	logger *observability.Logger
}

func New(store RewardStore, logger *observability.Logger) RewardProcessor {
	return RewardProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateRewardRequest represents a request to add a reward to the catalog
type CreateRewardRequest struct {
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

// CreateReward adds a reward to the catalog
func (p *RewardProcessor) CreateReward(ctx context.Context, req CreateRewardRequest) (store.Reward, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "reward_name", Value: req.Name},
		observability.Field{Key: "reward_category", Value: req.Category},
	)

	if err := validateReward(req); err != nil {
		return store.Reward{}, err
	}

	reward, err := p.store.CreateReward(ctx, store.CreateRewardParams{
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		Category:         req.Category,
		Tier:             req.Tier,
		Rank:             req.Rank,
		FulfillmentType:  req.FulfillmentType,
		CashAmountCents:  req.CashAmountCents,
		StoreCreditCents: req.StoreCreditCents,
		ProductName:      req.ProductName,
	})
	if err != nil {
		if errors.Is(err, store.ErrUniqueViolation) {
			return store.Reward{}, ErrRewardSlotTaken
		}
		p.logger.Error(ctx, "failed to create reward", err)
		return store.Reward{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reward_id", Value: reward.ID.String()}), "reward created successfully")
	return reward, nil
}

func validateReward(req CreateRewardRequest) error {
	switch req.Category {
	case store.RewardCategoryMilestone:
		if req.Tier == nil || req.Rank != nil {
			return ErrRewardTargetMissing
		}
		if !IsValidTier(*req.Tier) {
			return ErrInvalidTier
		}
	case store.RewardCategoryVolume, store.RewardCategoryGMV, store.RewardCategoryCompetition:
		if req.Rank == nil || *req.Rank < 1 || req.Tier != nil {
			return ErrRewardTargetMissing
		}
	default:
		return ErrInvalidCategory
	}

	if req.CashAmountCents < 0 || req.StoreCreditCents < 0 {
		return ErrInvalidAmount
	}
	hasProduct := req.ProductName != nil && strings.TrimSpace(*req.ProductName) != ""

	switch req.FulfillmentType {
	case store.FulfillmentTypeCash:
		if req.CashAmountCents == 0 {
			return ErrInvalidAmount
		}
	case store.FulfillmentTypeStoreCredit:
		if req.StoreCreditCents == 0 {
			return ErrInvalidAmount
		}
	case store.FulfillmentTypeProduct:
		if !hasProduct {
			return ErrInvalidAmount
		}
	case store.FulfillmentTypeMixed:
		if req.CashAmountCents == 0 && req.StoreCreditCents == 0 {
			return ErrInvalidAmount
		}
	default:
		return ErrInvalidFulfillmentType
	}
	return nil
}

// IsValidTier reports whether tier is a known milestone tier
func IsValidTier(tier string) bool {
	switch tier {
	case store.MilestoneTier100K, store.MilestoneTier500K, store.MilestoneTier1M:
		return true
	}
	return false
}

// GetReward retrieves a reward by ID
func (p *RewardProcessor) GetReward(ctx context.Context, rewardID uuid.UUID) (store.Reward, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "reward_id", Value: rewardID.String()})

	reward, err := p.store.GetRewardByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Reward{}, ErrRewardNotFound
		}
		p.logger.Error(ctx, "failed to get reward", err)
		return store.Reward{}, err
	}
	return reward, nil
}

// ListRewards lists the catalog, optionally filtered by category
func (p *RewardProcessor) ListRewards(ctx context.Context, category string) ([]store.Reward, error) {
	if category != "" && !isValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	rewards, err := p.store.ListRewards(ctx, category)
	if err != nil {
		p.logger.Error(ctx, "failed to list rewards", err)
		return nil, err
	}
	return rewards, nil
}

// SetRewardActive activates or retires a reward. Redemptions already issued keep
// their snapshot of the reward.
func (p *RewardProcessor) SetRewardActive(ctx context.Context, rewardID uuid.UUID, active bool) (store.Reward, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "reward_id", Value: rewardID.String()},
		observability.Field{Key: "active", Value: active},
	)

	status := store.RewardStatusInactive
	if active {
		status = store.RewardStatusActive
	}

	reward, err := p.store.SetRewardStatus(ctx, rewardID, status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Reward{}, ErrRewardNotFound
		case errors.Is(err, store.ErrUniqueViolation):
			return store.Reward{}, ErrRewardSlotTaken
		}
		p.logger.Error(ctx, "failed to set reward status", err)
		return store.Reward{}, err
	}

	p.logger.Info(ctx, "reward status updated")
	return reward, nil
}

// ActiveRewardsFor returns the active rewards of a category, ranked rewards first
func (p *RewardProcessor) ActiveRewardsFor(ctx context.Context, category string) ([]store.Reward, error) {
	if !isValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	rewards, err := p.store.GetActiveRewardsByCategory(ctx, category)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "reward_category", Value: category}), "failed to get active rewards", err)
		return nil, err
	}
	return rewards, nil
}

// RewardForTier returns the active milestone reward for tier, or nil when none is
// configured.
func (p *RewardProcessor) RewardForTier(ctx context.Context, tier string) (*store.Reward, error) {
	reward, err := p.store.GetActiveRewardByTier(ctx, tier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "tier", Value: tier}), "failed to get reward for tier", err)
		return nil, err
	}
	return &reward, nil
}

// RewardForRank returns the active reward configured for a winning rank of category,
// or nil when none is configured.
func (p *RewardProcessor) RewardForRank(ctx context.Context, category string, rank int) (*store.Reward, error) {
	rewards, err := p.ActiveRewardsFor(ctx, category)
	if err != nil {
		return nil, err
	}
	for i := range rewards {
		if rewards[i].Rank != nil && *rewards[i].Rank == rank {
			return &rewards[i], nil
		}
	}
	return nil, nil
}

func isValidCategory(category string) bool {
	switch category {
	case store.RewardCategoryMilestone, store.RewardCategoryVolume, store.RewardCategoryGMV, store.RewardCategoryCompetition:
		return true
	}
	return false
}
