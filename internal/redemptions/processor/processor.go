package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"growth-server/internal/notifications"
	"growth-server/internal/observability"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrRedemptionNotFound = errors.New("redemption not found")
	ErrNotOwner           = errors.New("redemption belongs to another creator")
	ErrNotAwaitingClaim   = errors.New("redemption is not awaiting claim")
	ErrNotPending         = errors.New("redemption is not pending approval")
	ErrAlreadyFulfilled   = errors.New("redemption already fulfilled")
	ErrPaymentRequired    = errors.New("payment method and handle are required for cash rewards")
	ErrShippingRequired   = errors.New("a shipping address is required for product rewards")
	ErrFulfillmentDetails = errors.New("missing fulfillment details for this reward type")
	ErrRedemptionExists   = errors.New("a redemption already exists for this source")
	ErrInvalidSource      = errors.New("invalid redemption source")
	ErrInvalidStatus      = errors.New("invalid redemption status")
	ErrCreatorNotFound    = errors.New("creator not found")
	ErrRewardNotFound     = errors.New("reward not found")
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// CompetitionSourceID is the idempotency key of a competition win
func CompetitionSourceID(competitionID uuid.UUID, rank int) string {
	return fmt.Sprintf("%s:%d", competitionID, rank)
}

// PeriodSourceID is the idempotency key of a weekly or monthly leaderboard win
func PeriodSourceID(lbType, period string, rank int) string {
	return fmt.Sprintf("%s:%d", PeriodSourcePrefix(lbType, period), rank)
}

// PeriodSourcePrefix is shared by every winning rank of one period
func PeriodSourcePrefix(lbType, period string) string {
	return fmt.Sprintf("%s:%s", lbType, period)
}

type RedemptionProcessor struct {
	store     RedemptionStore
	allocator Allocator
	notifier  Notifier
	logger    *observability.Logger
	now       func() time.Time
}

func New(store RedemptionStore, allocator Allocator, notifier Notifier, logger *observability.Logger) RedemptionProcessor {
	return RedemptionProcessor{
		store:     store,
		allocator: allocator,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// IssueParams describes one reward obligation
type IssueParams struct {
	CreatorID          uuid.UUID
	CreatorDisplayName string
	CreatorHandle      string
	Reward             store.Reward
	Source             string
	SourceID           string
	// Status defaults to awaiting_claim
	Status string
}

// Issue creates the redemption owed for (Source, SourceID) unless one already exists,
// in which case the existing one is returned with created false. Concurrent callers
// for the same pair serialize on a source lock; the unique index is the backstop.
// Issue joins the caller's transaction when ctx carries one.
func (p *RedemptionProcessor) Issue(ctx context.Context, params IssueParams) (redemption store.Redemption, created bool, err error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "redemption_source", Value: params.Source},
		observability.Field{Key: "redemption_source_id", Value: params.SourceID},
		observability.Field{Key: "creator_id", Value: params.CreatorID.String()},
	)

	if !isValidSource(params.Source) || strings.TrimSpace(params.SourceID) == "" {
		return store.Redemption{}, false, ErrInvalidSource
	}
	status := params.Status
	if status == "" {
		status = store.RedemptionStatusAwaitingClaim
	}

	err = p.store.WithTx(ctx, func(ctx context.Context) error {
		created = false
		if err := p.store.LockRedemptionSource(ctx, params.Source, params.SourceID); err != nil {
			return err
		}

		existing, err := p.store.GetRedemptionBySource(ctx, params.Source, params.SourceID)
		if err == nil {
			redemption = existing
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		displayID, err := p.allocator.Allocate(ctx, store.CounterRedemptions)
		if err != nil {
			return err
		}

		rewardID := params.Reward.ID
		redemption, err = p.store.CreateRedemption(ctx, store.CreateRedemptionParams{
			DisplayID:          displayID,
			CreatorID:          params.CreatorID,
			CreatorDisplayName: params.CreatorDisplayName,
			CreatorHandle:      params.CreatorHandle,
			RewardID:           &rewardID,
			RewardName:         params.Reward.Name,
			Source:             params.Source,
			SourceID:           params.SourceID,
			FulfillmentType:    params.Reward.FulfillmentType,
			Status:             status,
			CashAmountCents:    params.Reward.CashAmountCents,
			StoreCreditCents:   params.Reward.StoreCreditCents,
		})
		if err != nil {
			if errors.Is(err, store.ErrUniqueViolation) {
				return ErrRedemptionExists
			}
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRedemptionExists) {
			p.logger.Error(ctx, "failed to issue redemption", err)
		}
		return store.Redemption{}, false, err
	}

	if created {
		p.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "redemption_id", Value: redemption.ID.String()},
			observability.Field{Key: "display_id", Value: redemption.DisplayID},
		), "redemption issued")
	}
	return redemption, created, nil
}

// ClaimRequest carries the creator's delivery details
type ClaimRequest struct {
	PaymentMethod   string
	PaymentHandle   string
	ShippingAddress *store.Address
}

// Claim records delivery details on a redemption owned by creatorID and moves it to
// claimed. Product rewards fall back to the creator's address on file.
func (p *RedemptionProcessor) Claim(ctx context.Context, creatorID, redemptionID uuid.UUID, req ClaimRequest) (store.Redemption, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "redemption_id", Value: redemptionID.String()},
		observability.Field{Key: "creator_id", Value: creatorID.String()},
	)

	var claimed store.Redemption
	err := p.store.WithTx(ctx, func(ctx context.Context) error {
		redemption, err := p.store.GetRedemptionByIDForUpdate(ctx, redemptionID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRedemptionNotFound
			}
			return err
		}
		if redemption.CreatorID != creatorID {
			return ErrNotOwner
		}
		if !isAwaitingClaim(redemption.Status) {
			return ErrNotAwaitingClaim
		}

		params := store.ClaimRedemptionParams{ClaimedAt: p.now().UTC()}

		if needsPayment(redemption) {
			method := strings.TrimSpace(req.PaymentMethod)
			handle := strings.TrimSpace(req.PaymentHandle)
			if method == "" || handle == "" {
				return ErrPaymentRequired
			}
			params.PaymentMethod = &method
			params.PaymentHandle = &handle
		}

		if needsShipping(redemption) {
			address := req.ShippingAddress
			if address.IsZero() {
				creator, err := p.store.GetCreatorByID(ctx, creatorID)
				if err != nil && !errors.Is(err, store.ErrNotFound) {
					return err
				}
				address = creator.ShippingAddress
			}
			if address.IsZero() {
				return ErrShippingRequired
			}
			params.ShippingAddress = address
		}

		claimed, err = p.store.ClaimRedemption(ctx, redemptionID, creatorID, params)
		if errors.Is(err, store.ErrConditionNotMet) {
			return ErrNotAwaitingClaim
		}
		return err
	})
	if err != nil {
		if isBusinessError(err) {
			p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reason", Value: err.Error()}), "redemption claim rejected")
		} else {
			p.logger.Error(ctx, "failed to claim redemption", err)
		}
		return store.Redemption{}, err
	}

	p.logger.Info(ctx, "redemption claimed")
	return claimed, nil
}

// FulfillRequest carries what the admin did to deliver the reward
type FulfillRequest struct {
	TrackingNumber  string
	StoreCreditCode string
	PaymentMethod   string
	Note            string
}

// Fulfill marks a redemption delivered. Product rewards need a tracking number and
// store credit needs the issued code.
func (p *RedemptionProcessor) Fulfill(ctx context.Context, adminID, redemptionID uuid.UUID, req FulfillRequest) (store.Redemption, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "redemption_id", Value: redemptionID.String()},
		observability.Field{Key: "admin_id", Value: adminID.String()},
	)

	var fulfilled store.Redemption
	err := p.store.WithTx(ctx, func(ctx context.Context) error {
		redemption, err := p.store.GetRedemptionByIDForUpdate(ctx, redemptionID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRedemptionNotFound
			}
			return err
		}
		if redemption.Status == store.RedemptionStatusFulfilled {
			return ErrAlreadyFulfilled
		}

		if needsShipping(redemption) && strings.TrimSpace(req.TrackingNumber) == "" {
			return fmt.Errorf("%w: tracking number is required", ErrFulfillmentDetails)
		}
		if needsCreditCode(redemption) && strings.TrimSpace(req.StoreCreditCode) == "" {
			return fmt.Errorf("%w: store credit code is required", ErrFulfillmentDetails)
		}

		fulfilled, err = p.store.FulfillRedemption(ctx, redemptionID, store.FulfillRedemptionParams{
			TrackingNumber:  optional(req.TrackingNumber),
			StoreCreditCode: optional(req.StoreCreditCode),
			PaymentMethod:   optional(req.PaymentMethod),
			FulfillmentNote: optional(req.Note),
			FulfilledBy:     adminID,
			FulfilledAt:     p.now().UTC(),
		})
		if errors.Is(err, store.ErrConditionNotMet) {
			return ErrAlreadyFulfilled
		}
		return err
	})
	if err != nil {
		if isBusinessError(err) {
			p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reason", Value: err.Error()}), "redemption fulfillment rejected")
		} else {
			p.logger.Error(ctx, "failed to fulfill redemption", err)
		}
		return store.Redemption{}, err
	}

	p.logger.Info(ctx, "redemption fulfilled")

	payload := map[string]interface{}{
		"redemption_id": fulfilled.ID.String(),
		"display_id":    fulfilled.DisplayID,
		"reward_name":   fulfilled.RewardName,
	}
	if fulfilled.TrackingNumber != nil {
		payload["tracking_number"] = *fulfilled.TrackingNumber
	}
	if fulfilled.StoreCreditCode != nil {
		payload["store_credit_code"] = *fulfilled.StoreCreditCode
	}
	p.notifier.Notify(ctx, notifications.Notification{
		Kind:      notifications.KindRedemptionFulfilled,
		Recipient: fulfilled.CreatorID,
		Payload:   payload,
	})
	return fulfilled, nil
}

// Approve releases a pending manual redemption to the creator
func (p *RedemptionProcessor) Approve(ctx context.Context, adminID, redemptionID uuid.UUID) (store.Redemption, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "redemption_id", Value: redemptionID.String()},
		observability.Field{Key: "admin_id", Value: adminID.String()},
	)

	redemption, err := p.store.ApproveRedemption(ctx, redemptionID, adminID)
	if err != nil {
		if errors.Is(err, store.ErrConditionNotMet) {
			if _, getErr := p.store.GetRedemptionByID(ctx, redemptionID); errors.Is(getErr, store.ErrNotFound) {
				return store.Redemption{}, ErrRedemptionNotFound
			}
			return store.Redemption{}, ErrNotPending
		}
		p.logger.Error(ctx, "failed to approve redemption", err)
		return store.Redemption{}, err
	}

	p.logger.Info(ctx, "redemption approved")
	return redemption, nil
}

// ManualRequest describes an admin-granted reward
type ManualRequest struct {
	CreatorID uuid.UUID
	RewardID  uuid.UUID
	SourceID  string
}

// CreateManual grants a catalog reward outside the automatic flows. The redemption
// starts pending and needs Approve before the creator can claim it. SourceID is the
// admin's idempotency key; reusing one fails with ErrRedemptionExists.
func (p *RedemptionProcessor) CreateManual(ctx context.Context, adminID uuid.UUID, req ManualRequest) (store.Redemption, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: adminID.String()},
		observability.Field{Key: "creator_id", Value: req.CreatorID.String()},
		observability.Field{Key: "reward_id", Value: req.RewardID.String()},
	)

	creator, err := p.store.GetCreatorByID(ctx, req.CreatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Redemption{}, ErrCreatorNotFound
		}
		p.logger.Error(ctx, "failed to get creator", err)
		return store.Redemption{}, err
	}
	reward, err := p.store.GetRewardByID(ctx, req.RewardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Redemption{}, ErrRewardNotFound
		}
		p.logger.Error(ctx, "failed to get reward", err)
		return store.Redemption{}, err
	}

	redemption, created, err := p.Issue(ctx, IssueParams{
		CreatorID:          creator.ID,
		CreatorDisplayName: creator.DisplayName,
		CreatorHandle:      creator.Handle,
		Reward:             reward,
		Source:             store.RedemptionSourceManual,
		SourceID:           req.SourceID,
		Status:             store.RedemptionStatusPending,
	})
	if err != nil {
		return store.Redemption{}, err
	}
	if !created {
		return store.Redemption{}, ErrRedemptionExists
	}
	return redemption, nil
}

// Get returns a redemption. Creators only see their own.
func (p *RedemptionProcessor) Get(ctx context.Context, callerID uuid.UUID, isAdmin bool, redemptionID uuid.UUID) (store.Redemption, error) {
	redemption, err := p.store.GetRedemptionByID(ctx, redemptionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Redemption{}, ErrRedemptionNotFound
		}
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "redemption_id", Value: redemptionID.String()}), "failed to get redemption", err)
		return store.Redemption{}, err
	}
	if !isAdmin && redemption.CreatorID != callerID {
		return store.Redemption{}, ErrRedemptionNotFound
	}
	return redemption, nil
}

// ListForCreator lists a creator's redemptions, newest first
func (p *RedemptionProcessor) ListForCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]store.Redemption, error) {
	limit, offset = page(limit, offset)
	redemptions, err := p.store.ListRedemptionsByCreator(ctx, creatorID, limit, offset)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()}), "failed to list redemptions", err)
		return nil, err
	}
	return redemptions, nil
}

// ListByStatus lists redemptions for the admin queue, oldest first. An empty status
// lists everything.
func (p *RedemptionProcessor) ListByStatus(ctx context.Context, status string, limit, offset int) ([]store.Redemption, error) {
	if status != "" && !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	limit, offset = page(limit, offset)
	redemptions, err := p.store.ListRedemptionsByStatus(ctx, status, limit, offset)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "status", Value: status}), "failed to list redemptions", err)
		return nil, err
	}
	return redemptions, nil
}

func isAwaitingClaim(status string) bool {
	return status == store.RedemptionStatusAwaitingClaim || status == store.RedemptionStatusApproved
}

// Mixed rewards bundle a physical item with cash or store credit.
func needsPayment(r store.Redemption) bool {
	switch r.FulfillmentType {
	case store.FulfillmentTypeCash:
		return true
	case store.FulfillmentTypeMixed:
		return r.CashAmountCents > 0
	}
	return false
}

func needsShipping(r store.Redemption) bool {
	return r.FulfillmentType == store.FulfillmentTypeProduct || r.FulfillmentType == store.FulfillmentTypeMixed
}

func needsCreditCode(r store.Redemption) bool {
	switch r.FulfillmentType {
	case store.FulfillmentTypeStoreCredit:
		return true
	case store.FulfillmentTypeMixed:
		return r.StoreCreditCents > 0
	}
	return false
}

func isValidSource(source string) bool {
	switch source {
	case store.RedemptionSourceMilestone, store.RedemptionSourceVolumeWin, store.RedemptionSourceGMVWin,
		store.RedemptionSourceCompetition, store.RedemptionSourceManual:
		return true
	}
	return false
}

func isValidStatus(status string) bool {
	switch status {
	case store.RedemptionStatusPending, store.RedemptionStatusApproved, store.RedemptionStatusAwaitingClaim,
		store.RedemptionStatusClaimed, store.RedemptionStatusFulfilled:
		return true
	}
	return false
}

func isBusinessError(err error) bool {
	for _, target := range []error{
		ErrRedemptionNotFound, ErrNotOwner, ErrNotAwaitingClaim, ErrAlreadyFulfilled,
		ErrPaymentRequired, ErrShippingRequired, ErrFulfillmentDetails,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
