package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateRedemptionParams represents parameters for creating a redemption
type CreateRedemptionParams struct {
	DisplayID          string
	CreatorID          uuid.UUID
	CreatorDisplayName string
	CreatorHandle      string
	RewardID           *uuid.UUID
	RewardName         string
	Source             string
	SourceID           string
	FulfillmentType    string
	Status             string
	CashAmountCents    int64
	StoreCreditCents   int64
}

const redemptionColumns = `id, display_id, creator_id, creator_display_name, creator_handle, reward_id, reward_name, source, source_id, fulfillment_type, status, cash_amount_cents, store_credit_cents, payment_method, payment_handle, shipping_address, tracking_number, store_credit_code, fulfillment_note, approved_by, claimed_at, fulfilled_at, fulfilled_by, created_at, updated_at`

const sqlLockRedemptionSource = `SELECT pg_advisory_xact_lock(hashtextextended('redemption:' || $1::text || ':' || $2::text, 0))`

// LockRedemptionSource serializes redemption creation for one (source, sourceId)
// until the surrounding transaction ends. It must be called inside WithTx.
func (s *Store) LockRedemptionSource(ctx context.Context, source, sourceID string) error {
	if !InTx(ctx) {
		return fmt.Errorf("redemption source lock requires a transaction")
	}
	if _, err := s.conn(ctx).ExecContext(ctx, sqlLockRedemptionSource, source, sourceID); err != nil {
		return fmt.Errorf("failed to lock redemption source: %w", err)
	}
	return nil
}

const sqlCreateRedemption = `
INSERT INTO redemptions (display_id, creator_id, creator_display_name, creator_handle, reward_id, reward_name, source, source_id, fulfillment_type, status, cash_amount_cents, store_credit_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + redemptionColumns

// CreateRedemption inserts a redemption. A (source, sourceId) collision returns
// ErrUniqueViolation.
func (s *Store) CreateRedemption(ctx context.Context, params CreateRedemptionParams) (Redemption, error) {
	var redemption Redemption
	err := s.conn(ctx).GetContext(ctx, &redemption, sqlCreateRedemption,
		params.DisplayID,
		params.CreatorID,
		params.CreatorDisplayName,
		params.CreatorHandle,
		params.RewardID,
		params.RewardName,
		params.Source,
		params.SourceID,
		params.FulfillmentType,
		params.Status,
		params.CashAmountCents,
		params.StoreCreditCents)
	if err != nil {
		if isUniqueViolation(err) {
			return Redemption{}, fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		}
		return Redemption{}, fmt.Errorf("failed to create redemption: %w", err)
	}
	return redemption, nil
}

const sqlGetRedemptionBySource = `
SELECT ` + redemptionColumns + `
FROM redemptions
WHERE source = $1 AND source_id = $2
`

// GetRedemptionBySource retrieves the redemption issued for a (source, sourceId) pair
func (s *Store) GetRedemptionBySource(ctx context.Context, source, sourceID string) (Redemption, error) {
	var redemption Redemption
	if err := s.conn(ctx).GetContext(ctx, &redemption, sqlGetRedemptionBySource, source, sourceID); err != nil {
		if isNoRows(err) {
			return Redemption{}, ErrNotFound
		}
		return Redemption{}, fmt.Errorf("failed to get redemption by source: %w", err)
	}
	return redemption, nil
}

const sqlCountRedemptionsBySourcePrefix = `
SELECT COUNT(*)
FROM redemptions
WHERE source = $1 AND source_id LIKE $2::text || '%'
`

// CountRedemptionsBySourcePrefix counts redemptions of a source whose source id
// starts with prefix
func (s *Store) CountRedemptionsBySourcePrefix(ctx context.Context, source, prefix string) (int, error) {
	var count int
	if err := s.conn(ctx).GetContext(ctx, &count, sqlCountRedemptionsBySourcePrefix, source, prefix); err != nil {
		return 0, fmt.Errorf("failed to count redemptions: %w", err)
	}
	return count, nil
}

const sqlGetRedemptionByID = `
SELECT ` + redemptionColumns + `
FROM redemptions
WHERE id = $1
`

// GetRedemptionByID retrieves a redemption by ID
func (s *Store) GetRedemptionByID(ctx context.Context, redemptionID uuid.UUID) (Redemption, error) {
	var redemption Redemption
	if err := s.conn(ctx).GetContext(ctx, &redemption, sqlGetRedemptionByID, redemptionID); err != nil {
		if isNoRows(err) {
			return Redemption{}, ErrNotFound
		}
		return Redemption{}, fmt.Errorf("failed to get redemption by id: %w", err)
	}
	return redemption, nil
}

const sqlGetRedemptionByIDForUpdate = sqlGetRedemptionByID + `FOR UPDATE`

// GetRedemptionByIDForUpdate retrieves a redemption and row-locks it for the rest of
// the surrounding transaction
func (s *Store) GetRedemptionByIDForUpdate(ctx context.Context, redemptionID uuid.UUID) (Redemption, error) {
	var redemption Redemption
	if err := s.conn(ctx).GetContext(ctx, &redemption, sqlGetRedemptionByIDForUpdate, redemptionID); err != nil {
		if isNoRows(err) {
			return Redemption{}, ErrNotFound
		}
		return Redemption{}, fmt.Errorf("failed to lock redemption: %w", err)
	}
	return redemption, nil
}

// ClaimRedemptionParams holds the creator-supplied claim details
type ClaimRedemptionParams struct {
	PaymentMethod   *string
	PaymentHandle   *string
	ShippingAddress *Address
	ClaimedAt       time.Time
}

const sqlClaimRedemption = `
UPDATE redemptions
SET status = 'claimed',
    payment_method = $3,
    payment_handle = $4,
    shipping_address = $5,
    claimed_at = $6,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND creator_id = $2 AND status IN ('awaiting_claim', 'approved')
RETURNING ` + redemptionColumns

// ClaimRedemption writes claim details and moves the redemption to claimed. Returns
// ErrConditionNotMet unless the redemption belongs to creatorID and is awaiting claim.
func (s *Store) ClaimRedemption(ctx context.Context, redemptionID, creatorID uuid.UUID, params ClaimRedemptionParams) (Redemption, error) {
	var redemption Redemption
	err := s.conn(ctx).GetContext(ctx, &redemption, sqlClaimRedemption,
		redemptionID,
		creatorID,
		params.PaymentMethod,
		params.PaymentHandle,
		params.ShippingAddress,
		params.ClaimedAt)
	if err != nil {
		if isNoRows(err) {
			return Redemption{}, ErrConditionNotMet
		}
		return Redemption{}, fmt.Errorf("failed to claim redemption: %w", err)
	}
	return redemption, nil
}

const sqlApproveRedemption = `
UPDATE redemptions
SET status = 'awaiting_claim', approved_by = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING ` + redemptionColumns

// ApproveRedemption moves a pending redemption to awaiting_claim. Returns
// ErrConditionNotMet when it is not pending.
func (s *Store) ApproveRedemption(ctx context.Context, redemptionID, approvedBy uuid.UUID) (Redemption, error) {
	var redemption Redemption
	if err := s.conn(ctx).GetContext(ctx, &redemption, sqlApproveRedemption, redemptionID, approvedBy); err != nil {
		if isNoRows(err) {
			return Redemption{}, ErrConditionNotMet
		}
		return Redemption{}, fmt.Errorf("failed to approve redemption: %w", err)
	}
	return redemption, nil
}

// FulfillRedemptionParams holds the admin-supplied fulfillment details
type FulfillRedemptionParams struct {
	TrackingNumber  *string
	StoreCreditCode *string
	PaymentMethod   *string
	FulfillmentNote *string
	FulfilledBy     uuid.UUID
	FulfilledAt     time.Time
}

const sqlFulfillRedemption = `
UPDATE redemptions
SET status = 'fulfilled',
    tracking_number = COALESCE($2, tracking_number),
    store_credit_code = COALESCE($3, store_credit_code),
    payment_method = COALESCE($4, payment_method),
    fulfillment_note = COALESCE($5, fulfillment_note),
    fulfilled_by = $6,
    fulfilled_at = $7,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status <> 'fulfilled'
RETURNING ` + redemptionColumns

// FulfillRedemption records fulfillment and moves the redemption to fulfilled.
// Returns ErrConditionNotMet when it is already fulfilled.
func (s *Store) FulfillRedemption(ctx context.Context, redemptionID uuid.UUID, params FulfillRedemptionParams) (Redemption, error) {
	var redemption Redemption
	err := s.conn(ctx).GetContext(ctx, &redemption, sqlFulfillRedemption,
		redemptionID,
		params.TrackingNumber,
		params.StoreCreditCode,
		params.PaymentMethod,
		params.FulfillmentNote,
		params.FulfilledBy,
		params.FulfilledAt)
	if err != nil {
		if isNoRows(err) {
			return Redemption{}, ErrConditionNotMet
		}
		return Redemption{}, fmt.Errorf("failed to fulfill redemption: %w", err)
	}
	return redemption, nil
}

const sqlListRedemptionsByCreator = `
SELECT ` + redemptionColumns + `
FROM redemptions
WHERE creator_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// ListRedemptionsByCreator retrieves a creator's redemptions, newest first
func (s *Store) ListRedemptionsByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]Redemption, error) {
	redemptions := []Redemption{}
	if err := s.conn(ctx).SelectContext(ctx, &redemptions, sqlListRedemptionsByCreator, creatorID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list redemptions by creator: %w", err)
	}
	return redemptions, nil
}

const sqlListRedemptionsByStatus = `
SELECT ` + redemptionColumns + `
FROM redemptions
WHERE ($1::text = '' OR status = $1)
ORDER BY created_at ASC
LIMIT $2 OFFSET $3
`

// ListRedemptionsByStatus retrieves redemptions in a status, oldest first. An empty
// status matches all.
func (s *Store) ListRedemptionsByStatus(ctx context.Context, status string, limit, offset int) ([]Redemption, error) {
	redemptions := []Redemption{}
	if err := s.conn(ctx).SelectContext(ctx, &redemptions, sqlListRedemptionsByStatus, status, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list redemptions by status: %w", err)
	}
	return redemptions, nil
}
