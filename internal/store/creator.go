package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateCreatorParams represents parameters for creating a creator
type CreateCreatorParams struct {
	DisplayName     string
	Handle          string
	Email           string
	ShippingAddress *Address
}

const creatorColumns = `id, display_name, handle, email, shipping_address, created_at, updated_at`

const sqlCreateCreator = `
INSERT INTO creators (display_name, handle, email, shipping_address)
VALUES ($1, $2, $3, $4)
RETURNING ` + creatorColumns

// CreateCreator creates a new creator
func (s *Store) CreateCreator(ctx context.Context, params CreateCreatorParams) (Creator, error) {
	var creator Creator
	err := s.conn(ctx).GetContext(ctx, &creator, sqlCreateCreator,
		params.DisplayName,
		params.Handle,
		params.Email,
		params.ShippingAddress)
	if err != nil {
		if isUniqueViolation(err) {
			return Creator{}, fmt.Errorf("%w: creator handle %s", ErrUniqueViolation, params.Handle)
		}
		return Creator{}, fmt.Errorf("failed to create creator: %w", err)
	}
	return creator, nil
}

const sqlGetCreatorByID = `
SELECT ` + creatorColumns + `
FROM creators
WHERE id = $1
`

// GetCreatorByID retrieves a creator by ID
func (s *Store) GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (Creator, error) {
	var creator Creator
	if err := s.conn(ctx).GetContext(ctx, &creator, sqlGetCreatorByID, creatorID); err != nil {
		if isNoRows(err) {
			return Creator{}, ErrNotFound
		}
		return Creator{}, fmt.Errorf("failed to get creator by id: %w", err)
	}
	return creator, nil
}

// UpdateCreatorParams represents parameters for updating a creator profile
type UpdateCreatorParams struct {
	DisplayName     *string
	Handle          *string
	Email           *string
	ShippingAddress *Address
}

const sqlUpdateCreator = `
UPDATE creators
SET display_name = COALESCE($2, display_name),
    handle = COALESCE($3, handle),
    email = COALESCE($4, email),
    shipping_address = COALESCE($5, shipping_address),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + creatorColumns

// UpdateCreator updates a creator profile. Snapshots held by leaderboard entries and
// redemptions are left alone until the creator is explicitly resynced.
func (s *Store) UpdateCreator(ctx context.Context, creatorID uuid.UUID, params UpdateCreatorParams) (Creator, error) {
	var creator Creator
	err := s.conn(ctx).GetContext(ctx, &creator, sqlUpdateCreator,
		creatorID,
		params.DisplayName,
		params.Handle,
		params.Email,
		params.ShippingAddress)
	if err != nil {
		if isNoRows(err) {
			return Creator{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return Creator{}, fmt.Errorf("%w: creator handle", ErrUniqueViolation)
		}
		return Creator{}, fmt.Errorf("failed to update creator: %w", err)
	}
	return creator, nil
}

const sqlResyncEntrySnapshots = `
UPDATE leaderboard_entries
SET display_name = $2, handle = $3, updated_at = CURRENT_TIMESTAMP
WHERE creator_id = $1
`

const sqlResyncRedemptionSnapshots = `
UPDATE redemptions
SET creator_display_name = $2, creator_handle = $3, updated_at = CURRENT_TIMESTAMP
WHERE creator_id = $1 AND status <> 'fulfilled'
`

// ResyncCreatorSnapshots copies the creator's current display name and handle onto
// their leaderboard entries and unfulfilled redemptions. Returns the number of
// entries and redemptions touched.
func (s *Store) ResyncCreatorSnapshots(ctx context.Context, creator Creator) (int64, int64, error) {
	entries, err := s.conn(ctx).ExecContext(ctx, sqlResyncEntrySnapshots, creator.ID, creator.DisplayName, creator.Handle)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to resync leaderboard snapshots: %w", err)
	}
	redemptions, err := s.conn(ctx).ExecContext(ctx, sqlResyncRedemptionSnapshots, creator.ID, creator.DisplayName, creator.Handle)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to resync redemption snapshots: %w", err)
	}
	entryCount, _ := entries.RowsAffected()
	redemptionCount, _ := redemptions.RowsAffected()
	return entryCount, redemptionCount, nil
}
