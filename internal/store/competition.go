package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateCompetitionParams represents parameters for starting a competition
type CreateCompetitionParams struct {
	DisplayID string
	Slug      string
	Type      string
	Name      string
	StartsAt  time.Time
	EndsAt    time.Time
	CreatedBy uuid.UUID
}

const competitionColumns = `id, display_id, slug, type, name, status, starts_at, ends_at, winners, created_by, ended_at, finalized_at, finalized_by, created_at, updated_at`

const sqlCreateCompetition = `
INSERT INTO competitions (display_id, slug, type, name, status, starts_at, ends_at, created_by)
VALUES ($1, $2, $3, $4, 'active', $5, $6, $7)
RETURNING ` + competitionColumns

// CreateCompetition inserts an active competition. The one-active-per-type index
// turns a concurrent second start into ErrUniqueViolation.
func (s *Store) CreateCompetition(ctx context.Context, params CreateCompetitionParams) (Competition, error) {
	var competition Competition
	err := s.conn(ctx).GetContext(ctx, &competition, sqlCreateCompetition,
		params.DisplayID,
		params.Slug,
		params.Type,
		params.Name,
		params.StartsAt,
		params.EndsAt,
		params.CreatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return Competition{}, fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		}
		return Competition{}, fmt.Errorf("failed to create competition: %w", err)
	}
	return competition, nil
}

const sqlGetCompetitionByID = `
SELECT ` + competitionColumns + `
FROM competitions
WHERE id = $1
`

// GetCompetitionByID retrieves a competition by ID
func (s *Store) GetCompetitionByID(ctx context.Context, competitionID uuid.UUID) (Competition, error) {
	var competition Competition
	if err := s.conn(ctx).GetContext(ctx, &competition, sqlGetCompetitionByID, competitionID); err != nil {
		if isNoRows(err) {
			return Competition{}, ErrNotFound
		}
		return Competition{}, fmt.Errorf("failed to get competition by id: %w", err)
	}
	return competition, nil
}

const sqlGetCompetitionByIDForUpdate = sqlGetCompetitionByID + `FOR UPDATE`

// GetCompetitionByIDForUpdate retrieves a competition and row-locks it for the rest
// of the surrounding transaction
func (s *Store) GetCompetitionByIDForUpdate(ctx context.Context, competitionID uuid.UUID) (Competition, error) {
	var competition Competition
	if err := s.conn(ctx).GetContext(ctx, &competition, sqlGetCompetitionByIDForUpdate, competitionID); err != nil {
		if isNoRows(err) {
			return Competition{}, ErrNotFound
		}
		return Competition{}, fmt.Errorf("failed to lock competition: %w", err)
	}
	return competition, nil
}

const sqlGetActiveCompetitionByType = `
SELECT ` + competitionColumns + `
FROM competitions
WHERE type = $1 AND status = 'active'
`

// GetActiveCompetitionByType retrieves the active competition of a type
func (s *Store) GetActiveCompetitionByType(ctx context.Context, competitionType string) (Competition, error) {
	var competition Competition
	if err := s.conn(ctx).GetContext(ctx, &competition, sqlGetActiveCompetitionByType, competitionType); err != nil {
		if isNoRows(err) {
			return Competition{}, ErrNotFound
		}
		return Competition{}, fmt.Errorf("failed to get active competition: %w", err)
	}
	return competition, nil
}

const sqlEndCompetition = `
UPDATE competitions
SET status = 'ended', ended_at = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'active'
RETURNING ` + competitionColumns

// EndCompetition moves an active competition to ended. Returns ErrConditionNotMet
// when it is not active anymore.
func (s *Store) EndCompetition(ctx context.Context, competitionID uuid.UUID, endedAt time.Time) (Competition, error) {
	var competition Competition
	if err := s.conn(ctx).GetContext(ctx, &competition, sqlEndCompetition, competitionID, endedAt); err != nil {
		if isNoRows(err) {
			return Competition{}, ErrConditionNotMet
		}
		return Competition{}, fmt.Errorf("failed to end competition: %w", err)
	}
	return competition, nil
}

const sqlListExpiredActiveCompetitions = `
SELECT ` + competitionColumns + `
FROM competitions
WHERE status = 'active' AND ends_at <= $1
ORDER BY ends_at ASC
`

// ListExpiredActiveCompetitions retrieves active competitions whose end time has passed
func (s *Store) ListExpiredActiveCompetitions(ctx context.Context, now time.Time) ([]Competition, error) {
	competitions := []Competition{}
	if err := s.conn(ctx).SelectContext(ctx, &competitions, sqlListExpiredActiveCompetitions, now); err != nil {
		return nil, fmt.Errorf("failed to list expired competitions: %w", err)
	}
	return competitions, nil
}

const sqlFinalizeCompetition = `
UPDATE competitions
SET status = 'finalized', winners = $2, finalized_by = $3, finalized_at = $4, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'ended'
RETURNING ` + competitionColumns

// FinalizeCompetition records winners and moves an ended competition to finalized.
// Returns ErrConditionNotMet when it is not ended.
func (s *Store) FinalizeCompetition(ctx context.Context, competitionID uuid.UUID, winners Winners, finalizedBy uuid.UUID, finalizedAt time.Time) (Competition, error) {
	var competition Competition
	err := s.conn(ctx).GetContext(ctx, &competition, sqlFinalizeCompetition, competitionID, winners, finalizedBy, finalizedAt)
	if err != nil {
		if isNoRows(err) {
			return Competition{}, ErrConditionNotMet
		}
		return Competition{}, fmt.Errorf("failed to finalize competition: %w", err)
	}
	return competition, nil
}

const sqlListCompetitions = `
SELECT ` + competitionColumns + `
FROM competitions
WHERE ($1::text = '' OR status = $1)
ORDER BY starts_at DESC
LIMIT $2 OFFSET $3
`

// ListCompetitions retrieves competitions, newest first. An empty status matches all.
func (s *Store) ListCompetitions(ctx context.Context, status string, limit, offset int) ([]Competition, error) {
	competitions := []Competition{}
	if err := s.conn(ctx).SelectContext(ctx, &competitions, sqlListCompetitions, status, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}
