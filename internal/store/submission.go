package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateSubmissionParams represents parameters for creating a submission
type CreateSubmissionParams struct {
	DisplayID       string
	CreatorID       uuid.UUID
	Kind            string
	Fingerprint     string
	URL             *string
	StoragePath     *string
	PeriodKey       string
	Status          string
	ClaimedTier     *string
	CollaborationID *uuid.UUID
	CompetitionID   *uuid.UUID
}

const submissionColumns = `id, display_id, creator_id, kind, fingerprint, url, storage_path, period_key, status, claimed_tier, verified_views, rejection_reason, collaboration_id, competition_id, reviewed_by, reviewed_at, created_at, updated_at`

const sqlCreateSubmission = `
INSERT INTO submissions (display_id, creator_id, kind, fingerprint, url, storage_path, period_key, status, claimed_tier, collaboration_id, competition_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + submissionColumns

// CreateSubmission persists a submission. A (creator, fingerprint) collision
// returns ErrUniqueViolation.
func (s *Store) CreateSubmission(ctx context.Context, params CreateSubmissionParams) (Submission, error) {
	var submission Submission
	err := s.conn(ctx).GetContext(ctx, &submission, sqlCreateSubmission,
		params.DisplayID,
		params.CreatorID,
		params.Kind,
		params.Fingerprint,
		params.URL,
		params.StoragePath,
		params.PeriodKey,
		params.Status,
		params.ClaimedTier,
		params.CollaborationID,
		params.CompetitionID)
	if err != nil {
		if isUniqueViolation(err) {
			return Submission{}, fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		}
		return Submission{}, fmt.Errorf("failed to create submission: %w", err)
	}
	return submission, nil
}

const sqlGetSubmissionByCreatorAndFingerprint = `
SELECT ` + submissionColumns + `
FROM submissions
WHERE creator_id = $1 AND fingerprint = $2
`

// GetSubmissionByCreatorAndFingerprint retrieves the creator's submission with the given fingerprint
func (s *Store) GetSubmissionByCreatorAndFingerprint(ctx context.Context, creatorID uuid.UUID, fingerprint string) (Submission, error) {
	var submission Submission
	err := s.conn(ctx).GetContext(ctx, &submission, sqlGetSubmissionByCreatorAndFingerprint, creatorID, fingerprint)
	if err != nil {
		if isNoRows(err) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, fmt.Errorf("failed to get submission by fingerprint: %w", err)
	}
	return submission, nil
}

const sqlGetSubmissionByID = `
SELECT ` + submissionColumns + `
FROM submissions
WHERE id = $1
`

// GetSubmissionByID retrieves a submission by ID
func (s *Store) GetSubmissionByID(ctx context.Context, submissionID uuid.UUID) (Submission, error) {
	var submission Submission
	if err := s.conn(ctx).GetContext(ctx, &submission, sqlGetSubmissionByID, submissionID); err != nil {
		if isNoRows(err) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, fmt.Errorf("failed to get submission by id: %w", err)
	}
	return submission, nil
}

const sqlGetSubmissionByIDForUpdate = sqlGetSubmissionByID + `FOR UPDATE`

// GetSubmissionByIDForUpdate retrieves a submission and row-locks it for the
// rest of the surrounding transaction
func (s *Store) GetSubmissionByIDForUpdate(ctx context.Context, submissionID uuid.UUID) (Submission, error) {
	var submission Submission
	if err := s.conn(ctx).GetContext(ctx, &submission, sqlGetSubmissionByIDForUpdate, submissionID); err != nil {
		if isNoRows(err) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, fmt.Errorf("failed to lock submission: %w", err)
	}
	return submission, nil
}

// ReviewSubmissionParams represents an admin decision on a pending submission
type ReviewSubmissionParams struct {
	Status          string
	VerifiedViews   *int64
	RejectionReason *string
	ReviewedBy      uuid.UUID
	ReviewedAt      time.Time
}

const sqlReviewSubmission = `
UPDATE submissions
SET status = $2,
    verified_views = $3,
    rejection_reason = $4,
    reviewed_by = $5,
    reviewed_at = $6,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING ` + submissionColumns

// ReviewSubmission moves a pending submission to its decided status. Returns
// ErrConditionNotMet when the submission is no longer pending.
func (s *Store) ReviewSubmission(ctx context.Context, submissionID uuid.UUID, params ReviewSubmissionParams) (Submission, error) {
	var submission Submission
	err := s.conn(ctx).GetContext(ctx, &submission, sqlReviewSubmission,
		submissionID,
		params.Status,
		params.VerifiedViews,
		params.RejectionReason,
		params.ReviewedBy,
		params.ReviewedAt)
	if err != nil {
		if isNoRows(err) {
			return Submission{}, ErrConditionNotMet
		}
		return Submission{}, fmt.Errorf("failed to review submission: %w", err)
	}
	return submission, nil
}

const sqlListSubmissionsByCreator = `
SELECT ` + submissionColumns + `
FROM submissions
WHERE creator_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// ListSubmissionsByCreator retrieves a creator's submissions, newest first
func (s *Store) ListSubmissionsByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]Submission, error) {
	submissions := []Submission{}
	if err := s.conn(ctx).SelectContext(ctx, &submissions, sqlListSubmissionsByCreator, creatorID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list submissions by creator: %w", err)
	}
	return submissions, nil
}

const sqlListSubmissionsByStatus = `
SELECT ` + submissionColumns + `
FROM submissions
WHERE status = $1 AND ($2::text = '' OR kind = $2)
ORDER BY created_at ASC
LIMIT $3 OFFSET $4
`

// ListSubmissionsByStatus retrieves submissions in a status, oldest first.
// An empty kind matches every kind.
func (s *Store) ListSubmissionsByStatus(ctx context.Context, status, kind string, limit, offset int) ([]Submission, error) {
	submissions := []Submission{}
	if err := s.conn(ctx).SelectContext(ctx, &submissions, sqlListSubmissionsByStatus, status, kind, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list submissions by status: %w", err)
	}
	return submissions, nil
}
