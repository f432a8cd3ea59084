package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const collaborationColumns = `id, creator_id, brand_name, status, submission_ids, created_at, updated_at`

const sqlCreateCollaboration = `
INSERT INTO collaborations (creator_id, brand_name)
VALUES ($1, $2)
RETURNING ` + collaborationColumns

// CreateCollaboration opens a brand collaboration for a creator
func (s *Store) CreateCollaboration(ctx context.Context, creatorID uuid.UUID, brandName string) (Collaboration, error) {
	var collab Collaboration
	if err := s.conn(ctx).GetContext(ctx, &collab, sqlCreateCollaboration, creatorID, brandName); err != nil {
		return Collaboration{}, fmt.Errorf("failed to create collaboration: %w", err)
	}
	return collab, nil
}

const sqlGetActiveCollaborationByCreator = `
SELECT ` + collaborationColumns + `
FROM collaborations
WHERE creator_id = $1 AND status = 'active'
ORDER BY created_at DESC
LIMIT 1
`

// GetActiveCollaborationByCreator retrieves the creator's most recent active collaboration
func (s *Store) GetActiveCollaborationByCreator(ctx context.Context, creatorID uuid.UUID) (Collaboration, error) {
	var collab Collaboration
	if err := s.conn(ctx).GetContext(ctx, &collab, sqlGetActiveCollaborationByCreator, creatorID); err != nil {
		if isNoRows(err) {
			return Collaboration{}, ErrNotFound
		}
		return Collaboration{}, fmt.Errorf("failed to get active collaboration: %w", err)
	}
	return collab, nil
}

const sqlAppendCollaborationSubmission = `
UPDATE collaborations
SET submission_ids = array_append(submission_ids, $2::uuid),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
  AND status = 'active'
  AND NOT ($2::uuid = ANY(submission_ids))
  AND cardinality(submission_ids) < $3
`

// AppendCollaborationSubmission appends a submission to an active collaboration's
// bounded list. Returns ErrConditionNotMet when the collaboration is not active,
// is full, or already holds the submission.
func (s *Store) AppendCollaborationSubmission(ctx context.Context, collaborationID, submissionID uuid.UUID, max int) error {
	result, err := s.conn(ctx).ExecContext(ctx, sqlAppendCollaborationSubmission, collaborationID, submissionID, max)
	if err != nil {
		return fmt.Errorf("failed to append collaboration submission: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to append collaboration submission: %w", err)
	}
	if rows == 0 {
		return ErrConditionNotMet
	}
	return nil
}

// OrphanedCollabSubmission is a collab submission that is missing from its collaboration list
type OrphanedCollabSubmission struct {
	SubmissionID    uuid.UUID `db:"submission_id"`
	CollaborationID uuid.UUID `db:"collaboration_id"`
}

const sqlListOrphanedCollabSubmissions = `
SELECT s.id AS submission_id, s.collaboration_id
FROM submissions s
JOIN collaborations c ON c.id = s.collaboration_id
WHERE NOT (s.id = ANY(c.submission_ids))
ORDER BY s.created_at ASC
LIMIT $1
`

// ListOrphanedCollabSubmissions finds collab submissions not recorded on their collaboration
func (s *Store) ListOrphanedCollabSubmissions(ctx context.Context, limit int) ([]OrphanedCollabSubmission, error) {
	var orphans []OrphanedCollabSubmission
	if err := s.conn(ctx).SelectContext(ctx, &orphans, sqlListOrphanedCollabSubmissions, limit); err != nil {
		return nil, fmt.Errorf("failed to list orphaned collab submissions: %w", err)
	}
	return orphans, nil
}

const sqlForceAppendCollaborationSubmission = `
UPDATE collaborations
SET submission_ids = array_append(submission_ids, $2::uuid),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND NOT ($2::uuid = ANY(submission_ids))
`

// RepairCollaborationSubmission records an already-counted submission on its
// collaboration regardless of status or size. The submission already contributed to
// the leaderboard, so the list has to reflect it.
func (s *Store) RepairCollaborationSubmission(ctx context.Context, collaborationID, submissionID uuid.UUID) error {
	if _, err := s.conn(ctx).ExecContext(ctx, sqlForceAppendCollaborationSubmission, collaborationID, submissionID); err != nil {
		return fmt.Errorf("failed to repair collaboration submission: %w", err)
	}
	return nil
}

const sqlCompleteCollaboration = `
UPDATE collaborations
SET status = 'completed', updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'active'
RETURNING ` + collaborationColumns

// CompleteCollaboration closes an active collaboration to further submissions.
// Returns ErrConditionNotMet when it is missing or already completed.
func (s *Store) CompleteCollaboration(ctx context.Context, collaborationID uuid.UUID) (Collaboration, error) {
	var collab Collaboration
	if err := s.conn(ctx).GetContext(ctx, &collab, sqlCompleteCollaboration, collaborationID); err != nil {
		if isNoRows(err) {
			return Collaboration{}, ErrConditionNotMet
		}
		return Collaboration{}, fmt.Errorf("failed to complete collaboration: %w", err)
	}
	return collab, nil
}
