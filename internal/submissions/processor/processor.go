package processor

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"growth-server/internal/leaderboard"
	"growth-server/internal/observability"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrDuplicateSubmission    = errors.New("you have already submitted this video")
	ErrInvalidURL             = errors.New("invalid submission url")
	ErrInvalidTier            = errors.New("invalid milestone tier")
	ErrInvalidUpload          = errors.New("invalid upload")
	ErrUploadNotFound         = errors.New("uploaded file not found")
	ErrCreatorNotFound        = errors.New("creator not found")
	ErrSubmissionNotFound     = errors.New("submission not found")
	ErrNoActiveCollaboration  = errors.New("creator has no active collaboration")
	ErrCollaborationFull      = errors.New("collaboration has reached its submission limit")
	ErrInvalidSubmissionState = errors.New("invalid submission status filter")
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200

	// contributionUnit is what one auto-approved submission adds to the volume
	// leaderboard; volume is count based, not view based.
	contributionUnit = 1

	uploadURLTTL = 15 * time.Minute
)

var uploadExtensions = map[string]string{
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
}

// Config holds intake policy
type Config struct {
	CollabMaxSubmissions int
}

type SubmissionProcessor struct {
	store       SubmissionStore
	leaderboard Leaderboard
	storage     ObjectStorage
	allocator   Allocator
	config      Config
	logger      *observability.Logger
	now         func() time.Time
}

func New(store SubmissionStore, leaderboard Leaderboard, storage ObjectStorage, allocator Allocator, config Config, logger *observability.Logger) SubmissionProcessor {
	if config.CollabMaxSubmissions <= 0 {
		config.CollabMaxSubmissions = 50
	}
	return SubmissionProcessor{
		store:       store,
		leaderboard: leaderboard,
		storage:     storage,
		allocator:   allocator,
		config:      config,
		logger:      logger,
		now:         time.Now,
	}
}

// Result is a persisted submission plus the creator's refreshed weekly standing.
// Standing is nil for pending submissions and when the post-submit recompute failed.
type Result struct {
	Submission store.Submission        `json:"submission"`
	Standing   *store.LeaderboardEntry `json:"standing,omitempty"`
}

// intake describes one submission on its way into the store
type intake struct {
	creatorID   uuid.UUID
	kind        string
	fingerprint string
	url         *string
	storagePath *string
	claimedTier *string
	collab      *store.Collaboration
}

// SubmitLink admits a volume submission that points at a published post
func (p *SubmissionProcessor) SubmitLink(ctx context.Context, creatorID uuid.UUID, rawURL string) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "creator_id", Value: creatorID.String()},
		observability.Field{Key: "submission_kind", Value: store.SubmissionKindLink},
	)

	fingerprint, err := URLFingerprint(rawURL)
	if err != nil {
		return Result{}, err
	}
	u := strings.TrimSpace(rawURL)
	return p.admit(ctx, intake{
		creatorID:   creatorID,
		kind:        store.SubmissionKindLink,
		fingerprint: fingerprint,
		url:         &u,
	})
}

// UploadTarget is where a creator should PUT a video before confirming it
type UploadTarget struct {
	UploadURL   string    `json:"upload_url"`
	StoragePath string    `json:"storage_path"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// PrepareUpload returns a presigned URL under the creator's upload prefix
func (p *SubmissionProcessor) PrepareUpload(ctx context.Context, creatorID uuid.UUID, contentType string) (UploadTarget, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()})

	ext, ok := uploadExtensions[contentType]
	if !ok {
		return UploadTarget{}, fmt.Errorf("%w: unsupported content type %q", ErrInvalidUpload, contentType)
	}

	storagePath := path.Join(uploadPrefix(creatorID), uuid.NewString()+ext)
	uploadURL, err := p.storage.PresignUpload(ctx, storagePath, contentType, uploadURLTTL)
	if err != nil {
		p.logger.Error(ctx, "failed to presign upload", err)
		return UploadTarget{}, err
	}
	return UploadTarget{
		UploadURL:   uploadURL,
		StoragePath: storagePath,
		ExpiresAt:   p.now().Add(uploadURLTTL).UTC(),
	}, nil
}

// ConfirmUpload admits a volume submission for a video the creator already uploaded.
// The fingerprint is a hash of the stored bytes. A duplicate upload is deleted from
// storage before ErrDuplicateSubmission is returned, unless it is the object the
// existing submission points at: confirming the same path twice returns that
// submission.
func (p *SubmissionProcessor) ConfirmUpload(ctx context.Context, creatorID uuid.UUID, storagePath string) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "creator_id", Value: creatorID.String()},
		observability.Field{Key: "submission_kind", Value: store.SubmissionKindFile},
		observability.Field{Key: "storage_path", Value: storagePath},
	)

	storagePath = path.Clean(strings.TrimPrefix(strings.TrimSpace(storagePath), "/"))
	if !strings.HasPrefix(storagePath, uploadPrefix(creatorID)+"/") {
		return Result{}, fmt.Errorf("%w: path is outside the creator's upload area", ErrInvalidUpload)
	}

	exists, err := p.storage.Exists(ctx, storagePath)
	if err != nil {
		p.logger.Error(ctx, "failed to check upload", err)
		return Result{}, err
	}
	if !exists {
		return Result{}, ErrUploadNotFound
	}

	body, err := p.storage.Download(ctx, storagePath)
	if err != nil {
		p.logger.Error(ctx, "failed to download upload", err)
		return Result{}, err
	}
	fingerprint, err := ContentFingerprint(body)
	body.Close()
	if err != nil {
		p.logger.Error(ctx, "failed to fingerprint upload", err)
		return Result{}, err
	}

	publicURL := p.storage.PublicURL(storagePath)
	result, err := p.admit(ctx, intake{
		creatorID:   creatorID,
		kind:        store.SubmissionKindFile,
		fingerprint: fingerprint,
		url:         &publicURL,
		storagePath: &storagePath,
	})
	if !errors.Is(err, ErrDuplicateSubmission) {
		return result, err
	}

	existing := result.Submission
	if existing.ID == uuid.Nil {
		// lost the insert race; the winner is only visible after the fact
		existing, err = p.store.GetSubmissionByCreatorAndFingerprint(ctx, creatorID, fingerprint)
		if err != nil {
			p.logger.Error(ctx, "failed to load colliding submission, keeping upload", err)
			return Result{}, ErrDuplicateSubmission
		}
	}
	if existing.StoragePath != nil && *existing.StoragePath == storagePath {
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "submission_id", Value: existing.ID.String()}), "upload already confirmed")
		return Result{Submission: existing}, nil
	}

	if delErr := p.storage.Delete(ctx, storagePath); delErr != nil {
		p.logger.Error(ctx, "failed to delete duplicate upload", delErr)
	}
	return Result{}, ErrDuplicateSubmission
}

// SubmitMilestone records a view-count milestone claim for admin review. It never
// touches the leaderboard.
func (p *SubmissionProcessor) SubmitMilestone(ctx context.Context, creatorID uuid.UUID, rawURL, tier string) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "creator_id", Value: creatorID.String()},
		observability.Field{Key: "submission_kind", Value: store.SubmissionKindMilestone},
		observability.Field{Key: "tier", Value: tier},
	)

	switch tier {
	case store.MilestoneTier100K, store.MilestoneTier500K, store.MilestoneTier1M:
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidTier, tier)
	}
	fingerprint, err := URLFingerprint(rawURL)
	if err != nil {
		return Result{}, err
	}
	u := strings.TrimSpace(rawURL)
	return p.admit(ctx, intake{
		creatorID:   creatorID,
		kind:        store.SubmissionKindMilestone,
		fingerprint: fingerprint,
		url:         &u,
		claimedTier: &tier,
	})
}

// SubmitCollab admits a link made for the creator's active brand collaboration. The
// submission, its leaderboard contribution and the collaboration list entry commit
// together.
func (p *SubmissionProcessor) SubmitCollab(ctx context.Context, creatorID uuid.UUID, rawURL string) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "creator_id", Value: creatorID.String()},
		observability.Field{Key: "submission_kind", Value: "collab"},
	)

	fingerprint, err := URLFingerprint(rawURL)
	if err != nil {
		return Result{}, err
	}

	collab, err := p.store.GetActiveCollaborationByCreator(ctx, creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Result{}, ErrNoActiveCollaboration
		}
		p.logger.Error(ctx, "failed to get active collaboration", err)
		return Result{}, err
	}
	if len(collab.SubmissionIDs) >= p.config.CollabMaxSubmissions {
		return Result{}, ErrCollaborationFull
	}

	u := strings.TrimSpace(rawURL)
	return p.admit(observability.WithFields(ctx, observability.Field{Key: "collaboration_id", Value: collab.ID.String()}), intake{
		creatorID:   creatorID,
		kind:        store.SubmissionKindLink,
		fingerprint: fingerprint,
		url:         &u,
		collab:      &collab,
	})
}

// admit runs dedup, persistence and leaderboard contribution for one submission
func (p *SubmissionProcessor) admit(ctx context.Context, in intake) (Result, error) {
	creator, err := p.store.GetCreatorByID(ctx, in.creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Result{}, ErrCreatorNotFound
		}
		p.logger.Error(ctx, "failed to get creator", err)
		return Result{}, err
	}

	if existing, err := p.store.GetSubmissionByCreatorAndFingerprint(ctx, in.creatorID, in.fingerprint); err == nil {
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "existing_submission_id", Value: existing.ID.String()}), "duplicate submission rejected")
		return Result{Submission: existing}, ErrDuplicateSubmission
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check for duplicate submission", err)
		return Result{}, err
	}

	now := p.now()
	week := leaderboard.WeekKey(now)
	autoApproved := in.kind != store.SubmissionKindMilestone

	var competition *store.Competition
	if autoApproved {
		competition, err = p.openCompetition(ctx, now)
		if err != nil {
			return Result{}, err
		}
	}

	status := store.SubmissionStatusPending
	if autoApproved {
		status = store.SubmissionStatusAutoApproved
	}

	var submission store.Submission
	err = p.store.WithTx(ctx, func(ctx context.Context) error {
		displayID, err := p.allocator.Allocate(ctx, store.CounterSubmissions)
		if err != nil {
			return err
		}

		params := store.CreateSubmissionParams{
			DisplayID:   displayID,
			CreatorID:   in.creatorID,
			Kind:        in.kind,
			Fingerprint: in.fingerprint,
			URL:         in.url,
			StoragePath: in.storagePath,
			PeriodKey:   week,
			Status:      status,
			ClaimedTier: in.claimedTier,
		}
		if in.collab != nil {
			params.CollaborationID = &in.collab.ID
		}
		if competition != nil {
			params.CompetitionID = &competition.ID
		}

		submission, err = p.store.CreateSubmission(ctx, params)
		if err != nil {
			if errors.Is(err, store.ErrUniqueViolation) {
				return ErrDuplicateSubmission
			}
			return err
		}

		if !autoApproved {
			return nil
		}

		if _, err := p.leaderboard.UpsertEntry(ctx, leaderboard.UpsertEntryParams{
			Type:    store.LeaderboardTypeVolume,
			Period:  week,
			Creator: creator,
			Value:   contributionUnit,
			Mode:    store.UpsertIncrement,
		}); err != nil {
			return err
		}
		if competition != nil {
			if _, err := p.leaderboard.UpsertEntry(ctx, leaderboard.UpsertEntryParams{
				Type:    leaderboard.CompetitionType(competition.ID),
				Period:  leaderboard.CompetitionPeriod(competition.ID),
				Creator: creator,
				Value:   contributionUnit,
				Mode:    store.UpsertIncrement,
			}); err != nil {
				return err
			}
		}

		if in.collab != nil {
			err := p.store.AppendCollaborationSubmission(ctx, in.collab.ID, submission.ID, p.config.CollabMaxSubmissions)
			if errors.Is(err, store.ErrConditionNotMet) {
				return ErrCollaborationFull
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateSubmission) || errors.Is(err, ErrCollaborationFull) {
			p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reason", Value: err.Error()}), "submission rejected")
		} else {
			p.logger.Error(ctx, "failed to persist submission", err)
		}
		return Result{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "submission_id", Value: submission.ID.String()},
		observability.Field{Key: "display_id", Value: submission.DisplayID},
	)
	p.logger.Info(ctx, "submission created")

	result := Result{Submission: submission}
	if !autoApproved {
		return result, nil
	}

	ranked, err := p.leaderboard.Recompute(ctx, store.LeaderboardTypeVolume, week)
	if err != nil {
		p.logger.Error(ctx, "failed to recompute weekly leaderboard after submission", err)
	} else {
		result.Standing = standingOf(ranked, in.creatorID)
	}
	if competition != nil {
		if _, err := p.leaderboard.Recompute(ctx, leaderboard.CompetitionType(competition.ID), leaderboard.CompetitionPeriod(competition.ID)); err != nil {
			p.logger.Error(ctx, "failed to recompute competition leaderboard after submission", err)
		}
	}
	return result, nil
}

// openCompetition returns the volume competition a submission made at now counts
// toward, if any. A competition past its end time no longer accepts entries even
// before the sweep marks it ended.
func (p *SubmissionProcessor) openCompetition(ctx context.Context, now time.Time) (*store.Competition, error) {
	competition, err := p.store.GetActiveCompetitionByType(ctx, store.LeaderboardTypeVolume)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		p.logger.Error(ctx, "failed to get active competition", err)
		return nil, err
	}
	if !now.Before(competition.EndsAt) {
		return nil, nil
	}
	return &competition, nil
}

// ReconcileCollaborations repairs collab submissions that are missing from their
// collaboration's list and reports how many were fixed.
func (p *SubmissionProcessor) ReconcileCollaborations(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 100
	}

	orphans, err := p.store.ListOrphanedCollabSubmissions(ctx, batchSize)
	if err != nil {
		p.logger.Error(ctx, "failed to list orphaned collab submissions", err)
		return 0, err
	}

	repaired := 0
	for _, o := range orphans {
		octx := observability.WithFields(ctx,
			observability.Field{Key: "submission_id", Value: o.SubmissionID.String()},
			observability.Field{Key: "collaboration_id", Value: o.CollaborationID.String()},
		)
		if err := p.store.RepairCollaborationSubmission(octx, o.CollaborationID, o.SubmissionID); err != nil {
			p.logger.Error(octx, "failed to repair collab submission", err)
			continue
		}
		p.logger.Warn(octx, "repaired orphaned collab submission")
		repaired++
	}
	return repaired, nil
}

// Get returns a submission. Creators only see their own.
func (p *SubmissionProcessor) Get(ctx context.Context, callerID uuid.UUID, isAdmin bool, submissionID uuid.UUID) (store.Submission, error) {
	submission, err := p.store.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Submission{}, ErrSubmissionNotFound
		}
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "submission_id", Value: submissionID.String()}), "failed to get submission", err)
		return store.Submission{}, err
	}
	if !isAdmin && submission.CreatorID != callerID {
		return store.Submission{}, ErrSubmissionNotFound
	}
	return submission, nil
}

// ListForCreator lists a creator's submissions, newest first
func (p *SubmissionProcessor) ListForCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]store.Submission, error) {
	limit, offset = page(limit, offset)
	submissions, err := p.store.ListSubmissionsByCreator(ctx, creatorID, limit, offset)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()}), "failed to list submissions", err)
		return nil, err
	}
	return submissions, nil
}

// ListByStatus lists submissions for the admin review queue, oldest first. Status
// defaults to pending; an empty kind matches every kind.
func (p *SubmissionProcessor) ListByStatus(ctx context.Context, status, kind string, limit, offset int) ([]store.Submission, error) {
	if status == "" {
		status = store.SubmissionStatusPending
	}
	switch status {
	case store.SubmissionStatusPending, store.SubmissionStatusApproved, store.SubmissionStatusRejected, store.SubmissionStatusAutoApproved:
	default:
		return nil, ErrInvalidSubmissionState
	}
	limit, offset = page(limit, offset)
	submissions, err := p.store.ListSubmissionsByStatus(ctx, status, kind, limit, offset)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "status", Value: status}), "failed to list submissions", err)
		return nil, err
	}
	return submissions, nil
}

func uploadPrefix(creatorID uuid.UUID) string {
	return "uploads/" + creatorID.String()
}

func standingOf(ranked []store.LeaderboardEntry, creatorID uuid.UUID) *store.LeaderboardEntry {
	for i := range ranked {
		if ranked[i].CreatorID == creatorID {
			return &ranked[i]
		}
	}
	return nil
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
