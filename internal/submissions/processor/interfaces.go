package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"io"
	"time"

	"growth-server/internal/leaderboard"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

// SubmissionStore defines the database operations required by SubmissionProcessor
type SubmissionStore interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
	GetSubmissionByCreatorAndFingerprint(ctx context.Context, creatorID uuid.UUID, fingerprint string) (store.Submission, error)
	CreateSubmission(ctx context.Context, params store.CreateSubmissionParams) (store.Submission, error)
	GetSubmissionByID(ctx context.Context, submissionID uuid.UUID) (store.Submission, error)
	ListSubmissionsByCreator(ctx context.Context, creatorID uuid.UUID, limit int, offset int) ([]store.Submission, error)
	ListSubmissionsByStatus(ctx context.Context, status string, kind string, limit int, offset int) ([]store.Submission, error)
	GetActiveCompetitionByType(ctx context.Context, competitionType string) (store.Competition, error)
	GetActiveCollaborationByCreator(ctx context.Context, creatorID uuid.UUID) (store.Collaboration, error)
	AppendCollaborationSubmission(ctx context.Context, collaborationID uuid.UUID, submissionID uuid.UUID, max int) error
	ListOrphanedCollabSubmissions(ctx context.Context, limit int) ([]store.OrphanedCollabSubmission, error)
	RepairCollaborationSubmission(ctx context.Context, collaborationID uuid.UUID, submissionID uuid.UUID) error
}

// Leaderboard is the ranking engine submissions contribute to
type Leaderboard interface {
	UpsertEntry(ctx context.Context, params leaderboard.UpsertEntryParams) (store.LeaderboardEntry, error)
	Recompute(ctx context.Context, lbType string, period string) ([]store.LeaderboardEntry, error)
}

// ObjectStorage holds uploaded videos
type ObjectStorage interface {
	Exists(ctx context.Context, path string) (bool, error)
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	PublicURL(path string) string
	PresignUpload(ctx context.Context, path string, contentType string, ttl time.Duration) (string, error)
}

// Allocator issues submission display ids
type Allocator interface {
	Allocate(ctx context.Context, counter string) (string, error)
}
