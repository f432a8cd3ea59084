package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"growth-server/internal/notifications"
	redemptionProcessor "growth-server/internal/redemptions/processor"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

// CompetitionStore defines the database operations required by CompetitionProcessor
type CompetitionStore interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateCompetition(ctx context.Context, params store.CreateCompetitionParams) (store.Competition, error)
	GetCompetitionByID(ctx context.Context, competitionID uuid.UUID) (store.Competition, error)
	GetCompetitionByIDForUpdate(ctx context.Context, competitionID uuid.UUID) (store.Competition, error)
	GetActiveCompetitionByType(ctx context.Context, competitionType string) (store.Competition, error)
	EndCompetition(ctx context.Context, competitionID uuid.UUID, endedAt time.Time) (store.Competition, error)
	ListExpiredActiveCompetitions(ctx context.Context, now time.Time) ([]store.Competition, error)
	FinalizeCompetition(ctx context.Context, competitionID uuid.UUID, winners store.Winners, finalizedBy uuid.UUID, finalizedAt time.Time) (store.Competition, error)
	ListCompetitions(ctx context.Context, status string, limit int, offset int) ([]store.Competition, error)
	CountRedemptionsBySourcePrefix(ctx context.Context, source string, prefix string) (int, error)
}

// Leaderboard ranks competition and period buckets
type Leaderboard interface {
	Recompute(ctx context.Context, lbType string, period string) ([]store.LeaderboardEntry, error)
	Invalidate(ctx context.Context, lbType string, period string)
}

// RewardCatalog resolves the reward paid for a winning rank
type RewardCatalog interface {
	RewardForRank(ctx context.Context, category string, rank int) (*store.Reward, error)
}

// RedemptionIssuer creates reward obligations idempotently
type RedemptionIssuer interface {
	Issue(ctx context.Context, params redemptionProcessor.IssueParams) (store.Redemption, bool, error)
}

// Allocator issues competition display ids
type Allocator interface {
	Allocate(ctx context.Context, counter string) (string, error)
}

// Notifier delivers best-effort notifications
type Notifier interface {
	Notify(ctx context.Context, n notifications.Notification)
}
