package leaderboard

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=leaderboard

import (
	"context"

	"growth-server/internal/store"

	"github.com/google/uuid"
)

// LeaderboardStore defines the database operations required by Processor
type LeaderboardStore interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	LockLeaderboardBucket(ctx context.Context, leaderboardType, periodKey string) error
	ListLeaderboardEntries(ctx context.Context, leaderboardType, periodKey string) ([]store.LeaderboardEntry, error)
	UpdateLeaderboardRanks(ctx context.Context, updates []store.RankUpdate) error
	UpsertLeaderboardEntry(ctx context.Context, params store.UpsertLeaderboardEntryParams) (store.LeaderboardEntry, error)
	GetTopLeaderboardEntries(ctx context.Context, leaderboardType, periodKey string, limit int) ([]store.LeaderboardEntry, error)
	GetLeaderboardEntry(ctx context.Context, leaderboardType, periodKey string, creatorID uuid.UUID) (store.LeaderboardEntry, error)
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
	GetCompetitionByIDForUpdate(ctx context.Context, competitionID uuid.UUID) (store.Competition, error)
}

// Cache holds read snapshots of the top of each bucket
type Cache interface {
	GetTop(ctx context.Context, lbType, period string) ([]store.LeaderboardEntry, bool)
	SetTop(ctx context.Context, lbType, period string, entries []store.LeaderboardEntry)
	Invalidate(ctx context.Context, lbType, period string)
}
