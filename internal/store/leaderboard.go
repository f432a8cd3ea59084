package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UpsertMode controls how an upsert combines with an existing entry value
type UpsertMode string

const (
	// UpsertIncrement adds the value to the existing entry (count-based boards)
	UpsertIncrement UpsertMode = "increment"
	// UpsertReplace overwrites the existing entry value (admin-entered amounts)
	UpsertReplace UpsertMode = "replace"
)

// UpsertLeaderboardEntryParams represents parameters for upserting a leaderboard entry
type UpsertLeaderboardEntryParams struct {
	Type        string
	PeriodKey   string
	CreatorID   uuid.UUID
	DisplayName string
	Handle      string
	Value       float64
	Mode        UpsertMode
}

const leaderboardEntryColumns = `id, type, period_key, creator_id, display_name, handle, value, rank, created_at, updated_at`

// The display snapshot is only written on insert; later upserts keep it until a resync.
const sqlUpsertLeaderboardEntryIncrement = `
INSERT INTO leaderboard_entries (type, period_key, creator_id, display_name, handle, value)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (type, period_key, creator_id) DO UPDATE
SET value = leaderboard_entries.value + EXCLUDED.value,
    updated_at = CURRENT_TIMESTAMP
RETURNING ` + leaderboardEntryColumns

const sqlUpsertLeaderboardEntryReplace = `
INSERT INTO leaderboard_entries (type, period_key, creator_id, display_name, handle, value)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (type, period_key, creator_id) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = CURRENT_TIMESTAMP
RETURNING ` + leaderboardEntryColumns

// UpsertLeaderboardEntry creates the (type, period, creator) entry with rank 0 or
// combines the value into the existing one according to Mode.
func (s *Store) UpsertLeaderboardEntry(ctx context.Context, params UpsertLeaderboardEntryParams) (LeaderboardEntry, error) {
	query := sqlUpsertLeaderboardEntryIncrement
	if params.Mode == UpsertReplace {
		query = sqlUpsertLeaderboardEntryReplace
	}

	var entry LeaderboardEntry
	err := s.conn(ctx).GetContext(ctx, &entry, query,
		params.Type,
		params.PeriodKey,
		params.CreatorID,
		params.DisplayName,
		params.Handle,
		params.Value)
	if err != nil {
		return LeaderboardEntry{}, fmt.Errorf("failed to upsert leaderboard entry: %w", err)
	}
	return entry, nil
}

const sqlLockLeaderboardBucket = `SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`

// LockLeaderboardBucket serializes rank rewrites of one (type, period) bucket until
// the surrounding transaction ends. It must be called inside WithTx.
func (s *Store) LockLeaderboardBucket(ctx context.Context, leaderboardType, periodKey string) error {
	if !InTx(ctx) {
		return fmt.Errorf("leaderboard bucket lock requires a transaction")
	}
	if _, err := s.conn(ctx).ExecContext(ctx, sqlLockLeaderboardBucket, leaderboardType, periodKey); err != nil {
		return fmt.Errorf("failed to lock leaderboard bucket: %w", err)
	}
	return nil
}

const sqlListLeaderboardEntries = `
SELECT ` + leaderboardEntryColumns + `
FROM leaderboard_entries
WHERE type = $1 AND period_key = $2
`

// ListLeaderboardEntries loads every entry in a bucket, unordered
func (s *Store) ListLeaderboardEntries(ctx context.Context, leaderboardType, periodKey string) ([]LeaderboardEntry, error) {
	entries := []LeaderboardEntry{}
	if err := s.conn(ctx).SelectContext(ctx, &entries, sqlListLeaderboardEntries, leaderboardType, periodKey); err != nil {
		return nil, fmt.Errorf("failed to list leaderboard entries: %w", err)
	}
	return entries, nil
}

// RankUpdate assigns a rank to one entry
type RankUpdate struct {
	EntryID uuid.UUID
	Rank    int
}

const sqlUpdateLeaderboardRanks = `
UPDATE leaderboard_entries AS e
SET rank = v.rank
FROM (SELECT unnest($1::uuid[]) AS id, unnest($2::int[]) AS rank) AS v
WHERE e.id = v.id
`

// UpdateLeaderboardRanks writes the ranks of a whole bucket in one statement
func (s *Store) UpdateLeaderboardRanks(ctx context.Context, updates []RankUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	ids := make([]string, len(updates))
	ranks := make([]int64, len(updates))
	for i, u := range updates {
		ids[i] = u.EntryID.String()
		ranks[i] = int64(u.Rank)
	}
	if _, err := s.conn(ctx).ExecContext(ctx, sqlUpdateLeaderboardRanks, ids, ranks); err != nil {
		return fmt.Errorf("failed to update leaderboard ranks: %w", err)
	}
	return nil
}

// Unranked entries (rank 0) sort after ranked ones by value until the next recompute.
const sqlGetTopLeaderboardEntries = `
SELECT ` + leaderboardEntryColumns + `
FROM leaderboard_entries
WHERE type = $1 AND period_key = $2
ORDER BY (rank = 0) ASC, rank ASC, value DESC, created_at ASC, id ASC
LIMIT $3
`

// GetTopLeaderboardEntries retrieves the best n entries of a bucket
func (s *Store) GetTopLeaderboardEntries(ctx context.Context, leaderboardType, periodKey string, limit int) ([]LeaderboardEntry, error) {
	entries := []LeaderboardEntry{}
	if err := s.conn(ctx).SelectContext(ctx, &entries, sqlGetTopLeaderboardEntries, leaderboardType, periodKey, limit); err != nil {
		return nil, fmt.Errorf("failed to get top leaderboard entries: %w", err)
	}
	return entries, nil
}

const sqlGetLeaderboardEntry = `
SELECT ` + leaderboardEntryColumns + `
FROM leaderboard_entries
WHERE type = $1 AND period_key = $2 AND creator_id = $3
`

// GetLeaderboardEntry retrieves one creator's entry in a bucket
func (s *Store) GetLeaderboardEntry(ctx context.Context, leaderboardType, periodKey string, creatorID uuid.UUID) (LeaderboardEntry, error) {
	var entry LeaderboardEntry
	if err := s.conn(ctx).GetContext(ctx, &entry, sqlGetLeaderboardEntry, leaderboardType, periodKey, creatorID); err != nil {
		if isNoRows(err) {
			return LeaderboardEntry{}, ErrNotFound
		}
		return LeaderboardEntry{}, fmt.Errorf("failed to get leaderboard entry: %w", err)
	}
	return entry, nil
}
