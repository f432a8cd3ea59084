package leaderboard

import (
	"sort"

	"growth-server/internal/store"
)

// Rank returns a copy of entries ordered best-first with ranks 1..N assigned.
// Higher value ranks higher; on equal values the entry created first keeps the
// higher rank, and the entry id settles anything left so the result is the same
// for any input order. The input slice is not modified.
func Rank(entries []store.LeaderboardEntry) []store.LeaderboardEntry {
	ranked := make([]store.LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// rankUpdates turns ranked entries into the batch written back to the store
func rankUpdates(ranked []store.LeaderboardEntry) []store.RankUpdate {
	updates := make([]store.RankUpdate, len(ranked))
	for i, e := range ranked {
		updates[i] = store.RankUpdate{EntryID: e.ID, Rank: e.Rank}
	}
	return updates
}
