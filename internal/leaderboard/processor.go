package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"growth-server/internal/observability"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidValue    = errors.New("leaderboard value must not be negative")
	ErrEntryNotFound   = errors.New("creator has no entry on this leaderboard")
	ErrCreatorNotFound = errors.New("creator not found")
	ErrNoEntries       = errors.New("no entries to import")

	ErrCompetitionNotFound = errors.New("competition not found")
	ErrCompetitionClosed   = errors.New("competition is no longer accepting entries")
)

const (
	DefaultTopN = 10
	MaxTopN     = cacheDepth
)

// Processor maintains leaderboard entries and their derived ranks
type Processor struct {
	store  LeaderboardStore
	cache  Cache
	logger *observability.Logger
	now    func() time.Time
}

// NewProcessor creates a new leaderboard processor
func NewProcessor(store LeaderboardStore, cache Cache, logger *observability.Logger) *Processor {
	return &Processor{
		store:  store,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// UpsertEntryParams describes one contribution to a bucket
type UpsertEntryParams struct {
	Type    string
	Period  string
	Creator store.Creator
	Value   float64
	Mode    store.UpsertMode
}

// UpsertEntry creates or updates the creator's entry in a bucket without touching
// ranks. It joins the caller's transaction when ctx carries one.
func (p *Processor) UpsertEntry(ctx context.Context, params UpsertEntryParams) (store.LeaderboardEntry, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "leaderboard_type", Value: params.Type},
		observability.Field{Key: "leaderboard_period", Value: params.Period},
		observability.Field{Key: "creator_id", Value: params.Creator.ID.String()},
	)

	if err := ValidateType(params.Type); err != nil {
		return store.LeaderboardEntry{}, err
	}
	if err := ValidatePeriod(params.Type, params.Period); err != nil {
		return store.LeaderboardEntry{}, err
	}
	if params.Value < 0 {
		return store.LeaderboardEntry{}, ErrInvalidValue
	}
	mode := params.Mode
	if mode == "" {
		mode = store.UpsertIncrement
	}

	entry, err := p.store.UpsertLeaderboardEntry(ctx, store.UpsertLeaderboardEntryParams{
		Type:        params.Type,
		PeriodKey:   params.Period,
		CreatorID:   params.Creator.ID,
		DisplayName: params.Creator.DisplayName,
		Handle:      params.Creator.Handle,
		Value:       params.Value,
		Mode:        mode,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to upsert leaderboard entry", err)
		return store.LeaderboardEntry{}, err
	}
	return entry, nil
}

// Recompute rewrites the rank of every entry in a bucket in one transaction and
// returns the entries best-first. Concurrent recomputes of the same bucket queue on
// a bucket lock so the last writer always ranks a complete snapshot.
func (p *Processor) Recompute(ctx context.Context, lbType, period string) ([]store.LeaderboardEntry, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "leaderboard_type", Value: lbType},
		observability.Field{Key: "leaderboard_period", Value: period},
	)

	if err := ValidateType(lbType); err != nil {
		return nil, err
	}

	var ranked []store.LeaderboardEntry
	err := p.store.WithTx(ctx, func(ctx context.Context) error {
		if err := p.store.LockLeaderboardBucket(ctx, lbType, period); err != nil {
			return err
		}
		entries, err := p.store.ListLeaderboardEntries(ctx, lbType, period)
		if err != nil {
			return err
		}
		ranked = Rank(entries)
		return p.store.UpdateLeaderboardRanks(ctx, rankUpdates(ranked))
	})
	if err != nil {
		p.logger.Error(ctx, "failed to recompute leaderboard", err)
		return nil, err
	}

	p.cache.Invalidate(ctx, lbType, period)
	p.logger.Debug(observability.WithFields(ctx, observability.Field{Key: "entries", Value: len(ranked)}), "leaderboard recomputed")
	return ranked, nil
}

// GetTop returns the best n entries of a bucket
func (p *Processor) GetTop(ctx context.Context, lbType, period string, n int) ([]store.LeaderboardEntry, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "leaderboard_type", Value: lbType},
		observability.Field{Key: "leaderboard_period", Value: period},
	)

	if err := ValidateType(lbType); err != nil {
		return nil, err
	}
	if err := ValidatePeriod(lbType, period); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultTopN
	}
	if n > MaxTopN {
		n = MaxTopN
	}

	if cached, ok := p.cache.GetTop(ctx, lbType, period); ok {
		return truncate(cached, n), nil
	}

	entries, err := p.store.GetTopLeaderboardEntries(ctx, lbType, period, cacheDepth)
	if err != nil {
		p.logger.Error(ctx, "failed to get top leaderboard entries", err)
		return nil, err
	}
	p.cache.SetTop(ctx, lbType, period, entries)
	return truncate(entries, n), nil
}

// GetStanding returns one creator's entry in a bucket
func (p *Processor) GetStanding(ctx context.Context, lbType, period string, creatorID uuid.UUID) (store.LeaderboardEntry, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "leaderboard_type", Value: lbType},
		observability.Field{Key: "leaderboard_period", Value: period},
		observability.Field{Key: "creator_id", Value: creatorID.String()},
	)

	if err := ValidateType(lbType); err != nil {
		return store.LeaderboardEntry{}, err
	}
	entry, err := p.store.GetLeaderboardEntry(ctx, lbType, period, creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.LeaderboardEntry{}, ErrEntryNotFound
		}
		p.logger.Error(ctx, "failed to get leaderboard entry", err)
		return store.LeaderboardEntry{}, err
	}
	return entry, nil
}

// EntryValue is one row of a manual import
type EntryValue struct {
	CreatorID uuid.UUID
	Value     float64
}

// ImportEntries applies admin-entered absolute values to a bucket, then recomputes
// it once. Imports go through the same upsert path as submissions so the
// one-entry-per-creator rule holds.
func (p *Processor) ImportEntries(ctx context.Context, lbType, period string, values []EntryValue) ([]store.LeaderboardEntry, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "leaderboard_type", Value: lbType},
		observability.Field{Key: "leaderboard_period", Value: period},
		observability.Field{Key: "import_size", Value: len(values)},
	)

	if len(values) == 0 {
		return nil, ErrNoEntries
	}
	if err := ValidateType(lbType); err != nil {
		return nil, err
	}
	if err := ValidatePeriod(lbType, period); err != nil {
		return nil, err
	}
	for _, v := range values {
		if v.Value < 0 {
			return nil, ErrInvalidValue
		}
	}

	err := p.store.WithTx(ctx, func(ctx context.Context) error {
		if IsCompetitionType(lbType) {
			if err := p.requireOpenCompetition(ctx, period); err != nil {
				return err
			}
		}
		for _, v := range values {
			creator, err := p.store.GetCreatorByID(ctx, v.CreatorID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrCreatorNotFound, v.CreatorID)
				}
				return err
			}
			if _, err := p.UpsertEntry(ctx, UpsertEntryParams{
				Type:    lbType,
				Period:  period,
				Creator: creator,
				Value:   v.Value,
				Mode:    store.UpsertReplace,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCompetitionClosed) || errors.Is(err, ErrCompetitionNotFound) {
			p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reason", Value: err.Error()}), "leaderboard import rejected")
		} else {
			p.logger.Error(ctx, "failed to import leaderboard entries", err)
		}
		return nil, err
	}

	p.logger.Info(ctx, "leaderboard entries imported")
	return p.Recompute(ctx, lbType, period)
}

// requireOpenCompetition locks the competition behind a competition bucket and
// fails unless it is still active. Finalize takes the same row lock, so an import
// either lands before the winners are paid or is rejected.
func (p *Processor) requireOpenCompetition(ctx context.Context, period string) error {
	competitionID, err := uuid.Parse(period)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	competition, err := p.store.GetCompetitionByIDForUpdate(ctx, competitionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCompetitionNotFound
		}
		return err
	}
	if competition.Status != store.CompetitionStatusActive {
		return fmt.Errorf("%w: status is %s", ErrCompetitionClosed, competition.Status)
	}
	return nil
}

// Invalidate drops any cached snapshot of a bucket
func (p *Processor) Invalidate(ctx context.Context, lbType, period string) {
	p.cache.Invalidate(ctx, lbType, period)
}

// CurrentPeriod returns the open bucket for lbType at the processor's clock
func (p *Processor) CurrentPeriod(lbType string) (string, error) {
	return CurrentPeriod(lbType, p.now())
}

func truncate(entries []store.LeaderboardEntry, n int) []store.LeaderboardEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
