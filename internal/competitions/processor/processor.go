package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"growth-server/internal/leaderboard"
	"growth-server/internal/notifications"
	"growth-server/internal/observability"
	redemptionProcessor "growth-server/internal/redemptions/processor"
	"growth-server/internal/store"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var (
	ErrCompetitionNotFound    = errors.New("competition not found")
	ErrAlreadyActive          = errors.New("a competition of this type is already active")
	ErrNotActive              = errors.New("competition is not active")
	ErrNotEnded               = errors.New("competition is still active, end it first")
	ErrAlreadyFinalized       = errors.New("competition already finalized")
	ErrNoEntries              = errors.New("leaderboard has no entries")
	ErrInvalidType            = errors.New("invalid competition type")
	ErrInvalidName            = errors.New("competition name is required")
	ErrInvalidDuration        = errors.New("duration must be between 1 and 365 days")
	ErrInvalidStatus          = errors.New("invalid competition status")
	ErrPeriodOpen             = errors.New("period has not ended yet")
	ErrPeriodAlreadyFinalized = errors.New("period already finalized")
)

const (
	// WinningRanks is how many places are paid at finalize
	WinningRanks = 3

	MaxDurationDays = 365
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// PeriodFinalizedError reports a period whose winning ranks were all paid already
type PeriodFinalizedError struct {
	Type  string
	Count int
}

func (e *PeriodFinalizedError) Error() string {
	unit := "Week"
	if e.Type == store.LeaderboardTypeGMV {
		unit = "Month"
	}
	return fmt.Sprintf("%s already has %d redemptions", unit, e.Count)
}

func (e *PeriodFinalizedError) Is(target error) bool {
	return target == ErrPeriodAlreadyFinalized
}

type CompetitionProcessor struct {
	store       CompetitionStore
	leaderboard Leaderboard
	rewards     RewardCatalog
	redemptions RedemptionIssuer
	allocator   Allocator
	notifier    Notifier
	logger      *observability.Logger
	now         func() time.Time
}

func New(store CompetitionStore, leaderboard Leaderboard, rewards RewardCatalog, redemptions RedemptionIssuer, allocator Allocator, notifier Notifier, logger *observability.Logger) CompetitionProcessor {
	return CompetitionProcessor{
		store:       store,
		leaderboard: leaderboard,
		rewards:     rewards,
		redemptions: redemptions,
		allocator:   allocator,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// StartRequest describes a new competition
type StartRequest struct {
	Type         string
	Name         string
	DurationDays int
}

// Start opens a competition. Only one competition per type can be active.
func (p *CompetitionProcessor) Start(ctx context.Context, adminID uuid.UUID, req StartRequest) (store.Competition, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: adminID.String()},
		observability.Field{Key: "competition_type", Value: req.Type},
	)

	if req.Type != store.LeaderboardTypeVolume && req.Type != store.LeaderboardTypeGMV {
		return store.Competition{}, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return store.Competition{}, ErrInvalidName
	}
	if req.DurationDays < 1 || req.DurationDays > MaxDurationDays {
		return store.Competition{}, ErrInvalidDuration
	}

	now := p.now().UTC()
	var competition store.Competition
	err := p.store.WithTx(ctx, func(ctx context.Context) error {
		if _, err := p.store.GetActiveCompetitionByType(ctx, req.Type); err == nil {
			return ErrAlreadyActive
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		displayID, err := p.allocator.Allocate(ctx, store.CounterCompetitions)
		if err != nil {
			return err
		}

		competition, err = p.store.CreateCompetition(ctx, store.CreateCompetitionParams{
			DisplayID: displayID,
			Slug:      slug.Make(name),
			Type:      req.Type,
			Name:      name,
			StartsAt:  now,
			EndsAt:    now.AddDate(0, 0, req.DurationDays),
			CreatedBy: adminID,
		})
		if errors.Is(err, store.ErrUniqueViolation) {
			return ErrAlreadyActive
		}
		return err
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyActive) {
			p.logger.Info(ctx, "competition start rejected, one is already active")
		} else {
			p.logger.Error(ctx, "failed to start competition", err)
		}
		return store.Competition{}, err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "competition_id", Value: competition.ID.String()},
		observability.Field{Key: "display_id", Value: competition.DisplayID},
	), "competition started")
	return competition, nil
}

// End moves an active competition to ended
func (p *CompetitionProcessor) End(ctx context.Context, adminID, competitionID uuid.UUID) (store.Competition, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: adminID.String()},
		observability.Field{Key: "competition_id", Value: competitionID.String()},
	)

	competition, err := p.store.EndCompetition(ctx, competitionID, p.now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrConditionNotMet) {
			if _, getErr := p.store.GetCompetitionByID(ctx, competitionID); errors.Is(getErr, store.ErrNotFound) {
				return store.Competition{}, ErrCompetitionNotFound
			}
			return store.Competition{}, ErrNotActive
		}
		p.logger.Error(ctx, "failed to end competition", err)
		return store.Competition{}, err
	}

	p.logger.Info(ctx, "competition ended")
	p.refreshStandings(ctx, competition)
	return competition, nil
}

// SweepExpired ends every active competition whose end time has passed and returns
// how many it ended. Competitions another sweep already ended are skipped, so
// overlapping runs are safe.
func (p *CompetitionProcessor) SweepExpired(ctx context.Context) (int, error) {
	now := p.now().UTC()
	expired, err := p.store.ListExpiredActiveCompetitions(ctx, now)
	if err != nil {
		p.logger.Error(ctx, "failed to list expired competitions", err)
		return 0, err
	}

	ended := 0
	for _, c := range expired {
		cctx := observability.WithFields(ctx, observability.Field{Key: "competition_id", Value: c.ID.String()})
		competition, err := p.store.EndCompetition(cctx, c.ID, now)
		if err != nil {
			if errors.Is(err, store.ErrConditionNotMet) {
				p.logger.Debug(cctx, "competition already ended by another sweep")
				continue
			}
			p.logger.Error(cctx, "failed to end expired competition", err)
			continue
		}
		p.logger.Info(cctx, "expired competition ended")
		p.refreshStandings(cctx, competition)
		ended++
	}
	return ended, nil
}

// Finalize recomputes an ended competition's leaderboard one last time, issues a
// redemption to each of the top ranks that has a configured reward and records the
// winners. Redemption ids derive from (competition, rank) so a retried finalize
// never pays twice.
func (p *CompetitionProcessor) Finalize(ctx context.Context, adminID, competitionID uuid.UUID) (store.Competition, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: adminID.String()},
		observability.Field{Key: "competition_id", Value: competitionID.String()},
	)

	lbType := leaderboard.CompetitionType(competitionID)
	period := leaderboard.CompetitionPeriod(competitionID)

	var (
		finalized store.Competition
		issued    []issuedWin
	)
	err := p.store.WithTx(ctx, func(ctx context.Context) error {
		issued = nil
		competition, err := p.store.GetCompetitionByIDForUpdate(ctx, competitionID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCompetitionNotFound
			}
			return err
		}
		switch competition.Status {
		case store.CompetitionStatusActive:
			return ErrNotEnded
		case store.CompetitionStatusFinalized:
			return ErrAlreadyFinalized
		}

		ranked, err := p.leaderboard.Recompute(ctx, lbType, period)
		if err != nil {
			return err
		}
		if len(ranked) == 0 {
			return ErrNoEntries
		}

		var winners store.Winners
		winners, issued, err = p.payWinners(ctx, ranked, store.RewardCategoryCompetition, store.RedemptionSourceCompetition, func(rank int) string {
			return redemptionProcessor.CompetitionSourceID(competitionID, rank)
		})
		if err != nil {
			return err
		}

		finalized, err = p.store.FinalizeCompetition(ctx, competitionID, winners, adminID, p.now().UTC())
		if errors.Is(err, store.ErrConditionNotMet) {
			return ErrAlreadyFinalized
		}
		return err
	})
	if err != nil {
		if isBusinessError(err) {
			p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reason", Value: err.Error()}), "competition finalize rejected")
		} else {
			p.logger.Error(ctx, "failed to finalize competition", err)
		}
		return store.Competition{}, err
	}

	p.leaderboard.Invalidate(ctx, lbType, period)
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "winners", Value: len(finalized.Winners)},
		observability.Field{Key: "redemptions_issued", Value: len(issued)},
	), "competition finalized")

	for _, win := range issued {
		p.notifier.Notify(ctx, notifications.Notification{
			Kind:      notifications.KindCompetitionWon,
			Recipient: win.redemption.CreatorID,
			Payload: map[string]interface{}{
				"competition_id":   finalized.ID.String(),
				"competition_name": finalized.Name,
				"rank":             win.rank,
				"redemption_id":    win.redemption.ID.String(),
				"reward_name":      win.redemption.RewardName,
			},
		})
	}
	return finalized, nil
}

// PeriodResult is the outcome of finalizing a weekly or monthly leaderboard
type PeriodResult struct {
	Type        string             `json:"type"`
	Period      string             `json:"period"`
	Winners     store.Winners      `json:"winners"`
	Redemptions []store.Redemption `json:"redemptions"`
}

// FinalizePeriod pays the winners of a closed volume week or gmv month. Calling it
// again after every winning rank was paid fails with a PeriodFinalizedError; a
// partially paid period is completed.
func (p *CompetitionProcessor) FinalizePeriod(ctx context.Context, adminID uuid.UUID, lbType, period string) (PeriodResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: adminID.String()},
		observability.Field{Key: "leaderboard_type", Value: lbType},
		observability.Field{Key: "leaderboard_period", Value: period},
	)

	var category, source string
	switch lbType {
	case store.LeaderboardTypeVolume:
		category, source = store.RewardCategoryVolume, store.RedemptionSourceVolumeWin
	case store.LeaderboardTypeGMV:
		category, source = store.RewardCategoryGMV, store.RedemptionSourceGMVWin
	default:
		return PeriodResult{}, fmt.Errorf("%w: %q", ErrInvalidType, lbType)
	}
	closed, err := leaderboard.PeriodClosed(lbType, period, p.now())
	if err != nil {
		return PeriodResult{}, err
	}
	if !closed {
		return PeriodResult{}, ErrPeriodOpen
	}

	result := PeriodResult{Type: lbType, Period: period}
	var issued []issuedWin
	err = p.store.WithTx(ctx, func(ctx context.Context) error {
		issued = nil
		ranked, err := p.leaderboard.Recompute(ctx, lbType, period)
		if err != nil {
			return err
		}
		if len(ranked) == 0 {
			return ErrNoEntries
		}

		payable, err := p.payableRanks(ctx, ranked, category)
		if err != nil {
			return err
		}
		existing, err := p.store.CountRedemptionsBySourcePrefix(ctx, source, redemptionProcessor.PeriodSourcePrefix(lbType, period)+":")
		if err != nil {
			return err
		}
		if payable > 0 && existing >= payable {
			return &PeriodFinalizedError{Type: lbType, Count: existing}
		}

		result.Winners, issued, err = p.payWinners(ctx, ranked, category, source, func(rank int) string {
			return redemptionProcessor.PeriodSourceID(lbType, period, rank)
		})
		return err
	})
	if err != nil {
		if isBusinessError(err) {
			p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reason", Value: err.Error()}), "period finalize rejected")
		} else {
			p.logger.Error(ctx, "failed to finalize period", err)
		}
		return PeriodResult{}, err
	}

	p.leaderboard.Invalidate(ctx, lbType, period)
	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "redemptions_issued", Value: len(issued)}), "period finalized")

	result.Redemptions = make([]store.Redemption, 0, len(issued))
	for _, win := range issued {
		result.Redemptions = append(result.Redemptions, win.redemption)
		p.notifier.Notify(ctx, notifications.Notification{
			Kind:      notifications.KindPeriodWon,
			Recipient: win.redemption.CreatorID,
			Payload: map[string]interface{}{
				"leaderboard_type": lbType,
				"period":           period,
				"rank":             win.rank,
				"redemption_id":    win.redemption.ID.String(),
				"reward_name":      win.redemption.RewardName,
			},
		})
	}
	return result, nil
}

type issuedWin struct {
	rank       int
	redemption store.Redemption
}

// payWinners issues redemptions for the top ranks of a freshly ranked bucket. Ranks
// without a configured reward are recorded as winners without a redemption. Only
// redemptions created by this call are returned as issued.
func (p *CompetitionProcessor) payWinners(ctx context.Context, ranked []store.LeaderboardEntry, category, source string, sourceID func(rank int) string) (store.Winners, []issuedWin, error) {
	var (
		winners store.Winners
		issued  []issuedWin
	)
	for _, entry := range topRanks(ranked) {
		winner := store.Winner{
			Rank:        entry.Rank,
			CreatorID:   entry.CreatorID,
			DisplayName: entry.DisplayName,
			Value:       entry.Value,
		}

		reward, err := p.rewards.RewardForRank(ctx, category, entry.Rank)
		if err != nil {
			return nil, nil, err
		}
		if reward == nil {
			p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "rank", Value: entry.Rank}), "no reward configured for winning rank")
			winners = append(winners, winner)
			continue
		}

		redemption, created, err := p.redemptions.Issue(ctx, redemptionProcessor.IssueParams{
			CreatorID:          entry.CreatorID,
			CreatorDisplayName: entry.DisplayName,
			CreatorHandle:      entry.Handle,
			Reward:             *reward,
			Source:             source,
			SourceID:           sourceID(entry.Rank),
		})
		if err != nil {
			return nil, nil, err
		}
		redemptionID := redemption.ID
		winner.RedemptionID = &redemptionID
		winners = append(winners, winner)
		if created {
			issued = append(issued, issuedWin{rank: entry.Rank, redemption: redemption})
		}
	}
	return winners, issued, nil
}

// payableRanks counts the top ranks that have a configured reward
func (p *CompetitionProcessor) payableRanks(ctx context.Context, ranked []store.LeaderboardEntry, category string) (int, error) {
	payable := 0
	for _, entry := range topRanks(ranked) {
		reward, err := p.rewards.RewardForRank(ctx, category, entry.Rank)
		if err != nil {
			return 0, err
		}
		if reward != nil {
			payable++
		}
	}
	return payable, nil
}

// refreshStandings recomputes a competition bucket after it stops accepting entries
func (p *CompetitionProcessor) refreshStandings(ctx context.Context, competition store.Competition) {
	if _, err := p.leaderboard.Recompute(ctx, leaderboard.CompetitionType(competition.ID), leaderboard.CompetitionPeriod(competition.ID)); err != nil {
		p.logger.Error(ctx, "failed to recompute competition leaderboard", err)
	}
}

// Get returns a competition by id
func (p *CompetitionProcessor) Get(ctx context.Context, competitionID uuid.UUID) (store.Competition, error) {
	competition, err := p.store.GetCompetitionByID(ctx, competitionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Competition{}, ErrCompetitionNotFound
		}
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "competition_id", Value: competitionID.String()}), "failed to get competition", err)
		return store.Competition{}, err
	}
	return competition, nil
}

// GetActive returns the active competition of a type
func (p *CompetitionProcessor) GetActive(ctx context.Context, competitionType string) (store.Competition, error) {
	if competitionType != store.LeaderboardTypeVolume && competitionType != store.LeaderboardTypeGMV {
		return store.Competition{}, fmt.Errorf("%w: %q", ErrInvalidType, competitionType)
	}
	competition, err := p.store.GetActiveCompetitionByType(ctx, competitionType)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Competition{}, ErrCompetitionNotFound
		}
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "competition_type", Value: competitionType}), "failed to get active competition", err)
		return store.Competition{}, err
	}
	return competition, nil
}

// List returns competitions, newest first. An empty status matches all.
func (p *CompetitionProcessor) List(ctx context.Context, status string, limit, offset int) ([]store.Competition, error) {
	switch status {
	case "", store.CompetitionStatusActive, store.CompetitionStatusEnded, store.CompetitionStatusFinalized:
	default:
		return nil, ErrInvalidStatus
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	competitions, err := p.store.ListCompetitions(ctx, status, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list competitions", err)
		return nil, err
	}
	return competitions, nil
}

func topRanks(ranked []store.LeaderboardEntry) []store.LeaderboardEntry {
	if len(ranked) > WinningRanks {
		return ranked[:WinningRanks]
	}
	return ranked
}

func isBusinessError(err error) bool {
	switch {
	case errors.Is(err, ErrCompetitionNotFound),
		errors.Is(err, ErrNotEnded),
		errors.Is(err, ErrAlreadyFinalized),
		errors.Is(err, ErrNoEntries),
		errors.Is(err, ErrPeriodAlreadyFinalized):
		return true
	}
	return false
}
