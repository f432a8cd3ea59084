package jobs

import (
	"context"
	"time"

	"growth-server/internal/observability"
)

// CompetitionSweepJob ends active competitions once their end time passes
type CompetitionSweepJob struct {
	sweeper  CompetitionSweeper
	interval time.Duration
	logger   *observability.Logger
}

// NewCompetitionSweepJob creates a new competition sweep job
func NewCompetitionSweepJob(sweeper CompetitionSweeper, interval time.Duration, logger *observability.Logger) *CompetitionSweepJob {
	return &CompetitionSweepJob{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (j *CompetitionSweepJob) Name() string {
	return "competition_sweep"
}

func (j *CompetitionSweepJob) Schedule() time.Duration {
	return j.interval
}

func (j *CompetitionSweepJob) Run(ctx context.Context) error {
	ended, err := j.sweeper.SweepExpired(ctx)
	if err != nil {
		return err
	}
	if ended > 0 {
		j.logger.Info(observability.WithFields(ctx, observability.Field{Key: "competitions_ended", Value: ended}), "expired competitions ended")
	}
	return nil
}

// CollabReconcileJob appends collab submissions that never made it onto
// their collaboration's submission list
type CollabReconcileJob struct {
	reconciler CollaborationReconciler
	interval   time.Duration
	batchSize  int
	logger     *observability.Logger
}

// NewCollabReconcileJob creates a new reconcile job. A batchSize of zero uses
// the reconciler's default.
func NewCollabReconcileJob(reconciler CollaborationReconciler, interval time.Duration, batchSize int, logger *observability.Logger) *CollabReconcileJob {
	return &CollabReconcileJob{
		reconciler: reconciler,
		interval:   interval,
		batchSize:  batchSize,
		logger:     logger,
	}
}

func (j *CollabReconcileJob) Name() string {
	return "collab_reconcile"
}

func (j *CollabReconcileJob) Schedule() time.Duration {
	return j.interval
}

func (j *CollabReconcileJob) Run(ctx context.Context) error {
	repaired, err := j.reconciler.ReconcileCollaborations(ctx, j.batchSize)
	if err != nil {
		return err
	}
	if repaired > 0 {
		j.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "submissions_repaired", Value: repaired}), "collab submissions reconciled")
	}
	return nil
}
