package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"growth-server/internal/bootstrap"
	"growth-server/internal/config"
	"growth-server/internal/jobs"
	"growth-server/internal/observability"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting periodic worker...")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	scheduler, err := jobs.NewScheduler(logger)
	if err != nil {
		logger.Fatal(ctx, "failed to create scheduler", err)
	}
	scheduler.Register(jobs.NewCompetitionSweepJob(deps.CompetitionProcessor, cfg.Worker.SweepInterval, logger))
	scheduler.Register(jobs.NewCollabReconcileJob(deps.SubmissionProcessor, cfg.Worker.ReconcileInterval, 0, logger))

	// Handle graceful shutdown
	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := scheduler.Start(runCtx); err != nil && runCtx.Err() == nil {
		logger.Error(ctx, "scheduler stopped with error", err)
	}
	logger.Info(ctx, "Worker stopped")
}
