package jobs

import (
	"context"
	"fmt"
	"time"

	"growth-server/internal/observability"

	"github.com/go-co-op/gocron/v2"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Scheduler runs registered jobs on their intervals. A job never overlaps
// with itself; a run that is still going when the next tick fires delays it.
type Scheduler struct {
	cron   gocron.Scheduler
	jobs   []Job
	logger *observability.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(logger *observability.Logger) (*Scheduler, error) {
	cron, err := gocron.NewScheduler(gocron.WithLogger(&cronLogger{logger: logger}))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{
		cron:   cron,
		jobs:   make([]Job, 0),
		logger: logger,
	}, nil
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (interval: %s)",
		job.Name(), job.Schedule()))
}

// Start schedules every registered job, running each once immediately, and
// blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))

	for _, job := range s.jobs {
		job := job
		jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})
		_, err := s.cron.NewJob(
			gocron.DurationJob(job.Schedule()),
			gocron.NewTask(func() {
				_ = s.executeJob(jobCtx, job)
			}),
			gocron.WithName(job.Name()),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithStartAt(gocron.WithStartImmediately()),
		)
		if err != nil {
			return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
		}
	}

	s.cron.Start()

	<-ctx.Done()
	if err := s.cron.Shutdown(); err != nil {
		s.logger.Error(ctx, "failed to shut down scheduler", err)
	}
	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

// executeJob executes a job and logs timing
func (s *Scheduler) executeJob(ctx context.Context, job Job) error {
	start := time.Now()
	s.logger.Info(ctx, fmt.Sprintf("Executing scheduled job: %s", job.Name()))

	err := job.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return err
	}

	s.logger.Info(ctx, fmt.Sprintf("Job %s completed successfully in %v", job.Name(), duration))
	return nil
}

// cronLogger adapts observability.Logger to the gocron.Logger interface
type cronLogger struct {
	logger *observability.Logger
}

func (l *cronLogger) Debug(msg string, args ...any) {
	l.logger.Debug(context.Background(), cronMessage(msg, args))
}

func (l *cronLogger) Info(msg string, args ...any) {
	l.logger.Info(context.Background(), cronMessage(msg, args))
}

func (l *cronLogger) Warn(msg string, args ...any) {
	l.logger.Warn(context.Background(), cronMessage(msg, args))
}

func (l *cronLogger) Error(msg string, args ...any) {
	l.logger.Error(context.Background(), cronMessage(msg, args), nil)
}

func cronMessage(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return msg + " " + fmt.Sprint(args...)
}
