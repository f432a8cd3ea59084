package bootstrap

import (
	"context"
	"fmt"

	"growth-server/internal/auth"
	kafkaClient "growth-server/internal/clients/kafka"
	"growth-server/internal/clients/mail"
	redisClient "growth-server/internal/clients/redis"
	"growth-server/internal/clients/storage"
	"growth-server/internal/config"
	"growth-server/internal/leaderboard"
	"growth-server/internal/notifications"
	"growth-server/internal/observability"
	"growth-server/internal/sequence"
	"growth-server/internal/store"

	competitionHandler "growth-server/internal/competitions/handler"
	competitionProcessor "growth-server/internal/competitions/processor"
	creatorHandler "growth-server/internal/creators/handler"
	creatorProcessor "growth-server/internal/creators/processor"
	leaderboardHandler "growth-server/internal/leaderboard/handler"
	milestoneHandler "growth-server/internal/milestones/handler"
	milestoneProcessor "growth-server/internal/milestones/processor"
	redemptionHandler "growth-server/internal/redemptions/handler"
	redemptionProcessor "growth-server/internal/redemptions/processor"
	rewardHandler "growth-server/internal/rewards/handler"
	rewardProcessor "growth-server/internal/rewards/processor"
	submissionHandler "growth-server/internal/submissions/handler"
	submissionProcessor "growth-server/internal/submissions/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store    store.Store
	Logger   *observability.Logger
	Verifier *auth.Verifier

	// Processors used by the periodic worker
	SubmissionProcessor  *submissionProcessor.SubmissionProcessor
	CompetitionProcessor *competitionProcessor.CompetitionProcessor

	// Handlers
	SubmissionHandler  submissionHandler.Handler
	LeaderboardHandler leaderboardHandler.Handler
	CompetitionHandler competitionHandler.Handler
	MilestoneHandler   milestoneHandler.Handler
	RedemptionHandler  redemptionHandler.Handler
	RewardHandler      rewardHandler.Handler
	CreatorHandler     creatorHandler.Handler

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), cfg.Engine.StoreTxAttempts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	storageClient, err := storage.NewS3Client(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.DefaultSender, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	// Notification channels: email always, domain events when Kafka is enabled
	channels := []notifications.Channel{notifications.NewEmailChannel(mailClient, &deps.Store)}
	if cfg.Kafka.Enabled {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		channels = append(channels, notifications.NewEventChannel(deps.KafkaProducer))
	} else {
		logger.Info(ctx, "Kafka is disabled, domain events will not be published")
	}
	notifier := notifications.NewDispatcher(logger, channels...)

	deps.Verifier = auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, logger)
	allocator := sequence.New(&deps.Store, logger)

	// Initialize leaderboard processor and handler
	leaderboardProc := leaderboard.NewProcessor(
		&deps.Store,
		leaderboard.NewRedisCache(deps.RedisClient, cfg.Redis.CacheTTL, logger),
		logger,
	)
	deps.LeaderboardHandler = leaderboardHandler.New(leaderboardProc, logger)

	// Initialize rewards processor and handler
	rewardProc := rewardProcessor.New(&deps.Store, logger)
	deps.RewardHandler = rewardHandler.New(rewardProc, logger)

	// Initialize redemption processor and handler
	redemptionProc := redemptionProcessor.New(&deps.Store, allocator, notifier, logger)
	deps.RedemptionHandler = redemptionHandler.New(redemptionProc, logger)

	// Initialize creator processor and handler
	creatorProc := creatorProcessor.New(&deps.Store, logger)
	deps.CreatorHandler = creatorHandler.New(creatorProc, logger)

	// Initialize submission processor and handler
	submissionProc := submissionProcessor.New(
		&deps.Store,
		leaderboardProc,
		storageClient,
		allocator,
		submissionProcessor.Config{CollabMaxSubmissions: cfg.Engine.CollabMaxSubmissions},
		logger,
	)
	deps.SubmissionProcessor = &submissionProc
	deps.SubmissionHandler = submissionHandler.New(submissionProc, logger)

	// Initialize competition processor and handler
	competitionProc := competitionProcessor.New(
		&deps.Store,
		leaderboardProc,
		&rewardProc,
		&redemptionProc,
		allocator,
		notifier,
		logger,
	)
	deps.CompetitionProcessor = &competitionProc
	deps.CompetitionHandler = competitionHandler.New(competitionProc, logger)

	// Initialize milestone processor and handler
	milestoneProc := milestoneProcessor.New(
		&deps.Store,
		&rewardProc,
		&redemptionProc,
		notifier,
		milestoneProcessor.Config{EnforceThreshold: cfg.Engine.EnforceMilestoneThreshold},
		logger,
	)
	deps.MilestoneHandler = milestoneHandler.New(milestoneProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
