package main

import (
	"context"

	"growth-server/internal/bootstrap"
	"growth-server/internal/config"
	"growth-server/internal/observability"
	"growth-server/internal/server"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "server shutdown failed", err)
	}
}
