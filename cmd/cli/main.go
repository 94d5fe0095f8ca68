package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"leembo/internal/bootstrap"
	"leembo/internal/config"
	"leembo/internal/logger"
	"leembo/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(buildMentor).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// buildMentor loads configuration and wires the mentor. Unless verbose is
// set only errors are logged so generation warnings do not interleave with
// the conversation.
func buildMentor(ctx context.Context, verbose bool) (service.MentorService, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !verbose {
		cfg.Logger.Level = "error"
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	comps, err := bootstrap.Build(ctx, cfg, logger.Get())
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = comps.Close()
		_ = logger.Sync()
	}
	return comps.Mentor, cleanup, nil
}
