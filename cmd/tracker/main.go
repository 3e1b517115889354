package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"asset-tracker/internal/app"
	"asset-tracker/internal/config"
	"asset-tracker/internal/console"
	"asset-tracker/internal/seed"
	"asset-tracker/internal/service"

	"github.com/google/uuid"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger).With().Str("session_id", uuid.NewString()).Logger()
	logger.Info().Str("backend", cfg.Storage.Backend).Msg("starting asset tracker")

	// Cancel on interrupt so a blocked prompt returns
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := service.NewInventoryService(repo, nil, logger)

	if cfg.Seed.Enabled {
		inputs, err := app.SeedInputs(ctx, cfg, logger)
		if err != nil {
			return err
		}
		n, err := seed.Seed(ctx, svc, repo, inputs)
		if err != nil {
			return fmt.Errorf("failed to seed inventory: %w", err)
		}
		logger.Info().Int("products_seeded", n).Msg("seed finished")
	}

	c := console.New(svc, os.Stdin, os.Stdout, console.Options{
		NoColor:    cfg.Console.NoColor,
		ForceColor: cfg.Console.ForceColor,
	}, logger)

	if err := c.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("shutdown signal received")
			fmt.Fprintln(os.Stdout)
			return nil
		}
		return fmt.Errorf("console error: %w", err)
	}

	logger.Info().Msg("asset tracker stopped")
	return nil
}
