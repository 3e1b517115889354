// Package app wires configuration to storage and seed data.
package app

import (
	"context"
	"fmt"

	"asset-tracker/internal/config"
	"asset-tracker/internal/database"
	"asset-tracker/internal/model"
	"asset-tracker/internal/repository"
	"asset-tracker/internal/seed"

	"github.com/rs/zerolog"
)

// OpenStore opens the configured storage backend. The returned func releases it.
func OpenStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.ProductRepository, func(), error) {
	logger.Info().Str("backend", cfg.Storage.Backend).Msg("opening product store")

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return repository.NewMemoryRepository(logger), func() {}, nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := repository.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repository.NewProductRepository(pool, logger), pool.Close, nil

	case config.BackendGorm:
		db, err := database.NewGorm(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := repository.Migrate(ctx, db); err != nil {
			_ = database.CloseGorm(db)
			return nil, nil, err
		}
		closeFn := func() {
			if err := database.CloseGorm(db); err != nil {
				logger.Error().Err(err).Msg("failed to close gorm database")
			}
		}
		return repository.NewGormRepository(db, logger), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// SeedInputs returns the products used to populate an empty store: the
// configured seed file when set, the built-in samples otherwise.
func SeedInputs(ctx context.Context, cfg *config.Config, logger zerolog.Logger) ([]model.ProductInput, error) {
	if cfg.Seed.File == "" {
		return seed.DefaultProducts(), nil
	}

	fileLoader := seed.NewFileLoader(logger)
	var s3Loader seed.Loader

	if cfg.S3.Enabled {
		l, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	} else {
		logger.Info().Msg("using local file system for seed file (S3 disabled)")
	}

	loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	inputs, err := loader.Load(ctx, cfg.Seed.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file: %w", err)
	}
	return inputs, nil
}
