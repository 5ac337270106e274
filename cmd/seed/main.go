package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/config"
	"github.com/hamed0406/ewsmon/internal/logging"
	"github.com/hamed0406/ewsmon/internal/repo/postgres"
	"github.com/hamed0406/ewsmon/internal/seed"
)

// Inserts the default carrier targets into the database. Safe to run
// repeatedly; existing targets are left alone.
func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required for seeding")
	}

	ctx := context.Background()
	pg, err := postgres.New(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("postgres_connect", zap.Error(err))
	}
	defer pg.Close()
	if err := pg.InitSchema(ctx); err != nil {
		logger.Fatal("postgres_schema", zap.Error(err))
	}

	created, err := seed.Targets(ctx, pg)
	if err != nil {
		logger.Fatal("seed_error", zap.Error(err))
	}
	logger.Info("seed_completed",
		zap.Int("created", created),
		zap.Int("total", len(seed.DefaultTargets)))
}
