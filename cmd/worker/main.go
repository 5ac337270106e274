package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/config"
	"github.com/hamed0406/ewsmon/internal/logging"
	"github.com/hamed0406/ewsmon/internal/notify"
	"github.com/hamed0406/ewsmon/internal/probe"
	"github.com/hamed0406/ewsmon/internal/repo"
	"github.com/hamed0406/ewsmon/internal/repo/memory"
	"github.com/hamed0406/ewsmon/internal/repo/postgres"
	"github.com/hamed0406/ewsmon/internal/scheduler"
	"github.com/hamed0406/ewsmon/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		targets repo.TargetStore
		probes  repo.ProbeStore
		subs    repo.SubscriptionStore
		rollups repo.RollupStore
	)
	if cfg.DatabaseURL == "" {
		logger.Warn("no DATABASE_URL, using in-memory store; history is lost on restart")
		mem := memory.New()
		targets, probes, subs, rollups = mem, mem, mem, mem
	} else {
		pg, err := postgres.New(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("postgres_connect", zap.Error(err))
		}
		defer pg.Close()
		if err := pg.InitSchema(ctx); err != nil {
			logger.Fatal("postgres_schema", zap.Error(err))
		}
		targets, probes, subs, rollups = pg, pg, pg, pg
	}

	if created, err := seed.Targets(ctx, targets); err != nil {
		logger.Warn("seed_error", zap.Error(err))
	} else if created > 0 {
		logger.Info("seeded_targets", zap.Int("created", created))
	}

	var channels notify.Multi
	if t := notify.NewTeams(cfg.TeamsWebhookURL, logger); t != nil {
		channels = append(channels, t)
	} else {
		logger.Warn("TEAMS_WEBHOOK_URL not set, teams alerts disabled")
	}
	channels = append(channels, notify.NewCustomerWebhooks(subs, logger))
	dispatcher := notify.NewDispatcher(channels, logger)

	prober := probe.New(cfg.ProbeTimeout, cfg.CredsFor)
	detector := scheduler.NewDetector(cfg.AlertCooldown)
	runner := scheduler.NewRunner(logger, targets, probes, prober, detector, dispatcher, scheduler.RunnerConfig{
		Interval:      cfg.PollInterval,
		ProbeTimeout:  cfg.ProbeTimeout,
		Concurrency:   cfg.MaxConcurrentProbes,
		RetentionDays: cfg.RetentionDays,
		CleanupEvery:  cfg.CleanupEvery,
	})

	rollupJob := scheduler.NewRollupJob(logger, rollups)
	if err := rollupJob.Start(); err != nil {
		logger.Fatal("rollup_schedule", zap.Error(err))
	}
	defer rollupJob.Stop()

	logger.Info("worker_started",
		zap.Duration("poll_interval", cfg.PollInterval),
		zap.Duration("probe_timeout", cfg.ProbeTimeout),
		zap.Int("max_concurrent_probes", cfg.MaxConcurrentProbes),
	)
	runner.Run(ctx)
}
