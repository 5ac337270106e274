package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/config"
	"github.com/hamed0406/ewsmon/internal/httpapi"
	"github.com/hamed0406/ewsmon/internal/logging"
	"github.com/hamed0406/ewsmon/internal/repo"
	"github.com/hamed0406/ewsmon/internal/repo/memory"
	"github.com/hamed0406/ewsmon/internal/repo/postgres"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var (
		targets repo.TargetStore
		probes  repo.ProbeStore
		rollups repo.RollupStore
	)
	if cfg.DatabaseURL == "" {
		logger.Warn("no DATABASE_URL, serving from an empty in-memory store")
		mem := memory.New()
		targets, probes, rollups = mem, mem, mem
	} else {
		pg, err := postgres.New(context.Background(), cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("postgres_connect", zap.Error(err))
		}
		defer pg.Close()
		targets, probes, rollups = pg, pg, pg
	}

	api := httpapi.NewServer(logger, targets, probes, rollups)

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router()); err != nil {
		log.Fatal(err)
	}
}
