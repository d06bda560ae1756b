package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"localbiz/internal/adapters/feed"
	"localbiz/internal/adapters/observability"
	"localbiz/internal/app"
	"localbiz/internal/domain"
	"localbiz/internal/shared"
	mysqlrepo "localbiz/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)
	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	logger.Info().
		Str("base", cfg.FeedBase).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.PingContext(ctx); err != nil {
		logger.Fatal().Err(err).Msg("db.Ping failed")
	}
	if cfg.Migrate {
		if err := mysqlrepo.Migrate(ctx, db); err != nil {
			logger.Fatal().Err(err).Msg("migrations failed")
		}
	}
	repo := mysqlrepo.New(db)

	client, err := feed.New(cfg.FeedBase, cfg.FeedKey, cfg.FeedRPS)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize feed client")
	}
	ing := app.NewIngestionService(client, repo)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for _, kind := range domain.Kinds {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			logger.Error().Err(err).Msg("ingestion interrupted")
			break
		}

		wg.Add(1)
		go func(kind domain.Kind) {
			defer wg.Done()
			defer sem.Release(1)

			rep, err := ing.IngestKind(ctx, kind)
			observability.ObserveIngest(string(kind), "stored", rep.Stored)
			observability.ObserveIngest(string(kind), "rejected", rep.Rejected)
			if err != nil {
				failed.Add(1)
				logger.Warn().Str("kind", string(kind)).Err(err).Msg("ingest failed")
			}
		}(kind)
	}

	wg.Wait()
	_ = db.Close()
	if n := failed.Load(); n > 0 {
		logger.Error().Int32("failed_kinds", n).Msg("ingestion completed with failures")
		stop()
		os.Exit(1)
	}
	logger.Info().Msg("ingestion completed")
}
