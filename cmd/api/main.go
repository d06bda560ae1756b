package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "localbiz/internal/adapters/http_server"
	"localbiz/internal/adapters/observability"
	redisad "localbiz/internal/adapters/redis"
	"localbiz/internal/app"
	"localbiz/internal/domain"
	"localbiz/internal/shared"
	mysqlrepo "localbiz/internal/storage/mysql"
	"localbiz/internal/storage/static"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	src := openSource(ctx, cfg)

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, cache errors will fall back to direct evaluation")
		}
		cache = rc
	}

	catalogs := app.NewCatalogs(src, cache, cfg.CacheTTL)
	catalogs.OnRefresh = func(k domain.Kind, n int) { observability.SetCatalogSize(string(k), n) }
	if err := catalogs.RefreshAll(ctx); err != nil {
		log.Error().Err(err).Msg("initial catalog load incomplete")
	}
	go catalogs.Run(ctx, cfg.RefreshInterval)

	// http
	srv := server.New(cfg.HTTPTimeout)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{C: catalogs})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("source", cfg.DataSource).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("API stopped")
}

func openSource(ctx context.Context, cfg shared.Config) domain.Source {
	if cfg.DataSource != shared.SourceMySQL {
		return static.New()
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")
	if cfg.Migrate {
		if err := mysqlrepo.Migrate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
	}
	return mysqlrepo.New(db)
}
