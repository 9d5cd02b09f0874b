package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	httpadapter "adboard/internal/adapter/http"
	"adboard/internal/adapter/jsonfile"
	"adboard/internal/adapter/postgres"
	"adboard/internal/adapter/rediscache"
	"adboard/internal/adapter/remote"
	"adboard/internal/adapter/usecase"
	"adboard/internal/config"
	"adboard/internal/config/configs"
	"adboard/internal/core/port"
	"adboard/internal/db"
	applog "adboard/internal/logger"
	"adboard/internal/observability"
)

// main is the entry point of the adboard API server. It loads configuration,
// opens the configured ad source, optionally puts the Redis cache in front
// of it, then starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := applog.New(cfg.Log, os.Stdout)

	loc, err := cfg.Source.Location()
	if err != nil {
		logger.Error("config error", slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewPrometheusRegistry(reg)

	src, closeSource, err := openSource(ctx, cfg, loc, logger, metrics)
	if err != nil {
		logger.Error("source error", slog.String("kind", cfg.Source.Kind), slog.Any("error", err))
		return
	}
	defer closeSource()

	if cfg.Redis.Enabled {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rdb.Close()
		src = rediscache.New(src, rdb, cfg.Redis.TTL, logger, metrics)
		logger.Info("redis cache enabled", slog.String("addr", cfg.Redis.Addr), slog.Duration("ttl", cfg.Redis.TTL))
	}

	svc := usecase.NewAdUseCase(src, cfg.Source.DefaultLimit, cfg.Source.MaxLimit)
	handler := httpadapter.NewHandler(svc, logger,
		httpadapter.WithCORSOrigins(cfg.HTTP.CORSOrigins),
		httpadapter.WithMetrics(metrics, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	if r, ok := src.(port.Reloader); ok && cfg.Source.Kind == configs.SourceFile && cfg.Source.Watch {
		w := jsonfile.NewWatcher(cfg.Source.DataPath, r, logger, 0)
		g.Go(func() error { return w.Run(gctx) })
	}

	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("source", cfg.Source.Kind))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	g.Go(func() error {
		select {
		case value := <-quit:
			exitCode = 128 + int(value.(syscall.Signal))
		case <-gctx.Done():
		}
		cancel()

		shutdownCtx, done := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		exitCode = 1
	}
}

// openSource builds the ad source selected by cfg.Source.Kind. The returned
// func releases its resources.
func openSource(ctx context.Context, cfg config.Config, loc *time.Location, logger *slog.Logger, metrics observability.MetricsRegistry) (port.AdSource, func(), error) {
	switch cfg.Source.Kind {
	case configs.SourcePostgres:
		// Optionally run migrations if configured. We use the Psql sub‑config.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewAdRepository(pool, loc), pool.Close, nil

	case configs.SourceRemote:
		return remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout, logger), func() {}, nil

	default:
		store, err := jsonfile.Open(ctx, cfg.Source.DataPath, logger,
			jsonfile.WithLocation(loc),
			jsonfile.WithMetrics(metrics),
		)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
