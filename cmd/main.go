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

	"saathi-bazaar/internal/adapter/http"
	"saathi-bazaar/internal/adapter/memory"
	"saathi-bazaar/internal/adapter/metrics"
	"saathi-bazaar/internal/adapter/notify"
	"saathi-bazaar/internal/adapter/postgres"
	"saathi-bazaar/internal/adapter/redis"
	"saathi-bazaar/internal/adapter/sweep"
	"saathi-bazaar/internal/adapter/usecase"
	"saathi-bazaar/internal/config"
	"saathi-bazaar/internal/core/port"
	"saathi-bazaar/internal/db"
)

// main is the entry point of the bulk order service. It loads
// configuration, optionally runs database migrations, wires the ledger to
// its repository and event sinks, then serves HTTP until it receives a
// termination signal.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repo port.CampaignRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			version, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied", slog.Uint64("version", uint64(version)))
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewCampaignRepository(pool)
	} else {
		logger.Warn("postgres disabled, campaigns are kept in memory")
		repo = memory.NewCampaignRepository()
	}

	sinks := []port.EventPublisher{notify.NewLogPublisher(logger)}
	if cfg.Redis.Enabled {
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer client.Close()
		sinks = append(sinks, redisadapter.NewEventPublisher(client, cfg.Redis.Channel))
	}
	dispatcher := notify.NewDispatcher(cfg.Ledger.NotifyWorkers, logger, sinks...)
	defer dispatcher.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := usecase.NewLedgerUseCase(repo, dispatcher, logger,
		usecase.WithRetry(cfg.Ledger.MaxAttempts, cfg.Ledger.InitialBackoff),
		usecase.WithMetrics(metrics.NewLedger(registry)),
	)

	if cfg.Psql.Seed {
		n, err := db.Seed(ctx, svc, time.Now())
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo campaigns seeded", slog.Int("count", n))
	}

	if cfg.Ledger.SweepSchedule != "" {
		sweeper, err := sweep.NewSweeper(ctx, svc, cfg.Ledger.SweepSchedule, logger)
		if err != nil {
			logger.Error("sweeper error", slog.Any("error", err))
			return
		}
		sweeper.Start()
		defer sweeper.Stop()
	}

	identity := httpadapter.NewIdentity(cfg.Auth)
	if identity.Trusted() {
		logger.Warn("AUTH_SECRET is empty, vendor identity and role are taken from X-Vendor-* headers without verification")
	}
	handler := httpadapter.NewHandler(svc, identity,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
