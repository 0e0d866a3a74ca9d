package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"customer_intel_backend/internal/churn"
	"customer_intel_backend/internal/dataset"
	apphttp "customer_intel_backend/internal/http"
	"customer_intel_backend/internal/http/router"
	"customer_intel_backend/internal/insights"
	"customer_intel_backend/internal/leads"
	leadrepo "customer_intel_backend/internal/leads/repository"
	"customer_intel_backend/platform/config"
	"customer_intel_backend/platform/db"
	"customer_intel_backend/platform/logger"
	"customer_intel_backend/platform/predictor"
	"customer_intel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	var pool *pgxpool.Pool
	var repo leadrepo.Repository = leadrepo.NewMemory()

	if cfg.IsDatabaseEnabled() {
		if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
			return db.RunMigrations(ctx, cfg, "migrations")
		}); err != nil {
			log.Error("failed to run database migrations", "error", err)
			panic("failed to run database migrations: " + err.Error())
		}
		log.Info("database migrations complete")

		if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
			p, err := db.NewPool(ctx, cfg)
			if err != nil {
				return err
			}
			pool = p
			return nil
		}); err != nil {
			log.Error("failed to connect to database", "error", err)
			panic("failed to connect to database: " + err.Error())
		}
		defer pool.Close()
		log.Info("database connection established")

		repo = leadrepo.NewPostgres(pool)
	} else {
		log.Warn("DATABASE_URL not configured; using in-memory lead store")
	}

	// Dataset store: lifecycle-scoped, memoized, shared by all consumers.
	datasets := dataset.NewStore(cfg.GetDataDir(), log)
	warmDatasets(ctx, log, datasets)

	var predictorClient *predictor.Client
	if cfg.IsPredictorEnabled() {
		predictorClient = predictor.NewClient(predictor.Config{
			BaseURL: cfg.GetPredictorURL(),
			Timeout: cfg.GetPredictorTimeout(),
		})
		log.Info("external prediction service configured", "url", cfg.GetPredictorURL())
	} else {
		log.Info("no external prediction service configured; heuristic engine only")
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	leadsModule := leads.NewModule(repo, datasets, predictorClient, val, log)
	churnModule := churn.NewModule(datasets, log)
	insightsModule := insights.NewModule(leadsModule.Service(), churnModule.Service(), log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			leadsModule,
			churnModule,
			insightsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// warmDatasets pre-loads the CSV datasets so the first scoring request does
// not pay the load cost. Failures are logged and left for per-request retry;
// missing files only disable historical-rate weighting.
func warmDatasets(ctx context.Context, log *logger.Logger, store *dataset.Store) {
	if _, err := store.HistoricalLeads(ctx); err != nil {
		log.Warn("historical leads dataset not preloaded", "error", err)
	}
	if _, _, err := store.ChurnInputs(ctx); err != nil {
		log.Warn("churn datasets not preloaded", "error", err)
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
