package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pitchside_backend/internal/adapters/storage"
	"pitchside_backend/internal/articles"
	"pitchside_backend/internal/email"
	"pitchside_backend/internal/football"
	apphttp "pitchside_backend/internal/http"
	"pitchside_backend/internal/http/router"
	"pitchside_backend/internal/players"
	"pitchside_backend/internal/squads"
	"pitchside_backend/internal/users"
	"pitchside_backend/platform/config"
	"pitchside_backend/platform/db"
	"pitchside_backend/platform/logger"
	"pitchside_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
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

	sender := email.NewSender(cfg)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Storage for article photos and profile images. Optional: without MinIO
	// the API still runs, with file uploads disabled.
	var storageSvc storage.StorageService
	if cfg.IsMinIOEnabled() {
		svc, err := storage.NewMinIOService(cfg)
		if err != nil {
			log.Error("failed to initialize storage service", "error", err)
			panic("failed to initialize storage service: " + err.Error())
		}
		ensureBuckets(ctx, log, svc, map[string]string{
			"article-photos": cfg.GetMinioBucketArticlePhotos(),
			"profile-images": cfg.GetMinioBucketProfileImages(),
		})
		storageSvc = svc
		log.Info("storage service initialized",
			"articlePhotosBucket", cfg.GetMinioBucketArticlePhotos(),
			"profileImagesBucket", cfg.GetMinioBucketProfileImages(),
		)
	} else {
		log.Warn("MINIO_ENDPOINT not configured; photo uploads disabled")
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	usersModule := users.NewModule(pool, cfg, sender, val, log)
	playersModule := players.NewModule(pool, val, log)
	articlesModule := articles.NewModule(pool, storageSvc, cfg.GetMinioBucketArticlePhotos(), val, log)
	squadsModule := squads.NewModule(pool, val, log)
	footballModule := football.NewModule(cfg, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			usersModule,
			playersModule,
			articlesModule,
			squadsModule,
			footballModule,
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

// ensureBuckets verifies all buckets concurrently; a missing bucket that
// cannot be created is fatal.
func ensureBuckets(ctx context.Context, log *logger.Logger, svc storage.StorageService, buckets map[string]string) {
	g, gctx := errgroup.WithContext(ctx)
	for name, bucket := range buckets {
		g.Go(func() error {
			return withRetry(gctx, log, "ensure "+name+" bucket", 5, 2*time.Second, func() error {
				return svc.EnsureBucketExists(gctx, bucket)
			})
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err)
		panic("failed to ensure storage bucket exists: " + err.Error())
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
