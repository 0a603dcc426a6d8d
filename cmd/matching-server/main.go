// cmd/matching-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pratham1800/HouseHelp/internal/common/config"
	"github.com/pratham1800/HouseHelp/internal/common/database"
	"github.com/pratham1800/HouseHelp/internal/common/logger"
	"github.com/pratham1800/HouseHelp/internal/geo"
	"github.com/pratham1800/HouseHelp/internal/server"
	"github.com/pratham1800/HouseHelp/internal/store"
	matchworkers "github.com/pratham1800/HouseHelp/internal/workers/matching/match-workers"
	selectworker "github.com/pratham1800/HouseHelp/internal/workers/matching/select-worker"
	"github.com/pratham1800/HouseHelp/pkg/georegistry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting matching server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Load geographic registry ---
	var registry *georegistry.Registry
	if cfg.Matching.GeoRegistryPath != "" {
		registry, err = georegistry.Load(cfg.Matching.GeoRegistryPath)
		if err != nil {
			zapLog.Fatal("geo registry load failed",
				zap.String("path", cfg.Matching.GeoRegistryPath),
				zap.Error(err),
			)
		}
		zapLog.Info("Geo registry loaded",
			zap.String("path", cfg.Matching.GeoRegistryPath),
			zap.String("version", registry.Version),
		)
	} else {
		registry = georegistry.Default()
		zapLog.Info("Using built-in geo registry", zap.String("version", registry.Version))
	}
	resolver := geo.FromRegistry(registry)

	// --- Build handlers ---
	workerStore := store.NewWorkerStore(pg.DB)
	bookingStore := store.NewBookingStore(pg.DB, rdb.Client, config.GetDuration(cfg.Matching.BookingCacheTTL))

	matchConfig := &matchworkers.Config{
		MaxResults:      cfg.Matching.MaxResults,
		Timeout:         config.GetDuration(cfg.Matching.Timeout),
		BookingCacheTTL: config.GetDuration(cfg.Matching.BookingCacheTTL),
	}
	matcher := matchworkers.NewHandlerWithStores(matchConfig, workerStore, bookingStore, resolver, log)

	selectConfig := &selectworker.Config{
		Timeout: config.GetDuration(cfg.Matching.Timeout),
	}
	selector := selectworker.NewHandlerWithStore(selectConfig, workerStore, log)

	srv := server.New(cfg, log, matcher, selector, pg, rdb)

	// --- Start HTTP server ---
	address := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		if err := srv.Start(address); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()
	zapLog.Info("Matching server listening", zap.String("address", address))

	// --- Wait for shutdown signal ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Matching server stopped")
}
