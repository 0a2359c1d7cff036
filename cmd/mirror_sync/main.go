// Command mirror_sync copies the finance API transaction history into the Postgres mirror.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/couples_finance_bff/internal/adapters/upstream"
	"github.com/SscSPs/couples_finance_bff/internal/core/services"
	"github.com/SscSPs/couples_finance_bff/internal/platform/config"
	"github.com/SscSPs/couples_finance_bff/internal/platform/logger"
	"github.com/SscSPs/couples_finance_bff/internal/repositories/database/pgsql"
	"github.com/SscSPs/couples_finance_bff/pkg/database"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		return 1
	}

	appLogger := logger.New(cfg.LogLevel)
	slog.SetDefault(appLogger)

	if cfg.UpstreamServiceToken == "" {
		appLogger.Error("UPSTREAM_SERVICE_TOKEN is required for mirror sync")
		return 1
	}
	if cfg.MirrorViewerID == "" {
		appLogger.Error("MIRROR_VIEWER_ID is required for mirror sync")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		appLogger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return 1
	}
	defer database.ClosePgxPool(dbPool)

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, appLogger); err != nil {
		appLogger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return 1
	}

	client := upstream.NewClient(upstream.ClientConfig{
		BaseURL:      cfg.UpstreamBaseURL,
		ServiceToken: cfg.UpstreamServiceToken,
		Timeout:      cfg.UpstreamTimeout,
	})
	syncService := services.NewMirrorSyncService(client, pgsql.NewPgxTransactionRepository(dbPool),
		cfg.MirrorViewerID, cfg.UpstreamPageSize, cfg.UpstreamMaxPages)

	written, err := syncService.SyncTransactions(ctx)
	if err != nil {
		appLogger.Error("Mirror sync failed", slog.Int("rows_written", written), slog.String("error", err.Error()))
		return 1
	}

	appLogger.Info("Mirror sync complete", slog.Int("rows_written", written))
	return 0
}
