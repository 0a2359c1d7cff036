package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/couples_finance_bff/internal/adapters/upstream"
	portsrepo "github.com/SscSPs/couples_finance_bff/internal/core/ports/repositories"
	"github.com/SscSPs/couples_finance_bff/internal/core/services"
	"github.com/SscSPs/couples_finance_bff/internal/handlers"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
	"github.com/SscSPs/couples_finance_bff/internal/platform/config"
	"github.com/SscSPs/couples_finance_bff/internal/platform/logger"
	"github.com/SscSPs/couples_finance_bff/internal/repositories/database/pgsql"
	"github.com/SscSPs/couples_finance_bff/internal/utils"
	"github.com/SscSPs/couples_finance_bff/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Couples Finance BFF API
// @version 1.0
// @description Backend-for-frontend that shapes finance API data for the couples finance app.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appLogger := logger.New(cfg.LogLevel)
	slog.SetDefault(appLogger)

	repos, cleanup, err := buildRepositories(context.Background(), cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize transaction source", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(cfg, repos)

	analytics := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogHost, appLogger)
	defer analytics.Close()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		appLogger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(
		middleware.StructuredLoggingMiddleware(appLogger),
		gin.Recovery(),
		middleware.CORS(cfg.FrontendBaseURL),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		appLogger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		RateLimiter: rateLimiter,
		Analytics:   analytics,
	})

	appLogger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("transaction_source", string(cfg.TransactionSource)))
	if err := r.Run(":" + cfg.Port); err != nil {
		appLogger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories wires the configured transaction source. The returned cleanup releases its resources.
func buildRepositories(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.TransactionSource {
	case config.SourcePostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		appLogger.Info("Database connection pool established.")

		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, appLogger); err != nil {
			dbPool.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil

	default:
		client := upstream.NewClient(upstream.ClientConfig{
			BaseURL:      cfg.UpstreamBaseURL,
			ServiceToken: cfg.UpstreamServiceToken,
			Timeout:      cfg.UpstreamTimeout,
		})
		appLogger.Info("Using finance API as transaction source",
			slog.String("base_url", cfg.UpstreamBaseURL),
			slog.Duration("cache_ttl", cfg.CacheTTL))
		return portsrepo.RepositoryProvider{
			TransactionRepo: upstream.NewCachedTransactionReader(client, cfg.CacheSize, cfg.CacheTTL),
			AccountRepo:     client,
		}, func() {}, nil
	}
}
