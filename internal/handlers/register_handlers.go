package handlers

import (
	"net/http"

	"github.com/SscSPs/couples_finance_bff/cmd/docs"
	portssvc "github.com/SscSPs/couples_finance_bff/internal/core/ports/services"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
	"github.com/SscSPs/couples_finance_bff/internal/platform/config"
	"github.com/SscSPs/couples_finance_bff/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries the optional cross-cutting collaborators of the v1 routes.
// A nil RateLimiter disables rate limiting; a nil Analytics disables usage events.
type RouteDeps struct {
	RateLimiter *limiter.Limiter
	Analytics   *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	chain := []gin.HandlerFunc{}
	if deps.RateLimiter != nil {
		chain = append(chain, middleware.RateLimit(deps.RateLimiter))
	}
	chain = append(chain,
		middleware.APIKeyAuth(cfg.APIKeyHashes),
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.UsageEvents(deps.Analytics),
	)
	v1 := r.Group("/api/v1", chain...)

	RegisterInstallmentRoutes(v1, service.Installment)
	RegisterTransactionRoutes(v1, service.Transaction)
	RegisterAccountRoutes(v1, service.Account)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
