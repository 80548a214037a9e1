package main

import (
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/display_helpers/internal/core/ports/services"
	"github.com/SscSPs/display_helpers/internal/core/services"
	"github.com/SscSPs/display_helpers/internal/handlers"
	"github.com/SscSPs/display_helpers/internal/middleware"
	"github.com/SscSPs/display_helpers/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Display Helpers API
// @version 1.0
// @description Formats amounts, dates and identifiers for the web UI.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ipLimiter, err := middleware.NewIPLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limit)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(ipLimiter),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := &portssvc.ServiceContainer{
		Formatter: services.NewFormatterService(
			services.WithLocation(cfg.DateLocation),
			services.WithMaxBatchSize(cfg.MaxBatchSize),
		),
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("date_timezone", cfg.DateLocation.String()),
		slog.Bool("auth_enabled", cfg.JWTSecret != ""))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
