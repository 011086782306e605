package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/stayfolio/hotel_pms_app/internal/adapters/modelclient"
	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/core/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
	"github.com/stayfolio/hotel_pms_app/internal/handlers"
	"github.com/stayfolio/hotel_pms_app/internal/middleware"
	"github.com/stayfolio/hotel_pms_app/internal/repositories/database/pgsql"
	"github.com/stayfolio/hotel_pms_app/pkg/config"
	"github.com/stayfolio/hotel_pms_app/pkg/database"
)

// @title Hotel PMS Backend API
// @version 1.0
// @description Billing backend for hotel properties: folios, taxes, room rates.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, CORS, rate limiting)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.Metrics(),
		cors.Default(),
		middleware.RateLimit(limiter.New(memory.NewStore(), limiter.Rate{
			Period: cfg.RateLimitPeriod,
			Limit:  cfg.RateLimitRequests,
		})),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Custom binding validators (item types, payment methods)
	if err := dto.RegisterValidations(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories and services
	repos := pgsql.NewRepositoryProvider(dbPool)

	var model portssvc.ModelClient
	if cfg.AssistantModelURL != "" {
		model = modelclient.New(cfg.AssistantModelURL, cfg.AssistantAPIKey)
		logger.Info("Assistant model client configured")
	}

	serviceContainer := services.NewServiceContainer(
		repos.FolioRepo,
		repos.TaxRepo,
		repos.RateRepo,
		model,
		services.AssistantConfig{
			MaxToolRounds:  cfg.AssistantMaxToolRound,
			MaxAttempts:    cfg.AssistantMaxAttempts,
			RetryBaseDelay: cfg.AssistantRetryBackoff,
		},
	)

	handlers.RegisterRoutes(r, cfg, serviceContainer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations from the migrations directory
// over a temporary database/sql connection.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
