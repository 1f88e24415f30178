package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/agms/agms-backend/docs" // Import generated swagger docs
	appControllers "github.com/agms/agms-backend/internal/app/controllers"
	appMigrations "github.com/agms/agms-backend/internal/app/migrations"
	appRepos "github.com/agms/agms-backend/internal/app/repositories"
	appRoutes "github.com/agms/agms-backend/internal/app/routes"
	appServices "github.com/agms/agms-backend/internal/app/services"
	"github.com/agms/agms-backend/internal/config"
	"github.com/agms/agms-backend/internal/db"
	appMiddleware "github.com/agms/agms-backend/internal/middleware"
	pkgAuth "github.com/agms/agms-backend/internal/pkg/auth"
	"github.com/agms/agms-backend/internal/pkg/helpers"
	"github.com/agms/agms-backend/internal/pkg/logger"
	"github.com/agms/agms-backend/internal/pkg/notification"
	"github.com/agms/agms-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services              *appServices.Services
	AuthController        *appControllers.AuthController
	ApprovalController    *appControllers.ApprovalController
	ClearanceController   *appControllers.ClearanceController
	EligibilityController *appControllers.EligibilityController
	HonorsController      *appControllers.HonorsController
	MessageController     *appControllers.MessageController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	LoginLimiter          *appMiddleware.TokenBucket
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Notifier              notification.Notifier
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seed failures are logged but do not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Notifier = notification.NewLogNotifier()

	deps.Services = appServices.NewServices(deps.Repos, cfg, deps.JWTService, deps.Notifier)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.LoginLimiter = appMiddleware.NewTokenBucket(cfg.RateLimit.LoginBurst, cfg.RateLimit.LoginPerMinute)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.ApprovalController = appControllers.NewApprovalController(deps.Services.ApprovalService, deps.Services.AuditService)
	deps.ClearanceController = appControllers.NewClearanceController(deps.Services.ClearanceService)
	deps.EligibilityController = appControllers.NewEligibilityController(deps.Services.EligibilityService)
	deps.HonorsController = appControllers.NewHonorsController(deps.Services.HonorsService)
	deps.MessageController = appControllers.NewMessageController(deps.Services.MessageService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ApprovalController,
		deps.ClearanceController,
		deps.EligibilityController,
		deps.HonorsController,
		deps.MessageController,
		deps.AuthMiddleware,
		deps.LoginLimiter,
	)

	// Health endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
