package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/berk/parentportal/internal/app/controllers"
	appMigrations "github.com/berk/parentportal/internal/app/migrations"
	appRepos "github.com/berk/parentportal/internal/app/repositories"
	appRoutes "github.com/berk/parentportal/internal/app/routes"
	appServices "github.com/berk/parentportal/internal/app/services"
	"github.com/berk/parentportal/internal/cache"
	"github.com/berk/parentportal/internal/config"
	"github.com/berk/parentportal/internal/db"
	appMiddleware "github.com/berk/parentportal/internal/middleware"
	"github.com/berk/parentportal/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	StudentService         appServices.StudentService
	FeeService             appServices.FeeService
	ExamService            appServices.ExamService
	AnnouncementService    appServices.AnnouncementService
	YearService            appServices.YearService
	ItemService            appServices.ItemService
	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	FeeController          *appControllers.FeeController
	ExamController         *appControllers.ExamController
	SchoolController       *appControllers.SchoolController
	NotificationController *appControllers.NotificationController
	Repos                  *appRepos.Repositories
	Logger                 zerolog.Logger
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

// SetupDatabase establishes the connection pool, runs migrations and wraps
// the pool in the retrying accessor used by the repositories.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, *db.DB, error) {
	lgr.Info().Msg("Establishing database connection...")
	pool, err := db.NewPool(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		pool.Close()
		return nil, nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		pool.Close()
		return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		pool.Close()
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	database := db.New(pool, cfg.Database.RetryAttempts, cfg.RetryBackoffDuration())
	return pool, database, nil
}

// SetupCache connects to Redis. A failed connection is not fatal; the
// returned client tracks availability and the services fall back to the
// database when the cache is unreachable.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) *cache.Client {
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Connecting to Redis...")
	return cache.NewClient(cfg)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.DB, cacheClient *cache.Client, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// Initialize services
	deps.AuthService = appServices.NewAuthService(deps.Repos.ParentRepository, deps.Repos.StudentRepository)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.ActivityRepository,
	)
	deps.FeeService = appServices.NewFeeService(deps.Repos.FeeRepository)
	deps.ExamService = appServices.NewExamService(deps.Repos.ExamRepository)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository)
	deps.YearService = appServices.NewYearService(deps.Repos.YearRepository)
	deps.ItemService = appServices.NewItemService(deps.Repos.ParentRepository, cacheClient, cfg.CacheTTL())

	// Initialize controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.FeeController = appControllers.NewFeeController(deps.FeeService)
	deps.ExamController = appControllers.NewExamController(deps.ExamService)
	deps.SchoolController = appControllers.NewSchoolController(deps.AnnouncementService, deps.YearService, deps.ItemService)
	deps.NotificationController = appControllers.NewNotificationController()

	return deps
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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.FeeController,
		deps.ExamController,
		deps.SchoolController,
		deps.NotificationController,
	)

	return router
}
