package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/studysphere/backend/internal/app/controllers"
	appMigrations "github.com/studysphere/backend/internal/app/migrations"
	appRepos "github.com/studysphere/backend/internal/app/repositories"
	appRoutes "github.com/studysphere/backend/internal/app/routes"
	appServices "github.com/studysphere/backend/internal/app/services"
	"github.com/studysphere/backend/internal/config"
	"github.com/studysphere/backend/internal/db"
	"github.com/studysphere/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SubjectService      appServices.SubjectService
	AnnouncementService appServices.AnnouncementService
	CommentService      appServices.CommentService
	MaterialService     appServices.MaterialService
	AssignmentService   appServices.AssignmentService
	ReminderService     appServices.ReminderService
	FeedService         appServices.FeedService

	SubjectController      *appControllers.SubjectController
	AnnouncementController *appControllers.AnnouncementController
	MaterialController     *appControllers.MaterialController
	AssignmentController   *appControllers.AssignmentController
	ReminderController     *appControllers.ReminderController
	FeedController         *appControllers.FeedController

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
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

// SetupDatabase opens (or creates) the database file and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.SQLiteDB, error) {
	lgr.Info().Str("path", cfg.Database.Path).Msg("Opening database...")
	database, err := db.NewSQLiteDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.DB)
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.SQLiteDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.DB)

	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository)
	deps.CommentService = appServices.NewCommentService(deps.Repos.CommentRepository)
	deps.MaterialService = appServices.NewMaterialService(deps.Repos.MaterialRepository)
	deps.AssignmentService = appServices.NewAssignmentService(deps.Repos.AssignmentRepository)
	deps.ReminderService = appServices.NewReminderService(deps.Repos.ReminderRepository)
	deps.FeedService = appServices.NewFeedService(
		deps.Repos.AnnouncementRepository,
		deps.Repos.MaterialRepository,
		deps.Repos.AssignmentRepository,
		deps.Repos.ReminderRepository,
	)

	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService, deps.CommentService)
	deps.MaterialController = appControllers.NewMaterialController(deps.MaterialService)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService)
	deps.ReminderController = appControllers.NewReminderController(deps.ReminderService)
	deps.FeedController = appControllers.NewFeedController(deps.FeedService)

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

	appRoutes.SetupRouter(router,
		deps.SubjectController,
		deps.AnnouncementController,
		deps.MaterialController,
		deps.AssignmentController,
		deps.ReminderController,
		deps.FeedController,
	)

	return router
}
