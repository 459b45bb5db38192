package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/tutordesk/internal/app/auth"
	appControllers "github.com/yigit/tutordesk/internal/app/controllers"
	appMigrations "github.com/yigit/tutordesk/internal/app/migrations"
	appRepos "github.com/yigit/tutordesk/internal/app/repositories"
	"github.com/yigit/tutordesk/internal/app/repositories/memory"
	"github.com/yigit/tutordesk/internal/app/repositories/mongodb"
	"github.com/yigit/tutordesk/internal/app/repositories/postgres"
	appRoutes "github.com/yigit/tutordesk/internal/app/routes"
	appServices "github.com/yigit/tutordesk/internal/app/services"
	"github.com/yigit/tutordesk/internal/config"
	"github.com/yigit/tutordesk/internal/db"
	appMiddleware "github.com/yigit/tutordesk/internal/middleware"
	pkgAuth "github.com/yigit/tutordesk/internal/pkg/auth"
	"github.com/yigit/tutordesk/internal/pkg/filestorage"
	"github.com/yigit/tutordesk/internal/pkg/helpers"
	"github.com/yigit/tutordesk/internal/pkg/logger"
	"github.com/yigit/tutordesk/internal/pkg/session"
)

// CloseFunc releases a connection opened during start-up
type CloseFunc func(ctx context.Context) error

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store             appRepos.Store
	SessionStore      session.Store
	FileStorage       *filestorage.LocalStorage
	AuthzService      *appAuth.AuthorizationService
	AuthService       appServices.AuthService    // Interface type
	StudentService    appServices.StudentService // Interface type
	TutorService      appServices.TutorService   // Interface type
	SessionMiddleware *appMiddleware.SessionMiddleware
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	ProfileController *appControllers.ProfileController
	Logger            zerolog.Logger
}

// ConfigPath returns the configuration file location, overridable with CONFIG_PATH
func ConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return filepath.Join("configs", "config.yaml")
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the record store selected by database.driver, applying
// migrations (postgres) or indexes (mongo) on the way.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (appRepos.Store, CloseFunc, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return setupPostgres(cfg, lgr)
	case config.DriverMongo:
		return setupMongo(cfg, lgr)
	case config.DriverMemory:
		lgr.Warn().Msg("Using the in-memory record store; data is lost on restart")
		return memory.NewStore(), func(context.Context) error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func setupPostgres(cfg *config.Config, lgr zerolog.Logger) (appRepos.Store, CloseFunc, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := appMigrations.NewMigrator(database.Pool, lgr).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return postgres.NewStore(database), func(context.Context) error {
		database.Close()
		return nil
	}, nil
}

func setupMongo(cfg *config.Config, lgr zerolog.Logger) (appRepos.Store, CloseFunc, error) {
	lgr.Info().Msg("Connecting to MongoDB...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, nil, err
	}

	store := mongodb.NewStore(database.Client, database.Database, cfg.Database.Mongo.Transactions, lgr)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = database.Close(context.Background())
		lgr.Error().Err(err).Msg("Failed to create MongoDB indexes")
		return nil, nil, err
	}

	if !cfg.Database.Mongo.Transactions {
		lgr.Warn().Msg("MongoDB transactions disabled; a failed rename cascade can leave students under the old username")
	}
	lgr.Info().Str("database", cfg.Database.Mongo.Database).Msg("MongoDB ready")
	return store, database.Close, nil
}

// SetupSessions creates the session store selected by session.backend
func SetupSessions(cfg *config.Config, lgr zerolog.Logger) (session.Store, CloseFunc, error) {
	ttl := helpers.ParseDuration(cfg.Session.TTL, 24*time.Hour)

	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client, err := db.NewRedisClient(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to redis")
			return nil, nil, err
		}
		lgr.Info().Str("addr", cfg.Session.Redis.Addr).Msg("Redis session store ready")
		return session.NewRedisStore(client, ttl), func(context.Context) error { return client.Close() }, nil
	default:
		jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
			SecretKey:   cfg.Session.Secret,
			TokenExp:    ttl,
			TokenIssuer: cfg.Session.Issuer,
		})
		return session.NewJWTStore(jwtService), func(context.Context) error { return nil }, nil
	}
}

// BuildDependencies initializes file storage, services, middleware and controllers.
func BuildDependencies(cfg *config.Config, store appRepos.Store, sessionStore session.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Store:        store,
		SessionStore: sessionStore,
		Logger:       lgr,
	}

	if cfg.Security.BcryptCost > 0 {
		pkgAuth.BcryptCost = cfg.Security.BcryptCost
	}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(
		cfg.Storage.Path,
		cfg.Storage.URLPrefix,
		filestorage.NamingPolicy(strings.ToLower(cfg.Storage.Naming)),
	)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthzService = appAuth.NewAuthorizationService(cfg.Security.EnforceStudentOwnership)
	if !cfg.Security.EnforceStudentOwnership {
		lgr.Info().Msg("Student ownership checks disabled: any logged-in tutor may edit any student")
	}

	deps.AuthService = appServices.NewAuthService(store, deps.FileStorage, logger.WithComponent("auth_service"))
	deps.StudentService = appServices.NewStudentService(store, deps.FileStorage, deps.AuthzService, logger.WithComponent("student_service"))
	deps.TutorService = appServices.NewTutorService(store, deps.FileStorage, logger.WithComponent("tutor_service"))

	cookies := session.NewCookies(session.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
		MaxAge: helpers.ParseDuration(cfg.Session.TTL, 24*time.Hour),
	})
	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(sessionStore, cookies, logger.WithComponent("session"))

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.SessionMiddleware, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.TutorService, deps.FileStorage, lgr)
	deps.ProfileController = appControllers.NewProfileController(deps.TutorService, deps.SessionMiddleware, deps.FileStorage, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.MaxBodySize(cfg.Storage.MaxUploadSize))
	router.MaxMultipartMemory = cfg.Storage.MaxUploadSize

	appRoutes.SetupRouter(router, appRoutes.Controllers{
		Auth:    deps.AuthController,
		Student: deps.StudentController,
		Profile: deps.ProfileController,
	}, deps.SessionMiddleware, cfg.Storage.URLPrefix, deps.FileStorage.BasePath())

	return router
}
