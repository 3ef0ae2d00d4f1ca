package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Dhruv40689/resume-builder/internal/account"
	googleauth "github.com/Dhruv40689/resume-builder/internal/auth"
	"github.com/Dhruv40689/resume-builder/internal/enhance"
	"github.com/Dhruv40689/resume-builder/internal/profiles"
	"github.com/Dhruv40689/resume-builder/internal/shared/config"
	"github.com/Dhruv40689/resume-builder/internal/shared/server"
	"github.com/Dhruv40689/resume-builder/internal/shared/storage/db"
	"github.com/Dhruv40689/resume-builder/internal/shared/storage/object"
	localstore "github.com/Dhruv40689/resume-builder/internal/shared/storage/object/local"
	s3store "github.com/Dhruv40689/resume-builder/internal/shared/storage/object/s3"
)

// App holds shared dependencies wired from configuration.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Store           object.ObjectStore
	ProfilesRepo    profiles.Repo
	ProfilesService *profiles.Service
	ProfilesHandler *profiles.Handler
	AccountHandler  *account.Handler
	Enhancer        enhance.Enhancer
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares dependencies and the HTTP router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	app.Enhancer = buildEnhancer(cfg)

	if app.DB != nil {
		app.ProfilesRepo = &profiles.PGRepo{DB: app.DB}
	} else {
		app.ProfilesRepo = profiles.NewMemoryRepo()
	}

	app.ProfilesService = &profiles.Service{
		Repo:     app.ProfilesRepo,
		Store:    app.Store,
		Enhancer: app.Enhancer,
	}
	app.ProfilesHandler = profiles.NewHandler(app.ProfilesService)
	app.AccountHandler = account.NewHandler(account.NewService(app.ProfilesRepo))
	app.GoogleAuth = googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		ProfilesHandler: app.ProfilesHandler,
		AccountHandler:  app.AccountHandler,
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildEnhancer(cfg config.Config) enhance.Enhancer {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		return enhance.RuleBased{}
	}
	client, err := enhance.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		log.Printf("bootstrap: openai client unavailable; using rule-based enhancer: %v", err)
		return enhance.RuleBased{}
	}
	return enhance.WithFallback(client)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

var errDatabaseRequired = errors.New("DATABASE_URL is required")
