package app

import (
	"context"

	"game-admin/internal/auth"
	"game-admin/internal/circuitbreaker"
	"game-admin/internal/common/logging"
	"game-admin/internal/common/ratelimit"
	"game-admin/internal/config"
	"game-admin/internal/handlers"
	"game-admin/internal/leaderboard"
	"game-admin/internal/locks"
	"game-admin/internal/mail"
	"game-admin/internal/rbac"
	"game-admin/internal/redis"
	"game-admin/internal/signature"
	"game-admin/internal/storage"
)

// App holds all the application dependencies
type App struct {
	Config        *config.Config
	Storage       storage.Storage
	RedisClient   *redis.Client
	Auth          *auth.Auth
	Gate          *rbac.Gate
	Authenticator *signature.Authenticator
	Leaderboard   *leaderboard.Service
	Mail          *mail.Service
	RateLimiter   ratelimit.Limiter
	ClientIP      *ratelimit.ClientIP
	Handlers      *handlers.Handlers
	Logger        logging.Logger
}

// New creates a new application instance with all dependencies
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logging.GetGlobalLogger().WithFields(logging.String("component", "app")),
	}

	if err := app.initializeTimezone(); err != nil {
		return nil, err
	}

	// Initialize components in order of dependency
	if err := app.initializeStorage(ctx); err != nil {
		return nil, err
	}

	if err := app.initializeRedis(); err != nil {
		// Redis is optional, just log the error
		app.Logger.Warn("Redis initialization failed, continuing without Redis", logging.Err(err))
	}

	if err := app.seedAdmin(ctx); err != nil {
		app.Cleanup()
		return nil, err
	}

	if err := app.initializeAuth(ctx); err != nil {
		app.Cleanup()
		return nil, err
	}

	app.initializeSignature()
	if err := app.initializeServices(); err != nil {
		app.Cleanup()
		return nil, err
	}

	if err := app.initializeRateLimiter(); err != nil {
		app.Cleanup()
		return nil, err
	}

	app.Handlers = handlers.New(handlers.Deps{
		Storage:     app.Storage,
		Auth:        app.Auth,
		Gate:        app.Gate,
		Leaderboard: app.Leaderboard,
		Mail:        app.Mail,
		Redis:       app.redisHealth(),
		Config:      cfg,
	})

	return app, nil
}

func (app *App) initializeServices() error {
	var board leaderboard.Board
	var locker locks.Manager = locks.NewLocalManager()
	if app.RedisClient != nil {
		board = leaderboard.Guard(app.RedisClient, circuitbreaker.New("redis-leaderboard", circuitbreaker.RedisConfig))

		distributed, err := locks.NewRedsyncManager(app.RedisClient)
		if err != nil {
			return err
		}
		locker = distributed
	}

	app.Leaderboard = leaderboard.New(app.Storage, board)
	app.Mail = mail.New(app.Storage, mail.WithLocker(locker))
	return nil
}

// redisHealth returns nil rather than a typed nil when Redis is off
func (app *App) redisHealth() handlers.HealthChecker {
	if app.RedisClient == nil {
		return nil
	}
	return app.RedisClient
}

// Cleanup releases all resources
func (app *App) Cleanup() {
	if app.Storage != nil {
		if err := app.Storage.Close(); err != nil {
			app.Logger.Warn("Error closing storage", logging.Err(err))
		}
	}
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Logger.Warn("Error closing Redis", logging.Err(err))
		}
	}
}
