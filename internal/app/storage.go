package app

import (
	"context"
	"fmt"
	"time"

	"game-admin/internal/common/logging"
	"game-admin/internal/common/timefmt"
	"game-admin/internal/common/utils"
	"game-admin/internal/storage"
	_ "game-admin/internal/storage/sqlstore" // registers the sqlite and postgres factories
)

func (app *App) initializeStorage(ctx context.Context) error {
	if app.Config.IsPostgres() {
		app.Logger.Info("Database: PostgreSQL",
			logging.String("host", app.Config.PostgresHost),
			logging.String("port", app.Config.PostgresPort),
			logging.String("database", app.Config.PostgresDB),
		)
	} else {
		app.Logger.Info("Database: SQLite", logging.String("path", app.Config.DatabasePath))
	}

	// the database container may still be starting
	retry := utils.DefaultRetryConfig()
	retry.OnRetry = func(attempt int, delay time.Duration, err error) {
		app.Logger.Warn("Database not ready, retrying",
			logging.Int("attempt", attempt),
			logging.Duration("delay", delay),
			logging.Err(err))
	}

	var store storage.Storage
	err := utils.RetryWithBackoff(ctx, retry, func() error {
		var err error
		store, err = storage.NewStorage(app.Config)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.Storage = store
	return nil
}

func (app *App) initializeTimezone() error {
	loc, err := app.Config.Location()
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	timefmt.SetLocation(loc)
	return nil
}
