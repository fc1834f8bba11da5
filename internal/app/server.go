package app

import (
	"context"
	"fmt"
	"time"

	"game-admin/internal/common/logging"
	"game-admin/internal/server"
)

// shutdownTimeout bounds graceful shutdown
const shutdownTimeout = 30 * time.Second

// RunServer starts the background jobs and the HTTP server
func (app *App) RunServer() (*server.Server, error) {
	if err := app.Mail.StartPurger(app.Config.MailPurgeSchedule); err != nil {
		return nil, fmt.Errorf("invalid MAIL_PURGE_SCHEDULE: %w", err)
	}

	srv := server.New(app.SetupRoutes(), app.Config.Port)
	if err := srv.Start(); err != nil {
		_ = app.Mail.Stop(context.Background())
		return nil, fmt.Errorf("failed to start server: %w", err)
	}

	app.Logger.Info("Server started", logging.String("port", app.Config.Port))
	app.Logger.Info("API documentation available",
		logging.String("url", fmt.Sprintf("http://localhost:%s/swagger/", app.Config.Port)))
	return srv, nil
}

// Shutdown stops the purger, drains the server and releases resources
func (app *App) Shutdown(srv *server.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Mail.Stop(ctx); err != nil {
		app.Logger.Warn("Mail purger did not stop in time", logging.Err(err))
	}

	var shutdownErr error
	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("server forced to shutdown: %w", err)
		}
	}

	app.Cleanup()
	return shutdownErr
}
