package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"game-admin/internal/common/logging"
	"game-admin/internal/config"
)

// Run loads configuration, starts the service and blocks until SIGINT or
// SIGTERM, then shuts down gracefully
func Run() error {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logging.InitGlobalLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logging.MustSync()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}

	srv, err := app.RunServer()
	if err != nil {
		app.Cleanup()
		return err
	}

	var serveErr error
	select {
	case <-ctx.Done():
		app.Logger.Info("Shutting down server...")
	case serveErr = <-srv.Errors():
		app.Logger.Error("Server stopped unexpectedly", serveErr)
	}

	if err := app.Shutdown(srv); err != nil {
		return err
	}
	if serveErr != nil {
		return serveErr
	}

	app.Logger.Info("Server exited")
	return nil
}
