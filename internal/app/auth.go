package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"game-admin/internal/auth"
	"game-admin/internal/common/errors"
	"game-admin/internal/common/logging"
	"game-admin/internal/handlers"
	"game-admin/internal/rbac"
	"game-admin/internal/signature"
	"game-admin/internal/storage"
)

func (app *App) initializeAuth(ctx context.Context) error {
	var revoked auth.Revocations
	if app.RedisClient != nil {
		revoked = auth.NewRedisRevocations(app.RedisClient)
	}

	authService, err := auth.New(app.Storage, app.Config, revoked)
	if err != nil {
		return fmt.Errorf("failed to initialize auth: %w", err)
	}
	app.Auth = authService

	gate, err := rbac.NewGate(ctx, app.Storage)
	if err != nil {
		return fmt.Errorf("failed to load permissions: %w", err)
	}
	app.Gate = gate
	return nil
}

func (app *App) initializeSignature() {
	cfg := &signature.Config{
		FreshnessEnabled: app.Config.SignFreshnessEnabled,
		ToleranceSeconds: int(app.Config.SignFreshnessTolerance / time.Second),
	}
	cfg.SetDefaults()
	app.Authenticator = signature.NewAuthenticator(cfg,
		signature.WithLogger(app.Logger.WithFields(logging.String("component", "signature"))))

	if cfg.FreshnessEnabled {
		app.Logger.Info("Request freshness check enabled", logging.Int("tolerance_seconds", cfg.ToleranceSeconds))
	}
}

// seedAdmin makes sure the admin role exists and, on an empty user table,
// creates the initial administrator
func (app *App) seedAdmin(ctx context.Context) error {
	if _, err := app.Storage.GetRole(ctx, handlers.AdminRole); err != nil {
		if !errors.IsType(err, errors.ErrTypeNotFound) {
			return fmt.Errorf("failed to look up admin role: %w", err)
		}
		now := time.Now()
		role := &storage.Role{
			Name:        handlers.AdminRole,
			Description: "Built-in administrator",
			Permissions: []string{rbac.Wildcard},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := app.Storage.CreateRole(ctx, role); err != nil && !errors.IsType(err, errors.ErrTypeConflict) {
			return fmt.Errorf("failed to create admin role: %w", err)
		}
	}

	count, err := app.Storage.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	password := app.Config.AdminPassword
	generated := password == ""
	if generated {
		password = uuid.NewString()
	}
	if err := auth.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid ADMIN_PASSWORD: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	user := &storage.User{
		ID:           uuid.NewString(),
		Username:     app.Config.AdminUsername,
		PasswordHash: hash,
		Roles:        []string{handlers.AdminRole},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := app.Storage.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if generated {
		app.Logger.Warn("Created admin user with a generated password, change it after first login",
			logging.String("username", user.Username),
			logging.String("password", password))
	} else {
		app.Logger.Info("Created admin user", logging.String("username", user.Username))
	}
	return nil
}
