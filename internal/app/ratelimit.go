package app

import (
	"fmt"
	"strconv"

	"game-admin/internal/common/logging"
	"game-admin/internal/common/ratelimit"
	"game-admin/internal/common/utils"
)

// initializeRateLimiter shares limits through Redis when it is available and
// keeps them per instance otherwise
func (app *App) initializeRateLimiter() error {
	clientIP, err := ratelimit.NewClientIP(app.Config.TrustedProxies)
	if err != nil {
		return fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	app.ClientIP = clientIP

	if !app.Config.RateLimitEnabled {
		limiter, err := ratelimit.New(ratelimit.Config{Enabled: false, Type: ratelimit.BackendLocal})
		if err != nil {
			return err
		}
		app.RateLimiter = limiter
		app.Logger.Info("Rate Limiting: Disabled")
		return nil
	}

	limit, err := strconv.Atoi(app.Config.RateLimitDefault)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT_DEFAULT %q: %w", app.Config.RateLimitDefault, err)
	}
	window, err := utils.ParseDuration(app.Config.RateLimitWindow)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	cfg := ratelimit.Config{
		Enabled:   true,
		Limit:     limit,
		Window:    window,
		Type:      ratelimit.BackendLocal,
		KeyPrefix: "rl:",
	}

	var limiter ratelimit.Limiter
	if app.RedisClient != nil {
		cfg.Type = ratelimit.BackendDistributed
		limiter, err = ratelimit.New(cfg, app.RedisClient)
	} else {
		limiter, err = ratelimit.New(cfg)
	}
	if err != nil {
		return err
	}

	app.RateLimiter = limiter
	app.Logger.Info("Rate Limiting: Enabled",
		logging.String("backend", string(cfg.Type)),
		logging.Int("limit", limit),
		logging.Duration("window", window),
	)
	return nil
}

