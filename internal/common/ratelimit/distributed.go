package ratelimit

import (
	"context"
	"fmt"
	"time"

	"game-admin/internal/common/logging"
)

// distributedLimiter counts calls in Redis so all instances share a budget
type distributedLimiter struct {
	config      Config
	redisClient RedisInterface
	logger      logging.Logger
}

// NewDistributedLimiter creates a Redis-backed limiter
func NewDistributedLimiter(config Config, redisClient RedisInterface) (Limiter, error) {
	config.Type = BackendDistributed
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if redisClient == nil {
		return nil, fmt.Errorf("redis client is required for distributed rate limiter")
	}

	return &distributedLimiter{
		config:      config,
		redisClient: redisClient,
		logger:      logging.GetGlobalLogger().WithFields(logging.String("component", "ratelimit")),
	}, nil
}

// Allow fails open when Redis is unreachable, returning the error for logging
func (rl *distributedLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if !rl.config.Enabled {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	allowed, _, err := rl.redisClient.CheckRateLimit(ctx, rl.config.KeyPrefix+key, rl.config.Limit, rl.config.Window)
	if err != nil {
		rl.logger.Warn("Rate limit check failed, allowing request", logging.Err(err))
		return true, err
	}
	return allowed, nil
}

func (rl *distributedLimiter) Stats() map[string]interface{} {
	return map[string]interface{}{
		"type":       string(BackendDistributed),
		"enabled":    rl.config.Enabled,
		"limit":      rl.config.Limit,
		"window":     rl.config.Window.String(),
		"key_prefix": rl.config.KeyPrefix,
	}
}

func (rl *distributedLimiter) Health() error {
	return rl.redisClient.Health()
}
