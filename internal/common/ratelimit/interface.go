package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether one more call for key is allowed
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Stats() map[string]interface{}
	Health() error
}

// RedisInterface is the part of the Redis client used by the distributed backend
type RedisInterface interface {
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error)
	Health() error
}
