package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"game-admin/internal/common/errors"
	"game-admin/internal/common/response"
)

// New creates a limiter for config.Type. The distributed backend needs a
// Redis client.
func New(config Config, redisClient ...RedisInterface) (Limiter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case BackendLocal:
		return NewLocalLimiter(config)
	case BackendDistributed:
		if len(redisClient) == 0 || redisClient[0] == nil {
			return nil, fmt.Errorf("redis client is required for distributed rate limiter")
		}
		return NewDistributedLimiter(config, redisClient[0])
	default:
		return nil, fmt.Errorf("unsupported rate limiter backend type: %s", config.Type)
	}
}

// HTTPMiddleware rejects calls over the limit with a 4029 envelope
func HTTPMiddleware(limiter Limiter, keyFunc func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, _ := limiter.Allow(r.Context(), keyFunc(r))
			if !allowed {
				stats := limiter.Stats()
				if limit, ok := stats["limit"].(int); ok {
					w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
				}
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", "1")

				response.Error(w, r, errors.RateLimitError("client").WithReason("rate_limited"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IPKey keys by the connection's peer address
func IPKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
