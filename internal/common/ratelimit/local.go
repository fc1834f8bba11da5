package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// localLimiter keeps one token bucket per key
type localLimiter struct {
	mu          sync.Mutex
	config      Config
	every       rate.Limit
	limiters    map[string]*limiterEntry
	lastCleanup time.Time
	now         func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// NewLocalLimiter creates an in-process limiter
func NewLocalLimiter(config Config) (Limiter, error) {
	config.Type = BackendLocal
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newLocalLimiter(config), nil
}

func newLocalLimiter(config Config) *localLimiter {
	return &localLimiter{
		config:      config,
		every:       rate.Limit(float64(config.Limit) / config.Window.Seconds()),
		limiters:    make(map[string]*limiterEntry),
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (rl *localLimiter) Allow(_ context.Context, key string) (bool, error) {
	if !rl.config.Enabled {
		return true, nil
	}
	now := rl.now()
	return rl.limiterFor(key, now).AllowN(now, 1), nil
}

func (rl *localLimiter) limiterFor(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastCleanup) > rl.config.CleanupPeriod {
		rl.cleanup(now)
	}

	entry, exists := rl.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.every, rl.config.Limit)}
		rl.limiters[key] = entry

		if len(rl.limiters) > rl.config.MaxKeys {
			rl.cleanup(now)
		}
	}
	entry.lastUsed = now
	return entry.limiter
}

// cleanup drops buckets idle for longer than a cleanup period
func (rl *localLimiter) cleanup(now time.Time) {
	cutoff := now.Add(-rl.config.CleanupPeriod)
	for key, entry := range rl.limiters {
		if entry.lastUsed.Before(cutoff) {
			delete(rl.limiters, key)
		}
	}
	rl.lastCleanup = now
}

func (rl *localLimiter) Stats() map[string]interface{} {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return map[string]interface{}{
		"type":         string(BackendLocal),
		"enabled":      rl.config.Enabled,
		"limit":        rl.config.Limit,
		"window":       rl.config.Window.String(),
		"active_keys":  len(rl.limiters),
		"max_keys":     rl.config.MaxKeys,
		"last_cleanup": rl.lastCleanup.Format(time.RFC3339),
	}
}

func (rl *localLimiter) Health() error {
	return nil
}
