package ratelimit

import (
	"fmt"
	"time"
)

// BackendType selects the limiter implementation
type BackendType string

const (
	BackendLocal       BackendType = "local"
	BackendDistributed BackendType = "distributed"
)

// Config allows Limit calls per Window for each key
type Config struct {
	Enabled bool          `json:"enabled"`
	Limit   int           `json:"limit"`
	Window  time.Duration `json:"window"`
	Type    BackendType   `json:"type"`

	// Distributed backend
	KeyPrefix string `json:"key_prefix,omitempty"`

	// Local backend housekeeping
	MaxKeys       int           `json:"max_keys,omitempty"`
	CleanupPeriod time.Duration `json:"cleanup_period,omitempty"`
}

// DefaultConfig allows 100 calls per minute per key
func DefaultConfig() Config {
	c := Config{Enabled: true, Limit: 100, Window: time.Minute}
	_ = c.Validate()
	return c
}

// Validate fills defaults and rejects impossible values
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.Limit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.Limit)
	}
	if c.Window <= 0 {
		return fmt.Errorf("rate limit window must be positive, got %s", c.Window)
	}

	if c.Type == "" {
		c.Type = BackendLocal
	}

	switch c.Type {
	case BackendLocal:
		if c.MaxKeys <= 0 {
			c.MaxKeys = 10000
		}
		if c.CleanupPeriod <= 0 {
			c.CleanupPeriod = 5 * time.Minute
		}
	case BackendDistributed:
		if c.KeyPrefix == "" {
			c.KeyPrefix = "ratelimit:"
		}
	default:
		return fmt.Errorf("unsupported rate limiter backend type: %s", c.Type)
	}
	return nil
}
