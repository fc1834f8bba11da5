package signature

import "time"

// DefaultToleranceSeconds is the freshness window used when none is configured
const DefaultToleranceSeconds = 10

// Config controls the optional parts of request validation
type Config struct {
	// FreshnessEnabled adds the timestamp check to ValidateRequest.
	// Off by default: existing clients do not send synchronized timestamps.
	FreshnessEnabled bool

	// ToleranceSeconds is the maximum age of a request timestamp
	ToleranceSeconds int
}

// DefaultConfig returns the configuration matching deployed clients
func DefaultConfig() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults applies default values to the configuration
func (c *Config) SetDefaults() {
	if c.ToleranceSeconds <= 0 {
		c.ToleranceSeconds = DefaultToleranceSeconds
	}
}

// Tolerance returns the freshness window as a duration
func (c *Config) Tolerance() time.Duration {
	return time.Duration(c.ToleranceSeconds) * time.Second
}
