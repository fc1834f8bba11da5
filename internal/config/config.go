// Package config provides configuration management for the game admin service.
// It loads configuration from environment variables with sensible defaults
// and validates the result before the application starts.
//
// Environment Variables:
//
// Application Settings:
//   - PORT: Server port (default: 8080)
//   - LOG_LEVEL: Logging level (default: info)
//   - LOG_FILE: Optional log file path (default: stdout)
//   - TIMEZONE: IANA zone used when rendering dates (default: Local)
//   - MAX_BODY_BYTES: Maximum RPC request body size (default: 1048576)
//
// Database Configuration:
//   - DATABASE_TYPE: Database type - "sqlite" or "postgres" (default: sqlite)
//   - DATABASE_PATH: SQLite database file path (default: ./game_admin.db)
//   - POSTGRES_HOST, POSTGRES_PORT, POSTGRES_DB, POSTGRES_USER,
//     POSTGRES_PASSWORD, POSTGRES_SSL_MODE
//
// Redis Configuration (optional, leave REDIS_ADDRESS empty to disable):
//   - REDIS_ADDRESS, REDIS_PASSWORD, REDIS_DB, REDIS_POOL_SIZE
//
// Security Configuration:
//   - JWT_SECRET: Session token signing secret (required, minimum 32 characters)
//   - TOKEN_TTL: Session token lifetime (default: 24h)
//   - ADMIN_USERNAME / ADMIN_PASSWORD: Seeded administrator account
//   - SIGN_FRESHNESS_ENABLED: Reject stale request timestamps (default: false)
//   - SIGN_FRESHNESS_TOLERANCE: Maximum request age (default: 10s)
//
// Rate Limiting:
//   - RATE_LIMIT_ENABLED: Enable rate limiting (default: true)
//   - RATE_LIMIT_DEFAULT: Requests per window (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit time window (default: 60s)
//   - TRUSTED_PROXIES: Comma separated proxy CIDRs whose X-Forwarded-For
//     is believed (default: none)
//
// Jobs:
//   - MAIL_PURGE_SCHEDULE: Cron spec for the expired mail purge (default: @every 1h)
//
// Example usage:
//
//	cfg := config.Load()
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("Invalid configuration: %v", err)
//	}
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"game-admin/internal/common/ratelimit"
	"game-admin/internal/common/utils"
)

// Config holds all configuration values for the service.
// Call Validate before use.
type Config struct {
	// Application settings
	Port         string // Server port number
	LogLevel     string // Logging level (debug, info, warn, error)
	LogFile      string // Log file path, empty for stdout
	Timezone     string // Zone used for rendered dates
	MaxBodyBytes int64  // Maximum RPC body size

	// Database configuration
	DatabaseType     string // "sqlite" or "postgres"
	DatabasePath     string // Path to SQLite database file
	PostgresHost     string
	PostgresPort     string
	PostgresDB       string
	PostgresUser     string
	PostgresPassword string
	PostgresSSLMode  string

	// Redis configuration
	RedisAddress  string // Redis server address (host:port), empty disables Redis
	RedisPassword string
	RedisDB       string // Redis database number (0-15)
	RedisPoolSize string

	// Rate limiting configuration
	RateLimitEnabled bool
	RateLimitDefault string // Requests per window
	RateLimitWindow  string // e.g. "60s", "1m"
	TrustedProxies   string // CIDRs or addresses, comma separated

	// Authentication
	JWTSecret     string
	TokenTTL      time.Duration
	AdminUsername string
	AdminPassword string

	// Request signatures
	SignFreshnessEnabled   bool
	SignFreshnessTolerance time.Duration

	// Jobs
	MailPurgeSchedule string
}

// Load creates a Config from environment variables, falling back to defaults.
// It does not validate.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", ""),
		Timezone:     getEnv("TIMEZONE", "Local"),
		MaxBodyBytes: getInt64Env("MAX_BODY_BYTES", 1<<20),

		DatabaseType:     getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath:     getEnv("DATABASE_PATH", "./game_admin.db"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresDB:       getEnv("POSTGRES_DB", "game_admin"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresSSLMode:  getEnv("POSTGRES_SSL_MODE", "disable"),

		RedisAddress:  getEnv("REDIS_ADDRESS", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnv("REDIS_DB", "0"),
		RedisPoolSize: getEnv("REDIS_POOL_SIZE", "10"),

		RateLimitEnabled: getBoolEnv("RATE_LIMIT_ENABLED", true),
		RateLimitDefault: getEnv("RATE_LIMIT_DEFAULT", "100"),
		RateLimitWindow:  getEnv("RATE_LIMIT_WINDOW", "60s"),
		TrustedProxies:   getEnv("TRUSTED_PROXIES", ""),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTL:      getDurationEnv("TOKEN_TTL", 24*time.Hour),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		SignFreshnessEnabled:   getBoolEnv("SIGN_FRESHNESS_ENABLED", false),
		SignFreshnessTolerance: getDurationEnv("SIGN_FRESHNESS_TOLERANCE", 10*time.Second),

		MailPurgeSchedule: getEnv("MAIL_PURGE_SCHEDULE", "@every 1h"),
	}
}

// IsPostgres reports whether the PostgreSQL backend is selected
func (c *Config) IsPostgres() bool {
	return c.DatabaseType == "postgres" || c.DatabaseType == "postgresql"
}

// RedisEnabled reports whether a Redis address is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisAddress != ""
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv accepts the forms understood by strconv.ParseBool. Anything
// else yields defaultValue.
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getDurationEnv accepts Go durations ("10s") and bare integers as seconds
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Validate checks required fields, value formats and cross-field
// dependencies. Call it after Load and before starting the server.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long for security")
	}

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number between 1 and 65535")
	}

	switch c.DatabaseType {
	case "sqlite", "postgres", "postgresql":
	default:
		return fmt.Errorf("DATABASE_TYPE must be 'sqlite' or 'postgres'")
	}

	if c.IsPostgres() {
		if c.PostgresHost == "" {
			return fmt.Errorf("POSTGRES_HOST is required when using PostgreSQL")
		}
		if c.PostgresDB == "" {
			return fmt.Errorf("POSTGRES_DB is required when using PostgreSQL")
		}
		if c.PostgresUser == "" {
			return fmt.Errorf("POSTGRES_USER is required when using PostgreSQL")
		}
		if port, err := strconv.Atoi(c.PostgresPort); err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("POSTGRES_PORT must be a valid port number")
		}
	}

	if c.RedisEnabled() {
		if db, err := strconv.Atoi(c.RedisDB); err != nil || db < 0 || db > 15 {
			return fmt.Errorf("REDIS_DB must be a number between 0 and 15")
		}
		if poolSize, err := strconv.Atoi(c.RedisPoolSize); err != nil || poolSize < 1 {
			return fmt.Errorf("REDIS_POOL_SIZE must be a positive number")
		}
	}

	if c.RateLimitEnabled {
		if limit, err := strconv.Atoi(c.RateLimitDefault); err != nil || limit < 1 {
			return fmt.Errorf("RATE_LIMIT_DEFAULT must be a positive number")
		}
		if window, err := utils.ParseDuration(c.RateLimitWindow); err != nil || window <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be a valid duration (e.g., '60s', '1m', '1d')")
		}
	}

	if _, err := ratelimit.ParseTrustedProxies(c.TrustedProxies); err != nil {
		return fmt.Errorf("TRUSTED_PROXIES: %v", err)
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be a positive duration")
	}

	if c.SignFreshnessTolerance < time.Second {
		return fmt.Errorf("SIGN_FRESHNESS_TOLERANCE must be at least one second")
	}

	if c.MaxBodyBytes < 1 {
		return fmt.Errorf("MAX_BODY_BYTES must be a positive number")
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("TIMEZONE %q is not a valid time zone: %v", c.Timezone, err)
	}

	if _, err := cron.ParseStandard(c.MailPurgeSchedule); err != nil {
		return fmt.Errorf("MAIL_PURGE_SCHEDULE is not a valid cron spec: %v", err)
	}

	return nil
}
