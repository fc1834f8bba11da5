package config

import (
	"os"
	"testing"
	"time"
)

var testEnvVars = []string{
	"PORT", "LOG_LEVEL", "LOG_FILE", "TIMEZONE", "MAX_BODY_BYTES",
	"DATABASE_TYPE", "DATABASE_PATH",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_DB", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_SSL_MODE",
	"REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB", "REDIS_POOL_SIZE",
	"RATE_LIMIT_ENABLED", "RATE_LIMIT_DEFAULT", "RATE_LIMIT_WINDOW",
	"JWT_SECRET", "TOKEN_TTL", "ADMIN_USERNAME", "ADMIN_PASSWORD",
	"SIGN_FRESHNESS_ENABLED", "SIGN_FRESHNESS_TOLERANCE", "MAIL_PURGE_SCHEDULE",
}

func clearTestEnvVars(t *testing.T) {
	for _, key := range testEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	clearTestEnvVars(t)

	config := Load()

	if config.Port != "8080" {
		t.Errorf("Load() Port = %v, want %v", config.Port, "8080")
	}

	if config.DatabaseType != "sqlite" {
		t.Errorf("Load() DatabaseType = %v, want sqlite", config.DatabaseType)
	}

	if config.DatabasePath != "./game_admin.db" {
		t.Errorf("Load() DatabasePath = %v, want %v", config.DatabasePath, "./game_admin.db")
	}

	if config.RedisEnabled() {
		t.Errorf("Load() Redis should be disabled without REDIS_ADDRESS")
	}

	if !config.RateLimitEnabled {
		t.Errorf("Load() RateLimitEnabled = %v, want true", config.RateLimitEnabled)
	}

	if config.TokenTTL != 24*time.Hour {
		t.Errorf("Load() TokenTTL = %v, want 24h", config.TokenTTL)
	}

	if config.SignFreshnessEnabled {
		t.Errorf("Load() SignFreshnessEnabled should default to false")
	}

	if config.SignFreshnessTolerance != 10*time.Second {
		t.Errorf("Load() SignFreshnessTolerance = %v, want 10s", config.SignFreshnessTolerance)
	}

	if config.MailPurgeSchedule != "@every 1h" {
		t.Errorf("Load() MailPurgeSchedule = %v, want @every 1h", config.MailPurgeSchedule)
	}

	if config.MaxBodyBytes != 1<<20 {
		t.Errorf("Load() MaxBodyBytes = %v, want %v", config.MaxBodyBytes, 1<<20)
	}
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("REDIS_ADDRESS", "redis:6379")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("SIGN_FRESHNESS_ENABLED", "true")
	t.Setenv("SIGN_FRESHNESS_TOLERANCE", "30")
	t.Setenv("MAX_BODY_BYTES", "2048")

	config := Load()

	if config.Port != "9090" {
		t.Errorf("Port = %v, want 9090", config.Port)
	}
	if !config.IsPostgres() {
		t.Errorf("IsPostgres() = false, want true")
	}
	if config.RedisAddress != "redis:6379" {
		t.Errorf("RedisAddress = %v, want redis:6379", config.RedisAddress)
	}
	if config.RateLimitEnabled {
		t.Errorf("RateLimitEnabled = true, want false")
	}
	if config.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL = %v, want 2h", config.TokenTTL)
	}
	if !config.SignFreshnessEnabled {
		t.Errorf("SignFreshnessEnabled = false, want true")
	}
	if config.SignFreshnessTolerance != 30*time.Second {
		t.Errorf("SignFreshnessTolerance = %v, want 30s", config.SignFreshnessTolerance)
	}
	if config.MaxBodyBytes != 2048 {
		t.Errorf("MaxBodyBytes = %v, want 2048", config.MaxBodyBytes)
	}
}

func validConfig() *Config {
	c := &Config{
		Port:                   "8080",
		DatabaseType:           "sqlite",
		DatabasePath:           "./test.db",
		RedisDB:                "0",
		RedisPoolSize:          "10",
		RateLimitEnabled:       true,
		RateLimitDefault:       "100",
		RateLimitWindow:        "60s",
		JWTSecret:              "this-is-a-very-long-secret-key-for-testing-purposes",
		TokenTTL:               time.Hour,
		SignFreshnessTolerance: 10 * time.Second,
		MaxBodyBytes:           1024,
		Timezone:               "UTC",
		MailPurgeSchedule:      "@every 1h",
	}
	return c
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"short jwt secret", func(c *Config) { c.JWTSecret = "short" }, true},
		{"bad port", func(c *Config) { c.Port = "70000" }, true},
		{"bad database type", func(c *Config) { c.DatabaseType = "mysql" }, true},
		{"postgres without host", func(c *Config) {
			c.DatabaseType = "postgres"
			c.PostgresDB = "db"
			c.PostgresUser = "u"
			c.PostgresPort = "5432"
		}, true},
		{"postgres complete", func(c *Config) {
			c.DatabaseType = "postgres"
			c.PostgresHost = "localhost"
			c.PostgresDB = "db"
			c.PostgresUser = "u"
			c.PostgresPort = "5432"
		}, false},
		{"bad redis db", func(c *Config) { c.RedisAddress = "localhost:6379"; c.RedisDB = "16" }, true},
		{"bad rate limit window", func(c *Config) { c.RateLimitWindow = "soon" }, true},
		{"rate limit disabled ignores window", func(c *Config) { c.RateLimitEnabled = false; c.RateLimitWindow = "soon" }, false},
		{"zero token ttl", func(c *Config) { c.TokenTTL = 0 }, true},
		{"sub-second tolerance", func(c *Config) { c.SignFreshnessTolerance = time.Millisecond }, true},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, true},
		{"bad purge schedule", func(c *Config) { c.MailPurgeSchedule = "whenever" }, true},
		{"zero body size", func(c *Config) { c.MaxBodyBytes = 0 }, true},
		{"zero rate limit window", func(c *Config) { c.RateLimitWindow = "0s" }, true},
		{"day rate limit window", func(c *Config) { c.RateLimitWindow = "1d" }, false},
		{"trusted proxies", func(c *Config) { c.TrustedProxies = "10.0.0.0/8, 127.0.0.1" }, false},
		{"bad trusted proxy", func(c *Config) { c.TrustedProxies = "10.0.0.0/99" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
