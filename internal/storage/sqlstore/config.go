package sqlstore

import (
	"fmt"
	"net/url"
	"strconv"

	"game-admin/internal/storage"
)

// Config selects the database/sql driver and connection for the adapter
type Config struct {
	Dialect Dialect
	DSN     string
}

func (c *Config) Validate() error {
	switch c.Dialect {
	case DialectSQLite, DialectPostgres:
	default:
		return fmt.Errorf("unsupported dialect %q", c.Dialect)
	}
	if c.DSN == "" {
		return fmt.Errorf("%s connection string is required", c.Dialect)
	}
	return nil
}

func (c *Config) GetType() string {
	return string(c.Dialect)
}

func (c *Config) GetConnectionString() string {
	return c.DSN
}

// SQLiteConfig returns a config for a SQLite database file
func SQLiteConfig(path string) *Config {
	return &Config{
		Dialect: DialectSQLite,
		DSN:     fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path),
	}
}

// PostgresConfig returns a config for the pgx driver
func PostgresConfig(host string, port int, database, username, password, sslMode string) *Config {
	if port <= 0 {
		port = 5432
	}
	if sslMode == "" {
		sslMode = "prefer"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     fmt.Sprintf("%s:%d", host, port),
		Path:     "/" + database,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return &Config{Dialect: DialectPostgres, DSN: u.String()}
}

// configFrom accepts either a *Config or the generic map built by
// storage.NewStorage.
func configFrom(cfg storage.StorageConfig, dialect Dialect) (*Config, error) {
	switch c := cfg.(type) {
	case *Config:
		return c, nil
	case storage.GenericConfig:
		if dsn := c.GetConnectionString(); dsn != "" {
			return &Config{Dialect: dialect, DSN: dsn}, nil
		}
		if dialect == DialectSQLite {
			path := c.String("path")
			if path == "" {
				return nil, fmt.Errorf("database path is required")
			}
			return SQLiteConfig(path), nil
		}
		port, _ := strconv.Atoi(c.String("port"))
		if c.String("host") == "" || c.String("database") == "" || c.String("username") == "" {
			return nil, fmt.Errorf("PostgreSQL host, database and username are required")
		}
		return PostgresConfig(c.String("host"), port, c.String("database"),
			c.String("username"), c.String("password"), c.String("sslmode")), nil
	default:
		return nil, fmt.Errorf("invalid config type %T for %s storage", cfg, dialect)
	}
}
