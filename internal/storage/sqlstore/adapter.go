// Package sqlstore implements storage.Storage on database/sql. The same
// queries run on SQLite (mattn/go-sqlite3) and PostgreSQL (pgx stdlib);
// placeholders are written as ? and rebound for PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"

	apperrors "game-admin/internal/common/errors"
	"game-admin/internal/storage"
)

// Dialect names a supported SQL backend
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

func (d Dialect) driverName() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite3"
}

type Adapter struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

var _ storage.Storage = (*Adapter)(nil)

// Open connects, pings and migrates the database
func Open(config *Config) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storage config: %w", err)
	}

	db, err := sql.Open(config.Dialect.driverName(), config.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if config.Dialect == DialectSQLite {
		// a single writer avoids SQLITE_BUSY under concurrent requests
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	adapter := &Adapter{
		db:      db,
		dialect: config.Dialect,
		now:     time.Now,
	}

	if err := adapter.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return adapter, nil
}

func (a *Adapter) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *Adapter) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.db.PingContext(ctx)
}

// Dialect returns the backend in use
func (a *Adapter) Dialect() Dialect {
	return a.dialect
}

// rebind converts ? placeholders to $1..$n for PostgreSQL
func (a *Adapter) rebind(query string) string {
	if a.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (a *Adapter) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return a.db.ExecContext(ctx, a.rebind(query), args...)
}

func (a *Adapter) query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return a.db.QueryContext(ctx, a.rebind(query), args...)
}

func (a *Adapter) queryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return a.db.QueryRowContext(ctx, a.rebind(query), args...)
}

func (a *Adapter) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := a.queryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, apperrors.InternalError("count query failed", err)
	}
	return n, nil
}

// mapError converts driver errors into application errors
func mapError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return apperrors.NotFoundError(resource)
	case isUniqueViolation(err):
		return apperrors.ConflictError(resource)
	default:
		return apperrors.InternalError(fmt.Sprintf("%s query failed", resource), err)
	}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// requireAffected turns an update or delete that matched nothing into NotFound
func requireAffected(res sql.Result, err error, resource string) error {
	if err != nil {
		return mapError(err, resource)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.InternalError("failed to read affected rows", err)
	}
	if n == 0 {
		return apperrors.NotFoundError(resource)
	}
	return nil
}

// Timestamps are stored as Unix milliseconds so that ordering and range
// queries behave the same on both backends.
func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(items)
	return string(data)
}

func decodeList(raw string) []string {
	var items []string
	if raw == "" {
		return []string{}
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []string{}
	}
	return items
}
