// Package testutil holds test doubles and fixtures shared across packages
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"game-admin/internal/auth"
	"game-admin/internal/storage"
	"game-admin/internal/storage/sqlstore"
)

// NewSQLiteStore opens a migrated SQLite store in a temp dir, closed when
// the test ends
func NewSQLiteStore(t testing.TB) *sqlstore.Adapter {
	t.Helper()
	store, err := sqlstore.Open(sqlstore.SQLiteConfig(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// SeedRole creates a role with the given permissions
func SeedRole(t testing.TB, store storage.Storage, name string, perms ...string) *storage.Role {
	t.Helper()
	now := time.Now()
	role := &storage.Role{Name: name, Permissions: perms, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.CreateRole(context.Background(), role))
	return role
}

// SeedUser creates a user with a bcrypt hash of password
func SeedUser(t testing.TB, store storage.Storage, id, username, password string, roles ...string) *storage.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	user := &storage.User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}
