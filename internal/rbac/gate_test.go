package rbac

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-admin/internal/auth"
	"game-admin/internal/storage"
)

type staticRoles struct {
	roles []*storage.Role
}

func (s *staticRoles) ListRoles(context.Context) ([]*storage.Role, error) {
	return s.roles, nil
}

func newTestGate(t *testing.T) (*Gate, *staticRoles) {
	t.Helper()
	src := &staticRoles{roles: []*storage.Role{
		{Name: "admin", Permissions: []string{Wildcard}},
		{Name: "viewer", Permissions: []string{UsersRead, ScoresRead}},
		{Name: "mailer", Permissions: []string{"mail:*"}},
		{Name: "empty"},
	}}
	g, err := NewGate(context.Background(), src)
	require.NoError(t, err)
	return g, src
}

func TestGate_Can(t *testing.T) {
	g, _ := newTestGate(t)

	admin := &auth.Session{Roles: []string{"admin"}}
	viewer := &auth.Session{Roles: []string{"viewer"}}
	mailer := &auth.Session{Roles: []string{"mailer"}}
	both := &auth.Session{Roles: []string{"empty", "viewer"}}

	for _, p := range Catalog {
		assert.True(t, g.Can(admin, p.Name), p.Name)
	}

	assert.True(t, g.Can(viewer, ScoresRead))
	assert.False(t, g.Can(viewer, ScoresWrite))
	assert.False(t, g.Can(viewer, UsersWrite))

	assert.True(t, g.Can(mailer, MailRead))
	assert.True(t, g.Can(mailer, MailWrite))
	assert.False(t, g.Can(mailer, ScoresRead))

	assert.True(t, g.Can(both, UsersRead))
	assert.False(t, g.Can(&auth.Session{Roles: []string{"ghost"}}, UsersRead))
	assert.False(t, g.Can(nil, UsersRead))
}

func TestGate_Reload(t *testing.T) {
	g, src := newTestGate(t)
	viewer := &auth.Session{Roles: []string{"viewer"}}
	assert.False(t, g.Can(viewer, ScoresWrite))

	src.roles[1].Permissions = append(src.roles[1].Permissions, ScoresWrite)
	require.NoError(t, g.Reload(context.Background()))
	assert.True(t, g.Can(viewer, ScoresWrite))

	src.roles = nil
	require.NoError(t, g.Reload(context.Background()))
	assert.False(t, g.Can(&auth.Session{Roles: []string{"admin"}}, UsersRead))
}

func TestGate_RequirePermission(t *testing.T) {
	g, _ := newTestGate(t)
	h := g.RequirePermission(ScoresWrite)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(s *auth.Session) int {
		req := httptest.NewRequest(http.MethodPost, "/rpc/submitScore", nil)
		if s != nil {
			req = req.WithContext(auth.WithSession(req.Context(), s))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, call(&auth.Session{Roles: []string{"admin"}}))
	assert.Equal(t, http.StatusForbidden, call(&auth.Session{Roles: []string{"viewer"}}))
	assert.Equal(t, http.StatusUnauthorized, call(nil))
}

func TestValidatePermissions(t *testing.T) {
	assert.NoError(t, ValidatePermissions([]string{UsersRead, Wildcard, "mail:*"}))
	assert.Error(t, ValidatePermissions([]string{"users:delete"}))
	assert.Error(t, ValidatePermissions([]string{"planets:*"}))
}

func TestSplit(t *testing.T) {
	r, a := Split("users:read")
	assert.Equal(t, "users", r)
	assert.Equal(t, "read", a)

	r, a = Split(Wildcard)
	assert.Equal(t, Wildcard, r)
	assert.Equal(t, Wildcard, a)
}
