// Package rbac is the permission gate in front of every RPC function. Role
// permissions are loaded from storage into a casbin enforcer.
package rbac

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"game-admin/internal/auth"
	"game-admin/internal/common/errors"
	"game-admin/internal/common/logging"
	"game-admin/internal/common/response"
	"game-admin/internal/storage"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// RoleSource provides the role definitions
type RoleSource interface {
	ListRoles(ctx context.Context) ([]*storage.Role, error)
}

type Gate struct {
	roles    RoleSource
	enforcer atomic.Pointer[casbin.SyncedEnforcer]
	logger   logging.Logger
}

// NewGate builds the gate and loads the current roles
func NewGate(ctx context.Context, roles RoleSource) (*Gate, error) {
	g := &Gate{
		roles:  roles,
		logger: logging.GetGlobalLogger().WithFields(logging.String("component", "rbac")),
	}
	if err := g.Reload(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

func roleSubject(name string) string {
	return "role:" + name
}

// Reload rebuilds the policy from storage. Call it after any role mutation.
// Requests in flight keep using the previous policy until the swap.
func (g *Gate) Reload(ctx context.Context) error {
	roles, err := g.roles.ListRoles(ctx)
	if err != nil {
		return err
	}

	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return errors.InternalError("invalid permission model", err)
	}
	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return errors.InternalError("failed to create enforcer", err)
	}

	var rules [][]string
	for _, role := range roles {
		for _, perm := range role.Permissions {
			resource, action := Split(perm)
			rules = append(rules, []string{roleSubject(role.Name), resource, action})
		}
	}
	if len(rules) > 0 {
		if _, err := e.AddPolicies(rules); err != nil {
			return errors.InternalError("failed to load role policies", err)
		}
	}

	g.enforcer.Store(e)
	g.logger.Debug("Permission policy loaded",
		logging.Int("roles", len(roles)),
		logging.Int("rules", len(rules)),
	)
	return nil
}

// Can reports whether any of the session's roles grants perm
func (g *Gate) Can(session *auth.Session, perm string) bool {
	if session == nil {
		return false
	}

	e := g.enforcer.Load()
	resource, action := Split(perm)
	for _, role := range session.Roles {
		ok, err := e.Enforce(roleSubject(role), resource, action)
		if err != nil {
			g.logger.Error("Permission check failed", err, logging.String("permission", perm))
			return false
		}
		if ok {
			return true
		}
	}
	return false
}

// RequirePermission lets a request through only when the session holds all
// of perms. It must run after auth.RequireToken.
func (g *Gate) RequirePermission(perms ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := auth.SessionFrom(r.Context())
			if !ok {
				response.Error(w, r, errors.AuthError("login required").WithReason("invalid_token"))
				return
			}

			for _, perm := range perms {
				if !g.Can(session, perm) {
					logging.WithContext(r.Context()).Warn("Permission denied",
						logging.String("username", session.Username),
						logging.String("permission", perm),
					)
					response.Error(w, r, errors.ForbiddenError("permission denied").WithContext("permission", perm))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
