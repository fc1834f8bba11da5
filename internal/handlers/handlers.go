// Package handlers implements the RPC functions served under /rpc/{function}.
//
// Every function receives the flat signed request stored in the context by
// middleware.Signed, binds it onto a parameter struct and answers with the
// response envelope. The function table records the permission each one
// needs; Dispatch applies the permission gate before calling it.
package handlers

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"

	"game-admin/internal/auth"
	"game-admin/internal/common/errors"
	"game-admin/internal/common/response"
	"game-admin/internal/common/validation"
	"game-admin/internal/config"
	"game-admin/internal/leaderboard"
	"game-admin/internal/mail"
	"game-admin/internal/middleware"
	"game-admin/internal/rbac"
	"game-admin/internal/signature"
	"game-admin/internal/storage"
)

// HealthChecker is implemented by optional dependencies such as Redis
type HealthChecker interface {
	Health() error
}

// Deps are the services the handlers call
type Deps struct {
	Storage     storage.Storage
	Auth        *auth.Auth
	Gate        *rbac.Gate
	Leaderboard *leaderboard.Service
	Mail        *mail.Service
	Redis       HealthChecker // nil when Redis is not configured
	Config      *config.Config
}

type Handlers struct {
	storage     storage.Storage
	auth        *auth.Auth
	gate        *rbac.Gate
	leaderboard *leaderboard.Service
	mail        *mail.Service
	redis       HealthChecker
	config      *config.Config

	functions map[string]Function
	dispatch  map[string]http.Handler
}

// Function describes one RPC function
type Function struct {
	Name string
	// Login functions run without a session token
	Login bool
	// Permissions all have to be granted; none means any signed-in user
	Permissions []string
	Handler     http.HandlerFunc
}

func New(deps Deps) *Handlers {
	h := &Handlers{
		storage:     deps.Storage,
		auth:        deps.Auth,
		gate:        deps.Gate,
		leaderboard: deps.Leaderboard,
		mail:        deps.Mail,
		redis:       deps.Redis,
		config:      deps.Config,
	}

	h.functions = make(map[string]Function)
	h.dispatch = make(map[string]http.Handler)
	for _, fn := range h.table() {
		h.functions[fn.Name] = fn

		var handler http.Handler = fn.Handler
		if len(fn.Permissions) > 0 {
			handler = h.gate.RequirePermission(fn.Permissions...)(handler)
		}
		h.dispatch[fn.Name] = handler
	}
	return h
}

func (h *Handlers) table() []Function {
	return []Function{
		{Name: "login", Login: true, Handler: h.Login},
		{Name: "logout", Handler: h.Logout},
		{Name: "me", Handler: h.Me},

		{Name: "getUserList", Permissions: []string{rbac.UsersRead}, Handler: h.GetUserList},
		{Name: "addUser", Permissions: []string{rbac.UsersWrite}, Handler: h.AddUser},
		{Name: "updateUser", Permissions: []string{rbac.UsersWrite}, Handler: h.UpdateUser},
		{Name: "deleteUser", Permissions: []string{rbac.UsersWrite}, Handler: h.DeleteUser},

		{Name: "getRoleList", Permissions: []string{rbac.RolesRead}, Handler: h.GetRoleList},
		{Name: "getPermissionList", Permissions: []string{rbac.RolesRead}, Handler: h.GetPermissionList},
		{Name: "addRole", Permissions: []string{rbac.RolesWrite}, Handler: h.AddRole},
		{Name: "updateRole", Permissions: []string{rbac.RolesWrite}, Handler: h.UpdateRole},
		{Name: "deleteRole", Permissions: []string{rbac.RolesWrite}, Handler: h.DeleteRole},

		{Name: "getAppConfig", Permissions: []string{rbac.ConfigsRead}, Handler: h.GetAppConfig},
		{Name: "setAppConfig", Permissions: []string{rbac.ConfigsWrite}, Handler: h.SetAppConfig},
		{Name: "deleteAppConfig", Permissions: []string{rbac.ConfigsWrite}, Handler: h.DeleteAppConfig},

		{Name: "sendMail", Permissions: []string{rbac.MailWrite}, Handler: h.SendMail},
		{Name: "getMailList", Permissions: []string{rbac.MailRead}, Handler: h.GetMailList},
		{Name: "readMail", Permissions: []string{rbac.MailWrite}, Handler: h.ReadMail},
		{Name: "deleteMail", Permissions: []string{rbac.MailWrite}, Handler: h.DeleteMail},

		{Name: "submitScore", Permissions: []string{rbac.ScoresWrite}, Handler: h.SubmitScore},
		{Name: "getLeaderboard", Permissions: []string{rbac.ScoresRead}, Handler: h.GetLeaderboard},
		{Name: "getPlayerRank", Permissions: []string{rbac.ScoresRead}, Handler: h.GetPlayerRank},
		{Name: "resetLeaderboard", Permissions: []string{rbac.ScoresWrite}, Handler: h.ResetLeaderboard},
	}
}

// Functions lists the RPC functions sorted by name
func (h *Handlers) Functions() []Function {
	out := make([]Function, 0, len(h.functions))
	for _, fn := range h.functions {
		out = append(out, fn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LoginFunctions names the functions callable without a token
func (h *Handlers) LoginFunctions() []string {
	var names []string
	for _, fn := range h.Functions() {
		if fn.Login {
			names = append(names, fn.Name)
		}
	}
	return names
}

// KnownFunction answers 4004 for a {function} route variable that names no
// RPC function, before the body is read
func (h *Handlers) KnownFunction(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["function"]
		if _, ok := h.functions[name]; !ok {
			response.Error(w, r, errors.NotFoundError("function "+name).WithReason("unknown_function"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Dispatch calls the function recorded by middleware.Signed behind its
// permission gate
func (h *Handlers) Dispatch() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := h.dispatch[middleware.FunctionFrom(r.Context())]
		if !ok {
			response.Error(w, r, errors.NotFoundError("function").WithReason("unknown_function"))
			return
		}
		handler.ServeHTTP(w, r)
	})
}

// bind decodes the signed request of r into params
func bind(r *http.Request, params interface{}) (signature.Request, error) {
	req, ok := middleware.RequestFrom(r.Context())
	if !ok {
		return nil, errors.InternalError("handler called without a signed request", nil)
	}
	if params == nil {
		return req, nil
	}
	if err := validation.Bind(req, params); err != nil {
		return nil, err
	}
	return req, nil
}

func session(r *http.Request) (*auth.Session, error) {
	s, ok := auth.SessionFrom(r.Context())
	if !ok {
		return nil, errors.AuthError("login required").WithReason("invalid_token")
	}
	return s, nil
}
