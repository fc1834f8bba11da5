package handlers

import (
	"net/http"
	"sort"

	"game-admin/internal/auth"
	"game-admin/internal/common/errors"
	"game-admin/internal/common/logging"
	"game-admin/internal/common/response"
	"game-admin/internal/common/timefmt"
	"game-admin/internal/rbac"
)

type LoginParams struct {
	Username string `param:"username" json:"username" validate:"required,max=64"`
	Password string `param:"password" json:"password" validate:"required,max=72"`
}

type LoginResult struct {
	Token     string   `json:"token"`
	UserID    string   `json:"userId"`
	Username  string   `json:"username"`
	Roles     []string `json:"roles"`
	ExpiresAt string   `json:"expiresAt"`
}

type MeResult struct {
	UserID      string   `json:"userId"`
	Username    string   `json:"username"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
	ExpiresAt   string   `json:"expiresAt"`
}

// Login exchanges credentials for a session token
// @Summary Log in
// @Description Checks the administrator's credentials and returns a session token. Called without a token; the request must still be signed.
// @Tags session
// @Accept json
// @Produce json
// @Param request body LoginParams true "Credentials plus sign, timestamp"
// @Success 200 {object} response.Envelope{data=LoginResult}
// @Failure 400 {object} response.Envelope "4001 param error"
// @Failure 401 {object} response.Envelope "4010 invalid_credentials"
// @Router /rpc/login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var p LoginParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	token, s, err := h.auth.Login(r.Context(), p.Username, p.Password)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, LoginResult{
		Token:     token,
		UserID:    s.UserID,
		Username:  s.Username,
		Roles:     s.Roles,
		ExpiresAt: timefmt.Format(s.ExpiresAt),
	})
}

// Logout revokes the caller's token
// @Summary Log out
// @Tags session
// @Accept json
// @Produce json
// @Param request body signedRequest true "token, sign, timestamp"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope "4010 invalid_token"
// @Router /rpc/logout [post]
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	req, err := bind(r, nil)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	if err := h.auth.Logout(r.Context(), auth.TokenFrom(req)); err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, nil)
}

// Me describes the caller's session and effective permissions
// @Summary Current session
// @Tags session
// @Accept json
// @Produce json
// @Param request body signedRequest true "token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=MeResult}
// @Failure 401 {object} response.Envelope "4010 invalid_token"
// @Router /rpc/me [post]
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	s, err := session(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	perms, err := h.permissionsOf(r, s)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, MeResult{
		UserID:      s.UserID,
		Username:    s.Username,
		Roles:       s.Roles,
		Permissions: perms,
		ExpiresAt:   timefmt.Format(s.ExpiresAt),
	})
}

// permissionsOf collects the permissions of the session's roles. Roles
// deleted since the token was issued are skipped.
func (h *Handlers) permissionsOf(r *http.Request, s *auth.Session) ([]string, error) {
	seen := make(map[string]bool)
	for _, name := range s.Roles {
		role, err := h.storage.GetRole(r.Context(), name)
		if errors.IsType(err, errors.ErrTypeNotFound) {
			logging.WithContext(r.Context()).Debug("Session refers to a deleted role", logging.String("role", name))
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, p := range role.Permissions {
			seen[p] = true
		}
	}

	if seen[rbac.Wildcard] {
		return []string{rbac.Wildcard}, nil
	}
	perms := make([]string, 0, len(seen))
	for p := range seen {
		perms = append(perms, p)
	}
	sort.Strings(perms)
	return perms, nil
}

// signedRequest documents the fields every RPC body carries
type signedRequest struct {
	Token     string `json:"token"`
	Timestamp int64  `json:"timestamp"`
	Sign      string `json:"sign"`
	Ver       string `json:"ver,omitempty"`
}
