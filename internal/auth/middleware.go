package auth

import (
	"context"
	"net/http"

	"game-admin/internal/common/errors"
	"game-admin/internal/common/response"
	"game-admin/internal/middleware"
	"game-admin/internal/signature"
)

type sessionKey struct{}

// SessionFrom returns the session stored by RequireToken
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok
}

// WithSession stores s in ctx
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// TokenFrom extracts the token field of a signed request
func TokenFrom(req signature.Request) string {
	token, _ := req[signature.FieldToken].(string)
	return token
}

// RequireToken verifies the token of the signed request and stores the
// session in the context. It must run after middleware.Signed. Functions
// listed in skip pass through without a session.
func (a *Auth) RequireToken(skip ...string) func(http.Handler) http.Handler {
	skipped := make(map[string]bool, len(skip))
	for _, fn := range skip {
		skipped[fn] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req, ok := middleware.RequestFrom(r.Context())
			if !ok {
				response.Error(w, r, errors.InternalError("token check without a signed request", nil))
				return
			}

			if skipped[functionOf(r)] {
				next.ServeHTTP(w, r)
				return
			}

			session, err := a.Verify(r.Context(), TokenFrom(req))
			if err != nil {
				response.Error(w, r, err)
				return
			}

			ctx := WithSession(r.Context(), session)
			ctx = middleware.WithUserID(ctx, session.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func functionOf(r *http.Request) string {
	return middleware.FunctionFrom(r.Context())
}
