package middleware

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"game-admin/internal/common/errors"
	"game-admin/internal/common/logging"
	"game-admin/internal/common/response"
	"game-admin/internal/signature"
)

// DefaultMaxBodyBytes bounds RPC bodies when no limit is configured
const DefaultMaxBodyBytes = 1 << 20

// SignedConfig configures the Signed middleware
type SignedConfig struct {
	Authenticator *signature.Authenticator
	// LoginFunctions are called without a session token
	LoginFunctions []string
	MaxBodyBytes   int64
}

// Signed decodes the JSON body into a flat signature.Request, validates it
// and stores it in the context. The RPC function name comes from the
// {function} route variable. Failures are answered with a 4001 envelope
// whose reason names the verdict.
func Signed(cfg SignedConfig) func(http.Handler) http.Handler {
	auth := cfg.Authenticator
	if auth == nil {
		auth = signature.NewAuthenticator(nil)
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	login := make(map[string]bool, len(cfg.LoginFunctions))
	for _, fn := range cfg.LoginFunctions {
		login[fn] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			function := mux.Vars(r)["function"]
			ctx := WithFunction(r.Context(), function)
			r = r.WithContext(ctx)

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
			if err != nil {
				response.Error(w, r, errors.ParamError("payload_too_large"))
				return
			}

			req, err := signature.ParseRequest(body)
			if err != nil {
				logging.WithContext(ctx).Debug("Rejected malformed payload", logging.Err(err))
				response.Error(w, r, errors.ParamError("invalid_payload"))
				return
			}

			if verdict := auth.ValidateRequest(req, login[function]); !verdict.OK() {
				logging.WithContext(ctx).Info("Request failed signature validation",
					logging.String("reason", verdict.Reason()),
					logging.Any("params", RedactParams(req)),
				)
				response.Error(w, r, verdict.Err())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRequest(ctx, req)))
		})
	}
}
