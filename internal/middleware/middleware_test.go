package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-admin/internal/common/response"
	"game-admin/internal/signature"
)

func signedRouter(t *testing.T, cfg SignedConfig) (*mux.Router, *signature.Request) {
	t.Helper()
	var seen signature.Request

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := RequestFrom(r.Context())
		require.True(t, ok)
		seen = req
		response.OK(w, nil)
	})

	router := mux.NewRouter()
	router.Handle("/rpc/{function}", Chain(final, RequestID, LoggingMiddleware, Signed(cfg))).Methods(http.MethodPost)
	return router, &seen
}

func post(router http.Handler, function, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rpc/"+function, strings.NewReader(body))
	router.ServeHTTP(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func signedBody(t *testing.T, req signature.Request) string {
	t.Helper()
	data, err := json.Marshal(signature.SignRequest(req))
	require.NoError(t, err)
	return string(data)
}

func TestSigned_Verdicts(t *testing.T) {
	router, _ := signedRouter(t, SignedConfig{LoginFunctions: []string{"login"}})

	tests := []struct {
		name     string
		function string
		body     string
		status   int
		code     int
		reason   string
	}{
		{"missing payload", "me", "", http.StatusBadRequest, 4001, "missing_payload"},
		{"null payload", "me", "null", http.StatusBadRequest, 4001, "missing_payload"},
		{"missing token", "me", `{"sign":"x"}`, http.StatusBadRequest, 4001, "missing_token"},
		{"bad signature", "me", `{"token":"t","sign":"wrong"}`, http.StatusBadRequest, 4001, "invalid_signature"},
		{"nested payload", "me", `{"token":"t","a":{"b":1}}`, http.StatusBadRequest, 4001, "invalid_payload"},
		{"broken json", "me", `{"token":`, http.StatusBadRequest, 4001, "invalid_payload"},
		{"login without token", "login", signedBody(t, signature.Request{"username": "u", "password": "p"}), http.StatusOK, 0, ""},
		{"signed call", "me", signedBody(t, signature.Request{"token": "t"}), http.StatusOK, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(router, tt.function, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			env := envelope(t, rec)
			assert.Equal(t, tt.code, env.Code)
			assert.Equal(t, tt.reason, env.Reason)
		})
	}
}

func TestSigned_StoresRequest(t *testing.T) {
	router, seen := signedRouter(t, SignedConfig{})

	rec := post(router, "getLeaderboard", signedBody(t, signature.Request{"token": "t", "appId": "a1", "page": 2}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a1", (*seen)["appId"])
	assert.Equal(t, json.Number("2"), (*seen)["page"])
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestSigned_BodyLimit(t *testing.T) {
	router, _ := signedRouter(t, SignedConfig{MaxBodyBytes: 16})

	rec := post(router, "me", signedBody(t, signature.Request{"token": strings.Repeat("x", 64)}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "payload_too_large", envelope(t, rec).Reason)
}

func TestSigned_Freshness(t *testing.T) {
	auth := signature.NewAuthenticator(&signature.Config{FreshnessEnabled: true})
	router, _ := signedRouter(t, SignedConfig{Authenticator: auth})

	rec := post(router, "me", signedBody(t, signature.Request{"token": "t", "timestamp": 1}))
	assert.Equal(t, "invalid_timestamp", envelope(t, rec).Reason)
}

func TestRequestID(t *testing.T) {
	var got string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestIDFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", got)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, got, 36)
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }),
		mw("outer"), mw("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestRedactParams(t *testing.T) {
	got := RedactParams(signature.Request{"username": "u", "password": "p", "token": "t", "newPassword": "x"})
	assert.Equal(t, "u", got["username"])
	assert.Equal(t, "[REDACTED]", got["password"])
	assert.Equal(t, "[REDACTED]", got["token"])
	assert.Equal(t, "[REDACTED]", got["newPassword"])
	assert.Nil(t, RedactParams(nil))
}
