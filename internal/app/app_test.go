package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-admin/internal/config"
	"game-admin/internal/signature"
)

type envelope struct {
	Code   int             `json:"code"`
	Reason string          `json:"reason"`
	Data   json.RawMessage `json:"data"`
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:                   "0",
		Timezone:               "UTC",
		MaxBodyBytes:           1 << 20,
		DatabaseType:           "sqlite",
		DatabasePath:           filepath.Join(t.TempDir(), "app.db"),
		RedisDB:                "0",
		RedisPoolSize:          "5",
		RateLimitEnabled:       true,
		RateLimitDefault:       "100",
		RateLimitWindow:        "1m",
		JWTSecret:              strings.Repeat("k", 32),
		TokenTTL:               time.Hour,
		AdminUsername:          "root",
		AdminPassword:          "bootstrap-pass",
		SignFreshnessTolerance: 10 * time.Second,
		MailPurgeSchedule:      "@every 1h",
	}
}

func newApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	require.NoError(t, cfg.Validate())
	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(app.Cleanup)
	return app
}

func call(t *testing.T, h http.Handler, function string, params signature.Request) (int, envelope) {
	t.Helper()
	body, err := json.Marshal(signature.SignRequest(params))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rpc/"+function, bytes.NewReader(body))
	req.RemoteAddr = "203.0.113.9:4000"
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func login(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()
	_, env := call(t, h, "login", signature.Request{"username": username, "password": password})
	require.Equal(t, 0, env.Code, env.Reason)

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	return res.Token
}

func TestNewSeedsAdmin(t *testing.T) {
	cfg := testConfig(t)
	app := newApp(t, cfg)
	router := app.SetupRoutes()

	token := login(t, router, "root", "bootstrap-pass")
	_, env := call(t, router, "getUserList", signature.Request{"token": token})
	require.Equal(t, 0, env.Code, env.Reason)

	var page struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 1, page.Total)

	// a second start on the same database keeps the existing users
	cfg.AdminPassword = "another-password"
	again := newApp(t, cfg)
	count, err := again.Storage.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	login(t, again.SetupRoutes(), "root", "bootstrap-pass")
}

func TestNewGeneratedAdminPassword(t *testing.T) {
	cfg := testConfig(t)
	cfg.AdminPassword = ""
	app := newApp(t, cfg)

	user, err := app.Storage.GetUserByUsername(context.Background(), "root")
	require.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.Equal(t, []string{"admin"}, user.Roles)
}

func TestRoutes(t *testing.T) {
	app := newApp(t, testConfig(t))
	router := app.SetupRoutes()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Contains(t, rec.Body.String(), `"redis":"disabled"`)

	status, env := call(t, router, "noSuchFunction", signature.Request{"token": "x"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "unknown_function", env.Reason)

	status, env = call(t, router, "getUserList", signature.Request{"page": 1})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "missing_token", env.Reason)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rpc/login", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimitDefault = "2"
	app := newApp(t, cfg)
	router := app.SetupRoutes()

	for i := 0; i < 2; i++ {
		_, env := call(t, router, "login", signature.Request{"username": "root", "password": "wrong-password"})
		assert.Equal(t, 4010, env.Code)
	}
	status, env := call(t, router, "login", signature.Request{"username": "root", "password": "bootstrap-pass"})
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, 4029, env.Code)
}

func TestRateLimit_ForwardedFor(t *testing.T) {
	send := func(router http.Handler, remote, forwarded string) int {
		body, err := json.Marshal(signature.SignRequest(signature.Request{"username": "root", "password": "wrong-password"}))
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/rpc/login", bytes.NewReader(body))
		req.RemoteAddr = remote
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("untrusted caller cannot rotate the header", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.RateLimitDefault = "2"
		router := newApp(t, cfg).SetupRoutes()

		assert.Equal(t, http.StatusUnauthorized, send(router, "198.51.100.7:1000", "1.1.1.1"))
		assert.Equal(t, http.StatusUnauthorized, send(router, "198.51.100.7:1000", "2.2.2.2"))
		assert.Equal(t, http.StatusTooManyRequests, send(router, "198.51.100.7:1000", "3.3.3.3"))
	})

	t.Run("trusted proxy forwards client addresses", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.RateLimitDefault = "2"
		cfg.TrustedProxies = "10.0.0.0/8"
		router := newApp(t, cfg).SetupRoutes()

		assert.Equal(t, http.StatusUnauthorized, send(router, "10.0.0.1:1000", "1.1.1.1"))
		assert.Equal(t, http.StatusUnauthorized, send(router, "10.0.0.1:1000", "1.1.1.1"))
		assert.Equal(t, http.StatusTooManyRequests, send(router, "10.0.0.1:1000", "1.1.1.1"))
		assert.Equal(t, http.StatusUnauthorized, send(router, "10.0.0.1:1000", "2.2.2.2"))
	})
}

func TestNew_InvalidTrustedProxies(t *testing.T) {
	cfg := testConfig(t)
	cfg.TrustedProxies = "not-an-address"
	_, err := New(context.Background(), cfg)
	require.Error(t, err)
}

func TestWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig(t)
	cfg.RedisAddress = mr.Addr()
	app := newApp(t, cfg)
	require.NotNil(t, app.RedisClient)
	assert.Equal(t, "distributed", app.RateLimiter.Stats()["type"])

	router := app.SetupRoutes()
	token := login(t, router, "root", "bootstrap-pass")

	_, env := call(t, router, "submitScore", signature.Request{"token": token, "appId": "g1", "playerId": "p1", "score": 42})
	require.Equal(t, 0, env.Code, env.Reason)
	members, err := mr.ZMembers("lb:g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, members)

	_, env = call(t, router, "logout", signature.Request{"token": token})
	require.Equal(t, 0, env.Code, env.Reason)
	var revoked []string
	for _, key := range mr.Keys() {
		if strings.HasPrefix(key, "revoked:") {
			revoked = append(revoked, key)
		}
	}
	assert.Len(t, revoked, 1)

	_, env = call(t, router, "me", signature.Request{"token": token})
	assert.Equal(t, 4010, env.Code)
}

func TestRedisUnavailable(t *testing.T) {
	cfg := testConfig(t)
	cfg.RedisAddress = "127.0.0.1:1"
	app := newApp(t, cfg)
	assert.Nil(t, app.RedisClient)
	assert.Nil(t, app.redisHealth())
}

func TestRunServerAndShutdown(t *testing.T) {
	app, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)

	srv, err := app.RunServer()
	require.NoError(t, err)
	require.NoError(t, app.Shutdown(srv))
}

func TestRunServerInvalidSchedule(t *testing.T) {
	cfg := testConfig(t)
	cfg.MailPurgeSchedule = "not a schedule"
	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(app.Cleanup)

	_, err = app.RunServer()
	assert.Error(t, err)
}
