package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"game-admin/internal/auth"
	"game-admin/internal/common/errors"
	"game-admin/internal/common/response"
	"game-admin/internal/config"
	"game-admin/internal/middleware"
	"game-admin/internal/redis"
	"game-admin/internal/signature"
	"game-admin/internal/storage"
)

const testSecret = "test-secret-key-that-is-long-enough"

// MockUserStore is a mock implementation of auth.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetUser(ctx context.Context, id string) (*storage.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.User), args.Error(1)
}

func (m *MockUserStore) GetUserByUsername(ctx context.Context, username string) (*storage.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.User), args.Error(1)
}

func createTestUser(t *testing.T, password string) *storage.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &storage.User{ID: "user-1", Username: "alice", PasswordHash: hash, Roles: []string{"admin"}}
}

func setupAuthTest(t *testing.T, revoked auth.Revocations) (*auth.Auth, *MockUserStore) {
	t.Helper()
	users := new(MockUserStore)
	a, err := auth.New(users, &config.Config{JWTSecret: testSecret, TokenTTL: time.Hour}, revoked)
	require.NoError(t, err)
	return a, users
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := auth.New(new(MockUserStore), &config.Config{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeConfig))
}

func TestLogin(t *testing.T) {
	a, users := setupAuthTest(t, nil)
	user := createTestUser(t, "correct-horse")
	users.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil)
	users.On("GetUserByUsername", mock.Anything, "nobody").Return(nil, errors.NotFoundError("user"))

	t.Run("valid credentials", func(t *testing.T) {
		token, session, err := a.Login(context.Background(), "alice", "correct-horse")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, []string{"admin"}, session.Roles)
		assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)

		claims := &auth.Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "game-admin", claims.Issuer)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := a.Login(context.Background(), "alice", "wrong")
		require.Error(t, err)
		assert.Equal(t, errors.CodeUnauthorized, errors.APICode(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := a.Login(context.Background(), "nobody", "whatever")
		require.Error(t, err)
		assert.Equal(t, errors.CodeUnauthorized, errors.APICode(err))
	})

	users.AssertExpectations(t)
}

func TestVerify(t *testing.T) {
	a, users := setupAuthTest(t, nil)
	user := &storage.User{ID: "u1", Username: "bob"}
	users.On("GetUser", mock.Anything, "u1").Return(user, nil)
	token, _, err := a.GenerateToken(user)
	require.NoError(t, err)

	session, err := a.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "bob", session.Username)

	other, err := auth.New(new(MockUserStore), &config.Config{JWTSecret: "different-secret-key-that-is-wrong!!"}, nil)
	require.NoError(t, err)
	foreign, _, err := other.GenerateToken(&storage.User{ID: "u1"})
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "x",
			Issuer:    "game-admin",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	expiredToken, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.Claims{}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, bad := range map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"wrong secret":   foreign,
		"expired":        expiredToken,
		"none algorithm": noneToken,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := a.Verify(context.Background(), bad)
			require.Error(t, err)
			assert.Equal(t, errors.CodeUnauthorized, errors.APICode(err))
		})
	}
}

func TestVerify_ReloadsUser(t *testing.T) {
	ctx := context.Background()

	t.Run("roles come from storage", func(t *testing.T) {
		a, users := setupAuthTest(t, nil)
		user := createTestUser(t, "correct-horse")
		token, _, err := a.GenerateToken(user)
		require.NoError(t, err)

		demoted := *user
		demoted.Roles = []string{"viewer"}
		users.On("GetUser", mock.Anything, "user-1").Return(&demoted, nil)

		session, err := a.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, []string{"viewer"}, session.Roles)
	})

	t.Run("deleted user", func(t *testing.T) {
		a, users := setupAuthTest(t, nil)
		token, _, err := a.GenerateToken(createTestUser(t, "correct-horse"))
		require.NoError(t, err)
		users.On("GetUser", mock.Anything, "user-1").Return(nil, errors.NotFoundError("user"))

		_, err = a.Verify(ctx, token)
		require.Error(t, err)
		assert.Equal(t, errors.CodeUnauthorized, errors.APICode(err))
		assert.Equal(t, "invalid_token", errors.Reason(err))
	})

	t.Run("password changed", func(t *testing.T) {
		a, users := setupAuthTest(t, nil)
		token, _, err := a.GenerateToken(createTestUser(t, "correct-horse"))
		require.NoError(t, err)
		users.On("GetUser", mock.Anything, "user-1").Return(createTestUser(t, "new-password-1"), nil)

		_, err = a.Verify(ctx, token)
		require.Error(t, err)
		assert.Equal(t, "invalid_token", errors.Reason(err))
	})

	t.Run("storage failure", func(t *testing.T) {
		a, users := setupAuthTest(t, nil)
		token, _, err := a.GenerateToken(createTestUser(t, "correct-horse"))
		require.NoError(t, err)
		users.On("GetUser", mock.Anything, "user-1").Return(nil, errors.ConnectionError("db down", nil))

		_, err = a.Verify(ctx, token)
		require.Error(t, err)
		assert.NotEqual(t, errors.CodeUnauthorized, errors.APICode(err))
	})
}

func TestLogout_RevokesToken(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := redis.NewClient(&redis.Config{Address: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	backends := map[string]auth.Revocations{
		"memory": auth.NewMemoryRevocations(),
		"redis":  auth.NewRedisRevocations(client),
	}

	for name, revoked := range backends {
		t.Run(name, func(t *testing.T) {
			a, users := setupAuthTest(t, revoked)
			user := &storage.User{ID: "u1", Username: "bob"}
			users.On("GetUser", mock.Anything, "u1").Return(user, nil)
			token, session, err := a.GenerateToken(user)
			require.NoError(t, err)

			_, err = a.Verify(context.Background(), token)
			require.NoError(t, err)

			require.NoError(t, a.Logout(context.Background(), token))

			_, err = a.Verify(context.Background(), token)
			require.Error(t, err)
			assert.Equal(t, "invalid_token", errors.Reason(err))

			if name == "redis" {
				assert.True(t, mr.Exists("revoked:"+session.TokenID))
				ttl := mr.TTL("revoked:" + session.TokenID)
				assert.True(t, ttl > 0 && ttl <= time.Hour)
			}
		})
	}
}

func TestMemoryRevocations_Expire(t *testing.T) {
	m := auth.NewMemoryRevocations()
	ctx := context.Background()

	require.NoError(t, m.Revoke(ctx, "a", time.Millisecond))
	require.NoError(t, m.Revoke(ctx, "b", time.Hour))
	time.Sleep(5 * time.Millisecond)

	revoked, err := m.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = m.IsRevoked(ctx, "b")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestPasswords(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(hash, "s3cret-pass"))
	assert.False(t, auth.CheckPassword(hash, "other"))

	assert.NoError(t, auth.ValidatePassword("long-enough"))
	assert.Error(t, auth.ValidatePassword("short"))
	assert.Error(t, auth.ValidatePassword(strings.Repeat("x", 73)))
}

func TestRequireToken(t *testing.T) {
	a, users := setupAuthTest(t, nil)
	user := &storage.User{ID: "u1", Username: "bob", Roles: []string{"viewer"}}
	users.On("GetUser", mock.Anything, "u1").Return(user, nil)
	token, _, err := a.GenerateToken(user)
	require.NoError(t, err)

	var seen *auth.Session
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.SessionFrom(r.Context())
		response.OK(w, nil)
	})

	router := mux.NewRouter()
	router.Handle("/rpc/{function}", middleware.Chain(final,
		middleware.Signed(middleware.SignedConfig{LoginFunctions: []string{"login"}}),
		a.RequireToken("login"),
	))

	call := func(function string, req signature.Request) (*httptest.ResponseRecorder, response.Envelope) {
		body, _ := json.Marshal(signature.SignRequest(req))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rpc/"+function, strings.NewReader(string(body))))
		var env response.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		return rec, env
	}

	rec, _ := call("me", signature.Request{"token": token})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "bob", seen.Username)

	seen = nil
	rec, env := call("me", signature.Request{"token": "forged"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, errors.CodeUnauthorized, env.Code)
	assert.Nil(t, seen)

	rec, _ = call("login", signature.Request{"username": "bob"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)
}
