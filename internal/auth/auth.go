// Package auth issues and verifies administrator session tokens. Tokens are
// HS256 JWTs; logout revokes a token by its jti until it would have expired.
// Every verification reloads the user, so a deleted user or a changed
// password ends the session and role changes apply to the next call.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"game-admin/internal/common/errors"
	"game-admin/internal/common/logging"
	"game-admin/internal/config"
	"game-admin/internal/storage"
)

const issuer = "game-admin"

// UserStore is the part of storage used to authenticate users
type UserStore interface {
	GetUser(ctx context.Context, id string) (*storage.User, error)
	GetUserByUsername(ctx context.Context, username string) (*storage.User, error)
}

// Claims are the JWT claims carried by a session token
type Claims struct {
	Username      string   `json:"username"`
	Roles         []string `json:"roles"`
	PasswordStamp string   `json:"pst"`
	jwt.RegisteredClaims
}

// Session is the verified identity behind a token
type Session struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Auth struct {
	users   UserStore
	secret  []byte
	ttl     time.Duration
	revoked Revocations
	now     func() time.Time
	logger  logging.Logger
}

// New creates the token service. revoked may be nil, in which case
// revocations are kept in process memory.
func New(users UserStore, cfg *config.Config, revoked Revocations) (*Auth, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.ConfigError("JWT secret is required")
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if revoked == nil {
		revoked = NewMemoryRevocations()
	}

	return &Auth{
		users:   users,
		secret:  []byte(cfg.JWTSecret),
		ttl:     ttl,
		revoked: revoked,
		now:     time.Now,
		logger:  logging.GetGlobalLogger().WithFields(logging.String("component", "auth")),
	}, nil
}

// Login checks the password and issues a token
func (a *Auth) Login(ctx context.Context, username, password string) (string, *Session, error) {
	user, err := a.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.IsType(err, errors.ErrTypeNotFound) {
			// same cost as a real comparison so usernames cannot be probed by timing
			CheckPassword(dummyHash, password)
			return "", nil, errors.AuthError("invalid username or password").WithReason("invalid_credentials")
		}
		return "", nil, err
	}

	if !CheckPassword(user.PasswordHash, password) {
		a.logger.Warn("Failed login attempt", logging.String("username", username))
		return "", nil, errors.AuthError("invalid username or password").WithReason("invalid_credentials")
	}

	token, session, err := a.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}

	a.logger.Info("User logged in", logging.String("username", username))
	return token, session, nil
}

// GenerateToken issues a token for user
func (a *Auth) GenerateToken(user *storage.User) (string, *Session, error) {
	now := a.now()
	claims := &Claims{
		Username:      user.Username,
		Roles:         user.Roles,
		PasswordStamp: a.passwordStamp(user.PasswordHash),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", nil, errors.InternalError("failed to sign token", err)
	}
	return token, sessionFromClaims(claims), nil
}

// Verify parses the token, checks signature, expiry and revocation, then
// reloads the user so the session carries the current roles
func (a *Auth) Verify(ctx context.Context, token string) (*Session, error) {
	claims, err := a.parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := a.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, errors.ConnectionError("failed to check token revocation", err)
	}
	if revoked {
		return nil, errors.AuthError("token has been revoked").WithReason("invalid_token")
	}

	user, err := a.users.GetUser(ctx, claims.Subject)
	if err != nil {
		if errors.IsType(err, errors.ErrTypeNotFound) {
			return nil, errors.AuthError("user no longer exists").WithReason("invalid_token")
		}
		return nil, err
	}
	if !hmac.Equal([]byte(claims.PasswordStamp), []byte(a.passwordStamp(user.PasswordHash))) {
		return nil, errors.AuthError("password changed since login").WithReason("invalid_token")
	}

	session := sessionFromClaims(claims)
	session.Username = user.Username
	session.Roles = user.Roles
	return session, nil
}

// passwordStamp binds a token to the password hash it was issued under
// without exposing the hash
func (a *Auth) passwordStamp(hash string) string {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write([]byte(hash))
	return hex.EncodeToString(mac.Sum(nil)[:8])
}

// Logout revokes the token for the rest of its lifetime
func (a *Auth) Logout(ctx context.Context, token string) error {
	claims, err := a.parse(token)
	if err != nil {
		return err
	}

	remaining := claims.ExpiresAt.Time.Sub(a.now())
	if remaining <= 0 {
		return nil
	}
	if err := a.revoked.Revoke(ctx, claims.ID, remaining); err != nil {
		return errors.ConnectionError("failed to revoke token", err)
	}

	a.logger.Info("User logged out", logging.String("username", claims.Username))
	return nil
}

func (a *Auth) parse(token string) (*Claims, error) {
	if token == "" {
		return nil, errors.AuthError("token is required").WithReason("invalid_token")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !parsed.Valid {
		return nil, errors.AuthError("invalid or expired token").WithReason("invalid_token")
	}
	return claims, nil
}

func sessionFromClaims(c *Claims) *Session {
	return &Session{
		UserID:    c.Subject,
		Username:  c.Username,
		Roles:     c.Roles,
		TokenID:   c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}
}
