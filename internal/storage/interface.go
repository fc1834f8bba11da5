package storage

import (
	"context"
	"time"
)

// Storage is the persistence surface of the service. Every method that
// misses returns an errors.NotFoundError; unique violations surface as
// errors.ConflictError.
type Storage interface {
	Close() error
	Health() error

	// Admin users
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*User, int, error) // returns users and total count
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int, error)

	// Roles
	CreateRole(ctx context.Context, role *Role) error
	GetRole(ctx context.Context, name string) (*Role, error)
	ListRoles(ctx context.Context) ([]*Role, error)
	UpdateRole(ctx context.Context, role *Role) error
	DeleteRole(ctx context.Context, name string) error

	// Per-application key/value configuration
	GetAppConfigs(ctx context.Context, appID string) ([]*AppConfig, error)
	GetAppConfig(ctx context.Context, appID, key string) (*AppConfig, error)
	SetAppConfig(ctx context.Context, cfg *AppConfig) error
	DeleteAppConfig(ctx context.Context, appID, key string) error

	// Player mail
	CreateMail(ctx context.Context, mail *Mail) error
	GetMail(ctx context.Context, id string) (*Mail, error)
	// ListMail returns unexpired mail for a player, newest first, and the total count
	ListMail(ctx context.Context, appID, playerID string, now time.Time, limit, offset int) ([]*Mail, int, error)
	MarkMailRead(ctx context.Context, id string) error
	DeleteMail(ctx context.Context, id string) error
	DeleteExpiredMail(ctx context.Context, before time.Time) (int64, error)

	// Leaderboard scores
	// UpsertScore stores score only when it beats the existing one and
	// reports whether it did.
	UpsertScore(ctx context.Context, score *Score) (bool, error)
	GetScore(ctx context.Context, appID, playerID string) (*Score, error)
	ListTopScores(ctx context.Context, appID string, limit, offset int) ([]*Score, int, error)
	// GetScoreRank returns the 1-based rank of a player together with the stored score
	GetScoreRank(ctx context.Context, appID, playerID string) (int, *Score, error)
	DeleteScores(ctx context.Context, appID string) (int64, error)
}

type StorageConfig interface {
	Validate() error
	GetType() string
	GetConnectionString() string
}

type StorageFactory interface {
	Create(config StorageConfig) (Storage, error)
	GetType() string
}

// User is an administrator account
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role groups permissions such as "users:read" or "*"
type Role struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppConfig struct {
	AppID     string    `json:"app_id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Mail struct {
	ID          string     `json:"id"`
	AppID       string     `json:"app_id"`
	PlayerID    string     `json:"player_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Attachments string     `json:"attachments"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpireAt    *time.Time `json:"expire_at,omitempty"`
}

// Expired reports whether the mail has passed its expiry at now
func (m *Mail) Expired(now time.Time) bool {
	return m.ExpireAt != nil && !m.ExpireAt.After(now)
}

type Score struct {
	AppID     string    `json:"app_id"`
	PlayerID  string    `json:"player_id"`
	Score     int64     `json:"score"`
	Extra     string    `json:"extra"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GenericConfig is a simple map-based implementation of StorageConfig
type GenericConfig map[string]interface{}

func (gc GenericConfig) Validate() error {
	return nil
}

func (gc GenericConfig) GetType() string {
	if t, ok := gc["type"].(string); ok {
		return t
	}
	return "unknown"
}

func (gc GenericConfig) GetConnectionString() string {
	if cs, ok := gc["connection_string"].(string); ok {
		return cs
	}
	return ""
}

// String returns a string value from the config, or "" when absent
func (gc GenericConfig) String(key string) string {
	if s, ok := gc[key].(string); ok {
		return s
	}
	return ""
}
