// Package locks provides short-lived exclusive locks for work that must run
// on one instance at a time. With Redis the lock is a Redlock held through
// go-redsync; without it, locks only exclude goroutines of this process.
package locks

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v8"

	"game-admin/internal/common/errors"
	"game-admin/internal/redis"
)

// ErrNotAcquired is returned by TryAcquire when another holder has the lock
var ErrNotAcquired = stderrors.New("lock is held elsewhere")

// Lock is a held lock. It expires on its own after the TTL it was taken with.
type Lock interface {
	Key() string
	Release(ctx context.Context) error
}

// Manager hands out locks without waiting
type Manager interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}

// RedsyncManager takes locks in Redis under lock:<key>
type RedsyncManager struct {
	redsync *redsync.Redsync
}

type redsyncLock struct {
	key   string
	mutex *redsync.Mutex
}

// NewRedsyncManager creates a manager backed by redisClient
func NewRedsyncManager(redisClient *redis.Client) (*RedsyncManager, error) {
	if redisClient == nil {
		return nil, errors.ConfigError("redis client is required")
	}
	pool := goredis.NewPool(redisClient.GetGoRedisClient())
	return &RedsyncManager{redsync: redsync.New(pool)}, nil
}

// TryAcquire makes a single attempt to take key for ttl
func (rm *RedsyncManager) TryAcquire(ctx context.Context, key string, ttl time.Duration) (Lock, error) {
	mutex := rm.redsync.NewMutex("lock:"+key, redsync.WithExpiry(ttl), redsync.WithTries(1))
	if err := mutex.TryLockContext(ctx); err != nil {
		var taken *redsync.ErrTaken
		if stderrors.As(err, &taken) || stderrors.Is(err, redsync.ErrFailed) {
			return nil, ErrNotAcquired
		}
		return nil, errors.ConnectionError("failed to acquire lock", err)
	}
	return &redsyncLock{key: key, mutex: mutex}, nil
}

func (l *redsyncLock) Key() string {
	return l.key
}

func (l *redsyncLock) Release(ctx context.Context) error {
	if _, err := l.mutex.UnlockContext(ctx); err != nil {
		return errors.ConnectionError("failed to release lock", err)
	}
	return nil
}

// LocalManager excludes holders within one process
type LocalManager struct {
	mu    sync.Mutex
	held  map[string]time.Time
	now   func() time.Time
}

type localLock struct {
	key     string
	manager *LocalManager
	expires time.Time
}

// NewLocalManager creates an in-process manager
func NewLocalManager() *LocalManager {
	return &LocalManager{held: make(map[string]time.Time), now: time.Now}
}

// TryAcquire takes key unless it is held and not yet expired
func (m *LocalManager) TryAcquire(_ context.Context, key string, ttl time.Duration) (Lock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if expires, ok := m.held[key]; ok && now.Before(expires) {
		return nil, ErrNotAcquired
	}
	expires := now.Add(ttl)
	m.held[key] = expires
	return &localLock{key: key, manager: m, expires: expires}, nil
}

func (l *localLock) Key() string {
	return l.key
}

// Release frees the key unless the lock already expired and was retaken
func (l *localLock) Release(context.Context) error {
	m := l.manager
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.held[l.key].Equal(l.expires) {
		delete(m.held, l.key)
	}
	return nil
}
