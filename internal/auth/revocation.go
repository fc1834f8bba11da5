package auth

import (
	"context"
	"sync"
	"time"
)

// Revocations records revoked token IDs until they expire
type Revocations interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// KeyValueStore is satisfied by the Redis client
type KeyValueStore interface {
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

type redisRevocations struct {
	kv KeyValueStore
}

// NewRedisRevocations stores revocations under revoked:<jti> with a TTL
func NewRedisRevocations(kv KeyValueStore) Revocations {
	return &redisRevocations{kv: kv}
}

func (r *redisRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return r.kv.Set(ctx, "revoked:"+tokenID, "1", ttl)
}

func (r *redisRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return r.kv.Exists(ctx, "revoked:"+tokenID)
}

// MemoryRevocations is the single-instance fallback used without Redis
type MemoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *MemoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, until := range m.revoked {
		if !until.After(now) {
			delete(m.revoked, id)
		}
	}
	m.revoked[tokenID] = now.Add(ttl)
	return nil
}

func (m *MemoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	until, ok := m.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !until.After(m.now()) {
		delete(m.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
