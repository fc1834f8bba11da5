package locks

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-admin/internal/common/errors"
	"game-admin/internal/redis"
)

func TestRedsyncManager(t *testing.T) {
	s := miniredis.RunT(t)

	redisClient, err := redis.NewClient(&redis.Config{Address: s.Addr()})
	require.NoError(t, err)
	defer redisClient.Close()

	manager, err := NewRedsyncManager(redisClient)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("acquire and release", func(t *testing.T) {
		lock, err := manager.TryAcquire(ctx, "purge", 30*time.Second)
		require.NoError(t, err)
		assert.Equal(t, "purge", lock.Key())
		assert.True(t, s.Exists("lock:purge"))

		require.NoError(t, lock.Release(ctx))
		assert.False(t, s.Exists("lock:purge"))
	})

	t.Run("contention", func(t *testing.T) {
		lock, err := manager.TryAcquire(ctx, "contended", 30*time.Second)
		require.NoError(t, err)
		defer lock.Release(ctx)

		other, err := manager.TryAcquire(ctx, "contended", 30*time.Second)
		assert.ErrorIs(t, err, ErrNotAcquired)
		assert.Nil(t, other)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		_, err := manager.TryAcquire(ctx, "short", time.Second)
		require.NoError(t, err)

		s.FastForward(2 * time.Second)
		lock, err := manager.TryAcquire(ctx, "short", time.Second)
		require.NoError(t, err)
		require.NoError(t, lock.Release(ctx))
	})

	t.Run("redis down", func(t *testing.T) {
		s.Close()
		defer s.Restart()

		_, err := manager.TryAcquire(ctx, "down", time.Second)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotAcquired)
		assert.True(t, errors.IsType(err, errors.ErrTypeConnection))
	})
}

func TestNewRedsyncManager_RequiresClient(t *testing.T) {
	_, err := NewRedsyncManager(nil)
	assert.Error(t, err)
}

func TestLocalManager(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewLocalManager()
	m.now = func() time.Time { return now }
	ctx := context.Background()

	lock, err := m.TryAcquire(ctx, "purge", time.Minute)
	require.NoError(t, err)

	_, err = m.TryAcquire(ctx, "purge", time.Minute)
	assert.ErrorIs(t, err, ErrNotAcquired)

	_, err = m.TryAcquire(ctx, "other", time.Minute)
	assert.NoError(t, err)

	require.NoError(t, lock.Release(ctx))
	lock, err = m.TryAcquire(ctx, "purge", time.Minute)
	require.NoError(t, err)

	// an expired lock can be retaken, and the stale holder's release is ignored
	now = now.Add(2 * time.Minute)
	fresh, err := m.TryAcquire(ctx, "purge", time.Minute)
	require.NoError(t, err)
	require.NoError(t, lock.Release(ctx))
	_, err = m.TryAcquire(ctx, "purge", time.Minute)
	assert.ErrorIs(t, err, ErrNotAcquired)
	require.NoError(t, fresh.Release(ctx))
}
