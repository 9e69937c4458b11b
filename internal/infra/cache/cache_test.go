package cache

import (
	"context"
	"testing"
	"time"

	"github.com/nadoran78/mytable/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisLocker(t *testing.T) {
	mr, client := newTestRedis(t)
	locker := NewLocker(client)
	ctx := context.Background()

	release, ok, err := locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, release(ctx))
	assert.False(t, mr.Exists(lockKeyPrefix+"sweep"))

	_, ok, err = locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLocker_ReleaseKeepsForeignLease(t *testing.T) {
	mr, client := newTestRedis(t)
	locker := NewLocker(client)
	ctx := context.Background()

	staleRelease, ok, err := locker.TryLock(ctx, "sweep", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok, err = locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, staleRelease(ctx))
	assert.True(t, mr.Exists(lockKeyPrefix+"sweep"))
}

func TestLocalLocker(t *testing.T) {
	locker := NewLocker(nil)
	ctx := context.Background()

	release, ok, err := locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, _ = locker.TryLock(ctx, "sweep", time.Minute)
	assert.False(t, ok)

	require.NoError(t, release(ctx))

	_, ok, _ = locker.TryLock(ctx, "sweep", time.Minute)
	assert.True(t, ok)
}

func TestLocalLocker_ReleaseKeepsForeignLease(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 5, 0, 0, time.UTC)
	locker := newLocalLocker()
	locker.now = func() time.Time { return now }
	ctx := context.Background()

	staleRelease, ok, err := locker.TryLock(ctx, "sweep", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(2 * time.Second)

	release, ok, err := locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, staleRelease(ctx))

	_, ok, _ = locker.TryLock(ctx, "sweep", time.Minute)
	assert.False(t, ok, "stale release must not free the current lease")

	require.NoError(t, release(ctx))

	_, ok, _ = locker.TryLock(ctx, "sweep", time.Minute)
	assert.True(t, ok)
}

func TestNewTokenBucket_Disabled(t *testing.T) {
	_, client := newTestRedis(t)

	assert.Nil(t, NewTokenBucket(&config.Config{}, client))
	assert.Nil(t, NewTokenBucket(&config.Config{RateLimit: &config.RateLimitConfig{Enabled: false}}, client))
	assert.Nil(t, NewTokenBucket(&config.Config{RateLimit: &config.RateLimitConfig{Enabled: true}}, nil))
}

func TestTokenBucket_Take(t *testing.T) {
	_, client := newTestRedis(t)

	bucket := NewTokenBucket(&config.Config{RateLimit: &config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            time.Minute,
	}}, client)
	require.NotNil(t, bucket)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	bucket.now = func() time.Time { return now }
	ctx := context.Background()

	first, err := bucket.Take(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, 2, first.Limit)
	assert.Equal(t, int64(1), first.Remaining)

	second, err := bucket.Take(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, second.Allowed)
	assert.Equal(t, int64(0), second.Remaining)

	third, err := bucket.Take(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.Equal(t, time.Second, third.RetryAfter)

	other, err := bucket.Take(ctx, "ip:10.0.0.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	now = now.Add(time.Second)
	refilled, err := bucket.Take(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, refilled.Allowed)
}

func TestTokenBucket_RedisDown(t *testing.T) {
	mr, client := newTestRedis(t)

	bucket := NewTokenBucket(&config.Config{RateLimit: &config.RateLimitConfig{Enabled: true}}, client)
	require.NotNil(t, bucket)
	mr.Close()

	_, err := bucket.Take(context.Background(), "ip:10.0.0.1")
	assert.Error(t, err)
}
