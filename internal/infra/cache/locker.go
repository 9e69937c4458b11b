package cache

import (
	"context"
	"sync"
	"time"

	"github.com/nadoran78/mytable/internal/domain/entity"
	"github.com/nadoran78/mytable/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "mytable:lock:"

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// NewLocker returns a Redis lease locker, or a process-local one when client is nil.
func NewLocker(client *redis.Client) service.Locker {
	if client == nil {
		return newLocalLocker()
	}

	return &redisLocker{client: client}
}

type redisLocker struct {
	client *redis.Client
}

func (l *redisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	token := entity.NewExternalUID()
	fullKey := lockKeyPrefix + key

	ok, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to acquire lock %s", key)
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil {
			return errors.Wrapf(err, "failed to release lock %s", key)
		}

		return nil
	}

	return release, true, nil
}

// localLocker serializes holders inside one process.
type localLocker struct {
	mu   sync.Mutex
	held map[string]localLease
	now  func() time.Time
}

type localLease struct {
	token  string
	expiry time.Time
}

func newLocalLocker() *localLocker {
	return &localLocker{held: make(map[string]localLease), now: time.Now}
}

func (l *localLocker) TryLock(_ context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if lease, ok := l.held[key]; ok && now.Before(lease.expiry) {
		return nil, false, nil
	}

	token := entity.NewExternalUID()
	l.held[key] = localLease{token: token, expiry: now.Add(ttl)}

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		// An expired lease may have been taken over; leave the new holder alone.
		if lease, ok := l.held[key]; ok && lease.token == token {
			delete(l.held, key)
		}

		return nil
	}

	return release, true, nil
}
