package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nadoran78/mytable/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills by whole intervals and takes one token per call.
// It returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = interval_ms - (now_ms - last_refill)
	if retry_after_ms < 0 then retry_after_ms = 0 end
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

const (
	defaultCapacity       = 60
	defaultRefillTokens   = 1
	defaultRefillInterval = time.Second
	defaultBucketTTL      = 10 * time.Minute
	defaultPrefix         = "mytable:rl"
)

// RateDecision is the outcome of one Take.
type RateDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

// TokenBucket is a Redis token bucket shared by every API instance.
type TokenBucket struct {
	client         *redis.Client
	capacity       int
	refillTokens   int
	refillInterval time.Duration
	ttl            time.Duration
	prefix         string
	now            func() time.Time
}

// NewTokenBucket returns nil when rate limiting is disabled or Redis is absent.
func NewTokenBucket(cfg *config.Config, client *redis.Client) *TokenBucket {
	rl := cfg.RateLimit
	if rl == nil || !rl.Enabled || client == nil {
		return nil
	}

	bucket := &TokenBucket{
		client:         client,
		capacity:       rl.Capacity,
		refillTokens:   rl.RefillTokens,
		refillInterval: rl.RefillInterval,
		ttl:            rl.TTL,
		prefix:         rl.Prefix,
		now:            time.Now,
	}
	if bucket.capacity <= 0 {
		bucket.capacity = defaultCapacity
	}
	if bucket.refillTokens <= 0 {
		bucket.refillTokens = defaultRefillTokens
	}
	if bucket.refillInterval <= 0 {
		bucket.refillInterval = defaultRefillInterval
	}
	if bucket.ttl < time.Second {
		bucket.ttl = defaultBucketTTL
	}
	if bucket.prefix == "" {
		bucket.prefix = defaultPrefix
	}

	return bucket
}

// Take consumes one token from the bucket identified by key.
func (b *TokenBucket) Take(ctx context.Context, key string) (RateDecision, error) {
	args := []any{
		b.now().UnixMilli(),
		b.capacity,
		b.refillTokens,
		b.refillInterval.Milliseconds(),
		int64(b.ttl / time.Second),
	}

	vals, err := tokenBucketScript.Run(ctx, b.client, []string{b.prefix + ":" + key}, args...).Slice()
	if err != nil {
		return RateDecision{}, errors.Wrap(err, "rate limit script failed")
	}
	if len(vals) != 3 {
		return RateDecision{}, errors.Errorf("unexpected rate limit result: %v", vals)
	}

	return RateDecision{
		Allowed:    asInt64(vals[0]) == 1,
		Limit:      b.capacity,
		Remaining:  asInt64(vals[1]),
		RetryAfter: time.Duration(asInt64(vals[2])) * time.Millisecond,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case string:
		n, _ := strconv.ParseInt(t, 10, 64)

		return n
	default:
		n, _ := strconv.ParseInt(fmt.Sprint(t), 10, 64)

		return n
	}
}
