// Package cache holds the Redis backed pieces: the shared client, the sweep lock and
// the request rate limiter. Every consumer degrades gracefully when Redis is absent.
package cache

import (
	"context"
	"crypto/tls"
	"log/slog"
	"time"

	"github.com/nadoran78/mytable/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingTimeout = 2 * time.Second

// ClientParams holds dependencies for the Redis client, injected by Fx.
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to the configured Redis. It returns nil when Redis is not
// configured or unreachable at startup.
func NewRedisClient(params ClientParams) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, rate limiting and distributed locks are disabled")

		return nil
	}

	var tlsConf *tls.Config
	if cfg.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(&redis.Options{
		Addr:      cfg.Addr,
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: tlsConf,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		params.Logger.Warn("Redis unreachable, continuing without it",
			slog.String("addr", cfg.Addr),
			slog.Any("error", err),
		)
		_ = client.Close()

		return nil
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client
}

// Module provides the Redis client, the locker and the rate limiter.
var Module = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewLocker,
		NewTokenBucket,
	),
)
