package middleware

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"github.com/nadoran78/mytable/internal/delivery/api/response"
	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/infra/cache"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RateLimiter takes one token from the bucket named by key.
type RateLimiter interface {
	Take(ctx context.Context, key string) (cache.RateDecision, error)
}

// RateLimitMiddleware applies a token bucket per client ip and route.
type RateLimitMiddleware struct {
	limiter RateLimiter
	logger  *slog.Logger
}

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Bucket *cache.TokenBucket `optional:"true"`
	Logger *slog.Logger
}

// NewRateLimitMiddleware returns a pass-through middleware when no bucket is configured.
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	mw := &RateLimitMiddleware{logger: params.Logger}
	if params.Bucket != nil {
		mw.limiter = params.Bucket
	}

	return mw
}

// Limit rejects callers over their budget with 429. Limiter errors let the request through.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.limiter == nil {
			return next(c)
		}

		key := "ip:" + c.RealIP() + ":route:" + c.Request().Method + " " + c.Path()
		ctx := c.Request().Context()

		decision, err := m.limiter.Take(ctx, key)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		header.Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			secs := int(math.Ceil(decision.RetryAfter.Seconds()))
			header.Set("Retry-After", strconv.Itoa(secs))

			return response.AppError(c, domainerrors.ErrTooManyRequests, nil)
		}

		return next(c)
	}
}
