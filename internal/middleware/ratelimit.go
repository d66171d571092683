package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

// Counter is the slice of the redis client the limiter needs.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

type RateLimitOptions struct {
	Max    int
	Window time.Duration
	Prefix string
}

// RateLimit counts requests per client IP and route in fixed windows. A nil
// counter or a redis failure lets the request through.
func RateLimit(counter Counter, opts RateLimitOptions, logger *slog.Logger) gin.HandlerFunc {
	if counter == nil || opts.Max <= 0 || opts.Window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := opts.Prefix + ":" + c.FullPath() + ":" + c.ClientIP()

		n, err := counter.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limit counter unavailable", "key", key, "error", err)
			c.Next()
			return
		}
		if n == 1 {
			if err := counter.Expire(ctx, key, opts.Window).Err(); err != nil {
				logger.Warn("rate limit expire failed", "key", key, "error", err)
			}
		}

		remaining := opts.Max - int(n)
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(opts.Max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if int(n) > opts.Max {
			retry := opts.Window
			ttl, err := counter.TTL(ctx, key).Result()
			switch {
			case err != nil:
			case ttl > 0:
				retry = ttl
			default:
				// no expiry on the key, the first Expire failed
				if err := counter.Expire(ctx, key, opts.Window).Err(); err != nil {
					logger.Warn("rate limit expire failed", "key", key, "error", err)
				}
			}
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
			httperr.Write(c, http.StatusTooManyRequests, "too_many_requests", "Rate limit exceeded, try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
