// internal/middleware/ratelimit_middleware.go
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fleet-rental-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// limiterStore is the subset of redis commands the limiter needs;
// *redis.Client satisfies it.
type limiterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RateLimiter applies a fixed-window request limit per client IP and
// path, counted in Redis so the limit holds across replicas.
type RateLimiter struct {
	client limiterStore
	logger *zap.Logger
	limit  int64
	window time.Duration
}

func NewRateLimiter(client limiterStore, logger *zap.Logger, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, logger: logger, limit: limit, window: window}
}

func (r *RateLimiter) allow(c *gin.Context) (bool, error) {
	ctx := c.Request.Context()
	key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), c.FullPath())

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// Set expiration on first hit in the window. A counter without a
	// window would throttle the client forever once over the limit, so
	// on failure the counter is discarded and the request admitted.
	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			r.client.Del(ctx, key)
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count <= r.limit, nil
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := r.allow(c)
		if err != nil {
			// Redis being down must not take the API down with it
			r.logger.Warn("rate limit check failed, allowing request", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			response.Error(c, http.StatusTooManyRequests, errors.New("too many requests"))
			return
		}
		c.Next()
	}
}
