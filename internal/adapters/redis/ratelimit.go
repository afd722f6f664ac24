package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RateLimiterRedis enforces a fixed-window write budget per caller. The
// window lives in Redis so limits hold across restarts and replicas.
type RateLimiterRedis struct {
	Client *redis.Client
	Limit  int64
	Window time.Duration
}

func NewRateLimiterRedis(client *redis.Client, limit int64, window time.Duration) *RateLimiterRedis {
	return &RateLimiterRedis{
		Client: client,
		Limit:  limit,
		Window: window,
	}
}

// Allow reports whether callerID may perform another write in the current
// window.
func (r *RateLimiterRedis) Allow(ctx context.Context, callerID string) (bool, error) {
	key := "ratelimit:" + callerID

	count, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := r.Client.Expire(ctx, key, r.Window).Err(); err != nil {
			return false, err
		}
	}

	return count <= r.Limit, nil
}
