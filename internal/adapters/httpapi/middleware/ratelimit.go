package middleware

import (
	"context"
	"net/http"

	"emojifeed/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimitMiddleware throttles writes per authenticated caller, falling
// back to the client IP before authentication. Limiter failures fail open:
// a broken Redis must not take the write path down with it.
func RateLimitMiddleware(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if userID, exists := c.Get("userID"); exists {
			key = userID.(string)
		}

		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			config.Logger.Warn("Rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
