package middleware

import (
	"fmt"
	"log"
	"net/http"

	"api/config"
	"api/database"
	"api/metrics"

	"github.com/gin-gonic/gin"
)

// LoginAttemptLimiter throttles login attempts with a fixed-window counter stored in
// Redis, keyed by client IP. Keeping the counter out of process memory means the limit
// holds across restarts and multiple instances.
func LoginAttemptLimiter(cfg config.LoginRateLimitConfig) gin.HandlerFunc {
    return func(c *gin.Context) {
        ctx := c.Request.Context()
        key := fmt.Sprintf("login_attempts:%s", c.ClientIP())

        count, err := database.REDIS.Incr(ctx, key).Result()
        if err != nil {
            // Redis being down must not lock everyone out
            log.Printf("login attempt counter unavailable: %v", err)
            c.Next()
            return
        }
        if count == 1 {
            database.REDIS.Expire(ctx, key, cfg.Window)
        }

        if count > int64(cfg.MaxAttempts) {
            metrics.RateLimiterRejections.WithLabelValues(c.ClientIP()).Inc()
            c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
                "error": "Too many login attempts. Please try again later.",
            })
            return
        }
        c.Next()
    }
}
