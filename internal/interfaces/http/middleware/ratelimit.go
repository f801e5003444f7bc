package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/infrastructure/ratelimit"
	"flowdesk/internal/shared/utils"
)

// RateLimit enforces a per-IP request limit. When the backing store is
// unavailable the request is allowed so the limiter never takes the API
// down with it.
func RateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow("ip:"+c.ClientIP(), config)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
