package middleware

import (
	"fmt"
	"net/http"
	"time"

	"tracking-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// ReportRateLimit throttles location reports per driver id. Limiter failures
// do not block requests: a broken Redis must not take tracking down with it.
func ReportRateLimit(limiter ratelimit.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter, err := limiter.Allow(c.Param("id"))
		if err != nil {
			c.Header("X-RateLimit-Error", "Rate limiter unavailable")
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())+1))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"message": fmt.Sprintf("Too many location reports. Try again in %v", retryAfter.Round(time.Second)),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
