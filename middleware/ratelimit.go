package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Aleee071/novashop-app/config"
	"github.com/Aleee071/novashop-app/response"
)

// RateLimit applies a process-wide token bucket to the API surface.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.Body{
				Success:    false,
				StatusCode: http.StatusTooManyRequests,
				Message:    "too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
