package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/infrastructure/ratelimit"
	"library-catalog/internal/shared/response"
)

// Limiter is satisfied by *ratelimit.FixedWindowLimiter
type Limiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}

// RateLimitWrites limits POST, PUT, PATCH and DELETE per client IP.
// Reads are never limited. When the limiter errors the request is refused.
func RateLimitWrites(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isWrite(c.Request.Method) {
			c.Next()
			return
		}

		decision, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Error().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Msg("Rate limiter unavailable")
			response.ErrorWithDetails(c, http.StatusServiceUnavailable,
				"RATE_LIMITER_UNAVAILABLE", "Write requests are temporarily unavailable", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.ResetAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.TooManyRequests(c, "Too many write requests, retry later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
