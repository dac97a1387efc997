// ratelimit.go implements per-client-IP rate limiting using a token bucket.
//
// How token bucket works:
// - Each client IP gets a "bucket" with N tokens (N = the hourly limit)
// - Each request consumes 1 token
// - Tokens refill at a steady rate (N tokens per hour)
// - If the bucket is empty, the request is rejected with 429 Too Many Requests
//
// There is no authentication on the upload endpoint, so the client IP is
// the only identity available. Each upload triggers a paid model call —
// the limiter keeps one client from burning the whole quota.
package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/complianceai/audit-api/internal/models"
)

// RateLimiter tracks request rates per client IP.
type RateLimiter struct {
	// Go Pattern: sync.Mutex guards the bucket map. Contention is low —
	// the critical section is a map lookup and a little arithmetic.
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   float64 // requests per hour
}

// bucket tracks the token state for a single client.
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter allowing perHour requests per
// client IP. A non-positive limit disables limiting.
func NewRateLimiter(perHour int) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   float64(perHour),
	}

	if perHour > 0 {
		go rl.cleanup()
	}

	return rl
}

// RateLimit returns Gin middleware that enforces the per-IP limit.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}

		allowed, remaining := rl.allow(c.ClientIP())

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%.0f", rl.limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%.0f", remaining))

		if !allowed {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error:   "rate_limit_exceeded",
				Message: "Rate limit exceeded. Try again later.",
				Code:    http.StatusTooManyRequests,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow consumes one token for the client, refilling first based on
// elapsed time. Returns whether the request may proceed and how many
// tokens remain.
func (rl *RateLimiter) allow(clientIP string) (bool, float64) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[clientIP]
	if !ok {
		b = &bucket{tokens: rl.limit, lastRefill: now}
		rl.buckets[clientIP] = b
	}

	// Refill: limit tokens per hour, capped at the bucket size.
	refillRate := rl.limit / 3600.0
	b.tokens += now.Sub(b.lastRefill).Seconds() * refillRate
	if b.tokens > rl.limit {
		b.tokens = rl.limit
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false, 0
	}

	b.tokens--
	return true, b.tokens
}

// cleanup periodically drops buckets that have fully refilled — an idle
// client's bucket carries no information beyond "full".
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, b := range rl.buckets {
			idle := time.Since(b.lastRefill)
			if b.tokens+idle.Seconds()*(rl.limit/3600.0) >= rl.limit {
				delete(rl.buckets, ip)
			}
		}
		rl.mu.Unlock()
	}
}
