package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/apierrors"
)

// DefaultRateLimit is the per-IP hourly budget applied to auth endpoints.
const DefaultRateLimit = 60

// RateLimiter implements a token bucket rate limiter keyed by client IP.
// Login and verify are the only endpoints worth protecting this way; data
// reads go through the refresh controllers and never fan out per request.
type RateLimiter struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	cleanup time.Duration
}

type bucket struct {
	tokens     float64
	limit      float64 // max tokens (requests per window)
	refillRate float64 // tokens per second
	lastRefill time.Time
}

var globalRateLimiter = NewRateLimiter()

// NewRateLimiter creates a new rate limiter
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		cleanup: 10 * time.Minute,
	}
	go rl.cleanupLoop()
	return rl
}

// Allow checks if a request is allowed and consumes a token
func (rl *RateLimiter) Allow(key string, limit int) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[key]
	if !exists {
		b = &bucket{
			tokens:     float64(limit),
			limit:      float64(limit),
			refillRate: float64(limit) / 3600.0, // per hour
			lastRefill: time.Now(),
		}
		rl.buckets[key] = b
	}

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * b.refillRate
	if b.tokens > b.limit {
		b.tokens = b.limit
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Remaining returns remaining tokens for a key
func (rl *RateLimiter) Remaining(key string) int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	if b, exists := rl.buckets[key]; exists {
		return int(b.tokens)
	}
	return 0
}

// cleanupLoop removes stale buckets periodically
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanup)
	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-rl.cleanup)
		for key, b := range rl.buckets {
			if b.lastRefill.Before(cutoff) {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitByIP applies IP-based rate limiting with the given hourly budget.
func RateLimitByIP(requestsPerHour int) gin.HandlerFunc {
	if requestsPerHour <= 0 {
		requestsPerHour = DefaultRateLimit
	}
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		if !globalRateLimiter.Allow(key, requestsPerHour) {
			c.Header("X-RateLimit-Limit", strconv.Itoa(requestsPerHour))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(globalRateLimiter.Remaining(key)))
			c.Header("Retry-After", "60")
			apierrors.Error(c, apierrors.CodeRateLimited)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(requestsPerHour))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(globalRateLimiter.Remaining(key)))

		c.Next()
	}
}
