// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipRateLimiter keeps one token bucket per client IP. Buckets idle for a few
// minutes are dropped by a background sweep.
type ipRateLimiter struct {
	mtx      sync.Mutex
	buckets  map[string]*ipBucket
	rate     rate.Limit
	burst    int
	maxIdle  time.Duration
	interval time.Duration
}

type ipBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPRateLimiter(r rate.Limit, burst int) *ipRateLimiter {
	rl := &ipRateLimiter{
		buckets:  make(map[string]*ipBucket),
		rate:     r,
		burst:    burst,
		maxIdle:  3 * time.Minute,
		interval: time.Minute,
	}
	go rl.sweep()
	return rl
}

func (rl *ipRateLimiter) sweep() {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()
	for range ticker.C {
		rl.mtx.Lock()
		for ip, b := range rl.buckets {
			if time.Since(b.lastSeen) > rl.maxIdle {
				delete(rl.buckets, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mtx.Lock()
	b, ok := rl.buckets[ip]
	if !ok {
		b = &ipBucket{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.buckets[ip] = b
	}
	b.lastSeen = time.Now()
	rl.mtx.Unlock()

	return b.limiter.Allow()
}

func (rl *ipRateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GeneralRateLimit covers all API routes.
func GeneralRateLimit() gin.HandlerFunc {
	return newIPRateLimiter(rate.Limit(50), 100).middleware()
}

// AuthRateLimit is tighter to slow credential stuffing against /auth.
func AuthRateLimit() gin.HandlerFunc {
	return newIPRateLimiter(rate.Limit(5), 10).middleware()
}
