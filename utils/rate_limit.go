package utils

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	sweepInterval = time.Minute
	clientTTL     = 3 * time.Minute
)

// IPRateLimiter keeps one token bucket per client IP. Used to slow down
// login attempts. Stale entries are swept lazily on access, so the
// limiter owns no background goroutine.
type IPRateLimiter struct {
	ips       sync.Map
	mu        sync.Mutex
	r         rate.Limit
	b         int
	lastSweep atomic.Int64
}

type ipClient struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos, written on every request
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	l := &IPRateLimiter{r: r, b: b}
	l.lastSweep.Store(time.Now().UnixNano())
	return l
}

func (l *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	now := time.Now().UnixNano()
	l.maybeSweep(now)
	if v, ok := l.ips.Load(ip); ok {
		c := v.(*ipClient)
		c.lastSeen.Store(now)
		return c.limiter
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	// Double check
	if v, ok := l.ips.Load(ip); ok {
		c := v.(*ipClient)
		c.lastSeen.Store(now)
		return c.limiter
	}
	c := &ipClient{limiter: rate.NewLimiter(l.r, l.b)}
	c.lastSeen.Store(now)
	l.ips.Store(ip, c)
	return c.limiter
}

// maybeSweep drops clients not seen within clientTTL. At most one
// caller per interval wins the CAS and pays for the sweep.
func (l *IPRateLimiter) maybeSweep(now int64) {
	last := l.lastSweep.Load()
	if now-last < int64(sweepInterval) {
		return
	}
	if !l.lastSweep.CompareAndSwap(last, now) {
		return
	}
	l.ips.Range(func(key, value interface{}) bool {
		if now-value.(*ipClient).lastSeen.Load() > int64(clientTTL) {
			l.ips.Delete(key)
		}
		return true
	})
}

func (l *IPRateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.getLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
