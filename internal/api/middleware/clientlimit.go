package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/sellerdash/sellerdash/internal/metrics"
)

// clientLimitSkipPaths exempts operational endpoints from the inbound
// throttle so probes and scrapes are never rejected.
var clientLimitSkipPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

const (
	// clientIdleEviction is how long a client may stay silent before its
	// bucket is dropped; an evicted client returning later starts with a
	// fresh burst, which is acceptable for dashboard traffic.
	clientIdleEviction = 10 * time.Minute
	clientSweepEvery   = time.Minute
)

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter throttles inbound requests per client IP using a token
// bucket. It protects the upstream SP-API budgets from a single
// misbehaving dashboard session. Idle clients are swept periodically so
// the per-IP map stays bounded by the set of recently active clients.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientEntry
	perSec    rate.Limit
	burst     int
	lastSweep time.Time
	nowFunc   func() time.Time // for testing
}

// ClientLimiterOption configures the ClientLimiter.
type ClientLimiterOption func(*ClientLimiter)

// WithClientLimiterNowFunc overrides the time function for testing.
func WithClientLimiterNowFunc(f func() time.Time) ClientLimiterOption {
	return func(cl *ClientLimiter) {
		cl.nowFunc = f
	}
}

// NewClientLimiter creates a per-client limiter allowing perSecond
// requests with the given burst.
func NewClientLimiter(perSecond float64, burst int, opts ...ClientLimiterOption) *ClientLimiter {
	cl := &ClientLimiter{
		clients: make(map[string]*clientEntry),
		perSec:  rate.Limit(perSecond),
		burst:   burst,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(cl)
	}
	cl.lastSweep = cl.nowFunc()
	return cl
}

func (cl *ClientLimiter) limiterFor(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.nowFunc()
	if now.Sub(cl.lastSweep) >= clientSweepEvery {
		cl.sweepLocked(now)
	}

	entry, ok := cl.clients[ip]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(cl.perSec, cl.burst)}
		cl.clients[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

func (cl *ClientLimiter) sweepLocked(now time.Time) {
	for ip, entry := range cl.clients {
		if now.Sub(entry.lastSeen) >= clientIdleEviction {
			delete(cl.clients, ip)
		}
	}
	cl.lastSweep = now
}

// Middleware returns Echo middleware that rejects over-limit clients
// with 429 Too Many Requests.
func (cl *ClientLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, skip := clientLimitSkipPaths[c.Request().URL.Path]; skip {
				return next(c)
			}

			if !cl.limiterFor(c.RealIP()).Allow() {
				metrics.ClientThrottledTotal.Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "rate limit exceeded",
				})
			}

			return next(c)
		}
	}
}
