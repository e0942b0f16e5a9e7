package middleware

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// probePaths are the kubelet-style endpoints whose successes are logged
// only when the state changes. Failures are always logged.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// proxyCategories maps the /api/v1 resource segment to the SP-API
// rate-limit category the call will be billed against, so a log line can
// be correlated with the limiter and the spapi_calls_total series.
var proxyCategories = map[string]string{
	"orders":    "orders",
	"inventory": "inventory",
	"reports":   "reports",
	"finances":  "finances",
	"shipments": "fulfillment",
}

type requestLogger struct {
	log *slog.Logger

	mu      sync.Mutex
	probeOK map[string]bool
}

// RequestLog returns Echo middleware that logs each request with
// structured fields: method, path, status, duration, byte count, client
// IP, request ID, and the SP-API category for proxy routes. A request ID
// is generated when the client sends none and is echoed back in the
// X-Request-ID header. Repeated probe successes are suppressed so
// healthy clusters do not fill the log with /healthz lines; probe
// failures and 5xx responses log at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	rl := &requestLogger{
		log:     log,
		probeOK: make(map[string]bool),
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			rl.emit(c, reqID, time.Since(start))
			return err
		}
	}
}

func (rl *requestLogger) emit(c echo.Context, reqID string, elapsed time.Duration) {
	path := c.Request().URL.Path
	status := c.Response().Status
	ok := status >= 200 && status < 300

	if _, probe := probePaths[path]; probe && !rl.probeChanged(path, ok) {
		return
	}

	fields := []any{
		"method", c.Request().Method,
		"path", path,
		"status", status,
		"duration_ms", elapsed.Milliseconds(),
		"bytes_out", c.Response().Size,
		"remote_ip", c.RealIP(),
		"request_id", reqID,
	}
	if category := CategoryForPath(path); category != "" {
		fields = append(fields, "category", category)
	}

	if status >= 500 || (!ok && isProbe(path)) {
		rl.log.Warn("request", fields...)
		return
	}
	rl.log.Info("request", fields...)
}

// probeChanged records the probe's latest state and reports whether the
// line should be logged: failures always, successes only when the probe
// was not already known healthy.
func (rl *requestLogger) probeChanged(path string, ok bool) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	wasOK := rl.probeOK[path]
	rl.probeOK[path] = ok
	return !ok || !wasOK
}

func isProbe(path string) bool {
	_, ok := probePaths[path]
	return ok
}

// CategoryForPath resolves the SP-API rate-limit category for a proxy
// route like /api/v1/orders/123. Non-proxy paths and unmapped resources
// return "".
func CategoryForPath(path string) string {
	const prefix = "/api/v1/"
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	resource := strings.TrimPrefix(path, prefix)
	if i := strings.IndexByte(resource, '/'); i >= 0 {
		resource = resource[:i]
	}
	return proxyCategories[resource]
}
