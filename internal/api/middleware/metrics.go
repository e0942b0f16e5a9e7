// Package middleware provides the Echo middleware chain for the
// sellerdash proxy: request logging, panic recovery, Prometheus metrics,
// and the inbound per-client throttle.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sellerdash/sellerdash/internal/metrics"
)

// operationalPaths maps probe and scrape endpoints to an optional
// up/down gauge. Requests to these paths bypass the request histogram
// and counter; a nil gauge means skip-only (/metrics scrapes).
var operationalPaths = map[string]prometheus.Gauge{
	"/metrics": nil,
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware feeding the sellerdash HTTP series:
// request duration histogram and total counter labeled by method, route,
// and status, plus an in-flight gauge. Probe endpoints update their
// 0/1 gauges instead so dashboards can alert on readiness directly.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Prefer the route template over the raw URL so order IDs and
			// document IDs do not explode label cardinality.
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if gauge, operational := operationalPaths[path]; operational {
				err := next(c)
				if gauge != nil {
					setProbeGauge(gauge, c.Response().Status)
				}
				return err
			}

			metrics.HTTPInFlight.Inc()
			start := time.Now()

			err := next(c)

			metrics.HTTPInFlight.Dec()

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

func setProbeGauge(gauge prometheus.Gauge, status int) {
	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
