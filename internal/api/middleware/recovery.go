package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/sellerdash/sellerdash/internal/metrics"
)

// Recovery returns Echo middleware that recovers from handler panics,
// logs the stack with the request ID set by RequestLog, counts the panic,
// and answers with the same error shape the proxy handlers produce so
// dashboard clients parse one error model everywhere.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, 4096)
					n := runtime.Stack(buf, false)

					metrics.PanicsTotal.Inc()

					reqID, _ := c.Get("request_id").(string)
					log.Error("panic recovered",
						"error", fmt.Sprint(r),
						"method", c.Request().Method,
						"path", c.Request().URL.Path,
						"request_id", reqID,
						"stack", string(buf[:n]),
					)

					err = c.JSON(http.StatusInternalServerError, map[string]any{
						"title":  "Internal Server Error",
						"status": http.StatusInternalServerError,
						"detail": "unexpected server error, see logs for request " + reqID,
					})
				}
			}()
			return next(c)
		}
	}
}
