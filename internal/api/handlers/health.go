package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellerdash/sellerdash/internal/config"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	creds *config.Credentials
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(creds *config.Credentials) *HealthHandler {
	return &HealthHandler{creds: creds}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 if the required SP-API credentials are configured,
// 503 with the missing key names otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	report := h.creds.Validate()
	if !report.Valid {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "unavailable",
			"missing": report.Missing,
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
