package handler // declare the package name; contains HTTP handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyvanm/inventory-sales-api/internal/config"
)

// SystemHandler serves the unauthenticated info and health endpoints. The
// Probe function is injected so the handler does not hold a database
// handle directly; in production it wraps database.Probe.
type SystemHandler struct {
	Cfg   config.Config
	Probe func(ctx context.Context) error
}

func NewSystemHandler(cfg config.Config, probe func(ctx context.Context) error) *SystemHandler {
	return &SystemHandler{Cfg: cfg, Probe: probe}
}

// Info handles GET / and identifies the running service.
func (h *SystemHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"app_name": h.Cfg.AppName,
		"version":  h.Cfg.AppVersion,
	})
}

// Health handles GET /health. It runs a trivial query against the database
// and reports per-service status; a failed probe returns the same report
// body with a 503 so monitors see what exactly is down.
func (h *SystemHandler) Health(c echo.Context) error {
	report := echo.Map{
		"app_name":    h.Cfg.AppName,
		"version":     h.Cfg.AppVersion,
		"server_time": time.Now().UTC().Format(time.RFC3339),
		"services": map[string]string{
			"api":      "online",
			"database": "unknown",
		},
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.Probe(ctx); err != nil {
		report["services"].(map[string]string)["database"] = "offline"
		report["error_details"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, report)
	}
	report["services"].(map[string]string)["database"] = "online"
	return c.JSON(http.StatusOK, report)
}
