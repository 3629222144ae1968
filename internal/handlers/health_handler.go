package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"ledger-agent/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheckerInterface is satisfied by *database.DB
type HealthCheckerInterface interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	store HealthCheckerInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(store HealthCheckerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{store: store}
}

// HealthCheck reports service liveness and ledger store connectivity
//
// Method: GET /health
//
// Success Response: 200 OK {status, service, time}
// Error Response: 503 SYSTEM_003 when the store cannot be reached
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.HealthCheck(ctx); err != nil {
		slog.WarnContext(ctx, "Health check failed", "trace_id", getTraceID(c), "error", err)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "ledger-agent",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
