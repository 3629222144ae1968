package handlers

import (
	"log/slog"
	"net/http"

	"ledger-agent/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (known error kinds) or
// SendSystemError (anything whose details must stay on the server).
// Neither echo.NewHTTPError nor a bare c.JSON is used for errors.

const (
	// TraceIDContextKey is the echo context key set by the request id middleware
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is the standardized error envelope
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok && traceID != "" {
		return traceID
	}
	if traceID := c.Response().Header().Get("X-Trace-ID"); traceID != "" {
		return traceID
	}
	return "unknown"
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with a generic SYSTEM_001 body
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)

	slog.ErrorContext(c.Request().Context(), "Unhandled handler error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internal,
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}
