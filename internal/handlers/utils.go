package handlers

import (
	stderrors "errors"
	"log/slog"
	"strconv"

	"ledger-agent/internal/errors"
	"ledger-agent/internal/services"

	"github.com/labstack/echo/v4"
)

// queryErrorCode maps a pipeline failure onto its API error code. ok is false
// for failures that are not part of the pipeline's error vocabulary.
func queryErrorCode(err error) (errors.ErrorCode, bool) {
	switch {
	case stderrors.Is(err, services.ErrEmptyQuestion):
		return errors.QueryEmptyQuestion, true
	case stderrors.Is(err, services.ErrInvalidRangeToken):
		return errors.QueryInvalidRangeToken, true
	case stderrors.Is(err, services.ErrUnrecognizedTypeLabel):
		return errors.QueryUnrecognizedTypeLabel, true
	// an open breaker is reported as unavailability rather than as a bad answer
	case stderrors.Is(err, services.ErrCircuitBreakerOpen):
		return errors.SystemServiceUnavailable, true
	case stderrors.Is(err, services.ErrIntentExtraction):
		return errors.QueryIntentExtraction, true
	case stderrors.Is(err, services.ErrReplyComposition):
		return errors.QueryReplyComposition, true
	case stderrors.Is(err, services.ErrRecordStore):
		return errors.SystemDatabaseError, true
	default:
		return "", false
	}
}

// sendQueryError answers with the code for err. Details name the failed step;
// the underlying error text is logged, never returned.
func sendQueryError(c echo.Context, err error) error {
	code, ok := queryErrorCode(err)
	if !ok {
		return SendSystemError(c, err)
	}

	level := slog.LevelWarn
	if errors.GetHTTPStatus(code) >= 500 {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "Query failed",
		"trace_id", getTraceID(c),
		"error_code", code,
		"step", services.FailedStep(err),
		"error", err.Error(),
	)

	var opts []errors.ErrorOption
	if step := services.FailedStep(err); step != "" {
		opts = append(opts, errors.WithDetails("step: "+step))
	}
	return SendError(c, code, opts...)
}

// getIntQueryParam reads an integer query parameter clamped to [lo, hi]
func getIntQueryParam(c echo.Context, name string, defaultValue, lo, hi int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return defaultValue
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
