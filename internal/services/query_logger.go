package services

import (
	"context"
	"log/slog"
	"time"

	"ledger-agent/internal/models"
)

// QueryLogger writes one structured event per pipeline milestone. Question text is
// logged by length only.
type QueryLogger struct {
	logger *slog.Logger
}

func NewQueryLogger(logger *slog.Logger) QueryLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryLogger{
		logger: logger,
	}
}

func (ql *QueryLogger) LogQueryStarted(ctx context.Context, operation, question string) {
	ql.logger.InfoContext(ctx, "query started",
		slog.String("event_type", "query_started"),
		slog.String("operation", operation),
		slog.Int("question_length", len([]rune(question))),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (ql *QueryLogger) LogIntentResolved(ctx context.Context, rangeToken models.RangeToken, typeLabel string) {
	ql.logger.InfoContext(ctx, "intent resolved",
		slog.String("event_type", "intent_resolved"),
		slog.String("date_range", rangeToken.String()),
		slog.String("type", typeLabel),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (ql *QueryLogger) LogQueryCompleted(ctx context.Context, operation string, result *models.SummaryResult, durationMs int64) {
	attrs := []any{
		slog.String("event_type", "query_completed"),
		slog.String("operation", operation),
		slog.Int64("duration_ms", durationMs),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	}
	if result != nil {
		attrs = append(attrs,
			slog.String("window", result.Window.String()),
			slog.Int("transaction_count", result.TransactionCount),
			slog.Int("unclassified_count", result.UnclassifiedCount),
		)
	}
	ql.logger.InfoContext(ctx, "query completed", attrs...)
}

func (ql *QueryLogger) LogQueryFailed(ctx context.Context, operation, step string, err error, durationMs int64) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ql.logger.WarnContext(ctx, "query failed",
		slog.String("event_type", "query_failed"),
		slog.String("operation", operation),
		slog.String("step", step),
		slog.String("error", errMsg),
		slog.Int64("duration_ms", durationMs),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (ql *QueryLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	ql.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
	)
}
