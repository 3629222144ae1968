package services

import (
	"context"
	"time"

	"ledger-agent/internal/dto"
	"ledger-agent/internal/models"
)

// WindowResolverInterface maps a range token to a calendar window pinned to UTC
type WindowResolverInterface interface {
	Resolve(token models.RangeToken, now time.Time) (models.TimeWindow, error)
}

// TypeNormalizerInterface maps raw and localized type labels onto income/expense
type TypeNormalizerInterface interface {
	// Normalize is the filter path: a blank label means no filter, an unknown label is an error.
	Normalize(label string) (*models.TransactionType, error)
	// Classify is the aggregation path: unknown labels report ok=false.
	Classify(label string) (models.TransactionType, bool)
	// Labels lists every raw label that maps onto t.
	Labels(t models.TransactionType) []string
}

// AggregatorInterface reduces records to a summary; the caller attaches the window
type AggregatorInterface interface {
	Aggregate(records []models.Transaction) *models.SummaryResult
}

// IntentExtractorInterface turns a free-form question into a structured intent
type IntentExtractorInterface interface {
	Extract(ctx context.Context, question string) (*models.Intent, error)
}

// ReplyComposerInterface renders a summary as a natural-language answer
type ReplyComposerInterface interface {
	Compose(ctx context.Context, result *models.SummaryResult, question string) (string, error)
}

// ChatCompletionClientInterface sends one chat completion and returns the first choice's text
type ChatCompletionClientInterface interface {
	Complete(ctx context.Context, req dto.ChatCompletionRequest) (string, error)
}

// QueryServiceInterface answers ledger questions end to end
type QueryServiceInterface interface {
	// Answer runs the full pipeline and returns the composed reply verbatim.
	Answer(ctx context.Context, question string) (string, error)
	// Summarize runs the deterministic part of the pipeline from structured parameters.
	Summarize(ctx context.Context, params models.IntentParams) (*models.SummaryResult, error)
}

// TransactionGeneratorInterface produces a plausible sample ledger for development stores
type TransactionGeneratorInterface interface {
	GenerateLedger(start, end time.Time) []models.Transaction
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type QueryLoggerInterface interface {
	LogQueryStarted(ctx context.Context, operation, question string)
	LogIntentResolved(ctx context.Context, rangeToken models.RangeToken, typeLabel string)
	LogQueryCompleted(ctx context.Context, operation string, result *models.SummaryResult, durationMs int64)
	LogQueryFailed(ctx context.Context, operation, step string, err error, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
