package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ledger-agent/internal/models"
	"ledger-agent/internal/repositories"
	"ledger-agent/internal/validation"
)

var (
	ErrEmptyQuestion    = errors.New("question is empty")
	ErrIntentExtraction = errors.New("intent extraction failed")
	ErrRecordStore      = errors.New("record store query failed")
	ErrReplyComposition = errors.New("reply composition failed")
)

// Pipeline steps reported by QueryError
const (
	StepInput             = "input"
	StepIntentExtraction  = "intent_extraction"
	StepTypeNormalization = "type_normalization"
	StepWindowResolution  = "window_resolution"
	StepRecordFetch       = "record_fetch"
	StepReplyComposition  = "reply_composition"
)

const (
	operationAnswer    = "answer"
	operationSummarize = "summarize"
)

// QueryError reports which pipeline step aborted a query. Err keeps the
// step's error kind so callers can still match it with errors.Is.
type QueryError struct {
	Step string
	Err  error
}

func (e *QueryError) Error() string {
	return e.Step + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// FailedStep returns the step recorded in err, or "" when err is not a QueryError
func FailedStep(err error) string {
	var queryErr *QueryError
	if errors.As(err, &queryErr) {
		return queryErr.Step
	}
	return ""
}

// queryService implements QueryServiceInterface
type queryService struct {
	repo       repositories.TransactionRepositoryInterface
	intents    IntentExtractorInterface
	replies    ReplyComposerInterface
	resolver   WindowResolverInterface
	normalizer TypeNormalizerInterface
	aggregator AggregatorInterface
	metrics    MetricsRecorderInterface
	logger     QueryLoggerInterface
	now        func() time.Time
}

// NewQueryService wires the pipeline. Every collaborator is called synchronously and none is retried.
func NewQueryService(
	repo repositories.TransactionRepositoryInterface,
	intents IntentExtractorInterface,
	replies ReplyComposerInterface,
	resolver WindowResolverInterface,
	normalizer TypeNormalizerInterface,
	aggregator AggregatorInterface,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) QueryServiceInterface {
	return &queryService{
		repo:       repo,
		intents:    intents,
		replies:    replies,
		resolver:   resolver,
		normalizer: normalizer,
		aggregator: aggregator,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *queryService) Answer(ctx context.Context, question string) (string, error) {
	start := time.Now()
	s.logger.LogQueryStarted(ctx, operationAnswer, question)

	if strings.TrimSpace(question) == "" {
		return "", s.fail(ctx, operationAnswer, StepInput, ErrEmptyQuestion, start)
	}

	intent, err := s.intents.Extract(ctx, question)
	if err != nil {
		return "", s.fail(ctx, operationAnswer, StepIntentExtraction, fmt.Errorf("%w: %w", ErrIntentExtraction, err), start)
	}
	if intent == nil {
		return "", s.fail(ctx, operationAnswer, StepIntentExtraction, fmt.Errorf("%w: empty payload", ErrIntentExtraction), start)
	}
	if err := validation.GetValidator().Struct(intent); err != nil {
		return "", s.fail(ctx, operationAnswer, StepIntentExtraction, fmt.Errorf("%w: %w", ErrIntentExtraction, err), start)
	}

	result, step, err := s.summarize(ctx, intent.Params, false)
	if err != nil {
		return "", s.fail(ctx, operationAnswer, step, err, start)
	}

	reply, err := s.replies.Compose(ctx, result, question)
	if err != nil {
		return "", s.fail(ctx, operationAnswer, StepReplyComposition, fmt.Errorf("%w: %w", ErrReplyComposition, err), start)
	}
	if strings.TrimSpace(reply) == "" {
		return "", s.fail(ctx, operationAnswer, StepReplyComposition, fmt.Errorf("%w: empty reply", ErrReplyComposition), start)
	}

	s.succeed(ctx, operationAnswer, result, start)
	return reply, nil
}

func (s *queryService) Summarize(ctx context.Context, params models.IntentParams) (*models.SummaryResult, error) {
	start := time.Now()
	s.logger.LogQueryStarted(ctx, operationSummarize, "")

	result, step, err := s.summarize(ctx, params, true)
	if err != nil {
		return nil, s.fail(ctx, operationSummarize, step, err, start)
	}

	s.succeed(ctx, operationSummarize, result, start)
	return result, nil
}

// summarize runs normalization, window resolution, the store fetch and aggregation.
// On failure it also returns the step that failed. With strictType unset an unknown
// type label drops the type filter instead of failing the query.
func (s *queryService) summarize(ctx context.Context, params models.IntentParams, strictType bool) (*models.SummaryResult, string, error) {
	token := params.RangeOrDefault()
	s.logger.LogIntentResolved(ctx, token, params.Type)

	typeFilter, err := s.normalizer.Normalize(params.Type)
	if err != nil {
		if strictType || !errors.Is(err, ErrUnrecognizedTypeLabel) {
			return nil, StepTypeNormalization, err
		}
		s.metrics.IncrementCounter(MetricTypeFilterDropped, nil)
		typeFilter = nil
	}

	window, err := s.resolver.Resolve(token, s.now())
	if err != nil {
		return nil, StepWindowResolution, err
	}

	filters := models.TransactionFilters{Window: window, Type: typeFilter}
	if typeFilter != nil {
		filters.TypeLabels = s.normalizer.Labels(*typeFilter)
	}

	records, err := s.repo.FindByWindow(ctx, filters)
	if err != nil {
		return nil, StepRecordFetch, fmt.Errorf("%w: %w", ErrRecordStore, err)
	}

	result := s.aggregator.Aggregate(records)
	result.Window = window
	result.TypeFilter = typeFilter

	return result, "", nil
}

func (s *queryService) succeed(ctx context.Context, operation string, result *models.SummaryResult, start time.Time) {
	elapsed := time.Since(start)

	s.metrics.IncrementCounter(MetricQuerySuccess, map[string]string{"operation": operation})
	s.metrics.RecordProcessingTime(durationMetric(operation), elapsed)
	s.metrics.RecordGauge(MetricSummaryTransactions, float64(result.TransactionCount), nil)
	s.logger.LogQueryCompleted(ctx, operation, result, elapsed.Milliseconds())
}

func (s *queryService) fail(ctx context.Context, operation, step string, err error, start time.Time) error {
	elapsed := time.Since(start)

	s.metrics.IncrementCounter(MetricQueryFailed, map[string]string{"operation": operation, "step": step})
	s.metrics.RecordProcessingTime(durationMetric(operation), elapsed)
	s.logger.LogQueryFailed(ctx, operation, step, err, elapsed.Milliseconds())

	return &QueryError{Step: step, Err: err}
}

func durationMetric(operation string) string {
	if operation == operationSummarize {
		return MetricSummarizeDuration
	}
	return MetricAnswerDuration
}
