package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ledger-agent/internal/models"
	"ledger-agent/internal/repositories/repository_mocks"
	"ledger-agent/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type QueryServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockTransactionRepositoryInterface
	intents *service_mocks.MockIntentExtractorInterface
	replies *service_mocks.MockReplyComposerInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	logger  *service_mocks.MockQueryLoggerInterface
	service *queryService
	ctx     context.Context
	now     time.Time
}

func (s *QueryServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.intents = service_mocks.NewMockIntentExtractorInterface(s.ctrl)
	s.replies = service_mocks.NewMockReplyComposerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.logger = service_mocks.NewMockQueryLoggerInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.logger.EXPECT().LogQueryStarted(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.logger.EXPECT().LogIntentResolved(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.logger.EXPECT().LogQueryCompleted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.logger.EXPECT().LogQueryFailed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	normalizer, err := NewTypeNormalizer(nil)
	s.Require().NoError(err)

	s.now = time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC)
	s.service = NewQueryService(
		s.repo,
		s.intents,
		s.replies,
		NewWindowResolver(),
		normalizer,
		NewAggregator(normalizer, "CNY"),
		s.metrics,
		s.logger,
	).(*queryService)
	s.service.now = func() time.Time { return s.now }
	s.ctx = context.Background()
}

func (s *QueryServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestQueryServiceSuite(t *testing.T) {
	suite.Run(t, new(QueryServiceSuite))
}

func marchRecords() []models.Transaction {
	return []models.Transaction{
		{Type: "income", NormalizedAmount: decimal.NewFromInt(1000)},
		{Type: "expense", NormalizedAmount: decimal.NewFromInt(400)},
		{Type: "支出", NormalizedAmount: decimal.NewFromInt(100)},
	}
}

func (s *QueryServiceSuite) TestAnswer_Success() {
	question := "这个月花了多少钱？"
	intent := &models.Intent{Name: "summary", Params: models.IntentParams{DateRange: models.RangeCurrentMonth}}
	window := models.TimeWindow{Start: "2024-03-01", End: "2024-03-31"}

	s.intents.EXPECT().Extract(s.ctx, question).Return(intent, nil)
	s.repo.EXPECT().
		FindByWindow(s.ctx, models.TransactionFilters{Window: window}).
		Return(marchRecords(), nil)
	s.replies.EXPECT().
		Compose(s.ctx, gomock.Any(), question).
		DoAndReturn(func(_ context.Context, result *models.SummaryResult, _ string) (string, error) {
			s.Equal(window, result.Window)
			s.Equal("1000.00", result.TotalIncome.StringFixed(2))
			s.Equal("500.00", result.TotalExpense.StringFixed(2))
			s.Equal("500.00", result.NetBalance.StringFixed(2))
			s.Equal(3, result.TransactionCount)
			s.Nil(result.TypeFilter)
			return "  本月净收支 500.00 元。", nil
		})

	reply, err := s.service.Answer(s.ctx, question)

	s.NoError(err)
	s.Equal("  本月净收支 500.00 元。", reply)
}

func (s *QueryServiceSuite) TestAnswer_MissingRangeDefaultsToCurrentMonth() {
	s.intents.EXPECT().Extract(s.ctx, "how am I doing").Return(&models.Intent{}, nil)
	s.repo.EXPECT().
		FindByWindow(s.ctx, models.TransactionFilters{Window: models.TimeWindow{Start: "2024-03-01", End: "2024-03-31"}}).
		Return(nil, nil)
	s.replies.EXPECT().Compose(s.ctx, gomock.Any(), "how am I doing").Return("Nothing yet.", nil)

	reply, err := s.service.Answer(s.ctx, "how am I doing")

	s.NoError(err)
	s.Equal("Nothing yet.", reply)
}

func (s *QueryServiceSuite) TestAnswer_TypeFilterPassesAllSynonyms() {
	intent := &models.Intent{Name: "summary", Params: models.IntentParams{DateRange: models.RangePreviousMonth, Type: " 支出 "}}

	s.intents.EXPECT().Extract(s.ctx, gomock.Any()).Return(intent, nil)
	s.repo.EXPECT().
		FindByWindow(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
			s.Equal(models.TimeWindow{Start: "2024-02-01", End: "2024-02-29"}, filters.Window)
			s.Require().NotNil(filters.Type)
			s.Equal(models.TransactionTypeExpense, *filters.Type)
			s.ElementsMatch([]string{"expense", "expenditure", "支出"}, filters.TypeLabels)
			return []models.Transaction{{Type: "expense", NormalizedAmount: decimal.NewFromInt(20)}}, nil
		})
	s.replies.EXPECT().
		Compose(s.ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, result *models.SummaryResult, _ string) (string, error) {
			s.Require().NotNil(result.TypeFilter)
			s.Equal(models.TransactionTypeExpense, *result.TypeFilter)
			return "ok", nil
		})

	_, err := s.service.Answer(s.ctx, "上个月支出多少")

	s.NoError(err)
}

func (s *QueryServiceSuite) TestAnswer_EmptyQuestion() {
	_, err := s.service.Answer(s.ctx, "   ")

	s.ErrorIs(err, ErrEmptyQuestion)
	s.Equal(StepInput, FailedStep(err))
}

func (s *QueryServiceSuite) TestAnswer_IntentExtractionFails() {
	s.intents.EXPECT().Extract(s.ctx, gomock.Any()).Return(nil, errors.New("upstream timeout"))

	reply, err := s.service.Answer(s.ctx, "this month")

	s.Empty(reply)
	s.ErrorIs(err, ErrIntentExtraction)
	s.Equal(StepIntentExtraction, FailedStep(err))
	s.Contains(err.Error(), "upstream timeout")
}

func (s *QueryServiceSuite) TestAnswer_NilIntentIsExtractionFailure() {
	s.intents.EXPECT().Extract(s.ctx, gomock.Any()).Return(nil, nil)

	_, err := s.service.Answer(s.ctx, "this month")

	s.ErrorIs(err, ErrIntentExtraction)
}

func (s *QueryServiceSuite) TestAnswer_UnsupportedIntentIsExtractionFailure() {
	s.intents.EXPECT().Extract(s.ctx, gomock.Any()).Return(&models.Intent{Name: "forecast"}, nil)

	_, err := s.service.Answer(s.ctx, "what will I spend next month")

	s.ErrorIs(err, ErrIntentExtraction)
}

func (s *QueryServiceSuite) TestAnswer_InvalidRangeToken() {
	intent := &models.Intent{Name: "summary", Params: models.IntentParams{DateRange: "last_quarter"}}
	s.intents.EXPECT().Extract(s.ctx, gomock.Any()).Return(intent, nil)

	reply, err := s.service.Answer(s.ctx, "last quarter")

	s.Empty(reply)
	s.ErrorIs(err, ErrInvalidRangeToken)
	s.Equal(StepWindowResolution, FailedStep(err))
}

func (s *QueryServiceSuite) TestAnswer_UnrecognizedTypeLabelDropsFilter() {
	intent := &models.Intent{Name: "summary", Params: models.IntentParams{Type: "all"}}
	s.intents.EXPECT().Extract(s.ctx, gomock.Any()).Return(intent, nil)
	s.repo.EXPECT().
		FindByWindow(s.ctx, models.TransactionFilters{Window: models.TimeWindow{Start: "2024-03-01", End: "2024-03-31"}}).
		Return(marchRecords(), nil)
	s.replies.EXPECT().
		Compose(s.ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, result *models.SummaryResult, _ string) (string, error) {
			s.Nil(result.TypeFilter)
			s.Equal(3, result.TransactionCount)
			return "everything this month", nil
		})

	reply, err := s.service.Answer(s.ctx, "all transactions this month")

	s.NoError(err)
	s.Equal("everything this month", reply)
}

func (s *QueryServiceSuite) TestAnswer_MalformedTypeLabelIsExtractionFailure() {
	intent := &models.Intent{Name: "summary", Params: models.IntentParams{Type: "expense; drop"}}
	s.intents.EXPECT().Extract(s.ctx, gomock.Any()).Return(intent, nil)

	_, err := s.service.Answer(s.ctx, "expenses this month")

	s.ErrorIs(err, ErrIntentExtraction)
	s.Equal(StepIntentExtraction, FailedStep(err))
}

func (s *QueryServiceSuite) TestAnswer_RecordStoreFails() {
	s.intents.EXPECT().Extract(s.ctx, gomock.Any()).Return(&models.Intent{Name: "summary"}, nil)
	s.repo.EXPECT().FindByWindow(s.ctx, gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := s.service.Answer(s.ctx, "this month")

	s.ErrorIs(err, ErrRecordStore)
	s.Equal(StepRecordFetch, FailedStep(err))
}

func (s *QueryServiceSuite) TestAnswer_ReplyCompositionFails() {
	s.intents.EXPECT().Extract(s.ctx, gomock.Any()).Return(&models.Intent{Name: "summary"}, nil)
	s.repo.EXPECT().FindByWindow(s.ctx, gomock.Any()).Return(marchRecords(), nil)
	s.replies.EXPECT().Compose(s.ctx, gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))

	reply, err := s.service.Answer(s.ctx, "this month")

	s.Empty(reply)
	s.ErrorIs(err, ErrReplyComposition)
	s.Equal(StepReplyComposition, FailedStep(err))
}

func (s *QueryServiceSuite) TestAnswer_BlankReplyIsCompositionFailure() {
	s.intents.EXPECT().Extract(s.ctx, gomock.Any()).Return(&models.Intent{Name: "summary"}, nil)
	s.repo.EXPECT().FindByWindow(s.ctx, gomock.Any()).Return(nil, nil)
	s.replies.EXPECT().Compose(s.ctx, gomock.Any(), gomock.Any()).Return(" \n", nil)

	_, err := s.service.Answer(s.ctx, "this month")

	s.ErrorIs(err, ErrReplyComposition)
}

func (s *QueryServiceSuite) TestSummarize_Success() {
	s.repo.EXPECT().
		FindByWindow(s.ctx, models.TransactionFilters{Window: models.TimeWindow{Start: "2024-03-24", End: "2024-03-31"}}).
		Return(marchRecords(), nil)

	result, err := s.service.Summarize(s.ctx, models.IntentParams{DateRange: models.RangeLast7Days})

	s.NoError(err)
	s.Equal("500.00", result.NetBalance.StringFixed(2))
	s.Equal(3, result.TransactionCount)
}

func (s *QueryServiceSuite) TestSummarize_InvalidRangeToken() {
	result, err := s.service.Summarize(s.ctx, models.IntentParams{DateRange: "last_quarter"})

	s.Nil(result)
	s.ErrorIs(err, ErrInvalidRangeToken)
}

func (s *QueryServiceSuite) TestSummarize_UnrecognizedTypeLabel() {
	result, err := s.service.Summarize(s.ctx, models.IntentParams{Type: "transfer"})

	s.Nil(result)
	s.ErrorIs(err, ErrUnrecognizedTypeLabel)
	s.Equal(StepTypeNormalization, FailedStep(err))
}

func (s *QueryServiceSuite) TestSummarize_RecordsMetricsAndLogs() {
	ctrl := gomock.NewController(s.T())
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	logger := service_mocks.NewMockQueryLoggerInterface(ctrl)
	s.service.metrics = metrics
	s.service.logger = logger

	s.repo.EXPECT().FindByWindow(s.ctx, gomock.Any()).Return(marchRecords(), nil)

	gomock.InOrder(
		logger.EXPECT().LogQueryStarted(s.ctx, "summarize", ""),
		logger.EXPECT().LogIntentResolved(s.ctx, models.RangeCurrentMonth, ""),
		metrics.EXPECT().IncrementCounter(MetricQuerySuccess, map[string]string{"operation": "summarize"}),
		metrics.EXPECT().RecordProcessingTime(MetricSummarizeDuration, gomock.Any()),
		metrics.EXPECT().RecordGauge(MetricSummaryTransactions, float64(3), nil),
		logger.EXPECT().LogQueryCompleted(s.ctx, "summarize", gomock.Any(), gomock.Any()),
	)

	_, err := s.service.Summarize(s.ctx, models.IntentParams{})

	s.NoError(err)
}

func (s *QueryServiceSuite) TestQueryError_Message() {
	err := &QueryError{Step: StepRecordFetch, Err: ErrRecordStore}

	s.Equal("record_fetch: record store query failed", err.Error())
	s.Equal("", FailedStep(errors.New("plain")))
}
