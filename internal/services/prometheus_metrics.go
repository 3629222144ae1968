package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricQuerySuccess         = "query.success"
	MetricQueryFailed          = "query.failed"
	MetricCollaboratorRequest  = "collaborator.request"
	MetricAnswerDuration       = "query.answer"
	MetricSummarizeDuration    = "query.summarize"
	MetricChatCompletionTiming = "collaborator.chat_completion"
	MetricCircuitBreakerState  = "circuit_breaker.state"
	MetricSummaryTransactions  = "summary.transactions"
	MetricTypeFilterDropped    = "query.type_filter_dropped"
)

type PrometheusMetrics struct {
	queriesTotal         *prometheus.CounterVec
	queryFailures        *prometheus.CounterVec
	queryDuration        *prometheus.HistogramVec
	collaboratorRequests *prometheus.CounterVec
	collaboratorDuration prometheus.Histogram
	circuitBreakerState  *prometheus.GaugeVec
	summaryTransactions  prometheus.Histogram
	typeFiltersDropped   prometheus.Counter
}

// NewPrometheusMetrics registers the ledger metrics on reg. A nil reg means the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		queriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_queries_total",
				Help: "Total number of ledger queries handled",
			},
			[]string{"operation", "status"},
		),
		queryFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_query_failures_total",
				Help: "Total number of failed ledger queries by pipeline step",
			},
			[]string{"operation", "step"},
		),
		queryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_query_duration_milliseconds",
				Help:    "Ledger query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"operation"},
		),
		collaboratorRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_collaborator_requests_total",
				Help: "Total number of requests sent to external collaborators",
			},
			[]string{"collaborator", "status"},
		),
		collaboratorDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_collaborator_duration_seconds",
				Help:    "Chat completion round trip duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		summaryTransactions: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_summary_transactions",
				Help:    "Number of transactions aggregated per summary",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		typeFiltersDropped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_type_filters_dropped_total",
				Help: "Questions whose unrecognized type label was answered without a type filter",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case MetricQuerySuccess:
		m.queriesTotal.WithLabelValues(operation, "success").Inc()
	case MetricQueryFailed:
		m.queriesTotal.WithLabelValues(operation, "failed").Inc()
		m.queryFailures.WithLabelValues(operation, tags["step"]).Inc()
	case MetricCollaboratorRequest:
		if status := tags["status"]; status != "" {
			m.collaboratorRequests.WithLabelValues(tags["collaborator"], status).Inc()
		}
	case MetricTypeFilterDropped:
		m.typeFiltersDropped.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricAnswerDuration:
		m.queryDuration.WithLabelValues("answer").Observe(float64(duration.Milliseconds()))
	case MetricSummarizeDuration:
		m.queryDuration.WithLabelValues("summarize").Observe(float64(duration.Milliseconds()))
	case MetricChatCompletionTiming:
		m.collaboratorDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	case MetricSummaryTransactions:
		m.summaryTransactions.Observe(value)
	}
}
