package server

import (
	"context"
	"fmt"
	"log/slog"

	"ledger-agent/internal/config"
	"ledger-agent/internal/models"
	"ledger-agent/internal/repositories"
	"ledger-agent/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

const llmServiceName = "llm"

// Pipeline is the wired query pipeline plus the pieces other surfaces reuse
type Pipeline struct {
	QueryService services.QueryServiceInterface
	Resolver     services.WindowResolverInterface
	Normalizer   services.TypeNormalizerInterface
	Generator    services.TransactionGeneratorInterface
}

// NewPipeline wires the query pipeline from configuration. The language model
// client is only built when one of the providers needs it.
func NewPipeline(cfg *config.Config, repo repositories.TransactionRepositoryInterface, reg prometheus.Registerer, logger *slog.Logger) (*Pipeline, error) {
	metrics := services.NewPrometheusMetrics(reg)
	queryLogger := services.NewQueryLogger(logger)

	normalizer, err := services.NewTypeNormalizer(cfg.Ledger.TypeSynonyms)
	if err != nil {
		return nil, fmt.Errorf("failed to build type normalizer: %w", err)
	}

	var client services.ChatCompletionClientInterface
	if cfg.Ledger.IntentProvider == config.IntentProviderLLM || cfg.Ledger.ReplyProvider == config.ReplyProviderLLM {
		breaker := services.NewCircuitBreaker(llmServiceName, cfg.CircuitBreaker,
			func(name string, from, to models.CircuitBreakerState) {
				queryLogger.LogCircuitBreakerStateChange(context.Background(), name, from.String(), to.String())
			})

		client, err = services.NewChatClient(cfg.LLM, breaker, metrics, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to build chat client: %w", err)
		}
	}

	var intents services.IntentExtractorInterface
	switch cfg.Ledger.IntentProvider {
	case config.IntentProviderKeyword:
		intents = services.NewKeywordIntentExtractor()
	default:
		intents = services.NewLLMIntentExtractor(client, cfg.LLM.IntentTemperature)
	}

	var replies services.ReplyComposerInterface
	switch cfg.Ledger.ReplyProvider {
	case config.ReplyProviderTemplate:
		replies = services.NewTemplateReplyComposer()
	default:
		replies = services.NewLLMReplyComposer(client, cfg.LLM.ReplyTemperature)
	}

	resolver := services.NewWindowResolver()
	aggregator := services.NewAggregator(normalizer, cfg.Ledger.ReportingCurrency)

	return &Pipeline{
		QueryService: services.NewQueryService(repo, intents, replies, resolver, normalizer, aggregator, metrics, queryLogger),
		Resolver:     resolver,
		Normalizer:   normalizer,
		Generator:    services.NewTransactionGenerator(cfg.Ledger.ReportingCurrency, 0),
	}, nil
}
