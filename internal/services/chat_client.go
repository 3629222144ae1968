package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ledger-agent/internal/config"
	"ledger-agent/internal/dto"
)

var (
	ErrChatCompletion   = errors.New("chat completion request failed")
	ErrEmptyCompletion  = errors.New("chat completion returned no content")
	ErrMissingLLMAPIKey = errors.New("LLM API key is not configured")
)

const chatCollaborator = "chat_completion"

type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	return t.base.RoundTrip(req)
}

// ChatClient talks to an OpenAI-compatible chat completion endpoint
type ChatClient struct {
	config  config.LLMConfig
	client  *http.Client
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewChatClient creates a chat completion client. breaker and metrics may be nil.
func NewChatClient(
	cfg config.LLMConfig,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) (ChatCompletionClientInterface, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingLLMAPIKey
	}
	if logger == nil {
		logger = slog.Default()
	}

	transport := &AuthTransport{
		apiKey: cfg.APIKey,
		base:   http.DefaultTransport,
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}

	return &ChatClient{
		config:  cfg,
		client:  client,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}, nil
}

func (c *ChatClient) buildRequest(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		c.config.BaseURL+path,
		buf,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *ChatClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorContext(req.Context(),
			"chat completion request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func (c *ChatClient) Complete(ctx context.Context, request dto.ChatCompletionRequest) (string, error) {
	if c.breaker != nil && c.breaker.IsOpen() {
		c.record("rejected", 0)
		return "", fmt.Errorf("%w: %w", ErrChatCompletion, ErrCircuitBreakerOpen)
	}

	if request.Model == "" {
		request.Model = c.config.Model
	}

	req, err := c.buildRequest(ctx, http.MethodPost, "/chat/completions", request)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrChatCompletion, err)
	}

	start := time.Now()
	resp, body, err := c.do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.failure(elapsed)
		return "", fmt.Errorf("%w: %w", ErrChatCompletion, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		c.success(elapsed)

		var completion dto.ChatCompletionResponse
		if err := json.Unmarshal(body, &completion); err != nil {
			return "", fmt.Errorf("%w: decode response: %w", ErrChatCompletion, err)
		}
		if len(completion.Choices) == 0 {
			return "", ErrEmptyCompletion
		}

		content := strings.TrimSpace(completion.Choices[0].Message.Content)
		if content == "" {
			return "", ErrEmptyCompletion
		}
		return content, nil

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		c.failure(elapsed)
	default:
		// 4xx other than 429 is a request problem, not an unhealthy upstream
		c.success(elapsed)
	}

	message := string(body)
	var errResp dto.ChatErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	}

	c.logger.ErrorContext(ctx,
		"chat completion error",
		"status", resp.StatusCode,
		"message", message,
	)

	return "", fmt.Errorf("%w: status %d: %s", ErrChatCompletion, resp.StatusCode, message)
}

func (c *ChatClient) success(elapsed time.Duration) {
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
	c.record("success", elapsed)
}

func (c *ChatClient) failure(elapsed time.Duration) {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
	c.record("failed", elapsed)
}

func (c *ChatClient) record(status string, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.IncrementCounter(MetricCollaboratorRequest, map[string]string{
		"collaborator": chatCollaborator,
		"status":       status,
	})
	if elapsed > 0 {
		c.metrics.RecordProcessingTime(MetricChatCompletionTiming, elapsed)
	}
	if c.breaker != nil {
		c.metrics.RecordGauge(MetricCircuitBreakerState, float64(c.breaker.GetState()), map[string]string{
			"service": chatCollaborator,
		})
	}
}
