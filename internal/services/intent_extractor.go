package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ledger-agent/internal/dto"
	"ledger-agent/internal/models"
)

var (
	ErrMalformedIntent = errors.New("intent payload is not valid JSON")
)

const intentSystemPrompt = "你是一个专业的意图识别助手，只返回 JSON 格式。"

const intentPromptTemplate = `你是一个账本数据分析助手。用户的问题是："%s"

请识别用户的意图和参数，只返回 JSON 格式，不要其他文字。

可用的意图类型：
- summary: 汇总概览（如：总支出、总收入、净收支）

可用的时间范围参数：
- current_month: 本月
- previous_month: 上月
- last_7_days: 最近7天
- last_30_days: 最近30天

可选的类型参数 type：income（收入）或 expense（支出）。用户只关心其中一类时才填写。

如果用户没有明确指定时间，默认使用 current_month。

返回格式：
{
    "intent": "summary",
    "params": {
        "date_range": "current_month"
    }
}
`

type llmIntentExtractor struct {
	client      ChatCompletionClientInterface
	temperature float64
}

// NewLLMIntentExtractor asks the chat model for a JSON intent
func NewLLMIntentExtractor(client ChatCompletionClientInterface, temperature float64) IntentExtractorInterface {
	return &llmIntentExtractor{
		client:      client,
		temperature: temperature,
	}
}

func (e *llmIntentExtractor) Extract(ctx context.Context, question string) (*models.Intent, error) {
	content, err := e.client.Complete(ctx, dto.ChatCompletionRequest{
		Messages: []dto.ChatMessage{
			{Role: dto.ChatRoleSystem, Content: intentSystemPrompt},
			{Role: dto.ChatRoleUser, Content: fmt.Sprintf(intentPromptTemplate, question)},
		},
		Temperature:    e.temperature,
		ResponseFormat: dto.JSONObjectFormat(),
	})
	if err != nil {
		return nil, err
	}

	return parseIntent(content)
}

// parseIntent decodes the first JSON object in content, ignoring any prose or code fences around it
func parseIntent(content string) (*models.Intent, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: %q", ErrMalformedIntent, content)
	}

	var intent models.Intent
	if err := json.Unmarshal([]byte(content[start:end+1]), &intent); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedIntent, err)
	}

	intent.Params.DateRange = models.RangeToken(strings.TrimSpace(string(intent.Params.DateRange)))
	intent.Params.Type = strings.TrimSpace(intent.Params.Type)
	return &intent, nil
}

type keywordRule struct {
	token   models.RangeToken
	phrases []string
}

// Checked in order; the first rule with a matching phrase wins.
var keywordRules = []keywordRule{
	{models.RangePreviousMonth, []string{"上个月", "上月", "last month", "previous month"}},
	{models.RangeLast7Days, []string{"最近7天", "近7天", "过去7天", "最近一周", "近一周", "过去一周", "last 7 days", "past 7 days", "last week", "past week"}},
	{models.RangeLast30Days, []string{"最近30天", "近30天", "过去30天", "最近一个月", "近一个月", "last 30 days", "past 30 days", "past month"}},
	{models.RangeCurrentMonth, []string{"本月", "这个月", "当月", "this month", "current month"}},
}

type keywordIntentExtractor struct{}

// NewKeywordIntentExtractor matches fixed phrases and needs no network access.
// It never sets a type filter.
func NewKeywordIntentExtractor() IntentExtractorInterface {
	return &keywordIntentExtractor{}
}

func (e *keywordIntentExtractor) Extract(ctx context.Context, question string) (*models.Intent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := strings.ToLower(question)
	intent := &models.Intent{Name: models.IntentSummary}

	for _, rule := range keywordRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(text, phrase) {
				intent.Params.DateRange = rule.token
				return intent, nil
			}
		}
	}

	return intent, nil
}
