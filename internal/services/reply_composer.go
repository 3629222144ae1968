package services

import (
	"context"
	"fmt"
	"strings"

	"ledger-agent/internal/dto"
	"ledger-agent/internal/models"
)

const (
	replySystemPromptZH = "你是一个专业的账本数据分析助手，用自然、友好的中文回复用户。"
	replySystemPromptEN = "You are a ledger analysis assistant. Reply to the user in natural, friendly English."
)

type llmReplyComposer struct {
	client      ChatCompletionClientInterface
	temperature float64
}

// NewLLMReplyComposer asks the chat model to phrase the summary. The reply language follows the question.
func NewLLMReplyComposer(client ChatCompletionClientInterface, temperature float64) ReplyComposerInterface {
	return &llmReplyComposer{
		client:      client,
		temperature: temperature,
	}
}

func (c *llmReplyComposer) Compose(ctx context.Context, result *models.SummaryResult, question string) (string, error) {
	system, prompt := replySystemPromptEN, englishReplyPrompt(result, question)
	if DetectLanguage(question) == LanguageChinese {
		system, prompt = replySystemPromptZH, chineseReplyPrompt(result, question)
	}

	content, err := c.client.Complete(ctx, dto.ChatCompletionRequest{
		Messages: []dto.ChatMessage{
			{Role: dto.ChatRoleSystem, Content: system},
			{Role: dto.ChatRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}

	return content, nil
}

func chineseReplyPrompt(result *models.SummaryResult, question string) string {
	unit := currencyUnit(result.Currency, LanguageChinese)

	var b strings.Builder
	fmt.Fprintf(&b, "用户的问题是：\"%s\"\n\n", question)
	b.WriteString("分析结果：\n")
	fmt.Fprintf(&b, "- 总收入：%s %s\n", result.TotalIncome.StringFixed(2), unit)
	fmt.Fprintf(&b, "- 总支出：%s %s\n", result.TotalExpense.StringFixed(2), unit)
	fmt.Fprintf(&b, "- 净收支：%s %s\n", result.NetBalance.StringFixed(2), unit)
	fmt.Fprintf(&b, "- 交易数量：%d 笔\n", result.TransactionCount)
	fmt.Fprintf(&b, "- 时间范围：%s 至 %s\n", result.Window.Start, result.Window.End)
	if result.TypeFilter != nil {
		fmt.Fprintf(&b, "- 类型筛选：%s\n", typeNameZH(*result.TypeFilter))
	}
	b.WriteString("\n请用自然、友好的中文回复用户的问题。回复要：\n")
	b.WriteString("1. 直接回答用户的问题\n")
	b.WriteString("2. 包含关键数据\n")
	b.WriteString("3. 语言简洁明了\n")
	b.WriteString("4. 不要重复说\"根据分析结果\"这类话\n\n")
	b.WriteString("直接开始回复，不要其他说明：\n")
	return b.String()
}

func englishReplyPrompt(result *models.SummaryResult, question string) string {
	unit := currencyUnit(result.Currency, LanguageEnglish)

	var b strings.Builder
	fmt.Fprintf(&b, "The user asked: \"%s\"\n\n", question)
	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "- Total income: %s %s\n", result.TotalIncome.StringFixed(2), unit)
	fmt.Fprintf(&b, "- Total expense: %s %s\n", result.TotalExpense.StringFixed(2), unit)
	fmt.Fprintf(&b, "- Net balance: %s %s\n", result.NetBalance.StringFixed(2), unit)
	fmt.Fprintf(&b, "- Transactions: %d\n", result.TransactionCount)
	fmt.Fprintf(&b, "- Period: %s to %s\n", result.Window.Start, result.Window.End)
	if result.TypeFilter != nil {
		fmt.Fprintf(&b, "- Type filter: %s\n", string(*result.TypeFilter))
	}
	b.WriteString("\nAnswer the question directly, include the key figures and keep it short.\n")
	b.WriteString("Do not say \"according to the analysis\". Start the reply immediately:\n")
	return b.String()
}

type templateReplyComposer struct{}

// NewTemplateReplyComposer renders fixed sentences and needs no network access
func NewTemplateReplyComposer() ReplyComposerInterface {
	return &templateReplyComposer{}
}

func (c *templateReplyComposer) Compose(ctx context.Context, result *models.SummaryResult, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if result == nil {
		return "", fmt.Errorf("nil summary result")
	}

	if DetectLanguage(question) == LanguageChinese {
		return chineseTemplateReply(result), nil
	}
	return englishTemplateReply(result), nil
}

func chineseTemplateReply(r *models.SummaryResult) string {
	unit := currencyUnit(r.Currency, LanguageChinese)
	period := fmt.Sprintf("%s 至 %s", r.Window.Start, r.Window.End)

	if r.TypeFilter != nil {
		total := r.TotalIncome
		if *r.TypeFilter == models.TransactionTypeExpense {
			total = r.TotalExpense
		}
		return fmt.Sprintf("%s期间共有 %d 笔%s，合计 %s %s。",
			period, r.TransactionCount, typeNameZH(*r.TypeFilter), total.StringFixed(2), unit)
	}

	return fmt.Sprintf("%s期间总收入 %s %s，总支出 %s %s，净收支 %s %s，共 %d 笔交易。",
		period,
		r.TotalIncome.StringFixed(2), unit,
		r.TotalExpense.StringFixed(2), unit,
		r.NetBalance.StringFixed(2), unit,
		r.TransactionCount)
}

func englishTemplateReply(r *models.SummaryResult) string {
	unit := currencyUnit(r.Currency, LanguageEnglish)
	period := fmt.Sprintf("From %s to %s", r.Window.Start, r.Window.End)

	if r.TypeFilter != nil {
		total := r.TotalIncome
		if *r.TypeFilter == models.TransactionTypeExpense {
			total = r.TotalExpense
		}
		return fmt.Sprintf("%s you had %d %s transactions totalling %s %s.",
			period, r.TransactionCount, string(*r.TypeFilter), total.StringFixed(2), unit)
	}

	return fmt.Sprintf("%s your total income was %s %s and total expense was %s %s, a net balance of %s %s across %d transactions.",
		period,
		r.TotalIncome.StringFixed(2), unit,
		r.TotalExpense.StringFixed(2), unit,
		r.NetBalance.StringFixed(2), unit,
		r.TransactionCount)
}

func currencyUnit(currency string, lang Language) string {
	if lang == LanguageChinese && (currency == "CNY" || currency == "") {
		return "元"
	}
	if currency == "" {
		return "CNY"
	}
	return currency
}

func typeNameZH(t models.TransactionType) string {
	if t == models.TransactionTypeExpense {
		return "支出"
	}
	return "收入"
}
