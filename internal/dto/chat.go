package dto

// Wire types for an OpenAI-compatible /chat/completions endpoint.

const (
	ChatRoleSystem = "system"
	ChatRoleUser   = "user"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponseFormat struct {
	Type string `json:"type"`
}

type ChatCompletionRequest struct {
	Model          string              `json:"model"`
	Messages       []ChatMessage       `json:"messages"`
	Temperature    float64             `json:"temperature"`
	ResponseFormat *ChatResponseFormat `json:"response_format,omitempty"`
}

// JSONObjectFormat asks the model to reply with a single JSON object.
func JSONObjectFormat() *ChatResponseFormat {
	return &ChatResponseFormat{Type: "json_object"}
}

// ---------- Response ----------

type ChatCompletionResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   *ChatUsage   `json:"usage,omitempty"`
}

type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ---------- Error ----------

type ChatErrorResponse struct {
	Error ChatErrorDetail `json:"error"`
}

type ChatErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}
