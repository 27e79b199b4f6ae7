package llm

import (
	"context"
	"time"
)

// Unified provider error codes, aligned with upstream HTTP status and
// retryability. The pipeline core never retries; retry policy belongs to the
// provider implementation.
type ErrorCode string

const (
	ErrInvalidRequest      ErrorCode = "LLM_INVALID_REQUEST"
	ErrUnauthorized        ErrorCode = "LLM_UNAUTHORIZED"
	ErrRateLimited         ErrorCode = "LLM_RATE_LIMITED"
	ErrQuotaExceeded       ErrorCode = "LLM_QUOTA_EXCEEDED"
	ErrContentFiltered     ErrorCode = "LLM_CONTENT_FILTERED"
	ErrUpstreamTimeout     ErrorCode = "LLM_UPSTREAM_TIMEOUT"
	ErrUpstreamError       ErrorCode = "LLM_UPSTREAM_ERROR"
	ErrProviderUnavailable ErrorCode = "LLM_PROVIDER_UNAVAILABLE"
)

type Error struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"http_status"`
	Retryable  bool      `json:"retryable"`
	Provider   string    `json:"provider,omitempty"`
}

func (e *Error) Error() string { return e.Message }

// GenerateRequest represents a single text-generation request.
type GenerateRequest struct {
	Prompt      string            `json:"prompt"`
	System      string            `json:"system,omitempty"`
	Model       string            `json:"model,omitempty"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
	Temperature float32           `json:"temperature,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// GenerateUsage represents token usage statistics.
type GenerateUsage struct {
	PromptTokens     int     `json:"prompt_tokens,omitempty"`
	CompletionTokens int     `json:"completion_tokens,omitempty"`
	TotalTokens      int     `json:"total_tokens,omitempty"`
	Cost             float64 `json:"cost,omitempty"` // USD
}

// GenerateResponse represents the response from a text-generation request.
type GenerateResponse struct {
	Provider  string        `json:"provider,omitempty"`
	Model     string        `json:"model"`
	Text      string        `json:"text"`
	Usage     GenerateUsage `json:"usage,omitempty"`
	CreatedAt time.Time     `json:"created_at,omitempty"`
}

// Provider defines the text-generation provider interface.
type Provider interface {
	// Generate issues a synchronous text-generation request.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Name returns the provider's unique identifier.
	Name() string
}
