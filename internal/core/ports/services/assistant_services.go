package services

import (
	"context"
	"errors"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
)

// ErrRateLimited signals the upstream model rejected the call for rate limiting;
// the assistant retries these with exponential backoff.
var ErrRateLimited = errors.New("model rate limited")

// ErrQuotaExhausted signals the upstream quota is spent; never retried.
var ErrQuotaExhausted = errors.New("model quota exhausted")

// ToolCall is the model's request to run one named tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// ModelResponse is one model turn: either tool calls to execute or a final message.
type ModelResponse struct {
	Content   string
	ToolCalls []ToolCall
}

// ModelClient is the upstream chat-model transport. Implementations are external;
// the assistant only depends on this port.
type ModelClient interface {
	// Complete sends the conversation and returns the model's next turn.
	Complete(ctx context.Context, messages []dto.ChatMessage) (*ModelResponse, error)
}

// Tool is one callable admin operation exposed to the assistant.
type Tool interface {
	// Name is the identifier the model addresses the tool by.
	Name() string

	// Execute runs the tool under the caller's tenant scope and returns a textual
	// result for re-injection into the conversation.
	Execute(ctx context.Context, tc domain.TenantContext, args map[string]any) (string, error)
}

// AssistantSvcFacade runs the bounded tool-execution loop for the admin assistant.
type AssistantSvcFacade interface {
	// Chat drives the conversation until the model answers without tool calls or the
	// iteration cap is reached.
	Chat(ctx context.Context, tc domain.TenantContext, req dto.ChatRequest) (*dto.ChatResponse, error)
}
