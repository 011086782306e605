// Package modelclient is the HTTP transport to the upstream chat model used by
// the admin assistant. The wire format is a plain JSON chat exchange; rate-limit
// and quota statuses map onto the assistant's sentinel errors so the retry policy
// can tell them apart.
package modelclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
)

// HTTPClient talks to a chat-completion endpoint over JSON.
type HTTPClient struct {
	url    string
	apiKey string
	client *http.Client
}

// New creates a model client for the given endpoint.
func New(url, apiKey string) *HTTPClient {
	return &HTTPClient{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

var _ portssvc.ModelClient = (*HTTPClient)(nil)

type wireRequest struct {
	Messages []dto.ChatMessage `json:"messages"`
}

type wireToolCall struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type wireResponse struct {
	Content   string         `json:"content"`
	ToolCalls []wireToolCall `json:"toolCalls"`
}

// Complete sends the conversation and returns the model's next turn.
func (c *HTTPClient) Complete(ctx context.Context, messages []dto.ChatMessage) (*portssvc.ModelResponse, error) {
	body, err := json.Marshal(wireRequest{Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("failed to encode model request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, portssvc.ErrRateLimited
	case http.StatusPaymentRequired:
		return nil, portssvc.ErrQuotaExhausted
	default:
		return nil, fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}

	out := &portssvc.ModelResponse{Content: wire.Content}
	for _, call := range wire.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, portssvc.ToolCall{
			ID:        call.ID,
			Name:      call.Name,
			Arguments: call.Arguments,
		})
	}
	return out, nil
}
