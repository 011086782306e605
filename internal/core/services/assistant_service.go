package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
	"github.com/stayfolio/hotel_pms_app/internal/middleware"
)

// ErrToolLoopLimit is returned when the model keeps requesting tools past the
// iteration cap. The cap is a hard invariant, not a convention.
var ErrToolLoopLimit = errors.New("assistant tool loop exceeded iteration limit")

const (
	defaultMaxToolRounds  = 5
	defaultMaxAttempts    = 3
	defaultRetryBaseDelay = 500 * time.Millisecond
)

// AssistantConfig tunes the tool loop. Zero values fall back to the defaults.
type AssistantConfig struct {
	MaxToolRounds  int           // Hard cap on tool-execution iterations
	MaxAttempts    int           // Upstream call attempts before surfacing the error
	RetryBaseDelay time.Duration // First backoff delay; doubles per attempt
}

// assistantService drives the admin assistant's bounded tool-execution loop:
// await the model's turn, execute any requested tools, re-inject the results, and
// repeat until the model answers in plain text or the cap is hit.
type assistantService struct {
	model portssvc.ModelClient
	tools map[string]portssvc.Tool
	cfg   AssistantConfig
}

// NewAssistantService creates a new assistant service over the given model client
// and tool set.
func NewAssistantService(model portssvc.ModelClient, tools []portssvc.Tool, cfg AssistantConfig) portssvc.AssistantSvcFacade {
	if cfg.MaxToolRounds <= 0 {
		cfg.MaxToolRounds = defaultMaxToolRounds
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = defaultRetryBaseDelay
	}

	byName := make(map[string]portssvc.Tool, len(tools))
	for _, t := range tools {
		byName[t.Name()] = t
	}
	return &assistantService{model: model, tools: byName, cfg: cfg}
}

var _ portssvc.AssistantSvcFacade = (*assistantService)(nil)

// Chat runs the conversation until the model stops requesting tools or the
// iteration cap is reached.
func (s *assistantService) Chat(ctx context.Context, tc domain.TenantContext, req dto.ChatRequest) (*dto.ChatResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	messages := make([]dto.ChatMessage, len(req.Messages))
	copy(messages, req.Messages)

	for round := 0; round < s.cfg.MaxToolRounds; round++ {
		resp, err := s.completeWithRetry(ctx, messages)
		if err != nil {
			return nil, err
		}

		if len(resp.ToolCalls) == 0 {
			return &dto.ChatResponse{
				Message:    dto.ChatMessage{Role: "assistant", Content: resp.Content},
				ToolRounds: round,
			}, nil
		}

		if resp.Content != "" {
			messages = append(messages, dto.ChatMessage{Role: "assistant", Content: resp.Content})
		}
		for _, call := range resp.ToolCalls {
			result := s.executeTool(ctx, tc, call)
			messages = append(messages, dto.ChatMessage{Role: "tool", Content: result})
		}
		logger.Debug("Assistant tool round completed", slog.Int("round", round+1), slog.Int("tool_calls", len(resp.ToolCalls)))
	}

	logger.Warn("Assistant tool loop hit iteration limit", slog.Int("limit", s.cfg.MaxToolRounds))
	return nil, ErrToolLoopLimit
}

// executeTool runs one tool call. An unknown tool name yields an error result for
// the model rather than a failure, so a hallucinated tool cannot wedge the loop.
func (s *assistantService) executeTool(ctx context.Context, tc domain.TenantContext, call portssvc.ToolCall) string {
	logger := middleware.GetLoggerFromCtx(ctx)

	tool, ok := s.tools[call.Name]
	if !ok {
		logger.Warn("Assistant requested unknown tool", slog.String("tool", call.Name))
		return fmt.Sprintf("error: unknown tool %q", call.Name)
	}

	result, err := tool.Execute(ctx, tc, call.Arguments)
	if err != nil {
		logger.Warn("Assistant tool failed", slog.String("tool", call.Name), slog.String("error", err.Error()))
		return fmt.Sprintf("error: %s", err.Error())
	}
	return result
}

// completeWithRetry calls the model with exponential backoff. Rate-limit and
// generic errors are retried up to the attempt ceiling; quota exhaustion surfaces
// immediately.
func (s *assistantService) completeWithRetry(ctx context.Context, messages []dto.ChatMessage) (*portssvc.ModelResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	delay := s.cfg.RetryBaseDelay
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		resp, err := s.model.Complete(ctx, messages)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, portssvc.ErrQuotaExhausted) {
			return nil, err
		}
		lastErr = err

		if attempt == s.cfg.MaxAttempts {
			break
		}
		logger.Warn("Model call failed, backing off",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.Bool("rate_limited", errors.Is(err, portssvc.ErrRateLimited)),
			slog.String("error", err.Error()),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return nil, fmt.Errorf("model call failed after %d attempts: %w", s.cfg.MaxAttempts, lastErr)
}

// FolioLookupTool exposes read-only folio lookups to the assistant.
type FolioLookupTool struct {
	folioSvc portssvc.FolioSvcFacade
}

// NewFolioLookupTool creates the folio lookup tool over the folio service.
func NewFolioLookupTool(folioSvc portssvc.FolioSvcFacade) portssvc.Tool {
	return &FolioLookupTool{folioSvc: folioSvc}
}

func (t *FolioLookupTool) Name() string { return "get_folio" }

// Execute looks up a folio by ID and returns its aggregate state as JSON.
func (t *FolioLookupTool) Execute(ctx context.Context, tc domain.TenantContext, args map[string]any) (string, error) {
	folioID, _ := args["folioID"].(string)
	if folioID == "" {
		return "", fmt.Errorf("folioID argument is required")
	}

	folio, err := t.folioSvc.GetFolio(ctx, tc, folioID)
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(dto.ToFolioResponse(folio))
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
