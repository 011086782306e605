package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/core/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
	"github.com/stayfolio/hotel_pms_app/internal/middleware"
)

// assistantHandler handles HTTP requests for the admin assistant.
type assistantHandler struct {
	assistantService portssvc.AssistantSvcFacade
}

func newAssistantHandler(as portssvc.AssistantSvcFacade) *assistantHandler {
	return &assistantHandler{assistantService: as}
}

// registerAssistantRoutes registers the assistant chat route. Skipped entirely
// when no model client is configured.
func registerAssistantRoutes(rg *gin.RouterGroup, assistantService portssvc.AssistantSvcFacade) {
	if assistantService == nil {
		return
	}
	h := newAssistantHandler(assistantService)
	rg.POST("/assistant/chat", h.chat)
}

// chat godoc
// @Summary Chat with the admin assistant
// @Description Runs the bounded tool-execution loop against the configured model
// @Tags assistant
// @Accept json
// @Produce json
// @Param chat body dto.ChatRequest true "Conversation so far"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 429 {object} map[string]string "Upstream model rate limited or quota exhausted"
// @Failure 502 {object} map[string]string "Assistant could not complete"
// @Security BearerAuth
// @Router /assistant/chat [post]
func (h *assistantHandler) chat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Chat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.assistantService.Chat(c.Request.Context(), tc, req)
	if err != nil {
		switch {
		case errors.Is(err, portssvc.ErrRateLimited), errors.Is(err, portssvc.ErrQuotaExhausted):
			logger.Warn("Assistant upstream unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrToolLoopLimit):
			logger.Warn("Assistant hit tool loop limit")
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			logger.Error("Assistant chat failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant could not complete"})
		}
		return
	}

	logger.Info("Assistant replied", slog.Int("tool_rounds", resp.ToolRounds))
	c.JSON(http.StatusOK, resp)
}
