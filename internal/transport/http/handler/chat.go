package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roninc32/smart-portfolio/internal/ai"
	"github.com/roninc32/smart-portfolio/internal/app"
	"github.com/roninc32/smart-portfolio/internal/model"
	"github.com/roninc32/smart-portfolio/internal/transport/http/response"
)

// User-safe completion failure messages. The provider's own error text
// stays in the logs.
const (
	msgCredential = "Invalid or missing Gemini API key. Please check GEMINI_API_KEY."
	msgQuota      = "API quota exceeded. Please try again later."
	msgUpstream   = "Failed to get AI response. Please try again."
	msgBadPayload = "Invalid request payload"
)

type ChatHandler struct {
	chatService *app.ChatService
}

// ChatRequest leaves both fields untyped; the service rejects
// non-string values the same way it rejects missing ones.
type ChatRequest struct {
	Message   any `json:"message"`
	SessionID any `json:"sessionId"`
}

type HistoryResponse struct {
	Messages []model.ChatMessage `json:"messages"`
	Note     string              `json:"note,omitempty"`
}

func NewChatHandler(chatService *app.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgBadPayload)
		return
	}

	result, err := h.chatService.Send(c.Request.Context(), app.SendInput{
		Message:   req.Message,
		SessionID: req.SessionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMessageRequired),
			errors.Is(err, app.ErrSessionRequired),
			errors.Is(err, app.ErrMessageEmpty):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ai.ErrMissingCredential):
			response.Error(c, http.StatusInternalServerError, msgCredential)
		case errors.Is(err, ai.ErrQuotaExceeded):
			response.Error(c, http.StatusInternalServerError, msgQuota)
		default:
			response.Error(c, http.StatusInternalServerError, msgUpstream)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ChatHandler) History(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		response.Error(c, http.StatusBadRequest, app.ErrSessionRequired.Error())
		return
	}

	transcript := h.chatService.Transcript(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, HistoryResponse{
		Messages: transcript.Messages,
		Note:     transcript.Note,
	})
}
