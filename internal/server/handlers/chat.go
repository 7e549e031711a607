package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/assistant"
)

// ChatHandler handles the assistant widget HTTP endpoints.
type ChatHandler struct {
	svc    *assistant.Service
	logger *zap.Logger
}

// NewChatHandler constructs the HTTP handler adapter.
func NewChatHandler(svc *assistant.Service, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{svc: svc, logger: logger}
}

type chatMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// Messages returns the conversation log, oldest first.
func (h *ChatHandler) Messages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.svc.Messages()})
}

// Send appends a user message. The bot reply lands in the log after the
// configured delay, so the response only carries the user entry.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	msg, err := h.svc.Send(req.Text)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty message"})
			return
		}
		h.logger.Error("failed sending chat message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": msg})
}

// Open marks the widget as visible and seeds the greeting if needed.
func (h *ChatHandler) Open(c *gin.Context) {
	h.svc.Open()
	c.Status(http.StatusNoContent)
}

// Close hides the widget and cancels pending bot replies.
func (h *ChatHandler) Close(c *gin.Context) {
	h.svc.Close()
	c.Status(http.StatusNoContent)
}
