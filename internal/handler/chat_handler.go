package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edubot/edubot-api/internal/models"
	"github.com/edubot/edubot-api/internal/service"
	appErrors "github.com/edubot/edubot-api/pkg/errors"
	"github.com/edubot/edubot-api/pkg/response"
)

// ChatHandler exposes the chatbot endpoint.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler constructs ChatHandler.
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Dispatch godoc
// @Summary Route a free-text message to an intent handler
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body models.ChatMessage true "Chat message"
// @Success 200 {object} models.ChatReply
// @Router /chat [post]
func (h *ChatHandler) Dispatch(c *gin.Context) {
	var msg models.ChatMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	reply, err := h.chat.Dispatch(c.Request.Context(), msg)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
