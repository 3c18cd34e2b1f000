package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edubot/edubot-api/internal/service"
	"github.com/edubot/edubot-api/pkg/response"
)

// NotificationHandler exposes notification endpoints.
type NotificationHandler struct {
	notifications *service.NotificationService
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags Notificaciones
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Envelope
// @Router /notificaciones/{id}/leida [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if err := h.notifications.MarkRead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id, "leido": true}, nil)
}
