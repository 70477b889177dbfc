package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/cleanup/internal/server/http/dto"
)

// NotificationHandler serves the notification log.
type NotificationHandler struct {
	facade NotificationFacade
}

func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.facade.Notifications(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(notifications) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, dto.NotificationResponse{ID: n.ID, Message: n.Message, At: n.At})
	}
	c.JSON(http.StatusOK, response)
}

// Clear handles DELETE /api/notifications.
func (h *NotificationHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearNotifications(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
