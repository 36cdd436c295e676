package handler

import (
	"wanderfeed/internal/domain/notification/service"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/pkg/response"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the aggregated activity timeline.
type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notifications.ListNotifications(middleware.CurrentUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, notifications)
}
