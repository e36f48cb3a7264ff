// internal/handlers/notification.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shahalmix/shahalmix-backend/internal/services"
	"github.com/shahalmix/shahalmix-backend/internal/utils"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// GET /notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	utils.SuccessResponse(c, h.notifications.Active())
}

// DELETE /notifications/:id
func (h *NotificationHandler) DismissNotification(c *gin.Context) {
	if !h.notifications.Dismiss(c.Param("id")) {
		utils.NotFoundResponse(c, "notification")
		return
	}
	utils.SuccessResponse(c, gin.H{"dismissed": true})
}
