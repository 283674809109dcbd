package handlers

import (
	"net/http"

	"fixel/database/repository"
	"fixel/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the in-app notification feed.
type NotificationHandler struct {
	Notifications repository.NotificationRepository
}

func NewNotificationHandler(notifications repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications}
}

func (h *NotificationHandler) ViewNotifications(c *gin.Context) {
	userID := c.GetString("userID")

	rows, err := h.Notifications.GetByUser(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, &utils.DependencyError{Op: "viewNotifications", Err: err})
		return
	}
	c.JSON(http.StatusOK, rows)
}
