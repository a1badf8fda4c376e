package handlers

import (
	"net/http"

	"onlyfame_backend/internal/services"
	"onlyfame_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		notifications.POST("/read", h.MarkAllAsRead)
	}
}

// MarkAllAsRead godoc
// @Summary Отметить все уведомления прочитанными
// @Tags Notifications
// @Produce json
// @Success 200 {object} dto.MarkReadResponse
// @Router /notifications/read [post]
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllAsRead(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MarkReadResponse{Message: "All notifications marked as read"})
}
