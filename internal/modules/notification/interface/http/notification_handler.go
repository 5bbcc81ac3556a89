package handler

import (
	"JobTracker/internal/middleware/jwt"
	"JobTracker/internal/modules/notification/application/service"
	"JobTracker/pkg/back"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	data, err := h.svc.List(c.Request.Context(), jwt.UserID(c))
	back.Result(c, data, err)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	data, err := h.svc.UnreadCount(c.Request.Context(), jwt.UserID(c))
	back.Result(c, data, err)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.svc.MarkRead(c.Request.Context(), jwt.UserID(c), c.Param("id"))
	back.Result(c, nil, err)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	err := h.svc.MarkAllRead(c.Request.Context(), jwt.UserID(c))
	back.Result(c, nil, err)
}
