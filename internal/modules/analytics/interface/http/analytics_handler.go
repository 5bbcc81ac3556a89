package handler

import (
	"JobTracker/internal/middleware/jwt"
	"JobTracker/internal/modules/analytics/application/service"
	"JobTracker/pkg/back"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	svc service.AnalyticsService
}

func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Analytics GET /analytics
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	data, err := h.svc.Analytics(c.Request.Context(), jwt.UserID(c))
	back.Result(c, data, err)
}

// Dashboard GET /dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	data, err := h.svc.Dashboard(c.Request.Context(), jwt.UserID(c))
	back.Result(c, data, err)
}
