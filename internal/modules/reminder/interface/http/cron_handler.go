package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"JobTracker/internal/modules/reminder/application/dto/respond"
	"JobTracker/internal/modules/reminder/application/service"
	"JobTracker/pkg/back"
	"JobTracker/pkg/xerr"
	"JobTracker/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CronHandler struct {
	svc    service.ReminderService
	secret string
}

// NewCronHandler secret 为空时不校验
func NewCronHandler(svc service.ReminderService, secret string) *CronHandler {
	return &CronHandler{svc: svc, secret: secret}
}

func (h *CronHandler) Reminders(c *gin.Context) {
	if h.secret != "" {
		want := "Bearer " + h.secret
		if subtle.ConstantTimeCompare([]byte(c.GetHeader("Authorization")), []byte(want)) != 1 {
			back.Error(c, xerr.Unauthorized, "Unauthorized")
			return
		}
	}

	res, err := h.svc.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrScanInProgress) {
			back.Error(c, xerr.Conflict, "Reminder scan already in progress")
			return
		}
		zlog.Error("cron reminder error", zap.Error(err))
		back.Error(c, xerr.InternalServerError, xerr.ErrServerError.Message)
		return
	}

	c.JSON(http.StatusOK, respond.RunRespond{
		Success:   true,
		Scanned:   res.Scanned,
		Processed: res.Processed,
		Failed:    res.Failed,
		Timestamp: res.Timestamp,
	})
}
