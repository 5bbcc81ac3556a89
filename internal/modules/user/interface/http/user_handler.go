package handler

import (
	"JobTracker/internal/middleware/jwt"
	"JobTracker/internal/modules/user/application/dto/request"
	"JobTracker/internal/modules/user/application/service"
	"JobTracker/pkg/back"
	"JobTracker/pkg/xerr"
	"JobTracker/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Debug("register bind failed", zap.Error(err))
		back.Result(c, nil, xerr.FromBindError(err, request.RegisterMessages))
		return
	}
	data, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		back.Result(c, nil, err)
		return
	}
	back.Created(c, data)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.Login(c.Request.Context(), req)
	back.Result(c, data, err)
}

func (h *UserHandler) GetSettings(c *gin.Context) {
	data, err := h.svc.GetSettings(c.Request.Context(), jwt.UserID(c))
	back.Result(c, data, err)
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Debug("update settings bind failed", zap.Error(err))
		back.Result(c, nil, xerr.FromBindError(err, request.SettingsMessages))
		return
	}
	err := h.svc.UpdateSettings(c.Request.Context(), jwt.UserID(c), req)
	back.Result(c, nil, err)
}
