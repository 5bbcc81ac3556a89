package handler

import (
	"JobTracker/internal/middleware/jwt"
	"JobTracker/internal/modules/application/application/dto/request"
	"JobTracker/internal/modules/application/application/service"
	"JobTracker/internal/modules/application/domain/entity"
	"JobTracker/pkg/back"
	"JobTracker/pkg/xerr"
	"JobTracker/pkg/zlog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	svc service.ApplicationService
}

func NewApplicationHandler(svc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	var req request.ListApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.List(c.Request.Context(), jwt.UserID(c), req)
	back.Result(c, data, err)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	data, err := h.svc.Get(c.Request.Context(), jwt.UserID(c), c.Param("id"))
	back.Result(c, data, err)
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req request.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Debug("create application bind failed", zap.Error(err))
		back.Result(c, nil, xerr.FromBindError(err, request.ApplicationMessages))
		return
	}
	data, err := h.svc.Create(c.Request.Context(), jwt.UserID(c), req)
	if err != nil {
		back.Result(c, nil, err)
		return
	}
	back.Created(c, data)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	var req request.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		back.Result(c, nil, xerr.FromBindError(err, request.ApplicationMessages))
		return
	}
	data, err := h.svc.Update(c.Request.Context(), jwt.UserID(c), c.Param("id"), req)
	back.Result(c, data, err)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		back.Error(c, xerr.BadRequest, "Invalid status")
		return
	}
	data, err := h.svc.UpdateStatus(c.Request.Context(), jwt.UserID(c), c.Param("id"), entity.Status(req.Status))
	back.Result(c, data, err)
}

func (h *ApplicationHandler) Archive(c *gin.Context) {
	var req request.ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	err := h.svc.Archive(c.Request.Context(), jwt.UserID(c), c.Param("id"), *req.Archived)
	back.Result(c, nil, err)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), jwt.UserID(c), c.Param("id"))
	back.Result(c, nil, err)
}

func (h *ApplicationHandler) Search(c *gin.Context) {
	data, err := h.svc.Search(c.Request.Context(), jwt.UserID(c), c.Query("q"))
	back.Result(c, data, err)
}

func (h *ApplicationHandler) QuickAdd(c *gin.Context) {
	var req request.QuickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		back.Error(c, xerr.BadRequest, "text is required")
		return
	}
	back.Success(c, h.svc.QuickAdd(c.Request.Context(), req.Text))
}

func (h *ApplicationHandler) Import(c *gin.Context) {
	var req request.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	back.Success(c, h.svc.Import(c.Request.Context(), jwt.UserID(c), req.Applications))
}

func (h *ApplicationHandler) Export(c *gin.Context) {
	file, err := h.svc.Export(c.Request.Context(), jwt.UserID(c), c.DefaultQuery("format", "json"))
	if err != nil {
		back.Result(c, nil, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
