package handler

import (
	"JobTracker/internal/middleware/jwt"
	"JobTracker/internal/modules/application/application/dto/request"
	"JobTracker/internal/modules/application/application/service"
	"JobTracker/pkg/back"
	"JobTracker/pkg/xerr"

	"github.com/gin-gonic/gin"
)

var interviewMessages = map[string]string{
	"ApplicationID": "applicationId is required",
	"RoundNumber":   "roundNumber must be between 1 and 20",
}

type InterviewHandler struct {
	svc service.InterviewService
}

func NewInterviewHandler(svc service.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

func (h *InterviewHandler) Create(c *gin.Context) {
	var req request.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		back.Result(c, nil, xerr.FromBindError(err, interviewMessages))
		return
	}
	data, err := h.svc.Create(c.Request.Context(), jwt.UserID(c), req)
	if err != nil {
		back.Result(c, nil, err)
		return
	}
	back.Created(c, data)
}

func (h *InterviewHandler) Update(c *gin.Context) {
	var req request.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		back.Result(c, nil, xerr.FromBindError(err, interviewMessages))
		return
	}
	data, err := h.svc.Update(c.Request.Context(), jwt.UserID(c), c.Param("id"), req)
	back.Result(c, data, err)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), jwt.UserID(c), c.Param("id"))
	back.Result(c, nil, err)
}
