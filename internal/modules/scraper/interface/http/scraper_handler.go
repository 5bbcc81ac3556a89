package handler

import (
	"JobTracker/internal/modules/scraper/application/service"
	"JobTracker/pkg/back"

	"github.com/gin-gonic/gin"
)

type ScraperHandler struct {
	svc service.ScraperService
}

func NewScraperHandler(svc service.ScraperService) *ScraperHandler {
	return &ScraperHandler{svc: svc}
}

// Scrape GET /scrape-job?url=
func (h *ScraperHandler) Scrape(c *gin.Context) {
	data, err := h.svc.Scrape(c.Request.Context(), c.Query("url"))
	back.Result(c, data, err)
}
