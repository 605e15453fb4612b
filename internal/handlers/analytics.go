package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitroast/gitroast/internal/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Report returns the in-memory event log with its per-category summary
func (h *AnalyticsHandler) Report(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.Report())
}
