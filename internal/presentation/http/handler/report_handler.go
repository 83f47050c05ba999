package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meditrack/pharmacy-pos-api/internal/application/service"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/dto/response"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Daily handles the daily sales report; date defaults to today
func (h *ReportHandler) Daily(c *gin.Context) {
	var date *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := h.reportService.ParseDay(dateStr)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	report, err := h.reportService.Daily(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily report generated successfully", report)
}
