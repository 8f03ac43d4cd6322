package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pvicentin/taskreports/internal/core/domain"
	"github.com/pvicentin/taskreports/internal/core/services"
)

type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("", h.Generate)
		reports.GET("/weekly", h.Weekly)
		reports.GET("/monthly", h.Monthly)
		reports.GET("/annual", h.Annual)
		reports.GET("/suggestions", h.Suggestions)
	}
}

// Generate handles the generic entry point: a report-type token plus
// optional explicit bounds and an optional user filter.
func (h *ReportHandler) Generate(c *gin.Context) {
	input := services.GenerateReportInput{
		ReportType: c.Query("type"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		UserID:     c.Query("user_id"),
	}

	report, err := h.svc.Generate(c.Request.Context(), input)
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Weekly(c *gin.Context) {
	weekStart := c.Query("week_start")
	if weekStart == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start is required, expected YYYY-MM-DD"})
		return
	}

	report, err := h.svc.WeeklyReport(c.Request.Context(), weekStart, c.Query("user_id"))
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Monthly(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer"})
		return
	}

	report, err := h.svc.MonthlyReport(c.Request.Context(), year, month, c.Query("user_id"))
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Annual(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}

	report, err := h.svc.AnnualReport(c.Request.Context(), year, c.Query("user_id"))
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Suggestions(c *gin.Context) {
	suggestions, err := h.svc.DateSuggestions(c.Query("type"))
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func respondReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrStorage):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
