package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/internal/application/service"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// reportQuery parses the shared report query parameters. Absent dates stay
// nil so services can fall back to today / the current week.
func reportQuery(c *gin.Context) (date *time.Time, weekStart *time.Time, branchID *uuid.UUID, ok bool) {
	var req request.ReportQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, err)
		return nil, nil, nil, false
	}

	if req.Date != "" {
		d, appErr := parseDateParam("date", req.Date)
		if appErr != nil {
			response.Error(c, appErr)
			return nil, nil, nil, false
		}
		date = &d
	}
	if req.WeekStart != "" {
		ws, appErr := parseDateParam("week_start", req.WeekStart)
		if appErr != nil {
			response.Error(c, appErr)
			return nil, nil, nil, false
		}
		weekStart = &ws
	}

	branchID, appErr := parseBranchIDParam(req.BranchID)
	if appErr != nil {
		response.Error(c, appErr)
		return nil, nil, nil, false
	}

	return date, weekStart, branchID, true
}

// Dashboard returns today's and yesterday's summaries, the 7-day trend, top
// items and recent sales.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	metrics, err := h.reportService.GetDashboardMetrics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, metrics)
}

// DailySummary returns the summary for one branch-local day
func (h *ReportHandler) DailySummary(c *gin.Context) {
	date, _, branchID, ok := reportQuery(c)
	if !ok {
		return
	}

	day := time.Now().UTC()
	if date != nil {
		day = *date
	}

	summary, err := h.reportService.GetDailySummaryContract(c.Request.Context(), day, branchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// Weekly returns the full weekly report
func (h *ReportHandler) Weekly(c *gin.Context) {
	_, weekStart, branchID, ok := reportQuery(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetWeeklyReport(c.Request.Context(), weekStart, branchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// WeeklySummary returns the weekly summary contract shape
func (h *ReportHandler) WeeklySummary(c *gin.Context) {
	_, weekStart, branchID, ok := reportQuery(c)
	if !ok {
		return
	}

	summary, err := h.reportService.GetWeeklySummaryContract(c.Request.Context(), weekStart, branchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// WeeklySummaryExport returns the weekly summary as a downloadable file,
// CSV or XLSX depending on the format query parameter (XLSX by default).
func (h *ReportHandler) WeeklySummaryExport(c *gin.Context) {
	_, weekStart, branchID, ok := reportQuery(c)
	if !ok {
		return
	}

	switch format := c.DefaultQuery("format", "xlsx"); format {
	case "csv":
		csv, err := h.reportService.GetWeeklyCSV(c.Request.Context(), weekStart, branchID)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="weekly-summary.csv"`)
		c.Data(200, "text/csv; charset=utf-8", []byte(csv))
	case "xlsx":
		workbook, err := h.reportService.GetWeeklySummaryXLSX(c.Request.Context(), weekStart, branchID)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="weekly-summary.xlsx"`)
		c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
	default:
		response.Error(c, apperror.NewValidation([]apperror.FieldError{
			{Field: "format", Message: "must be csv or xlsx"},
		}))
	}
}

// WeeklyCSV returns the weekly report as CSV text
func (h *ReportHandler) WeeklyCSV(c *gin.Context) {
	_, weekStart, branchID, ok := reportQuery(c)
	if !ok {
		return
	}

	csv, err := h.reportService.GetWeeklyCSV(c.Request.Context(), weekStart, branchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="weekly-report.csv"`)
	c.Data(200, "text/csv; charset=utf-8", []byte(csv))
}

// WeeklyPDF returns the weekly report as a PDF document
func (h *ReportHandler) WeeklyPDF(c *gin.Context) {
	_, weekStart, branchID, ok := reportQuery(c)
	if !ok {
		return
	}

	doc, err := h.reportService.GetWeeklyPDF(c.Request.Context(), weekStart, branchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="weekly-report.pdf"`)
	c.Data(200, "application/pdf", doc)
}

// DailyPDF returns a daily summary as a PDF document
func (h *ReportHandler) DailyPDF(c *gin.Context) {
	date, _, branchID, ok := reportQuery(c)
	if !ok {
		return
	}

	day := time.Now().UTC()
	if date != nil {
		day = *date
	}

	doc, err := h.reportService.GetDailyPDF(c.Request.Context(), day, branchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="daily-summary.pdf"`)
	c.Data(200, "application/pdf", doc)
}
