package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
	"github.com/SscSPs/cuzdan_backend/internal/middleware"
	"github.com/SscSPs/cuzdan_backend/internal/utils/report"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the dashboard and the analytics reports.
type reportingHandler struct {
	dashboardService portssvc.DashboardSvc
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(ds portssvc.DashboardSvc, rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		dashboardService: ds,
		reportingService: rs,
	}
}

// registerReportingRoutes registers the dashboard and report routes.
func registerReportingRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(dashboardService, reportingService)

	rg.GET("/dashboard", h.getDashboard)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("", h.getReport)
		reportingGroup.GET("/export", h.exportReport)
	}
}

// getDashboard godoc
// @Summary Home screen summary
// @Description Balances, this month against last month, goal counts, budget alerts and recent transactions.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// getReport godoc
// @Summary Generate an analytics report
// @Description Income and expense totals, per-category shares and the monthly trend. The window defaults to the last 30 days.
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.Report
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports [get]
func (h *reportingHandler) getReport(c *gin.Context) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, err)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rep, err := h.reportingService.GetReport(c.Request.Context(), userID, params.From, params.To)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Report generated",
		slog.Int("income_categories", len(rep.IncomeByCategory)),
		slog.Int("expense_categories", len(rep.ExpenseByCategory)))
	c.JSON(http.StatusOK, rep)
}

// exportReport godoc
// @Summary Export a report as Excel
// @Description Same window rules as the JSON report. Returns an .xlsx workbook.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to export report"
// @Security BearerAuth
// @Router /reports/export [get]
func (h *reportingHandler) exportReport(c *gin.Context) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, err)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// Buffered so a failure halfway through can still be answered with JSON.
	var buf bytes.Buffer
	filename, err := h.reportingService.ExportReportXLSX(c.Request.Context(), userID, params.From, params.To, &buf)
	if err != nil {
		respondError(c, err, "Failed to export report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, report.ContentType, buf.Bytes())
}
