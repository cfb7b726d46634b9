package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/eventops/event_finance_app/internal/apperrors"
	portssvc "github.com/eventops/event_finance_app/internal/core/ports/services"
	"github.com/eventops/event_finance_app/internal/dto"
	"github.com/eventops/event_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests related to financial reports.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// registerReportRoutes registers routes related to financial reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.POST("/generate", h.generateReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
	}
}

// generateReport godoc
// @Summary Generate a financial report
// @Description Computes and stores an immutable snapshot of the event's budget and sponsorship revenue totals
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   report body dto.GenerateReportRequest true "Report parameters"
// @Success 201 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /finance/reports/generate [post]
func (h *reportHandler) generateReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to generate report", slog.String("event_id", req.EventID))

	report, err := h.reportService.GenerateReport(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error generating report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate report in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	logger.Info("Report generated successfully", slog.String("report_id", report.ReportID))
	c.JSON(http.StatusCreated, dto.ToReportResponse(report))
}

// listReports godoc
// @Summary List financial reports
// @Description Retrieves stored reports, optionally filtered by event
// @Tags reports
// @Produce  json
// @Param   event_id query string false "Event ID"
// @Success 200 {object} dto.ListReportsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to list reports"
// @Router /finance/reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListReportsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListReports", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), params.EventID)
	if err != nil {
		logger.Error("Failed to list reports from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}

	logger.Info("Reports listed successfully", slog.Int("count", len(reports)))
	c.JSON(http.StatusOK, dto.ToListReportsResponse(reports))
}

// getReport godoc
// @Summary Get a financial report
// @Description Retrieves a single stored report by ID
// @Tags reports
// @Produce  json
// @Param   id path string true "Report ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Failed to retrieve report"
// @Router /finance/reports/{id} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportID := c.Param("id")

	logger = logger.With(slog.String("report_id", reportID))
	logger.Info("Received request to get report")

	report, err := h.reportService.GetReportByID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Report not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			logger.Error("Failed to get report from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}
