package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/export"
	"github.com/hisabiq/hisab_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for aggregate reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// trialBalance godoc
// @Summary Trial balance report
// @Description Per-account posted debit and credit totals for a date range. Pass format=xlsx for a workbook download.
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to query string true "Range end (YYYY-MM-DD)"
// @Param   format query string false "json (default) or xlsx"
// @Success 200 {array} domain.TrialBalanceRow
// @Failure 400 {object} map[string]string "Invalid date range"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	const dateLayout = "2006-01-02"
	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a date in YYYY-MM-DD form"})
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be a date in YYYY-MM-DD form"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return
	}

	companyID := c.Param("companyID")
	rows, err := h.reportingService.TrialBalance(c.Request.Context(), companyID, userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if c.Query("format") == "xlsx" {
		workbook, err := export.TrialBalanceWorkbook(rows, from, to)
		if err != nil {
			logger.Error("Failed to build trial balance workbook", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=trial-balance-%s.xlsx", to.Format(dateLayout)))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := workbook.Write(c.Writer); err != nil {
			logger.Error("Failed to stream trial balance workbook", slog.String("error", err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, rows)
}

// orphanedEntries godoc
// @Summary List entries whose header exists with zero lines
// @Description Reconciliation check for partial-write states; admin only
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {array} domain.OrphanedEntry
// @Security BearerAuth
// @Router /companies/{companyID}/reports/orphaned-entries [get]
func (h *reportingHandler) orphanedEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	orphans, err := h.reportingService.FindOrphanedEntries(c.Request.Context(), c.Param("companyID"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orphans)
}

// registerReportingRoutes registers report routes under the company scope.
func registerReportingRoutes(companies *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := companies.Group("/:companyID/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/orphaned-entries", h.orphanedEntries)
	}
}
