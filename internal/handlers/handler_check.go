package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
	"github.com/hisabiq/hisab_backend/internal/middleware"
)

// checkHandler handles HTTP requests for bank checks.
type checkHandler struct {
	checkService portssvc.CheckSvcFacade
}

func newCheckHandler(checkService portssvc.CheckSvcFacade) *checkHandler {
	return &checkHandler{checkService: checkService}
}

// createCheck godoc
// @Summary Record a bank check
// @Tags checks
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   check body dto.SaveCheckRequest true "Check details"
// @Success 201 {object} dto.CheckResponse
// @Security BearerAuth
// @Router /companies/{companyID}/checks [post]
func (h *checkHandler) createCheck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	check, err := h.checkService.CreateCheck(c.Request.Context(), c.Param("companyID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Check recorded", slog.String("check_id", check.CheckID), slog.String("check_number", check.CheckNumber))
	c.JSON(http.StatusCreated, dto.ToCheckResponse(check))
}

// getCheck godoc
// @Summary Get a check by ID
// @Tags checks
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   checkID path string true "Check ID"
// @Success 200 {object} dto.CheckResponse
// @Failure 404 {object} map[string]string "Check not found"
// @Security BearerAuth
// @Router /companies/{companyID}/checks/{checkID} [get]
func (h *checkHandler) getCheck(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	check, err := h.checkService.GetCheckByID(c.Request.Context(), c.Param("companyID"), c.Param("checkID"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckResponse(check))
}

// listChecks godoc
// @Summary List checks
// @Description Token-paginated on due date, optionally filtered by direction
// @Tags checks
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   direction query string false "INCOMING or OUTGOING"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListChecksResponse
// @Security BearerAuth
// @Router /companies/{companyID}/checks [get]
func (h *checkHandler) listChecks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}
	var direction *domain.CheckDirection
	if d := c.Query("direction"); d != "" {
		dir := domain.CheckDirection(d)
		direction = &dir
	}

	resp, err := h.checkService.ListChecks(c.Request.Context(), c.Param("companyID"), userID, direction, limit, nextToken)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateCheckStatus godoc
// @Summary Transition a check's status
// @Description Allowed transitions from ISSUED: CLEARED, BOUNCED or CANCELLED
// @Tags checks
// @Accept  json
// @Param   companyID path string true "Company ID"
// @Param   checkID path string true "Check ID"
// @Param   status body dto.UpdateCheckStatusRequest true "Target status"
// @Success 204 "Status updated"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Security BearerAuth
// @Router /companies/{companyID}/checks/{checkID}/status [patch]
func (h *checkHandler) updateCheckStatus(c *gin.Context) {
	var req dto.UpdateCheckStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.checkService.UpdateCheckStatus(c.Request.Context(), c.Param("companyID"), c.Param("checkID"), req.Status, userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// registerCheckRoutes registers check specific routes under the company scope.
func registerCheckRoutes(companies *gin.RouterGroup, checkService portssvc.CheckSvcFacade) {
	h := newCheckHandler(checkService)

	checks := companies.Group("/:companyID/checks")
	{
		checks.POST("", h.createCheck)
		checks.GET("", h.listChecks)
		checks.GET("/:checkID", h.getCheck)
		checks.PATCH("/:checkID/status", h.updateCheckStatus)
	}
}
