package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
	"github.com/hisabiq/hisab_backend/internal/middleware"
)

// companyHandler handles HTTP requests for companies and memberships.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(companyService portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: companyService}
}

// createCompany godoc
// @Summary Create a company
// @Description Creates a company and makes the caller its admin
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Company created", slog.String("company_id", company.CompanyID))
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List the caller's companies
// @Tags companies
// @Produce  json
// @Success 200 {array} dto.CompanyResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	companies, err := h.companyService.ListUserCompanies(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := make([]dto.CompanyResponse, len(companies))
	for i := range companies {
		resp[i] = dto.ToCompanyResponse(&companies[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getCompany godoc
// @Summary Get a company by ID
// @Tags companies
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{companyID} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), c.Param("companyID"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// updateCompany godoc
// @Summary Update company settings
// @Description Patches company-level settings; only admins may call this
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   settings body dto.UpdateCompanySettingsRequest true "Settings to change"
// @Success 200 {object} dto.CompanyResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{companyID} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	var req dto.UpdateCompanySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	company, err := h.companyService.UpdateSettings(c.Request.Context(), c.Param("companyID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// addMember godoc
// @Summary Add a member to a company
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   member body dto.AddMemberRequest true "User and role"
// @Success 204 "Member added"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{companyID}/members [post]
func (h *companyHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	companyID := c.Param("companyID")
	if err := h.companyService.AddMember(c.Request.Context(), userID, req.UserID, companyID, req.Role); err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Member added to company",
		slog.String("company_id", companyID),
		slog.String("member_user_id", req.UserID),
		slog.String("role", string(req.Role)))
	c.Status(http.StatusNoContent)
}

// registerCompanyRoutes registers company specific routes.
func registerCompanyRoutes(group *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := group.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:companyID", h.getCompany)
		companies.PUT("/:companyID", h.updateCompany)
		companies.POST("/:companyID/members", h.addMember)
	}
}
