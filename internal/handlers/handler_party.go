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

// partyHandler handles HTTP requests for suppliers and customers. Both kinds
// share the handler; the route group fixes the kind.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
	kind         domain.PartyKind
}

func newPartyHandler(partyService portssvc.PartySvcFacade, kind domain.PartyKind) *partyHandler {
	return &partyHandler{partyService: partyService, kind: kind}
}

// createParty godoc
// @Summary Create a supplier or customer
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   party body dto.SavePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Security BearerAuth
// @Router /companies/{companyID}/suppliers [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SavePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), c.Param("companyID"), h.kind, req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Party created", slog.String("party_id", party.PartyID), slog.String("kind", string(h.kind)))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// getParty godoc
// @Summary Get a supplier or customer by ID
// @Tags parties
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Security BearerAuth
// @Router /companies/{companyID}/suppliers/{partyID} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	party, err := h.partyService.GetPartyByID(c.Request.Context(), c.Param("companyID"), c.Param("partyID"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if party.Kind != h.kind {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List suppliers or customers
// @Tags parties
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.PartyResponse
// @Security BearerAuth
// @Router /companies/{companyID}/suppliers [get]
func (h *partyHandler) listParties(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	parties, err := h.partyService.ListParties(c.Request.Context(), c.Param("companyID"), userID, h.kind, limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := make([]dto.PartyResponse, len(parties))
	for i := range parties {
		resp[i] = dto.ToPartyResponse(&parties[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateParty godoc
// @Summary Update a supplier or customer
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   partyID path string true "Party ID"
// @Param   party body dto.SavePartyRequest true "Party details"
// @Success 200 {object} dto.PartyResponse
// @Security BearerAuth
// @Router /companies/{companyID}/suppliers/{partyID} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	var req dto.SavePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), c.Param("companyID"), c.Param("partyID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deactivateParty godoc
// @Summary Deactivate a supplier or customer
// @Tags parties
// @Param   companyID path string true "Company ID"
// @Param   partyID path string true "Party ID"
// @Success 204 "Party deactivated"
// @Security BearerAuth
// @Router /companies/{companyID}/suppliers/{partyID} [delete]
func (h *partyHandler) deactivateParty(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.partyService.DeactivateParty(c.Request.Context(), c.Param("companyID"), c.Param("partyID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// registerPartyRoutes registers supplier and customer routes under the
// company scope. The two groups share one handler type with the kind fixed.
func registerPartyRoutes(companies *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	for _, binding := range []struct {
		path string
		kind domain.PartyKind
	}{
		{path: "/:companyID/suppliers", kind: domain.Supplier},
		{path: "/:companyID/customers", kind: domain.Customer},
	} {
		h := newPartyHandler(partyService, binding.kind)
		group := companies.Group(binding.path)
		group.POST("", h.createParty)
		group.GET("", h.listParties)
		group.GET("/:partyID", h.getParty)
		group.PUT("/:partyID", h.updateParty)
		group.DELETE("/:partyID", h.deactivateParty)
	}
}
