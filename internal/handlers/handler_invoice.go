package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
	"github.com/hisabiq/hisab_backend/internal/middleware"
)

// invoiceHandler handles HTTP requests for sales invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(invoiceService portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: invoiceService}
}

// createInvoice godoc
// @Summary Create a draft invoice
// @Description Creates an invoice with server-derived totals; all monetary fields in the request except quantities and unit prices are policy inputs
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   invoice body dto.SaveInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Security BearerAuth
// @Router /companies/{companyID}/invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), c.Param("companyID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_number", invoice.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// getInvoice godoc
// @Summary Get an invoice with its lines
// @Tags invoices
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /companies/{companyID}/invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("companyID"), c.Param("invoiceID"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListInvoicesResponse
// @Security BearerAuth
// @Router /companies/{companyID}/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	resp, err := h.invoiceService.ListInvoices(c.Request.Context(), c.Param("companyID"), userID, limit, nextToken)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateInvoice godoc
// @Summary Update a draft invoice
// @Description Replaces the header and line set; only drafts are editable
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   invoiceID path string true "Invoice ID"
// @Param   invoice body dto.SaveInvoiceRequest true "Invoice details"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 409 {object} map[string]string "Invoice is not a draft"
// @Security BearerAuth
// @Router /companies/{companyID}/invoices/{invoiceID} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("companyID"), c.Param("invoiceID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// updateInvoiceStatus godoc
// @Summary Transition an invoice's status
// @Description Allowed transitions: DRAFT to ISSUED or CANCELLED, ISSUED to PAID or CANCELLED
// @Tags invoices
// @Accept  json
// @Param   companyID path string true "Company ID"
// @Param   invoiceID path string true "Invoice ID"
// @Param   status body dto.UpdateInvoiceStatusRequest true "Target status"
// @Success 204 "Status updated"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Security BearerAuth
// @Router /companies/{companyID}/invoices/{invoiceID}/status [patch]
func (h *invoiceHandler) updateInvoiceStatus(c *gin.Context) {
	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), c.Param("companyID"), c.Param("invoiceID"), req.Status, userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteInvoice godoc
// @Summary Delete a draft invoice
// @Tags invoices
// @Param   companyID path string true "Company ID"
// @Param   invoiceID path string true "Invoice ID"
// @Success 204 "Invoice deleted"
// @Failure 409 {object} map[string]string "Invoice is not a draft"
// @Security BearerAuth
// @Router /companies/{companyID}/invoices/{invoiceID} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("companyID"), c.Param("invoiceID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// registerInvoiceRoutes registers invoice specific routes under the company scope.
func registerInvoiceRoutes(companies *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := companies.Group("/:companyID/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.PUT("/:invoiceID", h.updateInvoice)
		invoices.PATCH("/:invoiceID/status", h.updateInvoiceStatus)
		invoices.DELETE("/:invoiceID", h.deleteInvoice)
	}
}
