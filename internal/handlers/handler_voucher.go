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

// voucherHandler handles HTTP requests for receipt and payment vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(voucherService portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: voucherService}
}

// createVoucher godoc
// @Summary Issue a voucher
// @Description Creates a receipt or payment voucher against a party and a cash/bank account
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucher body dto.SaveVoucherRequest true "Voucher details"
// @Success 201 {object} dto.VoucherResponse
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), c.Param("companyID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Voucher issued", slog.String("voucher_id", voucher.VoucherID), slog.String("voucher_number", voucher.VoucherNumber))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// getVoucher godoc
// @Summary Get a voucher by ID
// @Tags vouchers
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucherID path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers/{voucherID} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), c.Param("companyID"), c.Param("voucherID"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Tags vouchers
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   type query string false "RECEIPT or PAYMENT"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListVouchersResponse
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}
	var voucherType *domain.VoucherType
	if t := c.Query("type"); t != "" {
		vt := domain.VoucherType(t)
		voucherType = &vt
	}

	resp, err := h.voucherService.ListVouchers(c.Request.Context(), c.Param("companyID"), userID, voucherType, limit, nextToken)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// cancelVoucher godoc
// @Summary Cancel an issued voucher
// @Tags vouchers
// @Param   companyID path string true "Company ID"
// @Param   voucherID path string true "Voucher ID"
// @Success 204 "Voucher cancelled"
// @Failure 409 {object} map[string]string "Voucher already cancelled"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers/{voucherID}/cancel [post]
func (h *voucherHandler) cancelVoucher(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.voucherService.CancelVoucher(c.Request.Context(), c.Param("companyID"), c.Param("voucherID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// registerVoucherRoutes registers voucher specific routes under the company scope.
func registerVoucherRoutes(companies *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := companies.Group("/:companyID/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucherID", h.getVoucher)
		vouchers.POST("/:voucherID/cancel", h.cancelVoucher)
	}
}
