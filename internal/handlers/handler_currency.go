package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
)

// currencyHandler handles HTTP requests for currency reference data.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(currencyService portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: currencyService}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Tags currencies
// @Produce  json
// @Success 200 {array} domain.Currency
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, currencies)
}

// getCurrency godoc
// @Summary Get a currency by code
// @Tags currencies
// @Produce  json
// @Param   currencyCode path string true "ISO 4217 code"
// @Success 200 {object} domain.Currency
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /currencies/{currencyCode} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), c.Param("currencyCode"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, currency)
}

// registerCurrencyRoutes registers currency specific routes.
func registerCurrencyRoutes(group *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := group.Group("/currencies")
	currencies.GET("", h.listCurrencies)
	currencies.GET("/:currencyCode", h.getCurrency)
}
