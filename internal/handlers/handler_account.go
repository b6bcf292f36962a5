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

// accountHandler handles HTTP requests for chart-of-accounts entries.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	journalService portssvc.JournalSvcFacade
}

func newAccountHandler(accountService portssvc.AccountSvcFacade, journalService portssvc.JournalSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: accountService,
		journalService: journalService,
	}
}

// createAccount godoc
// @Summary Create an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 409 {object} map[string]string "Account code already in use"
// @Security BearerAuth
// @Router /companies/{companyID}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), c.Param("companyID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /companies/{companyID}/accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("companyID"), c.Param("accountID"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.AccountResponse
// @Security BearerAuth
// @Router /companies/{companyID}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), c.Param("companyID"), userID, limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := make([]dto.AccountResponse, len(accounts))
	for i := range accounts {
		resp[i] = dto.ToAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates name and description; code, type and currency are immutable
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   accountID path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} dto.AccountResponse
// @Security BearerAuth
// @Router /companies/{companyID}/accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("companyID"), c.Param("accountID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Hides the account from new postings; history is preserved
// @Tags accounts
// @Param   companyID path string true "Company ID"
// @Param   accountID path string true "Account ID"
// @Success 204 "Account deactivated"
// @Security BearerAuth
// @Router /companies/{companyID}/accounts/{accountID} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), c.Param("companyID"), c.Param("accountID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listAccountLines godoc
// @Summary List posted journal lines for an account
// @Description Returns the account's ledger with running balances, newest first
// @Tags accounts
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   accountID path string true "Account ID"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} map[string]interface{} "lines and nextToken"
// @Security BearerAuth
// @Router /companies/{companyID}/accounts/{accountID}/lines [get]
func (h *accountHandler) listAccountLines(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	lines, newToken, err := h.journalService.ListLinesByAccount(c.Request.Context(), c.Param("companyID"), c.Param("accountID"), userID, limit, nextToken)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines, "nextToken": newToken})
}

// registerAccountRoutes registers account specific routes under the company scope.
func registerAccountRoutes(companies *gin.RouterGroup, accountService portssvc.AccountSvcFacade, journalService portssvc.JournalSvcFacade) {
	h := newAccountHandler(accountService, journalService)

	accounts := companies.Group("/:companyID/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deactivateAccount)
		accounts.GET("/:accountID/lines", h.listAccountLines)
	}
}
