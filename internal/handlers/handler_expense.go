package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
	"github.com/hisabiq/hisab_backend/internal/middleware"
)

// expenseHandler handles HTTP requests for expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(expenseService portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: expenseService}
}

// createExpense godoc
// @Summary Record an expense
// @Description Creates a pending expense; the net/tax/gross split is derived server-side
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   expense body dto.SaveExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Security BearerAuth
// @Router /companies/{companyID}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), c.Param("companyID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("expense_number", expense.ExpenseNumber))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// getExpense godoc
// @Summary Get an expense by ID
// @Tags expenses
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /companies/{companyID}/expenses/{expenseID} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("companyID"), c.Param("expenseID"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Token-paginated, filterable by category and status
// @Tags expenses
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Param   category query string false "Category filter"
// @Param   status query string false "Status filter"
// @Success 200 {object} dto.ListExpensesResponse
// @Security BearerAuth
// @Router /companies/{companyID}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.expenseService.ListExpenses(c.Request.Context(), c.Param("companyID"), userID, params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateExpense godoc
// @Summary Update a pending expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   expenseID path string true "Expense ID"
// @Param   expense body dto.SaveExpenseRequest true "Expense details"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 409 {object} map[string]string "Expense is not pending"
// @Security BearerAuth
// @Router /companies/{companyID}/expenses/{expenseID} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	var req dto.SaveExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("companyID"), c.Param("expenseID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Approved expenses cannot be deleted
// @Tags expenses
// @Param   companyID path string true "Company ID"
// @Param   expenseID path string true "Expense ID"
// @Success 204 "Expense deleted"
// @Failure 409 {object} map[string]string "Expense is approved"
// @Security BearerAuth
// @Router /companies/{companyID}/expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("companyID"), c.Param("expenseID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// registerExpenseRoutes registers expense specific routes under the company scope.
func registerExpenseRoutes(companies *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := companies.Group("/:companyID/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expenseID", h.getExpense)
		expenses.PUT("/:expenseID", h.updateExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}
