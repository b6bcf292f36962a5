package dto

import (
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveExpenseRequest creates or replaces an expense. The net/tax/gross split
// is derived server-side.
type SaveExpenseRequest struct {
	ExpenseDate  time.Time       `json:"expenseDate" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	SupplierID   string          `json:"supplierID"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	TaxInclusive bool            `json:"taxInclusive"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string               `json:"expenseID"`
	ExpenseNumber string               `json:"expenseNumber"`
	ExpenseDate   time.Time            `json:"expenseDate"`
	Category      string               `json:"category"`
	Description   string               `json:"description"`
	SupplierID    string               `json:"supplierID,omitempty"`
	CurrencyCode  string               `json:"currencyCode"`
	Status        domain.ExpenseStatus `json:"status"`
	Amount        decimal.Decimal      `json:"amount"`
	TaxRate       decimal.Decimal      `json:"taxRate"`
	TaxInclusive  bool                 `json:"taxInclusive"`
	NetAmount     decimal.Decimal      `json:"netAmount"`
	TaxAmount     decimal.Decimal      `json:"taxAmount"`
	GrossAmount   decimal.Decimal      `json:"grossAmount"`
	IsActive      bool                 `json:"isActive"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ListExpensesParams holds query parameters for listing expenses.
type ListExpensesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
	Category  string  `form:"category"`
	Status    string  `form:"status"`
}

// ListExpensesResponse is a page of expenses plus the next-page token.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		ExpenseNumber: e.ExpenseNumber,
		ExpenseDate:   e.ExpenseDate,
		Category:      e.Category,
		Description:   e.Description,
		SupplierID:    e.SupplierID,
		CurrencyCode:  e.CurrencyCode,
		Status:        e.Status,
		Amount:        e.Amount,
		TaxRate:       e.TaxRate,
		TaxInclusive:  e.TaxInclusive,
		NetAmount:     e.NetAmount,
		TaxAmount:     e.TaxAmount,
		GrossAmount:   e.GrossAmount,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
	}
}
