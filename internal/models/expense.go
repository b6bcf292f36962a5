package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row in the expenses table.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	CompanyID     string          `json:"companyID"`
	ExpenseNumber string          `json:"expenseNumber"`
	ExpenseDate   time.Time       `json:"expenseDate"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	SupplierID    string          `json:"supplierID"`
	CurrencyCode  string          `json:"currencyCode"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	TaxInclusive  bool            `json:"taxInclusive"`
	NetAmount     decimal.Decimal `json:"netAmount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	GrossAmount   decimal.Decimal `json:"grossAmount"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}
