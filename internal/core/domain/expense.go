package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus indicates the state of an expense record.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "PENDING"
	ExpenseApproved ExpenseStatus = "APPROVED"
	ExpenseRejected ExpenseStatus = "REJECTED"
)

// Expense is a single outgoing cost record. Net/tax/gross are derived from
// the entered amount and the tax policy.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	CompanyID     string          `json:"companyID"`
	ExpenseNumber string          `json:"expenseNumber"`
	ExpenseDate   time.Time       `json:"expenseDate"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	SupplierID    string          `json:"supplierID"` // optional
	CurrencyCode  string          `json:"currencyCode"`
	Status        ExpenseStatus   `json:"status"`
	Amount        decimal.Decimal `json:"amount"` // as entered
	TaxRate       decimal.Decimal `json:"taxRate"`
	TaxInclusive  bool            `json:"taxInclusive"`
	NetAmount     decimal.Decimal `json:"netAmount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	GrossAmount   decimal.Decimal `json:"grossAmount"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// ExpenseFilters narrows expense list queries.
type ExpenseFilters struct {
	Category string
	Status   *ExpenseStatus
	From     *time.Time
	To       *time.Time
}
