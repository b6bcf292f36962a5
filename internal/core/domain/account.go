package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// Account represents a chart-of-accounts entry within the core domain.
type Account struct {
	AccountID       string          `json:"accountID"`
	CompanyID       string          `json:"companyID"`
	Code            string          `json:"code"` // account code shown in the chart
	Name            string          `json:"name"`
	NameAr          string          `json:"nameAr"`
	AccountType     AccountType     `json:"accountType"`
	CurrencyCode    string          `json:"currencyCode"`
	ParentAccountID string          `json:"parentAccountID"` // nullable, self-referencing
	Description     string          `json:"description"`
	IsActive        bool            `json:"isActive"`
	AuditFields
	Balance decimal.Decimal `json:"balance"` // persisted balance, maintained by posting
}
