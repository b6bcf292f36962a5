package models

import "github.com/shopspring/decimal"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// Account represents a row in the accounts table.
type Account struct {
	AccountID       string      `json:"accountID"`
	CompanyID       string      `json:"companyID"`
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	NameAr          string      `json:"nameAr"`
	AccountType     AccountType `json:"accountType"`
	CurrencyCode    string      `json:"currencyCode"`
	ParentAccountID string      `json:"parentAccountID"`
	Description     string      `json:"description"`
	IsActive        bool        `json:"isActive"`
	AuditFields
	Balance decimal.Decimal `json:"balance"`
}
