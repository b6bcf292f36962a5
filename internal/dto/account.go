package dto

import (
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest creates a chart-of-accounts entry.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required"`
	Name            string             `json:"name" binding:"required"`
	NameAr          string             `json:"nameAr"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	CurrencyCode    string             `json:"currencyCode" binding:"required"`
	ParentAccountID string             `json:"parentAccountID"`
	Description     string             `json:"description"`
}

// UpdateAccountRequest updates mutable account fields.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	NameAr      *string `json:"nameAr"`
	Description *string `json:"description"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	NameAr          string             `json:"nameAr,omitempty"`
	AccountType     domain.AccountType `json:"accountType"`
	CurrencyCode    string             `json:"currencyCode"`
	ParentAccountID string             `json:"parentAccountID,omitempty"`
	Description     string             `json:"description,omitempty"`
	Balance         decimal.Decimal    `json:"balance"`
	IsActive        bool               `json:"isActive"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		Code:            a.Code,
		Name:            a.Name,
		NameAr:          a.NameAr,
		AccountType:     a.AccountType,
		CurrencyCode:    a.CurrencyCode,
		ParentAccountID: a.ParentAccountID,
		Description:     a.Description,
		Balance:         a.Balance,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
	}
}
