package dto

import (
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCompanyRequest creates a new company tenant.
type CreateCompanyRequest struct {
	Name                string `json:"name" binding:"required"`
	NameAr              string `json:"nameAr"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode" binding:"required"`
	TaxNumber           string `json:"taxNumber"`
	Address             string `json:"address"`
}

// UpdateCompanySettingsRequest updates company-level settings.
type UpdateCompanySettingsRequest struct {
	Name                *string          `json:"name"`
	NameAr              *string          `json:"nameAr"`
	DefaultCurrencyCode *string          `json:"defaultCurrencyCode"`
	TaxNumber           *string          `json:"taxNumber"`
	Address             *string          `json:"address"`
	DefaultTaxRate      *decimal.Decimal `json:"defaultTaxRate"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID           string    `json:"companyID"`
	Name                string    `json:"name"`
	NameAr              string    `json:"nameAr,omitempty"`
	DefaultCurrencyCode *string   `json:"defaultCurrencyCode,omitempty"`
	TaxNumber           string    `json:"taxNumber,omitempty"`
	Address             string    `json:"address,omitempty"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
}

// AddMemberRequest adds a user to a company with a role.
type AddMemberRequest struct {
	UserID string                 `json:"userID" binding:"required"`
	Role   domain.UserCompanyRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// ToCompanyResponse converts a domain.Company to its response DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:           c.CompanyID,
		Name:                c.Name,
		NameAr:              c.NameAr,
		DefaultCurrencyCode: c.DefaultCurrencyCode,
		TaxNumber:           c.TaxNumber,
		Address:             c.Address,
		IsActive:            c.IsActive,
		CreatedAt:           c.CreatedAt,
	}
}
