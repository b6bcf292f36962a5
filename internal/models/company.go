package models

import "github.com/shopspring/decimal"

// Company represents a row in the companies table.
type Company struct {
	CompanyID           string          `json:"companyID"`
	Name                string          `json:"name"`
	NameAr              string          `json:"nameAr"`
	DefaultCurrencyCode *string         `json:"defaultCurrencyCode"`
	DefaultTaxRate      decimal.Decimal `json:"defaultTaxRate"`
	TaxNumber           string          `json:"taxNumber"`
	Address             string          `json:"address"`
	IsActive            bool            `json:"isActive"`
	AuditFields
}

// UserCompanyRole defines a user's role within a company.
type UserCompanyRole string

const (
	RoleAdmin    UserCompanyRole = "ADMIN"
	RoleMember   UserCompanyRole = "MEMBER"
	RoleReadOnly UserCompanyRole = "READONLY"
	RoleRemoved  UserCompanyRole = "REMOVED"
)

// UserCompany represents a row in the user_companies membership table.
type UserCompany struct {
	UserID    string          `json:"userID"`
	CompanyID string          `json:"companyID"`
	Role      UserCompanyRole `json:"role"`
	AuditFields
}
