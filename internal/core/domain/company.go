package domain

import (
	"github.com/shopspring/decimal"
)

// Company represents an isolated tenant containing accounts, journal entries,
// invoices and the rest. Every query in the data layer is scoped by CompanyID.
type Company struct {
	CompanyID           string          `json:"companyID"`
	Name                string          `json:"name"`
	NameAr              string          `json:"nameAr"` // Arabic display name
	DefaultCurrencyCode *string         `json:"defaultCurrencyCode"`
	DefaultTaxRate      decimal.Decimal `json:"defaultTaxRate"` // percentage applied to new invoices/expenses
	TaxNumber           string          `json:"taxNumber"`
	Address             string          `json:"address"`
	IsActive            bool            `json:"isActive"`
	AuditFields
}

// UserCompanyRole defines the possible roles a user can have within a company.
type UserCompanyRole string

const (
	RoleAdmin    UserCompanyRole = "ADMIN"
	RoleMember   UserCompanyRole = "MEMBER"
	RoleReadOnly UserCompanyRole = "READONLY"
	RoleRemoved  UserCompanyRole = "REMOVED"
)

// UserCompany represents the membership of a User in a Company.
type UserCompany struct {
	UserID    string          `json:"userID"`
	UserName  string          `json:"userName"` // populated on membership listings only
	CompanyID string          `json:"companyID"`
	Role      UserCompanyRole `json:"role"`
	AuditFields
}

// Covers returns true when the role grants at least the required role.
// Unknown or removed roles never authorize anything.
func (r UserCompanyRole) Covers(required UserCompanyRole) bool {
	rank := map[UserCompanyRole]int{
		RoleReadOnly: 1,
		RoleMember:   2,
		RoleAdmin:    3,
	}
	have, ok := rank[r]
	if !ok {
		return false
	}
	want, ok := rank[required]
	if !ok {
		return false
	}
	return have >= want
}
