package domain

import "github.com/shopspring/decimal"

// PartyKind distinguishes suppliers from customers. Both share the same
// shallow record shape, so they live in one table and one repository.
type PartyKind string

const (
	Supplier PartyKind = "SUPPLIER"
	Customer PartyKind = "CUSTOMER"
)

// Party represents a supplier or customer of the company.
type Party struct {
	PartyID        string          `json:"partyID"`
	CompanyID      string          `json:"companyID"`
	Kind           PartyKind       `json:"kind"`
	Name           string          `json:"name"`
	NameAr         string          `json:"nameAr"`
	TaxNumber      string          `json:"taxNumber"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Notes          string          `json:"notes"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
