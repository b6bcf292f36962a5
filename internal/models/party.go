package models

import "github.com/shopspring/decimal"

// Party represents a row in the parties table. Suppliers and customers share
// the same shape and are distinguished by the kind column.
type Party struct {
	PartyID        string          `json:"partyID"`
	CompanyID      string          `json:"companyID"`
	Kind           string          `json:"kind"`
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
