package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Check represents a row in the checks table.
type Check struct {
	CheckID        string          `json:"checkID"`
	CompanyID      string          `json:"companyID"`
	CheckNumber    string          `json:"checkNumber"`
	BankCheckNo    string          `json:"bankCheckNo"`
	Direction      string          `json:"direction"`
	PartyID        string          `json:"partyID"`
	BankName       string          `json:"bankName"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	IssueDate      time.Time       `json:"issueDate"`
	DueDate        time.Time       `json:"dueDate"`
	Status         string          `json:"status"`
	Description    string          `json:"description"`
	JournalEntryID *string         `json:"journalEntryID"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
