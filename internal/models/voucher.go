package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher represents a row in the vouchers table.
type Voucher struct {
	VoucherID      string          `json:"voucherID"`
	CompanyID      string          `json:"companyID"`
	VoucherNumber  string          `json:"voucherNumber"`
	VoucherType    string          `json:"voucherType"`
	VoucherDate    time.Time       `json:"voucherDate"`
	PartyID        string          `json:"partyID"`
	AccountID      string          `json:"accountID"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	JournalEntryID *string         `json:"journalEntryID"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
