package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType distinguishes receipt vouchers (money in) from payment
// vouchers (money out).
type VoucherType string

const (
	ReceiptVoucher VoucherType = "RECEIPT"
	PaymentVoucher VoucherType = "PAYMENT"
)

// VoucherStatus indicates the state of a voucher.
type VoucherStatus string

const (
	VoucherDraft     VoucherStatus = "DRAFT"
	VoucherIssued    VoucherStatus = "ISSUED"
	VoucherCancelled VoucherStatus = "CANCELLED"
)

// Voucher records a cash receipt or payment against a party, optionally
// linked to the journal entry that booked it.
type Voucher struct {
	VoucherID     string          `json:"voucherID"`
	CompanyID     string          `json:"companyID"`
	VoucherNumber string          `json:"voucherNumber"`
	VoucherType   VoucherType     `json:"voucherType"`
	VoucherDate   time.Time       `json:"voucherDate"`
	PartyID       string          `json:"partyID"` // customer or supplier
	AccountID     string          `json:"accountID"` // cash/bank account
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Description   string          `json:"description"`
	Status        VoucherStatus   `json:"status"`
	JournalEntryID *string        `json:"journalEntryID"` // entry that booked this voucher
	IsActive      bool            `json:"isActive"`
	AuditFields
}
