package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry row.
type EntryStatus string

const (
	Draft    EntryStatus = "DRAFT"
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// JournalEntry represents a row in the journal_entries table.
type JournalEntry struct {
	EntryID          string          `json:"entryID"` // Primary Key (UUID)
	CompanyID        string          `json:"companyID"`
	EntryNumber      string          `json:"entryNumber"` // Unique per company, e.g. "JE-2025-0042"
	EntryDate        time.Time       `json:"entryDate"`
	Reference        string          `json:"reference"`
	Description      string          `json:"description"`
	Status           EntryStatus     `json:"status"`
	CurrencyCode     string          `json:"currencyCode"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	PostedAt         *time.Time      `json:"postedAt"`
	PostedBy         *string         `json:"postedBy"`
	ReversedAt       *time.Time      `json:"reversedAt"`
	ReversedBy       *string         `json:"reversedBy"`
	ReversalReason   string          `json:"reversalReason"`
	OriginalEntryID  *string         `json:"originalEntryID"`  // set on the mirror entry
	ReversingEntryID *string         `json:"reversingEntryID"` // set on the reversed original
	Notes            string          `json:"notes"`
	IsActive         bool            `json:"isActive"`
	AuditFields
}

// JournalLine represents a row in the journal_lines table. Exactly one of
// DebitAmount/CreditAmount is nonzero.
type JournalLine struct {
	LineID       string          `json:"lineID"`
	EntryID      string          `json:"entryID"`
	LineNumber   int             `json:"lineNumber"`
	AccountID    string          `json:"accountID"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	ProjectID    string          `json:"projectID"`
	CustomerID   string          `json:"customerID"`
	SupplierID   string          `json:"supplierID"`
	AuditFields
	RunningBalance decimal.Decimal `json:"runningBalance"` // balance after this line was posted
}
