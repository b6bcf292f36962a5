package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	Draft    EntryStatus = "DRAFT"
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// JournalEntry represents a single financial event composed of multiple lines.
// Entries start as Draft, become Posted (one-way) once balanced, and may then
// be Reversed by a mirror entry. Posted and Reversed entries are immutable
// apart from the reversal linkage fields.
type JournalEntry struct {
	EntryID         string      `json:"entryID"`
	CompanyID       string      `json:"companyID"`
	EntryNumber     string      `json:"entryNumber"` // unique per company, e.g. JE-2025-0042
	EntryDate       time.Time   `json:"entryDate"`
	Reference       string      `json:"reference"` // optional cross-reference, e.g. source invoice number
	Description     string      `json:"description"`
	Status          EntryStatus `json:"status"`
	CurrencyCode    string      `json:"currencyCode"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`  // derived from lines
	TotalCredit     decimal.Decimal `json:"totalCredit"` // derived from lines
	PostedAt        *time.Time  `json:"postedAt"`
	PostedBy        *string     `json:"postedBy"`
	ReversedAt      *time.Time  `json:"reversedAt"`
	ReversedBy      *string     `json:"reversedBy"`
	ReversalReason  string      `json:"reversalReason"`
	OriginalEntryID *string     `json:"originalEntryID"`  // set on the mirror entry
	ReversingEntryID *string    `json:"reversingEntryID"` // set on the reversed original
	Notes           string      `json:"notes"`
	IsActive        bool        `json:"isActive"` // soft-delete flag, independent of Status
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"` // loaded separately in list paths
}

// JournalLine represents a single debit-or-credit row within a JournalEntry.
// Exactly one of DebitAmount/CreditAmount is nonzero; both are non-negative.
type JournalLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	LineNumber  int             `json:"lineNumber"` // zero-based position within the entry
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	DebitAmount decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	// Optional dimensional tags.
	ProjectID  string `json:"projectID"`
	CustomerID string `json:"customerID"`
	SupplierID string `json:"supplierID"`
	AuditFields
	RunningBalance decimal.Decimal `json:"runningBalance"` // account balance after this line, set on posting
}

// IsDebit reports whether the line carries value on the debit side.
func (l JournalLine) IsDebit() bool {
	return l.DebitAmount.IsPositive()
}

// Amount returns the nonzero side of the line.
func (l JournalLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.DebitAmount
	}
	return l.CreditAmount
}

// Mirror returns a copy of the line with the debit and credit sides swapped.
// Used when generating reversal entries.
func (l JournalLine) Mirror() JournalLine {
	m := l
	m.DebitAmount, m.CreditAmount = l.CreditAmount, l.DebitAmount
	return m
}
