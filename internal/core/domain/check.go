package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckDirection distinguishes checks received from checks issued.
type CheckDirection string

const (
	CheckIncoming CheckDirection = "INCOMING"
	CheckOutgoing CheckDirection = "OUTGOING"
)

// CheckStatus indicates the state of a check.
type CheckStatus string

const (
	CheckIssued    CheckStatus = "ISSUED"
	CheckCleared   CheckStatus = "CLEARED"
	CheckBounced   CheckStatus = "BOUNCED"
	CheckCancelled CheckStatus = "CANCELLED"
)

// Check records a bank check, incoming or outgoing, optionally linked to the
// journal entry that booked it.
type Check struct {
	CheckID       string          `json:"checkID"`
	CompanyID     string          `json:"companyID"`
	CheckNumber   string          `json:"checkNumber"` // internal document number
	BankCheckNo   string          `json:"bankCheckNo"` // number printed on the check itself
	Direction     CheckDirection  `json:"direction"`
	PartyID       string          `json:"partyID"`
	BankName      string          `json:"bankName"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Status        CheckStatus     `json:"status"`
	Description   string          `json:"description"`
	JournalEntryID *string        `json:"journalEntryID"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}
