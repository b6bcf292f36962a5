package dto

import (
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one line of a draft save request.
type CreateJournalLineRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	ProjectID    string          `json:"projectID"`
	CustomerID   string          `json:"customerID"`
	SupplierID   string          `json:"supplierID"`
}

// SaveJournalEntryRequest creates a new draft or replaces an existing draft's
// header and lines. Totals are recomputed server-side, never trusted.
type SaveJournalEntryRequest struct {
	EntryID      string                     `json:"entryID"` // empty for a new draft
	EntryDate    time.Time                  `json:"entryDate" binding:"required"`
	Reference    string                     `json:"reference"`
	Description  string                     `json:"description" binding:"required"`
	CurrencyCode string                     `json:"currencyCode"`
	Notes        string                     `json:"notes"`
	Lines        []CreateJournalLineRequest `json:"lines" binding:"required,dive"`
}

// ReverseJournalEntryRequest carries the mandatory reversal reason.
type ReverseJournalEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ToggleActiveRequest flips the soft-delete visibility flag.
type ToggleActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	ProjectID    string          `json:"projectID,omitempty"`
	CustomerID   string          `json:"customerID,omitempty"`
	SupplierID   string          `json:"supplierID,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID        string                `json:"entryID"`
	EntryNumber    string                `json:"entryNumber"`
	EntryDate      time.Time             `json:"entryDate"`
	Reference      string                `json:"reference,omitempty"`
	Description    string                `json:"description"`
	Status         domain.EntryStatus    `json:"status"`
	CurrencyCode   string                `json:"currencyCode"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	Balanced       bool                  `json:"balanced"`
	PostedAt       *time.Time            `json:"postedAt,omitempty"`
	PostedBy       *string               `json:"postedBy,omitempty"`
	ReversedAt     *time.Time            `json:"reversedAt,omitempty"`
	ReversedBy     *string               `json:"reversedBy,omitempty"`
	ReversalReason string                `json:"reversalReason,omitempty"`
	OriginalEntryID  *string             `json:"originalEntryID,omitempty"`
	ReversingEntryID *string             `json:"reversingEntryID,omitempty"`
	Notes          string                `json:"notes,omitempty"`
	IsActive       bool                  `json:"isActive"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
	Lines          []JournalLineResponse `json:"lines,omitempty"`
}

// ListJournalEntriesParams holds query parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit            int     `form:"limit"`
	NextToken        *string `form:"nextToken"`
	IncludeReversals bool    `form:"includeReversals"`
	IncludeLines     bool    `form:"includeLines"`
}

// ListJournalEntriesResponse is a page of entries plus the next-page token.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalLineResponse converts a domain.JournalLine to its response DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:       line.LineID,
		AccountID:    line.AccountID,
		Description:  line.Description,
		DebitAmount:  line.DebitAmount,
		CreditAmount: line.CreditAmount,
		ProjectID:    line.ProjectID,
		CustomerID:   line.CustomerID,
		SupplierID:   line.SupplierID,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
// Totals are recomputed from the attached lines when present so the response
// can never show totals from a stale line set.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:          entry.EntryID,
		EntryNumber:      entry.EntryNumber,
		EntryDate:        entry.EntryDate,
		Reference:        entry.Reference,
		Description:      entry.Description,
		Status:           entry.Status,
		CurrencyCode:     entry.CurrencyCode,
		TotalDebit:       entry.TotalDebit,
		TotalCredit:      entry.TotalCredit,
		PostedAt:         entry.PostedAt,
		PostedBy:         entry.PostedBy,
		ReversedAt:       entry.ReversedAt,
		ReversedBy:       entry.ReversedBy,
		ReversalReason:   entry.ReversalReason,
		OriginalEntryID:  entry.OriginalEntryID,
		ReversingEntryID: entry.ReversingEntryID,
		Notes:            entry.Notes,
		IsActive:         entry.IsActive,
		CreatedAt:        entry.CreatedAt,
		CreatedBy:        entry.CreatedBy,
	}
	resp.Balanced = entry.TotalDebit.Sub(entry.TotalCredit).Abs().LessThanOrEqual(domain.BalanceTolerance)
	if len(entry.Lines) > 0 {
		totals := accounting.RecomputeEntryTotals(entry.Lines)
		resp.TotalDebit = totals.TotalDebit
		resp.TotalCredit = totals.TotalCredit
		resp.Balanced = totals.Balanced
		resp.Lines = make([]JournalLineResponse, len(entry.Lines))
		for i := range entry.Lines {
			resp.Lines[i] = ToJournalLineResponse(&entry.Lines[i])
		}
	}
	return resp
}
