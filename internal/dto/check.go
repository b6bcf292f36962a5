package dto

import (
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveCheckRequest creates a bank check record.
type SaveCheckRequest struct {
	Direction    domain.CheckDirection `json:"direction" binding:"required"`
	BankCheckNo  string                `json:"bankCheckNo" binding:"required"`
	PartyID      string                `json:"partyID" binding:"required"`
	BankName     string                `json:"bankName" binding:"required"`
	Amount       decimal.Decimal       `json:"amount" binding:"required"`
	CurrencyCode string                `json:"currencyCode"`
	IssueDate    time.Time             `json:"issueDate" binding:"required"`
	DueDate      time.Time             `json:"dueDate" binding:"required"`
	Description  string                `json:"description"`
}

// UpdateCheckStatusRequest transitions a check's status.
type UpdateCheckStatusRequest struct {
	Status domain.CheckStatus `json:"status" binding:"required"`
}

// CheckResponse defines the data returned for a check.
type CheckResponse struct {
	CheckID        string                `json:"checkID"`
	CheckNumber    string                `json:"checkNumber"`
	BankCheckNo    string                `json:"bankCheckNo"`
	Direction      domain.CheckDirection `json:"direction"`
	PartyID        string                `json:"partyID"`
	BankName       string                `json:"bankName"`
	Amount         decimal.Decimal       `json:"amount"`
	CurrencyCode   string                `json:"currencyCode"`
	IssueDate      time.Time             `json:"issueDate"`
	DueDate        time.Time             `json:"dueDate"`
	Status         domain.CheckStatus    `json:"status"`
	Description    string                `json:"description,omitempty"`
	JournalEntryID *string               `json:"journalEntryID,omitempty"`
	IsActive       bool                  `json:"isActive"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ListChecksResponse is a page of checks plus the next-page token.
type ListChecksResponse struct {
	Checks    []CheckResponse `json:"checks"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToCheckResponse converts a domain.Check to its response DTO.
func ToCheckResponse(c *domain.Check) CheckResponse {
	return CheckResponse{
		CheckID:        c.CheckID,
		CheckNumber:    c.CheckNumber,
		BankCheckNo:    c.BankCheckNo,
		Direction:      c.Direction,
		PartyID:        c.PartyID,
		BankName:       c.BankName,
		Amount:         c.Amount,
		CurrencyCode:   c.CurrencyCode,
		IssueDate:      c.IssueDate,
		DueDate:        c.DueDate,
		Status:         c.Status,
		Description:    c.Description,
		JournalEntryID: c.JournalEntryID,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
	}
}
