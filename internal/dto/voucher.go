package dto

import (
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveVoucherRequest creates or replaces a receipt/payment voucher.
type SaveVoucherRequest struct {
	VoucherType  domain.VoucherType `json:"voucherType" binding:"required"`
	VoucherDate  time.Time          `json:"voucherDate" binding:"required"`
	PartyID      string             `json:"partyID" binding:"required"`
	AccountID    string             `json:"accountID" binding:"required"`
	Amount       decimal.Decimal    `json:"amount" binding:"required"`
	CurrencyCode string             `json:"currencyCode"`
	Description  string             `json:"description" binding:"required"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID      string               `json:"voucherID"`
	VoucherNumber  string               `json:"voucherNumber"`
	VoucherType    domain.VoucherType   `json:"voucherType"`
	VoucherDate    time.Time            `json:"voucherDate"`
	PartyID        string               `json:"partyID"`
	AccountID      string               `json:"accountID"`
	Amount         decimal.Decimal      `json:"amount"`
	CurrencyCode   string               `json:"currencyCode"`
	Description    string               `json:"description"`
	Status         domain.VoucherStatus `json:"status"`
	JournalEntryID *string              `json:"journalEntryID,omitempty"`
	IsActive       bool                 `json:"isActive"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// ListVouchersResponse is a page of vouchers plus the next-page token.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToVoucherResponse converts a domain.Voucher to its response DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:      v.VoucherID,
		VoucherNumber:  v.VoucherNumber,
		VoucherType:    v.VoucherType,
		VoucherDate:    v.VoucherDate,
		PartyID:        v.PartyID,
		AccountID:      v.AccountID,
		Amount:         v.Amount,
		CurrencyCode:   v.CurrencyCode,
		Description:    v.Description,
		Status:         v.Status,
		JournalEntryID: v.JournalEntryID,
		IsActive:       v.IsActive,
		CreatedAt:      v.CreatedAt,
	}
}
