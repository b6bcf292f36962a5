package dto

import (
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceLineRequest is one item row of an invoice save request.
type InvoiceLineRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
}

// SaveInvoiceRequest creates or replaces an invoice. All monetary totals are
// derived server-side from the lines and policy fields.
type SaveInvoiceRequest struct {
	CustomerID    string               `json:"customerID" binding:"required"`
	InvoiceDate   time.Time            `json:"invoiceDate" binding:"required"`
	DueDate       *time.Time           `json:"dueDate"`
	CurrencyCode  string               `json:"currencyCode"`
	DiscountType  domain.DiscountType  `json:"discountType"`
	DiscountValue decimal.Decimal      `json:"discountValue"`
	TaxRate       decimal.Decimal      `json:"taxRate"`
	TaxInclusive  bool                 `json:"taxInclusive"`
	Notes         string               `json:"notes"`
	Lines         []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateInvoiceStatusRequest transitions an invoice's status.
type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required"`
}

// InvoiceLineResponse defines the data returned for an invoice line.
type InvoiceLineResponse struct {
	LineID      string          `json:"lineID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID      string                `json:"invoiceID"`
	InvoiceNumber  string                `json:"invoiceNumber"`
	CustomerID     string                `json:"customerID"`
	InvoiceDate    time.Time             `json:"invoiceDate"`
	DueDate        *time.Time            `json:"dueDate,omitempty"`
	CurrencyCode   string                `json:"currencyCode"`
	Status         domain.InvoiceStatus  `json:"status"`
	DiscountType   domain.DiscountType   `json:"discountType"`
	DiscountValue  decimal.Decimal       `json:"discountValue"`
	TaxRate        decimal.Decimal       `json:"taxRate"`
	TaxInclusive   bool                  `json:"taxInclusive"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	DiscountAmount decimal.Decimal       `json:"discountAmount"`
	TaxAmount      decimal.Decimal       `json:"taxAmount"`
	Total          decimal.Decimal       `json:"total"`
	PaidTotal      decimal.Decimal       `json:"paidTotal"`
	Notes          string                `json:"notes,omitempty"`
	IsActive       bool                  `json:"isActive"`
	CreatedAt      time.Time             `json:"createdAt"`
	Lines          []InvoiceLineResponse `json:"lines,omitempty"`
}

// ListInvoicesResponse is a page of invoices plus the next-page token.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		InvoiceNumber:  inv.InvoiceNumber,
		CustomerID:     inv.CustomerID,
		InvoiceDate:    inv.InvoiceDate,
		DueDate:        inv.DueDate,
		CurrencyCode:   inv.CurrencyCode,
		Status:         inv.Status,
		DiscountType:   inv.DiscountType,
		DiscountValue:  inv.DiscountValue,
		TaxRate:        inv.TaxRate,
		TaxInclusive:   inv.TaxInclusive,
		Subtotal:       inv.Subtotal,
		DiscountAmount: inv.DiscountAmount,
		TaxAmount:      inv.TaxAmount,
		Total:          inv.Total,
		PaidTotal:      inv.PaidTotal,
		Notes:          inv.Notes,
		IsActive:       inv.IsActive,
		CreatedAt:      inv.CreatedAt,
	}
	if len(inv.Lines) > 0 {
		resp.Lines = make([]InvoiceLineResponse, len(inv.Lines))
		for i, line := range inv.Lines {
			resp.Lines[i] = InvoiceLineResponse{
				LineID:      line.LineID,
				Description: line.Description,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
				LineTotal:   line.LineTotal,
			}
		}
	}
	return resp
}
