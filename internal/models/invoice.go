package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the state of an invoice row.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceIssued    InvoiceStatus = "ISSUED"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Invoice represents a row in the invoices table.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"`
	CompanyID      string          `json:"companyID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	CustomerID     string          `json:"customerID"`
	InvoiceDate    time.Time       `json:"invoiceDate"`
	DueDate        *time.Time      `json:"dueDate"`
	CurrencyCode   string          `json:"currencyCode"`
	Status         InvoiceStatus   `json:"status"`
	DiscountType   string          `json:"discountType"`
	DiscountValue  decimal.Decimal `json:"discountValue"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	TaxInclusive   bool            `json:"taxInclusive"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
	PaidTotal      decimal.Decimal `json:"paidTotal"`
	Notes          string          `json:"notes"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// InvoiceLine represents a row in the invoice_lines table.
type InvoiceLine struct {
	LineID      string          `json:"lineID"`
	InvoiceID   string          `json:"invoiceID"`
	LineNumber  int             `json:"lineNumber"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
	AuditFields
}
