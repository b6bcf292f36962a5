package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceIssued    InvoiceStatus = "ISSUED"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// DiscountType selects how an invoice discount value is interpreted.
type DiscountType string

const (
	DiscountNone    DiscountType = "NONE"
	DiscountPercent DiscountType = "PERCENT"
	DiscountAmount  DiscountType = "AMOUNT"
)

// Invoice is a header record with child line items. Totals are derived from
// the lines and the discount/tax policy; they are never accepted from input.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	CompanyID     string          `json:"companyID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerID"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       *time.Time      `json:"dueDate"`
	CurrencyCode  string          `json:"currencyCode"`
	Status        InvoiceStatus   `json:"status"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	TaxRate       decimal.Decimal `json:"taxRate"` // percentage, e.g. 15
	TaxInclusive  bool            `json:"taxInclusive"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
	PaidTotal     decimal.Decimal `json:"paidTotal"`
	Notes         string          `json:"notes"`
	IsActive      bool            `json:"isActive"`
	AuditFields
	Lines []InvoiceLine `json:"lines,omitempty"`
}

// InvoiceLine is one item row within an invoice.
type InvoiceLine struct {
	LineID      string          `json:"lineID"`
	InvoiceID   string          `json:"invoiceID"`
	LineNumber  int             `json:"lineNumber"` // zero-based position within the invoice
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"` // derived: quantity * unitPrice
	AuditFields
}
