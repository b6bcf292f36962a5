package mapping

import (
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		CompanyID:      d.CompanyID,
		InvoiceNumber:  d.InvoiceNumber,
		CustomerID:     d.CustomerID,
		InvoiceDate:    d.InvoiceDate,
		DueDate:        d.DueDate,
		CurrencyCode:   d.CurrencyCode,
		Status:         models.InvoiceStatus(d.Status),
		DiscountType:   string(d.DiscountType),
		DiscountValue:  d.DiscountValue,
		TaxRate:        d.TaxRate,
		TaxInclusive:   d.TaxInclusive,
		Subtotal:       d.Subtotal,
		DiscountAmount: d.DiscountAmount,
		TaxAmount:      d.TaxAmount,
		Total:          d.Total,
		PaidTotal:      d.PaidTotal,
		Notes:          d.Notes,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		CompanyID:      m.CompanyID,
		InvoiceNumber:  m.InvoiceNumber,
		CustomerID:     m.CustomerID,
		InvoiceDate:    m.InvoiceDate,
		DueDate:        m.DueDate,
		CurrencyCode:   m.CurrencyCode,
		Status:         domain.InvoiceStatus(m.Status),
		DiscountType:   domain.DiscountType(m.DiscountType),
		DiscountValue:  m.DiscountValue,
		TaxRate:        m.TaxRate,
		TaxInclusive:   m.TaxInclusive,
		Subtotal:       m.Subtotal,
		DiscountAmount: m.DiscountAmount,
		TaxAmount:      m.TaxAmount,
		Total:          m.Total,
		PaidTotal:      m.PaidTotal,
		Notes:          m.Notes,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoiceLine converts a domain InvoiceLine to a model InvoiceLine
func ToModelInvoiceLine(d domain.InvoiceLine) models.InvoiceLine {
	return models.InvoiceLine{
		LineID:      d.LineID,
		InvoiceID:   d.InvoiceID,
		LineNumber:  d.LineNumber,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		LineTotal:   d.LineTotal,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoiceLine converts a model InvoiceLine to a domain InvoiceLine
func ToDomainInvoiceLine(m models.InvoiceLine) domain.InvoiceLine {
	return domain.InvoiceLine{
		LineID:      m.LineID,
		InvoiceID:   m.InvoiceID,
		LineNumber:  m.LineNumber,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		LineTotal:   m.LineTotal,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceLineSlice converts a slice of model InvoiceLines to a slice of domain InvoiceLines
func ToDomainInvoiceLineSlice(ms []models.InvoiceLine) []domain.InvoiceLine {
	ds := make([]domain.InvoiceLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceLine(m)
	}
	return ds
}
