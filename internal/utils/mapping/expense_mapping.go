package mapping

import (
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		CompanyID:     d.CompanyID,
		ExpenseNumber: d.ExpenseNumber,
		ExpenseDate:   d.ExpenseDate,
		Category:      d.Category,
		Description:   d.Description,
		SupplierID:    d.SupplierID,
		CurrencyCode:  d.CurrencyCode,
		Status:        string(d.Status),
		Amount:        d.Amount,
		TaxRate:       d.TaxRate,
		TaxInclusive:  d.TaxInclusive,
		NetAmount:     d.NetAmount,
		TaxAmount:     d.TaxAmount,
		GrossAmount:   d.GrossAmount,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		CompanyID:     m.CompanyID,
		ExpenseNumber: m.ExpenseNumber,
		ExpenseDate:   m.ExpenseDate,
		Category:      m.Category,
		Description:   m.Description,
		SupplierID:    m.SupplierID,
		CurrencyCode:  m.CurrencyCode,
		Status:        domain.ExpenseStatus(m.Status),
		Amount:        m.Amount,
		TaxRate:       m.TaxRate,
		TaxInclusive:  m.TaxInclusive,
		NetAmount:     m.NetAmount,
		TaxAmount:     m.TaxAmount,
		GrossAmount:   m.GrossAmount,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
