package mapping

import (
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:          d.EntryID,
		CompanyID:        d.CompanyID,
		EntryNumber:      d.EntryNumber,
		EntryDate:        d.EntryDate,
		Reference:        d.Reference,
		Description:      d.Description,
		Status:           models.EntryStatus(d.Status),
		CurrencyCode:     d.CurrencyCode,
		TotalDebit:       d.TotalDebit,
		TotalCredit:      d.TotalCredit,
		PostedAt:         d.PostedAt,
		PostedBy:         d.PostedBy,
		ReversedAt:       d.ReversedAt,
		ReversedBy:       d.ReversedBy,
		ReversalReason:   d.ReversalReason,
		OriginalEntryID:  d.OriginalEntryID,
		ReversingEntryID: d.ReversingEntryID,
		Notes:            d.Notes,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:          m.EntryID,
		CompanyID:        m.CompanyID,
		EntryNumber:      m.EntryNumber,
		EntryDate:        m.EntryDate,
		Reference:        m.Reference,
		Description:      m.Description,
		Status:           domain.EntryStatus(m.Status),
		CurrencyCode:     m.CurrencyCode,
		TotalDebit:       m.TotalDebit,
		TotalCredit:      m.TotalCredit,
		PostedAt:         m.PostedAt,
		PostedBy:         m.PostedBy,
		ReversedAt:       m.ReversedAt,
		ReversedBy:       m.ReversedBy,
		ReversalReason:   m.ReversalReason,
		OriginalEntryID:  m.OriginalEntryID,
		ReversingEntryID: m.ReversingEntryID,
		Notes:            m.Notes,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:         d.LineID,
		EntryID:        d.EntryID,
		LineNumber:     d.LineNumber,
		AccountID:      d.AccountID,
		Description:    d.Description,
		DebitAmount:    d.DebitAmount,
		CreditAmount:   d.CreditAmount,
		ProjectID:      d.ProjectID,
		CustomerID:     d.CustomerID,
		SupplierID:     d.SupplierID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		RunningBalance: d.RunningBalance,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:         m.LineID,
		EntryID:        m.EntryID,
		LineNumber:     m.LineNumber,
		AccountID:      m.AccountID,
		Description:    m.Description,
		DebitAmount:    m.DebitAmount,
		CreditAmount:   m.CreditAmount,
		ProjectID:      m.ProjectID,
		CustomerID:     m.CustomerID,
		SupplierID:     m.SupplierID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		RunningBalance: m.RunningBalance,
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to a slice of domain JournalLines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
