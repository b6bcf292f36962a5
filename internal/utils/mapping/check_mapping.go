package mapping

import (
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/models"
)

// ToModelCheck converts a domain Check to a model Check
func ToModelCheck(d domain.Check) models.Check {
	return models.Check{
		CheckID:        d.CheckID,
		CompanyID:      d.CompanyID,
		CheckNumber:    d.CheckNumber,
		BankCheckNo:    d.BankCheckNo,
		Direction:      string(d.Direction),
		PartyID:        d.PartyID,
		BankName:       d.BankName,
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		IssueDate:      d.IssueDate,
		DueDate:        d.DueDate,
		Status:         string(d.Status),
		Description:    d.Description,
		JournalEntryID: d.JournalEntryID,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCheck converts a model Check to a domain Check
func ToDomainCheck(m models.Check) domain.Check {
	return domain.Check{
		CheckID:        m.CheckID,
		CompanyID:      m.CompanyID,
		CheckNumber:    m.CheckNumber,
		BankCheckNo:    m.BankCheckNo,
		Direction:      domain.CheckDirection(m.Direction),
		PartyID:        m.PartyID,
		BankName:       m.BankName,
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		IssueDate:      m.IssueDate,
		DueDate:        m.DueDate,
		Status:         domain.CheckStatus(m.Status),
		Description:    m.Description,
		JournalEntryID: m.JournalEntryID,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
