package mapping

import (
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/models"
)

// ToModelParty converts a domain Party to a model Party
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:        d.PartyID,
		CompanyID:      d.CompanyID,
		Kind:           string(d.Kind),
		Name:           d.Name,
		NameAr:         d.NameAr,
		TaxNumber:      d.TaxNumber,
		Phone:          d.Phone,
		Email:          d.Email,
		Address:        d.Address,
		OpeningBalance: d.OpeningBalance,
		Notes:          d.Notes,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:        m.PartyID,
		CompanyID:      m.CompanyID,
		Kind:           domain.PartyKind(m.Kind),
		Name:           m.Name,
		NameAr:         m.NameAr,
		TaxNumber:      m.TaxNumber,
		Phone:          m.Phone,
		Email:          m.Email,
		Address:        m.Address,
		OpeningBalance: m.OpeningBalance,
		Notes:          m.Notes,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
