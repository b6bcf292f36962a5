package mapping

import (
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:           d.CompanyID,
		Name:                d.Name,
		NameAr:              d.NameAr,
		DefaultCurrencyCode: d.DefaultCurrencyCode,
		DefaultTaxRate:      d.DefaultTaxRate,
		TaxNumber:           d.TaxNumber,
		Address:             d.Address,
		IsActive:            d.IsActive,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:           m.CompanyID,
		Name:                m.Name,
		NameAr:              m.NameAr,
		DefaultCurrencyCode: m.DefaultCurrencyCode,
		DefaultTaxRate:      m.DefaultTaxRate,
		TaxNumber:           m.TaxNumber,
		Address:             m.Address,
		IsActive:            m.IsActive,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelUserCompany converts a domain UserCompany to a model UserCompany
func ToModelUserCompany(d domain.UserCompany) models.UserCompany {
	return models.UserCompany{
		UserID:      d.UserID,
		CompanyID:   d.CompanyID,
		Role:        models.UserCompanyRole(d.Role),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUserCompany converts a model UserCompany to a domain UserCompany
func ToDomainUserCompany(m models.UserCompany) domain.UserCompany {
	return domain.UserCompany{
		UserID:      m.UserID,
		CompanyID:   m.CompanyID,
		Role:        domain.UserCompanyRole(m.Role),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
