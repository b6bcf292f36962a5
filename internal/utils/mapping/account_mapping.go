package mapping

import (
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		CompanyID:       d.CompanyID,
		Code:            d.Code,
		Name:            d.Name,
		NameAr:          d.NameAr,
		AccountType:     models.AccountType(d.AccountType),
		CurrencyCode:    d.CurrencyCode,
		ParentAccountID: d.ParentAccountID,
		Description:     d.Description,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
		Balance:         d.Balance,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		CompanyID:       m.CompanyID,
		Code:            m.Code,
		Name:            m.Name,
		NameAr:          m.NameAr,
		AccountType:     domain.AccountType(m.AccountType),
		CurrencyCode:    m.CurrencyCode,
		ParentAccountID: m.ParentAccountID,
		Description:     m.Description,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		Balance:         m.Balance,
	}
}
