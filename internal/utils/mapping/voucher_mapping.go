package mapping

import (
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:      d.VoucherID,
		CompanyID:      d.CompanyID,
		VoucherNumber:  d.VoucherNumber,
		VoucherType:    string(d.VoucherType),
		VoucherDate:    d.VoucherDate,
		PartyID:        d.PartyID,
		AccountID:      d.AccountID,
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		Description:    d.Description,
		Status:         string(d.Status),
		JournalEntryID: d.JournalEntryID,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:      m.VoucherID,
		CompanyID:      m.CompanyID,
		VoucherNumber:  m.VoucherNumber,
		VoucherType:    domain.VoucherType(m.VoucherType),
		VoucherDate:    m.VoucherDate,
		PartyID:        m.PartyID,
		AccountID:      m.AccountID,
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		Description:    m.Description,
		Status:         domain.VoucherStatus(m.Status),
		JournalEntryID: m.JournalEntryID,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
