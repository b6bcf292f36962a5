package repositories

import (
	"context"
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
)

// InvoiceRepositoryFacade defines persistence operations for invoices.
type InvoiceRepositoryFacade interface {
	// SaveInvoice persists the header and a full replacement of the line set
	// as one database transaction.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FindLinesByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceLine, error)
	ListInvoicesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) error
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// ExpenseRepositoryFacade defines persistence operations for expenses.
type ExpenseRepositoryFacade interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpensesByCompany(ctx context.Context, companyID string, filters domain.ExpenseFilters, limit int, nextToken *string) ([]domain.Expense, *string, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}

// VoucherRepositoryFacade defines persistence operations for vouchers.
type VoucherRepositoryFacade interface {
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchersByCompany(ctx context.Context, companyID string, voucherType *domain.VoucherType, limit int, nextToken *string) ([]domain.Voucher, *string, error)
	UpdateVoucher(ctx context.Context, voucher domain.Voucher) error
	UpdateVoucherStatus(ctx context.Context, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error
}

// CheckRepositoryFacade defines persistence operations for checks.
type CheckRepositoryFacade interface {
	SaveCheck(ctx context.Context, check domain.Check) error
	FindCheckByID(ctx context.Context, checkID string) (*domain.Check, error)
	ListChecksByCompany(ctx context.Context, companyID string, direction *domain.CheckDirection, limit int, nextToken *string) ([]domain.Check, *string, error)
	UpdateCheckStatus(ctx context.Context, checkID string, status domain.CheckStatus, updatedBy string, updatedAt time.Time) error
}

// PartyRepositoryFacade defines persistence operations for suppliers and customers.
type PartyRepositoryFacade interface {
	SaveParty(ctx context.Context, party domain.Party) error
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	ListPartiesByCompany(ctx context.Context, companyID string, kind domain.PartyKind, limit int, offset int) ([]domain.Party, error)
	UpdateParty(ctx context.Context, party domain.Party) error
	SetPartyActive(ctx context.Context, partyID string, isActive bool, updatedBy string, updatedAt time.Time) error
}

// AttachmentRepositoryFacade defines persistence for attachment metadata.
type AttachmentRepositoryFacade interface {
	SaveAttachment(ctx context.Context, attachment domain.Attachment) error
	ListAttachmentsByParent(ctx context.Context, companyID, parentType, parentID string) ([]domain.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID string) error
}
