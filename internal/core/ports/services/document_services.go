package services

import (
	"context"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/dto"
)

// InvoiceSvcFacade exposes invoice operations.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, companyID string, req dto.SaveInvoiceRequest, userID string) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, companyID, invoiceID, userID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, companyID, userID string, limit int, nextToken *string) (*dto.ListInvoicesResponse, error)
	UpdateInvoice(ctx context.Context, companyID, invoiceID string, req dto.SaveInvoiceRequest, userID string) (*domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, companyID, invoiceID string, status domain.InvoiceStatus, userID string) error
	DeleteInvoice(ctx context.Context, companyID, invoiceID, userID string) error
}

// ExpenseSvcFacade exposes expense operations.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, companyID string, req dto.SaveExpenseRequest, userID string) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, companyID, expenseID, userID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, companyID, userID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)
	UpdateExpense(ctx context.Context, companyID, expenseID string, req dto.SaveExpenseRequest, userID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, companyID, expenseID, userID string) error
}

// VoucherSvcFacade exposes voucher operations.
type VoucherSvcFacade interface {
	CreateVoucher(ctx context.Context, companyID string, req dto.SaveVoucherRequest, userID string) (*domain.Voucher, error)
	GetVoucherByID(ctx context.Context, companyID, voucherID, userID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, companyID, userID string, voucherType *domain.VoucherType, limit int, nextToken *string) (*dto.ListVouchersResponse, error)
	CancelVoucher(ctx context.Context, companyID, voucherID, userID string) error
}

// CheckSvcFacade exposes check operations.
type CheckSvcFacade interface {
	CreateCheck(ctx context.Context, companyID string, req dto.SaveCheckRequest, userID string) (*domain.Check, error)
	GetCheckByID(ctx context.Context, companyID, checkID, userID string) (*domain.Check, error)
	ListChecks(ctx context.Context, companyID, userID string, direction *domain.CheckDirection, limit int, nextToken *string) (*dto.ListChecksResponse, error)
	UpdateCheckStatus(ctx context.Context, companyID, checkID string, status domain.CheckStatus, userID string) error
}

// PartySvcFacade exposes supplier/customer operations.
type PartySvcFacade interface {
	CreateParty(ctx context.Context, companyID string, kind domain.PartyKind, req dto.SavePartyRequest, userID string) (*domain.Party, error)
	GetPartyByID(ctx context.Context, companyID, partyID, userID string) (*domain.Party, error)
	ListParties(ctx context.Context, companyID, userID string, kind domain.PartyKind, limit, offset int) ([]domain.Party, error)
	UpdateParty(ctx context.Context, companyID, partyID string, req dto.SavePartyRequest, userID string) (*domain.Party, error)
	DeactivateParty(ctx context.Context, companyID, partyID, userID string) error
}

// AttachmentSvcFacade records and lists attachment metadata. The blob itself
// lives in the external attachment store.
type AttachmentSvcFacade interface {
	RecordAttachment(ctx context.Context, companyID string, attachment domain.Attachment, userID string) (*domain.Attachment, error)
	ListAttachments(ctx context.Context, companyID, parentType, parentID, userID string) ([]domain.Attachment, error)
	RemoveAttachment(ctx context.Context, companyID, attachmentID, userID string) error
}
