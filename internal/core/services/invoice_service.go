package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
	"github.com/hisabiq/hisab_backend/internal/middleware"
	"github.com/hisabiq/hisab_backend/internal/utils/accounting"
)

// invoiceStatusTransitions encodes the allowed invoice state machine.
var invoiceStatusTransitions = map[domain.InvoiceStatus][]domain.InvoiceStatus{
	domain.InvoiceDraft:  {domain.InvoiceIssued, domain.InvoiceCancelled},
	domain.InvoiceIssued: {domain.InvoicePaid, domain.InvoiceCancelled},
}

type invoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	partySvc     portssvc.PartySvcFacade
	companySvc   portssvc.CompanySvcFacade
	numberingSvc portssvc.NumberingSvcFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, partySvc portssvc.PartySvcFacade, companySvc portssvc.CompanySvcFacade, numberingSvc portssvc.NumberingSvcFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		partySvc:     partySvc,
		companySvc:   companySvc,
		numberingSvc: numberingSvc,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, companyID string, req dto.SaveInvoiceRequest, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	if _, err := s.partySvc.GetPartyByID(ctx, companyID, req.CustomerID, userID); err != nil {
		return nil, fmt.Errorf("%w: customer %s not found", apperrors.ErrValidation, req.CustomerID)
	}

	number, err := s.numberingSvc.NextNumber(ctx, companyID, domain.KindInvoice)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		CompanyID:     companyID,
		InvoiceNumber: number,
		Status:        domain.InvoiceDraft,
		PaidTotal:     decimal.Zero,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: userID,
		},
	}
	lines := s.applyInvoiceRequest(&invoice, req, userID, now)

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice, lines); err != nil {
		logger.Error("Failed to save invoice", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	logger.Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_number", invoice.InvoiceNumber))
	invoice.Lines = lines
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, companyID, invoiceID, userID string) (*domain.Invoice, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	lines, err := s.invoiceRepo.FindLinesByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoice lines: %w", err)
	}
	invoice.Lines = lines
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, companyID, userID string, limit int, nextToken *string) (*dto.ListInvoicesResponse, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	invoices, next, err := s.invoiceRepo.ListInvoicesByCompany(ctx, companyID, limit, nextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = dto.ToInvoiceResponse(&invoices[i])
	}
	return &dto.ListInvoicesResponse{Invoices: responses, NextToken: next}, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, companyID, invoiceID string, req dto.SaveInvoiceRequest, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	if invoice.Status != domain.InvoiceDraft {
		return nil, fmt.Errorf("%w: invoice status is %s, only drafts can be edited", apperrors.ErrInvalidState, invoice.Status)
	}

	now := time.Now().UTC()
	lines := s.applyInvoiceRequest(invoice, req, userID, now)

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice, lines); err != nil {
		logger.Error("Failed to update invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	invoice.Lines = lines
	return invoice, nil
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, companyID, invoiceID string, status domain.InvoiceStatus, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice.CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	if !invoiceTransitionAllowed(invoice.Status, status) {
		return fmt.Errorf("%w: cannot move invoice from %s to %s", apperrors.ErrInvalidState, invoice.Status, status)
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, status, userID, time.Now().UTC()); err != nil {
		logger.Error("Failed to update invoice status", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	logger.Info("Invoice status updated", slog.String("invoice_id", invoiceID), slog.String("status", string(status)))
	return nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, companyID, invoiceID, userID string) error {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice.CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	if invoice.Status != domain.InvoiceDraft {
		return fmt.Errorf("%w: invoice status is %s", apperrors.ErrCannotDeletePosted, invoice.Status)
	}
	return s.invoiceRepo.DeleteInvoice(ctx, invoiceID)
}

// applyInvoiceRequest copies request fields onto the invoice, rebuilds the
// line set and recomputes all derived totals.
func (s *invoiceService) applyInvoiceRequest(invoice *domain.Invoice, req dto.SaveInvoiceRequest, userID string, now time.Time) []domain.InvoiceLine {
	invoice.CustomerID = req.CustomerID
	invoice.InvoiceDate = req.InvoiceDate
	invoice.DueDate = req.DueDate
	invoice.CurrencyCode = req.CurrencyCode
	invoice.DiscountType = req.DiscountType
	if invoice.DiscountType == "" {
		invoice.DiscountType = domain.DiscountNone
	}
	invoice.DiscountValue = req.DiscountValue
	invoice.TaxRate = req.TaxRate
	invoice.TaxInclusive = req.TaxInclusive
	invoice.Notes = req.Notes
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = userID

	lines := make([]domain.InvoiceLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.InvoiceLine{
			LineID:      uuid.NewString(),
			InvoiceID:   invoice.InvoiceID,
			LineNumber:  i,
			Description: lineReq.Description,
			Quantity:    lineReq.Quantity,
			UnitPrice:   lineReq.UnitPrice,
			LineTotal:   lineReq.Quantity.Mul(lineReq.UnitPrice).Round(2),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	totals := accounting.RecomputeInvoiceTotals(lines, accounting.InvoicePolicy{
		DiscountType:  invoice.DiscountType,
		DiscountValue: invoice.DiscountValue,
		TaxRate:       invoice.TaxRate,
		TaxInclusive:  invoice.TaxInclusive,
	})
	invoice.Subtotal = totals.Subtotal
	invoice.DiscountAmount = totals.DiscountAmount
	invoice.TaxAmount = totals.TaxAmount
	invoice.Total = totals.Total
	return lines
}

func invoiceTransitionAllowed(from, to domain.InvoiceStatus) bool {
	for _, allowed := range invoiceStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
