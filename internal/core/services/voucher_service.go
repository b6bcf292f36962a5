package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
	"github.com/hisabiq/hisab_backend/internal/middleware"
)

type voucherService struct {
	voucherRepo  portsrepo.VoucherRepositoryFacade
	partySvc     portssvc.PartySvcFacade
	accountSvc   portssvc.AccountSvcFacade
	companySvc   portssvc.CompanySvcFacade
	numberingSvc portssvc.NumberingSvcFacade
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, partySvc portssvc.PartySvcFacade, accountSvc portssvc.AccountSvcFacade, companySvc portssvc.CompanySvcFacade, numberingSvc portssvc.NumberingSvcFacade) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo:  voucherRepo,
		partySvc:     partySvc,
		accountSvc:   accountSvc,
		companySvc:   companySvc,
		numberingSvc: numberingSvc,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

func (s *voucherService) CreateVoucher(ctx context.Context, companyID string, req dto.SaveVoucherRequest, userID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.VoucherType != domain.ReceiptVoucher && req.VoucherType != domain.PaymentVoucher {
		return nil, fmt.Errorf("%w: unknown voucher type %s", apperrors.ErrValidation, req.VoucherType)
	}

	if _, err := s.partySvc.GetPartyByID(ctx, companyID, req.PartyID, userID); err != nil {
		return nil, fmt.Errorf("%w: party %s not found", apperrors.ErrValidation, req.PartyID)
	}
	account, err := s.accountSvc.GetAccountByID(ctx, companyID, req.AccountID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, req.AccountID)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, req.AccountID)
	}

	number, err := s.numberingSvc.NextNumber(ctx, companyID, domain.KindVoucher)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate voucher number: %w", err)
	}

	now := time.Now().UTC()
	voucher := domain.Voucher{
		VoucherID:     uuid.NewString(),
		CompanyID:     companyID,
		VoucherNumber: number,
		VoucherType:   req.VoucherType,
		VoucherDate:   req.VoucherDate,
		PartyID:       req.PartyID,
		AccountID:     req.AccountID,
		Amount:        req.Amount.Round(2),
		CurrencyCode:  req.CurrencyCode,
		Description:   req.Description,
		Status:        domain.VoucherIssued,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if voucher.CurrencyCode == "" {
		voucher.CurrencyCode = account.CurrencyCode
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		logger.Error("Failed to save voucher", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create voucher: %w", err)
	}
	logger.Info("Voucher created", slog.String("voucher_id", voucher.VoucherID), slog.String("voucher_number", voucher.VoucherNumber))
	return &voucher, nil
}

func (s *voucherService) GetVoucherByID(ctx context.Context, companyID, voucherID, userID string) (*domain.Voucher, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return voucher, nil
}

func (s *voucherService) ListVouchers(ctx context.Context, companyID, userID string, voucherType *domain.VoucherType, limit int, nextToken *string) (*dto.ListVouchersResponse, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	vouchers, next, err := s.voucherRepo.ListVouchersByCompany(ctx, companyID, voucherType, limit, nextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve vouchers: %w", err)
	}
	responses := make([]dto.VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = dto.ToVoucherResponse(&vouchers[i])
	}
	return &dto.ListVouchersResponse{Vouchers: responses, NextToken: next}, nil
}

func (s *voucherService) CancelVoucher(ctx context.Context, companyID, voucherID, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return err
	}
	if voucher.CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	if voucher.Status == domain.VoucherCancelled {
		return fmt.Errorf("%w: voucher is already cancelled", apperrors.ErrInvalidState)
	}

	if err := s.voucherRepo.UpdateVoucherStatus(ctx, voucherID, domain.VoucherCancelled, userID, time.Now().UTC()); err != nil {
		logger.Error("Failed to cancel voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return fmt.Errorf("failed to cancel voucher: %w", err)
	}
	logger.Info("Voucher cancelled", slog.String("voucher_id", voucherID))
	return nil
}
