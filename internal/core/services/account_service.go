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
)

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	companySvc  portssvc.CompanySvcFacade
	currencySvc portssvc.CurrencySvcFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, companySvc portssvc.CompanySvcFacade, currencySvc portssvc.CurrencySvcFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		companySvc:  companySvc,
		currencySvc: currencySvc,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	if _, err := s.currencySvc.GetCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		return nil, fmt.Errorf("%w: unknown currency code %s", apperrors.ErrValidation, req.CurrencyCode)
	}

	if req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, req.ParentAccountID)
		if err != nil {
			return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, req.ParentAccountID)
		}
		if parent.CompanyID != companyID {
			return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, req.ParentAccountID)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		CompanyID:       companyID,
		Code:            req.Code,
		Name:            req.Name,
		NameAr:          req.NameAr,
		AccountType:     req.AccountType,
		CurrencyCode:    req.CurrencyCode,
		ParentAccountID: req.ParentAccountID,
		Description:     req.Description,
		IsActive:        true,
		Balance:         decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, companyID, accountID, userID string) (*domain.Account, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *accountService) GetAccountByIDs(ctx context.Context, companyID string, accountIDs []string, userID string) (map[string]domain.Account, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) ListAccounts(ctx context.Context, companyID, userID string, limit, offset int) ([]domain.Account, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.accountRepo.ListAccountsByCompany(ctx, companyID, limit, offset)
}

func (s *accountService) UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}

	// Code, type and currency are immutable once the account carries postings.
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.NameAr != nil {
		account.NameAr = *req.NameAr
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, companyID, accountID, userID string) error {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	return s.accountRepo.SetAccountActive(ctx, accountID, false, userID, time.Now().UTC())
}
