package services

import (
	"context"
	"errors"
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

type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// AuthorizeUserAction verifies the user has at least the required role in the
// company. Any failure to resolve the membership denies the action.
func (s *companyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, required domain.UserCompanyRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	membership, err := s.companyRepo.FindUserCompanyRole(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user has no access to this company", apperrors.ErrForbidden)
		}
		logger.Error("Failed to check user role", slog.String("error", err.Error()), slog.String("user_id", userID), slog.String("company_id", companyID))
		return fmt.Errorf("%w: unable to verify permissions", apperrors.ErrForbidden)
	}
	if membership.Role == domain.RoleRemoved {
		return fmt.Errorf("%w: user has been removed from this company", apperrors.ErrForbidden)
	}
	if !membership.Role.Covers(required) {
		return fmt.Errorf("%w: requires %s role", apperrors.ErrForbidden, required)
	}
	return nil
}

// CreateCompany creates a company and makes the creator its admin.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	company := domain.Company{
		CompanyID:           uuid.NewString(),
		Name:                req.Name,
		NameAr:              req.NameAr,
		DefaultCurrencyCode: &req.DefaultCurrencyCode,
		TaxNumber:           req.TaxNumber,
		Address:             req.Address,
		IsActive:            true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		logger.Error("Failed to create company", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	membership := domain.UserCompany{
		UserID:    creatorUserID,
		CompanyID: company.CompanyID,
		Role:      domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.companyRepo.SaveUserCompany(ctx, membership); err != nil {
		logger.Error("Failed to add creator as admin", slog.String("error", err.Error()), slog.String("company_id", company.CompanyID))
		return nil, fmt.Errorf("failed to assign creator role: %w", err)
	}

	logger.Info("Company created", slog.String("company_id", company.CompanyID), slog.String("name", company.Name))
	return &company, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID, userID string) (*domain.Company, error) {
	if err := s.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

func (s *companyService) UpdateSettings(ctx context.Context, companyID string, req dto.UpdateCompanySettingsRequest, userID string) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.NameAr != nil {
		company.NameAr = *req.NameAr
	}
	if req.DefaultCurrencyCode != nil {
		company.DefaultCurrencyCode = req.DefaultCurrencyCode
	}
	if req.TaxNumber != nil {
		company.TaxNumber = *req.TaxNumber
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.DefaultTaxRate != nil {
		company.DefaultTaxRate = *req.DefaultTaxRate
	}
	company.LastUpdatedAt = time.Now().UTC()
	company.LastUpdatedBy = userID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		logger.Error("Failed to update company settings", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to update company settings: %w", err)
	}
	return company, nil
}

func (s *companyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	return s.companyRepo.ListCompaniesByUser(ctx, userID, false)
}

func (s *companyService) AddMember(ctx context.Context, addingUserID, targetUserID, companyID string, role domain.UserCompanyRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, addingUserID, companyID, domain.RoleAdmin); err != nil {
		return err
	}

	now := time.Now().UTC()
	membership := domain.UserCompany{
		UserID:    targetUserID,
		CompanyID: companyID,
		Role:      role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     addingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: addingUserID,
		},
	}
	if err := s.companyRepo.SaveUserCompany(ctx, membership); err != nil {
		logger.Error("Failed to add member", slog.String("error", err.Error()), slog.String("company_id", companyID), slog.String("target_user_id", targetUserID))
		return fmt.Errorf("failed to add member: %w", err)
	}
	logger.Info("Member added to company", slog.String("company_id", companyID), slog.String("user_id", targetUserID), slog.String("role", string(role)))
	return nil
}
