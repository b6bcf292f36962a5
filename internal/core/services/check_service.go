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

// checkStatusTransitions encodes the allowed check state machine. Cleared,
// bounced and cancelled are all terminal.
var checkStatusTransitions = map[domain.CheckStatus][]domain.CheckStatus{
	domain.CheckIssued: {domain.CheckCleared, domain.CheckBounced, domain.CheckCancelled},
}

type checkService struct {
	checkRepo    portsrepo.CheckRepositoryFacade
	partySvc     portssvc.PartySvcFacade
	companySvc   portssvc.CompanySvcFacade
	numberingSvc portssvc.NumberingSvcFacade
}

// NewCheckService creates a new CheckService.
func NewCheckService(checkRepo portsrepo.CheckRepositoryFacade, partySvc portssvc.PartySvcFacade, companySvc portssvc.CompanySvcFacade, numberingSvc portssvc.NumberingSvcFacade) portssvc.CheckSvcFacade {
	return &checkService{
		checkRepo:    checkRepo,
		partySvc:     partySvc,
		companySvc:   companySvc,
		numberingSvc: numberingSvc,
	}
}

var _ portssvc.CheckSvcFacade = (*checkService)(nil)

func (s *checkService) CreateCheck(ctx context.Context, companyID string, req dto.SaveCheckRequest, userID string) (*domain.Check, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.Direction != domain.CheckIncoming && req.Direction != domain.CheckOutgoing {
		return nil, fmt.Errorf("%w: unknown check direction %s", apperrors.ErrValidation, req.Direction)
	}
	if req.DueDate.Before(req.IssueDate) {
		return nil, fmt.Errorf("%w: due date cannot precede issue date", apperrors.ErrValidation)
	}

	if _, err := s.partySvc.GetPartyByID(ctx, companyID, req.PartyID, userID); err != nil {
		return nil, fmt.Errorf("%w: party %s not found", apperrors.ErrValidation, req.PartyID)
	}

	number, err := s.numberingSvc.NextNumber(ctx, companyID, domain.KindCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate check number: %w", err)
	}

	now := time.Now().UTC()
	check := domain.Check{
		CheckID:      uuid.NewString(),
		CompanyID:    companyID,
		CheckNumber:  number,
		BankCheckNo:  req.BankCheckNo,
		Direction:    req.Direction,
		PartyID:      req.PartyID,
		BankName:     req.BankName,
		Amount:       req.Amount.Round(2),
		CurrencyCode: req.CurrencyCode,
		IssueDate:    req.IssueDate,
		DueDate:      req.DueDate,
		Status:       domain.CheckIssued,
		Description:  req.Description,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.checkRepo.SaveCheck(ctx, check); err != nil {
		logger.Error("Failed to save check", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create check: %w", err)
	}
	logger.Info("Check created", slog.String("check_id", check.CheckID), slog.String("check_number", check.CheckNumber))
	return &check, nil
}

func (s *checkService) GetCheckByID(ctx context.Context, companyID, checkID, userID string) (*domain.Check, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	check, err := s.checkRepo.FindCheckByID(ctx, checkID)
	if err != nil {
		return nil, err
	}
	if check.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return check, nil
}

func (s *checkService) ListChecks(ctx context.Context, companyID, userID string, direction *domain.CheckDirection, limit int, nextToken *string) (*dto.ListChecksResponse, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	checks, next, err := s.checkRepo.ListChecksByCompany(ctx, companyID, direction, limit, nextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checks: %w", err)
	}
	responses := make([]dto.CheckResponse, len(checks))
	for i := range checks {
		responses[i] = dto.ToCheckResponse(&checks[i])
	}
	return &dto.ListChecksResponse{Checks: responses, NextToken: next}, nil
}

func (s *checkService) UpdateCheckStatus(ctx context.Context, companyID, checkID string, status domain.CheckStatus, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}
	check, err := s.checkRepo.FindCheckByID(ctx, checkID)
	if err != nil {
		return err
	}
	if check.CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	if !checkTransitionAllowed(check.Status, status) {
		return fmt.Errorf("%w: cannot move check from %s to %s", apperrors.ErrInvalidState, check.Status, status)
	}

	if err := s.checkRepo.UpdateCheckStatus(ctx, checkID, status, userID, time.Now().UTC()); err != nil {
		logger.Error("Failed to update check status", slog.String("error", err.Error()), slog.String("check_id", checkID))
		return fmt.Errorf("failed to update check status: %w", err)
	}
	logger.Info("Check status updated", slog.String("check_id", checkID), slog.String("status", string(status)))
	return nil
}

func checkTransitionAllowed(from, to domain.CheckStatus) bool {
	for _, allowed := range checkStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
