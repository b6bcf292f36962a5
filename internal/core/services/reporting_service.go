package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
	companySvc    portssvc.CompanySvcFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, companySvc portssvc.CompanySvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo, companySvc: companySvc}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) TrialBalance(ctx context.Context, companyID, userID string, from, to time.Time) ([]domain.TrialBalanceRow, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	rows, err := s.reportingRepo.TrialBalance(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute trial balance: %w", err)
	}
	return rows, nil
}

func (s *reportingService) FindOrphanedEntries(ctx context.Context, companyID, userID string) ([]domain.OrphanedEntry, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.reportingRepo.FindOrphanedEntries(ctx, companyID)
}
