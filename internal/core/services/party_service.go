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

// partyService manages suppliers and customers. Both kinds share one record
// shape and one repository; the kind is fixed at creation.
type partyService struct {
	partyRepo  portsrepo.PartyRepositoryFacade
	companySvc portssvc.CompanySvcFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade, companySvc portssvc.CompanySvcFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo, companySvc: companySvc}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, companyID string, kind domain.PartyKind, req dto.SavePartyRequest, userID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	party := domain.Party{
		PartyID:        uuid.NewString(),
		CompanyID:      companyID,
		Kind:           kind,
		Name:           req.Name,
		NameAr:         req.NameAr,
		TaxNumber:      req.TaxNumber,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		OpeningBalance: req.OpeningBalance,
		Notes:          req.Notes,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		logger.Error("Failed to save party", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create %s: %w", kind, err)
	}
	logger.Info("Party created", slog.String("party_id", party.PartyID), slog.String("kind", string(kind)))
	return &party, nil
}

func (s *partyService) GetPartyByID(ctx context.Context, companyID, partyID, userID string) (*domain.Party, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context, companyID, userID string, kind domain.PartyKind, limit, offset int) ([]domain.Party, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.partyRepo.ListPartiesByCompany(ctx, companyID, kind, limit, offset)
}

func (s *partyService) UpdateParty(ctx context.Context, companyID, partyID string, req dto.SavePartyRequest, userID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}

	party.Name = req.Name
	party.NameAr = req.NameAr
	party.TaxNumber = req.TaxNumber
	party.Phone = req.Phone
	party.Email = req.Email
	party.Address = req.Address
	party.OpeningBalance = req.OpeningBalance
	party.Notes = req.Notes
	party.LastUpdatedAt = time.Now().UTC()
	party.LastUpdatedBy = userID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		logger.Error("Failed to update party", slog.String("error", err.Error()), slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to update party: %w", err)
	}
	return party, nil
}

func (s *partyService) DeactivateParty(ctx context.Context, companyID, partyID, userID string) error {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return err
	}
	if party.CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	return s.partyRepo.SetPartyActive(ctx, partyID, false, userID, time.Now().UTC())
}
