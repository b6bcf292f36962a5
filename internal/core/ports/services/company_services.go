package services

import (
	"context"
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/dto"
)

// CompanySvcFacade exposes tenant and membership operations. Authorization
// checks run through here; absence of a membership degrades to deny.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, companyID, userID string) (*domain.Company, error)
	UpdateSettings(ctx context.Context, companyID string, req dto.UpdateCompanySettingsRequest, userID string) (*domain.Company, error)
	ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error)
	AddMember(ctx context.Context, addingUserID, targetUserID, companyID string, role domain.UserCompanyRole) error

	// AuthorizeUserAction verifies the user holds at least the required role
	// in the company. Missing membership, removed role or any lookup failure
	// all deny.
	AuthorizeUserAction(ctx context.Context, userID, companyID string, required domain.UserCompanyRole) error
}

// CurrencySvcFacade exposes currency reference data.
type CurrencySvcFacade interface {
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// UserSvcFacade exposes user operations needed by auth flows.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, name, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
	FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error)
}

// ReportingSvcFacade exposes read-only aggregation.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, companyID, userID string, from, to time.Time) ([]domain.TrialBalanceRow, error)
	FindOrphanedEntries(ctx context.Context, companyID, userID string) ([]domain.OrphanedEntry, error)
}
