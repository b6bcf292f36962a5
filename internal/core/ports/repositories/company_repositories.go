package repositories

import (
	"context"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
)

// CompanyRepositoryFacade defines persistence operations for companies and memberships.
type CompanyRepositoryFacade interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	UpdateCompany(ctx context.Context, company domain.Company) error
	ListCompaniesByUser(ctx context.Context, userID string, includeDisabled bool) ([]domain.Company, error)

	SaveUserCompany(ctx context.Context, membership domain.UserCompany) error
	FindUserCompanyRole(ctx context.Context, userID, companyID string) (*domain.UserCompany, error)
}

// CurrencyRepositoryFacade defines persistence operations for currencies.
type CurrencyRepositoryFacade interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
}
