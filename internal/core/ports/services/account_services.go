package services

import (
	"context"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/dto"
)

// AccountSvcFacade exposes chart-of-accounts operations.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, companyID, accountID, userID string) (*domain.Account, error)
	GetAccountByIDs(ctx context.Context, companyID string, accountIDs []string, userID string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, companyID, userID string, limit, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, companyID, accountID, userID string) error
}
