package repositories

import (
	"context"
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepositoryFacade defines persistence operations for chart-of-accounts entries.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccountsByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	SetAccountActive(ctx context.Context, accountID string, isActive bool, updatedBy string, updatedAt time.Time) error

	// FindAccountsByIDsForUpdate locks the account rows inside the caller's
	// transaction and returns their current state. Used by journal posting to
	// serialize balance updates.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx applies net balance deltas to the locked rows.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, updatedBy string, updatedAt time.Time) error
}
