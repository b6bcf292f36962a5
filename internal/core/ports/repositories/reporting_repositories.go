package repositories

import (
	"context"
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
)

// ReportingRepositoryFacade defines read-only aggregate queries.
type ReportingRepositoryFacade interface {
	// TrialBalance sums posted, active lines per account over the date range.
	TrialBalance(ctx context.Context, companyID string, from, to time.Time) ([]domain.TrialBalanceRow, error)

	// FindOrphanedEntries returns entries whose header exists with zero lines.
	// This is the reconciliation pass over partial-write states.
	FindOrphanedEntries(ctx context.Context, companyID string) ([]domain.OrphanedEntry, error)
}
