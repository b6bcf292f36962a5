package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for aggregate queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// TrialBalance sums debit and credit totals per account over the date range.
// Only active POSTED entries contribute. Accounts without postings in the
// range are omitted.
func (r *PgxReportingRepository) TrialBalance(ctx context.Context, companyID string, from, to time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type,
		       COALESCE(SUM(l.debit_amount), 0) AS total_debit,
		       COALESCE(SUM(l.credit_amount), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.company_id = $1
		  AND e.status = 'POSTED'
		  AND e.is_active = TRUE
		  AND e.entry_date >= $2
		  AND e.entry_date <= $3
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance for company "+companyID, err)
	}
	defer rows.Close()

	result := make([]domain.TrialBalanceRow, 0)
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		if scanErr := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName, &accountType, &row.TotalDebit, &row.TotalCredit); scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row for company "+companyID, scanErr)
		}
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows for company "+companyID, err)
	}
	return result, nil
}

// FindOrphanedEntries returns entry headers that have no lines at all. The
// save path writes header and lines in one transaction, so any hit here
// points at data needing manual attention.
func (r *PgxReportingRepository) FindOrphanedEntries(ctx context.Context, companyID string) ([]domain.OrphanedEntry, error) {
	query := `
		SELECT e.entry_id, e.entry_number, e.company_id, e.status
		FROM journal_entries e
		LEFT JOIN journal_lines l ON l.entry_id = e.entry_id
		WHERE e.company_id = $1 AND l.line_id IS NULL
		ORDER BY e.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query orphaned entries for company "+companyID, err)
	}
	defer rows.Close()

	result := make([]domain.OrphanedEntry, 0)
	for rows.Next() {
		var o domain.OrphanedEntry
		var status string
		if scanErr := rows.Scan(&o.EntryID, &o.EntryNumber, &o.CompanyID, &status); scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan orphaned entry row for company "+companyID, scanErr)
		}
		o.Status = domain.EntryStatus(status)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating orphaned entry rows for company "+companyID, err)
	}
	return result, nil
}
