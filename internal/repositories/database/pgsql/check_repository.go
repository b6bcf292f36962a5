package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	"github.com/hisabiq/hisab_backend/internal/models"
	"github.com/hisabiq/hisab_backend/internal/utils/mapping"
	"github.com/hisabiq/hisab_backend/internal/utils/pagination"
)

const checkColumns = `
	check_id, company_id, check_number, bank_check_no, direction, party_id,
	bank_name, amount, currency_code, issue_date, due_date, status, description,
	journal_entry_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxCheckRepository struct {
	BaseRepository
}

// newPgxCheckRepository creates a new repository for check data.
func newPgxCheckRepository(pool *pgxpool.Pool) portsrepo.CheckRepositoryFacade {
	return &PgxCheckRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CheckRepositoryFacade = (*PgxCheckRepository)(nil)

// SaveCheck inserts a new check row.
func (r *PgxCheckRepository) SaveCheck(ctx context.Context, check domain.Check) error {
	m := mapping.ToModelCheck(check)
	query := `
		INSERT INTO checks (` + checkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CheckID, m.CompanyID, m.CheckNumber, m.BankCheckNo, m.Direction, m.PartyID,
		m.BankName, m.Amount, m.CurrencyCode, m.IssueDate, m.DueDate, m.Status, m.Description,
		m.JournalEntryID, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "checks_company_number_key") {
			return apperrors.ErrNumberCollision
		}
		return apperrors.NewAppError(500, "failed to insert check "+m.CheckID, err)
	}
	return nil
}

// FindCheckByID retrieves a check by its ID.
func (r *PgxCheckRepository) FindCheckByID(ctx context.Context, checkID string) (*domain.Check, error) {
	query := `SELECT ` + checkColumns + ` FROM checks WHERE check_id = $1;`
	m, err := scanCheck(r.Pool.QueryRow(ctx, query, checkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find check by ID "+checkID, err)
	}
	d := mapping.ToDomainCheck(*m)
	return &d, nil
}

// ListChecksByCompany retrieves a paginated list of checks, optionally
// filtered by direction, ordered by due_date DESC, created_at DESC.
func (r *PgxCheckRepository) ListChecksByCompany(ctx context.Context, companyID string, direction *domain.CheckDirection, limit int, nextToken *string) ([]domain.Check, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + checkColumns + ` FROM checks`
	filterClause := `WHERE company_id = $1 AND is_active = TRUE`
	args := []interface{}{companyID}
	if direction != nil {
		args = append(args, string(*direction))
		filterClause += ` AND direction = $` + strconv.Itoa(len(args))
	}
	orderByClause := `ORDER BY due_date DESC, created_at DESC`

	var query string
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		cursorClause := `AND (due_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
		query = baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	} else {
		query = baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	}
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query checks for company "+companyID, err)
	}
	defer rows.Close()

	modelChecks := make([]models.Check, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanCheck(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan check row for company "+companyID, scanErr)
		}
		modelChecks = append(modelChecks, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating check rows for company "+companyID, err)
	}

	var nextTokenVal *string
	results := modelChecks
	if len(modelChecks) > limit {
		last := modelChecks[limit-1]
		token := pagination.EncodeToken(last.DueDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelChecks[:limit]
	}

	checks := make([]domain.Check, len(results))
	for i, m := range results {
		checks[i] = mapping.ToDomainCheck(m)
	}
	return checks, nextTokenVal, nil
}

// UpdateCheckStatus transitions a check's status.
func (r *PgxCheckRepository) UpdateCheckStatus(ctx context.Context, checkID string, status domain.CheckStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE checks
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE check_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, checkID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for check "+checkID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("check " + checkID + " not found for update")
	}
	return nil
}

// scanCheck scans one checks row (column order checkColumns).
func scanCheck(row pgx.Row) (*models.Check, error) {
	var m models.Check
	err := row.Scan(
		&m.CheckID,
		&m.CompanyID,
		&m.CheckNumber,
		&m.BankCheckNo,
		&m.Direction,
		&m.PartyID,
		&m.BankName,
		&m.Amount,
		&m.CurrencyCode,
		&m.IssueDate,
		&m.DueDate,
		&m.Status,
		&m.Description,
		&m.JournalEntryID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
