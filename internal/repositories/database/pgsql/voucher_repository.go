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

const voucherColumns = `
	voucher_id, company_id, voucher_number, voucher_type, voucher_date, party_id,
	account_id, amount, currency_code, description, status, journal_entry_id, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

// SaveVoucher inserts a new voucher row.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	query := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VoucherID, m.CompanyID, m.VoucherNumber, m.VoucherType, m.VoucherDate, m.PartyID,
		m.AccountID, m.Amount, m.CurrencyCode, m.Description, m.Status, m.JournalEntryID, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "vouchers_company_number_key") {
			return apperrors.ErrNumberCollision
		}
		return apperrors.NewAppError(500, "failed to insert voucher "+m.VoucherID, err)
	}
	return nil
}

// FindVoucherByID retrieves a voucher by its ID.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_id = $1;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher by ID "+voucherID, err)
	}
	d := mapping.ToDomainVoucher(*m)
	return &d, nil
}

// ListVouchersByCompany retrieves a paginated list of vouchers, optionally
// filtered by type, ordered by voucher_date DESC, created_at DESC.
func (r *PgxVoucherRepository) ListVouchersByCompany(ctx context.Context, companyID string, voucherType *domain.VoucherType, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + voucherColumns + ` FROM vouchers`
	filterClause := `WHERE company_id = $1 AND is_active = TRUE`
	args := []interface{}{companyID}
	if voucherType != nil {
		args = append(args, string(*voucherType))
		filterClause += ` AND voucher_type = $` + strconv.Itoa(len(args))
	}
	orderByClause := `ORDER BY voucher_date DESC, created_at DESC`

	var query string
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		cursorClause := `AND (voucher_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
		query = baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	} else {
		query = baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	}
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query vouchers for company "+companyID, err)
	}
	defer rows.Close()

	modelVouchers := make([]models.Voucher, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanVoucher(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan voucher row for company "+companyID, scanErr)
		}
		modelVouchers = append(modelVouchers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating voucher rows for company "+companyID, err)
	}

	var nextTokenVal *string
	results := modelVouchers
	if len(modelVouchers) > limit {
		last := modelVouchers[limit-1]
		token := pagination.EncodeToken(last.VoucherDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelVouchers[:limit]
	}

	vouchers := make([]domain.Voucher, len(results))
	for i, m := range results {
		vouchers[i] = mapping.ToDomainVoucher(m)
	}
	return vouchers, nextTokenVal, nil
}

// UpdateVoucher updates a voucher's mutable fields.
func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	query := `
		UPDATE vouchers
		SET voucher_date = $2, party_id = $3, account_id = $4, amount = $5,
		    currency_code = $6, description = $7, journal_entry_id = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE voucher_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.VoucherID, m.VoucherDate, m.PartyID, m.AccountID, m.Amount,
		m.CurrencyCode, m.Description, m.JournalEntryID,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update voucher "+m.VoucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + m.VoucherID + " not found for update")
	}
	return nil
}

// UpdateVoucherStatus transitions a voucher's status.
func (r *PgxVoucherRepository) UpdateVoucherStatus(ctx context.Context, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE vouchers
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE voucher_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, voucherID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for voucher "+voucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + voucherID + " not found for update")
	}
	return nil
}

// scanVoucher scans one vouchers row (column order voucherColumns).
func scanVoucher(row pgx.Row) (*models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.CompanyID,
		&m.VoucherNumber,
		&m.VoucherType,
		&m.VoucherDate,
		&m.PartyID,
		&m.AccountID,
		&m.Amount,
		&m.CurrencyCode,
		&m.Description,
		&m.Status,
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
