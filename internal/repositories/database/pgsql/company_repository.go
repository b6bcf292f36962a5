package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	"github.com/hisabiq/hisab_backend/internal/models"
	"github.com/hisabiq/hisab_backend/internal/utils/mapping"
)

const companyColumns = `
	company_id, name, name_ar, default_currency_code, default_tax_rate, tax_number, address,
	is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company and membership data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

// SaveCompany inserts a new company row.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.Name, m.NameAr, m.DefaultCurrencyCode, m.DefaultTaxRate, m.TaxNumber, m.Address,
		m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert company "+m.CompanyID, err)
	}
	return nil
}

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`
	m, err := scanCompany(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find company by ID "+companyID, err)
	}
	d := mapping.ToDomainCompany(*m)
	return &d, nil
}

// UpdateCompany updates a company's settings.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		UPDATE companies
		SET name = $2, name_ar = $3, default_currency_code = $4, default_tax_rate = $5,
		    tax_number = $6, address = $7, last_updated_at = $8, last_updated_by = $9
		WHERE company_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.Name, m.NameAr, m.DefaultCurrencyCode, m.DefaultTaxRate,
		m.TaxNumber, m.Address, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update company "+m.CompanyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("company " + m.CompanyID + " not found for update")
	}
	return nil
}

// ListCompaniesByUser retrieves the companies a user belongs to.
func (r *PgxCompanyRepository) ListCompaniesByUser(ctx context.Context, userID string, includeDisabled bool) ([]domain.Company, error) {
	query := `
		SELECT c.company_id, c.name, c.name_ar, c.default_currency_code, c.default_tax_rate, c.tax_number, c.address,
		       c.is_active, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
		FROM companies c
		JOIN user_companies uc ON c.company_id = uc.company_id
		WHERE uc.user_id = $1 AND uc.role != 'REMOVED'
	`
	if !includeDisabled {
		query += ` AND c.is_active = TRUE`
	}
	query += ` ORDER BY c.name;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies for user "+userID, err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		m, scanErr := scanCompany(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan company row for user "+userID, scanErr)
		}
		companies = append(companies, mapping.ToDomainCompany(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating company rows for user "+userID, err)
	}
	return companies, nil
}

// SaveUserCompany inserts or updates a membership row.
func (r *PgxCompanyRepository) SaveUserCompany(ctx context.Context, membership domain.UserCompany) error {
	m := mapping.ToModelUserCompany(membership)
	query := `
		INSERT INTO user_companies (user_id, company_id, role, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, company_id) DO UPDATE SET
			role = EXCLUDED.role,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.CompanyID, m.Role, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert membership for user "+m.UserID, err)
	}
	return nil
}

// FindUserCompanyRole retrieves a user's membership in a company.
func (r *PgxCompanyRepository) FindUserCompanyRole(ctx context.Context, userID, companyID string) (*domain.UserCompany, error) {
	query := `
		SELECT user_id, company_id, role, created_at, created_by, last_updated_at, last_updated_by
		FROM user_companies
		WHERE user_id = $1 AND company_id = $2;
	`
	var m models.UserCompany
	err := r.Pool.QueryRow(ctx, query, userID, companyID).Scan(
		&m.UserID,
		&m.CompanyID,
		&m.Role,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find membership for user "+userID, err)
	}
	d := mapping.ToDomainUserCompany(m)
	return &d, nil
}

// scanCompany scans one companies row (column order companyColumns).
func scanCompany(row pgx.Row) (*models.Company, error) {
	var m models.Company
	err := row.Scan(
		&m.CompanyID,
		&m.Name,
		&m.NameAr,
		&m.DefaultCurrencyCode,
		&m.DefaultTaxRate,
		&m.TaxNumber,
		&m.Address,
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
