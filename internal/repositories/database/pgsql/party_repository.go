package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	"github.com/hisabiq/hisab_backend/internal/models"
	"github.com/hisabiq/hisab_backend/internal/utils/mapping"
)

const partyColumns = `
	party_id, company_id, kind, name, name_ar, tax_number, phone, email, address,
	opening_balance, notes, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for supplier and customer data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

// SaveParty inserts a new party row.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartyID, m.CompanyID, m.Kind, m.Name, m.NameAr, m.TaxNumber, m.Phone, m.Email, m.Address,
		m.OpeningBalance, m.Notes, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert party "+m.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1;`
	m, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find party by ID "+partyID, err)
	}
	d := mapping.ToDomainParty(*m)
	return &d, nil
}

// ListPartiesByCompany retrieves a page of parties of one kind ordered by name.
func (r *PgxPartyRepository) ListPartiesByCompany(ctx context.Context, companyID string, kind domain.PartyKind, limit int, offset int) ([]domain.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE company_id = $1 AND kind = $2 AND is_active = TRUE
		ORDER BY name
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, string(kind), limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query parties for company "+companyID, err)
	}
	defer rows.Close()

	parties := make([]domain.Party, 0, limit)
	for rows.Next() {
		m, scanErr := scanParty(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party row for company "+companyID, scanErr)
		}
		parties = append(parties, mapping.ToDomainParty(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party rows for company "+companyID, err)
	}
	return parties, nil
}

// UpdateParty updates a party's mutable fields. Kind is fixed at creation.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		UPDATE parties
		SET name = $2, name_ar = $3, tax_number = $4, phone = $5, email = $6,
		    address = $7, opening_balance = $8, notes = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE party_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.PartyID, m.Name, m.NameAr, m.TaxNumber, m.Phone, m.Email,
		m.Address, m.OpeningBalance, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update party "+m.PartyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("party " + m.PartyID + " not found for update")
	}
	return nil
}

// SetPartyActive toggles the soft-delete visibility flag.
func (r *PgxPartyRepository) SetPartyActive(ctx context.Context, partyID string, isActive bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE parties
		SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE party_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, partyID, isActive, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set active flag for party "+partyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("party " + partyID + " not found for update")
	}
	return nil
}

// scanParty scans one parties row (column order partyColumns).
func scanParty(row pgx.Row) (*models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID,
		&m.CompanyID,
		&m.Kind,
		&m.Name,
		&m.NameAr,
		&m.TaxNumber,
		&m.Phone,
		&m.Email,
		&m.Address,
		&m.OpeningBalance,
		&m.Notes,
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
