package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for document number sequences.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepositoryFacade {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepositoryFacade = (*PgxSequenceRepository)(nil)

// AllocateNext atomically increments and returns the next value of the
// (company, kind, year) counter. The upsert makes first use and subsequent
// increments a single statement, so concurrent callers can never observe the
// same value.
func (r *PgxSequenceRepository) AllocateNext(ctx context.Context, companyID string, kind domain.DocumentKind, year int) (int64, error) {
	query := `
		INSERT INTO document_sequences (company_id, kind, year, last_value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (company_id, kind, year)
		DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value;
	`
	var next int64
	if err := r.Pool.QueryRow(ctx, query, companyID, string(kind), year).Scan(&next); err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate sequence for "+companyID+"/"+string(kind), err)
	}
	return next, nil
}
