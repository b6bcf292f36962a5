package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	"github.com/hisabiq/hisab_backend/internal/models"
	"github.com/hisabiq/hisab_backend/internal/utils/mapping"
)

const attachmentColumns = `
	attachment_id, company_id, parent_type, parent_id, file_name, url, size_bytes,
	uploaded_at, uploaded_by`

type PgxAttachmentRepository struct {
	BaseRepository
}

// newPgxAttachmentRepository creates a new repository for attachment metadata.
func newPgxAttachmentRepository(pool *pgxpool.Pool) portsrepo.AttachmentRepositoryFacade {
	return &PgxAttachmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttachmentRepositoryFacade = (*PgxAttachmentRepository)(nil)

// SaveAttachment inserts a new attachment metadata row.
func (r *PgxAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	m := mapping.ToModelAttachment(attachment)
	query := `
		INSERT INTO attachments (` + attachmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AttachmentID, m.CompanyID, m.ParentType, m.ParentID, m.FileName, m.URL, m.SizeBytes,
		m.UploadedAt, m.UploadedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert attachment "+m.AttachmentID, err)
	}
	return nil
}

// ListAttachmentsByParent retrieves all attachments of one parent document.
func (r *PgxAttachmentRepository) ListAttachmentsByParent(ctx context.Context, companyID, parentType, parentID string) ([]domain.Attachment, error) {
	query := `
		SELECT ` + attachmentColumns + `
		FROM attachments
		WHERE company_id = $1 AND parent_type = $2 AND parent_id = $3
		ORDER BY uploaded_at;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, parentType, parentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attachments for parent "+parentID, err)
	}
	defer rows.Close()

	attachments := make([]domain.Attachment, 0)
	for rows.Next() {
		m, scanErr := scanAttachment(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attachment row for parent "+parentID, scanErr)
		}
		attachments = append(attachments, mapping.ToDomainAttachment(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating attachment rows for parent "+parentID, err)
	}
	return attachments, nil
}

// DeleteAttachment removes an attachment metadata row.
func (r *PgxAttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	query := `DELETE FROM attachments WHERE attachment_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, attachmentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete attachment "+attachmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("attachment " + attachmentID + " not found for delete")
	}
	return nil
}

// scanAttachment scans one attachments row (column order attachmentColumns).
func scanAttachment(row pgx.Row) (*models.Attachment, error) {
	var m models.Attachment
	err := row.Scan(
		&m.AttachmentID,
		&m.CompanyID,
		&m.ParentType,
		&m.ParentID,
		&m.FileName,
		&m.URL,
		&m.SizeBytes,
		&m.UploadedAt,
		&m.UploadedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
