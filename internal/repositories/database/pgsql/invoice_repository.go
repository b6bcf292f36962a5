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

const invoiceColumns = `
	invoice_id, company_id, invoice_number, customer_id, invoice_date, due_date,
	currency_code, status, discount_type, discount_value, tax_rate, tax_inclusive,
	subtotal, discount_amount, tax_amount, total, paid_total, notes, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

const invoiceLineColumns = `
	line_id, invoice_id, line_number, description, quantity, unit_price, line_total,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveInvoice persists the header and its lines as one DB transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err = tx.Exec(ctx, query,
		m.InvoiceID, m.CompanyID, m.InvoiceNumber, m.CustomerID, m.InvoiceDate, m.DueDate,
		m.CurrencyCode, m.Status, m.DiscountType, m.DiscountValue, m.TaxRate, m.TaxInclusive,
		m.Subtotal, m.DiscountAmount, m.TaxAmount, m.Total, m.PaidTotal, m.Notes, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "invoices_company_number_key") {
			return apperrors.ErrNumberCollision
		}
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}

	if err := insertInvoiceLines(ctx, tx, lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateInvoice replaces the header fields and the full line set of a draft.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET customer_id = $2, invoice_date = $3, due_date = $4, currency_code = $5,
		    discount_type = $6, discount_value = $7, tax_rate = $8, tax_inclusive = $9,
		    subtotal = $10, discount_amount = $11, tax_amount = $12, total = $13,
		    notes = $14, last_updated_at = $15, last_updated_by = $16
		WHERE invoice_id = $1 AND status = 'DRAFT';
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.InvoiceID, m.CustomerID, m.InvoiceDate, m.DueDate, m.CurrencyCode,
		m.DiscountType, m.DiscountValue, m.TaxRate, m.TaxInclusive,
		m.Subtotal, m.DiscountAmount, m.TaxAmount, m.Total,
		m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+m.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInvalidState
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1;`, m.InvoiceID); err != nil {
		return apperrors.NewAppError(500, "failed to clear lines for invoice "+m.InvoiceID, err)
	}
	if err := insertInvoiceLines(ctx, tx, lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertInvoiceLines(ctx context.Context, tx pgx.Tx, lines []domain.InvoiceLine) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO invoice_lines (` + invoiceLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, line := range lines {
		m := mapping.ToModelInvoiceLine(line)
		batch.Queue(query,
			m.LineID, m.InvoiceID, m.LineNumber, m.Description, m.Quantity, m.UnitPrice, m.LineTotal,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert invoice lines", err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice header by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}
	d := mapping.ToDomainInvoice(*m)
	return &d, nil
}

// FindLinesByInvoiceID retrieves an invoice's lines in insertion order.
func (r *PgxInvoiceRepository) FindLinesByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceLine, error) {
	query := `SELECT ` + invoiceLineColumns + ` FROM invoice_lines WHERE invoice_id = $1 ORDER BY line_number;`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for invoice "+invoiceID, err)
	}
	defer rows.Close()

	lines := []models.InvoiceLine{}
	for rows.Next() {
		var m models.InvoiceLine
		if scanErr := rows.Scan(
			&m.LineID, &m.InvoiceID, &m.LineNumber, &m.Description, &m.Quantity, &m.UnitPrice, &m.LineTotal,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice line row", scanErr)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice line rows", err)
	}
	return mapping.ToDomainInvoiceLineSlice(lines), nil
}

// ListInvoicesByCompany retrieves a paginated list of invoices using
// token-based pagination ordered by invoice_date DESC, created_at DESC.
func (r *PgxInvoiceRepository) ListInvoicesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + invoiceColumns + ` FROM invoices`
	filterClause := `WHERE company_id = $1 AND is_active = TRUE`
	orderByClause := `ORDER BY invoice_date DESC, created_at DESC`

	args := []interface{}{companyID}
	var query string
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (invoice_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
		query = baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	} else {
		query = baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	}
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query invoices for company "+companyID, err)
	}
	defer rows.Close()

	modelInvoices := make([]models.Invoice, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanInvoice(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan invoice row for company "+companyID, scanErr)
		}
		modelInvoices = append(modelInvoices, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating invoice rows for company "+companyID, err)
	}

	var nextTokenVal *string
	results := modelInvoices
	if len(modelInvoices) > limit {
		last := modelInvoices[limit-1]
		token := pagination.EncodeToken(last.InvoiceDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelInvoices[:limit]
	}

	invoices := make([]domain.Invoice, len(results))
	for i, m := range results {
		invoices[i] = mapping.ToDomainInvoice(m)
	}
	return invoices, nextTokenVal, nil
}

// UpdateInvoiceStatus transitions an invoice's status.
func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE invoices
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, invoiceID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for invoice "+invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice " + invoiceID + " not found for update")
	}
	return nil
}

// DeleteInvoice removes a draft invoice and its lines.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1;`, invoiceID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for invoice "+invoiceID, err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1 AND status = 'DRAFT';`, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice "+invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice " + invoiceID + " not found for delete")
	}
	return r.Commit(ctx, tx)
}

// scanInvoice scans one invoices row (column order invoiceColumns).
func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.CompanyID,
		&m.InvoiceNumber,
		&m.CustomerID,
		&m.InvoiceDate,
		&m.DueDate,
		&m.CurrencyCode,
		&m.Status,
		&m.DiscountType,
		&m.DiscountValue,
		&m.TaxRate,
		&m.TaxInclusive,
		&m.Subtotal,
		&m.DiscountAmount,
		&m.TaxAmount,
		&m.Total,
		&m.PaidTotal,
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
