package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	"github.com/hisabiq/hisab_backend/internal/models"
	"github.com/hisabiq/hisab_backend/internal/utils/mapping"
	"github.com/hisabiq/hisab_backend/internal/utils/pagination"
)

const expenseColumns = `
	expense_id, company_id, expense_number, expense_date, category, description,
	supplier_id, currency_code, status, amount, tax_rate, tax_inclusive,
	net_amount, tax_amount, gross_amount, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpense inserts a new expense row.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.CompanyID, m.ExpenseNumber, m.ExpenseDate, m.Category, m.Description,
		m.SupplierID, m.CurrencyCode, m.Status, m.Amount, m.TaxRate, m.TaxInclusive,
		m.NetAmount, m.TaxAmount, m.GrossAmount, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "expenses_company_number_key") {
			return apperrors.ErrNumberCollision
		}
		return apperrors.NewAppError(500, "failed to insert expense "+m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find expense by ID "+expenseID, err)
	}
	d := mapping.ToDomainExpense(*m)
	return &d, nil
}

// ListExpensesByCompany retrieves a filtered, paginated list of expenses
// using token-based pagination ordered by expense_date DESC, created_at DESC.
func (r *PgxExpenseRepository) ListExpensesByCompany(ctx context.Context, companyID string, filters domain.ExpenseFilters, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + expenseColumns + ` FROM expenses`
	filterClause := `WHERE company_id = $1 AND is_active = TRUE`
	args := []interface{}{companyID}

	if filters.Category != "" {
		args = append(args, filters.Category)
		filterClause += ` AND category = $` + strconv.Itoa(len(args))
	}
	if filters.Status != nil {
		args = append(args, string(*filters.Status))
		filterClause += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filters.From != nil {
		args = append(args, *filters.From)
		filterClause += ` AND expense_date >= $` + strconv.Itoa(len(args))
	}
	if filters.To != nil {
		args = append(args, *filters.To)
		filterClause += ` AND expense_date <= $` + strconv.Itoa(len(args))
	}

	orderByClause := `ORDER BY expense_date DESC, created_at DESC`

	var query string
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		cursorClause := `AND (expense_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
		query = baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	} else {
		query = baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	}
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query expenses for company "+companyID, err)
	}
	defer rows.Close()

	modelExpenses := make([]models.Expense, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanExpense(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan expense row for company "+companyID, scanErr)
		}
		modelExpenses = append(modelExpenses, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating expense rows for company "+companyID, err)
	}

	var nextTokenVal *string
	results := modelExpenses
	if len(modelExpenses) > limit {
		last := modelExpenses[limit-1]
		token := pagination.EncodeToken(last.ExpenseDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelExpenses[:limit]
	}

	expenses := make([]domain.Expense, len(results))
	for i, m := range results {
		expenses[i] = mapping.ToDomainExpense(m)
	}
	return expenses, nextTokenVal, nil
}

// UpdateExpense updates an expense's mutable fields and derived amounts.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET expense_date = $2, category = $3, description = $4, supplier_id = $5,
		    currency_code = $6, amount = $7, tax_rate = $8, tax_inclusive = $9,
		    net_amount = $10, tax_amount = $11, gross_amount = $12,
		    last_updated_at = $13, last_updated_by = $14
		WHERE expense_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.ExpenseDate, m.Category, m.Description, m.SupplierID,
		m.CurrencyCode, m.Amount, m.TaxRate, m.TaxInclusive,
		m.NetAmount, m.TaxAmount, m.GrossAmount,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update expense "+m.ExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense " + m.ExpenseID + " not found for update")
	}
	return nil
}

// DeleteExpense removes an expense row.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense " + expenseID + " not found for delete")
	}
	return nil
}

// scanExpense scans one expenses row (column order expenseColumns).
func scanExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.CompanyID,
		&m.ExpenseNumber,
		&m.ExpenseDate,
		&m.Category,
		&m.Description,
		&m.SupplierID,
		&m.CurrencyCode,
		&m.Status,
		&m.Amount,
		&m.TaxRate,
		&m.TaxInclusive,
		&m.NetAmount,
		&m.TaxAmount,
		&m.GrossAmount,
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
