package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	"github.com/hisabiq/hisab_backend/internal/models"
	"github.com/hisabiq/hisab_backend/internal/utils/accounting"
	"github.com/hisabiq/hisab_backend/internal/utils/mapping"
	"github.com/hisabiq/hisab_backend/internal/utils/pagination"
)

const entryColumns = `
	entry_id, company_id, entry_number, entry_date, reference, description, status,
	currency_code, total_debit, total_credit, posted_at, posted_by,
	reversed_at, reversed_by, reversal_reason, original_entry_id, reversing_entry_id,
	notes, is_active, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `
	line_id, entry_id, line_number, account_id, description, debit_amount, credit_amount,
	project_id, customer_id, supplier_id, running_balance,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxJournalRepository creates a new repository for journal entry and line data.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveDraftEntry persists a draft header and a full replacement of its line
// set within a DB transaction. A draft is never observable with the header
// committed but lines missing.
func (r *PgxJournalRepository) SaveDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelEntry := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (entry_id) DO UPDATE SET
			entry_date = EXCLUDED.entry_date,
			reference = EXCLUDED.reference,
			description = EXCLUDED.description,
			currency_code = EXCLUDED.currency_code,
			total_debit = EXCLUDED.total_debit,
			total_credit = EXCLUDED.total_credit,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		WHERE journal_entries.status = 'DRAFT';
	`
	cmdTag, err := tx.Exec(ctx, headerQuery,
		modelEntry.EntryID,
		modelEntry.CompanyID,
		modelEntry.EntryNumber,
		modelEntry.EntryDate,
		modelEntry.Reference,
		modelEntry.Description,
		modelEntry.Status,
		modelEntry.CurrencyCode,
		modelEntry.TotalDebit,
		modelEntry.TotalCredit,
		modelEntry.PostedAt,
		modelEntry.PostedBy,
		modelEntry.ReversedAt,
		modelEntry.ReversedBy,
		modelEntry.ReversalReason,
		modelEntry.OriginalEntryID,
		modelEntry.ReversingEntryID,
		modelEntry.Notes,
		modelEntry.IsActive,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "journal_entries_company_number_key") {
			return apperrors.ErrNumberCollision
		}
		return apperrors.NewAppError(500, "failed to upsert journal entry "+modelEntry.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// The entry exists but is no longer a draft; a concurrent post or
		// reversal won. Do not touch its lines.
		return apperrors.ErrInvalidState
	}

	// Replace the line set wholesale; a draft's lines have no downstream
	// references yet.
	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, modelEntry.EntryID); err != nil {
		return apperrors.NewAppError(500, "failed to clear lines for entry "+modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	for _, line := range lines {
		modelLine := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.LineNumber,
			modelLine.AccountID,
			modelLine.Description,
			modelLine.DebitAmount,
			modelLine.CreditAmount,
			modelLine.ProjectID,
			modelLine.CustomerID,
			modelLine.SupplierID,
			modelLine.RunningBalance,
			modelLine.CreatedAt,
			modelLine.CreatedBy,
			modelLine.LastUpdatedAt,
			modelLine.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for entry "+modelEntry.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// PostEntry flips a draft to POSTED, stamps it, applies balance changes to
// the locked account rows and backfills per-line running balances, all in one
// DB transaction.
func (r *PgxJournalRepository) PostEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelEntry := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		UPDATE journal_entries
		SET status = $2,
		    total_debit = $3,
		    total_credit = $4,
		    posted_at = $5,
		    posted_by = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE entry_id = $1 AND status = 'DRAFT';
	`
	cmdTag, err := tx.Exec(ctx, headerQuery,
		modelEntry.EntryID,
		modelEntry.Status,
		modelEntry.TotalDebit,
		modelEntry.TotalCredit,
		modelEntry.PostedAt,
		modelEntry.PostedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to post journal entry "+modelEntry.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Lost a race: the entry was posted or deleted since the service read it.
		return apperrors.ErrInvalidState
	}

	if err := r.applyBalancesAndRunningBalances(ctx, tx, lines, balanceChanges, entry.LastUpdatedBy, entry.LastUpdatedAt, true); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReverseEntry persists the mirror entry with its lines and flips the
// original to REVERSED, atomically. A failure at any step leaves neither
// side updated.
func (r *PgxJournalRepository) ReverseEntry(ctx context.Context, original domain.JournalEntry, mirror domain.JournalEntry, mirrorLines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelMirror := mapping.ToModelJournalEntry(mirror)
	insertQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelMirror.EntryID,
		modelMirror.CompanyID,
		modelMirror.EntryNumber,
		modelMirror.EntryDate,
		modelMirror.Reference,
		modelMirror.Description,
		modelMirror.Status,
		modelMirror.CurrencyCode,
		modelMirror.TotalDebit,
		modelMirror.TotalCredit,
		modelMirror.PostedAt,
		modelMirror.PostedBy,
		modelMirror.ReversedAt,
		modelMirror.ReversedBy,
		modelMirror.ReversalReason,
		modelMirror.OriginalEntryID,
		modelMirror.ReversingEntryID,
		modelMirror.Notes,
		modelMirror.IsActive,
		modelMirror.CreatedAt,
		modelMirror.CreatedBy,
		modelMirror.LastUpdatedAt,
		modelMirror.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "journal_entries_company_number_key") {
			return apperrors.ErrNumberCollision
		}
		return apperrors.NewAppError(500, "failed to insert reversal entry "+modelMirror.EntryID, err)
	}

	originalQuery := `
		UPDATE journal_entries
		SET status = $2,
		    reversed_at = $3,
		    reversed_by = $4,
		    reversal_reason = $5,
		    reversing_entry_id = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE entry_id = $1 AND status = 'POSTED';
	`
	modelOriginal := mapping.ToModelJournalEntry(original)
	cmdTag, err := tx.Exec(ctx, originalQuery,
		modelOriginal.EntryID,
		modelOriginal.Status,
		modelOriginal.ReversedAt,
		modelOriginal.ReversedBy,
		modelOriginal.ReversalReason,
		modelOriginal.ReversingEntryID,
		modelOriginal.LastUpdatedAt,
		modelOriginal.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark entry "+modelOriginal.EntryID+" as reversed", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInvalidState
	}

	if err := r.applyBalancesAndRunningBalances(ctx, tx, mirrorLines, balanceChanges, mirror.CreatedBy, mirror.CreatedAt, false); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// applyBalancesAndRunningBalances locks the affected accounts, writes the net
// balance deltas and persists per-line running balances. With update set, the
// lines already exist (posting a draft) and are updated in place; otherwise
// they are inserted fresh (reversal mirror lines).
func (r *PgxJournalRepository) applyBalancesAndRunningBalances(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal, userID string, now time.Time, update bool) error {
	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return apperrors.NewAppError(500, "failed to update account balances", err)
	}

	// Running balance per line: start from each account's pre-change balance
	// and accumulate in line order.
	currentRunningBalances := make(map[string]decimal.Decimal, len(lockedAccounts))
	for accID, lockedAcc := range lockedAccounts {
		currentRunningBalances[accID] = lockedAcc.Balance
	}

	batch := &pgx.Batch{}
	updateLineQuery := `
		UPDATE journal_lines
		SET running_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE line_id = $1;
	`
	insertLineQuery := `
		INSERT INTO journal_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	for _, line := range lines {
		lockedAccount, ok := lockedAccounts[line.AccountID]
		if !ok {
			return apperrors.NewAppError(500, "internal error: locked account "+line.AccountID+" not found during line processing", nil)
		}
		signedAmount, err := accounting.CalculateSignedAmount(line, lockedAccount.AccountType)
		if err != nil {
			return apperrors.NewAppError(500, "failed to calculate signed amount for line "+line.LineID, err)
		}
		newRunningBalance := currentRunningBalances[line.AccountID].Add(signedAmount)
		currentRunningBalances[line.AccountID] = newRunningBalance

		if update {
			batch.Queue(updateLineQuery, line.LineID, newRunningBalance, now, userID)
		} else {
			modelLine := mapping.ToModelJournalLine(line)
			modelLine.RunningBalance = newRunningBalance
			batch.Queue(insertLineQuery,
				modelLine.LineID,
				modelLine.EntryID,
				modelLine.LineNumber,
				modelLine.AccountID,
				modelLine.Description,
				modelLine.DebitAmount,
				modelLine.CreditAmount,
				modelLine.ProjectID,
				modelLine.CustomerID,
				modelLine.SupplierID,
				modelLine.RunningBalance,
				modelLine.CreatedAt,
				modelLine.CreatedBy,
				modelLine.LastUpdatedAt,
				modelLine.LastUpdatedBy,
			)
		}
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line batch", err)
	}
	return nil
}

// DeleteEntry removes a draft entry and its lines.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for entry "+entryID, err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1 AND status = 'DRAFT';`, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("entry " + entryID + " not found for delete")
	}

	return r.Commit(ctx, tx)
}

// SetEntryActive toggles the soft-delete visibility flag.
func (r *PgxJournalRepository) SetEntryActive(ctx context.Context, entryID string, isActive bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, entryID, isActive, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update is_active for entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("entry " + entryID + " not found for update")
	}
	return nil
}

// FindEntryByID retrieves an entry by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	row := r.Pool.QueryRow(ctx, query, entryID)
	modelEntry, err := scanJournalEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}

	domainEntry := mapping.ToDomainJournalEntry(*modelEntry)
	return &domainEntry, nil
}

// ListEntriesByCompany retrieves a paginated list of entries using
// token-based pagination ordered by entry_date DESC, created_at DESC.
func (r *PgxJournalRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string, includeReversals bool) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + entryColumns + ` FROM journal_entries`
	filterClause := `WHERE company_id = $1 AND is_active = TRUE`
	if !includeReversals {
		filterClause += ` AND status != 'REVERSED' AND original_entry_id IS NULL`
	}
	orderByClause := `ORDER BY entry_date DESC, created_at DESC`

	args := []interface{}{companyID}
	var query string
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (entry_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
		query = baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	} else {
		query = baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	}
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries for company "+companyID, err)
	}
	defer rows.Close()

	modelEntries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanJournalEntry(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row for company "+companyID, scanErr)
		}
		modelEntries = append(modelEntries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows for company "+companyID, err)
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		lastEntry := modelEntries[limit-1]
		newToken := pagination.EncodeToken(lastEntry.EntryDate, lastEntry.CreatedAt)
		nextTokenVal = &newToken
		results = modelEntries[:limit]
	}

	domainEntries := make([]domain.JournalEntry, len(results))
	for i, m := range results {
		domainEntries[i] = mapping.ToDomainJournalEntry(m)
	}
	return domainEntries, nextTokenVal, nil
}

// FindLinesByEntryID retrieves all lines of a single entry in insertion order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = $1 ORDER BY line_number;`

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		m, scanErr := scanJournalLine(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, scanErr)
		}
		lines = append(lines, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}

	return mapping.ToDomainJournalLineSlice(lines), nil
}

// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
func (r *PgxJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = ANY($1) ORDER BY entry_id, line_number;`

	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry IDs", err)
	}
	defer rows.Close()

	linesMap := make(map[string][]domain.JournalLine)
	for rows.Next() {
		m, scanErr := scanJournalLine(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row during batch fetch", scanErr)
		}
		domainLine := mapping.ToDomainJournalLine(*m)
		linesMap[domainLine.EntryID] = append(linesMap[domainLine.EntryID], domainLine)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows during batch fetch", err)
	}

	for _, id := range entryIDs {
		if _, exists := linesMap[id]; !exists {
			linesMap[id] = []domain.JournalLine{}
		}
	}
	return linesMap, nil
}

// ListLinesByAccountID retrieves a paginated list of posted lines for an
// account using token-based pagination.
func (r *PgxJournalRepository) ListLinesByAccountID(ctx context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT l.line_id, l.entry_id, l.line_number, l.account_id, l.description, l.debit_amount, l.credit_amount,
		       l.project_id, l.customer_id, l.supplier_id, l.running_balance,
		       l.created_at, l.created_by, l.last_updated_at, l.last_updated_by,
		       e.entry_date
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.account_id = $1 AND e.company_id = $2 AND e.status = 'POSTED' AND e.is_active = TRUE
	`
	orderByClause := `ORDER BY e.entry_date DESC, l.created_at DESC`

	args := []interface{}{accountID, companyID}
	var query string
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (e.entry_date, l.created_at) < ($3, $4)`
		args = append(args, lastDate, lastCreatedAt)
		query = baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	} else {
		query = baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	}
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query lines for account "+accountID, err)
	}
	defer rows.Close()

	type lineWithDate struct {
		line      models.JournalLine
		entryDate time.Time
	}
	fetched := make([]lineWithDate, 0, fetchLimit)
	for rows.Next() {
		var m models.JournalLine
		var entryDate time.Time
		scanErr := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.LineNumber,
			&m.AccountID,
			&m.Description,
			&m.DebitAmount,
			&m.CreditAmount,
			&m.ProjectID,
			&m.CustomerID,
			&m.SupplierID,
			&m.RunningBalance,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&entryDate,
		)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan line row for account "+accountID, scanErr)
		}
		fetched = append(fetched, lineWithDate{line: m, entryDate: entryDate})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating line rows for account "+accountID, err)
	}

	var nextTokenVal *string
	count := len(fetched)
	if count > limit {
		last := fetched[limit-1]
		token := pagination.EncodeToken(last.entryDate, last.line.CreatedAt)
		nextTokenVal = &token
		count = limit
	}

	results := make([]domain.JournalLine, count)
	for i := 0; i < count; i++ {
		results[i] = mapping.ToDomainJournalLine(fetched[i].line)
	}
	return results, nextTokenVal, nil
}

// scanJournalEntry scans one journal_entries row (column order entryColumns).
func scanJournalEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Reference,
		&m.Description,
		&m.Status,
		&m.CurrencyCode,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.PostedAt,
		&m.PostedBy,
		&m.ReversedAt,
		&m.ReversedBy,
		&m.ReversalReason,
		&m.OriginalEntryID,
		&m.ReversingEntryID,
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

// scanJournalLine scans one journal_lines row (column order lineColumns).
func scanJournalLine(row pgx.Row) (*models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.LineNumber,
		&m.AccountID,
		&m.Description,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.ProjectID,
		&m.CustomerID,
		&m.SupplierID,
		&m.RunningBalance,
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

// isUniqueViolation reports whether err is a unique constraint violation on
// the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
	}
	return false
}
