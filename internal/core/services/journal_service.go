package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
	"github.com/hisabiq/hisab_backend/internal/middleware"
	"github.com/hisabiq/hisab_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrCurrencyMismatch = errors.New("account currency does not match entry currency")
)

// journalService implements the journal entry lifecycle: draft saves, the
// one-way post transition, reversal via mirror entries, deletion of drafts
// and the soft-delete toggle.
type journalService struct {
	journalRepo  portsrepo.JournalRepositoryFacade
	accountSvc   portssvc.AccountSvcFacade
	companySvc   portssvc.CompanySvcFacade
	numberingSvc portssvc.NumberingSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, companySvc portssvc.CompanySvcFacade, numberingSvc portssvc.NumberingSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:  journalRepo,
		accountSvc:   accountSvc,
		companySvc:   companySvc,
		numberingSvc: numberingSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// SaveDraft creates a new draft entry or replaces an existing draft's header
// and lines. Validation runs in draft mode (balance not required) and
// accumulates every violation so the caller can render them all at once.
func (s *journalService) SaveDraft(ctx context.Context, companyID string, req dto.SaveJournalEntryRequest, userID string) (*domain.JournalEntry, *domain.ValidationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		logger.Warn("Authorization failed for SaveDraft", slog.String("company_id", companyID), slog.String("error", err.Error()))
		return nil, nil, err
	}

	now := time.Now().UTC()
	isNew := req.EntryID == ""

	var entry domain.JournalEntry
	if isNew {
		number, err := s.numberingSvc.NextNumber(ctx, companyID, domain.KindJournalEntry)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to allocate entry number: %w", err)
		}
		entry = domain.JournalEntry{
			EntryID:     uuid.NewString(),
			CompanyID:   companyID,
			EntryNumber: number,
			Status:      domain.Draft,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				CreatedBy: userID,
			},
		}
	} else {
		existing, err := s.journalRepo.FindEntryByID(ctx, req.EntryID)
		if err != nil {
			return nil, nil, err
		}
		if existing.CompanyID != companyID {
			return nil, nil, apperrors.ErrNotFound
		}
		if existing.Status != domain.Draft {
			return nil, nil, fmt.Errorf("%w: entry status is %s, only drafts can be edited", apperrors.ErrInvalidState, existing.Status)
		}
		entry = *existing
	}

	entry.EntryDate = req.EntryDate
	entry.Reference = req.Reference
	entry.Description = req.Description
	entry.Notes = req.Notes
	entry.CurrencyCode = req.CurrencyCode
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	if entry.CurrencyCode == "" {
		company, err := s.companySvc.GetCompanyByID(ctx, companyID, userID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve company currency: %w", err)
		}
		if company.DefaultCurrencyCode != nil {
			entry.CurrencyCode = *company.DefaultCurrencyCode
		}
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      entry.EntryID,
			LineNumber:   i,
			AccountID:    lineReq.AccountID,
			Description:  lineReq.Description,
			DebitAmount:  lineReq.DebitAmount,
			CreditAmount: lineReq.CreditAmount,
			ProjectID:    lineReq.ProjectID,
			CustomerID:   lineReq.CustomerID,
			SupplierID:   lineReq.SupplierID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	if result := domain.ValidateEntry(entry, lines, false); !result.Valid() {
		return nil, &result, nil
	}

	totals := accounting.RecomputeEntryTotals(lines)
	entry.TotalDebit = totals.TotalDebit
	entry.TotalCredit = totals.TotalCredit

	err := s.journalRepo.SaveDraftEntry(ctx, entry, lines)
	if errors.Is(err, apperrors.ErrNumberCollision) && isNew {
		// Rare: another creation raced us to the same number. Regenerate and
		// retry once before surfacing the failure.
		logger.Warn("Entry number collision, regenerating", slog.String("entry_number", entry.EntryNumber))
		number, numErr := s.numberingSvc.NextNumber(ctx, companyID, domain.KindJournalEntry)
		if numErr != nil {
			return nil, nil, fmt.Errorf("failed to reallocate entry number after collision: %w", numErr)
		}
		entry.EntryNumber = number
		err = s.journalRepo.SaveDraftEntry(ctx, entry, lines)
	}
	if err != nil {
		logger.Error("Failed to save draft entry", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, nil, fmt.Errorf("failed to save draft entry: %w", err)
	}

	logger.Info("Draft entry saved", slog.String("entry_id", entry.EntryID), slog.String("entry_number", entry.EntryNumber))
	entry.Lines = lines
	return &entry, nil, nil
}

// GetEntryByID retrieves an entry together with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, companyID, entryID, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		logger.Warn("Authorization failed for GetEntryByID", slog.String("error", err.Error()))
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.CompanyID != companyID {
		// Obscure existence of entries in other companies.
		return nil, apperrors.ErrNotFound
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch lines for entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a paginated list of entries for a company.
func (s *journalService) ListEntries(ctx context.Context, companyID, userID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		logger.Warn("Authorization failed for ListEntries", "error", err)
		return nil, err
	}

	entries, nextToken, err := s.journalRepo.ListEntriesByCompany(ctx, companyID, params.Limit, params.NextToken, params.IncludeReversals)
	if err != nil {
		logger.Error("Failed to list entries from repository", "error", err)
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	var linesMap map[string][]domain.JournalLine
	if params.IncludeLines && len(entries) > 0 {
		entryIDs := make([]string, len(entries))
		for i, entry := range entries {
			entryIDs[i] = entry.EntryID
		}
		linesMap, err = s.journalRepo.FindLinesByEntryIDs(ctx, entryIDs)
		if err != nil {
			logger.Warn("Failed to fetch lines for entries", "error", err)
			// Continue without lines rather than failing the whole request.
		}
	}

	responses := make([]dto.JournalEntryResponse, len(entries))
	for i, entry := range entries {
		if linesMap != nil {
			entry.Lines = linesMap[entry.EntryID]
		}
		responses[i] = dto.ToJournalEntryResponse(&entry)
	}

	return &dto.ListJournalEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}

// EntriesForExport walks the listing page by page and collects the raw
// entries. The page size caps a single repository round trip, not the export.
func (s *journalService) EntriesForExport(ctx context.Context, companyID, userID string, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	pageSize := params.Limit
	if pageSize <= 0 {
		pageSize = 200
	}

	var all []domain.JournalEntry
	nextToken := params.NextToken
	for {
		entries, token, err := s.journalRepo.ListEntriesByCompany(ctx, companyID, pageSize, nextToken, params.IncludeReversals)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve entries for export: %w", err)
		}
		all = append(all, entries...)
		if token == nil {
			break
		}
		nextToken = token
	}
	return all, nil
}

// Post transitions a draft entry to POSTED. The balance invariant is
// re-checked in strict mode against the persisted lines, never against
// client-supplied totals.
func (s *journalService) Post(ctx context.Context, companyID, entryID, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		logger.Warn("Authorization failed for Post", slog.String("error", err.Error()))
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry status is %s, expected DRAFT", apperrors.ErrInvalidState, entry.Status)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for posting: %w", err)
	}

	result := domain.ValidateEntry(*entry, lines, true)
	if !result.Valid() {
		if _, unbalanced := result.Errors["balance"]; unbalanced && len(result.Errors) == 1 {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnbalancedEntry, result.Errors["balance"])
		}
		return nil, fmt.Errorf("%w: entry failed strict validation", apperrors.ErrValidation)
	}

	balanceChanges, err := s.calculateBalanceChanges(ctx, companyID, entry.CurrencyCode, lines, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	totals := accounting.RecomputeEntryTotals(lines)
	entry.TotalDebit = totals.TotalDebit
	entry.TotalCredit = totals.TotalCredit
	entry.Status = domain.Posted
	entry.PostedAt = &now
	entry.PostedBy = &userID
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	if err := s.journalRepo.PostEntry(ctx, *entry, lines, balanceChanges); err != nil {
		logger.Error("Failed to post entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to post entry: %w", err)
	}

	logger.Info("Entry posted", slog.String("entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	entry.Lines = lines
	return entry, nil
}

// Reverse creates a posted mirror entry (debits and credits swapped) and
// flips the original to REVERSED. Both writes happen in one database
// transaction; a failure leaves neither side updated.
func (s *journalService) Reverse(ctx context.Context, companyID, entryID, userID, reason string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.ErrMissingReason
	}

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		logger.Warn("Authorization failed for Reverse", slog.String("error", err.Error()))
		return nil, err
	}

	original, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if original.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: entry status is %s, expected POSTED", apperrors.ErrInvalidState, original.Status)
	}

	originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve original lines: %w", err)
	}

	number, err := s.numberingSvc.NextNumber(ctx, companyID, domain.KindJournalEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate reversal entry number: %w", err)
	}

	now := time.Now().UTC()
	mirror := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		CompanyID:       companyID,
		EntryNumber:     number,
		EntryDate:       original.EntryDate,
		Reference:       original.EntryNumber,
		Description:     fmt.Sprintf("Reversal of %s: %s", original.EntryNumber, original.Description),
		Status:          domain.Posted, // a reversal is itself a posted correcting entry
		CurrencyCode:    original.CurrencyCode,
		TotalDebit:      original.TotalCredit,
		TotalCredit:     original.TotalDebit,
		PostedAt:        &now,
		PostedBy:        &userID,
		OriginalEntryID: &original.EntryID,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	mirrorLines := make([]domain.JournalLine, len(originalLines))
	for i, origLine := range originalLines {
		mirrorLine := origLine.Mirror()
		mirrorLine.LineID = uuid.NewString()
		mirrorLine.EntryID = mirror.EntryID
		mirrorLine.AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
		mirrorLines[i] = mirrorLine
	}

	balanceChanges, err := s.calculateBalanceChanges(ctx, companyID, mirror.CurrencyCode, mirrorLines, userID)
	if err != nil {
		return nil, err
	}

	original.Status = domain.Reversed
	original.ReversedAt = &now
	original.ReversedBy = &userID
	original.ReversalReason = reason
	original.ReversingEntryID = &mirror.EntryID
	original.LastUpdatedAt = now
	original.LastUpdatedBy = userID

	if err := s.journalRepo.ReverseEntry(ctx, *original, mirror, mirrorLines, balanceChanges); err != nil {
		logger.Error("Failed to reverse entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to reverse entry: %w", err)
	}

	logger.Info("Entry reversed", slog.String("entry_id", entryID), slog.String("reversing_entry_id", mirror.EntryID))
	mirror.Lines = mirrorLines
	return &mirror, nil
}

// Delete removes a draft entry. Posted and reversed entries are permanent
// audit records and cannot be deleted, only deactivated.
func (s *journalService) Delete(ctx context.Context, companyID, entryID, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	if entry.Status != domain.Draft {
		return fmt.Errorf("%w: entry status is %s", apperrors.ErrCannotDeletePosted, entry.Status)
	}

	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		logger.Error("Failed to delete draft entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	logger.Info("Draft entry deleted", slog.String("entry_id", entryID))
	return nil
}

// ToggleActive flips the soft-delete visibility flag. Independent of the
// lifecycle status: a posted entry can be hidden without touching its audit
// trail. Inactive entries are excluded from reporting aggregation.
func (s *journalService) ToggleActive(ctx context.Context, companyID, entryID, userID string, isActive bool) error {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.CompanyID != companyID {
		return apperrors.ErrNotFound
	}

	return s.journalRepo.SetEntryActive(ctx, entryID, isActive, userID, time.Now().UTC())
}

// ListLinesByAccount retrieves posted lines for one account, paginated.
func (s *journalService) ListLinesByAccount(ctx context.Context, companyID, accountID, userID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	return s.journalRepo.ListLinesByAccountID(ctx, companyID, accountID, limit, nextToken)
}

// calculateBalanceChanges fetches and validates the referenced accounts and
// returns the net signed balance delta per account.
func (s *journalService) calculateBalanceChanges(ctx context.Context, companyID, currencyCode string, lines []domain.JournalLine, userID string) (map[string]decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	uniqueAccountIDs := uniqueStrings(accountIDs)

	accountsMap, err := s.accountSvc.GetAccountByIDs(ctx, companyID, uniqueAccountIDs, userID)
	if err != nil {
		logger.Error("Failed to fetch accounts for balance calculation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	for _, id := range uniqueAccountIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, id)
		}
		if acc.CompanyID != companyID {
			logger.Warn("Account used in entry belongs to a different company", slog.String("account_id", id))
			return nil, fmt.Errorf("%w: account %s does not belong to company %s", ErrAccountNotFound, id, companyID)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
		if acc.CurrencyCode != currencyCode {
			return nil, fmt.Errorf("%w: account currency %s does not match entry currency %s for account %s", ErrCurrencyMismatch, acc.CurrencyCode, currencyCode, id)
		}
	}

	balanceChanges := make(map[string]decimal.Decimal)
	for _, line := range lines {
		acc := accountsMap[line.AccountID]
		signedAmount, err := accounting.CalculateSignedAmount(line, acc.AccountType)
		if err != nil {
			logger.Error("Error calculating signed amount", slog.String("error", err.Error()), slog.String("line_id", line.LineID))
			return nil, fmt.Errorf("internal error calculating balance changes: %w", err)
		}
		balanceChanges[line.AccountID] = balanceChanges[line.AccountID].Add(signedAmount)
	}
	return balanceChanges, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
