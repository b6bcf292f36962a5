package repositories

import (
	"context"
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalEntryReader defines read operations for journal entry data.
type JournalEntryReader interface {
	// FindEntryByID retrieves a specific entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntriesByCompany retrieves a paginated list of entries for a company
	// using token-based pagination. Returns the entries, a token for the next
	// page, and an error.
	ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string, includeReversals bool) ([]domain.JournalEntry, *string, error)
}

// JournalEntryWriter defines write operations for journal entry data.
type JournalEntryWriter interface {
	// SaveDraftEntry persists a draft header together with a full replacement
	// of its line set as one database transaction. A saved entry is never
	// observable with the header committed but lines missing.
	SaveDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// PostEntry flips a draft to POSTED, stamps postedAt/postedBy and applies
	// the per-account balance changes, all within one database transaction.
	PostEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error

	// ReverseEntry persists the mirror entry and flips the original to
	// REVERSED with its stamps and linkage, atomically.
	ReverseEntry(ctx context.Context, original domain.JournalEntry, mirror domain.JournalEntry, mirrorLines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error

	// DeleteEntry removes a draft entry and its lines.
	DeleteEntry(ctx context.Context, entryID string) error

	// SetEntryActive toggles the soft-delete visibility flag.
	SetEntryActive(ctx context.Context, entryID string, isActive bool, updatedBy string, updatedAt time.Time) error
}

// JournalLineReader defines read operations for journal line data.
type JournalLineReader interface {
	// FindLinesByEntryID retrieves all lines of a single entry in insertion order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error)

	// ListLinesByAccountID retrieves a paginated list of posted lines for an
	// account using token-based pagination.
	ListLinesByAccountID(ctx context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
	JournalLineReader
}
