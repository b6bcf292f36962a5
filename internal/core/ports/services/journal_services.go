package services

import (
	"context"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/dto"
)

// JournalSvcFacade exposes the journal entry lifecycle: draft saves, posting,
// reversal, deletion and the soft-delete toggle.
type JournalSvcFacade interface {
	// SaveDraft creates a new draft or replaces an existing draft's header and
	// lines. Returns the validation result instead of persisting when any
	// structural check fails.
	SaveDraft(ctx context.Context, companyID string, req dto.SaveJournalEntryRequest, userID string) (*domain.JournalEntry, *domain.ValidationResult, error)

	GetEntryByID(ctx context.Context, companyID, entryID, userID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, companyID, userID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)

	// EntriesForExport walks every page of the listing and returns the raw
	// domain entries. Feeds the xlsx export.
	EntriesForExport(ctx context.Context, companyID, userID string, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, error)

	// Post transitions a draft to POSTED after a strict balance re-check
	// against the persisted lines.
	Post(ctx context.Context, companyID, entryID, userID string) (*domain.JournalEntry, error)

	// Reverse creates the posted mirror entry and flips the original to
	// REVERSED, atomically.
	Reverse(ctx context.Context, companyID, entryID, userID, reason string) (*domain.JournalEntry, error)

	// Delete removes a draft entry. Posted and reversed entries are permanent.
	Delete(ctx context.Context, companyID, entryID, userID string) error

	// ToggleActive flips the soft-delete visibility flag on any status.
	ToggleActive(ctx context.Context, companyID, entryID, userID string, isActive bool) error

	ListLinesByAccount(ctx context.Context, companyID, accountID, userID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error)
}

// NumberingSvcFacade allocates human-readable document numbers.
type NumberingSvcFacade interface {
	// NextNumber returns the next unique number for the company and document
	// kind, e.g. "JE-2025-0042". Falls back to a timestamp+random form when
	// the allocator is unreachable; it never blocks document creation.
	NextNumber(ctx context.Context, companyID string, kind domain.DocumentKind) (string, error)
}
