package repositories

import (
	"context"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
)

// SequenceRepositoryFacade allocates document numbers from per-company,
// per-kind, per-year counters. AllocateNext must be safe under concurrent
// callers: the backing store enforces atomicity, not the caller.
type SequenceRepositoryFacade interface {
	// AllocateNext atomically increments and returns the next sequence value
	// for the given company, document kind and year.
	AllocateNext(ctx context.Context, companyID string, kind domain.DocumentKind, year int) (int64, error)
}
