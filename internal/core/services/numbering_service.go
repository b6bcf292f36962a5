package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/middleware"
	"github.com/hisabiq/hisab_backend/internal/utils"
)

// numberingService allocates document numbers from the transactional
// sequence counters, with a timestamp+random fallback when the allocator is
// unreachable. Numbering tolerates gaps, never collisions.
type numberingService struct {
	sequenceRepo portsrepo.SequenceRepositoryFacade
	now          func() time.Time
}

// NewNumberingService creates a new NumberingService.
func NewNumberingService(sequenceRepo portsrepo.SequenceRepositoryFacade) portssvc.NumberingSvcFacade {
	return &numberingService{
		sequenceRepo: sequenceRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.NumberingSvcFacade = (*numberingService)(nil)

// NextNumber returns "<PREFIX>-<year>-<seq>" from the atomic allocator, or
// "<PREFIX>-<timestamp>-<random>" when the allocator fails. A failed
// allocation is logged as a warning but never blocks document creation.
func (s *numberingService) NextNumber(ctx context.Context, companyID string, kind domain.DocumentKind) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := s.now()
	seq, err := s.sequenceRepo.AllocateNext(ctx, companyID, kind, now.Year())
	if err == nil {
		return fmt.Sprintf("%s-%d-%04d", kind, now.Year(), seq), nil
	}

	logger.Warn("Sequence allocation failed, falling back to timestamp-based number",
		slog.String("company_id", companyID),
		slog.String("kind", string(kind)),
		slog.String("error", err.Error()),
	)

	suffix, randErr := utils.RandomDigits(4)
	if randErr != nil {
		// crypto/rand failing is effectively fatal; surface the original error.
		return "", fmt.Errorf("sequence allocation failed and no fallback available: %w", err)
	}
	return fmt.Sprintf("%s-%s-%s", kind, now.Format("20060102150405"), suffix), nil
}
