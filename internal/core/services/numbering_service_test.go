package services_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	"github.com/hisabiq/hisab_backend/internal/core/services"
)

type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepositoryFacade = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) AllocateNext(ctx context.Context, companyID string, kind domain.DocumentKind, year int) (int64, error) {
	args := m.Called(ctx, companyID, kind, year)
	return args.Get(0).(int64), args.Error(1)
}

func TestNextNumberFromSequence(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSequenceRepository)
	svc := services.NewNumberingService(repo)

	year := time.Now().UTC().Year()
	repo.On("AllocateNext", ctx, "company-1", domain.KindJournalEntry, year).Return(int64(42), nil).Once()

	number, err := svc.NextNumber(ctx, "company-1", domain.KindJournalEntry)

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("JE-%d-0042", year), number)
	repo.AssertExpectations(t)
}

func TestNextNumberSequencePadding(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSequenceRepository)
	svc := services.NewNumberingService(repo)

	year := time.Now().UTC().Year()

	// Values wider than the pad are kept intact.
	repo.On("AllocateNext", ctx, "company-1", domain.KindInvoice, year).Return(int64(123456), nil).Once()

	number, err := svc.NextNumber(ctx, "company-1", domain.KindInvoice)

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-%d-123456", year), number)
}

func TestNextNumberFallsBackWhenAllocatorFails(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSequenceRepository)
	svc := services.NewNumberingService(repo)

	repo.On("AllocateNext", ctx, "company-1", domain.KindVoucher, mock.AnythingOfType("int")).Return(int64(0), errors.New("connection refused")).Once()

	number, err := svc.NextNumber(ctx, "company-1", domain.KindVoucher)

	require.NoError(t, err, "allocator failure must not block document creation")
	assert.Regexp(t, regexp.MustCompile(`^VCH-\d{14}-\d{4}$`), number, "fallback should be timestamp plus random digits")
}

func TestNextNumberDistinctPerKind(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSequenceRepository)
	svc := services.NewNumberingService(repo)

	year := time.Now().UTC().Year()
	repo.On("AllocateNext", ctx, "company-1", domain.KindExpense, year).Return(int64(7), nil).Once()
	repo.On("AllocateNext", ctx, "company-1", domain.KindCheck, year).Return(int64(7), nil).Once()

	expNumber, err := svc.NextNumber(ctx, "company-1", domain.KindExpense)
	require.NoError(t, err)
	chkNumber, err := svc.NextNumber(ctx, "company-1", domain.KindCheck)
	require.NoError(t, err)

	assert.NotEqual(t, expNumber, chkNumber)
	assert.Equal(t, fmt.Sprintf("EXP-%d-0007", year), expNumber)
	assert.Equal(t, fmt.Sprintf("CHK-%d-0007", year), chkNumber)
}
