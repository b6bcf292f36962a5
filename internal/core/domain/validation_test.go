package domain_test

import (
	"testing"
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validEntry() domain.JournalEntry {
	return domain.JournalEntry{
		EntryNumber: "JE-2025-0001",
		EntryDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Office rent for March",
	}
}

func balancedLines() []domain.JournalLine {
	return []domain.JournalLine{
		{AccountID: "acc-rent", DebitAmount: decimal.NewFromInt(500)},
		{AccountID: "acc-bank", CreditAmount: decimal.NewFromInt(500)},
	}
}

func TestValidateEntryValid(t *testing.T) {
	result := domain.ValidateEntry(validEntry(), balancedLines(), true)
	assert.True(t, result.Valid())
	assert.Empty(t, result.Errors)
}

func TestValidateEntryMissingHeaderFields(t *testing.T) {
	result := domain.ValidateEntry(domain.JournalEntry{}, nil, false)
	assert.False(t, result.Valid())
	assert.Contains(t, result.Errors, "description")
	assert.Contains(t, result.Errors, "entryNumber")
	assert.Contains(t, result.Errors, "entryDate")
	assert.Contains(t, result.Errors, "lines")
}

func TestValidateEntryLineErrorsAreKeyedByIndex(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "", DebitAmount: decimal.NewFromInt(100)},
		{AccountID: "acc-2", DebitAmount: decimal.NewFromInt(50), CreditAmount: decimal.NewFromInt(50)},
		{AccountID: "acc-3"},
	}
	result := domain.ValidateEntry(validEntry(), lines, false)

	assert.False(t, result.Valid())
	assert.Contains(t, result.Errors, "line_0_accountId")
	assert.Contains(t, result.Errors, "line_1_amount", "a line with both sides set should be rejected")
	assert.Contains(t, result.Errors, "line_2_amount", "a line with neither side set should be rejected")
}

func TestValidateEntryNegativeAmounts(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "acc-1", DebitAmount: decimal.NewFromInt(-10)},
		{AccountID: "acc-2", CreditAmount: decimal.NewFromInt(-10)},
	}
	result := domain.ValidateEntry(validEntry(), lines, false)

	assert.Contains(t, result.Errors, "line_0_debitAmount")
	assert.Contains(t, result.Errors, "line_1_creditAmount")
}

func TestValidateEntryAccumulatesAllViolations(t *testing.T) {
	entry := domain.JournalEntry{EntryDate: time.Now()}
	lines := []domain.JournalLine{
		{AccountID: "", DebitAmount: decimal.NewFromInt(-5)},
	}
	result := domain.ValidateEntry(entry, lines, false)

	// Header and line violations are all reported in one pass.
	assert.GreaterOrEqual(t, len(result.Errors), 4)
}

func TestValidateEntryBalanceOnlyEnforcedInStrictMode(t *testing.T) {
	unbalanced := []domain.JournalLine{
		{AccountID: "acc-1", DebitAmount: decimal.NewFromInt(100)},
		{AccountID: "acc-2", CreditAmount: decimal.NewFromInt(60)},
	}

	draftResult := domain.ValidateEntry(validEntry(), unbalanced, false)
	assert.True(t, draftResult.Valid(), "draft mode should accept unbalanced lines")

	strictResult := domain.ValidateEntry(validEntry(), unbalanced, true)
	assert.False(t, strictResult.Valid())
	assert.Contains(t, strictResult.Errors, "balance")
}

func TestValidateEntryBalanceTolerance(t *testing.T) {
	// A one-cent rounding difference is within tolerance.
	lines := []domain.JournalLine{
		{AccountID: "acc-1", DebitAmount: decimal.NewFromFloat(33.33)},
		{AccountID: "acc-2", CreditAmount: decimal.NewFromFloat(33.34)},
	}
	result := domain.ValidateEntry(validEntry(), lines, true)
	assert.True(t, result.Valid())

	// Two cents is not.
	lines[1].CreditAmount = decimal.NewFromFloat(33.35)
	result = domain.ValidateEntry(validEntry(), lines, true)
	assert.Contains(t, result.Errors, "balance")
}
