package accounting

import (
	"testing"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeEntryTotals(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "a1", DebitAmount: decimal.NewFromFloat(150.25)},
		{AccountID: "a2", DebitAmount: decimal.NewFromFloat(49.75)},
		{AccountID: "a3", CreditAmount: decimal.NewFromInt(200)},
	}

	totals := RecomputeEntryTotals(lines)

	assert.True(t, totals.TotalDebit.Equal(decimal.NewFromInt(200)), "got %s", totals.TotalDebit)
	assert.True(t, totals.TotalCredit.Equal(decimal.NewFromInt(200)), "got %s", totals.TotalCredit)
	assert.True(t, totals.Balanced)
}

func TestRecomputeEntryTotalsUnbalanced(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "a1", DebitAmount: decimal.NewFromInt(100)},
		{AccountID: "a2", CreditAmount: decimal.NewFromInt(90)},
	}

	totals := RecomputeEntryTotals(lines)
	assert.False(t, totals.Balanced)
}

func TestRecomputeEntryTotalsWithinTolerance(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "a1", DebitAmount: decimal.NewFromFloat(33.33)},
		{AccountID: "a2", CreditAmount: decimal.NewFromFloat(33.34)},
	}

	totals := RecomputeEntryTotals(lines)
	assert.True(t, totals.Balanced, "one cent of rounding drift should still count as balanced")
}

func TestRecomputeEntryTotalsEmpty(t *testing.T) {
	totals := RecomputeEntryTotals(nil)
	assert.True(t, totals.TotalDebit.IsZero())
	assert.True(t, totals.TotalCredit.IsZero())
	assert.True(t, totals.Balanced)
}

func TestRecomputeInvoiceTotalsNoDiscountNoTax(t *testing.T) {
	lines := []domain.InvoiceLine{
		{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(49.50)},
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
	}

	totals := RecomputeInvoiceTotals(lines, InvoicePolicy{DiscountType: domain.DiscountNone})

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(100)), "got %s", totals.Subtotal)
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(100)))
}

func TestRecomputeInvoiceTotalsPercentDiscountAndTax(t *testing.T) {
	lines := []domain.InvoiceLine{
		{Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(100)},
	}
	policy := InvoicePolicy{
		DiscountType:  domain.DiscountPercent,
		DiscountValue: decimal.NewFromInt(10),
		TaxRate:       decimal.NewFromInt(15),
	}

	totals := RecomputeInvoiceTotals(lines, policy)

	// 1000 - 10% = 900; tax 15% of 900 = 135; total 1035.
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(1000)), "got %s", totals.Subtotal)
	assert.True(t, totals.DiscountAmount.Equal(decimal.NewFromInt(100)), "got %s", totals.DiscountAmount)
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromInt(135)), "got %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(1035)), "got %s", totals.Total)
}

func TestRecomputeInvoiceTotalsFixedDiscountCappedAtSubtotal(t *testing.T) {
	lines := []domain.InvoiceLine{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50)},
	}
	policy := InvoicePolicy{
		DiscountType:  domain.DiscountAmount,
		DiscountValue: decimal.NewFromInt(80),
	}

	totals := RecomputeInvoiceTotals(lines, policy)

	assert.True(t, totals.DiscountAmount.Equal(decimal.NewFromInt(50)), "discount must not exceed subtotal")
	assert.True(t, totals.Total.IsZero())
}

func TestRecomputeInvoiceTotalsTaxInclusive(t *testing.T) {
	lines := []domain.InvoiceLine{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(115)},
	}
	policy := InvoicePolicy{
		DiscountType: domain.DiscountNone,
		TaxRate:      decimal.NewFromInt(15),
		TaxInclusive: true,
	}

	totals := RecomputeInvoiceTotals(lines, policy)

	// Prices already carry tax: 115 = 100 net + 15 tax, total stays 115.
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromInt(15)), "got %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(115)), "got %s", totals.Total)
}

func TestRecomputeExpenseAmount(t *testing.T) {
	exclusive := RecomputeExpenseAmount(decimal.NewFromInt(200), decimal.NewFromInt(15), false)
	assert.True(t, exclusive.NetAmount.Equal(decimal.NewFromInt(200)))
	assert.True(t, exclusive.TaxAmount.Equal(decimal.NewFromInt(30)), "got %s", exclusive.TaxAmount)
	assert.True(t, exclusive.GrossAmount.Equal(decimal.NewFromInt(230)), "got %s", exclusive.GrossAmount)

	inclusive := RecomputeExpenseAmount(decimal.NewFromInt(230), decimal.NewFromInt(15), true)
	assert.True(t, inclusive.NetAmount.Equal(decimal.NewFromInt(200)), "got %s", inclusive.NetAmount)
	assert.True(t, inclusive.TaxAmount.Equal(decimal.NewFromInt(30)), "got %s", inclusive.TaxAmount)
	assert.True(t, inclusive.GrossAmount.Equal(decimal.NewFromInt(230)))

	zeroRate := RecomputeExpenseAmount(decimal.NewFromInt(75), decimal.Zero, false)
	assert.True(t, zeroRate.TaxAmount.IsZero())
	assert.True(t, zeroRate.NetAmount.Equal(zeroRate.GrossAmount))
}

func TestCalculateSignedAmount(t *testing.T) {
	debit := domain.JournalLine{AccountID: "a1", DebitAmount: decimal.NewFromInt(100)}
	credit := domain.JournalLine{AccountID: "a1", CreditAmount: decimal.NewFromInt(100)}

	cases := []struct {
		name        string
		line        domain.JournalLine
		accountType domain.AccountType
		want        int64
	}{
		{"debit to asset increases", debit, domain.AccountTypeAsset, 100},
		{"credit to asset decreases", credit, domain.AccountTypeAsset, -100},
		{"debit to expense increases", debit, domain.AccountTypeExpense, 100},
		{"debit to liability decreases", debit, domain.AccountTypeLiability, -100},
		{"credit to liability increases", credit, domain.AccountTypeLiability, 100},
		{"credit to revenue increases", credit, domain.AccountTypeRevenue, 100},
		{"debit to equity decreases", debit, domain.AccountTypeEquity, -100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateSignedAmount(tc.line, tc.accountType)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(tc.want)), "got %s, want %d", got, tc.want)
		})
	}
}

func TestCalculateSignedAmountUnknownType(t *testing.T) {
	line := domain.JournalLine{AccountID: "a1", DebitAmount: decimal.NewFromInt(10)}
	_, err := CalculateSignedAmount(line, domain.AccountType("BOGUS"))
	assert.Error(t, err)
}
