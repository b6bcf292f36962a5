package accounting

import (
	"fmt"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryTotals holds the derived monetary fields of a journal entry.
type EntryTotals struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balanced    bool            `json:"balanced"`
}

// RecomputeEntryTotals derives debit/credit totals and the balanced flag from
// a line set. Pure and deterministic; callers re-run it after every line
// mutation so displayed totals can never come from a stale line set.
func RecomputeEntryTotals(lines []domain.JournalLine) EntryTotals {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.DebitAmount)
		totalCredit = totalCredit.Add(line.CreditAmount)
	}
	return EntryTotals{
		TotalDebit:  totalDebit.Round(2),
		TotalCredit: totalCredit.Round(2),
		Balanced:    totalDebit.Sub(totalCredit).Abs().LessThanOrEqual(domain.BalanceTolerance),
	}
}

// InvoicePolicy captures the discount and tax settings an invoice's totals
// depend on.
type InvoicePolicy struct {
	DiscountType  domain.DiscountType
	DiscountValue decimal.Decimal
	TaxRate       decimal.Decimal // percentage, e.g. 15
	TaxInclusive  bool
}

// InvoiceTotals holds the derived monetary fields of an invoice.
type InvoiceTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
}

// RecomputeInvoiceTotals derives subtotal, discount, tax and grand total from
// the line set and policy. Discount applies to the subtotal; tax applies to
// the discounted base. With TaxInclusive the line prices already contain tax
// and the tax portion is extracted rather than added.
func RecomputeInvoiceTotals(lines []domain.InvoiceLine, policy InvoicePolicy) InvoiceTotals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Quantity.Mul(line.UnitPrice))
	}

	discount := decimal.Zero
	switch policy.DiscountType {
	case domain.DiscountPercent:
		discount = subtotal.Mul(policy.DiscountValue).Div(decimal.NewFromInt(100))
	case domain.DiscountAmount:
		discount = policy.DiscountValue
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	base := subtotal.Sub(discount)
	tax := decimal.Zero
	total := base
	if policy.TaxRate.IsPositive() {
		rate := policy.TaxRate.Div(decimal.NewFromInt(100))
		if policy.TaxInclusive {
			// base already contains tax: extract it.
			tax = base.Sub(base.Div(decimal.NewFromInt(1).Add(rate)))
			total = base
		} else {
			tax = base.Mul(rate)
			total = base.Add(tax)
		}
	}

	return InvoiceTotals{
		Subtotal:       subtotal.Round(2),
		DiscountAmount: discount.Round(2),
		TaxAmount:      tax.Round(2),
		Total:          total.Round(2),
	}
}

// ExpenseTotals holds the derived net/tax/gross split of an expense amount.
type ExpenseTotals struct {
	NetAmount   decimal.Decimal `json:"netAmount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	GrossAmount decimal.Decimal `json:"grossAmount"`
}

// RecomputeExpenseAmount splits an entered amount into net, tax and gross
// given the tax rate and whether the entered amount includes tax.
func RecomputeExpenseAmount(amount, taxRate decimal.Decimal, taxInclusive bool) ExpenseTotals {
	if !taxRate.IsPositive() {
		return ExpenseTotals{
			NetAmount:   amount.Round(2),
			TaxAmount:   decimal.Zero,
			GrossAmount: amount.Round(2),
		}
	}
	rate := taxRate.Div(decimal.NewFromInt(100))
	if taxInclusive {
		net := amount.Div(decimal.NewFromInt(1).Add(rate))
		return ExpenseTotals{
			NetAmount:   net.Round(2),
			TaxAmount:   amount.Sub(net).Round(2),
			GrossAmount: amount.Round(2),
		}
	}
	tax := amount.Mul(rate)
	return ExpenseTotals{
		NetAmount:   amount.Round(2),
		TaxAmount:   tax.Round(2),
		GrossAmount: amount.Add(tax).Round(2),
	}
}

// CalculateSignedAmount applies the correct sign to a line amount based on
// account type, per the usual convention:
// DEBIT to ASSET/EXPENSE -> + ; CREDIT to ASSET/EXPENSE -> -
// DEBIT to LIABILITY/EQUITY/REVENUE -> - ; CREDIT to those -> +
func CalculateSignedAmount(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := line.Amount()
	isDebit := line.IsDebit()

	switch accountType {
	case domain.AccountTypeAsset, domain.AccountTypeExpense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.AccountTypeLiability, domain.AccountTypeEquity, domain.AccountTypeRevenue:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
	return signedAmount, nil
}
