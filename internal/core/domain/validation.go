package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum accepted difference between total debits
// and total credits, absorbing rounding drift from client-side arithmetic.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// ValidationResult carries every violation found in a candidate entry, keyed
// by field so callers can render one message per offending input. Line-level
// keys follow the pattern line_<index>_<field>.
type ValidationResult struct {
	Errors map[string]string `json:"errors"`
}

// Valid reports whether no violations were recorded.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) add(key, message string) {
	if r.Errors == nil {
		r.Errors = map[string]string{}
	}
	r.Errors[key] = message
}

// ValidateEntry checks a candidate journal entry header and its lines,
// accumulating all violations rather than stopping at the first. When strict
// is true the double-entry balance invariant is enforced as well; draft saves
// pass strict=false so unbalanced work in progress can be kept.
// Pure function of its inputs; no side effects.
func ValidateEntry(entry JournalEntry, lines []JournalLine, strict bool) ValidationResult {
	var result ValidationResult

	if entry.Description == "" {
		result.add("description", "description is required")
	}
	if entry.EntryNumber == "" {
		result.add("entryNumber", "entry number is required")
	}
	if entry.EntryDate.IsZero() {
		result.add("entryDate", "entry date is required")
	}
	if len(lines) == 0 {
		result.add("lines", "at least one line is required")
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range lines {
		if line.AccountID == "" {
			result.add(fmt.Sprintf("line_%d_accountId", i), "account is required")
		}
		if line.DebitAmount.IsNegative() {
			result.add(fmt.Sprintf("line_%d_debitAmount", i), "debit amount cannot be negative")
		}
		if line.CreditAmount.IsNegative() {
			result.add(fmt.Sprintf("line_%d_creditAmount", i), "credit amount cannot be negative")
		}
		debitSet := line.DebitAmount.IsPositive()
		creditSet := line.CreditAmount.IsPositive()
		switch {
		case debitSet && creditSet:
			result.add(fmt.Sprintf("line_%d_amount", i), "a line cannot carry both a debit and a credit")
		case !debitSet && !creditSet:
			result.add(fmt.Sprintf("line_%d_amount", i), "either a debit or a credit amount is required")
		}
		totalDebit = totalDebit.Add(line.DebitAmount)
		totalCredit = totalCredit.Add(line.CreditAmount)
	}

	if strict {
		if totalDebit.Sub(totalCredit).Abs().GreaterThan(BalanceTolerance) {
			result.add("balance", fmt.Sprintf("entry is unbalanced: debits %s, credits %s",
				totalDebit.StringFixed(2), totalCredit.StringFixed(2)))
		}
	}

	return result
}
