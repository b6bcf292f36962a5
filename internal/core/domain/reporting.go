package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow is one account's posted debit and credit totals. Only
// active, posted entries contribute; inactive entries are excluded from all
// aggregation regardless of status.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// OrphanedEntry flags a journal entry whose header exists with zero lines, a
// partial-write state the save path should never produce but that a crash
// mid-sequence can leave behind. Surfaced by the reconciliation check.
type OrphanedEntry struct {
	EntryID     string `json:"entryID"`
	EntryNumber string `json:"entryNumber"`
	CompanyID   string `json:"companyID"`
	Status      EntryStatus `json:"status"`
}
