// Package export renders report data into downloadable xlsx workbooks.
package export

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
)

const dateLayout = "2006-01-02"

// TrialBalanceWorkbook builds an xlsx workbook with one row per account and
// posted debit/credit totals for the period.
func TrialBalanceWorkbook(rows []domain.TrialBalanceRow, from, to time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Trial Balance"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", fmt.Sprintf("Trial Balance %s to %s", from.Format(dateLayout), to.Format(dateLayout))); err != nil {
		return nil, err
	}

	headers := []string{"Code", "Account", "Type", "Total Debit", "Total Credit"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, row := range rows {
		rowNum := i + 3
		debit, _ := row.TotalDebit.Float64()
		credit, _ := row.TotalCredit.Float64()
		values := []interface{}{row.AccountCode, row.AccountName, string(row.AccountType), debit, credit}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		totalDebit = totalDebit.Add(row.TotalDebit)
		totalCredit = totalCredit.Add(row.TotalCredit)
	}

	footerRow := len(rows) + 3
	footerDebit, _ := totalDebit.Float64()
	footerCredit, _ := totalCredit.Float64()
	if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", footerRow), "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", footerRow), footerDebit); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("E%d", footerRow), footerCredit); err != nil {
		return nil, err
	}

	return f, nil
}

// JournalEntriesWorkbook builds an xlsx workbook listing entry headers, one
// row per entry.
func JournalEntriesWorkbook(entries []domain.JournalEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Journal Entries"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"Number", "Date", "Description", "Status", "Currency", "Total Debit", "Total Credit", "Reference"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, entry := range entries {
		rowNum := i + 2
		debit, _ := entry.TotalDebit.Float64()
		credit, _ := entry.TotalCredit.Float64()
		values := []interface{}{
			entry.EntryNumber,
			entry.EntryDate.Format(dateLayout),
			entry.Description,
			string(entry.Status),
			entry.CurrencyCode,
			debit,
			credit,
			entry.Reference,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
