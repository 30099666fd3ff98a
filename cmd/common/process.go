// Package common holds the reporting pipeline steps shared by the
// summarize and add commands.
package common

import (
	"io"
	"time"

	"spendreport/cmd/root"
	"spendreport/internal/export"
	"spendreport/internal/models"
	"spendreport/internal/summary"
)

// PrintFullSummary writes the default report: the transaction listing,
// the overall expense total, the income and expense category views, and
// the transfer listing.
func PrintFullSummary(w io.Writer, s *summary.Summarizer, transactions []models.Transaction) {
	summary.RenderTransactions(w, transactions)
	s.RenderTotalExpenses(w, transactions)
	summary.RenderIncomeExpense(w, s.CategoryTotals(transactions))
	summary.RenderTransfers(w, transactions)
}

// WriteExport persists the normalized transaction set to the configured
// export directory, stamped with today's date.
func WriteExport(transactions []models.Transaction) (string, error) {
	return export.Write(transactions, root.Cfg.Data.ExportDirectory, time.Now(), root.Log)
}
