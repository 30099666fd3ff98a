package summary

import (
	"fmt"
	"io"

	"spendreport/internal/models"
)

// Rendering helpers for the line-oriented report output. Presentation
// only; every number printed here comes from the aggregation functions.

// RenderTransactions writes one line per transaction.
func RenderTransactions(w io.Writer, transactions []models.Transaction) {
	for _, tx := range transactions {
		fmt.Fprintln(w, tx.String())
	}
}

// RenderTotalExpenses writes the overall expense magnitude.
func (s *Summarizer) RenderTotalExpenses(w io.Writer, transactions []models.Transaction) {
	fmt.Fprintf(w, "\nTOTAL EXPENSES: $%s\n", s.TotalExpenses(transactions).StringFixed(2))
}

// RenderIncomeExpense writes the income and expense views of the whole-set
// category totals. Expenses print as positive magnitudes.
func RenderIncomeExpense(w io.Writer, totals []CategoryTotal) {
	fmt.Fprintln(w, "\nIncome totals by category (Paychecks and Cash Income):")
	for _, ct := range IncomeView(totals) {
		fmt.Fprintf(w, "%s: $%s\n", ct.Category, ct.Total.StringFixed(2))
	}

	fmt.Fprintln(w, "\nExpense totals by category (largest to smallest):")
	for _, ct := range ExpenseView(totals) {
		fmt.Fprintf(w, "%s: $%s\n", ct.Category, ct.Total.Neg().StringFixed(2))
	}
}

// RenderCategoryTransactions writes every transaction assigned to one
// category.
func RenderCategoryTransactions(w io.Writer, transactions []models.Transaction, category string) {
	fmt.Fprintf(w, "\n--- %s Transactions ---\n", category)
	for _, tx := range transactions {
		if tx.Category == category {
			fmt.Fprintf(w, "%s: %s - $%s\n", tx.Date, tx.Description, tx.Amount.StringFixed(2))
		}
	}
}

// RenderTransfers writes the transfer listing. Transfers are excluded from
// every total, so this is the only place they show up.
func RenderTransfers(w io.Writer, transactions []models.Transaction) {
	RenderCategoryTransactions(w, transactions, models.CategoryTransfers)
}

// RenderWeekly writes the current and previous ISO week summaries.
func RenderWeekly(w io.Writer, weeks []WeekSummary) {
	for _, week := range weeks {
		fmt.Fprintf(w, "\n=== Week %d of %d ===\n", week.Key.Week, week.Key.Year)
		for _, ct := range week.Totals {
			fmt.Fprintf(w, "%s: $%s\n", ct.Category, ct.Total.StringFixed(2))
		}
		fmt.Fprintln(w, "------------------------")
		fmt.Fprintf(w, "TOTAL: $%s\n", week.Total.StringFixed(2))
	}
}

// RenderMonthly writes each month's income/expense breakdown.
func RenderMonthly(w io.Writer, months []MonthSummary) {
	for _, month := range months {
		fmt.Fprintf(w, "--- %s ---\n", month.Key.Display())

		fmt.Fprintln(w, "\nIncome (largest to smallest):")
		for _, ct := range month.Income {
			fmt.Fprintf(w, "  %s: $%s\n", ct.Category, ct.Total.StringFixed(2))
		}

		fmt.Fprintln(w, "\nExpenses (largest to smallest):")
		for _, ct := range month.Expenses {
			fmt.Fprintf(w, "  %s: $%s\n", ct.Category, ct.Total.Neg().StringFixed(2))
		}

		fmt.Fprintln(w, "------------------------------")
		fmt.Fprintf(w, "Total Income:  $%s\n", month.IncomeTotal.StringFixed(2))
		fmt.Fprintf(w, "Total Expense: $%s\n\n", month.ExpenseTotal.Neg().StringFixed(2))
	}
}
