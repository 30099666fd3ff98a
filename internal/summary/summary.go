// Package summary computes signed category totals over normalized
// transactions at whole-set, ISO-week, and calendar-month granularity.
//
// The same rules apply at every granularity: Transfers never count, a
// record whose description mentions a refund contributes -abs(amount) to
// its category no matter how the source signed it, and everything else
// contributes its signed amount as-is.
package summary

import (
	"sort"
	"strings"
	"time"

	"spendreport/internal/dateutils"
	"spendreport/internal/models"

	"github.com/shopspring/decimal"
)

// refundKeywords force a contribution of -abs(amount): a refund always
// reduces its category's net, even when the feed reports it positive.
var refundKeywords = []string{"RETURN", "REFUND"}

// CategoryTotal is one category's signed total.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// WeekSummary holds one ISO week's category totals, sorted by descending
// magnitude, plus the week's net total.
type WeekSummary struct {
	Key    dateutils.WeekKey
	Totals []CategoryTotal
	Total  decimal.Decimal
}

// MonthSummary holds one month's income and expense views and their
// totals.
type MonthSummary struct {
	Key          dateutils.MonthKey
	Income       []CategoryTotal
	Expenses     []CategoryTotal
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
}

// Summarizer aggregates categorized transactions. The clock is injectable
// so the two-week scope of the weekly view is testable.
type Summarizer struct {
	now func() time.Time
}

// New creates a Summarizer using the wall clock.
func New() *Summarizer {
	return &Summarizer{now: time.Now}
}

// NewWithClock creates a Summarizer with a fixed clock, for tests.
func NewWithClock(now func() time.Time) *Summarizer {
	return &Summarizer{now: now}
}

// contribution returns a transaction's contribution to its category
// total, or false when the record is excluded from summaries entirely.
func contribution(tx models.Transaction) (decimal.Decimal, bool) {
	if tx.Category == models.CategoryTransfers {
		return decimal.Zero, false
	}
	descUpper := strings.ToUpper(tx.Description)
	for _, keyword := range refundKeywords {
		if strings.Contains(descUpper, keyword) {
			return tx.Amount.Abs().Neg(), true
		}
	}
	return tx.Amount, true
}

// accumulator sums per-category contributions while remembering first-seen
// category order, so output is deterministic without a sort.
type accumulator struct {
	order  []string
	totals map[string]decimal.Decimal
}

func newAccumulator() *accumulator {
	return &accumulator{totals: make(map[string]decimal.Decimal)}
}

func (a *accumulator) add(category string, amount decimal.Decimal) {
	if _, ok := a.totals[category]; !ok {
		a.order = append(a.order, category)
	}
	a.totals[category] = a.totals[category].Add(amount)
}

func (a *accumulator) list() []CategoryTotal {
	out := make([]CategoryTotal, 0, len(a.order))
	for _, category := range a.order {
		out = append(out, CategoryTotal{Category: category, Total: a.totals[category]})
	}
	return out
}

// CategoryTotals sums contributions per category over the whole set, in
// first-seen category order.
func (s *Summarizer) CategoryTotals(transactions []models.Transaction) []CategoryTotal {
	acc := newAccumulator()
	for _, tx := range transactions {
		if amount, ok := contribution(tx); ok {
			acc.add(tx.Category, amount)
		}
	}
	return acc.list()
}

// IncomeView filters totals to the income categories (Paychecks and Cash
// Income) with a positive total, sorted descending.
func IncomeView(totals []CategoryTotal) []CategoryTotal {
	var income []CategoryTotal
	for _, ct := range totals {
		if !ct.Total.IsPositive() {
			continue
		}
		if ct.Category == models.CategoryPaychecks || ct.Category == models.CategoryCashIncome {
			income = append(income, ct)
		}
	}
	sort.SliceStable(income, func(i, j int) bool {
		return income[i].Total.GreaterThan(income[j].Total)
	})
	return income
}

// ExpenseView filters totals to categories with a negative total, sorted
// by magnitude with the largest expense first. Totals stay signed; the
// renderer flips them for display.
func ExpenseView(totals []CategoryTotal) []CategoryTotal {
	var expenses []CategoryTotal
	for _, ct := range totals {
		if ct.Total.IsNegative() {
			expenses = append(expenses, ct)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Total.Abs().GreaterThan(expenses[j].Total.Abs())
	})
	return expenses
}

// TotalExpenses sums the magnitudes of all negative-amount records outside
// Transfers.
func (s *Summarizer) TotalExpenses(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Category == models.CategoryTransfers || !tx.Amount.IsNegative() {
			continue
		}
		total = total.Add(tx.Amount.Abs())
	}
	return total
}

// Weekly buckets transactions by ISO week and reports only the current and
// immediately preceding week relative to the Summarizer's clock. Records
// without a parsed date are skipped. Category totals within a week sort by
// descending magnitude.
func (s *Summarizer) Weekly(transactions []models.Transaction) []WeekSummary {
	buckets := make(map[dateutils.WeekKey]*accumulator)
	for _, tx := range transactions {
		if !tx.HasBookedDate() {
			continue
		}
		amount, ok := contribution(tx)
		if !ok {
			continue
		}
		key := dateutils.ISOWeek(tx.Booked)
		if buckets[key] == nil {
			buckets[key] = newAccumulator()
		}
		buckets[key].add(tx.Category, amount)
	}

	now := s.now()
	currentWeek := dateutils.ISOWeek(now)
	previousWeek := dateutils.ISOWeek(now.AddDate(0, 0, -7))

	var out []WeekSummary
	for _, key := range []dateutils.WeekKey{previousWeek, currentWeek} {
		acc, ok := buckets[key]
		if !ok {
			continue
		}
		totals := acc.list()
		sort.SliceStable(totals, func(i, j int) bool {
			return totals[i].Total.Abs().GreaterThan(totals[j].Total.Abs())
		})
		weekTotal := decimal.Zero
		for _, ct := range totals {
			weekTotal = weekTotal.Add(ct.Total)
		}
		out = append(out, WeekSummary{Key: key, Totals: totals, Total: weekTotal})
	}
	return out
}

// Monthly buckets transactions by calendar month; every month present is
// reported, in chronological order, each split into income and expense
// views. Records without a parsed date group under the zero (unknown)
// month key, which sorts first.
func (s *Summarizer) Monthly(transactions []models.Transaction) []MonthSummary {
	buckets := make(map[dateutils.MonthKey]*accumulator)
	for _, tx := range transactions {
		amount, ok := contribution(tx)
		if !ok {
			continue
		}
		var key dateutils.MonthKey
		if tx.HasBookedDate() {
			key = dateutils.MonthOf(tx.Booked)
		}
		if buckets[key] == nil {
			buckets[key] = newAccumulator()
		}
		buckets[key].add(tx.Category, amount)
	}

	keys := make([]dateutils.MonthKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	out := make([]MonthSummary, 0, len(keys))
	for _, key := range keys {
		totals := buckets[key].list()
		income := IncomeView(totals)
		expenses := ExpenseView(totals)

		incomeTotal := decimal.Zero
		for _, ct := range income {
			incomeTotal = incomeTotal.Add(ct.Total)
		}
		expenseTotal := decimal.Zero
		for _, ct := range expenses {
			expenseTotal = expenseTotal.Add(ct.Total)
		}

		out = append(out, MonthSummary{
			Key:          key,
			Income:       income,
			Expenses:     expenses,
			IncomeTotal:  incomeTotal,
			ExpenseTotal: expenseTotal,
		})
	}
	return out
}
