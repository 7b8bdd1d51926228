// Package engine holds the pure ledger and analytics computations. Every function here is a
// deterministic function of its arguments: no I/O, no logging, no shared state, and inputs
// are never mutated.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputePeriodAnalytics filters records to the query scope, sorts them and aggregates them.
func ComputePeriodAnalytics(records []domain.FinancialRecord, q domain.AnalyticsQuery) (domain.PeriodAnalytics, error) {
	if q.StartMonth.IsZero() || q.EndMonth.IsZero() {
		return domain.PeriodAnalytics{}, fmt.Errorf("%w: start and end month are required", apperrors.ErrValidation)
	}
	if q.EndMonth.Before(q.StartMonth) {
		return domain.PeriodAnalytics{}, fmt.Errorf("%w: end month %s precedes start month %s",
			apperrors.ErrInvalidRange, q.EndMonth, q.StartMonth)
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = domain.SortDateDesc
	}
	if !sortBy.Valid() {
		return domain.PeriodAnalytics{}, fmt.Errorf("%w: unknown sort key %q", apperrors.ErrValidation, q.SortBy)
	}

	items := filterRecords(records, q.StartMonth, q.EndMonth, q.Categories, q.Search)
	sortRecords(items, sortBy)

	total := sumAmounts(items)
	breakdown := categoryBreakdown(items)

	months := domain.MonthsInclusive(q.StartMonth, q.EndMonth)
	prevStart, prevEnd := q.StartMonth.AddMonths(-months), q.EndMonth.AddMonths(-months)
	prevTotal := sumAmounts(filterRecords(records, prevStart, prevEnd, q.Categories, q.Search))

	out := domain.PeriodAnalytics{
		FilteredItems:       items,
		TotalForPeriod:      total,
		AveragePerDay:       decimal.Zero,
		PreviousPeriodTotal: prevTotal,
		CategoryBreakdown:   breakdown,
		MonthlyTrend:        monthlyTrend(items, q.StartMonth, q.EndMonth),
		ItemCount:           len(items),
	}
	if len(items) > 0 {
		days := domain.DaysInclusive(q.StartMonth.Start(), q.EndMonth.End())
		if days < 1 {
			days = 1
		}
		out.AveragePerDay = total.Div(decimal.NewFromInt(int64(days)))
	}
	if len(breakdown) > 0 {
		top := breakdown[0]
		out.TopCategory = &top
	}
	if !prevTotal.IsZero() {
		change := total.Sub(prevTotal).Div(prevTotal).Mul(hundred)
		out.MonthOverMonthChange = &change
	}
	return out, nil
}

// filterRecords applies the date, category and search filters in that order.
// The returned slice is freshly allocated.
func filterRecords(records []domain.FinancialRecord, start, end domain.YearMonth, categories []string, search string) []domain.FinancialRecord {
	window := domain.DateRange{From: start.Start(), To: end.End()}
	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]domain.FinancialRecord, 0, len(records))
	for _, r := range records {
		if !window.Contains(r.Date) {
			continue
		}
		if len(allowed) > 0 {
			if _, ok := allowed[r.Category]; !ok {
				continue
			}
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Description), needle) &&
			!strings.Contains(strings.ToLower(r.Category), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// sortRecords is stable so equal keys keep their input order.
func sortRecords(items []domain.FinancialRecord, key domain.SortKey) {
	var less func(a, b domain.FinancialRecord) bool
	switch key {
	case domain.SortDateAsc:
		less = func(a, b domain.FinancialRecord) bool { return domain.DateOf(a.Date).Before(domain.DateOf(b.Date)) }
	case domain.SortAmountDesc:
		less = func(a, b domain.FinancialRecord) bool { return a.Amount.GreaterThan(b.Amount) }
	case domain.SortAmountAsc:
		less = func(a, b domain.FinancialRecord) bool { return a.Amount.LessThan(b.Amount) }
	case domain.SortCategory:
		less = func(a, b domain.FinancialRecord) bool { return a.Category < b.Category }
	default:
		less = func(a, b domain.FinancialRecord) bool { return domain.DateOf(a.Date).After(domain.DateOf(b.Date)) }
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

func sumAmounts(items []domain.FinancialRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range items {
		total = total.Add(r.Amount)
	}
	return total
}

// categoryBreakdown sums per category, largest first; equal sums are ordered by name.
func categoryBreakdown(items []domain.FinancialRecord) []domain.CategoryAmount {
	sums := make(map[string]decimal.Decimal)
	for _, r := range items {
		sums[r.Category] = sums[r.Category].Add(r.Amount)
	}
	out := make([]domain.CategoryAmount, 0, len(sums))
	for name, amount := range sums {
		out = append(out, domain.CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// monthlyTrend yields one bucket per calendar month in range, empty months included.
func monthlyTrend(items []domain.FinancialRecord, start, end domain.YearMonth) []domain.MonthBucket {
	n := domain.MonthsInclusive(start, end)
	buckets := make([]domain.MonthBucket, n)
	for i := range buckets {
		m := start.AddMonths(i)
		buckets[i] = domain.MonthBucket{Month: m, Label: m.String(), Amount: decimal.Zero}
	}
	for _, r := range items {
		idx := domain.MonthsInclusive(start, domain.YearMonthOf(r.Date)) - 1
		if idx < 0 || idx >= n {
			continue
		}
		buckets[idx].Amount = buckets[idx].Amount.Add(r.Amount)
	}
	return buckets
}
