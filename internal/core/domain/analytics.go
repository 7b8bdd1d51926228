package domain

import (
	"github.com/shopspring/decimal"
)

// SortKey orders the filtered records of a period.
type SortKey string

const (
	SortDateDesc   SortKey = "date_desc"
	SortDateAsc    SortKey = "date_asc"
	SortAmountDesc SortKey = "amount_desc"
	SortAmountAsc  SortKey = "amount_asc"
	SortCategory   SortKey = "category"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc, SortCategory:
		return true
	}
	return false
}

// AnalyticsQuery scopes a period analytics computation. It is a plain value; the engine
// reads nothing else.
type AnalyticsQuery struct {
	StartMonth YearMonth
	EndMonth   YearMonth
	Categories []string // empty means all
	Search     string   // case-insensitive substring over description and category
	SortBy     SortKey
}

// CategoryAmount is a per-category sum.
type CategoryAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthBucket is the sum of one calendar month.
type MonthBucket struct {
	Month  YearMonth       `json:"-"`
	Label  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// PeriodAnalytics is the result of a period analytics computation.
type PeriodAnalytics struct {
	FilteredItems        []FinancialRecord `json:"filteredItems"`
	TotalForPeriod       decimal.Decimal   `json:"totalForPeriod"`
	AveragePerDay        decimal.Decimal   `json:"averagePerDay"`
	TopCategory          *CategoryAmount   `json:"topCategory"`
	MonthOverMonthChange *decimal.Decimal  `json:"monthOverMonthChange"` // percent, nil when previous total is 0
	PreviousPeriodTotal  decimal.Decimal   `json:"previousPeriodTotal"`
	CategoryBreakdown    []CategoryAmount  `json:"categoryBreakdown"`
	MonthlyTrend         []MonthBucket     `json:"monthlyTrend"`
	ItemCount            int               `json:"itemCount"`
}
