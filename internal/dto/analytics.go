package dto

import (
	"strings"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AnalyticsParams are the query parameters of the period analytics endpoint.
type AnalyticsParams struct {
	StartMonth string `form:"startMonth" validate:"required"`
	EndMonth   string `form:"endMonth" validate:"required"`
	Categories string `form:"categories"` // comma separated
	Search     string `form:"search"`
	SortBy     string `form:"sortBy"`
}

// ParseAnalyticsQuery turns query parameters into an AnalyticsQuery. Range ordering and
// sort key checks are left to the engine.
func ParseAnalyticsQuery(p AnalyticsParams) (domain.AnalyticsQuery, error) {
	if err := validateStruct(p); err != nil {
		return domain.AnalyticsQuery{}, err
	}
	start, err := domain.ParseYearMonth(p.StartMonth)
	if err != nil {
		return domain.AnalyticsQuery{}, err
	}
	end, err := domain.ParseYearMonth(p.EndMonth)
	if err != nil {
		return domain.AnalyticsQuery{}, err
	}
	var categories []string
	for _, c := range strings.Split(p.Categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	return domain.AnalyticsQuery{
		StartMonth: start,
		EndMonth:   end,
		Categories: categories,
		Search:     p.Search,
		SortBy:     domain.SortKey(p.SortBy),
	}, nil
}

// CategoryAmountResponse is one row of a category breakdown.
type CategoryAmountResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Color  string          `json:"color,omitempty"`
}

// PeriodAnalyticsResponse defines the data returned for a period analytics query.
type PeriodAnalyticsResponse struct {
	FilteredItems        []FinancialRecordResponse `json:"filteredItems"`
	TotalForPeriod       decimal.Decimal           `json:"totalForPeriod"`
	AveragePerDay        decimal.Decimal           `json:"averagePerDay"`
	TopCategory          *CategoryAmountResponse   `json:"topCategory"`
	MonthOverMonthChange *decimal.Decimal          `json:"monthOverMonthChange"`
	PreviousPeriodTotal  decimal.Decimal           `json:"previousPeriodTotal"`
	CategoryBreakdown    []CategoryAmountResponse  `json:"categoryBreakdown"`
	MonthlyTrend         []domain.MonthBucket      `json:"monthlyTrend"`
	ItemCount            int                       `json:"itemCount"`
}

// ToPeriodAnalyticsResponse converts engine output; colors maps categories to display colours.
func ToPeriodAnalyticsResponse(a domain.PeriodAnalytics, colors map[string]string) PeriodAnalyticsResponse {
	breakdown := make([]CategoryAmountResponse, len(a.CategoryBreakdown))
	for i, c := range a.CategoryBreakdown {
		breakdown[i] = CategoryAmountResponse{Name: c.Name, Amount: c.Amount, Color: colors[c.Name]}
	}
	resp := PeriodAnalyticsResponse{
		FilteredItems:        ToFinancialRecordResponses(a.FilteredItems),
		TotalForPeriod:       a.TotalForPeriod,
		AveragePerDay:        a.AveragePerDay.Round(2),
		MonthOverMonthChange: a.MonthOverMonthChange,
		PreviousPeriodTotal:  a.PreviousPeriodTotal,
		CategoryBreakdown:    breakdown,
		MonthlyTrend:         a.MonthlyTrend,
		ItemCount:            a.ItemCount,
	}
	if len(breakdown) > 0 {
		top := breakdown[0]
		resp.TopCategory = &top
	}
	if a.MonthOverMonthChange != nil {
		change := a.MonthOverMonthChange.Round(2)
		resp.MonthOverMonthChange = &change
	}
	return resp
}
