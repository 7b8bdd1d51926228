package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
)

// DateFormat is the ISO-8601 calendar date layout used on the wire.
const DateFormat = "2006-01-02"

// MonthFormat is the layout of a YearMonth on the wire.
const MonthFormat = "2006-01"

// DateOf truncates t to its calendar day at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}

// DaysInclusive counts calendar days from `from` to `to`, both included.
// It returns 0 when to precedes from.
func DaysInclusive(from, to time.Time) int {
	f, t := DateOf(from), DateOf(to)
	if t.Before(f) {
		return 0
	}
	return int(t.Sub(f).Hours()/24) + 1
}

// YearMonth is a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth returns a normalized YearMonth (month 13 rolls into the next year).
func NewYearMonth(year int, month time.Month) YearMonth {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// YearMonthOf returns the month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses a "YYYY-MM" string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: invalid month %q, use YYYY-MM", apperrors.ErrValidation, s)
	}
	return YearMonthOf(t), nil
}

func (ym YearMonth) String() string { return ym.Start().Format(MonthFormat) }

// IsZero reports whether ym is the zero value.
func (ym YearMonth) IsZero() bool { return ym.Year == 0 && ym.Month == 0 }

// Start is the first day of the month.
func (ym YearMonth) Start() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the month.
func (ym YearMonth) End() time.Time {
	return ym.Start().AddDate(0, 1, -1)
}

// AddMonths shifts ym by n months (n may be negative).
func (ym YearMonth) AddMonths(n int) YearMonth {
	return NewYearMonth(ym.Year, ym.Month+time.Month(n))
}

// Before reports whether ym is strictly earlier than o.
func (ym YearMonth) Before(o YearMonth) bool {
	return ym.Year < o.Year || (ym.Year == o.Year && ym.Month < o.Month)
}

// MonthsInclusive returns the number of months from start to end, both included.
func MonthsInclusive(start, end YearMonth) int {
	return (end.Year-start.Year)*12 + int(end.Month-start.Month) + 1
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange builds a validated range; it fails with ErrInvalidRange when to precedes from.
func NewDateRange(from, to time.Time) (DateRange, error) {
	r := DateRange{From: DateOf(from), To: DateOf(to)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate checks the range ordering.
func (r DateRange) Validate() error {
	if DateOf(r.To).Before(DateOf(r.From)) {
		return fmt.Errorf("%w: %s is before %s", apperrors.ErrInvalidRange,
			r.To.Format(DateFormat), r.From.Format(DateFormat))
	}
	return nil
}

// Contains reports whether the day of t lies in the range, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(DateOf(r.From)) && !d.After(DateOf(r.To))
}
