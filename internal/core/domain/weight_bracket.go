package domain

import (
	"fmt"
	"sort"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// WeightBracket is a half-open range [Min, Max) of per-unit gross weight. A nil Max is unbounded.
type WeightBracket struct {
	Label string           `json:"label" mapstructure:"label"`
	Min   decimal.Decimal  `json:"min" mapstructure:"min"`
	Max   *decimal.Decimal `json:"max,omitempty" mapstructure:"max"`
}

// Contains reports whether w falls in [Min, Max).
func (b WeightBracket) Contains(w decimal.Decimal) bool {
	if w.LessThan(b.Min) {
		return false
	}
	return b.Max == nil || w.LessThan(*b.Max)
}

// WeightBracketSet is a validated partition of [0, ∞).
type WeightBracketSet struct {
	brackets []WeightBracket
}

// NewWeightBracketSet validates that brackets are ordered, contiguous from zero,
// non-overlapping and end with an open bracket.
func NewWeightBracketSet(brackets []WeightBracket) (WeightBracketSet, error) {
	if len(brackets) == 0 {
		return WeightBracketSet{}, fmt.Errorf("%w: at least one weight bracket is required", apperrors.ErrValidation)
	}
	if !brackets[0].Min.IsZero() {
		return WeightBracketSet{}, fmt.Errorf("%w: first weight bracket must start at 0, got %s",
			apperrors.ErrValidation, brackets[0].Min)
	}
	seen := make(map[string]struct{}, len(brackets))
	for i, b := range brackets {
		if b.Label == "" {
			return WeightBracketSet{}, fmt.Errorf("%w: weight bracket %d has no label", apperrors.ErrValidation, i)
		}
		if _, dup := seen[b.Label]; dup {
			return WeightBracketSet{}, fmt.Errorf("%w: duplicate weight bracket label %q", apperrors.ErrValidation, b.Label)
		}
		seen[b.Label] = struct{}{}

		last := i == len(brackets)-1
		if b.Max == nil {
			if !last {
				return WeightBracketSet{}, fmt.Errorf("%w: only the last weight bracket may be unbounded (%q)",
					apperrors.ErrValidation, b.Label)
			}
			continue
		}
		if last {
			return WeightBracketSet{}, fmt.Errorf("%w: last weight bracket %q must be unbounded",
				apperrors.ErrValidation, b.Label)
		}
		if !b.Max.GreaterThan(b.Min) {
			return WeightBracketSet{}, fmt.Errorf("%w: weight bracket %q has max %s <= min %s",
				apperrors.ErrValidation, b.Label, b.Max, b.Min)
		}
		if next := brackets[i+1]; !next.Min.Equal(*b.Max) {
			return WeightBracketSet{}, fmt.Errorf("%w: weight brackets %q and %q are not contiguous",
				apperrors.ErrValidation, b.Label, next.Label)
		}
	}
	out := make([]WeightBracket, len(brackets))
	copy(out, brackets)
	return WeightBracketSet{brackets: out}, nil
}

// MustWeightBracketSet panics when brackets are invalid. Intended for static defaults and tests.
func MustWeightBracketSet(brackets []WeightBracket) WeightBracketSet {
	s, err := NewWeightBracketSet(brackets)
	if err != nil {
		panic(err)
	}
	return s
}

// Brackets returns a copy of the ordered brackets.
func (s WeightBracketSet) Brackets() []WeightBracket {
	out := make([]WeightBracket, len(s.brackets))
	copy(out, s.brackets)
	return out
}

// Len is the number of brackets.
func (s WeightBracketSet) Len() int { return len(s.brackets) }

// Locate returns the index of the bracket containing w. Negative weights are never located.
func (s WeightBracketSet) Locate(w decimal.Decimal) (int, bool) {
	if len(s.brackets) == 0 || w.IsNegative() {
		return 0, false
	}
	// first bracket whose Min is greater than w, minus one
	i := sort.Search(len(s.brackets), func(i int) bool { return s.brackets[i].Min.GreaterThan(w) }) - 1
	if i < 0 || !s.brackets[i].Contains(w) {
		return 0, false
	}
	return i, true
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultWeightBrackets is the stock partition [0,2) [2,5) [5,10) [10,∞).
func DefaultWeightBrackets() []WeightBracket {
	return []WeightBracket{
		{Label: "0-2 gm", Min: decimal.Zero, Max: bound(2)},
		{Label: "2-5 gm", Min: decimal.NewFromInt(2), Max: bound(5)},
		{Label: "5-10 gm", Min: decimal.NewFromInt(5), Max: bound(10)},
		{Label: "10+ gm", Min: decimal.NewFromInt(10)},
	}
}
