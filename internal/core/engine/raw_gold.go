package engine

import (
	"fmt"
	"sort"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildRawGoldLedger replays raw gold movements. With a window, entries strictly before
// window.From form the opening balance and only in-window entries become rows. Rows are
// returned newest first, each keeping the balance computed in chronological order.
// Stats always cover the complete history.
func BuildRawGoldLedger(entries []domain.RawGoldLedgerEntry, window *domain.DateRange) (domain.RawGoldLedgerView, error) {
	if window != nil {
		if err := window.Validate(); err != nil {
			return domain.RawGoldLedgerView{}, err
		}
	}

	normalized := make([]domain.RawGoldLedgerEntry, 0, len(entries))
	var warnings []domain.DataQualityWarning
	for _, e := range entries {
		n, w := normalizeRawGoldEntry(e)
		normalized = append(normalized, n)
		warnings = append(warnings, w...)
	}
	sortRawGoldChronologically(normalized)

	opening := decimal.Zero
	inWindow := make([]domain.RawGoldLedgerEntry, 0, len(normalized))
	for _, e := range normalized {
		if window == nil {
			inWindow = append(inWindow, e)
			continue
		}
		d := domain.DateOf(e.TransactionDate)
		switch {
		case d.Before(domain.DateOf(window.From)):
			opening = opening.Add(e.SignedFineGold())
		case window.Contains(d):
			inWindow = append(inWindow, e)
		}
	}

	rows := make([]domain.RawGoldLedgerRow, len(inWindow))
	balance := opening
	for i, e := range inWindow {
		balance = balance.Add(e.SignedFineGold())
		// fill from the back: newest first
		rows[len(inWindow)-1-i] = domain.RawGoldLedgerRow{RawGoldLedgerEntry: e, RunningBalance: balance}
	}

	return domain.RawGoldLedgerView{
		OpeningBalance: opening,
		ClosingBalance: balance,
		Rows:           rows,
		Stats:          RawGoldStats(normalized),
		Warnings:       warnings,
	}, nil
}

// RawGoldStats totals the given entries regardless of any display window.
func RawGoldStats(entries []domain.RawGoldLedgerEntry) domain.RawGoldStats {
	stats := domain.RawGoldStats{TotalIn: decimal.Zero, TotalOut: decimal.Zero}
	for _, e := range entries {
		if e.Type == domain.LedgerOut {
			stats.TotalOut = stats.TotalOut.Add(e.FineGold)
		} else {
			stats.TotalIn = stats.TotalIn.Add(e.FineGold)
		}
	}
	stats.Balance = stats.TotalIn.Sub(stats.TotalOut)
	stats.Count = len(entries)
	return stats
}

// CheckRawGoldDeletable refuses direct deletion of derived entries.
func CheckRawGoldDeletable(e domain.RawGoldLedgerEntry) error {
	if e.IsDerived() {
		return fmt.Errorf("%w: raw gold entry %s was created by record %s; edit or delete that record instead",
			apperrors.ErrReferentialIntegrity, e.ID, e.ReferenceID)
	}
	return nil
}

func sortRawGoldChronologically(entries []domain.RawGoldLedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if da, db := domain.DateOf(a.TransactionDate), domain.DateOf(b.TransactionDate); !da.Equal(db) {
			return da.Before(db)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// normalizeRawGoldEntry trusts gross weight and purity over a stored fine gold value that
// disagrees with them. Entries recorded with only a fine gold figure are kept as is.
func normalizeRawGoldEntry(e domain.RawGoldLedgerEntry) (domain.RawGoldLedgerEntry, []domain.DataQualityWarning) {
	if e.GrossWeight.IsZero() && e.Purity.IsZero() {
		return e, nil
	}
	expected := domain.ComputeFineGold(e.GrossWeight, e.Purity)
	if e.FineGold.Sub(expected).Abs().LessThan(domain.FineGoldEpsilon) {
		return e, nil
	}
	w := domain.DataQualityWarning{
		RecordID: e.ID, Field: "fineGold",
		Message: fmt.Sprintf("stored fine gold %s replaced by %s", e.FineGold, expected),
	}
	e.FineGold = expected
	return e, []domain.DataQualityWarning{w}
}
