package engine_test

import (
	"testing"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goldEntry(id string, typ domain.LedgerDirection, fine, date string) domain.RawGoldLedgerEntry {
	return domain.RawGoldLedgerEntry{
		ID: id, Type: typ, Source: domain.SourceManualAdjustment,
		GrossWeight: dec(fine), Purity: dec("100"), FineGold: dec(fine),
		TransactionDate: day(date),
	}
}

func TestBuildRawGoldLedger_WindowOpeningBalance(t *testing.T) {
	entries := []domain.RawGoldLedgerEntry{
		goldEntry("out", domain.LedgerOut, "4", "2024-01-03"),
		goldEntry("in", domain.LedgerIn, "10", "2024-01-01"),
	}
	window, err := domain.NewDateRange(day("2024-01-02"), day("2024-01-04"))
	require.NoError(t, err)

	view, err := engine.BuildRawGoldLedger(entries, &window)
	require.NoError(t, err)
	assert.True(t, dec("10").Equal(view.OpeningBalance))
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "out", view.Rows[0].ID)
	assert.True(t, dec("6").Equal(view.Rows[0].RunningBalance))

	// stats ignore the window
	assert.True(t, dec("10").Equal(view.Stats.TotalIn))
	assert.True(t, dec("4").Equal(view.Stats.TotalOut))
	assert.True(t, dec("6").Equal(view.Stats.Balance))
	assert.Equal(t, 2, view.Stats.Count)
}

func TestBuildRawGoldLedger_NewestFirstWithChronologicalBalances(t *testing.T) {
	e1 := goldEntry("a", domain.LedgerIn, "10", "2024-01-01")
	e2 := goldEntry("b", domain.LedgerIn, "5", "2024-01-02")
	e3 := goldEntry("c", domain.LedgerOut, "3", "2024-01-02")
	e2.CreatedAt = day("2024-01-02")
	e3.CreatedAt = day("2024-01-03") // same date, created later

	view, err := engine.BuildRawGoldLedger([]domain.RawGoldLedgerEntry{e3, e1, e2}, nil)
	require.NoError(t, err)
	require.Len(t, view.Rows, 3)

	ids := []string{view.Rows[0].ID, view.Rows[1].ID, view.Rows[2].ID}
	assert.Equal(t, []string{"c", "b", "a"}, ids)
	assert.True(t, dec("12").Equal(view.Rows[0].RunningBalance))
	assert.True(t, dec("15").Equal(view.Rows[1].RunningBalance))
	assert.True(t, dec("10").Equal(view.Rows[2].RunningBalance))
	assert.True(t, dec("12").Equal(view.ClosingBalance))
	assert.True(t, view.OpeningBalance.IsZero())
}

func TestBuildRawGoldLedger_InvalidWindow(t *testing.T) {
	_, err := engine.BuildRawGoldLedger(nil, &domain.DateRange{From: day("2024-02-01"), To: day("2024-01-01")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestBuildRawGoldLedger_RecomputesInconsistentFineGold(t *testing.T) {
	e := domain.RawGoldLedgerEntry{ID: "x", Type: domain.LedgerIn, GrossWeight: dec("10"), Purity: dec("91.6"),
		FineGold: dec("9"), TransactionDate: day("2024-01-01")}
	view, err := engine.BuildRawGoldLedger([]domain.RawGoldLedgerEntry{e}, nil)
	require.NoError(t, err)
	require.Len(t, view.Warnings, 1)
	assert.True(t, dec("9.16").Equal(view.Rows[0].RunningBalance))
}

func TestCheckRawGoldDeletable(t *testing.T) {
	manual := goldEntry("m", domain.LedgerIn, "1", "2024-01-01")
	assert.NoError(t, engine.CheckRawGoldDeletable(manual))

	derived := manual
	derived.Source = domain.SourceMerchantReturn
	derived.ReferenceID = "trade-1"
	err := engine.CheckRawGoldDeletable(derived)
	assert.ErrorIs(t, err, apperrors.ErrReferentialIntegrity)
	assert.Contains(t, err.Error(), "trade-1")
}
