package engine

import (
	"sort"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReplayPartyLedger replays a merchant's trades in chronological order against the merchant's
// opening balance. Every row carries the due/advance pair right after that trade. Balances are
// never clamped; negative values are legitimate.
func ReplayPartyLedger(merchant domain.Merchant, trades []domain.Trade) domain.PartyLedger {
	selected := make([]domain.Trade, 0)
	for _, t := range trades {
		if t.MerchantID == merchant.ID {
			selected = append(selected, t)
		}
	}
	sortTradesChronologically(selected)

	ledger := domain.PartyLedger{
		MerchantID: merchant.ID,
		OpeningDue: merchant.TotalDue,
		OpeningOwe: merchant.TotalOwe,
		Rows:       make([]domain.PartyLedgerRow, 0, len(selected)),
	}
	due, owe := merchant.TotalDue, merchant.TotalOwe
	for _, t := range selected {
		var w []domain.DataQualityWarning
		due, owe, w = applyTrade(due, owe, t)
		ledger.Warnings = append(ledger.Warnings, w...)
		ledger.Rows = append(ledger.Rows, domain.PartyLedgerRow{Trade: t, RunningDues: due, RunningAdvances: owe})
	}
	ledger.ClosingDue, ledger.ClosingOwe = due, owe
	return ledger
}

// sortTradesChronologically orders by effective date, then createdAt, then id so that the
// replay depends only on the set of trades and not on how they were listed.
func sortTradesChronologically(trades []domain.Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		a, b := trades[i], trades[j]
		if da, db := a.EffectiveDate(), b.EffectiveDate(); !da.Equal(db) {
			return da.Before(db)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

func applyTrade(due, owe decimal.Decimal, t domain.Trade) (decimal.Decimal, decimal.Decimal, []domain.DataQualityWarning) {
	var warnings []domain.DataQualityWarning
	switch t.Type {
	case domain.TradeBuy:
		paid, w := orZero(t.AmountPaid, t.ID, "amountPaid")
		warnings = append(warnings, w...)
		due = due.Add(t.TotalAmount.Sub(paid))
	case domain.TradeSell:
		received, w := orZero(t.AmountReceived, t.ID, "amountReceived")
		warnings = append(warnings, w...)
		due = due.Add(t.TotalAmount.Sub(received))
	case domain.TradeSettlement:
		switch t.SettlementDirection {
		case domain.SettlementReceiving:
			due = due.Sub(t.TotalAmount)
		case domain.SettlementPaying:
			owe = owe.Sub(t.TotalAmount)
		default:
			warnings = append(warnings, domain.DataQualityWarning{
				RecordID: t.ID, Field: "settlementDirection",
				Message: "settlement without direction ignored",
			})
		}
	case domain.TradeTransfer:
		// history only
	default:
		warnings = append(warnings, domain.DataQualityWarning{
			RecordID: t.ID, Field: "type", Message: "unknown trade type ignored",
		})
	}
	return due, owe, warnings
}

// FilterPartyLedgerRows restricts already computed rows to a display window. The running
// values are left untouched, so the first visible row still reflects everything before it.
func FilterPartyLedgerRows(rows []domain.PartyLedgerRow, window domain.DateRange) []domain.PartyLedgerRow {
	out := make([]domain.PartyLedgerRow, 0, len(rows))
	for _, r := range rows {
		if window.Contains(r.EffectiveDate()) {
			out = append(out, r)
		}
	}
	return out
}

// orZero dereferences an optional amount, warning when it is absent.
func orZero(v *decimal.Decimal, recordID, field string) (decimal.Decimal, []domain.DataQualityWarning) {
	if v == nil {
		return decimal.Zero, []domain.DataQualityWarning{{
			RecordID: recordID, Field: field, Message: "missing value treated as 0",
		}}
	}
	return *v, nil
}
