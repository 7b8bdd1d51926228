package engine

import (
	"fmt"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateStock nets buys against sells for one category, per weight bracket.
// A transaction lands in the bracket containing its per-unit gross weight.
func CalculateStock(txns []domain.GhaatTransaction, category string, brackets domain.WeightBracketSet) domain.CategoryStock {
	defs := brackets.Brackets()
	units := make([]int, len(defs))
	fine := make([]decimal.Decimal, len(defs))
	for i := range fine {
		fine[i] = decimal.Zero
	}

	stock := domain.CategoryStock{Category: category, TotalFineGold: decimal.Zero, Brackets: []domain.BracketStock{}}
	for _, raw := range txns {
		if raw.Category != category {
			continue
		}
		g, w := normalizeGhaat(raw)
		stock.Warnings = append(stock.Warnings, w...)

		idx, ok := brackets.Locate(g.GrossWeightPerUnit)
		if !ok {
			stock.Warnings = append(stock.Warnings, domain.DataQualityWarning{
				RecordID: g.ID, Field: "grossWeightPerUnit",
				Message: fmt.Sprintf("weight %s matches no bracket; excluded from stock", g.GrossWeightPerUnit),
			})
			continue
		}
		switch g.Type {
		case domain.GhaatBuy:
			units[idx] += g.Units
			fine[idx] = fine[idx].Add(g.FineGold)
		case domain.GhaatSell:
			units[idx] -= g.Units
			fine[idx] = fine[idx].Sub(g.FineGold)
		}
	}

	for i, b := range defs {
		stock.TotalUnits += units[i]
		stock.TotalFineGold = stock.TotalFineGold.Add(fine[i])
		if units[i] == 0 && fine[i].IsZero() {
			continue
		}
		stock.Brackets = append(stock.Brackets, domain.BracketStock{Label: b.Label, Units: units[i], FineGold: fine[i]})
	}
	return stock
}

// CalculatePnL is the global fine-gold profit across every category.
func CalculatePnL(txns []domain.GhaatTransaction) domain.JewelleryPnL {
	pnl := domain.JewelleryPnL{
		TotalBuyFineGold:  decimal.Zero,
		TotalSellFineGold: decimal.Zero,
		GoldLaborPaid:     decimal.Zero,
	}
	for _, raw := range txns {
		g, w := normalizeGhaat(raw)
		pnl.Warnings = append(pnl.Warnings, w...)
		switch g.Type {
		case domain.GhaatBuy:
			pnl.TotalBuyFineGold = pnl.TotalBuyFineGold.Add(g.FineGold)
			if g.LaborType == domain.LaborGold {
				labor, lw := orZero(g.LaborAmount, g.ID, "laborAmount")
				pnl.Warnings = append(pnl.Warnings, lw...)
				pnl.GoldLaborPaid = pnl.GoldLaborPaid.Add(labor)
			}
		case domain.GhaatSell:
			pnl.TotalSellFineGold = pnl.TotalSellFineGold.Add(g.FineGold)
		}
	}
	pnl.NetGoldProfit = pnl.TotalSellFineGold.Sub(pnl.TotalBuyFineGold).Sub(pnl.GoldLaborPaid)
	return pnl
}

// CalculateMerchantJewelleryDues reports gold handed to a merchant but not yet settled, and
// the cash still owed on confirmed sales. Confirmed sales are valued at the rate recorded at
// settlement, net of any gold returned. The cash figure never goes below zero.
func CalculateMerchantJewelleryDues(txns []domain.GhaatTransaction, merchantID string) domain.MerchantJewelleryDues {
	dues := domain.MerchantJewelleryDues{MerchantID: merchantID, FineGoldPending: decimal.Zero, CashDue: decimal.Zero}
	value, received := decimal.Zero, decimal.Zero
	for _, raw := range txns {
		if raw.MerchantID != merchantID || raw.Type != domain.GhaatSell {
			continue
		}
		g, w := normalizeGhaat(raw)
		dues.Warnings = append(dues.Warnings, w...)

		switch g.Status {
		case domain.StatusPending:
			dues.FineGoldPending = dues.FineGoldPending.Add(g.FineGold)
		case domain.StatusConfirmed:
			rate, rw := orZero(g.RatePerGram, g.ID, "ratePerGram")
			cash, cw := orZero(g.AmountReceived, g.ID, "amountReceived")
			dues.Warnings = append(dues.Warnings, rw...)
			dues.Warnings = append(dues.Warnings, cw...)
			net := g.FineGold
			if g.GoldReturnedFine != nil {
				net = net.Sub(*g.GoldReturnedFine)
			}
			value = value.Add(net.Mul(rate))
			received = received.Add(cash)
		}
	}
	if shortfall := value.Sub(received); shortfall.IsPositive() {
		dues.CashDue = shortfall
	}
	return dues
}

// normalizeGhaat replaces a stored fine gold value that disagrees with gross × purity.
func normalizeGhaat(g domain.GhaatTransaction) (domain.GhaatTransaction, []domain.DataQualityWarning) {
	if g.FineGoldConsistent() {
		return g, nil
	}
	expected := g.ExpectedFineGold()
	w := domain.DataQualityWarning{
		RecordID: g.ID, Field: "fineGold",
		Message: fmt.Sprintf("stored fine gold %s replaced by %s", g.FineGold, expected),
	}
	g.FineGold = expected
	return g, []domain.DataQualityWarning{w}
}
