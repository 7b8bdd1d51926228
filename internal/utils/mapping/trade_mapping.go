package mapping

import (
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/models"
)

// ToModelTrade converts a domain Trade to a model Trade
func ToModelTrade(d domain.Trade) models.Trade {
	return models.Trade{
		TradeID:             d.ID,
		TradeType:           string(d.Type),
		MerchantID:          d.MerchantID,
		MetalType:           d.MetalType,
		Weight:              d.Weight,
		Rate:                d.Rate,
		TotalAmount:         d.TotalAmount,
		AmountPaid:          toNullDecimal(d.AmountPaid),
		AmountReceived:      toNullDecimal(d.AmountReceived),
		SettlementDirection: toNullString(string(d.SettlementDirection)),
		TradeDate:           toNullTime(d.TradeDate),
		Notes:               d.Notes,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrade converts a model Trade to a domain Trade
func ToDomainTrade(m models.Trade) domain.Trade {
	return domain.Trade{
		ID:                  m.TradeID,
		Type:                domain.TradeType(m.TradeType),
		MerchantID:          m.MerchantID,
		MetalType:           m.MetalType,
		Weight:              m.Weight,
		Rate:                m.Rate,
		TotalAmount:         m.TotalAmount,
		AmountPaid:          fromNullDecimal(m.AmountPaid),
		AmountReceived:      fromNullDecimal(m.AmountReceived),
		SettlementDirection: domain.SettlementDirection(fromNullString(m.SettlementDirection)),
		TradeDate:           fromNullTime(m.TradeDate),
		Notes:               m.Notes,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTradeSlice converts a slice of model trades to domain trades
func ToDomainTradeSlice(ms []models.Trade) []domain.Trade {
	ds := make([]domain.Trade, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrade(m)
	}
	return ds
}
