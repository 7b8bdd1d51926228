package mapping

import (
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/models"
)

// ToModelGhaatTransaction converts a domain GhaatTransaction to a model GhaatTransaction
func ToModelGhaatTransaction(d domain.GhaatTransaction) models.GhaatTransaction {
	return models.GhaatTransaction{
		GhaatID:            d.ID,
		GhaatType:          string(d.Type),
		Category:           d.Category,
		MerchantID:         toNullString(d.MerchantID),
		MerchantName:       d.MerchantName,
		Units:              int32(d.Units),
		GrossWeightPerUnit: d.GrossWeightPerUnit,
		Purity:             d.Purity,
		TotalGrossWeight:   d.TotalGrossWeight,
		FineGold:           d.FineGold,
		LaborType:          string(d.LaborType),
		LaborAmount:        toNullDecimal(d.LaborAmount),
		GoldGivenFine:      toNullDecimal(d.GoldGivenFine),
		CashPaid:           toNullDecimal(d.CashPaid),
		AmountReceived:     toNullDecimal(d.AmountReceived),
		GoldReturnedFine:   toNullDecimal(d.GoldReturnedFine),
		RatePerGram:        toNullDecimal(d.RatePerGram),
		Status:             string(d.Status),
		GroupID:            toNullString(d.GroupID),
		GroupSize:          int32(d.GroupSize),
		TransactionDate:    toNullTime(d.TransactionDate),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGhaatTransaction converts a model GhaatTransaction to a domain GhaatTransaction
func ToDomainGhaatTransaction(m models.GhaatTransaction) domain.GhaatTransaction {
	return domain.GhaatTransaction{
		ID:                 m.GhaatID,
		Type:               domain.GhaatType(m.GhaatType),
		Category:           m.Category,
		MerchantID:         fromNullString(m.MerchantID),
		MerchantName:       m.MerchantName,
		Units:              int(m.Units),
		GrossWeightPerUnit: m.GrossWeightPerUnit,
		Purity:             m.Purity,
		TotalGrossWeight:   m.TotalGrossWeight,
		FineGold:           m.FineGold,
		LaborType:          domain.LaborType(m.LaborType),
		LaborAmount:        fromNullDecimal(m.LaborAmount),
		GoldGivenFine:      fromNullDecimal(m.GoldGivenFine),
		CashPaid:           fromNullDecimal(m.CashPaid),
		AmountReceived:     fromNullDecimal(m.AmountReceived),
		GoldReturnedFine:   fromNullDecimal(m.GoldReturnedFine),
		RatePerGram:        fromNullDecimal(m.RatePerGram),
		Status:             domain.SaleStatus(m.Status),
		GroupID:            fromNullString(m.GroupID),
		GroupSize:          int(m.GroupSize),
		TransactionDate:    fromNullTime(m.TransactionDate),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGhaatTransactionSlice converts a slice of model rows to domain transactions
func ToDomainGhaatTransactionSlice(ms []models.GhaatTransaction) []domain.GhaatTransaction {
	ds := make([]domain.GhaatTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGhaatTransaction(m)
	}
	return ds
}
