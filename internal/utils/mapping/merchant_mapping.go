package mapping

import (
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/models"
)

// ToModelMerchant converts a domain Merchant to a model Merchant
func ToModelMerchant(d domain.Merchant) models.Merchant {
	return models.Merchant{
		MerchantID:  d.ID,
		Name:        d.Name,
		Kind:        string(d.Kind),
		Phone:       d.Phone,
		TotalDue:    d.TotalDue,
		TotalOwe:    d.TotalOwe,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMerchant converts a model Merchant to a domain Merchant
func ToDomainMerchant(m models.Merchant) domain.Merchant {
	return domain.Merchant{
		ID:          m.MerchantID,
		Name:        m.Name,
		Kind:        domain.CounterpartyKind(m.Kind),
		Phone:       m.Phone,
		TotalDue:    m.TotalDue,
		TotalOwe:    m.TotalOwe,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMerchantSlice converts a slice of model merchants to domain merchants
func ToDomainMerchantSlice(ms []models.Merchant) []domain.Merchant {
	ds := make([]domain.Merchant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMerchant(m)
	}
	return ds
}
