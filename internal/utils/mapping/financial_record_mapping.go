package mapping

import (
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/models"
)

// ToModelFinancialRecord converts a domain FinancialRecord to a model FinancialRecord
func ToModelFinancialRecord(d domain.FinancialRecord) models.FinancialRecord {
	return models.FinancialRecord{
		RecordID:    d.ID,
		Kind:        string(d.Kind),
		Category:    d.Category,
		Description: d.Description,
		Amount:      d.Amount,
		RecordDate:  d.Date,
		PaymentType: d.PaymentType,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFinancialRecord converts a model FinancialRecord to a domain FinancialRecord
func ToDomainFinancialRecord(m models.FinancialRecord) domain.FinancialRecord {
	return domain.FinancialRecord{
		ID:          m.RecordID,
		Kind:        domain.RecordKind(m.Kind),
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.RecordDate,
		PaymentType: m.PaymentType,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFinancialRecordSlice converts a slice of model records to domain records
func ToDomainFinancialRecordSlice(ms []models.FinancialRecord) []domain.FinancialRecord {
	ds := make([]domain.FinancialRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialRecord(m)
	}
	return ds
}
