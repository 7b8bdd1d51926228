package mapping

import (
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/models"
)

// ToModelRawGoldEntry converts a domain RawGoldLedgerEntry to a model RawGoldLedgerEntry
func ToModelRawGoldEntry(d domain.RawGoldLedgerEntry) models.RawGoldLedgerEntry {
	return models.RawGoldLedgerEntry{
		EntryID:          d.ID,
		Direction:        string(d.Type),
		Source:           string(d.Source),
		ReferenceID:      toNullString(d.ReferenceID),
		GrossWeight:      d.GrossWeight,
		Purity:           d.Purity,
		FineGold:         d.FineGold,
		CounterpartyName: d.CounterpartyName,
		CounterpartyID:   toNullString(d.CounterpartyID),
		Notes:            d.Notes,
		TransactionDate:  toNullTime(d.TransactionDate),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRawGoldEntry converts a model RawGoldLedgerEntry to a domain RawGoldLedgerEntry
func ToDomainRawGoldEntry(m models.RawGoldLedgerEntry) domain.RawGoldLedgerEntry {
	return domain.RawGoldLedgerEntry{
		ID:               m.EntryID,
		Type:             domain.LedgerDirection(m.Direction),
		Source:           domain.RawGoldSource(m.Source),
		ReferenceID:      fromNullString(m.ReferenceID),
		GrossWeight:      m.GrossWeight,
		Purity:           m.Purity,
		FineGold:         m.FineGold,
		CounterpartyName: m.CounterpartyName,
		CounterpartyID:   fromNullString(m.CounterpartyID),
		Notes:            m.Notes,
		TransactionDate:  fromNullTime(m.TransactionDate),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRawGoldEntrySlice converts a slice of model rows to domain entries
func ToDomainRawGoldEntrySlice(ms []models.RawGoldLedgerEntry) []domain.RawGoldLedgerEntry {
	ds := make([]domain.RawGoldLedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRawGoldEntry(m)
	}
	return ds
}
