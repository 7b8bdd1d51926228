package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// RawGoldLedgerEntry is a row of the raw_gold_ledger table.
type RawGoldLedgerEntry struct {
	EntryID          string          `json:"entryID"`
	Direction        string          `json:"direction"`
	Source           string          `json:"source"`
	ReferenceID      sql.NullString  `json:"referenceID"`
	GrossWeight      decimal.Decimal `json:"grossWeight"`
	Purity           decimal.Decimal `json:"purity"`
	FineGold         decimal.Decimal `json:"fineGold"`
	CounterpartyName string          `json:"counterpartyName"`
	CounterpartyID   sql.NullString  `json:"counterpartyID"`
	Notes            string          `json:"notes"`
	TransactionDate  sql.NullTime    `json:"transactionDate"`
	AuditFields
}
