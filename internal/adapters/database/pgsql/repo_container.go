package pgsql

import (
	portsrepo "github.com/SscSPs/bullion_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FinancialRecordRepo: newPgxFinancialRecordRepository(dbPool),
		MerchantRepo:        newPgxMerchantRepository(dbPool),
		TradeRepo:           newPgxTradeRepository(dbPool),
		GhaatRepo:           newPgxGhaatRepository(dbPool),
		RawGoldRepo:         newPgxRawGoldRepository(dbPool),
	}
}
