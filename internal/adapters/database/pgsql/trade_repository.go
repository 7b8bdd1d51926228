package pgsql

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bullion_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bullion_ledger/internal/models"
	"github.com/SscSPs/bullion_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tradeColumns = `trade_id, trade_type, merchant_id, metal_type, weight, rate, total_amount,
	amount_paid, amount_received, settlement_direction, trade_date, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTradeRepository struct {
	BaseRepository
}

func newPgxTradeRepository(pool *pgxpool.Pool) portsrepo.TradeRepositoryWithTx {
	return &PgxTradeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TradeRepositoryWithTx = (*PgxTradeRepository)(nil)

func scanTrade(row pgx.Row) (models.Trade, error) {
	var m models.Trade
	err := row.Scan(
		&m.TradeID, &m.TradeType, &m.MerchantID, &m.MetalType, &m.Weight, &m.Rate, &m.TotalAmount,
		&m.AmountPaid, &m.AmountReceived, &m.SettlementDirection, &m.TradeDate, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveTrade inserts the trade and, when present, its derived raw gold entry atomically.
func (r *PgxTradeRepository) SaveTrade(ctx context.Context, trade domain.Trade, derived *domain.RawGoldLedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTrade(trade)
	query := `INSERT INTO trades (` + tradeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`
	_, err = tx.Exec(ctx, query,
		m.TradeID, m.TradeType, m.MerchantID, m.MetalType, m.Weight, m.Rate, m.TotalAmount,
		m.AmountPaid, m.AmountReceived, m.SettlementDirection, m.TradeDate, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to insert trade "+m.TradeID)
	}
	if derived != nil {
		if err := insertRawGoldEntry(ctx, tx, *derived); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

// UpdateTrade rewrites the trade and replaces its derived raw gold entries.
func (r *PgxTradeRepository) UpdateTrade(ctx context.Context, trade domain.Trade, derived *domain.RawGoldLedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTrade(trade)
	query := `
		UPDATE trades
		SET trade_type = $2, metal_type = $3, weight = $4, rate = $5, total_amount = $6,
		    amount_paid = $7, amount_received = $8, settlement_direction = $9, trade_date = $10,
		    notes = $11, last_updated_at = $12, last_updated_by = $13
		WHERE trade_id = $1;`
	tag, err := tx.Exec(ctx, query,
		m.TradeID, m.TradeType, m.MetalType, m.Weight, m.Rate, m.TotalAmount,
		m.AmountPaid, m.AmountReceived, m.SettlementDirection, m.TradeDate,
		m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update trade "+m.TradeID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := deleteDerivedRawGold(ctx, tx, []string{m.TradeID}); err != nil {
		return err
	}
	if derived != nil {
		if err := insertRawGoldEntry(ctx, tx, *derived); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

// DeleteTrade removes the trade and cascades to its derived raw gold entries.
func (r *PgxTradeRepository) DeleteTrade(ctx context.Context, tradeID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := deleteTradeCascade(ctx, tx, tradeID); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// deleteTradeCascade removes the trade's derived raw gold before the trade row itself.
func deleteTradeCascade(ctx context.Context, q execer, tradeID string) error {
	if err := deleteDerivedRawGold(ctx, q, []string{tradeID}); err != nil {
		return err
	}
	tag, err := q.Exec(ctx, `DELETE FROM trades WHERE trade_id = $1;`, tradeID)
	if err != nil {
		return mapPgError(err, "failed to delete trade "+tradeID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTradeRepository) FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE trade_id = $1;`
	m, err := scanTrade(r.Pool.QueryRow(ctx, query, tradeID))
	if err != nil {
		return nil, mapPgError(err, "failed to find trade "+tradeID)
	}
	d := mapping.ToDomainTrade(m)
	return &d, nil
}

func (r *PgxTradeRepository) ListTradesByMerchant(ctx context.Context, userID, merchantID string) ([]domain.Trade, error) {
	query := `SELECT ` + tradeColumns + `
		FROM trades
		WHERE created_by = $1 AND merchant_id = $2;`
	rows, err := r.Pool.Query(ctx, query, userID, merchantID)
	if err != nil {
		return nil, mapPgError(err, "failed to query trades for merchant "+merchantID)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Trade, error) {
		return scanTrade(row)
	})
	if err != nil {
		return nil, mapPgError(err, "failed to scan trades")
	}
	return mapping.ToDomainTradeSlice(ms), nil
}
