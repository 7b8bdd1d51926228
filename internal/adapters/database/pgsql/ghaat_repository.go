package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bullion_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bullion_ledger/internal/models"
	"github.com/SscSPs/bullion_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ghaatColumns = `ghaat_id, ghaat_type, category, merchant_id, merchant_name, units,
	gross_weight_per_unit, purity, total_gross_weight, fine_gold, labor_type, labor_amount,
	gold_given_fine, cash_paid, amount_received, gold_returned_fine, rate_per_gram,
	status, group_id, group_size, transaction_date,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxGhaatRepository struct {
	BaseRepository
}

func newPgxGhaatRepository(pool *pgxpool.Pool) portsrepo.GhaatRepositoryWithTx {
	return &PgxGhaatRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GhaatRepositoryWithTx = (*PgxGhaatRepository)(nil)

func scanGhaat(row pgx.Row) (models.GhaatTransaction, error) {
	var m models.GhaatTransaction
	err := row.Scan(
		&m.GhaatID, &m.GhaatType, &m.Category, &m.MerchantID, &m.MerchantName, &m.Units,
		&m.GrossWeightPerUnit, &m.Purity, &m.TotalGrossWeight, &m.FineGold, &m.LaborType, &m.LaborAmount,
		&m.GoldGivenFine, &m.CashPaid, &m.AmountReceived, &m.GoldReturnedFine, &m.RatePerGram,
		&m.Status, &m.GroupID, &m.GroupSize, &m.TransactionDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveGhaatTransactions inserts all rows and their derived ledger entries in one batch.
// A pending sale group is therefore either fully stored or not at all.
func (r *PgxGhaatRepository) SaveGhaatTransactions(ctx context.Context, txns []domain.GhaatTransaction, derived []domain.RawGoldLedgerEntry) error {
	if len(txns) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `INSERT INTO ghaat_transactions (` + ghaatColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		        $18, $19, $20, $21, $22, $23, $24, $25);`
	batch := &pgx.Batch{}
	for _, g := range txns {
		m := mapping.ToModelGhaatTransaction(g)
		batch.Queue(query,
			m.GhaatID, m.GhaatType, m.Category, m.MerchantID, m.MerchantName, m.Units,
			m.GrossWeightPerUnit, m.Purity, m.TotalGrossWeight, m.FineGold, m.LaborType, m.LaborAmount,
			m.GoldGivenFine, m.CashPaid, m.AmountReceived, m.GoldReturnedFine, m.RatePerGram,
			m.Status, m.GroupID, m.GroupSize, m.TransactionDate,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	for _, e := range derived {
		batch.Queue(insertRawGoldQuery, rawGoldArgs(e)...)
	}
	// Close reports the first failing statement of the batch.
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapPgError(err, "failed to insert jewellery transactions")
	}
	return r.Commit(ctx, tx)
}

// ConfirmPendingGroup locks the group, re-checks that every member is still pending and
// applies the confirmation. Two concurrent confirmations cannot both succeed.
func (r *PgxGhaatRepository) ConfirmPendingGroup(ctx context.Context, confirmation domain.GroupConfirmation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, `SELECT ghaat_id, status FROM ghaat_transactions WHERE group_id = $1 FOR UPDATE;`,
		confirmation.GroupID)
	if err != nil {
		return mapPgError(err, "failed to lock pending group "+confirmation.GroupID)
	}
	current := make(map[string]string)
	for rows.Next() {
		var id, status string
		if err := rows.Scan(&id, &status); err != nil {
			rows.Close()
			return mapPgError(err, "failed to scan pending group "+confirmation.GroupID)
		}
		current[id] = status
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return mapPgError(err, "failed to read pending group "+confirmation.GroupID)
	}

	if len(current) != len(confirmation.Items) {
		return fmt.Errorf("%w: group %s changed since it was read", apperrors.ErrInvalidState, confirmation.GroupID)
	}
	for _, item := range confirmation.Items {
		if current[item.ID] != string(domain.StatusPending) {
			return fmt.Errorf("%w: item %s of group %s is no longer pending",
				apperrors.ErrInvalidState, item.ID, confirmation.GroupID)
		}
	}

	query := `
		UPDATE ghaat_transactions
		SET status = $2, rate_per_gram = $3, amount_received = $4, gold_returned_fine = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE ghaat_id = $1;`
	batch := &pgx.Batch{}
	for _, item := range confirmation.Items {
		m := mapping.ToModelGhaatTransaction(item)
		batch.Queue(query, m.GhaatID, m.Status, m.RatePerGram, m.AmountReceived, m.GoldReturnedFine,
			m.LastUpdatedAt, m.LastUpdatedBy)
	}
	if confirmation.LedgerEffect != nil {
		batch.Queue(insertRawGoldQuery, rawGoldArgs(*confirmation.LedgerEffect)...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapPgError(err, "failed to confirm pending group "+confirmation.GroupID)
	}
	return r.Commit(ctx, tx)
}

// DeleteGhaatTransactions removes the rows and cascades to their derived ledger entries.
func (r *PgxGhaatRepository) DeleteGhaatTransactions(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := deleteGhaatCascade(ctx, tx, ids); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func deleteGhaatCascade(ctx context.Context, q execer, ids []string) error {
	if err := deleteDerivedRawGold(ctx, q, ids); err != nil {
		return err
	}
	tag, err := q.Exec(ctx, `DELETE FROM ghaat_transactions WHERE ghaat_id = ANY($1);`, ids)
	if err != nil {
		return mapPgError(err, "failed to delete jewellery transactions")
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return fmt.Errorf("%w: %d of %d jewellery transactions found", apperrors.ErrNotFound, tag.RowsAffected(), len(ids))
	}
	return nil
}

func (r *PgxGhaatRepository) FindGhaatTransactionByID(ctx context.Context, id string) (*domain.GhaatTransaction, error) {
	query := `SELECT ` + ghaatColumns + ` FROM ghaat_transactions WHERE ghaat_id = $1;`
	m, err := scanGhaat(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapPgError(err, "failed to find jewellery transaction "+id)
	}
	d := mapping.ToDomainGhaatTransaction(m)
	return &d, nil
}

func (r *PgxGhaatRepository) ListGhaatTransactions(ctx context.Context, userID string) ([]domain.GhaatTransaction, error) {
	query := `SELECT ` + ghaatColumns + `
		FROM ghaat_transactions
		WHERE created_by = $1
		ORDER BY transaction_date, created_at, ghaat_id;`
	return r.list(ctx, query, userID)
}

func (r *PgxGhaatRepository) ListGhaatTransactionsByGroup(ctx context.Context, userID, groupID string) ([]domain.GhaatTransaction, error) {
	query := `SELECT ` + ghaatColumns + `
		FROM ghaat_transactions
		WHERE created_by = $1 AND group_id = $2
		ORDER BY created_at, ghaat_id;`
	return r.list(ctx, query, userID, groupID)
}

func (r *PgxGhaatRepository) list(ctx context.Context, query string, args ...any) ([]domain.GhaatTransaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to query jewellery transactions")
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GhaatTransaction, error) {
		return scanGhaat(row)
	})
	if err != nil {
		return nil, mapPgError(err, "failed to scan jewellery transactions")
	}
	return mapping.ToDomainGhaatTransactionSlice(ms), nil
}
