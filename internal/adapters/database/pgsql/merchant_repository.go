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

const merchantColumns = `merchant_id, name, kind, phone, total_due, total_owe,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxMerchantRepository struct {
	BaseRepository
}

func newPgxMerchantRepository(pool *pgxpool.Pool) portsrepo.MerchantRepositoryWithTx {
	return &PgxMerchantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MerchantRepositoryWithTx = (*PgxMerchantRepository)(nil)

func scanMerchant(row pgx.Row) (models.Merchant, error) {
	var m models.Merchant
	err := row.Scan(
		&m.MerchantID, &m.Name, &m.Kind, &m.Phone, &m.TotalDue, &m.TotalOwe,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxMerchantRepository) SaveMerchant(ctx context.Context, merchant domain.Merchant) error {
	m := mapping.ToModelMerchant(merchant)
	query := `INSERT INTO merchants (` + merchantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := r.Pool.Exec(ctx, query,
		m.MerchantID, m.Name, m.Kind, m.Phone, m.TotalDue, m.TotalOwe,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapPgError(err, "failed to insert merchant "+m.MerchantID)
}

func (r *PgxMerchantRepository) FindMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE merchant_id = $1;`
	m, err := scanMerchant(r.Pool.QueryRow(ctx, query, merchantID))
	if err != nil {
		return nil, mapPgError(err, "failed to find merchant "+merchantID)
	}
	d := mapping.ToDomainMerchant(m)
	return &d, nil
}

func (r *PgxMerchantRepository) ListMerchants(ctx context.Context, userID string) ([]domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE created_by = $1 ORDER BY name, merchant_id;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapPgError(err, "failed to query merchants")
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Merchant, error) {
		return scanMerchant(row)
	})
	if err != nil {
		return nil, mapPgError(err, "failed to scan merchants")
	}
	return mapping.ToDomainMerchantSlice(ms), nil
}

// DeleteMerchant checks for dependents inside the deleting transaction so a concurrent
// insert cannot slip in between; the foreign keys back this up.
func (r *PgxMerchantRepository) DeleteMerchant(ctx context.Context, merchantID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var locked string
	err = tx.QueryRow(ctx, `SELECT merchant_id FROM merchants WHERE merchant_id = $1 FOR UPDATE;`, merchantID).Scan(&locked)
	if err != nil {
		return mapPgError(err, "failed to lock merchant "+merchantID)
	}

	var trades, ghaat int
	err = tx.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM trades WHERE merchant_id = $1),
			(SELECT COUNT(*) FROM ghaat_transactions WHERE merchant_id = $1);`, merchantID).Scan(&trades, &ghaat)
	if err != nil {
		return mapPgError(err, "failed to count merchant dependents")
	}
	if trades > 0 || ghaat > 0 {
		return fmt.Errorf("%w: merchant %s still has %d trades and %d jewellery transactions",
			apperrors.ErrReferentialIntegrity, merchantID, trades, ghaat)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM merchants WHERE merchant_id = $1;`, merchantID); err != nil {
		return mapPgError(err, "failed to delete merchant "+merchantID)
	}
	return r.Commit(ctx, tx)
}
