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

const rawGoldColumns = `entry_id, direction, source, reference_id, gross_weight, purity, fine_gold,
	counterparty_name, counterparty_id, notes, transaction_date,
	created_at, created_by, last_updated_at, last_updated_by`

const insertRawGoldQuery = `INSERT INTO raw_gold_ledger (` + rawGoldColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`

type PgxRawGoldRepository struct {
	BaseRepository
}

func newPgxRawGoldRepository(pool *pgxpool.Pool) portsrepo.RawGoldRepositoryWithTx {
	return &PgxRawGoldRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RawGoldRepositoryWithTx = (*PgxRawGoldRepository)(nil)

func rawGoldArgs(e domain.RawGoldLedgerEntry) []any {
	m := mapping.ToModelRawGoldEntry(e)
	return []any{
		m.EntryID, m.Direction, m.Source, m.ReferenceID, m.GrossWeight, m.Purity, m.FineGold,
		m.CounterpartyName, m.CounterpartyID, m.Notes, m.TransactionDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

// insertRawGoldEntry is shared by the repositories whose records derive ledger entries.
func insertRawGoldEntry(ctx context.Context, q execer, e domain.RawGoldLedgerEntry) error {
	_, err := q.Exec(ctx, insertRawGoldQuery, rawGoldArgs(e)...)
	return mapPgError(err, "failed to insert raw gold entry "+e.ID)
}

// deleteDerivedRawGold removes every ledger entry produced by the given source records.
func deleteDerivedRawGold(ctx context.Context, q execer, referenceIDs []string) error {
	_, err := q.Exec(ctx, `DELETE FROM raw_gold_ledger WHERE reference_id = ANY($1);`, referenceIDs)
	return mapPgError(err, "failed to delete derived raw gold entries")
}

func scanRawGold(row pgx.Row) (models.RawGoldLedgerEntry, error) {
	var m models.RawGoldLedgerEntry
	err := row.Scan(
		&m.EntryID, &m.Direction, &m.Source, &m.ReferenceID, &m.GrossWeight, &m.Purity, &m.FineGold,
		&m.CounterpartyName, &m.CounterpartyID, &m.Notes, &m.TransactionDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxRawGoldRepository) SaveRawGoldEntry(ctx context.Context, entry domain.RawGoldLedgerEntry) error {
	return insertRawGoldEntry(ctx, r.Pool, entry)
}

// DeleteRawGoldEntry only removes manual entries. Derived entries are owned by their source record.
func (r *PgxRawGoldRepository) DeleteRawGoldEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM raw_gold_ledger WHERE entry_id = $1 AND reference_id IS NULL;`, entryID)
	if err != nil {
		return mapPgError(err, "failed to delete raw gold entry "+entryID)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	existing, err := r.FindRawGoldEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: raw gold entry %s belongs to record %s",
		apperrors.ErrReferentialIntegrity, entryID, existing.ReferenceID)
}

func (r *PgxRawGoldRepository) FindRawGoldEntryByID(ctx context.Context, entryID string) (*domain.RawGoldLedgerEntry, error) {
	query := `SELECT ` + rawGoldColumns + ` FROM raw_gold_ledger WHERE entry_id = $1;`
	m, err := scanRawGold(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, mapPgError(err, "failed to find raw gold entry "+entryID)
	}
	d := mapping.ToDomainRawGoldEntry(m)
	return &d, nil
}

func (r *PgxRawGoldRepository) ListRawGoldEntries(ctx context.Context, userID string) ([]domain.RawGoldLedgerEntry, error) {
	query := `SELECT ` + rawGoldColumns + `
		FROM raw_gold_ledger
		WHERE created_by = $1
		ORDER BY transaction_date, created_at, entry_id;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapPgError(err, "failed to query raw gold ledger")
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RawGoldLedgerEntry, error) {
		return scanRawGold(row)
	})
	if err != nil {
		return nil, mapPgError(err, "failed to scan raw gold ledger")
	}
	return mapping.ToDomainRawGoldEntrySlice(ms), nil
}
