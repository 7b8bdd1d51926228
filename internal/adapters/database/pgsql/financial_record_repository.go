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

const financialRecordColumns = `record_id, kind, category, description, amount, record_date, payment_type,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxFinancialRecordRepository struct {
	BaseRepository
}

func newPgxFinancialRecordRepository(pool *pgxpool.Pool) portsrepo.FinancialRecordRepositoryWithTx {
	return &PgxFinancialRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FinancialRecordRepositoryWithTx = (*PgxFinancialRecordRepository)(nil)

func scanFinancialRecord(row pgx.Row) (models.FinancialRecord, error) {
	var m models.FinancialRecord
	err := row.Scan(
		&m.RecordID, &m.Kind, &m.Category, &m.Description, &m.Amount, &m.RecordDate, &m.PaymentType,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxFinancialRecordRepository) SaveFinancialRecord(ctx context.Context, record domain.FinancialRecord) error {
	m := mapping.ToModelFinancialRecord(record)
	query := `INSERT INTO financial_records (` + financialRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		m.RecordID, m.Kind, m.Category, m.Description, m.Amount, m.RecordDate, m.PaymentType,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapPgError(err, "failed to insert financial record "+m.RecordID)
}

func (r *PgxFinancialRecordRepository) UpdateFinancialRecord(ctx context.Context, record domain.FinancialRecord) error {
	m := mapping.ToModelFinancialRecord(record)
	query := `
		UPDATE financial_records
		SET category = $2, description = $3, amount = $4, record_date = $5, payment_type = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE record_id = $1;`
	tag, err := r.Pool.Exec(ctx, query,
		m.RecordID, m.Category, m.Description, m.Amount, m.RecordDate, m.PaymentType,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update financial record "+m.RecordID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFinancialRecordRepository) DeleteFinancialRecord(ctx context.Context, recordID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM financial_records WHERE record_id = $1;`, recordID)
	if err != nil {
		return mapPgError(err, "failed to delete financial record "+recordID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFinancialRecordRepository) FindFinancialRecordByID(ctx context.Context, recordID string) (*domain.FinancialRecord, error) {
	query := `SELECT ` + financialRecordColumns + ` FROM financial_records WHERE record_id = $1;`
	m, err := scanFinancialRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		return nil, mapPgError(err, "failed to find financial record "+recordID)
	}
	d := mapping.ToDomainFinancialRecord(m)
	return &d, nil
}

func (r *PgxFinancialRecordRepository) ListFinancialRecords(ctx context.Context, userID string, kind domain.RecordKind) ([]domain.FinancialRecord, error) {
	query := `SELECT ` + financialRecordColumns + `
		FROM financial_records
		WHERE created_by = $1 AND kind = $2
		ORDER BY record_date DESC, created_at DESC, record_id;`
	rows, err := r.Pool.Query(ctx, query, userID, string(kind))
	if err != nil {
		return nil, mapPgError(err, "failed to query financial records")
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FinancialRecord, error) {
		return scanFinancialRecord(row)
	})
	if err != nil {
		return nil, mapPgError(err, "failed to scan financial records")
	}
	return mapping.ToDomainFinancialRecordSlice(ms), nil
}
