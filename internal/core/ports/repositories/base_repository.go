package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is embedded by every ledger store whose writes span tables, such as
// a trade and the raw gold entry it derives.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
