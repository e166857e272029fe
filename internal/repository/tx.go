package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokengate/ticketing-service/internal/persistence"
)

// Querier is the subset of pgx surface repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same repository code runs
// inside and outside transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxManager runs a unit of work inside a single database transaction.
// Repositories called with the returned context share that transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txContextKey struct{}

type pgxTxManager struct {
	pg *persistence.Postgres
}

// NewTxManager returns a Postgres-backed TxManager.
func NewTxManager(pg *persistence.Postgres) TxManager {
	return &pgxTxManager{pg: pg}
}

func (m *pgxTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.pg.RunInTx(ctx, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// queryEngine resolves the active transaction from the context, falling back
// to the pool.
func queryEngine(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation on the named constraint. An empty constraint matches any.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
