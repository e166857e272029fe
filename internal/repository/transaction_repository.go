package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokengate/ticketing-service/internal/domain"
)

// TransactionRepository stores the append-only mint/transfer audit trail.
type TransactionRepository interface {
	Create(ctx context.Context, txn *domain.Transaction) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.Transaction, error)
}

type transactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository builds repository.
func NewTransactionRepository(pool *pgxpool.Pool) TransactionRepository {
	return &transactionRepository{pool: pool}
}

func (r *transactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	const query = `
        INSERT INTO transactions (ticket_id, type, from_wallet, to_wallet, tx_hash)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return queryEngine(ctx, r.pool).QueryRow(ctx, query,
		txn.TicketID,
		txn.Type,
		txn.FromWallet,
		txn.ToWallet,
		txn.TxHash,
	).Scan(&txn.ID, &txn.CreatedAt)
}

func (r *transactionRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.Transaction, error) {
	const query = `
        SELECT id, ticket_id, type, from_wallet, to_wallet, tx_hash, created_at
        FROM transactions WHERE ticket_id=$1 ORDER BY created_at ASC`
	rows, err := queryEngine(ctx, r.pool).Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(
			&txn.ID,
			&txn.TicketID,
			&txn.Type,
			&txn.FromWallet,
			&txn.ToWallet,
			&txn.TxHash,
			&txn.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, txn)
	}
	return result, rows.Err()
}
