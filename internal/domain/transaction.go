package domain

import "time"

// TransactionType captures which lifecycle action a log entry records.
type TransactionType string

const (
	TransactionTypeMint     TransactionType = "mint"
	TransactionTypeTransfer TransactionType = "transfer"
	TransactionTypeBurn     TransactionType = "burn"
	TransactionTypeCancel   TransactionType = "cancel"
)

// Transaction is an append-only audit entry for mint/transfer/burn/cancel
// events. Entries are never mutated or deleted.
type Transaction struct {
	ID         string
	TicketID   string
	Type       TransactionType
	FromWallet *string
	ToWallet   *string
	TxHash     string
	CreatedAt  time.Time
}
