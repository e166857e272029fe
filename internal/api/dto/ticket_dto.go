package dto

import (
	"time"

	"github.com/tokengate/ticketing-service/internal/domain"
)

// MintRequest records a confirmed on-chain mint.
type MintRequest struct {
	TokenID     string  `json:"token_id"`
	TemplateID  string  `json:"template_id"`
	EventID     string  `json:"event_id"`
	OwnerWallet string  `json:"owner_wallet"`
	TxHash      string  `json:"tx_hash"`
	MetadataURI *string `json:"metadata_uri"`
}

// TransferRequest records a confirmed on-chain transfer.
type TransferRequest struct {
	TokenID    string `json:"token_id"`
	FromWallet string `json:"from_wallet"`
	ToWallet   string `json:"to_wallet"`
	TxHash     string `json:"tx_hash"`
}

// StatusChangeRequest records a burn or cancellation.
type StatusChangeRequest struct {
	TxHash string `json:"tx_hash"`
}

// TicketResponse is the full ticket shape, including the admission
// credential needed to render the QR code.
type TicketResponse struct {
	ID            string              `json:"id"`
	TokenID       string              `json:"token_id"`
	TemplateID    string              `json:"template_id"`
	EventID       string              `json:"event_id"`
	OwnerWallet   string              `json:"owner_wallet"`
	OriginalOwner string              `json:"original_owner"`
	QRHash        string              `json:"qr_hash"`
	MetadataURI   *string             `json:"metadata_uri,omitempty"`
	Status        domain.TicketStatus `json:"status"`
	IsCheckedIn   bool                `json:"is_checked_in"`
	CheckedInAt   *time.Time          `json:"checked_in_at,omitempty"`
	CheckedInBy   *string             `json:"checked_in_by,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// TransactionResponse is one audit-trail entry.
type TransactionResponse struct {
	ID         string                 `json:"id"`
	TicketID   string                 `json:"ticket_id"`
	Type       domain.TransactionType `json:"type"`
	FromWallet *string                `json:"from_wallet,omitempty"`
	ToWallet   *string                `json:"to_wallet,omitempty"`
	TxHash     string                 `json:"tx_hash"`
	CreatedAt  time.Time              `json:"created_at"`
}
