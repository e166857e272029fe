package events

import (
	"time"

	"github.com/tokengate/ticketing-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketMinted      EventType = "ticket_minted"
	EventTicketTransferred EventType = "ticket_transferred"
	EventTicketCheckedIn   EventType = "ticket_checked_in"
	EventTicketStatusSet   EventType = "ticket_status_set"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TokenID   string      `json:"token_id"`
	EventID   string      `json:"event_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketMintedPayload payload.
type TicketMintedPayload struct {
	TemplateID  string `json:"template_id"`
	OwnerWallet string `json:"owner_wallet"`
	TxHash      string `json:"tx_hash"`
}

// TicketTransferredPayload payload.
type TicketTransferredPayload struct {
	FromWallet string `json:"from_wallet"`
	ToWallet   string `json:"to_wallet"`
	TxHash     string `json:"tx_hash"`
}

// TicketCheckedInPayload payload.
type TicketCheckedInPayload struct {
	ScannedBy   string    `json:"scanned_by"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

// TicketStatusSetPayload payload.
type TicketStatusSetPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
	TxHash    string              `json:"tx_hash,omitempty"`
}
