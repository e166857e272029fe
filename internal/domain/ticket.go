package domain

import "time"

// TicketStatus enumerates lifecycle states for minted tickets.
type TicketStatus string

const (
	TicketStatusMinted      TicketStatus = "minted"
	TicketStatusTransferred TicketStatus = "transferred"
	TicketStatusBurned      TicketStatus = "burned"
	TicketStatusCancelled   TicketStatus = "cancelled"
)

// IsTerminal reports whether the status permits no further transitions.
func (s TicketStatus) IsTerminal() bool {
	return s == TicketStatusBurned || s == TicketStatusCancelled
}

// Ticket is the central aggregate: one on-chain token and its admission
// state. TokenID, QRHash and OriginalOwner are immutable after mint.
// Check-in is monotonic: once IsCheckedIn flips true, CheckedInAt and
// CheckedInBy are set exactly once and never change again, regardless of
// later ownership transfers.
type Ticket struct {
	ID            string
	TokenID       string
	TemplateID    string
	EventID       string
	OwnerWallet   string
	OriginalOwner string
	QRHash        string
	MetadataURI   *string
	Status        TicketStatus
	IsCheckedIn   bool
	CheckedInAt   *time.Time
	CheckedInBy   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
