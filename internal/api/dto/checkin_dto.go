package dto

import "time"

// ValidateRequest carries the scanned admission credential.
type ValidateRequest struct {
	QRHash string `json:"qr_hash"`
}

// TicketSummaryResponse is the staff display payload for a valid ticket.
type TicketSummaryResponse struct {
	TokenID     string `json:"token_id"`
	OwnerWallet string `json:"owner_wallet"`
	TicketName  string `json:"ticket_name"`
	TierRank    int    `json:"tier_rank"`
	EventName   string `json:"event_name"`
}

// ValidateResponse mirrors the validator's structured decision; Message is
// shown verbatim by the scanning UI.
type ValidateResponse struct {
	Valid       bool                   `json:"valid"`
	Message     string                 `json:"message,omitempty"`
	CheckedInAt *time.Time             `json:"checked_in_at,omitempty"`
	Ticket      *TicketSummaryResponse `json:"ticket,omitempty"`
}

// ConfirmRequest records an admission; the scanning staff identity comes
// from the bearer token, not the payload.
type ConfirmRequest struct {
	QRHash       string  `json:"qr_hash"`
	DeviceInfo   *string `json:"device_info"`
	LocationInfo *string `json:"location_info"`
}

// CheckinLogResponse is one admission-trail entry.
type CheckinLogResponse struct {
	ID           string    `json:"id"`
	TicketID     string    `json:"ticket_id"`
	EventID      string    `json:"event_id"`
	ScannedBy    string    `json:"scanned_by"`
	DeviceInfo   *string   `json:"device_info,omitempty"`
	LocationInfo *string   `json:"location_info,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}
