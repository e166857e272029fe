package domain

import "time"

// CheckinLog is an append-only record of a successful admission, created
// exactly once per ticket, 1:1 with the IsCheckedIn transition to true.
type CheckinLog struct {
	ID           string
	TicketID     string
	EventID      string
	ScannedBy    string
	DeviceInfo   *string
	LocationInfo *string
	CreatedAt    time.Time
}
