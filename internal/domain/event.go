package domain

import "time"

// Event is owned by one organizer and bounds admission to the
// [StartDate, EndDate) window. Lifecycle is derived from the publication
// flag and the time window rather than stored.
type Event struct {
	ID          string
	OrganizerID string
	Name        string
	Description *string
	Venue       *string
	StartDate   time.Time
	EndDate     time.Time
	IsPublished bool
	TotalSold   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasStarted reports whether admission may begin at the given instant.
func (e *Event) HasStarted(at time.Time) bool {
	return !at.Before(e.StartDate)
}

// HasEnded reports whether the event window has closed. The end bound is
// exclusive.
func (e *Event) HasEnded(at time.Time) bool {
	return !at.Before(e.EndDate)
}
