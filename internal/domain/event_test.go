package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventWindow(t *testing.T) {
	start := time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(6 * time.Hour)
	event := &Event{StartDate: start, EndDate: end}

	assert.False(t, event.HasStarted(start.Add(-time.Second)))
	assert.True(t, event.HasStarted(start))

	assert.False(t, event.HasEnded(end.Add(-time.Second)))
	assert.True(t, event.HasEnded(end))
}

func TestTicketStatusIsTerminal(t *testing.T) {
	assert.False(t, TicketStatusMinted.IsTerminal())
	assert.False(t, TicketStatusTransferred.IsTerminal())
	assert.True(t, TicketStatusBurned.IsTerminal())
	assert.True(t, TicketStatusCancelled.IsTerminal())
}
