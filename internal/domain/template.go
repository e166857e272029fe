package domain

import "time"

// TicketTemplate defines a purchasable tier within an event. SoldCount is
// monotonically increasing and never exceeds TotalSupply.
type TicketTemplate struct {
	ID          string
	EventID     string
	Name        string
	Price       string
	TotalSupply int
	SoldCount   int
	TierRank    int
	IsSoulbound bool
	SaleStartAt *time.Time
	SaleEndAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Remaining returns the number of tickets still mintable against the template.
func (t *TicketTemplate) Remaining() int {
	remaining := t.TotalSupply - t.SoldCount
	if remaining < 0 {
		return 0
	}
	return remaining
}
