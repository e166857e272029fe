package dto

import "time"

// CreateEventRequest payload.
type CreateEventRequest struct {
	OrganizerWallet string    `json:"organizer_wallet"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	Venue           *string   `json:"venue"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	IsPublished     bool      `json:"is_published"`
}

// EventResponse is the public event shape.
type EventResponse struct {
	ID          string    `json:"id"`
	OrganizerID string    `json:"organizer_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Venue       *string   `json:"venue,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsPublished bool      `json:"is_published"`
	TotalSold   int       `json:"total_sold"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateTemplateRequest payload.
type CreateTemplateRequest struct {
	Name        string     `json:"name"`
	Price       string     `json:"price"`
	TotalSupply int        `json:"total_supply"`
	TierRank    int        `json:"tier_rank"`
	IsSoulbound bool       `json:"is_soulbound"`
	SaleStartAt *time.Time `json:"sale_start_at"`
	SaleEndAt   *time.Time `json:"sale_end_at"`
}

// TemplateResponse is the public ticket-tier shape.
type TemplateResponse struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	Name        string     `json:"name"`
	Price       string     `json:"price"`
	TotalSupply int        `json:"total_supply"`
	SoldCount   int        `json:"sold_count"`
	TierRank    int        `json:"tier_rank"`
	IsSoulbound bool       `json:"is_soulbound"`
	SaleStartAt *time.Time `json:"sale_start_at,omitempty"`
	SaleEndAt   *time.Time `json:"sale_end_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
