package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tokengate/ticketing-service/internal/domain"
	"github.com/tokengate/ticketing-service/internal/repository"
)

// EventService manages events and their ticket templates: the referents
// every mint precondition checks against.
type EventService struct {
	events    repository.EventRepository
	templates repository.TemplateRepository
	identity  *IdentityService
	logger    *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(events repository.EventRepository, templates repository.TemplateRepository, identity *IdentityService, logger *zap.Logger) *EventService {
	return &EventService{events: events, templates: templates, identity: identity, logger: logger}
}

// EventCreateInput describes event creation payload.
type EventCreateInput struct {
	OrganizerWallet string
	Name            string
	Description     *string
	Venue           *string
	StartDate       time.Time
	EndDate         time.Time
	IsPublished     bool
}

// TemplateCreateInput describes ticket-tier creation payload.
type TemplateCreateInput struct {
	EventID     string
	Name        string
	Price       string
	TotalSupply int
	TierRank    int
	IsSoulbound bool
	SaleStartAt *time.Time
	SaleEndAt   *time.Time
}

// CreateEvent registers an event owned by the resolved organizer wallet.
func (s *EventService) CreateEvent(ctx context.Context, input EventCreateInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, errors.New("event name required")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, errors.New("event end date must be after start date")
	}
	organizer, err := s.identity.Resolve(ctx, input.OrganizerWallet)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		OrganizerID: organizer.ID,
		Name:        input.Name,
		Description: input.Description,
		Venue:       input.Venue,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsPublished: input.IsPublished,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	s.logger.Info("created event", zap.String("event_id", event.ID), zap.String("organizer", organizer.WalletAddress))
	return event, nil
}

// PublishEvent flips the publication flag.
func (s *EventService) PublishEvent(ctx context.Context, eventID string) error {
	return s.events.SetPublished(ctx, eventID, true)
}

// GetEvent fetches an event by id.
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.events.GetByID(ctx, eventID)
}

// ListEvents returns paginated events.
func (s *EventService) ListEvents(ctx context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	return s.events.List(ctx, filter)
}

// CreateTemplate registers a ticket tier under an existing event.
func (s *EventService) CreateTemplate(ctx context.Context, input TemplateCreateInput) (*domain.TicketTemplate, error) {
	if input.Name == "" {
		return nil, errors.New("template name required")
	}
	if input.TotalSupply <= 0 {
		return nil, errors.New("template supply must be positive")
	}
	if _, err := s.events.GetByID(ctx, input.EventID); err != nil {
		return nil, err
	}
	if input.Price == "" {
		input.Price = "0"
	}

	template := &domain.TicketTemplate{
		EventID:     input.EventID,
		Name:        input.Name,
		Price:       input.Price,
		TotalSupply: input.TotalSupply,
		TierRank:    input.TierRank,
		IsSoulbound: input.IsSoulbound,
		SaleStartAt: input.SaleStartAt,
		SaleEndAt:   input.SaleEndAt,
	}
	if err := s.templates.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// ListTemplates returns the tiers of an event ordered by rank.
func (s *EventService) ListTemplates(ctx context.Context, eventID string) ([]domain.TicketTemplate, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.templates.ListByEvent(ctx, eventID)
}
