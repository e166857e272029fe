package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tokengate/ticketing-service/internal/api/dto"
	"github.com/tokengate/ticketing-service/internal/repository"
	"github.com/tokengate/ticketing-service/internal/service"
	apperrors "github.com/tokengate/ticketing-service/pkg/util/errorutil"
)

// EventsHandler manages events and their ticket tiers.
type EventsHandler struct {
	events *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(events *service.EventService) *EventsHandler {
	return &EventsHandler{events: events}
}

// Create POST /v1/events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.OrganizerWallet == "" || req.Name == "" {
		return apperrors.NewValidationError("organizer_wallet and name required", nil)
	}
	event, err := h.events.CreateEvent(c.UserContext(), service.EventCreateInput{
		OrganizerWallet: req.OrganizerWallet,
		Name:            req.Name,
		Description:     req.Description,
		Venue:           req.Venue,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsPublished:     req.IsPublished,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": eventResponse(event)})
}

// Publish POST /v1/events/:id/publish.
func (h *EventsHandler) Publish(c *fiber.Ctx) error {
	if err := h.events.PublishEvent(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"published": true}})
}

// Get GET /v1/events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	event, err := h.events.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": eventResponse(event)})
}

// List GET /v1/events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	page, pageSize, offset := pageWindow(c)
	filter := repository.EventFilter{
		PublishedOnly: c.QueryBool("published_only"),
		Limit:         pageSize,
		Offset:        offset,
	}
	if organizer := c.Query("organizer_id"); organizer != "" {
		filter.OrganizerID = &organizer
	}
	events, err := h.events.ListEvents(c.UserContext(), filter)
	if err != nil {
		return err
	}
	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, eventResponse(&events[i]))
	}
	return c.JSON(fiber.Map{
		"data": responses,
		"pagination": dto.Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    len(responses),
		},
	})
}

// CreateTemplate POST /v1/events/:id/templates.
func (h *EventsHandler) CreateTemplate(c *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.TotalSupply <= 0 {
		return apperrors.NewValidationError("name and positive total_supply required", nil)
	}
	template, err := h.events.CreateTemplate(c.UserContext(), service.TemplateCreateInput{
		EventID:     c.Params("id"),
		Name:        req.Name,
		Price:       req.Price,
		TotalSupply: req.TotalSupply,
		TierRank:    req.TierRank,
		IsSoulbound: req.IsSoulbound,
		SaleStartAt: req.SaleStartAt,
		SaleEndAt:   req.SaleEndAt,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": templateResponse(template)})
}

// ListTemplates GET /v1/events/:id/templates.
func (h *EventsHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.events.ListTemplates(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	responses := make([]dto.TemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, templateResponse(&templates[i]))
	}
	return c.JSON(fiber.Map{"data": responses})
}
