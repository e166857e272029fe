package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tokengate/ticketing-service/internal/api/dto"
	"github.com/tokengate/ticketing-service/internal/domain"
	"github.com/tokengate/ticketing-service/internal/service"
	apperrors "github.com/tokengate/ticketing-service/pkg/util/errorutil"
)

// TicketsHandler records the ticket lifecycle and serves lifecycle queries.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets}
}

// Mint POST /v1/tickets/mint.
func (h *TicketsHandler) Mint(c *fiber.Ctx) error {
	var req dto.MintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TokenID == "" || req.TemplateID == "" || req.EventID == "" || req.OwnerWallet == "" || req.TxHash == "" {
		return apperrors.NewValidationError("token_id, template_id, event_id, owner_wallet and tx_hash required", nil)
	}
	ticket, err := h.tickets.RecordMint(c.UserContext(), service.MintInput{
		TokenID:     req.TokenID,
		TemplateID:  req.TemplateID,
		EventID:     req.EventID,
		OwnerWallet: req.OwnerWallet,
		TxHash:      req.TxHash,
		MetadataURI: req.MetadataURI,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// Transfer POST /v1/tickets/transfer.
func (h *TicketsHandler) Transfer(c *fiber.Ctx) error {
	var req dto.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TokenID == "" || req.FromWallet == "" || req.ToWallet == "" || req.TxHash == "" {
		return apperrors.NewValidationError("token_id, from_wallet, to_wallet and tx_hash required", nil)
	}
	ticket, err := h.tickets.RecordTransfer(c.UserContext(), service.TransferInput{
		TokenID:    req.TokenID,
		FromWallet: req.FromWallet,
		ToWallet:   req.ToWallet,
		TxHash:     req.TxHash,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// Burn POST /v1/tickets/:tokenId/burn.
func (h *TicketsHandler) Burn(c *fiber.Ctx) error {
	return h.statusChange(c, h.tickets.RecordBurn)
}

// Cancel POST /v1/tickets/:tokenId/cancel.
func (h *TicketsHandler) Cancel(c *fiber.Ctx) error {
	return h.statusChange(c, h.tickets.RecordCancel)
}

func (h *TicketsHandler) statusChange(c *fiber.Ctx, record func(ctx context.Context, tokenID, txHash string) (*domain.Ticket, error)) error {
	var req dto.StatusChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TxHash == "" {
		return apperrors.NewValidationError("tx_hash required", nil)
	}
	ticket, err := record(c.UserContext(), c.Params("tokenId"), req.TxHash)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// Get GET /v1/tickets/:tokenId.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	ticket, err := h.tickets.GetTicket(c.UserContext(), c.Params("tokenId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// List GET /v1/tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	page, pageSize, offset := pageWindow(c)
	filter := service.TicketListFilter{
		Limit:  pageSize,
		Offset: offset,
	}
	if eventID := c.Query("event_id"); eventID != "" {
		filter.EventID = &eventID
	}
	if owner := c.Query("owner_wallet"); owner != "" {
		filter.OwnerWallet = &owner
	}
	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			filter.Statuses = append(filter.Statuses, domain.TicketStatus(strings.TrimSpace(part)))
		}
	}
	tickets, err := h.tickets.ListTickets(c.UserContext(), filter)
	if err != nil {
		return err
	}
	responses := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		responses = append(responses, ticketResponse(&tickets[i]))
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

// Transactions GET /v1/tickets/:tokenId/transactions.
func (h *TicketsHandler) Transactions(c *fiber.Ctx) error {
	transactions, err := h.tickets.ListTransactions(c.UserContext(), c.Params("tokenId"))
	if err != nil {
		return err
	}
	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, transactionResponse(&transactions[i]))
	}
	return c.JSON(fiber.Map{"data": responses})
}
