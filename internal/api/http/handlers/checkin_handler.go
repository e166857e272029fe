package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tokengate/ticketing-service/internal/api/dto"
	"github.com/tokengate/ticketing-service/internal/auth"
	"github.com/tokengate/ticketing-service/internal/observability"
	"github.com/tokengate/ticketing-service/internal/service"
	apperrors "github.com/tokengate/ticketing-service/pkg/util/errorutil"
)

// CheckinHandler exposes admission validation and confirmation to scanner
// devices at venue gates.
type CheckinHandler struct {
	checkin *service.CheckinService
	metrics *observability.Metrics
}

// NewCheckinHandler constructs handler.
func NewCheckinHandler(checkin *service.CheckinService, metrics *observability.Metrics) *CheckinHandler {
	return &CheckinHandler{checkin: checkin, metrics: metrics}
}

// Validate POST /v1/checkin/validate. Read-only, safe to retry.
func (h *CheckinHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.QRHash == "" {
		return apperrors.NewValidationError("qr_hash required", nil)
	}
	result, err := h.checkin.Validate(c.UserContext(), req.QRHash)
	if err != nil {
		return err
	}
	h.metrics.RecordCheckinDecision(result.Valid, result.Reason)
	response := dto.ValidateResponse{
		Valid:       result.Valid,
		Message:     result.Reason,
		CheckedInAt: result.CheckedInAt,
	}
	if result.Ticket != nil {
		response.Ticket = &dto.TicketSummaryResponse{
			TokenID:     result.Ticket.TokenID,
			OwnerWallet: result.Ticket.OwnerWallet,
			TicketName:  result.Ticket.TicketName,
			TierRank:    result.Ticket.TierRank,
			EventName:   result.Ticket.EventName,
		}
	}
	return c.JSON(fiber.Map{"data": response})
}

// Confirm POST /v1/checkin/confirm. The scanning staff identity comes from
// the authenticated principal.
func (h *CheckinHandler) Confirm(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.QRHash == "" {
		return apperrors.NewValidationError("qr_hash required", nil)
	}
	ticket, log, err := h.checkin.Confirm(c.UserContext(), service.ConfirmInput{
		QRHash:       req.QRHash,
		ScannedBy:    principal.User.ID,
		DeviceInfo:   req.DeviceInfo,
		LocationInfo: req.LocationInfo,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"ticket": ticketResponse(ticket),
		"log":    checkinLogResponse(log),
	}})
}

// Logs GET /v1/events/:id/checkin-logs.
func (h *CheckinHandler) Logs(c *fiber.Ctx) error {
	page, pageSize, offset := pageWindow(c)
	logs, total, err := h.checkin.ListCheckinLogs(c.UserContext(), c.Params("id"), pageSize, offset)
	if err != nil {
		return err
	}
	responses := make([]dto.CheckinLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, checkinLogResponse(&logs[i]))
	}
	return c.JSON(fiber.Map{
		"data": responses,
		"pagination": dto.Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	})
}
