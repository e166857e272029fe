package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tokengate/ticketing-service/internal/api/dto"
	"github.com/tokengate/ticketing-service/internal/service"
	apperrors "github.com/tokengate/ticketing-service/pkg/util/errorutil"
)

// UsersHandler exposes the identity resolver. The wallet address it
// receives has already passed external signature verification.
type UsersHandler struct {
	identity *service.IdentityService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(identity *service.IdentityService) *UsersHandler {
	return &UsersHandler{identity: identity}
}

// Resolve POST /v1/users/resolve.
func (h *UsersHandler) Resolve(c *fiber.Ctx) error {
	var req dto.ResolveUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.WalletAddress == "" {
		return apperrors.NewValidationError("wallet_address required", nil)
	}
	user, err := h.identity.Resolve(c.UserContext(), req.WalletAddress)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}
