package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tokengate/ticketing-service/internal/api/dto"
	"github.com/tokengate/ticketing-service/internal/service"
	apperrors "github.com/tokengate/ticketing-service/pkg/util/errorutil"
)

// StaffHandler manages scanner staff authentication.
type StaffHandler struct {
	auth *service.AuthService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(authService *service.AuthService) *StaffHandler {
	return &StaffHandler{auth: authService}
}

// Login POST /auth/staff/login.
func (h *StaffHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}
	token, expiresAt, user, err := h.auth.LoginStaff(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      userResponse(user),
	}})
}
