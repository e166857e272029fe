package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tokengate/ticketing-service/internal/domain"
	"github.com/tokengate/ticketing-service/internal/repository"
	apperrors "github.com/tokengate/ticketing-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	User *domain.User
	Role domain.Role
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewAuthMiddleware constructs the middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Handle extracts and validates the bearer token, loading the user into the
// request context.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return apperrors.NewUnauthorized("bearer token required")
	}

	claims, err := m.tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	user, err := m.users.GetByID(c.UserContext(), claims.SubjectID)
	if err != nil {
		return apperrors.NewUnauthorized("unknown subject")
	}

	c.Locals(principalKey, &Principal{User: user, Role: user.Role})
	return c.Next()
}

// PrincipalFromContext fetches the authenticated principal, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	principal, ok := c.Locals(principalKey).(*Principal)
	return principal, ok && principal != nil
}
