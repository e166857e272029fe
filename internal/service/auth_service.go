package service

import (
	"context"
	"errors"
	"time"

	"github.com/tokengate/ticketing-service/internal/auth"
	"github.com/tokengate/ticketing-service/internal/config"
	"github.com/tokengate/ticketing-service/internal/domain"
	"github.com/tokengate/ticketing-service/internal/repository"
)

// ErrInvalidCredentials is returned for any staff login failure; the cause
// (unknown email, wrong password, non-staff role) is deliberately not
// distinguished to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates gate staff. Wallet-signature authentication for
// ticket holders happens in an external verifier; only staff accounts carry
// passwords here.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:  users,
		tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// LoginStaff verifies credentials and issues a bearer token for scanner
// staff, organizers and admins.
func (s *AuthService) LoginStaff(ctx context.Context, email, password string) (string, time.Time, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", time.Time{}, nil, err
	}
	if user.PasswordHash == nil || !staffRole(user.Role) {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}
	if err := auth.CheckPassword(*user.PasswordHash, password); err != nil {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	return token, expiresAt, user, nil
}

func staffRole(role domain.Role) bool {
	switch role {
	case domain.RoleStaff, domain.RoleOrganizer, domain.RoleAdmin:
		return true
	}
	return false
}
