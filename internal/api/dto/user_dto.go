package dto

import (
	"time"

	"github.com/tokengate/ticketing-service/internal/domain"
)

// ResolveUserRequest carries a wallet address already verified by the
// external signature verifier.
type ResolveUserRequest struct {
	WalletAddress string `json:"wallet_address"`
}

// UserResponse is the public identity shape.
type UserResponse struct {
	ID            string      `json:"id"`
	WalletAddress string      `json:"wallet_address"`
	Role          domain.Role `json:"role"`
	IsVerified    bool        `json:"is_verified"`
	DisplayName   *string     `json:"display_name,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// LoginRequest payload for staff authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
