package domain

import "time"

// Role enumerates access levels for platform identities.
type Role string

const (
	RoleUser      Role = "user"
	RoleOrganizer Role = "organizer"
	RoleStaff     Role = "staff"
	RoleAdmin     Role = "admin"
)

// User is an identity keyed by its normalized wallet address. Users are
// created lazily on first signature verification or first ownership event
// and are never deleted; the address is immutable once created.
type User struct {
	ID            string
	WalletAddress string
	Role          Role
	IsVerified    bool
	DisplayName   *string
	Email         *string
	PasswordHash  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
