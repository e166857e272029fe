package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokengate/ticketing-service/internal/auth"
	"github.com/tokengate/ticketing-service/internal/config"
	"github.com/tokengate/ticketing-service/internal/domain"
)

func seedStaff(t *testing.T, users *fakeUserRepo, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	user := &domain.User{
		WalletAddress: testWalletA,
		Role:          role,
		Email:         &email,
		PasswordHash:  &hash,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestLoginStaff(t *testing.T) {
	users := newFakeUserRepo()
	seeded := seedStaff(t, users, "gate@example.com", "scan-it", domain.RoleStaff)
	svc := NewAuthService(config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5}, users)

	token, expiresAt, user, err := svc.LoginStaff(context.Background(), "gate@example.com", "scan-it")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())
	assert.Equal(t, seeded.ID, user.ID)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.SubjectID)
	assert.Equal(t, domain.RoleStaff, claims.Role)
}

func TestLoginStaffFailures(t *testing.T) {
	users := newFakeUserRepo()
	seedStaff(t, users, "gate@example.com", "scan-it", domain.RoleStaff)
	svc := NewAuthService(config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5}, users)

	_, _, _, err := svc.LoginStaff(context.Background(), "nobody@example.com", "scan-it")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = svc.LoginStaff(context.Background(), "gate@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStaffRejectsHolderAccounts(t *testing.T) {
	users := newFakeUserRepo()
	seedStaff(t, users, "holder@example.com", "scan-it", domain.RoleUser)
	svc := NewAuthService(config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5}, users)

	_, _, _, err := svc.LoginStaff(context.Background(), "holder@example.com", "scan-it")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
