package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tokengate/ticketing-service/internal/domain"
)

func TestResolveCreatesUser(t *testing.T) {
	users := newFakeUserRepo()
	identity := NewIdentityService(users, zap.NewNop())

	user, err := identity.Resolve(context.Background(), testWalletA)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, testWalletA, user.WalletAddress)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.False(t, user.IsVerified)
}

func TestResolveIsIdempotentAcrossCasing(t *testing.T) {
	users := newFakeUserRepo()
	identity := NewIdentityService(users, zap.NewNop())

	first, err := identity.Resolve(context.Background(), testWalletA)
	require.NoError(t, err)

	second, err := identity.Resolve(context.Background(), "0x"+strings.ToUpper(testWalletA[2:]))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestResolveRejectsMalformedWallet(t *testing.T) {
	users := newFakeUserRepo()
	identity := NewIdentityService(users, zap.NewNop())

	_, err := identity.Resolve(context.Background(), "not-a-wallet")
	assert.ErrorIs(t, err, domain.ErrInvalidWallet)
}

func TestResolveDuplicateInsertFallsBackToFetch(t *testing.T) {
	users := newFakeUserRepo()
	identity := NewIdentityService(users, zap.NewNop())

	seeded := &domain.User{WalletAddress: testWalletB, Role: domain.RoleUser}
	require.NoError(t, users.Create(context.Background(), seeded))

	resolved, err := identity.Resolve(context.Background(), testWalletB)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, resolved.ID)
}
