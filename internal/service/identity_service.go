package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tokengate/ticketing-service/internal/chain"
	"github.com/tokengate/ticketing-service/internal/domain"
	"github.com/tokengate/ticketing-service/internal/repository"
)

// IdentityService maps wallet addresses to user records, creating them on
// first sight. It is the leaf dependency for every other service.
type IdentityService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewIdentityService constructs the service.
func NewIdentityService(users repository.UserRepository, logger *zap.Logger) *IdentityService {
	return &IdentityService{users: users, logger: logger}
}

// Resolve returns the user for the given wallet, creating an unverified
// default-role record when none exists. Concurrent calls for the same new
// wallet race on the insert; the loser re-fetches the row the winner
// created, so duplicates are impossible.
func (s *IdentityService) Resolve(ctx context.Context, walletAddress string) (*domain.User, error) {
	wallet, err := chain.NormalizeAddress(walletAddress)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByWallet(ctx, wallet)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user = &domain.User{
		WalletAddress: wallet,
		Role:          domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateWallet) {
			return s.users.GetByWallet(ctx, wallet)
		}
		return nil, err
	}

	s.logger.Info("created user", zap.String("wallet", wallet))
	return user, nil
}
