package http

import (
	"errors"

	"github.com/tokengate/ticketing-service/internal/domain"
	"github.com/tokengate/ticketing-service/internal/service"
	apperrors "github.com/tokengate/ticketing-service/pkg/util/errorutil"
)

// mapServiceError translates domain sentinels into the HTTP error taxonomy.
// Unrecognized errors pass through and fall back to INTERNAL_ERROR.
func mapServiceError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrTicketNotFound):
		return apperrors.NewNotFound("ticket", nil)
	case errors.Is(err, domain.ErrEventNotFound):
		return apperrors.NewNotFound("event", nil)
	case errors.Is(err, domain.ErrTemplateNotFound):
		return apperrors.NewNotFound("ticket template", nil)
	case errors.Is(err, domain.ErrUserNotFound):
		return apperrors.NewNotFound("user", nil)
	case errors.Is(err, domain.ErrDuplicateMint):
		return apperrors.NewConflict("token already minted", nil)
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		return apperrors.NewConflict("ticket already checked in", nil)
	case errors.Is(err, domain.ErrTerminalStatus):
		return apperrors.NewConflict("ticket is in a terminal status", nil)
	case errors.Is(err, domain.ErrSoulboundTransfer):
		return apperrors.NewConflict("soulbound ticket cannot be transferred", nil)
	case errors.Is(err, domain.ErrSupplyExhausted):
		return apperrors.NewUnprocessable("SUPPLY_EXHAUSTED", "template supply exhausted", nil)
	case errors.Is(err, domain.ErrQRHashCollision):
		return apperrors.NewIntegrityViolation("admission credential collision", err)
	case errors.Is(err, domain.ErrInvalidWallet), errors.Is(err, domain.ErrInvalidTxHash):
		return apperrors.NewValidationError(err.Error(), nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		return apperrors.NewUnauthorized("invalid credentials")
	}
	return err
}
