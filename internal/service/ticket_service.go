package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tokengate/ticketing-service/internal/chain"
	"github.com/tokengate/ticketing-service/internal/config"
	"github.com/tokengate/ticketing-service/internal/domain"
	"github.com/tokengate/ticketing-service/internal/events"
	"github.com/tokengate/ticketing-service/internal/repository"
)

// TxVerifier gates lifecycle recording on confirmed on-chain transactions.
type TxVerifier interface {
	VerifyTransaction(ctx context.Context, txHash string) error
}

// TicketService records the ticket lifecycle: mints, ownership transfers
// and terminal status changes, each paired with an append-only transaction
// log entry.
type TicketService struct {
	tickets          repository.TicketRepository
	templates        repository.TemplateRepository
	events           repository.EventRepository
	transactions     repository.TransactionRepository
	identity         *IdentityService
	tx               repository.TxManager
	verifier         TxVerifier
	dispatcher       events.Dispatcher
	enforceSoulbound bool
	logger           *zap.Logger
	now              func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo      repository.TicketRepository
	TemplateRepo    repository.TemplateRepository
	EventRepo       repository.EventRepository
	TransactionRepo repository.TransactionRepository
	Identity        *IdentityService
	TxManager       repository.TxManager
	Verifier        TxVerifier
	Dispatcher      events.Dispatcher
}

// MintInput describes a confirmed on-chain mint.
type MintInput struct {
	TokenID     string
	TemplateID  string
	EventID     string
	OwnerWallet string
	TxHash      string
	MetadataURI *string
}

// TransferInput describes a confirmed on-chain ownership transfer.
type TransferInput struct {
	TokenID    string
	FromWallet string
	ToWallet   string
	TxHash     string
}

// TicketListFilter describes listing parameters.
type TicketListFilter struct {
	EventID     *string
	OwnerWallet *string
	Statuses    []domain.TicketStatus
	Limit       int
	Offset      int
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies, cfg config.TicketingConfig, logger *zap.Logger) *TicketService {
	return &TicketService{
		tickets:          deps.TicketRepo,
		templates:        deps.TemplateRepo,
		events:           deps.EventRepo,
		transactions:     deps.TransactionRepo,
		identity:         deps.Identity,
		tx:               deps.TxManager,
		verifier:         deps.Verifier,
		dispatcher:       deps.Dispatcher,
		enforceSoulbound: cfg.EnforceSoulbound,
		logger:           logger,
		now:              time.Now,
	}
}

// RecordMint creates the canonical ticket record for a confirmed mint,
// derives its admission credential, bumps the sold counters and appends the
// mint transaction. The counter increments, ticket insert and log append
// commit as one unit.
func (s *TicketService) RecordMint(ctx context.Context, input MintInput) (*domain.Ticket, error) {
	if err := s.verifier.VerifyTransaction(ctx, input.TxHash); err != nil {
		return nil, err
	}
	owner, err := s.identity.Resolve(ctx, input.OwnerWallet)
	if err != nil {
		return nil, err
	}

	template, err := s.templates.GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if template.EventID != input.EventID {
		return nil, domain.ErrTemplateNotFound
	}
	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		TokenID:       input.TokenID,
		TemplateID:    template.ID,
		EventID:       event.ID,
		OwnerWallet:   owner.WalletAddress,
		OriginalOwner: owner.WalletAddress,
		QRHash:        newQRHash(input.TokenID, event.ID, s.now()),
		MetadataURI:   input.MetadataURI,
		Status:        domain.TicketStatusMinted,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		available, err := s.templates.IncrementSoldIfAvailable(ctx, template.ID)
		if err != nil {
			return err
		}
		if !available {
			return domain.ErrSupplyExhausted
		}
		if err := s.events.IncrementSold(ctx, event.ID); err != nil {
			return err
		}
		if err := s.tickets.Create(ctx, ticket); err != nil {
			return err
		}
		toWallet := ticket.OwnerWallet
		return s.transactions.Create(ctx, &domain.Transaction{
			TicketID: ticket.ID,
			Type:     domain.TransactionTypeMint,
			ToWallet: &toWallet,
			TxHash:   input.TxHash,
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrQRHashCollision) {
			s.logger.Error("qr hash collision on mint",
				zap.String("token_id", input.TokenID),
				zap.String("event_id", input.EventID))
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventTicketMinted,
		TokenID: ticket.TokenID,
		EventID: ticket.EventID,
		Payload: events.TicketMintedPayload{
			TemplateID:  ticket.TemplateID,
			OwnerWallet: ticket.OwnerWallet,
			TxHash:      input.TxHash,
		},
	})
	return ticket, nil
}

// RecordTransfer moves current ownership to the destination wallet and
// marks the ticket transferred. Check-in state tracks physical admission,
// not legal ownership, so it is never reset here.
func (s *TicketService) RecordTransfer(ctx context.Context, input TransferInput) (*domain.Ticket, error) {
	if err := s.verifier.VerifyTransaction(ctx, input.TxHash); err != nil {
		return nil, err
	}
	fromWallet, err := chain.NormalizeAddress(input.FromWallet)
	if err != nil {
		return nil, err
	}
	toUser, err := s.identity.Resolve(ctx, input.ToWallet)
	if err != nil {
		return nil, err
	}

	ticket, err := s.tickets.GetByTokenID(ctx, input.TokenID)
	if err != nil {
		return nil, err
	}
	if ticket.Status.IsTerminal() {
		return nil, domain.ErrTerminalStatus
	}
	if s.enforceSoulbound {
		template, err := s.templates.GetByID(ctx, ticket.TemplateID)
		if err != nil {
			return nil, err
		}
		if template.IsSoulbound {
			return nil, domain.ErrSoulboundTransfer
		}
	}

	var updated *domain.Ticket
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		updated, err = s.tickets.UpdateOwner(ctx, input.TokenID, toUser.WalletAddress, domain.TicketStatusTransferred)
		if err != nil {
			return err
		}
		toWallet := toUser.WalletAddress
		return s.transactions.Create(ctx, &domain.Transaction{
			TicketID:   updated.ID,
			Type:       domain.TransactionTypeTransfer,
			FromWallet: &fromWallet,
			ToWallet:   &toWallet,
			TxHash:     input.TxHash,
		})
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventTicketTransferred,
		TokenID: updated.TokenID,
		EventID: updated.EventID,
		Payload: events.TicketTransferredPayload{
			FromWallet: fromWallet,
			ToWallet:   toUser.WalletAddress,
			TxHash:     input.TxHash,
		},
	})
	return updated, nil
}

// RecordBurn marks a ticket burned and logs the transaction.
func (s *TicketService) RecordBurn(ctx context.Context, tokenID, txHash string) (*domain.Ticket, error) {
	return s.recordTerminal(ctx, tokenID, txHash, domain.TicketStatusBurned, domain.TransactionTypeBurn)
}

// RecordCancel marks a ticket cancelled and logs the transaction.
func (s *TicketService) RecordCancel(ctx context.Context, tokenID, txHash string) (*domain.Ticket, error) {
	return s.recordTerminal(ctx, tokenID, txHash, domain.TicketStatusCancelled, domain.TransactionTypeCancel)
}

func (s *TicketService) recordTerminal(ctx context.Context, tokenID, txHash string, status domain.TicketStatus, txType domain.TransactionType) (*domain.Ticket, error) {
	if err := s.verifier.VerifyTransaction(ctx, txHash); err != nil {
		return nil, err
	}
	ticket, err := s.tickets.GetByTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if ticket.Status.IsTerminal() {
		return nil, domain.ErrTerminalStatus
	}
	oldStatus := ticket.Status

	var updated *domain.Ticket
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		updated, err = s.tickets.UpdateStatus(ctx, tokenID, status)
		if err != nil {
			return err
		}
		fromWallet := ticket.OwnerWallet
		return s.transactions.Create(ctx, &domain.Transaction{
			TicketID:   updated.ID,
			Type:       txType,
			FromWallet: &fromWallet,
			TxHash:     txHash,
		})
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventTicketStatusSet,
		TokenID: updated.TokenID,
		EventID: updated.EventID,
		Payload: events.TicketStatusSetPayload{
			OldStatus: oldStatus,
			NewStatus: status,
			TxHash:    txHash,
		},
	})
	return updated, nil
}

// GetTicket fetches a ticket by its on-chain token identifier.
func (s *TicketService) GetTicket(ctx context.Context, tokenID string) (*domain.Ticket, error) {
	return s.tickets.GetByTokenID(ctx, tokenID)
}

// ListTickets returns paginated tickets matching the filter.
func (s *TicketService) ListTickets(ctx context.Context, filter TicketListFilter) ([]domain.Ticket, error) {
	repoFilter := repository.TicketFilter{
		EventID:  filter.EventID,
		Statuses: filter.Statuses,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}
	if filter.OwnerWallet != nil {
		wallet, err := chain.NormalizeAddress(*filter.OwnerWallet)
		if err != nil {
			return nil, err
		}
		repoFilter.OwnerWallet = &wallet
	}
	return s.tickets.List(ctx, repoFilter)
}

// ListTransactions returns the audit trail for a ticket.
func (s *TicketService) ListTransactions(ctx context.Context, tokenID string) ([]domain.Transaction, error) {
	ticket, err := s.tickets.GetByTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	return s.transactions.ListByTicket(ctx, ticket.ID)
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
