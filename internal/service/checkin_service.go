package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tokengate/ticketing-service/internal/domain"
	"github.com/tokengate/ticketing-service/internal/events"
	"github.com/tokengate/ticketing-service/internal/repository"
)

// Rejection reasons shown verbatim by scanning devices.
const (
	ReasonInvalidQR        = "Invalid QR code"
	ReasonAlreadyCheckedIn = "Ticket already checked in"
	ReasonEventNotStarted  = "Event has not started yet"
	ReasonEventEnded       = "Event has ended"
)

// ValidationResult is the validator's structured decision. Business-rule
// rejections are data, not errors, so scanners display Reason without
// special-casing failures.
type ValidationResult struct {
	Valid       bool
	Reason      string
	CheckedInAt *time.Time
	Ticket      *TicketSummary
}

// TicketSummary is the staff-facing display payload for a valid ticket.
type TicketSummary struct {
	TokenID     string
	OwnerWallet string
	TicketName  string
	TierRank    int
	EventName   string
}

// ConfirmInput describes a staff-confirmed admission.
type ConfirmInput struct {
	QRHash       string
	ScannedBy    string
	DeviceInfo   *string
	LocationInfo *string
}

// CheckinService decides admission eligibility and performs the one-time
// checked-in transition.
type CheckinService struct {
	tickets    repository.TicketRepository
	templates  repository.TemplateRepository
	events     repository.EventRepository
	logs       repository.CheckinLogRepository
	tx         repository.TxManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// CheckinDependencies bundles collaborators for the check-in service.
type CheckinDependencies struct {
	TicketRepo   repository.TicketRepository
	TemplateRepo repository.TemplateRepository
	EventRepo    repository.EventRepository
	LogRepo      repository.CheckinLogRepository
	TxManager    repository.TxManager
	Dispatcher   events.Dispatcher
}

// NewCheckinService constructs the service.
func NewCheckinService(deps CheckinDependencies, logger *zap.Logger) *CheckinService {
	return &CheckinService{
		tickets:    deps.TicketRepo,
		templates:  deps.TemplateRepo,
		events:     deps.EventRepo,
		logs:       deps.LogRepo,
		tx:         deps.TxManager,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Validate decides admission eligibility for a presented credential without
// mutating anything; scanners retry it freely on poor connectivity. The
// check order is part of the contract: existence, then check-in state, then
// the event window, then terminal status, so the scanner always gets the
// most specific actionable reason.
func (s *CheckinService) Validate(ctx context.Context, qrHash string) (*ValidationResult, error) {
	ticket, err := s.tickets.GetByQRHash(ctx, qrHash)
	if errors.Is(err, domain.ErrTicketNotFound) {
		return &ValidationResult{Reason: ReasonInvalidQR}, nil
	}
	if err != nil {
		return nil, err
	}

	if ticket.IsCheckedIn {
		return &ValidationResult{Reason: ReasonAlreadyCheckedIn, CheckedInAt: ticket.CheckedInAt}, nil
	}

	event, err := s.events.GetByID(ctx, ticket.EventID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if !event.HasStarted(now) {
		return &ValidationResult{Reason: ReasonEventNotStarted}, nil
	}
	if event.HasEnded(now) {
		return &ValidationResult{Reason: ReasonEventEnded}, nil
	}

	if ticket.Status.IsTerminal() {
		return &ValidationResult{Reason: fmt.Sprintf("Ticket is %s", ticket.Status)}, nil
	}

	template, err := s.templates.GetByID(ctx, ticket.TemplateID)
	if err != nil {
		return nil, err
	}
	return &ValidationResult{
		Valid: true,
		Ticket: &TicketSummary{
			TokenID:     ticket.TokenID,
			OwnerWallet: ticket.OwnerWallet,
			TicketName:  template.Name,
			TierRank:    template.TierRank,
			EventName:   event.Name,
		},
	}, nil
}

// Confirm atomically transitions an eligible ticket to checked-in and
// appends exactly one admission log entry. Preconditions are re-verified
// here rather than trusted from a prior Validate call, and the
// already-checked-in race is closed by the conditional write itself: when a
// concurrent confirm wins, this call reports ErrAlreadyCheckedIn and writes
// no log entry.
func (s *CheckinService) Confirm(ctx context.Context, input ConfirmInput) (*domain.Ticket, *domain.CheckinLog, error) {
	ticket, err := s.tickets.GetByQRHash(ctx, input.QRHash)
	if err != nil {
		return nil, nil, err
	}
	if ticket.IsCheckedIn {
		return nil, nil, domain.ErrAlreadyCheckedIn
	}

	at := s.now().UTC()
	log := &domain.CheckinLog{
		TicketID:     ticket.ID,
		EventID:      ticket.EventID,
		ScannedBy:    input.ScannedBy,
		DeviceInfo:   input.DeviceInfo,
		LocationInfo: input.LocationInfo,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		changed, err := s.tickets.ConfirmCheckin(ctx, ticket.ID, input.ScannedBy, at)
		if err != nil {
			return err
		}
		if !changed {
			return domain.ErrAlreadyCheckedIn
		}
		return s.logs.Create(ctx, log)
	})
	if err != nil {
		return nil, nil, err
	}

	ticket.IsCheckedIn = true
	ticket.CheckedInAt = &at
	scannedBy := input.ScannedBy
	ticket.CheckedInBy = &scannedBy

	s.publish(ctx, events.Event{
		Type:    events.EventTicketCheckedIn,
		TokenID: ticket.TokenID,
		EventID: ticket.EventID,
		Payload: events.TicketCheckedInPayload{
			ScannedBy:   input.ScannedBy,
			CheckedInAt: at,
		},
	})
	return ticket, log, nil
}

// ListCheckinLogs returns the paginated admission trail for an event along
// with the total entry count.
func (s *CheckinService) ListCheckinLogs(ctx context.Context, eventID string, limit, offset int) ([]domain.CheckinLog, int, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, 0, err
	}
	logs, err := s.logs.ListByEvent(ctx, eventID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.logs.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (s *CheckinService) publish(ctx context.Context, event events.Event) {
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
