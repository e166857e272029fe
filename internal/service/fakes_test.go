package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tokengate/ticketing-service/internal/domain"
	"github.com/tokengate/ticketing-service/internal/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.WalletAddress == user.WalletAddress {
			return domain.ErrDuplicateWallet
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cloned := *user
	r.users[user.ID] = &cloned
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		cloned := *user
		return &cloned, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByWallet(_ context.Context, wallet string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.WalletAddress == wallet {
			cloned := *user
			return &cloned, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email != nil && *user.Email == email {
			cloned := *user
			return &cloned, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]*domain.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*domain.Event)}
}

func (r *fakeEventRepo) Create(_ context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = uuid.NewString()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	cloned := *event
	r.events[event.ID] = &cloned
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if event, ok := r.events[id]; ok {
		cloned := *event
		return &cloned, nil
	}
	return nil, domain.ErrEventNotFound
}

func (r *fakeEventRepo) List(_ context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Event
	for _, event := range r.events {
		if filter.PublishedOnly && !event.IsPublished {
			continue
		}
		if filter.OrganizerID != nil && event.OrganizerID != *filter.OrganizerID {
			continue
		}
		result = append(result, *event)
	}
	return result, nil
}

func (r *fakeEventRepo) SetPublished(_ context.Context, id string, published bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.IsPublished = published
	return nil
}

func (r *fakeEventRepo) IncrementSold(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.TotalSold++
	return nil
}

type fakeTemplateRepo struct {
	mu        sync.Mutex
	templates map[string]*domain.TicketTemplate
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[string]*domain.TicketTemplate)}
}

func (r *fakeTemplateRepo) Create(_ context.Context, template *domain.TicketTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	template.ID = uuid.NewString()
	template.CreatedAt = time.Now()
	template.UpdatedAt = template.CreatedAt
	cloned := *template
	r.templates[template.ID] = &cloned
	return nil
}

func (r *fakeTemplateRepo) GetByID(_ context.Context, id string) (*domain.TicketTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if template, ok := r.templates[id]; ok {
		cloned := *template
		return &cloned, nil
	}
	return nil, domain.ErrTemplateNotFound
}

func (r *fakeTemplateRepo) ListByEvent(_ context.Context, eventID string) ([]domain.TicketTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.TicketTemplate
	for _, template := range r.templates {
		if template.EventID == eventID {
			result = append(result, *template)
		}
	}
	return result, nil
}

func (r *fakeTemplateRepo) IncrementSoldIfAvailable(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	template, ok := r.templates[id]
	if !ok {
		return false, domain.ErrTemplateNotFound
	}
	if template.SoldCount >= template.TotalSupply {
		return false, nil
	}
	template.SoldCount++
	return true, nil
}

type fakeTicketRepo struct {
	mu      sync.Mutex
	tickets map[string]*domain.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*domain.Ticket)}
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.tickets {
		if existing.TokenID == ticket.TokenID {
			return domain.ErrDuplicateMint
		}
		if existing.QRHash == ticket.QRHash {
			return domain.ErrQRHashCollision
		}
	}
	ticket.ID = uuid.NewString()
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	cloned := *ticket
	r.tickets[ticket.ID] = &cloned
	return nil
}

func (r *fakeTicketRepo) GetByTokenID(_ context.Context, tokenID string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.TokenID == tokenID {
			cloned := *ticket
			return &cloned, nil
		}
	}
	return nil, domain.ErrTicketNotFound
}

func (r *fakeTicketRepo) GetByQRHash(_ context.Context, qrHash string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.QRHash == qrHash {
			cloned := *ticket
			return &cloned, nil
		}
	}
	return nil, domain.ErrTicketNotFound
}

func (r *fakeTicketRepo) UpdateOwner(_ context.Context, tokenID, ownerWallet string, status domain.TicketStatus) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.TokenID == tokenID {
			ticket.OwnerWallet = ownerWallet
			ticket.Status = status
			ticket.UpdatedAt = time.Now()
			cloned := *ticket
			return &cloned, nil
		}
	}
	return nil, domain.ErrTicketNotFound
}

func (r *fakeTicketRepo) UpdateStatus(_ context.Context, tokenID string, status domain.TicketStatus) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.TokenID == tokenID {
			ticket.Status = status
			ticket.UpdatedAt = time.Now()
			cloned := *ticket
			return &cloned, nil
		}
	}
	return nil, domain.ErrTicketNotFound
}

func (r *fakeTicketRepo) ConfirmCheckin(_ context.Context, ticketID, staffID string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[ticketID]
	if !ok {
		return false, domain.ErrTicketNotFound
	}
	if ticket.IsCheckedIn {
		return false, nil
	}
	ticket.IsCheckedIn = true
	ticket.CheckedInAt = &at
	ticket.CheckedInBy = &staffID
	ticket.UpdatedAt = time.Now()
	return true, nil
}

func (r *fakeTicketRepo) List(_ context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Ticket
	for _, ticket := range r.tickets {
		if filter.EventID != nil && ticket.EventID != *filter.EventID {
			continue
		}
		if filter.OwnerWallet != nil && ticket.OwnerWallet != *filter.OwnerWallet {
			continue
		}
		if len(filter.Statuses) > 0 {
			matched := false
			for _, status := range filter.Statuses {
				if ticket.Status == status {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		result = append(result, *ticket)
	}
	return result, nil
}

type fakeTransactionRepo struct {
	mu           sync.Mutex
	transactions []domain.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{}
}

func (r *fakeTransactionRepo) Create(_ context.Context, txn *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn.ID = uuid.NewString()
	txn.CreatedAt = time.Now()
	r.transactions = append(r.transactions, *txn)
	return nil
}

func (r *fakeTransactionRepo) ListByTicket(_ context.Context, ticketID string) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Transaction
	for _, txn := range r.transactions {
		if txn.TicketID == ticketID {
			result = append(result, txn)
		}
	}
	return result, nil
}

type fakeCheckinLogRepo struct {
	mu   sync.Mutex
	logs []domain.CheckinLog
}

func newFakeCheckinLogRepo() *fakeCheckinLogRepo {
	return &fakeCheckinLogRepo{}
}

func (r *fakeCheckinLogRepo) Create(_ context.Context, log *domain.CheckinLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.ID = uuid.NewString()
	log.CreatedAt = time.Now()
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeCheckinLogRepo) ListByEvent(_ context.Context, eventID string, limit, offset int) ([]domain.CheckinLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []domain.CheckinLog
	for _, log := range r.logs {
		if log.EventID == eventID {
			matched = append(matched, log)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeCheckinLogRepo) CountByEvent(_ context.Context, eventID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, log := range r.logs {
		if log.EventID == eventID {
			count++
		}
	}
	return count, nil
}

// fakeTxManager runs the callback directly; the fakes already apply each
// mutation atomically under their own locks.
type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeVerifier struct {
	err error
}

func (v fakeVerifier) VerifyTransaction(_ context.Context, _ string) error {
	return v.err
}
