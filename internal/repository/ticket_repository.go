package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokengate/ticketing-service/internal/domain"
)

// TicketFilter captures listing parameters for tickets.
type TicketFilter struct {
	EventID     *string
	OwnerWallet *string
	Statuses    []domain.TicketStatus
	Limit       int
	Offset      int
}

// TicketRepository encapsulates ticket persistence. The qrHash→Ticket
// mapping it serves is the single source of truth for check-in state;
// callers must not cache it across requests.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByTokenID(ctx context.Context, tokenID string) (*domain.Ticket, error)
	GetByQRHash(ctx context.Context, qrHash string) (*domain.Ticket, error)
	UpdateOwner(ctx context.Context, tokenID, ownerWallet string, status domain.TicketStatus) (*domain.Ticket, error)
	UpdateStatus(ctx context.Context, tokenID string, status domain.TicketStatus) (*domain.Ticket, error)
	// ConfirmCheckin performs the single conditional write that closes the
	// double-scan race: it flips is_checked_in only while still false and
	// reports whether this call won. The result of the write is the sole
	// source of truth; no read happens in between.
	ConfirmCheckin(ctx context.Context, ticketID, staffID string, at time.Time) (bool, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, token_id, template_id, event_id, owner_wallet, original_owner, qr_hash, metadata_uri,
               status, is_checked_in, checked_in_at, checked_in_by, created_at, updated_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (token_id, template_id, event_id, owner_wallet, original_owner, qr_hash, metadata_uri, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, is_checked_in, created_at, updated_at`
	err := queryEngine(ctx, r.pool).QueryRow(ctx, query,
		ticket.TokenID,
		ticket.TemplateID,
		ticket.EventID,
		ticket.OwnerWallet,
		ticket.OriginalOwner,
		ticket.QRHash,
		ticket.MetadataURI,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.IsCheckedIn, &ticket.CreatedAt, &ticket.UpdatedAt)
	if isUniqueViolation(err, "tickets_token_id_key") {
		return domain.ErrDuplicateMint
	}
	if isUniqueViolation(err, "tickets_qr_hash_key") {
		return domain.ErrQRHashCollision
	}
	return err
}

func (r *ticketRepository) GetByTokenID(ctx context.Context, tokenID string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE token_id=$1`
	return r.fetchSingle(ctx, query, tokenID)
}

func (r *ticketRepository) GetByQRHash(ctx context.Context, qrHash string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE qr_hash=$1`
	return r.fetchSingle(ctx, query, qrHash)
}

func (r *ticketRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Ticket, error) {
	var ticket domain.Ticket
	err := queryEngine(ctx, r.pool).QueryRow(ctx, query, arg).Scan(
		&ticket.ID,
		&ticket.TokenID,
		&ticket.TemplateID,
		&ticket.EventID,
		&ticket.OwnerWallet,
		&ticket.OriginalOwner,
		&ticket.QRHash,
		&ticket.MetadataURI,
		&ticket.Status,
		&ticket.IsCheckedIn,
		&ticket.CheckedInAt,
		&ticket.CheckedInBy,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) UpdateOwner(ctx context.Context, tokenID, ownerWallet string, status domain.TicketStatus) (*domain.Ticket, error) {
	query := `
        UPDATE tickets SET owner_wallet=$1, status=$2, updated_at=NOW()
        WHERE token_id=$3
        RETURNING ` + ticketColumns
	return r.fetchUpdated(ctx, query, ownerWallet, status, tokenID)
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, tokenID string, status domain.TicketStatus) (*domain.Ticket, error) {
	query := `
        UPDATE tickets SET status=$1, updated_at=NOW()
        WHERE token_id=$2
        RETURNING ` + ticketColumns
	return r.fetchUpdated(ctx, query, status, tokenID)
}

func (r *ticketRepository) fetchUpdated(ctx context.Context, query string, args ...any) (*domain.Ticket, error) {
	var ticket domain.Ticket
	err := queryEngine(ctx, r.pool).QueryRow(ctx, query, args...).Scan(
		&ticket.ID,
		&ticket.TokenID,
		&ticket.TemplateID,
		&ticket.EventID,
		&ticket.OwnerWallet,
		&ticket.OriginalOwner,
		&ticket.QRHash,
		&ticket.MetadataURI,
		&ticket.Status,
		&ticket.IsCheckedIn,
		&ticket.CheckedInAt,
		&ticket.CheckedInBy,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) ConfirmCheckin(ctx context.Context, ticketID, staffID string, at time.Time) (bool, error) {
	const query = `
        UPDATE tickets
        SET is_checked_in = TRUE, checked_in_at = $1, checked_in_by = $2, updated_at = NOW()
        WHERE id = $3 AND is_checked_in = FALSE`
	cmd, err := queryEngine(ctx, r.pool).Exec(ctx, query, at, staffID, ticketID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	base := `SELECT ` + ticketColumns + ` FROM tickets`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.EventID != nil {
		args = append(args, *filter.EventID)
		clauses = append(clauses, fmt.Sprintf("event_id=$%d", len(args)))
	}
	if filter.OwnerWallet != nil {
		args = append(args, *filter.OwnerWallet)
		clauses = append(clauses, fmt.Sprintf("owner_wallet=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := queryEngine(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.TokenID,
			&ticket.TemplateID,
			&ticket.EventID,
			&ticket.OwnerWallet,
			&ticket.OriginalOwner,
			&ticket.QRHash,
			&ticket.MetadataURI,
			&ticket.Status,
			&ticket.IsCheckedIn,
			&ticket.CheckedInAt,
			&ticket.CheckedInBy,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
