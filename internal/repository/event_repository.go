package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokengate/ticketing-service/internal/domain"
)

// EventFilter captures listing parameters.
type EventFilter struct {
	OrganizerID   *string
	PublishedOnly bool
	Limit         int
	Offset        int
}

// EventRepository encapsulates event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter EventFilter) ([]domain.Event, error)
	SetPublished(ctx context.Context, id string, published bool) error
	IncrementSold(ctx context.Context, id string) error
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

const eventColumns = `id, organizer_id, name, description, venue, start_date, end_date, is_published, total_sold, created_at, updated_at`

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (organizer_id, name, description, venue, start_date, end_date, is_published)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, total_sold, created_at, updated_at`
	return queryEngine(ctx, r.pool).QueryRow(ctx, query,
		event.OrganizerID,
		event.Name,
		event.Description,
		event.Venue,
		event.StartDate,
		event.EndDate,
		event.IsPublished,
	).Scan(&event.ID, &event.TotalSold, &event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id=$1`
	var event domain.Event
	err := queryEngine(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.OrganizerID,
		&event.Name,
		&event.Description,
		&event.Venue,
		&event.StartDate,
		&event.EndDate,
		&event.IsPublished,
		&event.TotalSold,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, filter EventFilter) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
	args := []any{}
	if filter.OrganizerID != nil {
		args = append(args, *filter.OrganizerID)
		query += ` AND organizer_id=$1`
	}
	if filter.PublishedOnly {
		query += ` AND is_published=TRUE`
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += ` ORDER BY start_date ASC LIMIT ` + itoa(limit) + ` OFFSET ` + itoa(offset)

	rows, err := queryEngine(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.OrganizerID,
			&event.Name,
			&event.Description,
			&event.Venue,
			&event.StartDate,
			&event.EndDate,
			&event.IsPublished,
			&event.TotalSold,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, rows.Err()
}

func (r *eventRepository) SetPublished(ctx context.Context, id string, published bool) error {
	const query = `UPDATE events SET is_published=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := queryEngine(ctx, r.pool).Exec(ctx, query, published, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// IncrementSold bumps the event-wide sold counter with a single atomic
// update; read-modify-write would lose updates under concurrent minting.
func (r *eventRepository) IncrementSold(ctx context.Context, id string) error {
	const query = `UPDATE events SET total_sold = total_sold + 1, updated_at=NOW() WHERE id=$1`
	cmd, err := queryEngine(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
