package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokengate/ticketing-service/internal/domain"
)

// TemplateRepository encapsulates ticket-template persistence.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.TicketTemplate) error
	GetByID(ctx context.Context, id string) (*domain.TicketTemplate, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.TicketTemplate, error)
	// IncrementSoldIfAvailable atomically bumps sold_count while it is
	// below total_supply, reporting whether a row changed. The guard lives
	// in the UPDATE itself so concurrent mints cannot oversell.
	IncrementSoldIfAvailable(ctx context.Context, id string) (bool, error)
}

type templateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository instantiates repository.
func NewTemplateRepository(pool *pgxpool.Pool) TemplateRepository {
	return &templateRepository{pool: pool}
}

const templateColumns = `id, event_id, name, price::text, total_supply, sold_count, tier_rank, is_soulbound, sale_start_at, sale_end_at, created_at, updated_at`

func (r *templateRepository) Create(ctx context.Context, template *domain.TicketTemplate) error {
	const query = `
        INSERT INTO ticket_templates (event_id, name, price, total_supply, tier_rank, is_soulbound, sale_start_at, sale_end_at)
        VALUES ($1,$2,$3::numeric,$4,$5,$6,$7,$8)
        RETURNING id, sold_count, created_at, updated_at`
	return queryEngine(ctx, r.pool).QueryRow(ctx, query,
		template.EventID,
		template.Name,
		template.Price,
		template.TotalSupply,
		template.TierRank,
		template.IsSoulbound,
		template.SaleStartAt,
		template.SaleEndAt,
	).Scan(&template.ID, &template.SoldCount, &template.CreatedAt, &template.UpdatedAt)
}

func (r *templateRepository) GetByID(ctx context.Context, id string) (*domain.TicketTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM ticket_templates WHERE id=$1`
	var template domain.TicketTemplate
	err := queryEngine(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&template.ID,
		&template.EventID,
		&template.Name,
		&template.Price,
		&template.TotalSupply,
		&template.SoldCount,
		&template.TierRank,
		&template.IsSoulbound,
		&template.SaleStartAt,
		&template.SaleEndAt,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.TicketTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM ticket_templates WHERE event_id=$1 ORDER BY tier_rank ASC`
	rows, err := queryEngine(ctx, r.pool).Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TicketTemplate
	for rows.Next() {
		var template domain.TicketTemplate
		if err := rows.Scan(
			&template.ID,
			&template.EventID,
			&template.Name,
			&template.Price,
			&template.TotalSupply,
			&template.SoldCount,
			&template.TierRank,
			&template.IsSoulbound,
			&template.SaleStartAt,
			&template.SaleEndAt,
			&template.CreatedAt,
			&template.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, template)
	}
	return result, rows.Err()
}

func (r *templateRepository) IncrementSoldIfAvailable(ctx context.Context, id string) (bool, error) {
	const query = `
        UPDATE ticket_templates
        SET sold_count = sold_count + 1, updated_at = NOW()
        WHERE id = $1 AND sold_count < total_supply`
	cmd, err := queryEngine(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
