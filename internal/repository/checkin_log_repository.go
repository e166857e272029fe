package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokengate/ticketing-service/internal/domain"
)

// CheckinLogRepository stores the append-only admission trail.
type CheckinLogRepository interface {
	Create(ctx context.Context, log *domain.CheckinLog) error
	ListByEvent(ctx context.Context, eventID string, limit, offset int) ([]domain.CheckinLog, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
}

type checkinLogRepository struct {
	pool *pgxpool.Pool
}

// NewCheckinLogRepository builds repository.
func NewCheckinLogRepository(pool *pgxpool.Pool) CheckinLogRepository {
	return &checkinLogRepository{pool: pool}
}

func (r *checkinLogRepository) Create(ctx context.Context, log *domain.CheckinLog) error {
	const query = `
        INSERT INTO checkin_logs (ticket_id, event_id, scanned_by, device_info, location_info)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return queryEngine(ctx, r.pool).QueryRow(ctx, query,
		log.TicketID,
		log.EventID,
		log.ScannedBy,
		log.DeviceInfo,
		log.LocationInfo,
	).Scan(&log.ID, &log.CreatedAt)
}

func (r *checkinLogRepository) ListByEvent(ctx context.Context, eventID string, limit, offset int) ([]domain.CheckinLog, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT id, ticket_id, event_id, scanned_by, device_info, location_info, created_at
        FROM checkin_logs WHERE event_id=$1 ORDER BY created_at DESC
        LIMIT ` + itoa(limit) + ` OFFSET ` + itoa(offset)
	rows, err := queryEngine(ctx, r.pool).Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CheckinLog
	for rows.Next() {
		var log domain.CheckinLog
		if err := rows.Scan(
			&log.ID,
			&log.TicketID,
			&log.EventID,
			&log.ScannedBy,
			&log.DeviceInfo,
			&log.LocationInfo,
			&log.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, log)
	}
	return result, rows.Err()
}

func (r *checkinLogRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	const query = `SELECT COUNT(*) FROM checkin_logs WHERE event_id=$1`
	var count int
	if err := queryEngine(ctx, r.pool).QueryRow(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
