package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"peak-placements/internal/core/domain"
	"peak-placements/internal/core/port"
)

// PlacementRepository implements port.PlacementRepository using pgxpool
// for PostgreSQL. scheduled_date is stored as fixed-width YYYY-MM-DD
// text, so range predicates compare lexically, which matches
// chronological order.
type PlacementRepository struct {
	pool *pgxpool.Pool
}

// NewPlacementRepository returns a new repository instance.
func NewPlacementRepository(pool *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{pool: pool}
}

// GetPlacement returns a placement by id, or (nil, nil) when absent.
func (r *PlacementRepository) GetPlacement(ctx context.Context, id uuid.UUID) (*domain.Placement, error) {
	var (
		p             domain.Placement
		scheduledDate *string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, campaign_id, type, publication, status, scheduled_date, created_at, updated_at
		   FROM placements WHERE id = $1`, id).
		Scan(&p.ID, &p.CampaignID, &p.Type, &p.Publication, &p.Status, &scheduledDate, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if scheduledDate != nil {
		d := domain.Date(*scheduledDate)
		p.ScheduledDate = &d
	}
	return &p, nil
}

// ListScheduledBetween returns the scheduling projection of every
// placement whose date falls in the closed range [start, end].
func (r *PlacementRepository) ListScheduledBetween(ctx context.Context, start, end domain.Date) ([]domain.ScheduledSlot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT scheduled_date, publication, type
		   FROM placements
		  WHERE scheduled_date >= $1 AND scheduled_date <= $2`,
		start.String(), end.String())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScheduledSlot, error) {
		var s domain.ScheduledSlot
		err := row.Scan(&s.Date, &s.Publication, &s.Type)
		return s, err
	})
}

// CountScheduled returns live usage for one (date, publication, type)
// slot.
func (r *PlacementRepository) CountScheduled(ctx context.Context, date domain.Date, pub domain.Publication, t domain.PlacementType) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM placements
		  WHERE scheduled_date = $1 AND publication = $2 AND type = $3`,
		date.String(), pub, t).Scan(&n)
	return n, err
}

// SchedulePlacement claims the date only if it is still unset. The NULL
// guard in the WHERE clause is the sole concurrency-safety mechanism:
// when two writers race, at most one update matches and the other sees
// zero affected rows.
func (r *PlacementRepository) SchedulePlacement(ctx context.Context, id uuid.UUID, date domain.Date) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE placements SET scheduled_date = $2, updated_at = now()
		  WHERE id = $1 AND scheduled_date IS NULL`,
		id, date.String())
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ForceSchedulePlacement sets the date unconditionally (admin bulk path).
func (r *PlacementRepository) ForceSchedulePlacement(ctx context.Context, id uuid.UUID, date domain.Date) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE placements SET scheduled_date = $2, updated_at = now() WHERE id = $1`,
		id, date.String())
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// UnschedulePlacement clears the date.
func (r *PlacementRepository) UnschedulePlacement(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE placements SET scheduled_date = NULL, updated_at = now() WHERE id = $1`,
		id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

var _ port.PlacementRepository = (*PlacementRepository)(nil)
