package port

import (
	"context"

	"github.com/google/uuid"

	"peak-placements/internal/core/domain"
)

// PlacementRepository defines the persistence layer for the scheduling
// core. It is an outbound port in hexagonal architecture. The placements
// table is the only shared mutable resource; implementations must make
// SchedulePlacement a single conditional update so "first committer wins"
// holds at the row level.
type PlacementRepository interface {
	// GetPlacement returns a placement by id, or (nil, nil) when absent.
	GetPlacement(ctx context.Context, id uuid.UUID) (*domain.Placement, error)

	// ListScheduledBetween returns the (date, publication, type)
	// projection of every placement whose scheduled date falls in the
	// closed range [start, end].
	ListScheduledBetween(ctx context.Context, start, end domain.Date) ([]domain.ScheduledSlot, error)

	// CountScheduled returns the live number of placements already
	// scheduled for one (date, publication, type) slot. Both schedulers
	// enforce quotas through this single primitive so the enforced number
	// can never diverge from the one the capacity reader derives.
	CountScheduled(ctx context.Context, date domain.Date, pub domain.Publication, t domain.PlacementType) (int, error)

	// SchedulePlacement sets the scheduled date only if it is still
	// unset: UPDATE ... WHERE id = $1 AND scheduled_date IS NULL. It
	// reports whether the row was claimed; false means another writer
	// committed first or the placement does not exist.
	SchedulePlacement(ctx context.Context, id uuid.UUID, date domain.Date) (bool, error)

	// ForceSchedulePlacement sets the scheduled date unconditionally.
	// Used by the admin bulk path, which does not race with itself within
	// a request. It reports whether the row exists.
	ForceSchedulePlacement(ctx context.Context, id uuid.UUID, date domain.Date) (bool, error)

	// UnschedulePlacement clears the scheduled date. It reports whether
	// the row exists.
	UnschedulePlacement(ctx context.Context, id uuid.UUID) (bool, error)
}
