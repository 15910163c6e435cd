package port

import (
	"context"

	"github.com/google/uuid"

	"peak-placements/internal/core/domain"
)

// SchedulingService defines the business operations of the scheduling
// core. This is the primary inbound port; the HTTP adapter depends on it
// and mock implementations can be generated from it for testing.
type SchedulingService interface {
	// GetCapacity computes per-day, per-publication, per-type usage and
	// remaining availability for every weekday in [start, end]. It is a
	// read-only snapshot: nothing is locked or reserved, and every
	// consumer must re-validate before writing.
	GetCapacity(ctx context.Context, start, end domain.Date) (*domain.DateRangeCapacity, error)

	// AssignDate schedules a single placement onto date. It re-validates
	// the weekday rule and live quota, then commits with an atomic
	// set-only-if-unset update. Retrying with the date already stored is
	// a no-op success; a different stored date fails with
	// AlreadyScheduledError. Losing the commit race surfaces as
	// ConcurrentlyScheduledError so the UI can re-fetch availability.
	AssignDate(ctx context.Context, placementID uuid.UUID, date domain.Date) error

	// UnassignDate clears a placement's scheduled date. A null-date
	// request bypasses all quota logic.
	UnassignDate(ctx context.Context, placementID uuid.UUID) error

	// BulkSchedule validates and commits each assignment independently
	// and sequentially. One assignment's failure never aborts or rolls
	// back the others; the per-row outcome is returned as a value.
	BulkSchedule(ctx context.Context, assignments []Assignment) (*BulkResult, error)
}

// Assignment is one row of an admin bulk scheduling request. The date
// arrives as a raw string so malformed input fails per-row instead of
// rejecting the whole batch.
type Assignment struct {
	CampaignID    uuid.UUID `json:"campaignId"`
	PlacementID   uuid.UUID `json:"placementId"`
	ScheduledDate string    `json:"scheduledDate"`
}

// AssignmentError reports why one bulk assignment was rejected.
type AssignmentError struct {
	PlacementID uuid.UUID `json:"placementId"`
	Error       string    `json:"error"`
}

// BulkResult is the full per-row outcome of a bulk request. Success is
// true only when every assignment committed.
type BulkResult struct {
	Success   bool              `json:"success"`
	Scheduled int               `json:"scheduled"`
	Errors    []AssignmentError `json:"errors"`
}
