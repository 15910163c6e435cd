package port

import (
	"errors"
	"fmt"

	"peak-placements/internal/core/domain"
)

// Scheduling failures are data for the caller, not fatal conditions: the
// portal renders each one differently, so every class is distinct.
var (
	// ErrNotFound means the referenced placement does not exist.
	ErrNotFound = errors.New("placement not found")

	// ErrInvalidWeekday means the target date falls on a weekend. It is
	// checked before any quota logic so callers can render the right
	// message.
	ErrInvalidWeekday = errors.New("date falls on a weekend")

	// ErrPersistenceFailure means the update affected zero rows for a
	// reason other than the known conflict classes. Defensive catch-all.
	ErrPersistenceFailure = errors.New("placement update affected no rows")
)

// AlreadyScheduledError means the placement already holds a different
// date than requested. The assignment path never overwrites an existing
// date; rescheduling is a separate operation.
type AlreadyScheduledError struct {
	Existing domain.Date
}

func (e *AlreadyScheduledError) Error() string {
	return fmt.Sprintf("placement already scheduled for %s", e.Existing)
}

// ConcurrentlyScheduledError means the atomic commit lost a race to
// another writer between the quota check and the write. The stored date
// is the winner's.
type ConcurrentlyScheduledError struct {
	Existing domain.Date
}

func (e *ConcurrentlyScheduledError) Error() string {
	return fmt.Sprintf("placement was concurrently scheduled for %s", e.Existing)
}

// CapacityExceededError means the live recount shows the slot full. Used
// and Limit are carried for caller display.
type CapacityExceededError struct {
	Date        domain.Date
	Publication domain.Publication
	Type        domain.PlacementType
	Used        int
	Limit       int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("no %s capacity left for %s on %s (%d/%d used)",
		e.Type, e.Publication, e.Date, e.Used, e.Limit)
}
