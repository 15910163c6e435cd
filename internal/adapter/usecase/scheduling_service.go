package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"peak-placements/internal/core/domain"
	"peak-placements/internal/core/port"
)

// SchedulingService implements the scheduling core: the capacity reader,
// the onboarding single-assignment path and the admin bulk path. It
// orchestrates the repository port against one injected capacity policy
// so the availability shown to users and the quota enforced at commit
// time always come from the same table.
type SchedulingService struct {
	repo   port.PlacementRepository
	policy domain.CapacityPolicy
}

// NewSchedulingService creates a service over the given repository and
// policy. Tests swap quotas by passing a different policy; nothing reads
// process state.
func NewSchedulingService(repo port.PlacementRepository, policy domain.CapacityPolicy) *SchedulingService {
	return &SchedulingService{repo: repo, policy: policy}
}

// GetCapacity returns the availability snapshot for [start, end]. The
// caller validates format, ordering and the maximum span; this method
// assumes valid ordered dates. It takes no locks and reserves nothing:
// the snapshot is stale the moment a concurrent write commits, which is
// why both mutation paths re-validate against live state.
func (s *SchedulingService) GetCapacity(ctx context.Context, start, end domain.Date) (*domain.DateRangeCapacity, error) {
	slots, err := s.repo.ListScheduledBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list scheduled placements: %w", err)
	}
	rc := domain.BuildRangeCapacity(s.policy, start, end, slots)
	return &rc, nil
}

// AssignDate schedules one placement during onboarding. Gates run in
// order and the first failure wins: existence, idempotent retry,
// no-overwrite, weekday, live quota, then the atomic set-only-if-unset
// commit. The quota count and the commit are separate statements, so two
// callers racing for the last slot of the same day can both pass the
// count; the conditional update guarantees at most one of them claims a
// given placement, and the loser is told exactly what happened.
func (s *SchedulingService) AssignDate(ctx context.Context, placementID uuid.UUID, date domain.Date) error {
	p, err := s.repo.GetPlacement(ctx, placementID)
	if err != nil {
		return fmt.Errorf("get placement: %w", err)
	}
	if p == nil {
		return port.ErrNotFound
	}

	if p.ScheduledDate != nil {
		// Retried requests land here with the same date; treat as done.
		if *p.ScheduledDate == date {
			return nil
		}
		return &port.AlreadyScheduledError{Existing: *p.ScheduledDate}
	}

	if !date.IsWeekday() {
		return port.ErrInvalidWeekday
	}

	if err := s.checkQuota(ctx, date, p.Publication, p.Type); err != nil {
		return err
	}

	claimed, err := s.repo.SchedulePlacement(ctx, placementID, date)
	if err != nil {
		return fmt.Errorf("schedule placement: %w", err)
	}
	if claimed {
		return nil
	}

	// Zero rows matched scheduled_date IS NULL: someone else committed
	// between our read and the update. Re-read to report which case.
	p, err = s.repo.GetPlacement(ctx, placementID)
	if err != nil {
		return fmt.Errorf("re-check placement after lost update: %w", err)
	}
	if p != nil && p.ScheduledDate != nil {
		if *p.ScheduledDate == date {
			return nil
		}
		return &port.ConcurrentlyScheduledError{Existing: *p.ScheduledDate}
	}
	return port.ErrPersistenceFailure
}

// UnassignDate clears a placement's date. A null-date request carries no
// quota implications, so only existence is checked.
func (s *SchedulingService) UnassignDate(ctx context.Context, placementID uuid.UUID) error {
	found, err := s.repo.UnschedulePlacement(ctx, placementID)
	if err != nil {
		return fmt.Errorf("unschedule placement: %w", err)
	}
	if !found {
		return port.ErrNotFound
	}
	return nil
}

// BulkSchedule commits each assignment independently and sequentially.
// This is a deliberate best-effort batch, not a transaction: an admin
// scheduling twelve placements across a grid gets eleven successes and
// one actionable error, never a full rollback. The update here is
// unconditional since the admin path does not race with itself within a
// request.
func (s *SchedulingService) BulkSchedule(ctx context.Context, assignments []port.Assignment) (*port.BulkResult, error) {
	res := &port.BulkResult{}
	for _, a := range assignments {
		if err := s.scheduleOne(ctx, a); err != nil {
			res.Errors = append(res.Errors, port.AssignmentError{
				PlacementID: a.PlacementID,
				Error:       err.Error(),
			})
			continue
		}
		res.Scheduled++
	}
	res.Success = len(res.Errors) == 0
	return res, nil
}

func (s *SchedulingService) scheduleOne(ctx context.Context, a port.Assignment) error {
	date, err := domain.ParseDate(a.ScheduledDate)
	if err != nil {
		return err
	}
	if !date.IsWeekday() {
		return port.ErrInvalidWeekday
	}

	p, err := s.repo.GetPlacement(ctx, a.PlacementID)
	if err != nil {
		return fmt.Errorf("get placement: %w", err)
	}
	if p == nil {
		return port.ErrNotFound
	}

	if err := s.checkQuota(ctx, date, p.Publication, p.Type); err != nil {
		return err
	}

	found, err := s.repo.ForceSchedulePlacement(ctx, a.PlacementID, date)
	if err != nil {
		return fmt.Errorf("schedule placement: %w", err)
	}
	if !found {
		return port.ErrPersistenceFailure
	}
	return nil
}

// checkQuota recounts live usage for one slot and compares it against the
// injected policy. Uncapped types bypass the count entirely. Both
// schedulers enforce through this one path so the enforced number matches
// the one the capacity reader reports.
func (s *SchedulingService) checkQuota(ctx context.Context, date domain.Date, pub domain.Publication, t domain.PlacementType) error {
	if !s.policy.IsCapped(t) {
		return nil
	}
	used, err := s.repo.CountScheduled(ctx, date, pub, t)
	if err != nil {
		return fmt.Errorf("count scheduled placements: %w", err)
	}
	limit := s.policy.QuotaFor(t)
	if used >= limit {
		return &port.CapacityExceededError{
			Date:        date,
			Publication: pub,
			Type:        t,
			Used:        used,
			Limit:       limit,
		}
	}
	return nil
}
