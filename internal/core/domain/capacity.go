package domain

// Unlimited marks a placement type with no daily ceiling. Uncapped types
// never appear in slot capacities and bypass quota checks entirely.
const Unlimited = -1

// CapacityPolicy maps a placement type to its daily quota per publication.
// It is an injected value, not a global: the capacity reader and both
// schedulers must be handed the same policy so the number shown to users
// and the number enforced at commit time can never drift.
type CapacityPolicy map[PlacementType]int

// DefaultCapacityPolicy is the production quota table. Primary and podcast
// slots are exclusive, secondary and picks allow a few per day, and the
// remaining types are volume products with no ceiling.
func DefaultCapacityPolicy() CapacityPolicy {
	return CapacityPolicy{
		TypePrimary:    1,
		TypeSecondary:  2,
		TypePeakPicks:  3,
		TypeBeehiiv:    Unlimited,
		TypeSmartLinks: Unlimited,
		TypeBLS:        Unlimited,
		TypePodcastAd:  1,
	}
}

// QuotaFor returns the daily per-publication quota for t. Types absent
// from the policy are treated as unlimited.
func (p CapacityPolicy) QuotaFor(t PlacementType) int {
	q, ok := p[t]
	if !ok {
		return Unlimited
	}
	return q
}

// IsCapped reports whether t has a finite daily quota.
func (p CapacityPolicy) IsCapped(t PlacementType) bool {
	return p.QuotaFor(t) != Unlimited
}

// CappedTypes returns the capped subset of the closed type set in
// canonical order, so emitted slot capacities are stably ordered.
func (p CapacityPolicy) CappedTypes() []PlacementType {
	var capped []PlacementType
	for _, t := range PlacementTypes() {
		if p.IsCapped(t) {
			capped = append(capped, t)
		}
	}
	return capped
}

// SlotCapacity reports usage for one (publication, capped type) pair on a
// single day. Available may be zero or negative when the slot is full or
// oversubscribed; callers treat <= 0 as full, never as an error.
type SlotCapacity struct {
	Publication Publication   `json:"publication"`
	Type        PlacementType `json:"type"`
	Used        int           `json:"used"`
	Limit       int           `json:"limit"`
	Available   int           `json:"available"`
}

// DayCapacity holds every slot capacity for one weekday.
type DayCapacity struct {
	Date  Date           `json:"date"`
	Slots []SlotCapacity `json:"slots"`
}

// DateRangeCapacity is the availability snapshot for a date window: one
// DayCapacity per weekday in [StartDate, EndDate], weekends excluded. It
// is always stale by the time a write happens; mutation paths re-validate
// against live state.
type DateRangeCapacity struct {
	StartDate Date          `json:"startDate"`
	EndDate   Date          `json:"endDate"`
	Days      []DayCapacity `json:"days"`
}

// Usage is the three-level count of scheduled placements:
// date -> publication -> type -> count.
type Usage map[Date]map[Publication]map[PlacementType]int

// BuildUsage folds scheduled slots into a Usage count.
func BuildUsage(slots []ScheduledSlot) Usage {
	u := make(Usage)
	for _, s := range slots {
		byPub, ok := u[s.Date]
		if !ok {
			byPub = make(map[Publication]map[PlacementType]int)
			u[s.Date] = byPub
		}
		byType, ok := byPub[s.Publication]
		if !ok {
			byType = make(map[PlacementType]int)
			byPub[s.Publication] = byType
		}
		byType[s.Type]++
	}
	return u
}

// Count returns the usage for one (date, publication, type) coordinate,
// defaulting to zero.
func (u Usage) Count(d Date, pub Publication, t PlacementType) int {
	return u[d][pub][t]
}

// BuildDayCapacity emits a SlotCapacity for every (publication, capped
// type) pair on day d. Uncapped types have no ceiling to report and are
// omitted.
func BuildDayCapacity(policy CapacityPolicy, d Date, usage Usage) DayCapacity {
	capped := policy.CappedTypes()
	day := DayCapacity{
		Date:  d,
		Slots: make([]SlotCapacity, 0, len(capped)*len(Publications())),
	}
	for _, pub := range Publications() {
		for _, t := range capped {
			used := usage.Count(d, pub, t)
			limit := policy.QuotaFor(t)
			day.Slots = append(day.Slots, SlotCapacity{
				Publication: pub,
				Type:        t,
				Used:        used,
				Limit:       limit,
				Available:   limit - used,
			})
		}
	}
	return day
}

// BuildRangeCapacity assembles the full availability snapshot for
// [start, end] from the given scheduled slots. Weekends never appear.
func BuildRangeCapacity(policy CapacityPolicy, start, end Date, slots []ScheduledSlot) DateRangeCapacity {
	usage := BuildUsage(slots)
	weekdays := WeekdaysBetween(start, end)
	rc := DateRangeCapacity{
		StartDate: start,
		EndDate:   end,
		Days:      make([]DayCapacity, 0, len(weekdays)),
	}
	for _, d := range weekdays {
		rc.Days = append(rc.Days, BuildDayCapacity(policy, d, usage))
	}
	return rc
}
