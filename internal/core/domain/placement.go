package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlacementType classifies an ad placement. The set is closed: every
// placement carries exactly one of these, and the capacity policy keys its
// daily quotas by type.
type PlacementType string

const (
	TypePrimary    PlacementType = "primary"
	TypeSecondary  PlacementType = "secondary"
	TypePeakPicks  PlacementType = "peak_picks"
	TypeBeehiiv    PlacementType = "beehiiv"
	TypeSmartLinks PlacementType = "smart_links"
	TypeBLS        PlacementType = "bls"
	TypePodcastAd  PlacementType = "podcast_ad"
)

// PlacementTypes returns the closed set of types in canonical order.
func PlacementTypes() []PlacementType {
	return []PlacementType{
		TypePrimary,
		TypeSecondary,
		TypePeakPicks,
		TypeBeehiiv,
		TypeSmartLinks,
		TypeBLS,
		TypePodcastAd,
	}
}

// Valid reports whether t is a known placement type.
func (t PlacementType) Valid() bool {
	switch t {
	case TypePrimary, TypeSecondary, TypePeakPicks, TypeBeehiiv, TypeSmartLinks, TypeBLS, TypePodcastAd:
		return true
	}
	return false
}

// Publication identifies a distribution channel. Quotas are independent
// per publication: a type capped at N per day on one publication has a
// separate N on every other.
type Publication string

const (
	PubThePeak      Publication = "The Peak"
	PubPeakMoney    Publication = "Peak Money"
	PubDailyPodcast Publication = "Peak Daily Podcast"
)

// Publications returns the closed set of publications in canonical order.
func Publications() []Publication {
	return []Publication{PubThePeak, PubPeakMoney, PubDailyPodcast}
}

// Valid reports whether p is a known publication.
func (p Publication) Valid() bool {
	switch p {
	case PubThePeak, PubPeakMoney, PubDailyPodcast:
		return true
	}
	return false
}

// Placement is the schedulable unit. ScheduledDate is nil until a
// scheduling mutation claims a date; once set it is only changed by an
// explicit reschedule, never by the assignment paths here.
type Placement struct {
	ID            uuid.UUID
	CampaignID    uuid.UUID
	Type          PlacementType
	Publication   Publication
	Status        string // draft, briefed, approved, sent
	ScheduledDate *Date
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ScheduledSlot is the projection of a scheduled placement used by
// capacity aggregation: just the coordinates that consume quota.
type ScheduledSlot struct {
	Date        Date
	Publication Publication
	Type        PlacementType
}

// Campaign owns placements. The scheduling core only needs its identity;
// the rest of the fields exist for the surrounding portal.
type Campaign struct {
	ID        uuid.UUID
	Name      string
	Status    string // active, paused, ended
	CreatedAt time.Time
	UpdatedAt time.Time
}
