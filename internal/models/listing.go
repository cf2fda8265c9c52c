package models

import "time"

// Event is a community happening with a date and start time.
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	Date         string    `json:"date"` // YYYY-MM-DD format
	Time         string    `json:"time"` // HH:MM format
	LocationName string    `json:"location_name,omitempty"`
	PriceRange   string    `json:"price_range,omitempty"`
	EcoConscious bool      `json:"eco_conscious"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// Place is a fixed community location (cafe, studio, beach spot).
type Place struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	LocationName string    `json:"location_name,omitempty"`
	PriceRange   string    `json:"price_range,omitempty"`
	EcoConscious bool      `json:"eco_conscious"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// Service is an offering by a community member (massage, surf lessons).
type Service struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	LocationName string    `json:"location_name,omitempty"`
	PriceRange   string    `json:"price_range,omitempty"`
	EcoConscious bool      `json:"eco_conscious"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

type DateRange string

const (
	RangeAll         DateRange = "all"
	RangeToday       DateRange = "today"
	RangeThisWeekend DateRange = "this_weekend"
	RangeNextWeek    DateRange = "next_week"
)

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// FilterState is the per-screen listing filter. Ephemeral, never persisted.
// The zero value means "no filtering".
type FilterState struct {
	Categories   []string    `json:"categories,omitempty"`
	DateRange    DateRange   `json:"date_range,omitempty"`
	TimesOfDay   []TimeOfDay `json:"times_of_day,omitempty"`
	EcoConscious bool        `json:"eco_conscious,omitempty"`
	Verified     bool        `json:"verified,omitempty"`
	PriceRanges  []string    `json:"price_ranges,omitempty"`
}

type RSVPStatus string

const (
	RSVPGoing      RSVPStatus = "going"
	RSVPInterested RSVPStatus = "interested"
	RSVPMaybe      RSVPStatus = "maybe"
	RSVPCantGo     RSVPStatus = "cant_go"
)

// RSVP is the attendance intent for one event. One row per event; changing
// your mind updates the row.
type RSVP struct {
	ID        string     `json:"id"`
	EventID   string     `json:"event_id"`
	Status    RSVPStatus `json:"status"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type ItemType string

const (
	ItemEvent   ItemType = "event"
	ItemPlace   ItemType = "place"
	ItemService ItemType = "service"
)

// Favorite is a bookmark against an event, place, or service.
type Favorite struct {
	ID        string    `json:"id"`
	ItemType  ItemType  `json:"item_type"`
	ItemID    string    `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ReportReason string

const (
	ReportSpam       ReportReason = "spam"
	ReportInaccurate ReportReason = "inaccurate"
	ReportClosed     ReportReason = "closed"
	ReportOffensive  ReportReason = "offensive"
	ReportOther      ReportReason = "other"
)

// Report flags a listing for moderation.
type Report struct {
	ID        string       `json:"id"`
	ItemType  ItemType     `json:"item_type"`
	ItemID    string       `json:"item_id"`
	Reason    ReportReason `json:"reason"`
	Details   string       `json:"details,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
