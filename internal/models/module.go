package models

import "time"

// ModuleDef is one bounded multi-day unit of the curriculum. Modules unlock
// sequentially by SequenceOrder.
type ModuleDef struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	SequenceOrder int    `json:"sequence_order"` // unique, >= 1
	DurationDays  int    `json:"duration_days"`  // >= 1
}

// DayProgressRecord marks one curriculum day as completed. Immutable once
// created; there is no "uncomplete".
type DayProgressRecord struct {
	ID          string    `json:"id"`
	ModuleID    string    `json:"module_id"`
	DayNumber   int       `json:"day_number"` // 1..DurationDays
	CompletedAt time.Time `json:"completed_at"`
}

// ModuleProgressView is derived per-module view state.
type ModuleProgressView struct {
	ModuleID      string     `json:"module_id"`
	DaysCompleted int        `json:"days_completed"`
	IsCompleted   bool       `json:"is_completed"`
	IsUnlocked    bool       `json:"is_unlocked"`
	IsActive      bool       `json:"is_active"`
	CurrentDay    int        `json:"current_day"`
	NextDayUnlock *time.Time `json:"next_day_unlock,omitempty"`
}

type DayStatus string

const (
	DayLocked    DayStatus = "locked"
	DayUnlocked  DayStatus = "unlocked"
	DayCompleted DayStatus = "completed"
)

// DayView is the per-day unlock decision for the day navigator.
type DayView struct {
	DayNumber      int       `json:"day_number"`
	Status         DayStatus `json:"status"`
	HoursRemaining int       `json:"hours_remaining,omitempty"` // display only, 0 unless time-locked
}
