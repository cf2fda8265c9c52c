package models

import "time"

type PracticeKind string

const (
	PracticeMeditation PracticeKind = "meditation"
	PracticeExercise   PracticeKind = "exercise"
)

// PracticeRecord is one day's practice tally. At most one row exists per
// calendar day; recording a second practice the same day increments Count.
type PracticeRecord struct {
	ID        string       `json:"id"`
	Day       string       `json:"practice_date"` // YYYY-MM-DD format
	Kind      PracticeKind `json:"kind"`
	Count     int          `json:"practices_completed"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// StreakStats is derived view state, recomputed from the full practice
// history on every read. Never persisted.
type StreakStats struct {
	CurrentStreak  int `json:"current_streak"`
	LongestStreak  int `json:"longest_streak"`
	TotalPractices int `json:"total_practices"`
}

type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodOkay     Mood = "okay"
	MoodLow      Mood = "low"
	MoodStruggle Mood = "struggling"
)

// CheckIn is an emotional check-in for a day.
type CheckIn struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Mood      Mood      `json:"mood"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// JournalEntry is a free-form journal record.
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
