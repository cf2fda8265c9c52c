package timeutil

import (
	"fmt"
	"time"

	"github.com/innerascend/ascend/internal/constants"
	"github.com/innerascend/ascend/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ParseDay parses a calendar-day string (YYYY-MM-DD) as midnight in the given
// location. Calendar dates must never go through generic ISO parsing: that
// assumes UTC and can shift the value onto the previous local day.
func ParseDay(day string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", day, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// StartOfDay truncates t to local midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from a to b
// (midnight-to-midnight, not wall-clock hours). Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	a = StartOfDay(a)
	b = StartOfDay(b.In(a.Location()))
	return int(b.Sub(a).Hours() / 24)
}

// FormatDay renders a time as a calendar-day string.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// RelativeDay formats a day string relative to now: "Today", "Tomorrow",
// "Yesterday", the weekday name within a week, otherwise "Jan 2".
func RelativeDay(day string, now time.Time) string {
	loc := now.Location()
	t, err := ParseDay(day, loc)
	if err != nil {
		return day
	}
	switch d := DaysBetween(now, t); {
	case d == 0:
		return "Today"
	case d == 1:
		return "Tomorrow"
	case d == -1:
		return "Yesterday"
	case d > 1 && d < 7:
		return t.Weekday().String()
	default:
		return t.Format("Jan 2")
	}
}

// DayRange is an inclusive span of calendar days.
type DayRange struct {
	Start time.Time // midnight of the first day
	End   time.Time // midnight of the last day
}

// Contains reports whether the calendar day t falls within the range.
func (r DayRange) Contains(t time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// ThisWeekend returns Saturday through Sunday of the current week. When now
// already is Saturday or Sunday the range still covers that weekend.
func ThisWeekend(now time.Time) DayRange {
	today := StartOfDay(now)
	daysUntilSat := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
	if today.Weekday() == time.Sunday {
		// Sunday belongs to the weekend that started yesterday.
		daysUntilSat = -1
	}
	sat := today.AddDate(0, 0, daysUntilSat)
	return DayRange{Start: sat, End: sat.AddDate(0, 0, 1)}
}

// NextWeek returns Monday through Sunday of the following week.
func NextWeek(now time.Time) DayRange {
	today := StartOfDay(now)
	daysUntilMon := (int(time.Monday) - int(today.Weekday()) + 7) % 7
	if daysUntilMon == 0 {
		daysUntilMon = 7
	}
	mon := today.AddDate(0, 0, daysUntilMon)
	return DayRange{Start: mon, End: mon.AddDate(0, 0, 6)}
}

// Bucket classifies an HH:MM time string into a time-of-day bucket.
// Returns false when the string does not parse.
func Bucket(timeStr string) (models.TimeOfDay, bool) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return "", false
	}
	switch h := t.Hour(); {
	case h >= constants.EveningStartHour || h < constants.MorningStartHour:
		return models.Evening, true
	case h >= constants.AfternoonStartHour:
		return models.Afternoon, true
	default:
		return models.Morning, true
	}
}

// ValidateDay checks that a string is a well-formed calendar day.
func ValidateDay(day string) bool {
	_, err := time.Parse(constants.DateFormat, day)
	return err == nil
}

// ValidateTime checks that a string is a well-formed HH:MM time.
func ValidateTime(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}
