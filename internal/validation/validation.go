// Package validation checks enum and format values at the store boundary.
// The compute packages assume rows are well-formed; everything entering the
// store goes through here first.
package validation

import (
	"fmt"

	"github.com/innerascend/ascend/internal/models"
	"github.com/innerascend/ascend/internal/timeutil"
)

func PracticeKind(k models.PracticeKind) error {
	switch k {
	case models.PracticeMeditation, models.PracticeExercise:
		return nil
	}
	return fmt.Errorf("invalid practice kind %q (expected meditation or exercise)", k)
}

func Mood(m models.Mood) error {
	switch m {
	case models.MoodGreat, models.MoodGood, models.MoodOkay, models.MoodLow, models.MoodStruggle:
		return nil
	}
	return fmt.Errorf("invalid mood %q", m)
}

func RSVPStatus(s models.RSVPStatus) error {
	switch s {
	case models.RSVPGoing, models.RSVPInterested, models.RSVPMaybe, models.RSVPCantGo:
		return nil
	}
	return fmt.Errorf("invalid RSVP status %q (expected going, interested, maybe, or cant_go)", s)
}

func ItemType(t models.ItemType) error {
	switch t {
	case models.ItemEvent, models.ItemPlace, models.ItemService:
		return nil
	}
	return fmt.Errorf("invalid item type %q (expected event, place, or service)", t)
}

func ReportReason(r models.ReportReason) error {
	switch r {
	case models.ReportSpam, models.ReportInaccurate, models.ReportClosed,
		models.ReportOffensive, models.ReportOther:
		return nil
	}
	return fmt.Errorf("invalid report reason %q", r)
}

func Day(day string) error {
	if !timeutil.ValidateDay(day) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", day)
	}
	return nil
}

func TimeOfDayStr(timeStr string) error {
	if !timeutil.ValidateTime(timeStr) {
		return fmt.Errorf("invalid time %q (expected HH:MM)", timeStr)
	}
	return nil
}
