package validation

import (
	"testing"

	"github.com/innerascend/ascend/internal/models"
)

func TestPracticeKind(t *testing.T) {
	for _, k := range []models.PracticeKind{models.PracticeMeditation, models.PracticeExercise} {
		if err := PracticeKind(k); err != nil {
			t.Errorf("PracticeKind(%q) = %v", k, err)
		}
	}
	for _, k := range []models.PracticeKind{"", "running", "Meditation"} {
		if err := PracticeKind(k); err == nil {
			t.Errorf("PracticeKind(%q) should fail", k)
		}
	}
}

func TestMood(t *testing.T) {
	valid := []models.Mood{
		models.MoodGreat, models.MoodGood, models.MoodOkay,
		models.MoodLow, models.MoodStruggle,
	}
	for _, m := range valid {
		if err := Mood(m); err != nil {
			t.Errorf("Mood(%q) = %v", m, err)
		}
	}
	if err := Mood("fine"); err == nil {
		t.Errorf("Mood(fine) should fail")
	}
}

func TestRSVPStatus(t *testing.T) {
	valid := []models.RSVPStatus{
		models.RSVPGoing, models.RSVPInterested, models.RSVPMaybe, models.RSVPCantGo,
	}
	for _, s := range valid {
		if err := RSVPStatus(s); err != nil {
			t.Errorf("RSVPStatus(%q) = %v", s, err)
		}
	}
	if err := RSVPStatus("attending"); err == nil {
		t.Errorf("RSVPStatus(attending) should fail")
	}
}

func TestItemType(t *testing.T) {
	for _, it := range []models.ItemType{models.ItemEvent, models.ItemPlace, models.ItemService} {
		if err := ItemType(it); err != nil {
			t.Errorf("ItemType(%q) = %v", it, err)
		}
	}
	if err := ItemType("listing"); err == nil {
		t.Errorf("ItemType(listing) should fail")
	}
}

func TestReportReason(t *testing.T) {
	valid := []models.ReportReason{
		models.ReportSpam, models.ReportInaccurate, models.ReportClosed,
		models.ReportOffensive, models.ReportOther,
	}
	for _, r := range valid {
		if err := ReportReason(r); err != nil {
			t.Errorf("ReportReason(%q) = %v", r, err)
		}
	}
	if err := ReportReason("bad"); err == nil {
		t.Errorf("ReportReason(bad) should fail")
	}
}

func TestDayAndTime(t *testing.T) {
	if err := Day("2026-08-12"); err != nil {
		t.Errorf("Day = %v", err)
	}
	if err := Day("tomorrow"); err == nil {
		t.Errorf("Day(tomorrow) should fail")
	}
	if err := TimeOfDayStr("07:30"); err != nil {
		t.Errorf("TimeOfDayStr = %v", err)
	}
	if err := TimeOfDayStr("7:30pm"); err == nil {
		t.Errorf("TimeOfDayStr(7:30pm) should fail")
	}
}
