package progress

import (
	"testing"
	"time"

	"github.com/innerascend/ascend/internal/models"
)

var now = time.Date(2026, 8, 12, 12, 0, 0, 0, time.UTC)

var curriculum = []models.ModuleDef{
	{ID: "mod-a", Title: "Grounding", SequenceOrder: 1, DurationDays: 3},
	{ID: "mod-b", Title: "Awareness", SequenceOrder: 2, DurationDays: 5},
}

func done(moduleID string, day int, completedAt time.Time) models.DayProgressRecord {
	return models.DayProgressRecord{
		ID:          "rec",
		ModuleID:    moduleID,
		DayNumber:   day,
		CompletedAt: completedAt,
	}
}

func TestFirstModuleAlwaysUnlocked(t *testing.T) {
	tests := []struct {
		name    string
		records []models.DayProgressRecord
	}{
		{name: "no progress at all"},
		{
			name:    "progress only in a later module",
			records: []models.DayProgressRecord{done("mod-b", 1, now.Add(-48 * time.Hour))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := NewEngine(curriculum, tt.records)
			view := eng.ModuleView("mod-a", now)
			if !view.IsUnlocked {
				t.Errorf("first module IsUnlocked = false, want true")
			}
		})
	}
}

func TestModuleUnlockRequiresCompletedPredecessor(t *testing.T) {
	partial := []models.DayProgressRecord{
		done("mod-a", 1, now.Add(-72*time.Hour)),
		done("mod-a", 2, now.Add(-48*time.Hour)),
	}
	eng := NewEngine(curriculum, partial)
	if view := eng.ModuleView("mod-b", now); view.IsUnlocked {
		t.Errorf("mod-b unlocked with 2/3 of mod-a complete")
	}

	full := append(partial, done("mod-a", 3, now.Add(-24*time.Hour)))
	eng = NewEngine(curriculum, full)
	view := eng.ModuleView("mod-b", now)
	if !view.IsUnlocked {
		t.Errorf("mod-b locked after mod-a fully complete")
	}
	viewA := eng.ModuleView("mod-a", now)
	if !viewA.IsCompleted {
		t.Errorf("mod-a IsCompleted = false with all days done")
	}
	if viewA.CurrentDay != 3 {
		t.Errorf("completed module CurrentDay = %d, want last day 3", viewA.CurrentDay)
	}
}

func TestCurrentDayIsFirstIncomplete(t *testing.T) {
	tests := []struct {
		name    string
		records []models.DayProgressRecord
		want    int
	}{
		{name: "nothing done", want: 1},
		{
			name:    "day one done",
			records: []models.DayProgressRecord{done("mod-a", 1, now.Add(-25 * time.Hour))},
			want:    2,
		},
		{
			name: "hole in the middle",
			records: []models.DayProgressRecord{
				done("mod-a", 1, now.Add(-72*time.Hour)),
				done("mod-a", 3, now.Add(-24*time.Hour)),
			},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := NewEngine(curriculum, tt.records)
			if view := eng.ModuleView("mod-a", now); view.CurrentDay != tt.want {
				t.Errorf("CurrentDay = %d, want %d", view.CurrentDay, tt.want)
			}
		})
	}
}

func TestDayLockBoundary(t *testing.T) {
	tests := []struct {
		name       string
		completed  time.Time
		wantStatus models.DayStatus
	}{
		{
			name:       "just under 24h stays locked",
			completed:  now.Add(-23*time.Hour - 59*time.Minute),
			wantStatus: models.DayLocked,
		},
		{
			name:       "just over 24h unlocks",
			completed:  now.Add(-24*time.Hour - time.Minute),
			wantStatus: models.DayUnlocked,
		},
		{
			name:       "exactly 24h unlocks",
			completed:  now.Add(-24 * time.Hour),
			wantStatus: models.DayUnlocked,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := NewEngine(curriculum, []models.DayProgressRecord{done("mod-a", 1, tt.completed)})
			view := eng.DayView("mod-a", 2, now)
			if view.Status != tt.wantStatus {
				t.Errorf("day 2 status = %s, want %s", view.Status, tt.wantStatus)
			}
		})
	}
}

func TestDayLockHoursRemainingCeil(t *testing.T) {
	// Day 2 was completed 2h ago, so day 3 is current but still locked
	// and should show ceil(24-2) = 22 hours remaining.
	records := []models.DayProgressRecord{
		done("mod-a", 1, now.Add(-26 * time.Hour)),
		done("mod-a", 2, now.Add(-2 * time.Hour)),
	}
	eng := NewEngine(curriculum, records)

	view := eng.ModuleView("mod-a", now)
	if view.CurrentDay != 3 {
		t.Fatalf("CurrentDay = %d, want 3", view.CurrentDay)
	}
	day3 := eng.DayView("mod-a", 3, now)
	if day3.Status != models.DayLocked {
		t.Errorf("day 3 status = %s, want locked", day3.Status)
	}
	if day3.HoursRemaining != 22 {
		t.Errorf("day 3 HoursRemaining = %d, want 22", day3.HoursRemaining)
	}
	if view.NextDayUnlock == nil {
		t.Fatalf("NextDayUnlock = nil, want unlock timestamp")
	}
	want := now.Add(22 * time.Hour)
	if !view.NextDayUnlock.Equal(want) {
		t.Errorf("NextDayUnlock = %v, want %v", view.NextDayUnlock, want)
	}

	// A few minutes into the lock the display still rounds up, never to 0.
	justLocked := eng.DayView("mod-a", 3, now.Add(21*time.Hour+50*time.Minute))
	if justLocked.Status != models.DayLocked {
		t.Fatalf("status = %s, want locked", justLocked.Status)
	}
	if justLocked.HoursRemaining != 1 {
		t.Errorf("HoursRemaining = %d, want 1 (ceil of a few minutes)", justLocked.HoursRemaining)
	}
}

func TestCompletedDayNeverRelocks(t *testing.T) {
	// Day 2 completed minutes after day 1: lock never applies retroactively.
	records := []models.DayProgressRecord{
		done("mod-a", 1, now.Add(-time.Hour)),
		done("mod-a", 2, now.Add(-30*time.Minute)),
	}
	eng := NewEngine(curriculum, records)
	if view := eng.DayView("mod-a", 2, now); view.Status != models.DayCompleted {
		t.Errorf("completed day status = %s, want completed", view.Status)
	}
}

func TestDayOneNeverTimeLocked(t *testing.T) {
	eng := NewEngine(curriculum, nil)
	if view := eng.DayView("mod-a", 1, now); view.Status != models.DayUnlocked {
		t.Errorf("day 1 status = %s, want unlocked", view.Status)
	}
}

func TestDaysInLockedModuleAreLocked(t *testing.T) {
	eng := NewEngine(curriculum, nil)
	for _, view := range eng.DayViews("mod-b", now) {
		if view.Status != models.DayLocked {
			t.Errorf("day %d of locked module status = %s, want locked", view.DayNumber, view.Status)
		}
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		name    string
		records []models.DayProgressRecord
		want    bool
	}{
		{name: "unlocked but untouched is not active", want: false},
		{
			name:    "in progress is active",
			records: []models.DayProgressRecord{done("mod-a", 1, now.Add(-25 * time.Hour))},
			want:    true,
		},
		{
			name: "completed is not active",
			records: []models.DayProgressRecord{
				done("mod-a", 1, now.Add(-72 * time.Hour)),
				done("mod-a", 2, now.Add(-48 * time.Hour)),
				done("mod-a", 3, now.Add(-24 * time.Hour)),
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := NewEngine(curriculum, tt.records)
			if view := eng.ModuleView("mod-a", now); view.IsActive != tt.want {
				t.Errorf("IsActive = %v, want %v", view.IsActive, tt.want)
			}
		})
	}
}

func TestViewIdempotent(t *testing.T) {
	records := []models.DayProgressRecord{
		done("mod-a", 1, now.Add(-30 * time.Hour)),
		done("mod-a", 2, now.Add(-2 * time.Hour)),
	}
	eng := NewEngine(curriculum, records)
	a := eng.ModuleView("mod-a", now)
	b := eng.ModuleView("mod-a", now)
	if a.DaysCompleted != b.DaysCompleted || a.CurrentDay != b.CurrentDay ||
		a.IsUnlocked != b.IsUnlocked || a.IsCompleted != b.IsCompleted || a.IsActive != b.IsActive {
		t.Errorf("repeated ModuleView calls differ: %+v vs %+v", a, b)
	}
}

func TestMalformedModuleDoesNotPanic(t *testing.T) {
	bad := []models.ModuleDef{
		{ID: "mod-zero", SequenceOrder: 1, DurationDays: 0},
		{ID: "mod-next", SequenceOrder: 2, DurationDays: 3},
	}
	eng := NewEngine(bad, nil)

	view := eng.ModuleView("mod-zero", now)
	if view.CurrentDay != 1 {
		t.Errorf("zero-duration module CurrentDay = %d, want 1", view.CurrentDay)
	}
	if !view.IsUnlocked {
		t.Errorf("zero-duration first module IsUnlocked = false, want true")
	}
	// A zero-duration predecessor must not wedge the curriculum.
	if next := eng.ModuleView("mod-next", now); !next.IsUnlocked {
		t.Errorf("module after zero-duration predecessor is locked")
	}

	unknown := eng.ModuleView("missing", now)
	if unknown.CurrentDay != 1 || unknown.IsUnlocked {
		t.Errorf("unknown module view = %+v, want locked day 1", unknown)
	}
}

func TestNextAfterComplete(t *testing.T) {
	eng := NewEngine(curriculum, nil)
	if next, moduleDone := eng.NextAfterComplete("mod-a", 1); next != 2 || moduleDone {
		t.Errorf("NextAfterComplete(1) = (%d, %v), want (2, false)", next, moduleDone)
	}
	if _, moduleDone := eng.NextAfterComplete("mod-a", 3); !moduleDone {
		t.Errorf("NextAfterComplete(last day) moduleDone = false, want true")
	}
}
