package streak

import (
	"testing"
	"time"

	"github.com/innerascend/ascend/internal/models"
)

// now is Wednesday 2026-08-12, mid-morning.
var now = time.Date(2026, 8, 12, 9, 30, 0, 0, time.UTC)

func records(days ...string) []models.PracticeRecord {
	var out []models.PracticeRecord
	for _, d := range days {
		out = append(out, models.PracticeRecord{Day: d, Kind: models.PracticeMeditation, Count: 1})
	}
	return out
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		records     []models.PracticeRecord
		wantCurrent int
		wantLongest int
		wantTotal   int
	}{
		{
			name:    "empty history",
			records: nil,
		},
		{
			name:        "today and yesterday",
			records:     records("2026-08-12", "2026-08-11"),
			wantCurrent: 2,
			wantLongest: 2,
			wantTotal:   2,
		},
		{
			name:        "single record today",
			records:     records("2026-08-12"),
			wantCurrent: 1,
			wantLongest: 1,
			wantTotal:   1,
		},
		{
			name:        "single record yesterday keeps grace period",
			records:     records("2026-08-11"),
			wantCurrent: 1,
			wantLongest: 1,
			wantTotal:   1,
		},
		{
			name:        "latest two days ago breaks streak",
			records:     records("2026-08-10", "2026-08-09"),
			wantCurrent: 0,
			wantLongest: 2,
			wantTotal:   2,
		},
		{
			name:        "gap stops current streak",
			records:     records("2026-08-12", "2026-08-11", "2026-08-09"),
			wantCurrent: 2,
			wantLongest: 2,
			wantTotal:   3,
		},
		{
			name:        "longest run is in the past",
			records:     records("2026-08-12", "2026-08-05", "2026-08-04", "2026-08-03", "2026-08-02"),
			wantCurrent: 1,
			wantLongest: 4,
			wantTotal:   5,
		},
		{
			name:        "unsorted input",
			records:     records("2026-08-10", "2026-08-12", "2026-08-11"),
			wantCurrent: 3,
			wantLongest: 3,
			wantTotal:   3,
		},
		{
			name: "duplicate days collapse for streak but sum counts",
			records: []models.PracticeRecord{
				{Day: "2026-08-12", Count: 2},
				{Day: "2026-08-12", Count: 1},
				{Day: "2026-08-11", Count: 1},
			},
			wantCurrent: 2,
			wantLongest: 2,
			wantTotal:   4,
		},
		{
			name: "malformed dates are skipped",
			records: []models.PracticeRecord{
				{Day: "not-a-date", Count: 3},
				{Day: "2026-08-12", Count: 1},
			},
			wantCurrent: 1,
			wantLongest: 1,
			wantTotal:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.records, now)
			if got.CurrentStreak != tt.wantCurrent {
				t.Errorf("CurrentStreak = %d, want %d", got.CurrentStreak, tt.wantCurrent)
			}
			if got.LongestStreak != tt.wantLongest {
				t.Errorf("LongestStreak = %d, want %d", got.LongestStreak, tt.wantLongest)
			}
			if got.TotalPractices != tt.wantTotal {
				t.Errorf("TotalPractices = %d, want %d", got.TotalPractices, tt.wantTotal)
			}
			if got.LongestStreak < got.CurrentStreak {
				t.Errorf("LongestStreak (%d) < CurrentStreak (%d)", got.LongestStreak, got.CurrentStreak)
			}
		})
	}
}

func TestCalculateTotalCountsSumNotDays(t *testing.T) {
	recs := []models.PracticeRecord{
		{Day: "2026-08-12", Count: 3},
		{Day: "2026-08-11", Count: 2},
	}
	got := Calculate(recs, now)
	if got.TotalPractices != 5 {
		t.Errorf("TotalPractices = %d, want 5 (sum of counts, not distinct days)", got.TotalPractices)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	recs := records("2026-08-12", "2026-08-11", "2026-08-09", "2026-08-08", "2026-08-07")
	a := Calculate(recs, now)
	b := Calculate(recs, now)
	if a != b {
		t.Errorf("Calculate not deterministic: %+v vs %+v", a, b)
	}
}
