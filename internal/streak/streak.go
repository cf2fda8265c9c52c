// Package streak derives streak statistics from a user's practice history.
//
// All functions are pure: "now" is an explicit parameter, malformed rows are
// skipped rather than surfaced, and the same input always yields the same
// output.
package streak

import (
	"slices"
	"time"

	"github.com/innerascend/ascend/internal/models"
	"github.com/innerascend/ascend/internal/timeutil"
)

// Calculate folds a practice history into StreakStats.
//
// The current streak counts consecutive calendar days ending at the most
// recent practice day, and survives as long as that day is today or yesterday
// (a 1-day grace period). The longest streak scans the full history. Rows
// whose date does not parse are ignored; duplicate rows for one day are
// collapsed for streak purposes but still contribute to TotalPractices.
func Calculate(records []models.PracticeRecord, now time.Time) models.StreakStats {
	var stats models.StreakStats
	if len(records) == 0 {
		return stats
	}

	loc := now.Location()

	// Collapse to unique day ordinals. The store enforces one row per day,
	// but the calculator must not double-count if that ever slips.
	uniq := make(map[int]struct{}, len(records))
	for _, r := range records {
		d, err := timeutil.ParseDay(r.Day, loc)
		if err != nil {
			continue
		}
		uniq[dayOrdinal(d)] = struct{}{}
		stats.TotalPractices += r.Count
	}
	if len(uniq) == 0 {
		return models.StreakStats{}
	}

	days := make([]int, 0, len(uniq))
	for d := range uniq {
		days = append(days, d)
	}
	slices.Sort(days)
	slices.Reverse(days)

	today := dayOrdinal(timeutil.StartOfDay(now))
	ongoing := days[0] == today || days[0] == today-1

	run := 1
	stats.LongestStreak = 1
	if ongoing {
		stats.CurrentStreak = 1
	}
	for i := 0; i < len(days)-1; i++ {
		if days[i]-days[i+1] == 1 {
			run++
			stats.LongestStreak = max(stats.LongestStreak, run)
			if ongoing {
				stats.CurrentStreak++
			}
		} else {
			run = 1
			ongoing = false
		}
	}

	return stats
}

// dayOrdinal maps a local midnight to a day count since the Unix epoch,
// computed from the civil date so DST shifts cannot skew the arithmetic.
func dayOrdinal(t time.Time) int {
	return int(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / (24 * 60 * 60))
}
