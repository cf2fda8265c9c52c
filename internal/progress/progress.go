// Package progress computes curriculum unlock and completion state.
//
// Modules unlock sequentially: the first module is always unlocked, every
// later module unlocks when its predecessor (by sequence order) is fully
// completed. Within an unlocked module, each day after the first stays
// time-locked until 24 hours have elapsed since the prior day's completion.
// All functions are pure and never error on malformed configuration; a
// module with bad data degrades to day 1 rather than crashing a caller.
package progress

import (
	"math"
	"sort"
	"time"

	"github.com/innerascend/ascend/internal/constants"
	"github.com/innerascend/ascend/internal/models"
)

const dayLock = constants.DayLockHours * time.Hour

// Engine evaluates progress against a fixed curriculum snapshot. The module
// list and progress records are read-only inputs; the engine holds no other
// state, so one Engine value can serve any number of evaluations.
type Engine struct {
	// modules is sorted by SequenceOrder; byDay maps module ID to the set
	// of completed days.
	modules []models.ModuleDef
	byDay   map[string]map[int]models.DayProgressRecord
}

// NewEngine builds an engine over the full module list and the user's
// complete day-progress history.
func NewEngine(modules []models.ModuleDef, records []models.DayProgressRecord) *Engine {
	sorted := make([]models.ModuleDef, len(modules))
	copy(sorted, modules)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SequenceOrder < sorted[j].SequenceOrder
	})

	byDay := make(map[string]map[int]models.DayProgressRecord)
	for _, r := range records {
		m, ok := byDay[r.ModuleID]
		if !ok {
			m = make(map[int]models.DayProgressRecord)
			byDay[r.ModuleID] = m
		}
		// First completion wins; records are immutable upstream.
		if _, exists := m[r.DayNumber]; !exists {
			m[r.DayNumber] = r
		}
	}

	return &Engine{modules: sorted, byDay: byDay}
}

// Modules returns the curriculum in unlock order.
func (e *Engine) Modules() []models.ModuleDef {
	return e.modules
}

// ModuleView computes the derived view state for one module at the given
// instant.
func (e *Engine) ModuleView(moduleID string, now time.Time) models.ModuleProgressView {
	view := models.ModuleProgressView{ModuleID: moduleID, CurrentDay: 1}

	mod, idx, ok := e.lookup(moduleID)
	if !ok {
		// Unknown module: report it locked with no valid current day
		// rather than failing the caller.
		return view
	}

	completed := e.byDay[moduleID]
	view.DaysCompleted = countInRange(completed, mod.DurationDays)
	view.IsCompleted = mod.DurationDays > 0 && view.DaysCompleted >= mod.DurationDays
	view.IsUnlocked = e.unlocked(idx)
	view.IsActive = view.IsUnlocked && !view.IsCompleted && view.DaysCompleted > 0
	view.CurrentDay = currentDay(completed, mod.DurationDays)

	// Surface when the next day opens, if the current day is time-locked.
	if view.IsUnlocked && !view.IsCompleted && view.CurrentDay > 1 {
		if prev, ok := completed[view.CurrentDay-1]; ok {
			unlock := prev.CompletedAt.Add(dayLock)
			if unlock.After(now) {
				view.NextDayUnlock = &unlock
			}
		}
	}

	return view
}

// DayView computes the lock state of a single day within a module. Days in a
// locked module are always locked. A completed day is never re-locked.
func (e *Engine) DayView(moduleID string, day int, now time.Time) models.DayView {
	view := models.DayView{DayNumber: day, Status: models.DayLocked}

	mod, idx, ok := e.lookup(moduleID)
	if !ok || day < 1 || (mod.DurationDays > 0 && day > mod.DurationDays) {
		return view
	}

	completed := e.byDay[moduleID]
	if _, done := completed[day]; done {
		view.Status = models.DayCompleted
		return view
	}
	if !e.unlocked(idx) {
		return view
	}
	if day == 1 {
		view.Status = models.DayUnlocked
		return view
	}

	prev, done := completed[day-1]
	if !done {
		return view
	}
	elapsed := now.Sub(prev.CompletedAt)
	if elapsed < dayLock {
		view.HoursRemaining = hoursRemaining(elapsed)
		return view
	}
	view.Status = models.DayUnlocked
	return view
}

// DayViews returns the lock state for every day of a module, for the day
// navigator.
func (e *Engine) DayViews(moduleID string, now time.Time) []models.DayView {
	mod, _, ok := e.lookup(moduleID)
	if !ok || mod.DurationDays < 1 {
		return nil
	}
	views := make([]models.DayView, 0, mod.DurationDays)
	for day := 1; day <= mod.DurationDays; day++ {
		views = append(views, e.DayView(moduleID, day, now))
	}
	return views
}

// NextAfterComplete reports which day the caller should advance to after
// completing the given day, and whether the module is now finished.
func (e *Engine) NextAfterComplete(moduleID string, day int) (next int, moduleDone bool) {
	mod, _, ok := e.lookup(moduleID)
	if !ok || day >= mod.DurationDays {
		return day, true
	}
	return day + 1, false
}

func (e *Engine) lookup(moduleID string) (models.ModuleDef, int, bool) {
	for i, m := range e.modules {
		if m.ID == moduleID {
			return m, i, true
		}
	}
	return models.ModuleDef{}, 0, false
}

// unlocked reports whether the module at sorted index idx is unlocked: the
// first module always is, later ones require a fully-completed predecessor.
func (e *Engine) unlocked(idx int) bool {
	if idx == 0 {
		return true
	}
	prev := e.modules[idx-1]
	if prev.DurationDays < 1 {
		// Malformed predecessor counts as complete so it can never wedge
		// the whole curriculum.
		return true
	}
	return countInRange(e.byDay[prev.ID], prev.DurationDays) >= prev.DurationDays
}

// currentDay is the smallest incomplete day in [1, duration]; when every day
// is complete it stays at the last day.
func currentDay(completed map[int]models.DayProgressRecord, duration int) int {
	if duration < 1 {
		return 1
	}
	for day := 1; day <= duration; day++ {
		if _, ok := completed[day]; !ok {
			return day
		}
	}
	return duration
}

// countInRange counts distinct completed days that fall inside the module's
// valid day range, so stray out-of-range rows cannot inflate progress.
func countInRange(completed map[int]models.DayProgressRecord, duration int) int {
	n := 0
	for day := range completed {
		if day >= 1 && (duration < 1 || day <= duration) {
			n++
		}
	}
	return n
}

// hoursRemaining rounds the remaining lock time up to whole hours. Ceiling is
// deliberate: showing "1h remaining" for a few minutes beats showing "0h"
// while the day is still locked.
func hoursRemaining(elapsed time.Duration) int {
	rem := dayLock - elapsed
	if rem <= 0 {
		return 0
	}
	return int(math.Ceil(rem.Hours()))
}
