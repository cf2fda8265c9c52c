// Package tui renders the "today" dashboard: current streak, the active
// curriculum day and its lock state, and today's community events.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/innerascend/ascend/internal/favorites"
	"github.com/innerascend/ascend/internal/filter"
	"github.com/innerascend/ascend/internal/models"
	"github.com/innerascend/ascend/internal/progress"
	"github.com/innerascend/ascend/internal/storage"
	"github.com/innerascend/ascend/internal/streak"
)

// snapshot is everything the dashboard shows, derived in one load pass so a
// render never mixes data from two fetches.
type snapshot struct {
	stats       models.StreakStats
	modules     []models.ModuleDef
	views       map[string]models.ModuleProgressView
	activeDays  []models.DayView
	activeTitle string
	events      []models.Event
	favs        favorites.Index
}

type loadedMsg struct{ snap snapshot }

type loadErrMsg struct{ err error }

type Model struct {
	store    storage.Provider
	now      func() time.Time
	spinner  spinner.Model
	loading  bool
	err      error
	snap     snapshot
	greeting string
}

func NewModel(store storage.Provider, greeting string, now func() time.Time) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		store:    store,
		now:      now,
		spinner:  sp,
		loading:  true,
		greeting: greeting,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

// load fetches raw rows and folds them through the compute packages off the
// UI goroutine.
func (m Model) load() tea.Cmd {
	store, now := m.store, m.now()
	return func() tea.Msg {
		records, err := store.GetPracticeRecords()
		if err != nil {
			return loadErrMsg{err}
		}
		modules, err := store.GetModules()
		if err != nil {
			return loadErrMsg{err}
		}
		dayProgress, err := store.GetDayProgress()
		if err != nil {
			return loadErrMsg{err}
		}
		events, err := store.GetEvents()
		if err != nil {
			return loadErrMsg{err}
		}
		favs, err := store.GetFavorites()
		if err != nil {
			return loadErrMsg{err}
		}

		snap := snapshot{
			stats:   streak.Calculate(records, now),
			modules: modules,
			views:   make(map[string]models.ModuleProgressView, len(modules)),
			events:  filter.Events(events, models.FilterState{DateRange: models.RangeToday}, "", now),
			favs:    favorites.Build(favs),
		}

		eng := progress.NewEngine(modules, dayProgress)
		for _, mod := range modules {
			view := eng.ModuleView(mod.ID, now)
			snap.views[mod.ID] = view
			if view.IsUnlocked && !view.IsCompleted && snap.activeTitle == "" {
				snap.activeTitle = mod.Title
				snap.activeDays = eng.DayViews(mod.ID, now)
			}
		}
		return loadedMsg{snap}
	}
}
