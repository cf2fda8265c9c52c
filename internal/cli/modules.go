package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/innerascend/ascend/internal/logger"
	"github.com/innerascend/ascend/internal/models"
	"github.com/innerascend/ascend/internal/progress"
)

type ModuleCmd struct {
	List     ModuleListCmd     `cmd:"" help:"List curriculum modules and progress."`
	Show     ModuleShowCmd     `cmd:"" help:"Show one module's day navigator."`
	Complete ModuleCompleteCmd `cmd:"" help:"Mark a curriculum day complete."`
}

type ModuleListCmd struct{}

func (c *ModuleListCmd) Run(ctx *Context) error {
	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	now := ctx.Now()
	for _, mod := range eng.Modules() {
		view := eng.ModuleView(mod.ID, now)
		fmt.Printf("%d. %s — %s\n", mod.SequenceOrder, mod.Title, moduleStatus(mod, view, eng, now))
	}
	return nil
}

type ModuleShowCmd struct {
	Sequence int `arg:"" help:"Module number (1-based)."`
}

func (c *ModuleShowCmd) Run(ctx *Context) error {
	mod, err := ctx.Store.GetModuleBySequence(c.Sequence)
	if err != nil {
		return err
	}
	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	now := ctx.Now()
	view := eng.ModuleView(mod.ID, now)
	fmt.Printf("%s (%d days)\n", mod.Title, mod.DurationDays)
	if mod.Description != "" {
		fmt.Println(mod.Description)
	}
	fmt.Printf("Status: %s\n\n", moduleStatus(mod, view, eng, now))

	for _, day := range eng.DayViews(mod.ID, now) {
		switch day.Status {
		case models.DayCompleted:
			fmt.Printf("  Day %2d  ✓ completed\n", day.DayNumber)
		case models.DayUnlocked:
			marker := ""
			if day.DayNumber == view.CurrentDay {
				marker = "  ← current"
			}
			fmt.Printf("  Day %2d  available%s\n", day.DayNumber, marker)
		default:
			if day.HoursRemaining > 0 {
				fmt.Printf("  Day %2d  locked (%dh remaining)\n", day.DayNumber, day.HoursRemaining)
			} else {
				fmt.Printf("  Day %2d  locked\n", day.DayNumber)
			}
		}
	}
	return nil
}

type ModuleCompleteCmd struct {
	Sequence int `arg:"" help:"Module number (1-based)."`
	Day      int `arg:"" help:"Day number within the module."`
}

func (c *ModuleCompleteCmd) Run(ctx *Context) error {
	mod, err := ctx.Store.GetModuleBySequence(c.Sequence)
	if err != nil {
		return err
	}
	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	now := ctx.Now()
	day := eng.DayView(mod.ID, c.Day, now)
	switch day.Status {
	case models.DayCompleted:
		return fmt.Errorf("day %d of %s is already completed", c.Day, mod.Title)
	case models.DayLocked:
		if day.HoursRemaining > 0 {
			return fmt.Errorf("day %d of %s unlocks in %dh", c.Day, mod.Title, day.HoursRemaining)
		}
		return fmt.Errorf("day %d of %s is locked", c.Day, mod.Title)
	}

	rec := models.DayProgressRecord{
		ID:          uuid.New().String(),
		ModuleID:    mod.ID,
		DayNumber:   c.Day,
		CompletedAt: now,
	}
	if err := ctx.Store.MarkDayComplete(rec); err != nil {
		return err
	}
	logger.Debug("day completed", "module", mod.ID, "day", c.Day)

	next, done := eng.NextAfterComplete(mod.ID, c.Day)
	if done {
		fmt.Printf("Day %d complete — %s finished! 🎉\n", c.Day, mod.Title)
	} else {
		fmt.Printf("Day %d complete. Day %d unlocks in %dh.\n", c.Day, next, 24)
	}
	return nil
}

func loadEngine(ctx *Context) (*progress.Engine, error) {
	modules, err := ctx.Store.GetModules()
	if err != nil {
		return nil, err
	}
	records, err := ctx.Store.GetDayProgress()
	if err != nil {
		return nil, err
	}
	return progress.NewEngine(modules, records), nil
}

// moduleStatus renders the one-line state including what is blocking a locked
// module.
func moduleStatus(mod models.ModuleDef, view models.ModuleProgressView, eng *progress.Engine, now time.Time) string {
	switch {
	case view.IsCompleted:
		return "completed"
	case !view.IsUnlocked:
		if prev := predecessor(eng, mod); prev != nil {
			return fmt.Sprintf("locked — complete %s to unlock", prev.Title)
		}
		return "locked"
	case view.NextDayUnlock != nil:
		return fmt.Sprintf("day %d/%d — next day unlocks %s", view.DaysCompleted, mod.DurationDays,
			view.NextDayUnlock.In(now.Location()).Format("Jan 2 15:04"))
	case view.IsActive:
		return fmt.Sprintf("day %d/%d in progress", view.CurrentDay, mod.DurationDays)
	default:
		return "ready to start"
	}
}

func predecessor(eng *progress.Engine, mod models.ModuleDef) *models.ModuleDef {
	mods := eng.Modules()
	for i := range mods {
		if mods[i].ID == mod.ID && i > 0 {
			return &mods[i-1]
		}
	}
	return nil
}
