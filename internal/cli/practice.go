package cli

import (
	"fmt"

	"github.com/innerascend/ascend/internal/logger"
	"github.com/innerascend/ascend/internal/models"
	"github.com/innerascend/ascend/internal/streak"
	"github.com/innerascend/ascend/internal/timeutil"
	"github.com/innerascend/ascend/internal/validation"
)

type PracticeCmd struct {
	Record PracticeRecordCmd `cmd:"" help:"Record a practice for a day."`
	Stats  PracticeStatsCmd  `cmd:"" help:"Show streak statistics."`
}

type PracticeRecordCmd struct {
	Kind string `help:"Practice kind (meditation or exercise)." default:"meditation"`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *PracticeRecordCmd) Run(ctx *Context) error {
	kind := models.PracticeKind(c.Kind)
	if err := validation.PracticeKind(kind); err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = ctx.Today()
	} else if err := validation.Day(day); err != nil {
		return err
	}

	rec, err := ctx.Store.RecordPractice(day, kind)
	if err != nil {
		return err
	}
	logger.Debug("practice recorded", "day", day, "kind", kind, "count", rec.Count)

	if rec.Count > 1 {
		fmt.Printf("Recorded %s practice for %s (%d today)\n", kind, timeutil.RelativeDay(day, ctx.Now()), rec.Count)
	} else {
		fmt.Printf("Recorded %s practice for %s\n", kind, timeutil.RelativeDay(day, ctx.Now()))
	}

	records, err := ctx.Store.GetPracticeRecords()
	if err != nil {
		return err
	}
	stats := streak.Calculate(records, ctx.Now())
	fmt.Printf("Current streak: %d day(s)\n", stats.CurrentStreak)
	return nil
}

type PracticeStatsCmd struct{}

func (c *PracticeStatsCmd) Run(ctx *Context) error {
	records, err := ctx.Store.GetPracticeRecords()
	if err != nil {
		return err
	}

	stats := streak.Calculate(records, ctx.Now())
	fmt.Printf("Current streak:  %d day(s)\n", stats.CurrentStreak)
	fmt.Printf("Longest streak:  %d day(s)\n", stats.LongestStreak)
	fmt.Printf("Total practices: %d\n", stats.TotalPractices)
	return nil
}
