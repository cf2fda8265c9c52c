package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/innerascend/ascend/internal/models"
	"github.com/innerascend/ascend/internal/validation"
)

type CheckinCmd struct {
	Mood string `help:"Mood (skips the interactive form): great, good, okay, low, struggling."`
	Note string `help:"Optional note."`
	Log  bool   `help:"Show recent check-ins instead of recording one."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	if c.Log {
		return c.showLog(ctx)
	}

	mood := models.Mood(c.Mood)
	note := c.Note
	if c.Mood == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[models.Mood]().
					Title("How are you feeling right now?").
					Options(
						huh.NewOption("Great", models.MoodGreat),
						huh.NewOption("Good", models.MoodGood),
						huh.NewOption("Okay", models.MoodOkay),
						huh.NewOption("Low", models.MoodLow),
						huh.NewOption("Struggling", models.MoodStruggle),
					).
					Value(&mood),
				huh.NewText().
					Title("Anything you want to note?").
					CharLimit(500).
					Value(&note),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}
	if err := validation.Mood(mood); err != nil {
		return err
	}

	checkin := models.CheckIn{
		ID:        uuid.New().String(),
		Day:       ctx.Today(),
		Mood:      mood,
		Note:      note,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddCheckIn(checkin); err != nil {
		return err
	}
	fmt.Printf("Checked in: %s\n", mood)
	return nil
}

func (c *CheckinCmd) showLog(ctx *Context) error {
	end := ctx.Today()
	start := ctx.Now().AddDate(0, 0, -30).Format("2006-01-02")
	checkins, err := ctx.Store.GetCheckIns(start, end)
	if err != nil {
		return err
	}
	if len(checkins) == 0 {
		fmt.Println("No check-ins in the last 30 days.")
		return nil
	}
	for _, ci := range checkins {
		if ci.Note != "" {
			fmt.Printf("%s  %-10s  %s\n", ci.Day, ci.Mood, ci.Note)
		} else {
			fmt.Printf("%s  %s\n", ci.Day, ci.Mood)
		}
	}
	return nil
}
