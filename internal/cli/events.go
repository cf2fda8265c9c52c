package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/innerascend/ascend/internal/favorites"
	"github.com/innerascend/ascend/internal/filter"
	"github.com/innerascend/ascend/internal/models"
	"github.com/innerascend/ascend/internal/timeutil"
	"github.com/innerascend/ascend/internal/validation"
)

type EventsCmd struct {
	List EventListCmd `cmd:"" help:"List events, optionally filtered."`
	Add  EventAddCmd  `cmd:"" help:"Add a community event."`
	RSVP EventRSVPCmd `cmd:"" help:"Record attendance intent for an event."`
}

// filterFlags are shared by the listing commands and map directly onto
// FilterState.
type filterFlags struct {
	Category  []string `help:"Filter by category (repeatable)."`
	Range     string   `help:"Date range: all, today, this_weekend, next_week." enum:"all,today,this_weekend,next_week" default:"all"`
	TimeOfDay []string `help:"Time of day: morning, afternoon, evening (repeatable)."`
	Eco       bool     `help:"Only eco-conscious listings."`
	Verified  bool     `help:"Only verified listings."`
	Price     []string `help:"Filter by price range (repeatable)."`
	Search    string   `help:"Free-text search." short:"s"`
}

func (f filterFlags) state() models.FilterState {
	var tods []models.TimeOfDay
	for _, t := range f.TimeOfDay {
		tods = append(tods, models.TimeOfDay(t))
	}
	return models.FilterState{
		Categories:   f.Category,
		DateRange:    models.DateRange(f.Range),
		TimesOfDay:   tods,
		EcoConscious: f.Eco,
		Verified:     f.Verified,
		PriceRanges:  f.Price,
	}
}

type EventListCmd struct {
	filterFlags
}

func (c *EventListCmd) Run(ctx *Context) error {
	events, err := ctx.Store.GetEvents()
	if err != nil {
		return err
	}
	favs, err := ctx.Store.GetFavorites()
	if err != nil {
		return err
	}
	index := favorites.Build(favs)

	now := ctx.Now()
	fs := c.state()
	matched := filter.Events(events, fs, c.Search, now)
	if len(matched) == 0 {
		fmt.Println("No events found.")
		return nil
	}

	if n := filter.ActiveCount(fs); n > 0 {
		fmt.Printf("%d event(s), %d filter(s) active\n\n", len(matched), n)
	}
	for _, ev := range matched {
		star := " "
		if index.IsFavorited(models.ItemEvent, ev.ID) {
			star = "★"
		}
		fmt.Printf("%s %s %s  %s [%s]\n", star, timeutil.RelativeDay(ev.Date, now), ev.Time, ev.Title, ev.Category)
		if ev.LocationName != "" {
			fmt.Printf("    @ %s\n", ev.LocationName)
		}
	}
	return nil
}

type EventAddCmd struct {
	Title    string `arg:"" help:"Event title."`
	Date     string `required:"" help:"Date in YYYY-MM-DD format."`
	Time     string `required:"" help:"Start time in HH:MM format."`
	Category string `required:"" help:"Event category."`
	Desc     string `help:"Description."`
	Location string `help:"Location name."`
	Price    string `help:"Price range."`
	Eco      bool   `help:"Mark eco-conscious."`
	Verified bool   `help:"Mark verified."`
}

func (c *EventAddCmd) Run(ctx *Context) error {
	if err := validation.Day(c.Date); err != nil {
		return err
	}
	if err := validation.TimeOfDayStr(c.Time); err != nil {
		return err
	}

	ev := models.Event{
		ID:           uuid.New().String(),
		Title:        c.Title,
		Description:  c.Desc,
		Category:     c.Category,
		Date:         c.Date,
		Time:         c.Time,
		LocationName: c.Location,
		PriceRange:   c.Price,
		EcoConscious: c.Eco,
		Verified:     c.Verified,
		CreatedAt:    time.Now(),
	}
	if err := ctx.Store.AddEvent(ev); err != nil {
		return err
	}
	fmt.Printf("Added event: %s (%s %s)\n", ev.Title, ev.Date, ev.Time)
	return nil
}

type EventRSVPCmd struct {
	EventID string `arg:"" help:"Event ID."`
	Status  string `arg:"" help:"going, interested, maybe, or cant_go."`
}

func (c *EventRSVPCmd) Run(ctx *Context) error {
	status := models.RSVPStatus(c.Status)
	if err := validation.RSVPStatus(status); err != nil {
		return err
	}
	ev, err := ctx.Store.GetEvent(c.EventID)
	if err != nil {
		return err
	}

	rsvp := models.RSVP{
		ID:        uuid.New().String(),
		EventID:   ev.ID,
		Status:    status,
		UpdatedAt: time.Now(),
	}
	if err := ctx.Store.SaveRSVP(rsvp); err != nil {
		return err
	}
	fmt.Printf("RSVP for %s: %s\n", ev.Title, status)
	return nil
}
