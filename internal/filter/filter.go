// Package filter narrows in-memory listing collections by category, date
// range, time of day, flags, price, and free-text query. Filtering is pure
// and stable: the same rows and FilterState always produce the same output,
// and surviving rows keep their relative order except for the mandated
// event sort by (date, time).
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/innerascend/ascend/internal/models"
	"github.com/innerascend/ascend/internal/timeutil"
)

// Events applies the full filter pipeline to events and sorts the result by
// (date, time) ascending. Date-range boundaries are computed from now at
// every call, never cached.
func Events(events []models.Event, fs models.FilterState, query string, now time.Time) []models.Event {
	var out []models.Event
	for _, ev := range events {
		if !inCategories(ev.Category, fs.Categories) {
			continue
		}
		if fs.EcoConscious && !ev.EcoConscious {
			continue
		}
		if fs.Verified && !ev.Verified {
			continue
		}
		if !inPriceRanges(ev.PriceRange, fs.PriceRanges) {
			continue
		}
		if !inDateRange(ev.Date, fs.DateRange, now) {
			continue
		}
		if !inTimesOfDay(ev.Time, fs.TimesOfDay) {
			continue
		}
		if !matchesQuery(query, ev.Title, ev.Description, ev.LocationName) {
			continue
		}
		out = append(out, ev)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// Places filters places. Date and time-of-day dimensions do not apply; rows
// keep fetch order.
func Places(places []models.Place, fs models.FilterState, query string) []models.Place {
	var out []models.Place
	for _, p := range places {
		if !inCategories(p.Category, fs.Categories) {
			continue
		}
		if fs.EcoConscious && !p.EcoConscious {
			continue
		}
		if fs.Verified && !p.Verified {
			continue
		}
		if !inPriceRanges(p.PriceRange, fs.PriceRanges) {
			continue
		}
		if !matchesQuery(query, p.Name, p.Description, p.LocationName) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Services filters services the same way as places.
func Services(services []models.Service, fs models.FilterState, query string) []models.Service {
	var out []models.Service
	for _, s := range services {
		if !inCategories(s.Category, fs.Categories) {
			continue
		}
		if fs.EcoConscious && !s.EcoConscious {
			continue
		}
		if fs.Verified && !s.Verified {
			continue
		}
		if !inPriceRanges(s.PriceRange, fs.PriceRanges) {
			continue
		}
		if !matchesQuery(query, s.Name, s.Description, s.LocationName) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ActiveCount reports how many filter dimensions are non-default, for the
// filter badge. Each dimension counts at most once no matter how many values
// are selected within it.
func ActiveCount(fs models.FilterState) int {
	n := 0
	if len(fs.Categories) > 0 {
		n++
	}
	if fs.DateRange != "" && fs.DateRange != models.RangeAll {
		n++
	}
	if len(fs.TimesOfDay) > 0 {
		n++
	}
	if fs.EcoConscious {
		n++
	}
	if fs.Verified {
		n++
	}
	if len(fs.PriceRanges) > 0 {
		n++
	}
	return n
}

// inCategories is an empty-set-passes membership test.
func inCategories(category string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if strings.EqualFold(category, w) {
			return true
		}
	}
	return false
}

func inPriceRanges(price string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if price == w {
			return true
		}
	}
	return false
}

func inDateRange(day string, dr models.DateRange, now time.Time) bool {
	if dr == "" || dr == models.RangeAll {
		return true
	}
	t, err := timeutil.ParseDay(day, now.Location())
	if err != nil {
		// Unparseable dates only survive the unfiltered view.
		return false
	}
	switch dr {
	case models.RangeToday:
		return timeutil.DaysBetween(now, t) == 0
	case models.RangeThisWeekend:
		return timeutil.ThisWeekend(now).Contains(t)
	case models.RangeNextWeek:
		return timeutil.NextWeek(now).Contains(t)
	default:
		return true
	}
}

func inTimesOfDay(timeStr string, wanted []models.TimeOfDay) bool {
	if len(wanted) == 0 {
		return true
	}
	bucket, ok := timeutil.Bucket(timeStr)
	if !ok {
		return false
	}
	for _, w := range wanted {
		if bucket == w {
			return true
		}
	}
	return false
}

// matchesQuery is a case-insensitive substring match; a row matches when any
// field contains the query. An empty query matches everything.
func matchesQuery(query string, fields ...string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
