package tui

import (
	"fmt"
	"strings"

	"github.com/innerascend/ascend/internal/models"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.greeting))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " loading...\n")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString(helpStyle.Render("\nr refresh • q quit"))
		return b.String()
	}

	b.WriteString(streakStyle.Render(fmt.Sprintf("🔥 %d day streak", m.snap.stats.CurrentStreak)))
	b.WriteString(fmt.Sprintf("  (longest %d, %d practices total)\n\n",
		m.snap.stats.LongestStreak, m.snap.stats.TotalPractices))

	m.renderJourney(&b)
	m.renderEvents(&b)

	b.WriteString(helpStyle.Render("r refresh • q quit"))
	return b.String()
}

func (m Model) renderJourney(b *strings.Builder) {
	b.WriteString(sectionStyle.Render("Journey"))
	b.WriteString("\n")

	if m.snap.activeTitle == "" {
		if len(m.snap.modules) > 0 {
			b.WriteString(doneStyle.Render("All modules complete 🎉"))
			b.WriteString("\n")
		} else {
			b.WriteString("No curriculum loaded. Run 'ascend init'.\n")
		}
	} else {
		b.WriteString(m.snap.activeTitle + ": ")
		for _, day := range m.snap.activeDays {
			switch day.Status {
			case models.DayCompleted:
				b.WriteString(doneStyle.Render("●"))
			case models.DayUnlocked:
				b.WriteString("○")
			default:
				b.WriteString(lockedStyle.Render("·"))
			}
		}
		b.WriteString("\n")
		for _, day := range m.snap.activeDays {
			if day.Status == models.DayLocked && day.HoursRemaining > 0 {
				b.WriteString(lockedStyle.Render(
					fmt.Sprintf("day %d unlocks in %dh", day.DayNumber, day.HoursRemaining)))
				b.WriteString("\n")
				break
			}
		}
	}
	b.WriteString("\n")
}

func (m Model) renderEvents(b *strings.Builder) {
	b.WriteString(sectionStyle.Render("Today in town"))
	b.WriteString("\n")

	if len(m.snap.events) == 0 {
		b.WriteString(lockedStyle.Render("nothing scheduled today"))
		b.WriteString("\n")
		return
	}
	for _, ev := range m.snap.events {
		star := " "
		if m.snap.favs.IsFavorited(models.ItemEvent, ev.ID) {
			star = "★"
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", star, ev.Time, ev.Title))
	}
}
