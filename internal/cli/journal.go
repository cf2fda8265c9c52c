package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/innerascend/ascend/internal/models"
)

type JournalCmd struct {
	Add  JournalAddCmd  `cmd:"" help:"Write a journal entry."`
	List JournalListCmd `cmd:"" help:"List journal entries."`
}

type JournalAddCmd struct {
	Body  string `arg:"" help:"Entry text."`
	Title string `help:"Optional title."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	if strings.TrimSpace(c.Body) == "" {
		return fmt.Errorf("journal entry cannot be empty")
	}

	now := time.Now()
	entry := models.JournalEntry{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Body:      c.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ctx.Store.AddJournalEntry(entry); err != nil {
		return err
	}
	fmt.Println("Journal entry saved.")
	return nil
}

type JournalListCmd struct {
	Limit int `help:"Maximum entries to show." default:"10"`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetJournalEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No journal entries yet.")
		return nil
	}
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}
	for _, e := range entries {
		header := e.CreatedAt.Format("Jan 2 2006 15:04")
		if e.Title != "" {
			header += " — " + e.Title
		}
		fmt.Println(header)
		fmt.Printf("  %s\n", e.Body)
	}
	return nil
}
