package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/innerascend/ascend/internal/models"
	"github.com/innerascend/ascend/internal/validation"
)

type ReportCmd struct {
	Type    string `arg:"" help:"Item type: event, place, or service."`
	ID      string `arg:"" help:"Item ID."`
	Reason  string `required:"" help:"Reason: spam, inaccurate, closed, offensive, or other."`
	Details string `help:"Additional details."`
}

func (c *ReportCmd) Run(ctx *Context) error {
	itemType := models.ItemType(c.Type)
	if err := validation.ItemType(itemType); err != nil {
		return err
	}
	reason := models.ReportReason(c.Reason)
	if err := validation.ReportReason(reason); err != nil {
		return err
	}

	report := models.Report{
		ID:        uuid.New().String(),
		ItemType:  itemType,
		ItemID:    c.ID,
		Reason:    reason,
		Details:   c.Details,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddReport(report); err != nil {
		return err
	}
	fmt.Println("Report submitted. Thank you for keeping listings accurate.")
	return nil
}
