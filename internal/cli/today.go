package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/innerascend/ascend/internal/tui"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	greeting := "Inner Ascend"
	if name := ctx.Config.User.DisplayName; name != "" {
		greeting = fmt.Sprintf("Inner Ascend — hello, %s", name)
	}

	model := tui.NewModel(ctx.Store, greeting, ctx.Now)
	_, err := tea.NewProgram(model).Run()
	return err
}
