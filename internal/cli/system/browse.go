package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitlog/internal/cli"
	"github.com/julianstephens/habitlog/internal/tui"
)

type BrowseCmd struct{}

func (c *BrowseCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Store),
		tea.WithAltScreen(),
		tea.WithInput(ctx.In),
		tea.WithOutput(ctx.Out),
	)
	_, err := p.Run()
	return err
}
