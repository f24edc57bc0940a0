package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zdzakic/booky/internal/tui"
)

// BookCmd launches the interactive booking flow. It needs no session; the
// booking endpoints are public.
type BookCmd struct{}

func (c *BookCmd) Run(ctx *Context) error {
	client := ctx.PublicClient()

	p := tea.NewProgram(tui.NewBookModel(client, ctx.Settings.Language), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("booking ui failed: %w", err)
	}
	return nil
}
