package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/keyring"
	"github.com/zdzakic/booky/internal/tui"
)

// DashboardCmd launches the admin dashboard. Requires a stored session.
type DashboardCmd struct {
	Period string `short:"p" help:"Initial period filter (3w|pending|all|past)." enum:"3w,pending,all,past," default:""`
}

func (c *DashboardCmd) Run(ctx *Context) error {
	if _, err := keyring.Get(); err != nil {
		return fmt.Errorf("not logged in, run `booky login` first")
	}

	period := constants.Period(c.Period)
	if period == "" {
		period = constants.Period(ctx.Settings.DefaultPeriod)
	}
	if period == "" {
		period = constants.PeriodUpcoming
	}

	client := ctx.AuthedClient()
	p := tea.NewProgram(tui.NewDashboardModel(client, ctx.Settings.Language, period), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("dashboard ui failed: %w", err)
	}
	if m, ok := final.(tui.DashboardModel); ok && m.AuthExpired() {
		return fmt.Errorf("session expired, run `booky login` again")
	}
	return nil
}
