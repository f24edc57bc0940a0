package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/models"
)

func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateReservations:
		content = m.viewReservations()
	case constants.StateHolidays:
		content = m.viewHolidays()
	case constants.StateAddHoliday:
		content = m.form.View()
	case constants.StateConfirmDeleteReservation:
		content = m.viewConfirmDelete("Delete this reservation?")
	case constants.StateConfirmDeleteHoliday:
		content = m.viewConfirmDelete("Delete this holiday?")
	}

	sections := []string{m.viewTabs(), content}
	if m.errMsg != "" {
		sections = append(sections, dangerStyle.Render(m.errMsg))
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Reservations", "Holidays"} {
		active := (i == 0 && m.state != constants.StateHolidays) ||
			(i == 1 && m.state == constants.StateHolidays)
		if active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m DashboardModel) viewReservations() string {
	var b strings.Builder

	b.WriteString(m.viewStats())
	b.WriteString("\n")
	b.WriteString(m.viewFilterBar())
	b.WriteString("\n\n")

	if m.fetchPending {
		b.WriteString(mutedStyle.Render("Loading reservations..."))
		return docStyle.Render(b.String())
	}

	if m.rowCount() == 0 {
		b.WriteString(mutedStyle.Render("No reservations match."))
		return docStyle.Render(b.String())
	}

	if len(m.grouped.Today) > 0 {
		b.WriteString(headerCellStyle.Render("Today"))
		b.WriteString("\n")
		for i, r := range m.grouped.Today {
			b.WriteString(m.renderRow(r, i == m.cursor))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if len(m.grouped.Future) > 0 {
		b.WriteString(headerCellStyle.Render("Upcoming"))
		b.WriteString("\n")
		for i, r := range m.grouped.Future {
			b.WriteString(m.renderRow(r, len(m.grouped.Today)+i == m.cursor))
			b.WriteString("\n")
		}
	}

	return docStyle.Render(b.String())
}

func (m DashboardModel) viewStats() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		pendingBadgeStyle.Render(fmt.Sprintf(" %d pending ", m.stats.Pending)),
		approvedBadgeStyle.Render(fmt.Sprintf(" %d today ", m.stats.Today)),
		mutedStyle.Render(fmt.Sprintf(" %d this week ", m.stats.ThisWeek)),
	)
}

func (m DashboardModel) viewFilterBar() string {
	labels := []struct {
		period constants.Period
		label  string
	}{
		{constants.PeriodUpcoming, "[1] 3 weeks"},
		{constants.PeriodPending, "[2] pending"},
		{constants.PeriodAll, "[3] all"},
		{constants.PeriodPast, "[4] past"},
	}
	var parts []string
	for _, l := range labels {
		if m.period == l.period {
			parts = append(parts, activeTabStyle.Render(l.label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(l.label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	if m.searchActive {
		return bar + "\n" + m.searchInput.View()
	}
	if q := m.searchInput.Value(); q != "" {
		return bar + "\n" + mutedStyle.Render("search: "+q+"  (/ edit, esc clear)")
	}
	return bar
}

// renderRow lays out one reservation line. The next-up reservation gets its
// own color even when not under the cursor.
func (m DashboardModel) renderRow(r models.Reservation, selected bool) string {
	badge := pendingBadgeStyle.Render("●")
	if r.IsApproved {
		badge = approvedBadgeStyle.Render("✓")
	}
	if m.coord.InFlight(r.ID) {
		badge = warningStyle.Render("…")
	}

	line := fmt.Sprintf("%s %s  %-22s %-14s %-10s %s",
		badge, slotSummary(r), truncate(r.FullName, 22), truncate(r.Phone, 14),
		truncate(r.LicensePlate, 10), truncate(r.ServiceName, 20))

	switch {
	case selected:
		return selectedRowStyle.Render(line)
	case r.IsNext:
		return nextRowStyle.Render(line + "  ← next")
	default:
		return line
	}
}

// slotSummary shows the earliest slot plus a count when there are more.
func slotSummary(r models.Reservation) string {
	if len(r.Slots) == 0 {
		return "            "
	}
	earliest := r.Slots[0]
	for _, s := range r.Slots[1:] {
		if s.SortKey() < earliest.SortKey() {
			earliest = s
		}
	}
	day := earliest.Date
	if len(day) == len(constants.DateFormat) {
		day = day[5:] // MM-DD is enough next to the section headers
	}
	out := fmt.Sprintf("%s %s", day, earliest.StartHHMM())
	if len(r.Slots) > 1 {
		out += fmt.Sprintf(" +%d", len(r.Slots)-1)
	}
	return fmt.Sprintf("%-12s", out)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func (m DashboardModel) viewHolidays() string {
	var b strings.Builder
	if len(m.holidays) == 0 {
		b.WriteString(mutedStyle.Render("No holidays configured."))
	}
	for i, h := range m.holidays {
		line := fmt.Sprintf("%s  %s", h.Date, h.Name)
		if i == m.holidayCursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return docStyle.Render(b.String())
}

func (m DashboardModel) viewConfirmDelete(prompt string) string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(prompt),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
