package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zdzakic/booky/internal/constants"
)

func (m BookModel) View() string {
	if m.quitting {
		return ""
	}

	if m.loading > 0 {
		return docStyle.Render("Loading services...")
	}

	var content string
	switch m.state {
	case constants.StateBookingForm:
		content = m.form.View()
	case constants.StateDatePick:
		content = m.viewDatePick()
	case constants.StateSlotPick:
		content = m.viewSlotPick()
	case constants.StateConfirmBooking:
		content = m.viewConfirmBooking()
	case constants.StateSuccess:
		content = m.viewSuccess()
	}

	sections := []string{
		titleStyle.Render("Book an Appointment"),
		content,
	}
	if m.errMsg != "" {
		sections = append(sections, dangerStyle.Render(m.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BookModel) viewDatePick() string {
	day := m.date.Format("Monday, 02 Jan 2006")
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"Pick a date:",
		"",
		slotSelectedStyle.Render(day),
		"",
		mutedStyle.Render("←/→ change day · enter confirm · esc back"),
	))
}

func (m BookModel) viewSlotPick() string {
	if m.slotsPending {
		return docStyle.Render("Checking availability...")
	}
	if len(m.slots) == 0 {
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			warningStyle.Render("No slots on "+m.date.Format(constants.DateFormat)+"."),
			"",
			mutedStyle.Render("esc pick another day"),
		))
	}

	var buttons []string
	for i, s := range m.slots {
		label := s.Time
		if s.AvailableCount > 1 {
			label = fmt.Sprintf("%s (%d)", s.Time, s.AvailableCount)
		}
		switch {
		case i == m.slotCursor:
			buttons = append(buttons, slotSelectedStyle.Render(label))
		case s.Enabled:
			buttons = append(buttons, slotEnabledStyle.Render(label))
		default:
			buttons = append(buttons, slotDisabledStyle.Render(label))
		}
	}

	// Four slots per row keeps a full day readable on narrow terminals.
	var rows []string
	for len(buttons) > 0 {
		n := 4
		if len(buttons) < n {
			n = len(buttons)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons[:n]...))
		buttons = buttons[n:]
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"Slots on "+m.date.Format("Monday, 02 Jan 2006")+":",
		"",
		strings.Join(rows, "\n"),
		"",
		mutedStyle.Render("↑/↓/←/→ move · enter select · r refresh · esc back"),
	))
}

func (m BookModel) viewConfirmBooking() string {
	if m.submitting {
		return docStyle.Render("Submitting booking...")
	}

	serviceName := ""
	for _, s := range m.services {
		if s.ID == m.bookForm.ServiceID {
			serviceName = s.Name(m.lang)
		}
	}
	stored := "no"
	if m.bookForm.IsStored {
		stored = "yes"
	}

	summary := [][2]string{
		{"Name", m.bookForm.FullName},
		{"Phone", m.bookForm.Phone},
		{"Email", m.bookForm.Email},
		{"Plate", m.bookForm.LicensePlate},
		{"Service", serviceName},
		{"Tires stored", stored},
		{"Date", m.date.Format(constants.DateFormat)},
		{"Time", m.selectedTime},
	}
	var lines []string
	for _, kv := range summary {
		lines = append(lines, headerCellStyle.Render(fmt.Sprintf("%-14s", kv[0]))+kv[1])
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"Confirm this booking?",
		"",
		strings.Join(lines, "\n"),
		"",
		"[y] Confirm   [n] Back",
	))
}

func (m BookModel) viewSuccess() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		successStyle.Render("✓ Booking confirmed"),
		"",
		fmt.Sprintf("%s at %s, see you then!", m.date.Format("Monday, 02 Jan 2006"), m.selectedTime),
		"",
		mutedStyle.Render("[n] book another · any other key to quit"),
	))
}
