package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zdzakic/booky/internal/api"
	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/logger"
)

// AuthExpired reports whether the dashboard quit because the session could
// not be refreshed. The CLI prints the re-login hint in that case.
func (m DashboardModel) AuthExpired() bool {
	return m.authExpired
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case reservationsLoadedMsg:
		if msg.seq != m.fetchSeq {
			logger.Debug("dropping stale reservation response", "seq", msg.seq, "current", m.fetchSeq)
			return m, nil
		}
		m.fetchPending = false
		if msg.err != nil {
			return m.handleAPIError(msg.err)
		}
		m.coord.Replace(msg.reservations)
		m.errMsg = ""
		m.regroup()
		return m, nil

	case holidaysLoadedMsg:
		if msg.err != nil {
			return m.handleAPIError(msg.err)
		}
		m.holidays = msg.holidays
		if m.holidayCursor >= len(m.holidays) {
			m.holidayCursor = len(m.holidays) - 1
		}
		if m.holidayCursor < 0 {
			m.holidayCursor = 0
		}
		return m, nil

	case approveResultMsg:
		if msg.err != nil {
			m.coord.RollbackApprove(msg.id)
			m.regroup()
			return m.handleAPIError(msg.err)
		}
		m.coord.CommitApprove(msg.id)
		m.regroup()
		return m, nil

	case deleteResultMsg:
		if msg.err != nil {
			m.coord.FailDelete(msg.id)
			return m.handleAPIError(msg.err)
		}
		m.coord.CommitDelete(msg.id)
		m.regroup()
		return m, nil

	case holidayCreatedMsg:
		if msg.err != nil {
			return m.handleAPIError(msg.err)
		}
		m.errMsg = ""
		return m, loadHolidaysCmd(m.client)

	case holidayDeletedMsg:
		if msg.err != nil {
			return m.handleAPIError(msg.err)
		}
		m.errMsg = ""
		return m, loadHolidaysCmd(m.client)

	case searchDebounceMsg:
		// Only the newest generation applies; earlier ticks mean the user
		// kept typing.
		if msg.generation != m.searchGen {
			return m, nil
		}
		m.appliedQuery = m.searchInput.Value()
		m.regroup()
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.state == constants.StateAddHoliday && m.form != nil {
		return m.updateHolidayForm(msg)
	}
	if m.searchActive {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m DashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.searchActive {
		return m.updateSearch(msg)
	}

	switch m.state {
	case constants.StateReservations:
		return m.updateReservations(msg)
	case constants.StateHolidays:
		return m.updateHolidays(msg)
	case constants.StateAddHoliday:
		return m.updateHolidayForm(msg)
	case constants.StateConfirmDeleteReservation:
		return m.updateConfirmDeleteReservation(msg)
	case constants.StateConfirmDeleteHoliday:
		return m.updateConfirmDeleteHoliday(msg)
	}
	return m, nil
}

// updateSearch routes keystrokes to the search input. Every edit starts a new
// debounce generation; the query applies only when its tick survives.
func (m DashboardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		m.appliedQuery = m.searchInput.Value()
		m.regroup()
		return m, nil
	case "esc":
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.appliedQuery = ""
		m.regroup()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchGen++
	return m, tea.Batch(cmd, debounceSearchCmd(m.searchGen))
}

func (m DashboardModel) updateReservations(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		m.state = constants.StateHolidays
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searchActive = true
		return m, m.searchInput.Focus()
	case key.Matches(msg, m.keys.Refresh):
		cmd := m.fetchReservations()
		return m, cmd
	case key.Matches(msg, m.keys.Approve):
		return m.approveSelected()
	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.selectedReservation(); ok {
			m.pendingDeleteID = r.ID
			m.previous = m.state
			m.state = constants.StateConfirmDeleteReservation
		}
		return m, nil
	}

	switch msg.String() {
	case "1":
		return m.switchPeriod(constants.PeriodUpcoming)
	case "2":
		return m.switchPeriod(constants.PeriodPending)
	case "3":
		return m.switchPeriod(constants.PeriodAll)
	case "4":
		return m.switchPeriod(constants.PeriodPast)
	case "?":
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m DashboardModel) switchPeriod(p constants.Period) (tea.Model, tea.Cmd) {
	if m.period == p {
		return m, nil
	}
	m.period = p
	m.cursor = 0
	cmd := m.fetchReservations()
	return m, cmd
}

// approveSelected flips the flag locally and fires the backend call. The row
// updates immediately; a failure later rolls the list back.
func (m DashboardModel) approveSelected() (tea.Model, tea.Cmd) {
	r, ok := m.selectedReservation()
	if !ok {
		return m, nil
	}
	if r.IsApproved {
		return m, nil
	}
	if err := m.coord.BeginApprove(r.ID); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.regroup()
	return m, approveReservationCmd(m.client, r.ID)
}

func (m DashboardModel) updateConfirmDeleteReservation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.state = m.previous
		if err := m.coord.BeginDelete(m.pendingDeleteID); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m, deleteReservationCmd(m.client, m.pendingDeleteID)
	case "n", "esc":
		m.state = m.previous
	}
	return m, nil
}

func (m DashboardModel) updateHolidays(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		m.state = constants.StateReservations
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.holidayCursor > 0 {
			m.holidayCursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.holidayCursor < len(m.holidays)-1 {
			m.holidayCursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.holidayForm = &HolidayFormModel{}
		m.form = newHolidayForm(m.holidayForm)
		m.state = constants.StateAddHoliday
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if m.holidayCursor < len(m.holidays) {
			m.pendingHolidayID = m.holidays[m.holidayCursor].ID
			m.state = constants.StateConfirmDeleteHoliday
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, loadHolidaysCmd(m.client)
	}
	return m, nil
}

func (m DashboardModel) updateHolidayForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		m.state = constants.StateHolidays
		return m, createHolidayCmd(m.client, m.holidayForm.Name, m.holidayForm.Date)
	case huh.StateAborted:
		m.state = constants.StateHolidays
		return m, nil
	}
	return m, cmd
}

func (m DashboardModel) updateConfirmDeleteHoliday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.state = constants.StateHolidays
		return m, deleteHolidayCmd(m.client, m.pendingHolidayID)
	case "n", "esc":
		m.state = constants.StateHolidays
	}
	return m, nil
}

// handleAPIError shows a recoverable error inline; an unrecoverable auth
// failure ends the session so the operator can log in again.
func (m DashboardModel) handleAPIError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, api.ErrUnauthorized) {
		m.authExpired = true
		m.quitting = true
		return m, tea.Quit
	}
	m.errMsg = friendlyError(err)
	return m, nil
}
