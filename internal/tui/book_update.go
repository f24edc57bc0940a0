package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zdzakic/booky/internal/api"
	"github.com/zdzakic/booky/internal/booking"
	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/logger"
	"github.com/zdzakic/booky/internal/validation"
)

func (m BookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case servicesLoadedMsg:
		if msg.err != nil {
			m.errMsg = friendlyError(msg.err)
			return m, nil
		}
		m.services = msg.services
		return m.startupFetchDone()

	case blockedDatesLoadedMsg:
		if msg.err != nil {
			m.errMsg = friendlyError(msg.err)
			return m, nil
		}
		m.blocked = msg.blocked
		return m.startupFetchDone()

	case slotsLoadedMsg:
		// A response for a superseded date/service query changes nothing.
		if msg.seq != m.slotSeq {
			logger.Debug("dropping stale slot response", "seq", msg.seq, "current", m.slotSeq)
			return m, nil
		}
		m.slotsPending = false
		if msg.err != nil {
			// Non-blocking: stay on the slot screen with an empty grid so
			// the user can retry or go back a day.
			m.errMsg = friendlyError(msg.err)
			m.slots = nil
			return m, nil
		}
		m.slots = msg.slots
		m.slotCursor = 0
		return m, nil

	case bookingSubmittedMsg:
		m.submitting = false
		if msg.err == nil {
			m.state = constants.StateSuccess
			m.errMsg = ""
			return m, nil
		}
		var ve *api.ValidationError
		if errors.As(msg.err, &ve) {
			// Most likely the slot was taken while the user hesitated.
			// Re-fetch so the grid reflects reality.
			m.errMsg = ve.Detail
			m.state = constants.StateSlotPick
			cmd := m.fetchSlots()
			return m, cmd
		}
		m.errMsg = friendlyError(msg.err)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.state {
		case constants.StateDatePick:
			return m.updateDatePick(msg)
		case constants.StateSlotPick:
			return m.updateSlotPick(msg)
		case constants.StateConfirmBooking:
			return m.updateConfirm(msg)
		case constants.StateSuccess:
			return m.updateSuccess(msg)
		}
	}

	if m.state == constants.StateBookingForm && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		if m.form.State == huh.StateCompleted {
			m.state = constants.StateDatePick
			m.errMsg = ""
		}
		return m, cmd
	}

	return m, nil
}

// startupFetchDone counts down the initial loads and presents the form once
// services and blocked dates are both in.
func (m BookModel) startupFetchDone() (tea.Model, tea.Cmd) {
	m.loading--
	if m.loading > 0 {
		return m, nil
	}

	today := time.Now()
	if d, ok := booking.NextSelectableDate(today, today, m.blocked); ok {
		m.date = d
	} else {
		m.date = today
	}
	m.form = newBookingForm(m.bookForm, m.services, m.lang)
	return m, m.form.Init()
}

func (m BookModel) updateDatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	today := time.Now()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.state = constants.StateBookingForm
		m.form = newBookingForm(m.bookForm, m.services, m.lang)
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Right):
		if d, ok := booking.NextSelectableDate(m.date.AddDate(0, 0, 1), today, m.blocked); ok {
			m.date = d
		}
		return m, nil
	case key.Matches(msg, m.keys.Left):
		if d, ok := prevSelectableDate(m.date, today, m.blocked); ok {
			m.date = d
		}
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.state = constants.StateSlotPick
		m.errMsg = ""
		cmd := m.fetchSlots()
		return m, cmd
	}
	return m, nil
}

// fetchSlots starts a slot query for the current date and service. The
// selected time is cleared first: it belonged to the previous query.
func (m *BookModel) fetchSlots() tea.Cmd {
	m.selectedTime = ""
	m.slots = nil
	m.slotSeq++
	m.slotsPending = true
	return loadSlotsCmd(m.client, m.slotSeq, m.bookForm.ServiceID, m.date.Format(constants.DateFormat))
}

func (m BookModel) updateSlotPick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.state = constants.StateDatePick
		m.selectedTime = ""
		return m, nil
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Left):
		if m.slotCursor > 0 {
			m.slotCursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Right):
		if m.slotCursor < len(m.slots)-1 {
			m.slotCursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		cmd := m.fetchSlots()
		return m, cmd
	case key.Matches(msg, m.keys.Enter):
		if m.slotCursor >= len(m.slots) {
			return m, nil
		}
		slot := m.slots[m.slotCursor]
		if !slot.Enabled {
			m.errMsg = "that time is already taken"
			return m, nil
		}
		m.selectedTime = slot.Time
		m.errMsg = ""
		m.state = constants.StateConfirmBooking
		return m, nil
	}
	return m, nil
}

func (m BookModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		result := validation.ValidateBooking(validation.BookingInput{
			FullName:     m.bookForm.FullName,
			Phone:        m.bookForm.Phone,
			Email:        m.bookForm.Email,
			LicensePlate: m.bookForm.LicensePlate,
			ServiceID:    m.bookForm.ServiceID,
			Date:         m.date.Format(constants.DateFormat),
			Time:         m.selectedTime,
		})
		if !result.Valid() {
			m.errMsg = result.Errors[0].Message
			return m, nil
		}
		m.submitting = true
		m.errMsg = ""
		return m, submitBookingCmd(m.client, api.CreateReservationRequest{
			FullName:     m.bookForm.FullName,
			Phone:        m.bookForm.Phone,
			Email:        m.bookForm.Email,
			LicensePlate: m.bookForm.LicensePlate,
			Service:      m.bookForm.ServiceID,
			IsStored:     m.bookForm.IsStored,
			Date:         m.date.Format(constants.DateFormat),
			StartTime:    m.selectedTime + ":00",
		})
	case "n", "esc":
		m.state = constants.StateSlotPick
		return m, nil
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m BookModel) updateSuccess(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		// Fresh booking for another customer.
		*m.bookForm = BookingFormModel{}
		m.state = constants.StateBookingForm
		m.selectedTime = ""
		m.slots = nil
		m.errMsg = ""
		m.form = newBookingForm(m.bookForm, m.services, m.lang)
		return m, m.form.Init()
	default:
		m.quitting = true
		return m, tea.Quit
	}
}

// prevSelectableDate scans backward for the closest earlier selectable date.
func prevSelectableDate(from, today time.Time, blocked []string) (time.Time, bool) {
	d := from.AddDate(0, 0, -1)
	for i := 0; i < 366; i++ {
		if booking.IsDateSelectable(d, today, blocked) {
			return d, true
		}
		d = d.AddDate(0, 0, -1)
	}
	return time.Time{}, false
}

// friendlyError maps the client error taxonomy to a short operator-facing line.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return "backend unreachable, check your connection and try again"
	case errors.Is(err, api.ErrUnauthorized):
		return "session expired, please run `booky login`"
	case errors.Is(err, api.ErrForbidden):
		return "you are not allowed to do that"
	case errors.Is(err, api.ErrServer):
		return "the backend hit an internal error, try again shortly"
	}
	var ve *api.ValidationError
	if errors.As(err, &ve) {
		return ve.Detail
	}
	return err.Error()
}
