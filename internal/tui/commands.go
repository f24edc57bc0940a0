package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zdzakic/booky/internal/api"
	"github.com/zdzakic/booky/internal/booking"
	"github.com/zdzakic/booky/internal/constants"
)

// requestTimeout bounds each command's backend call independently of the
// program's lifetime.
const requestTimeout = constants.RequestTimeoutSeconds * time.Second

func loadServicesCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		services, err := client.Services(ctx)
		return servicesLoadedMsg{services: services, err: err}
	}
}

// loadBlockedDatesCmd merges holidays and disabled dates into the normalized
// blocked-date list used by the date picker.
func loadBlockedDatesCmd(client *api.Client, days int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		holidays, err := client.Holidays(ctx)
		if err != nil {
			return blockedDatesLoadedMsg{err: err}
		}
		disabled, err := client.DisabledDates(ctx, days)
		if err != nil {
			return blockedDatesLoadedMsg{err: err}
		}
		return blockedDatesLoadedMsg{blocked: booking.BlockedDates(holidays, disabled)}
	}
}

// loadSlotsCmd fetches the slot list for a date+service query. seq identifies
// the query; the result is dropped if date or service changed in the meantime.
func loadSlotsCmd(client *api.Client, seq, serviceID int, date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		statuses, err := client.AllSlotsStatus(ctx, serviceID, date)
		if err != nil {
			return slotsLoadedMsg{seq: seq, err: err}
		}
		return slotsLoadedMsg{seq: seq, slots: booking.SlotsFromStatus(statuses)}
	}
}

func submitBookingCmd(client *api.Client, req api.CreateReservationRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return bookingSubmittedMsg{err: client.CreateReservation(ctx, req)}
	}
}

func loadReservationsCmd(client *api.Client, seq int, period string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		reservations, err := client.Reservations(ctx, api.ReservationListOptions{Period: period})
		return reservationsLoadedMsg{seq: seq, reservations: reservations, err: err}
	}
}

func loadHolidaysCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		holidays, err := client.Holidays(ctx)
		return holidaysLoadedMsg{holidays: holidays, err: err}
	}
}

func approveReservationCmd(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return approveResultMsg{id: id, err: client.ApproveReservation(ctx, id)}
	}
}

func deleteReservationCmd(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return deleteResultMsg{id: id, err: client.DeleteReservation(ctx, id)}
	}
}

func createHolidayCmd(client *api.Client, name, date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := client.CreateHoliday(ctx, name, date)
		return holidayCreatedMsg{err: err}
	}
}

func deleteHolidayCmd(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return holidayDeletedMsg{id: id, err: client.DeleteHoliday(ctx, id)}
	}
}

// debounceSearchCmd schedules the settle check for a search generation.
func debounceSearchCmd(generation int) tea.Cmd {
	return tea.Tick(constants.SearchDebounceMs*time.Millisecond, func(time.Time) tea.Msg {
		return searchDebounceMsg{generation: generation}
	})
}
