package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zdzakic/booky/internal/api"
	"github.com/zdzakic/booky/internal/booking"
	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/models"
)

// HolidayFormModel is the add-holiday form state bound to the huh inputs.
type HolidayFormModel struct {
	Name string
	Date string
}

// DashboardModel drives the admin dashboard: the grouped reservation list
// with search, period filters and approve/delete, plus the holiday manager.
//
// All reservation state lives in the mutation coordinator; the visible
// grouping is recomputed from it after every change.
type DashboardModel struct {
	client *api.Client
	lang   string

	state    constants.SessionState
	previous constants.SessionState
	keys     KeyMap
	help     help.Model

	coord   *booking.Coordinator
	grouped booking.Grouped
	stats   booking.Stats
	period  constants.Period

	// fetchSeq identifies the reservation query the held list answers. A
	// period switch or refresh bumps it; stale responses are dropped.
	fetchSeq     int
	fetchPending bool

	// Search. The input updates on every keystroke; the applied query only
	// follows once the debounce generation settles.
	searchInput  textinput.Model
	searchActive bool
	appliedQuery string
	searchGen    int

	cursor int

	holidays      []models.Holiday
	holidayCursor int
	holidayForm   *HolidayFormModel
	form          *huh.Form

	pendingDeleteID  int
	pendingHolidayID int

	errMsg      string
	authExpired bool
	quitting    bool
	width       int
	height      int
}

// NewDashboardModel builds the dashboard program with the operator's stored
// default period filter.
func NewDashboardModel(client *api.Client, lang string, period constants.Period) DashboardModel {
	ti := textinput.New()
	ti.Placeholder = "name, phone, email or plate"
	ti.CharLimit = 64
	ti.Width = 36

	return DashboardModel{
		client:       client,
		lang:         lang,
		state:        constants.StateReservations,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		coord:        booking.NewCoordinator(nil),
		period:       period,
		searchInput:  ti,
		fetchSeq:     1,
		fetchPending: true,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		loadReservationsCmd(m.client, m.fetchSeq, string(m.period)),
		loadHolidaysCmd(m.client),
	)
}

// fetchReservations starts a list query for the current period filter.
func (m *DashboardModel) fetchReservations() tea.Cmd {
	m.fetchSeq++
	m.fetchPending = true
	return loadReservationsCmd(m.client, m.fetchSeq, string(m.period))
}

// regroup rebuilds the visible partition from the coordinator's list: search
// filter first, then today/future grouping, then the next-up marker.
func (m *DashboardModel) regroup() {
	now := time.Now()
	todayISO := now.Format(constants.DateFormat)

	visible := booking.Filter(m.coord.Reservations(), m.appliedQuery)
	m.grouped = booking.GroupByDay(visible, todayISO)
	booking.MarkNext(m.grouped.Today, todayISO, now.Format(constants.TimeFormat))
	m.stats = booking.ComputeStats(m.coord.Reservations(), todayISO)

	if total := len(m.grouped.Today) + len(m.grouped.Future); m.cursor >= total {
		m.cursor = total - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectedReservation resolves the cursor across the today and future buckets.
func (m DashboardModel) selectedReservation() (models.Reservation, bool) {
	if m.cursor < len(m.grouped.Today) {
		return m.grouped.Today[m.cursor], true
	}
	idx := m.cursor - len(m.grouped.Today)
	if idx < len(m.grouped.Future) {
		return m.grouped.Future[idx], true
	}
	return models.Reservation{}, false
}

func (m DashboardModel) rowCount() int {
	return len(m.grouped.Today) + len(m.grouped.Future)
}

func newHolidayForm(fm *HolidayFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if s == "" {
						return validationErr("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(func(s string) error {
					if _, err := time.Parse(constants.DateFormat, s); err != nil {
						return validationErr("use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
