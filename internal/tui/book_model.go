package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zdzakic/booky/internal/api"
	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/models"
	"github.com/zdzakic/booky/internal/validation"
)

// BookingFormModel is the raw customer form state bound to the huh inputs.
type BookingFormModel struct {
	FullName     string
	Phone        string
	Email        string
	LicensePlate string
	ServiceID    int
	IsStored     bool
}

// BookModel drives the public booking flow: customer form, date pick, slot
// pick, confirmation, success. A single goroutine runs the update loop;
// backend calls resolve as messages.
type BookModel struct {
	client *api.Client
	lang   string

	state constants.SessionState
	keys  KeyMap
	help  help.Model

	services []models.Service
	blocked  []string
	loading  int // outstanding startup fetches

	form     *huh.Form
	bookForm *BookingFormModel

	// Date and slot selection. slotSeq identifies the slot query the current
	// slot list answers; a stale fetch result is dropped on arrival.
	date         time.Time
	slots        []models.SlotView
	slotSeq      int
	slotsPending bool
	slotCursor   int
	selectedTime string

	submitting bool
	errMsg     string
	quitting   bool
	width      int
	height     int
}

// NewBookModel builds the booking program. Services and blocked dates load
// asynchronously; the form is shown once both arrive.
func NewBookModel(client *api.Client, lang string) BookModel {
	m := BookModel{
		client:   client,
		lang:     lang,
		state:    constants.StateBookingForm,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		bookForm: &BookingFormModel{},
		loading:  2,
	}
	return m
}

func (m BookModel) Init() tea.Cmd {
	return tea.Batch(
		loadServicesCmd(m.client),
		loadBlockedDatesCmd(m.client, 60),
	)
}

// newBookingForm binds the huh inputs to the form state. Field validators
// mirror the pre-submission checks so invalid input is caught while typing.
func newBookingForm(fm *BookingFormModel, services []models.Service, lang string) *huh.Form {
	opts := make([]huh.Option[int], 0, len(services))
	for _, s := range services {
		opts = append(opts, huh.NewOption(s.Name(lang), s.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full Name").
				Value(&fm.FullName).
				Validate(fieldValidator(validation.FullName)),
			huh.NewInput().
				Title("Phone").
				Description("Swiss format, e.g. +41791234567 or 0791234567").
				Value(&fm.Phone).
				Validate(fieldValidator(validation.Phone)),
			huh.NewInput().
				Title("Email").
				Value(&fm.Email).
				Validate(fieldValidator(validation.Email)),
			huh.NewInput().
				Title("License Plate").
				Value(&fm.LicensePlate).
				Validate(fieldValidator(validation.LicensePlate)),
			huh.NewSelect[int]().
				Title("Service").
				Options(opts...).
				Value(&fm.ServiceID),
			huh.NewConfirm().
				Title("Tires stored with us?").
				Value(&fm.IsStored),
		),
	).WithTheme(huh.ThemeDracula())
}

func fieldValidator(check func(string) string) func(string) error {
	return func(s string) error {
		if msg := check(s); msg != "" {
			return validationErr(msg)
		}
		return nil
	}
}

type validationErr string

func (e validationErr) Error() string { return string(e) }
