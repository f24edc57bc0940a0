package tui

import (
	"github.com/zdzakic/booky/internal/models"
)

// Messages delivered by asynchronous commands. Every fetch that can be
// superseded carries the sequence number of the query that started it; the
// update loop drops any resolution whose sequence no longer matches.

type servicesLoadedMsg struct {
	services []models.Service
	err      error
}

type blockedDatesLoadedMsg struct {
	blocked []string
	err     error
}

type slotsLoadedMsg struct {
	seq   int
	slots []models.SlotView
	err   error
}

type bookingSubmittedMsg struct {
	err error
}

type reservationsLoadedMsg struct {
	seq          int
	reservations []models.Reservation
	err          error
}

type holidaysLoadedMsg struct {
	holidays []models.Holiday
	err      error
}

type approveResultMsg struct {
	id  int
	err error
}

type deleteResultMsg struct {
	id  int
	err error
}

type holidayCreatedMsg struct {
	err error
}

type holidayDeletedMsg struct {
	id  int
	err error
}

// searchDebounceMsg fires when a search query may have settled. Stale
// generations (the user kept typing) are ignored on arrival.
type searchDebounceMsg struct {
	generation int
}
