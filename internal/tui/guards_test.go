package tui

import (
	"testing"

	"github.com/zdzakic/booky/internal/booking"
	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/models"
)

// The stale-response guards are the part of the event loop most worth pinning
// down: a slow response for a superseded query must never clobber newer state.

func TestStaleSlotResponseDropped(t *testing.T) {
	m := NewBookModel(nil, "de")
	m.state = constants.StateSlotPick
	m.slotSeq = 3
	m.slots = []models.SlotView{{Time: "09:00", Enabled: true}}

	updated, _ := m.Update(slotsLoadedMsg{
		seq:   2, // answer to an older date/service query
		slots: []models.SlotView{{Time: "14:00", Enabled: true}},
	})

	got := updated.(BookModel)
	if len(got.slots) != 1 || got.slots[0].Time != "09:00" {
		t.Errorf("stale response replaced the slot list: %+v", got.slots)
	}
}

func TestCurrentSlotResponseApplied(t *testing.T) {
	m := NewBookModel(nil, "de")
	m.state = constants.StateSlotPick
	m.slotSeq = 3
	m.slotsPending = true

	updated, _ := m.Update(slotsLoadedMsg{
		seq:   3,
		slots: []models.SlotView{{Time: "14:00", Enabled: true}},
	})

	got := updated.(BookModel)
	if got.slotsPending {
		t.Error("matching response should clear the pending flag")
	}
	if len(got.slots) != 1 || got.slots[0].Time != "14:00" {
		t.Errorf("matching response not applied: %+v", got.slots)
	}
}

func TestFetchSlotsResetsSelection(t *testing.T) {
	m := NewBookModel(nil, "de")
	m.selectedTime = "09:00"
	m.slots = []models.SlotView{{Time: "09:00", Enabled: true}}
	seqBefore := m.slotSeq

	m.fetchSlots()

	if m.selectedTime != "" {
		t.Error("requery must clear the selected time")
	}
	if m.slotSeq != seqBefore+1 {
		t.Errorf("slotSeq = %d, want %d", m.slotSeq, seqBefore+1)
	}
	if len(m.slots) != 0 {
		t.Error("requery must clear the previous slot list")
	}
}

func TestStaleReservationResponseDropped(t *testing.T) {
	m := NewDashboardModel(nil, "de", constants.PeriodUpcoming)
	m.coord = booking.NewCoordinator([]models.Reservation{{ID: 1, FullName: "kept"}})
	m.fetchSeq = 5

	updated, _ := m.Update(reservationsLoadedMsg{
		seq:          4,
		reservations: []models.Reservation{{ID: 9, FullName: "stale"}},
	})

	got := updated.(DashboardModel)
	if len(got.coord.Reservations()) != 1 || got.coord.Reservations()[0].ID != 1 {
		t.Errorf("stale reservation response applied: %+v", got.coord.Reservations())
	}
}

func TestStaleSearchGenerationIgnored(t *testing.T) {
	m := NewDashboardModel(nil, "de", constants.PeriodUpcoming)
	m.searchGen = 7
	m.searchInput.SetValue("max")
	m.appliedQuery = ""

	updated, _ := m.Update(searchDebounceMsg{generation: 6})
	got := updated.(DashboardModel)
	if got.appliedQuery != "" {
		t.Error("superseded debounce tick must not apply the query")
	}

	updated, _ = got.Update(searchDebounceMsg{generation: 7})
	got = updated.(DashboardModel)
	if got.appliedQuery != "max" {
		t.Errorf("appliedQuery = %q after settling, want %q", got.appliedQuery, "max")
	}
}
