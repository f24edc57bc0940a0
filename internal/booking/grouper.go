package booking

import (
	"sort"

	"github.com/zdzakic/booky/internal/models"
)

// Grouped is the dashboard's partition of the reservation list.
type Grouped struct {
	Today  []models.Reservation
	Future []models.Reservation
}

// GroupByDay partitions reservations into today/future buckets. A reservation
// with at least one slot on todayISO belongs to Today, even if it also has
// future slots. Otherwise it is Future when its earliest slot is on or after
// todayISO. Reservations entirely in the past, and reservations with no slots
// at all, are dropped.
//
// Today is sorted by the earliest today-slot start time ascending; Future by
// the earliest "date start_time" composite ascending.
func GroupByDay(reservations []models.Reservation, todayISO string) Grouped {
	g := Grouped{Today: []models.Reservation{}, Future: []models.Reservation{}}

	for _, r := range reservations {
		if len(r.Slots) == 0 {
			continue
		}
		if hasSlotOn(r, todayISO) {
			g.Today = append(g.Today, r)
			continue
		}
		// Lexicographic compare works: "2025-07-16 09:00" < "2025-07-17".
		if earliestKey(r.Slots) >= todayISO {
			g.Future = append(g.Future, r)
		}
	}

	sort.SliceStable(g.Today, func(i, j int) bool {
		return earliestTimeOn(g.Today[i], todayISO) < earliestTimeOn(g.Today[j], todayISO)
	})
	sort.SliceStable(g.Future, func(i, j int) bool {
		return earliestKey(g.Future[i].Slots) < earliestKey(g.Future[j].Slots)
	})

	return g
}

// MarkNext flags the single first reservation in the pre-sorted today bucket
// whose earliest today-slot start is strictly after nowHHMM. First found
// wins; all others are unmarked. Returns the marked index, or -1 when the
// clock is already past every slot.
func MarkNext(today []models.Reservation, todayISO, nowHHMM string) int {
	next := -1
	for i := range today {
		today[i].IsNext = false
		if next == -1 && earliestTimeOn(today[i], todayISO) > nowHHMM {
			today[i].IsNext = true
			next = i
		}
	}
	return next
}

// hasSlotOn reports whether any slot falls on the given calendar day.
func hasSlotOn(r models.Reservation, day string) bool {
	for _, s := range r.Slots {
		if s.Date == day {
			return true
		}
	}
	return false
}

// earliestKey returns the smallest "YYYY-MM-DD HH:MM:SS" composite among slots.
// Callers must guarantee slots is non-empty.
func earliestKey(slots []models.Slot) string {
	earliest := slots[0].SortKey()
	for _, s := range slots[1:] {
		if k := s.SortKey(); k < earliest {
			earliest = k
		}
	}
	return earliest
}

// earliestTimeOn returns the smallest HH:MM start among the reservation's
// slots on the given day, or "99:99" when none fall on it.
func earliestTimeOn(r models.Reservation, day string) string {
	earliest := "99:99"
	for _, s := range r.Slots {
		if s.Date != day {
			continue
		}
		if t := s.StartHHMM(); t < earliest {
			earliest = t
		}
	}
	return earliest
}

// Stats are the dashboard quick-stat counters, derived from the full
// (unfiltered) reservation list.
type Stats struct {
	Pending  int
	Today    int
	ThisWeek int
}

// ComputeStats counts pending approvals, today's reservations, and this
// week's reservations (Monday through Sunday containing todayISO).
func ComputeStats(reservations []models.Reservation, todayISO string) Stats {
	weekStart, weekEnd := isoWeekBounds(todayISO)

	var st Stats
	for _, r := range reservations {
		if !r.IsApproved {
			st.Pending++
		}
		if hasSlotOn(r, todayISO) {
			st.Today++
		}
		for _, s := range r.Slots {
			if s.Date >= weekStart && s.Date <= weekEnd {
				st.ThisWeek++
				break
			}
		}
	}
	return st
}
