package booking

import (
	"testing"

	"github.com/zdzakic/booky/internal/models"
)

func res(id int, slots ...models.Slot) models.Reservation {
	return models.Reservation{ID: id, FullName: "r", Slots: slots}
}

func slot(date, start string) models.Slot {
	return models.Slot{Date: date, StartTime: start}
}

func TestGroupByDay_Partition(t *testing.T) {
	today := "2025-07-17"
	input := []models.Reservation{
		res(1, slot("2025-07-17", "09:00")),                          // today
		res(2, slot("2025-07-18", "10:00")),                          // future
		res(3, slot("2025-07-16", "08:00")),                          // past, dropped
		res(4, slot("2025-07-17", "14:00"), slot("2025-07-20", "09:00")), // today wins
		res(5), // no slots, dropped
	}

	g := GroupByDay(input, today)

	if len(g.Today) != 2 {
		t.Fatalf("today bucket has %d entries, want 2", len(g.Today))
	}
	if len(g.Future) != 1 {
		t.Fatalf("future bucket has %d entries, want 1", len(g.Future))
	}
	if g.Today[0].ID != 1 || g.Today[1].ID != 4 {
		t.Errorf("today order = [%d %d], want [1 4]", g.Today[0].ID, g.Today[1].ID)
	}
	if g.Future[0].ID != 2 {
		t.Errorf("future[0] = %d, want 2", g.Future[0].ID)
	}
}

func TestGroupByDay_TodaySortedByStartTime(t *testing.T) {
	today := "2025-07-17"
	input := []models.Reservation{
		res(1, slot("2025-07-17", "09:00")),
		res(2, slot("2025-07-17", "08:00")),
	}

	g := GroupByDay(input, today)

	if len(g.Today) != 2 {
		t.Fatalf("today bucket has %d entries, want 2", len(g.Today))
	}
	if g.Today[0].ID != 2 || g.Today[1].ID != 1 {
		t.Errorf("today order = [%d %d], want [2 1]", g.Today[0].ID, g.Today[1].ID)
	}
}

func TestGroupByDay_FutureSortedByDateThenTime(t *testing.T) {
	today := "2025-07-17"
	input := []models.Reservation{
		res(1, slot("2025-07-21", "08:00")),
		res(2, slot("2025-07-18", "16:00")),
		res(3, slot("2025-07-18", "09:00")),
	}

	g := GroupByDay(input, today)

	wantOrder := []int{3, 2, 1}
	if len(g.Future) != len(wantOrder) {
		t.Fatalf("future bucket has %d entries, want %d", len(g.Future), len(wantOrder))
	}
	for i, want := range wantOrder {
		if g.Future[i].ID != want {
			t.Errorf("future[%d] = %d, want %d", i, g.Future[i].ID, want)
		}
	}
}

func TestGroupByDay_SecondsInStartTime(t *testing.T) {
	today := "2025-07-17"
	input := []models.Reservation{
		res(1, slot("2025-07-17", "09:00:00")),
		res(2, slot("2025-07-17", "08:30:00")),
	}

	g := GroupByDay(input, today)
	if g.Today[0].ID != 2 {
		t.Errorf("today[0] = %d, want 2", g.Today[0].ID)
	}
}

func TestMarkNext_FirstUpcomingWins(t *testing.T) {
	today := "2025-07-17"
	bucket := GroupByDay([]models.Reservation{
		res(1, slot("2025-07-17", "08:00")),
		res(2, slot("2025-07-17", "10:00")),
		res(3, slot("2025-07-17", "14:00")),
	}, today).Today

	idx := MarkNext(bucket, today, "09:30")
	if idx != 1 {
		t.Fatalf("MarkNext returned %d, want 1", idx)
	}

	marked := 0
	for _, r := range bucket {
		if r.IsNext {
			marked++
		}
	}
	if marked != 1 {
		t.Errorf("%d reservations marked, want exactly 1", marked)
	}
	if !bucket[1].IsNext {
		t.Error("the 10:00 reservation should be marked")
	}
}

func TestMarkNext_AllPast(t *testing.T) {
	today := "2025-07-17"
	bucket := []models.Reservation{
		res(1, slot("2025-07-17", "08:00")),
	}

	if idx := MarkNext(bucket, today, "18:00"); idx != -1 {
		t.Errorf("MarkNext returned %d, want -1", idx)
	}
	if bucket[0].IsNext {
		t.Error("no reservation should be marked after closing time")
	}
}

func TestMarkNext_ClearsStaleMarks(t *testing.T) {
	today := "2025-07-17"
	bucket := []models.Reservation{
		{ID: 1, IsNext: true, Slots: []models.Slot{slot("2025-07-17", "08:00")}},
		{ID: 2, Slots: []models.Slot{slot("2025-07-17", "15:00")}},
	}

	MarkNext(bucket, today, "12:00")
	if bucket[0].IsNext {
		t.Error("stale mark on the morning reservation should be cleared")
	}
	if !bucket[1].IsNext {
		t.Error("afternoon reservation should be marked")
	}
}

func TestComputeStats(t *testing.T) {
	today := "2025-07-17" // Thursday; week runs 07-14 to 07-20
	input := []models.Reservation{
		{ID: 1, IsApproved: false, Slots: []models.Slot{slot("2025-07-17", "09:00")}},
		{ID: 2, IsApproved: true, Slots: []models.Slot{slot("2025-07-18", "09:00")}},
		{ID: 3, IsApproved: true, Slots: []models.Slot{slot("2025-07-28", "09:00")}},
	}

	st := ComputeStats(input, today)
	if st.Pending != 1 {
		t.Errorf("Pending = %d, want 1", st.Pending)
	}
	if st.Today != 1 {
		t.Errorf("Today = %d, want 1", st.Today)
	}
	if st.ThisWeek != 2 {
		t.Errorf("ThisWeek = %d, want 2", st.ThisWeek)
	}
}

func TestIsoWeekBounds(t *testing.T) {
	cases := []struct {
		day, monday, sunday string
	}{
		{"2025-07-17", "2025-07-14", "2025-07-20"}, // Thursday
		{"2025-07-14", "2025-07-14", "2025-07-20"}, // Monday
		{"2025-07-20", "2025-07-14", "2025-07-20"}, // Sunday
	}
	for _, c := range cases {
		mon, sun := isoWeekBounds(c.day)
		if mon != c.monday || sun != c.sunday {
			t.Errorf("isoWeekBounds(%s) = (%s, %s), want (%s, %s)",
				c.day, mon, sun, c.monday, c.sunday)
		}
	}
}
