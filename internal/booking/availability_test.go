package booking

import (
	"testing"
	"time"

	"github.com/zdzakic/booky/internal/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestIsDateSelectable_PastDateRejected(t *testing.T) {
	today := mustDate(t, "2025-07-17") // a Thursday
	yesterday := mustDate(t, "2025-07-16")

	if IsDateSelectable(yesterday, today, nil) {
		t.Error("yesterday should not be selectable")
	}
	if !IsDateSelectable(today, today, nil) {
		t.Error("today itself should be selectable")
	}
}

func TestIsDateSelectable_WeekendsRejected(t *testing.T) {
	today := mustDate(t, "2025-07-17")

	saturday := mustDate(t, "2025-07-19")
	sunday := mustDate(t, "2025-07-20")
	monday := mustDate(t, "2025-07-21")

	if IsDateSelectable(saturday, today, nil) {
		t.Error("saturday should not be selectable")
	}
	if IsDateSelectable(sunday, today, nil) {
		t.Error("sunday should not be selectable")
	}
	if !IsDateSelectable(monday, today, nil) {
		t.Error("monday should be selectable")
	}
}

func TestIsDateSelectable_BlockedDateRejected(t *testing.T) {
	today := mustDate(t, "2025-07-17")
	friday := mustDate(t, "2025-07-18")

	if IsDateSelectable(friday, today, []string{"2025-07-18"}) {
		t.Error("blocked friday should not be selectable")
	}
	if !IsDateSelectable(friday, today, []string{"2025-08-01"}) {
		t.Error("friday should be selectable when another day is blocked")
	}
}

func TestBlockedDates_MergesAndNormalizes(t *testing.T) {
	holidays := []models.Holiday{
		{ID: 1, Name: "National Day", Date: "2025-08-01"},
		{ID: 2, Name: "Maintenance", Date: "2025-08-04T00:00:00"},
	}
	disabled := []string{"2025-08-05"}

	got := BlockedDates(holidays, disabled)
	want := []string{"2025-08-01", "2025-08-04", "2025-08-05"}

	if len(got) != len(want) {
		t.Fatalf("got %d blocked dates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("blocked[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNextSelectableDate_SkipsWeekendAndBlocked(t *testing.T) {
	today := mustDate(t, "2025-07-17")
	// Friday the 18th blocked, 19th/20th are the weekend.
	blocked := []string{"2025-07-18"}

	got, ok := NextSelectableDate(mustDate(t, "2025-07-18"), today, blocked)
	if !ok {
		t.Fatal("expected a selectable date within a year")
	}
	if got.Format("2006-01-02") != "2025-07-21" {
		t.Errorf("next selectable = %s, want 2025-07-21", got.Format("2006-01-02"))
	}
}

func TestNextSelectableDate_NothingWithinAYear(t *testing.T) {
	today := mustDate(t, "2025-07-17")
	// Start scanning from far in the past with today fixed: every candidate
	// before today is rejected as past, but the scan caps at 366 days.
	_, ok := NextSelectableDate(mustDate(t, "2020-01-01"), today, nil)
	if ok {
		t.Error("expected no selectable date in a scan that ends before today")
	}
}
