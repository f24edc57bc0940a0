package booking

import (
	"time"

	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/models"
)

// IsDateSelectable reports whether a candidate calendar date may be picked on
// the booking form. Rules, in order: no past dates, no weekends, no blocked
// dates (holidays and admin-disabled dates). A date is wholly enabled or
// wholly disabled here; slot-level availability is handled downstream.
func IsDateSelectable(date, today time.Time, blocked []string) bool {
	day := date.Format(constants.DateFormat)
	if day < today.Format(constants.DateFormat) {
		return false
	}
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	for _, b := range blocked {
		if b == day {
			return false
		}
	}
	return true
}

// BlockedDates merges holidays and bare disabled-date strings into one
// normalized YYYY-MM-DD list. The two backend sources use different shapes;
// calendar-day equality is all that matters here.
func BlockedDates(holidays []models.Holiday, disabled []string) []string {
	out := make([]string, 0, len(holidays)+len(disabled))
	for _, h := range holidays {
		out = append(out, normalizeDay(h.Date))
	}
	for _, d := range disabled {
		out = append(out, normalizeDay(d))
	}
	return out
}

// normalizeDay strips any time-of-day component from an ISO date string.
func normalizeDay(s string) string {
	if len(s) > len(constants.DateFormat) {
		return s[:len(constants.DateFormat)]
	}
	return s
}

// NextSelectableDate returns the first selectable date on or after from,
// scanning at most a year ahead. Used to seed the date picker cursor.
func NextSelectableDate(from, today time.Time, blocked []string) (time.Time, bool) {
	d := from
	for i := 0; i < 366; i++ {
		if IsDateSelectable(d, today, blocked) {
			return d, true
		}
		d = d.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}
