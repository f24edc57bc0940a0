package booking

import (
	"time"

	"github.com/zdzakic/booky/internal/constants"
)

// isoWeekBounds returns the Monday and Sunday (inclusive, YYYY-MM-DD) of the
// week containing day. An unparseable day yields a degenerate single-day week.
func isoWeekBounds(day string) (string, string) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return day, day
	}

	// time.Weekday counts Sunday as 0; shift so Monday starts the week.
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(constants.DateFormat), sunday.Format(constants.DateFormat)
}
