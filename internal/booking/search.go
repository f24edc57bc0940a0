package booking

import (
	"strings"

	"github.com/zdzakic/booky/internal/models"
)

// Filter returns the reservations matching query: case-insensitive substring,
// OR-combined across name, phone, email, and license plate. An empty (or
// all-whitespace) query is the identity and returns the input untouched.
// Empty fields simply never match; they never cause a panic.
func Filter(reservations []models.Reservation, query string) []models.Reservation {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return reservations
	}

	out := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if fieldMatches(r.FullName, q) ||
			fieldMatches(r.Phone, q) ||
			fieldMatches(r.Email, q) ||
			fieldMatches(r.LicensePlate, q) {
			out = append(out, r)
		}
	}
	return out
}

func fieldMatches(field, loweredQuery string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), loweredQuery)
}
