package constants

// SessionState represents the current state of the TUI application
type SessionState int

// Period represents a dashboard reservation list filter
type Period string

// Language represents a supported display language
type Language string

const (
	AppName           = "booky"
	KeyringAccessKey  = "access-token"
	KeyringRefreshKey = "refresh-token"
	DefaultConfigPath = "~/.config/booky/booky.db"
	Version           = "v1.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultBaseURL points at the production backend; overridable via flag,
	// BOOKY_API_URL, or the stored setting.
	DefaultBaseURL = "https://booky-be.fly.dev/api"

	// RequestTimeoutSeconds bounds every backend call. The free-tier backend
	// cold-starts, so this is deliberately generous.
	RequestTimeoutSeconds = 15

	// SearchDebounceMs is how long a search query must settle before it is applied.
	SearchDebounceMs = 500

	// Languages
	LanguageGerman  Language = "de"
	LanguageEnglish Language = "en"

	// Dashboard period filters (backend `period` query param values)
	PeriodUpcoming Period = "3w"
	PeriodPending  Period = "pending"
	PeriodAll      Period = "all"
	PeriodPast     Period = "past"
)

// Session States
const (
	StateReservations SessionState = iota
	StateHolidays
	StateBookingForm
	StateDatePick
	StateSlotPick
	StateConfirmBooking
	StateSuccess
	StateAddHoliday
	StateConfirmDeleteReservation
	StateConfirmDeleteHoliday
	StateLogin
)
