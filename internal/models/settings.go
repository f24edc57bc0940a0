package models

// Settings represents locally persisted client state. This is the browser
// local-storage analog: display language and connection defaults only, never
// reservation data and never credentials.
type Settings struct {
	Language      string `json:"language"`       // "de" or "en"
	BaseURL       string `json:"base_url"`       // backend base URL override
	DefaultPeriod string `json:"default_period"` // dashboard filter preselected on launch
}

// SlotView is a single time-slot button on the booking form. Derived per
// date+service query and discarded whenever either input changes.
type SlotView struct {
	Time           string
	AvailableCount int
	Enabled        bool
}
