package models

import "strings"

// Slot is one bookable interval held by a reservation.
type Slot struct {
	ID        int    `json:"id,omitempty"`
	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM or HH:MM:SS
}

// Reservation is the backend's reservation record. The dashboard holds a
// transient, read-mostly copy per session; only the mutation coordinator
// changes it, and only via explicit approve/delete flows.
type Reservation struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	LicensePlate string `json:"license_plate"`
	Service      int    `json:"service"`
	ServiceName  string `json:"service_name,omitempty"`
	IsStored     bool   `json:"is_stored"`
	IsApproved   bool   `json:"is_approved"`
	Slots        []Slot `json:"slots"`
	StartTime    string `json:"start_time,omitempty"` // ISO datetime, older backend versions
	Created      string `json:"created,omitempty"`

	// IsNext marks the first reservation in today's bucket still ahead of the
	// wall clock. Derived, never sent to the backend.
	IsNext bool `json:"-"`
}

// StartHHMM returns the slot's start time truncated to HH:MM.
func (s Slot) StartHHMM() string {
	if len(s.StartTime) > 5 {
		return s.StartTime[:5]
	}
	return s.StartTime
}

// SortKey is the slot's composite ordering key ("YYYY-MM-DD HH:MM").
func (s Slot) SortKey() string {
	return s.Date + " " + s.StartTime
}

// Service is a bookable service type with localized display names.
type Service struct {
	ID     int    `json:"id"`
	NameDE string `json:"name_de"`
	NameEN string `json:"name_en"`
}

// Name returns the display name for the given language, falling back to German.
func (s Service) Name(lang string) string {
	if strings.EqualFold(lang, "en") && s.NameEN != "" {
		return s.NameEN
	}
	return s.NameDE
}

// Holiday is an admin-designated date on which no bookings may be made.
type Holiday struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
}

// User is the authenticated admin identity returned by the login endpoint.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
