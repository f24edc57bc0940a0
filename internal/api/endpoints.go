package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zdzakic/booky/internal/models"
)

// SlotStatus is one entry of the all-slots-status response: every slot of the
// day, enabled or not, so the form can render disabled buttons too.
type SlotStatus struct {
	StartTime string `json:"start_time"`
	Enabled   bool   `json:"enabled"`
}

// AvailabilitySlot is one entry of the availability response: open slots
// only, with remaining capacity. Implicitly enabled.
type AvailabilitySlot struct {
	Time           string `json:"time"`
	AvailableCount int    `json:"available_count"`
}

// ReservationListOptions are the reservations list query params. Zero values
// are omitted from the request.
type ReservationListOptions struct {
	Period string // "3w", "pending", "all", "past"
	Search string
}

// CreateReservationRequest is the booking form submission payload.
type CreateReservationRequest struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	LicensePlate string `json:"license_plate"`
	Service      int    `json:"service"`
	IsStored     bool   `json:"is_stored"`
	Date         string `json:"date"`       // YYYY-MM-DD
	StartTime    string `json:"start_time"` // HH:MM:SS
}

// LoginResponse is the auth endpoint's reply.
type LoginResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    models.User `json:"user"`
}

// Services lists the bookable service types, localized per the current language.
func (c *Client) Services(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	err := c.do(ctx, http.MethodGet, "/services/", c.withLang(nil), nil, &out, http.StatusOK)
	return out, err
}

// Holidays lists all admin-designated holidays.
func (c *Client) Holidays(ctx context.Context) ([]models.Holiday, error) {
	var out []models.Holiday
	err := c.do(ctx, http.MethodGet, "/holidays/", c.withLang(nil), nil, &out, http.StatusOK)
	return out, err
}

// CreateHoliday adds a holiday. Blocked dates must be re-fetched afterwards.
func (c *Client) CreateHoliday(ctx context.Context, name, date string) (models.Holiday, error) {
	body := map[string]string{"name": name, "date": date}
	var out models.Holiday
	err := c.do(ctx, http.MethodPost, "/holidays/", nil, body, &out, http.StatusCreated)
	return out, err
}

// DeleteHoliday removes a holiday.
func (c *Client) DeleteHoliday(ctx context.Context, id int) error {
	path := fmt.Sprintf("/holidays/%d/", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, http.StatusNoContent)
}

// DisabledDates returns dates blocked within the next `days` days, holidays
// and fully booked days alike, as bare ISO date strings.
func (c *Client) DisabledDates(ctx context.Context, days int) ([]string, error) {
	query := url.Values{"days": {strconv.Itoa(days)}}
	var out struct {
		DisabledDates []string `json:"disabled_dates"`
	}
	err := c.do(ctx, http.MethodGet, "/disabled-dates/", query, nil, &out, http.StatusOK)
	return out.DisabledDates, err
}

// Availability returns the open slots for a service and date. An empty array
// is a valid response (e.g. a fully booked or non-working day).
func (c *Client) Availability(ctx context.Context, serviceID int, date string) ([]AvailabilitySlot, error) {
	query := url.Values{
		"service": {strconv.Itoa(serviceID)},
		"date":    {date},
	}
	var out []AvailabilitySlot
	err := c.do(ctx, http.MethodGet, "/availability/", query, nil, &out, http.StatusOK)
	return out, err
}

// AllSlotsStatus returns every slot of the day with its enabled flag, in the
// backend's (chronological) order.
func (c *Client) AllSlotsStatus(ctx context.Context, serviceID int, date string) ([]SlotStatus, error) {
	query := url.Values{
		"date":    {date},
		"service": {strconv.Itoa(serviceID)},
	}
	var out []SlotStatus
	err := c.do(ctx, http.MethodGet, "/all-slots-status/", query, nil, &out, http.StatusOK)
	return out, err
}

// Reservations lists reservations for the dashboard.
func (c *Client) Reservations(ctx context.Context, opts ReservationListOptions) ([]models.Reservation, error) {
	query := url.Values{}
	if opts.Period != "" {
		query.Set("period", opts.Period)
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	var out []models.Reservation
	err := c.do(ctx, http.MethodGet, "/reservations/", c.withLang(query), nil, &out, http.StatusOK)
	return out, err
}

// CreateReservation submits a booking. Anything but 201 is a failure.
func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) error {
	return c.do(ctx, http.MethodPost, "/reservations/", nil, req, nil, http.StatusCreated)
}

// ApproveReservation marks a reservation approved.
func (c *Client) ApproveReservation(ctx context.Context, id int) error {
	path := fmt.Sprintf("/reservations/%d/", id)
	body := map[string]bool{"is_approved": true}
	return c.do(ctx, http.MethodPatch, path, nil, body, nil, http.StatusOK)
}

// DeleteReservation removes a reservation.
func (c *Client) DeleteReservation(ctx context.Context, id int) error {
	path := fmt.Sprintf("/reservations/%d/", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, http.StatusNoContent)
}

// Login exchanges credentials for a token pair. This call never attaches a
// bearer token or triggers a refresh.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := c.send(ctx, http.MethodPost, "/auth/login/", nil, body, false)
	if err != nil {
		return LoginResponse{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return LoginResponse{}, err
	}

	var out LoginResponse
	if err := decodeBody(resp, &out); err != nil {
		return LoginResponse{}, err
	}
	if out.Access == "" {
		return LoginResponse{}, fmt.Errorf("login response carried no access token")
	}
	return out, nil
}
