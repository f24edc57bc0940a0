package validation

import (
	"regexp"
	"strings"
)

// Field identifies a booking form field
type Field string

const (
	FieldFullName     Field = "full_name"
	FieldPhone        Field = "phone"
	FieldEmail        Field = "email"
	FieldLicensePlate Field = "license_plate"
	FieldService      Field = "service"
	FieldDate         Field = "date"
	FieldTime         Field = "time"
	FieldPassword     Field = "password"
)

// FieldError is a single field-level validation failure
type FieldError struct {
	Field   Field
	Message string
}

// Result contains all field-level validation failures for a form
type Result struct {
	Errors []FieldError
}

// Valid returns true if no field failed validation
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Message returns the failure message for a field, or "" if the field passed
func (r *Result) Message(f Field) string {
	for _, e := range r.Errors {
		if e.Field == f {
			return e.Message
		}
	}
	return ""
}

func (r *Result) add(f Field, msg string) {
	r.Errors = append(r.Errors, FieldError{Field: f, Message: msg})
}

var (
	// Swiss numbers only: +41 or a leading zero, then 8-9 digits.
	phoneRe = regexp.MustCompile(`^((\+41)|0)\d{8,9}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// FullName rejects blank names
func FullName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "name is required"
	}
	return ""
}

// Phone validates the Swiss phone number format
func Phone(phone string) string {
	if !phoneRe.MatchString(phone) {
		return "invalid phone number (e.g. +41791234567 or 0791234567)"
	}
	return ""
}

// Email validates the basic shape of an email address
func Email(email string) string {
	if !emailRe.MatchString(email) {
		return "invalid email address"
	}
	return ""
}

// LicensePlate rejects blank plates
func LicensePlate(plate string) string {
	if strings.TrimSpace(plate) == "" {
		return "license plate is required"
	}
	return ""
}

// BookingInput is the raw form state checked before submission
type BookingInput struct {
	FullName     string
	Phone        string
	Email        string
	LicensePlate string
	ServiceID    int
	Date         string
	Time         string
}

// ValidateBooking checks every booking form field and returns all failures.
// A non-valid result blocks the create request entirely.
func ValidateBooking(in BookingInput) Result {
	var r Result
	if msg := FullName(in.FullName); msg != "" {
		r.add(FieldFullName, msg)
	}
	if msg := Phone(in.Phone); msg != "" {
		r.add(FieldPhone, msg)
	}
	if msg := Email(in.Email); msg != "" {
		r.add(FieldEmail, msg)
	}
	if msg := LicensePlate(in.LicensePlate); msg != "" {
		r.add(FieldLicensePlate, msg)
	}
	if in.ServiceID == 0 {
		r.add(FieldService, "please select a service")
	}
	if in.Date == "" {
		r.add(FieldDate, "please select a date")
	}
	if in.Time == "" {
		r.add(FieldTime, "please select a time slot")
	}
	return r
}

// ValidateLogin checks the login form
func ValidateLogin(email, password string) Result {
	var r Result
	if strings.TrimSpace(email) == "" {
		r.add(FieldEmail, "email is required")
	} else if msg := Email(email); msg != "" {
		r.add(FieldEmail, msg)
	}
	if strings.TrimSpace(password) == "" {
		r.add(FieldPassword, "password is required")
	}
	return r
}
