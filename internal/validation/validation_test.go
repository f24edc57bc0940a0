package validation

import "testing"

func TestPhone_SwissFormats(t *testing.T) {
	valid := []string{"+41791234567", "0791234567", "+41441234567"}
	for _, p := range valid {
		if msg := Phone(p); msg != "" {
			t.Errorf("Phone(%q) = %q, want valid", p, msg)
		}
	}

	invalid := []string{"", "791234567", "+49791234567", "+4179123", "0791234567890", "+41 79 123 45 67"}
	for _, p := range invalid {
		if msg := Phone(p); msg == "" {
			t.Errorf("Phone(%q) accepted, want rejection", p)
		}
	}
}

func TestEmail_BasicShape(t *testing.T) {
	valid := []string{"max@example.ch", "a.b+c@sub.domain.org"}
	for _, e := range valid {
		if msg := Email(e); msg != "" {
			t.Errorf("Email(%q) = %q, want valid", e, msg)
		}
	}

	invalid := []string{"", "max", "max@", "@example.ch", "max@example", "ma x@example.ch"}
	for _, e := range invalid {
		if msg := Email(e); msg == "" {
			t.Errorf("Email(%q) accepted, want rejection", e)
		}
	}
}

func TestFullNameAndPlate_RequireContent(t *testing.T) {
	if msg := FullName("  "); msg == "" {
		t.Error("whitespace-only name accepted")
	}
	if msg := FullName("Max Muster"); msg != "" {
		t.Errorf("valid name rejected: %q", msg)
	}
	if msg := LicensePlate(""); msg == "" {
		t.Error("empty plate accepted")
	}
	if msg := LicensePlate("ZH 12345"); msg != "" {
		t.Errorf("valid plate rejected: %q", msg)
	}
}

func TestValidateBooking_CollectsAllFailures(t *testing.T) {
	r := ValidateBooking(BookingInput{})
	if r.Valid() {
		t.Fatal("empty booking input should not validate")
	}

	for _, f := range []Field{FieldFullName, FieldPhone, FieldEmail, FieldLicensePlate, FieldService, FieldDate, FieldTime} {
		if r.Message(f) == "" {
			t.Errorf("no failure recorded for %s", f)
		}
	}
}

func TestValidateBooking_CompleteInputPasses(t *testing.T) {
	r := ValidateBooking(BookingInput{
		FullName:     "Max Muster",
		Phone:        "+41791234567",
		Email:        "max@example.ch",
		LicensePlate: "ZH 12345",
		ServiceID:    2,
		Date:         "2025-07-21",
		Time:         "09:00",
	})
	if !r.Valid() {
		t.Errorf("complete input rejected: %+v", r.Errors)
	}
}

func TestValidateLogin(t *testing.T) {
	if r := ValidateLogin("", ""); r.Valid() {
		t.Error("empty login should not validate")
	}
	if r := ValidateLogin("not-an-email", "secret"); r.Valid() {
		t.Error("malformed email should not validate")
	}
	if r := ValidateLogin("admin@example.ch", "secret"); !r.Valid() {
		t.Errorf("valid login rejected: %+v", r.Errors)
	}
}
