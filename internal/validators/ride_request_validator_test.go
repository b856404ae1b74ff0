package validators

import (
	"errors"
	"strings"
	"testing"

	"rideform/internal/models"
)

func validInput() *models.RideRequestInput {
	lat, lon := 55.0, 37.0
	return &models.RideRequestInput{
		Name:         "A",
		Phone:        "89161234567",
		Telegram:     "@someone",
		Day:          "30",
		EarliestTime: "09:00",
		StartPoint: &models.StartPointInput{
			Address: "X street 1",
			Lat:     &lat,
			Lon:     &lon,
		},
	}
}

func TestValidateRideRequest_Canonicalizes(t *testing.T) {
	record, err := ValidateRideRequest(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Phone != "+79161234567" {
		t.Errorf("phone = %q, want +79161234567", record.Phone)
	}
	if record.Telegram != "someone" {
		t.Errorf("tg = %q, want someone", record.Telegram)
	}
	if record.People != 1 {
		t.Errorf("people = %d, want default 1", record.People)
	}
	if record.StartPoint.Lat != 55.0 || record.StartPoint.Lon != 37.0 {
		t.Errorf("start point = %v", record.StartPoint)
	}
	if record.StartPoint.Geo != nil {
		t.Error("geo must not be set by the validator")
	}
	if !record.ID.IsZero() {
		t.Error("id must not be set by the validator")
	}
	if record.CreatedAt != "" {
		t.Error("created_at must not be set by the validator")
	}
}

func TestValidateRideRequest_PeopleCarried(t *testing.T) {
	input := validInput()
	people := 4
	input.People = &people

	record, err := ValidateRideRequest(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.People != 4 {
		t.Errorf("people = %d, want 4", record.People)
	}
}

func TestValidateRideRequest_PeopleOutOfRange(t *testing.T) {
	input := validInput()
	people := 11
	input.People = &people

	if _, err := ValidateRideRequest(input); err == nil {
		t.Error("expected rejection for people > 10")
	}
}

func TestValidateRideRequest_DayClosedSet(t *testing.T) {
	for _, day := range []string{"29", "1", "thirty", ""} {
		input := validInput()
		input.Day = day
		if _, err := ValidateRideRequest(input); err == nil {
			t.Errorf("day %q accepted, want rejection", day)
		}
	}
	for _, day := range []string{"30", "31"} {
		input := validInput()
		input.Day = day
		if _, err := ValidateRideRequest(input); err != nil {
			t.Errorf("day %q rejected: %v", day, err)
		}
	}
}

func TestValidateRideRequest_TimePattern(t *testing.T) {
	input := validInput()
	input.EarliestTime = "9:00"
	if _, err := ValidateRideRequest(input); err == nil {
		t.Error("expected rejection for non-zero-padded time")
	}

	// Shape check only; out-of-range values pass.
	input = validInput()
	input.EarliestTime = "99:99"
	if _, err := ValidateRideRequest(input); err != nil {
		t.Errorf("99:99 rejected: %v", err)
	}
}

func TestValidateRideRequest_PhoneDigitBound(t *testing.T) {
	// Structurally valid (length within 5..32) but too few digits after
	// normalization.
	input := validInput()
	input.Phone = "12-34-56"

	_, err := ValidateRideRequest(input)
	if err == nil {
		t.Fatal("expected rejection for 6-digit phone")
	}

	var validationErrors ValidationErrors
	if !errors.As(err, &validationErrors) {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	if !strings.Contains(validationErrors.Error(), "Invalid phone") {
		t.Errorf("error = %q, want it to carry Invalid phone", validationErrors.Error())
	}

	// And too many digits.
	input = validInput()
	input.Phone = "1234567890123456"
	if _, err := ValidateRideRequest(input); err == nil {
		t.Error("expected rejection for 16-digit phone")
	}
}

func TestValidateRideRequest_MissingFields(t *testing.T) {
	input := validInput()
	input.Name = ""
	if _, err := ValidateRideRequest(input); err == nil {
		t.Error("expected rejection for missing name")
	}

	input = validInput()
	input.StartPoint = nil
	if _, err := ValidateRideRequest(input); err == nil {
		t.Error("expected rejection for missing start point")
	}

	input = validInput()
	input.StartPoint.Lat = nil
	if _, err := ValidateRideRequest(input); err == nil {
		t.Error("expected rejection for missing lat")
	}
}

func TestValidateRideRequest_CoordinateRange(t *testing.T) {
	input := validInput()
	lat := 91.0
	input.StartPoint.Lat = &lat
	if _, err := ValidateRideRequest(input); err == nil {
		t.Error("expected rejection for lat > 90")
	}

	input = validInput()
	lon := -180.5
	input.StartPoint.Lon = &lon
	if _, err := ValidateRideRequest(input); err == nil {
		t.Error("expected rejection for lon < -180")
	}
}

func TestValidateRideRequest_AddressLength(t *testing.T) {
	input := validInput()
	input.StartPoint.Address = "X"
	if _, err := ValidateRideRequest(input); err == nil {
		t.Error("expected rejection for 1-char address")
	}
}
