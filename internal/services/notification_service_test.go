package services

import (
	"strings"
	"testing"

	"rideform/internal/config"
	"rideform/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewTelegramNotifier_DisabledWithoutCredentials(t *testing.T) {
	notifier, err := NewTelegramNotifier(&config.TelegramConfig{}, testLogger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No outbound call is attempted; scheduling is a no-op.
	notifier.Schedule(&models.RideRequest{ID: primitive.NewObjectID()})
}

func formatFixture() *models.RideRequest {
	return &models.RideRequest{
		ID:           primitive.NewObjectID(),
		Name:         "A",
		Phone:        "+79161234567",
		Telegram:     "someone",
		Day:          "30",
		EarliestTime: "09:00",
		People:       2,
		StartPoint: models.StartPoint{
			Address: "X street 1",
			Lat:     55.75,
			Lon:     37.62,
		},
		CreatedAt: "2026-08-30T09:15:00Z",
	}
}

func TestFormatRideRequest(t *testing.T) {
	record := formatFixture()
	out := FormatRideRequest(record)

	for _, want := range []string{
		"id: " + record.ID.Hex(),
		"phone: +79161234567",
		"tg: @someone",
		"when: 30 09:00",
		"people: 2",
		"address: X street 1",
		"map: https://maps.google.com/?q=55.75,37.62",
		"created: 2026-08-30 09:15",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered message missing %q:\n%s", want, out)
		}
	}
}

func TestFormatRideRequest_EmptyHandleAndLegacyPeople(t *testing.T) {
	record := formatFixture()
	record.Telegram = ""
	record.People = 0 // record predating the people field

	out := FormatRideRequest(record)
	if !strings.Contains(out, "tg: -") {
		t.Errorf("empty handle should render as -:\n%s", out)
	}
	if !strings.Contains(out, "people: 1") {
		t.Errorf("legacy record should count one participant:\n%s", out)
	}
}

func TestFormatRideRequest_MalformedCreatedAt(t *testing.T) {
	record := formatFixture()
	record.CreatedAt = "yesterday-ish"

	out := FormatRideRequest(record)
	if !strings.Contains(out, "created: yesterday-ish") {
		t.Errorf("malformed timestamp should render as-is:\n%s", out)
	}
}

func TestFormatRideRequest_NoCoordinatesNoMapLink(t *testing.T) {
	record := formatFixture()
	record.StartPoint.Lat = 0
	record.StartPoint.Lon = 0

	if strings.Contains(FormatRideRequest(record), "map:") {
		t.Error("map link rendered without coordinates")
	}
}
