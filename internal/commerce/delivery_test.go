package commerce

import (
	"testing"
	"time"

	"masterjacobs_backend/internal/models"
)

func TestValidPostalCode(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"72212", true},
		{"722 12", true},
		{"7221", false},
		{"722123", false},
		{"72a12", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidPostalCode(tc.in); got != tc.want {
			t.Fatalf("ValidPostalCode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCheckDeliveryAvailability(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"72212", true},
		{"722 12", true},
		{"72999", true},
		{"11170", false}, // Stockholm
		{"7221", false},
		{"72", false},
	}
	for _, tc := range cases {
		if got := CheckDeliveryAvailability(tc.in); got != tc.want {
			t.Fatalf("CheckDeliveryAvailability(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func testConfig() models.StoreConfig {
	return models.StoreConfig{
		MinCartPriceForDelivery: 300,
		FreeDeliveryThreshold:   600,
		DeliveryDeposit:         79,
		MaxDeliveryPrice:        99,
		Schedule: map[string]models.DaySchedule{
			"monday": {OrderBefore: 14 * 60, DaysBefore: 1},
			"sunday": {DayOff: true},
			"friday": {OrderBefore: 9*60 + 30, DaysBefore: 2},
		},
	}
}

func TestDeliveryFee(t *testing.T) {
	cfg := testConfig()
	if got := DeliveryFee(600, cfg); got != 0 {
		t.Fatalf("free threshold: got %d", got)
	}
	if got := DeliveryFee(300, cfg); got != 79 {
		t.Fatalf("deposit: got %d", got)
	}
	if got := DeliveryFee(299, cfg); got != NoDelivery {
		t.Fatalf("below minimum: got %d", got)
	}

	cfg.MaxDeliveryPrice = 50
	if got := DeliveryFee(300, cfg); got != 50 {
		t.Fatalf("deposit must be capped at max delivery price: got %d", got)
	}
}

func TestOrderingAllowed(t *testing.T) {
	cfg := testConfig()

	st := OrderingAllowed("Monday", cfg)
	if !st.Allowed || st.Deadline != "14:00" {
		t.Fatalf("monday: %+v", st)
	}

	st = OrderingAllowed("friday", cfg)
	if !st.Allowed || st.Deadline != "09:30" {
		t.Fatalf("friday deadline must be zero-padded: %+v", st)
	}

	if st = OrderingAllowed("sunday", cfg); st.Allowed {
		t.Fatalf("day off must close ordering: %+v", st)
	}
	if st = OrderingAllowed("saturday", cfg); st.Allowed {
		t.Fatalf("missing schedule must close ordering: %+v", st)
	}
}

func TestOpenAt(t *testing.T) {
	hours := FallbackOutlet().OpeningHours

	// Monday 2026-08-31
	monday := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	if !OpenAt(hours, monday) {
		t.Fatalf("should be open monday noon")
	}
	early := time.Date(2026, 8, 31, 5, 0, 0, 0, time.UTC)
	if OpenAt(hours, early) {
		t.Fatalf("should be closed before opening")
	}
	// Sunday closes 16:00
	sundayEvening := time.Date(2026, 8, 30, 17, 30, 0, 0, time.UTC)
	if OpenAt(hours, sundayEvening) {
		t.Fatalf("should be closed sunday evening")
	}
}
