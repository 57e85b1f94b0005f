package commerce

import (
	"fmt"
	"strings"
	"time"

	"masterjacobs_backend/internal/models"
)

// NoDelivery is returned by DeliveryFee when the cart is below the minimum
// for home delivery.
const NoDelivery = -1

// ValidPostalCode reports whether the code is five digits after stripping
// whitespace.
func ValidPostalCode(code string) bool {
	code = stripSpaces(code)
	if len(code) != 5 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CheckDeliveryAvailability reports whether the bakery delivers to the
// postal code. Delivery covers Västerås, whose codes start with 72.
func CheckDeliveryAvailability(postalCode string) bool {
	code := stripSpaces(postalCode)
	return ValidPostalCode(code) && strings.HasPrefix(code, "72")
}

// DeliveryFee computes the delivery cost in whole kronor for a cart total:
// free above the free-delivery threshold, the deposit (capped at the max
// delivery price) above the delivery minimum, NoDelivery below it.
func DeliveryFee(cartTotal int, cfg models.StoreConfig) int {
	if cartTotal >= cfg.FreeDeliveryThreshold {
		return 0
	}
	if cartTotal >= cfg.MinCartPriceForDelivery {
		if cfg.MaxDeliveryPrice < cfg.DeliveryDeposit {
			return cfg.MaxDeliveryPrice
		}
		return cfg.DeliveryDeposit
	}
	return NoDelivery
}

// OrderingAllowed answers whether orders are accepted for the given weekday
// and, if so, before what time.
func OrderingAllowed(day string, cfg models.StoreConfig) models.OrderingStatus {
	schedule, ok := cfg.Schedule[strings.ToLower(day)]
	if !ok {
		return models.OrderingStatus{Allowed: false, Message: "Schema saknas"}
	}
	if schedule.DayOff {
		return models.OrderingStatus{Allowed: false, Message: "Beställningar stängda denna dag"}
	}

	deadline := fmt.Sprintf("%02d:%02d", schedule.OrderBefore/60, schedule.OrderBefore%60)
	lead := "imorgon"
	if schedule.DaysBefore != 1 {
		lead = fmt.Sprintf("om %d dagar", schedule.DaysBefore)
	}
	return models.OrderingStatus{
		Allowed:  true,
		Deadline: deadline,
		Message:  fmt.Sprintf("Beställ före %s för leverans %s", deadline, lead),
	}
}

// OpenAt reports whether an outlet is open at the given moment, comparing
// minutes since midnight against that weekday's opening interval.
func OpenAt(hours map[string]models.DayHours, t time.Time) bool {
	day := strings.ToLower(t.Weekday().String())
	today, ok := hours[day]
	if !ok {
		return false
	}
	now := t.Hour()*60 + t.Minute()
	open, okOpen := parseClock(today.Open)
	close, okClose := parseClock(today.Close)
	if !okOpen || !okClose {
		return false
	}
	return now >= open && now <= close
}

func parseClock(s string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	return h*60 + m, true
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
