package availability

import (
	"time"

	"roomcheck/models"
)

// Overlaps tests two half-open ranges [aStart, aEnd) and [bStart, bEnd).
// A checkout on day N and a check-in on day N do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// conflictsWith keeps the bookings that really block stay, dropping the booking
// being edited. Stores already filter this way; the engine does not rely on it.
func conflictsWith(bookings []models.ExistingBooking, stay models.DateRange, excludeBookingID string) []models.ExistingBooking {
	var out []models.ExistingBooking
	for _, b := range bookings {
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		if !b.BlocksInventory() {
			continue
		}
		if !Overlaps(b.CheckIn, b.CheckOut, stay.CheckIn, stay.CheckOut) {
			continue
		}
		out = append(out, b)
	}
	return out
}
