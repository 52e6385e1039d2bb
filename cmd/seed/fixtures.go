package main

import (
	"fmt"
	"math/rand"
	"time"

	"roomcheck/models"
)

// fixtures is one consistent inventory snapshot.
type fixtures struct {
	categories []models.RoomCategory
	units      []models.InventoryUnit
	bookings   []models.ExistingBooking
}

var seedCategories = []models.RoomCategory{
	{ID: "cat-single", Name: "Single", MaxGuests: 1, IsPublished: true},
	{ID: "cat-double", Name: "Double", MaxGuests: 2, IsPublished: true},
	{ID: "cat-family", Name: "Family Suite", MaxGuests: 4, IsPublished: true},
	{ID: "cat-penthouse", Name: "Penthouse", MaxGuests: 6, IsPublished: false},
}

// Statuses drawn for generated bookings; cancelled ones exercise the non-blocking rule.
var seedStatuses = []models.PaymentStatus{
	models.PaymentConfirmed, models.PaymentConfirmed, models.PaymentPending, models.PaymentCancelled,
}

// generateFixtures builds unitsPerCategory units per category and fills each
// unit with back-to-back-or-gapped bookings over horizonDays from start.
// Blocking bookings on a unit never overlap, so the result satisfies the
// store's exclusion constraint.
func generateFixtures(rng *rand.Rand, start time.Time, unitsPerCategory, horizonDays int) fixtures {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, horizonDays)

	fx := fixtures{categories: seedCategories}
	bookingCounter := 1

	for _, cat := range seedCategories {
		for n := 1; n <= unitsPerCategory; n++ {
			u := models.InventoryUnit{
				ID:         fmt.Sprintf("unit-%s-%d", cat.ID[len("cat-"):], n),
				CategoryID: cat.ID,
				Label:      fmt.Sprintf("%s %d", cat.Name, n),
				// The last unit of each category is out of service.
				IsActive: n < unitsPerCategory || unitsPerCategory == 1,
			}
			fx.units = append(fx.units, u)

			cursor := start
			for {
				cursor = cursor.AddDate(0, 0, rng.Intn(4))
				checkOut := cursor.AddDate(0, 0, 1+rng.Intn(4))
				if checkOut.After(end) {
					break
				}
				unitID := u.ID
				status := seedStatuses[rng.Intn(len(seedStatuses))]
				fx.bookings = append(fx.bookings, models.ExistingBooking{
					ID:            fmt.Sprintf("bk-%04d", bookingCounter),
					RoomUnitID:    &unitID,
					CheckIn:       cursor,
					CheckOut:      checkOut,
					PaymentStatus: status,
				})
				bookingCounter++
				// A cancelled stay leaves its nights free for the next booking.
				if status == models.PaymentCancelled {
					cursor = cursor.AddDate(0, 0, 1)
				} else {
					cursor = checkOut
				}
			}
		}
	}

	// A few unassigned requests: they never block a unit.
	for i := 0; i < 3; i++ {
		checkIn := start.AddDate(0, 0, rng.Intn(horizonDays))
		fx.bookings = append(fx.bookings, models.ExistingBooking{
			ID:            fmt.Sprintf("bk-%04d", bookingCounter),
			CheckIn:       checkIn,
			CheckOut:      checkIn.AddDate(0, 0, 2),
			PaymentStatus: models.PaymentPending,
		})
		bookingCounter++
	}

	return fx
}
