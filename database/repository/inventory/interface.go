// File: database/repository/inventory/interface.go
package inventoryRepo

import (
	"context"
	"errors"

	"roomcheck/models"
)

// ErrNotFound is returned when a unit or booking lookup matches nothing.
var ErrNotFound = errors.New("inventory record not found")

// Repository is the read-only view of units, categories and bookings the
// availability engine depends on. Implementations apply the blocking-status and
// half-open overlap rules from the models package.
type Repository interface {
	// GetUnit returns the unit or ErrNotFound.
	GetUnit(ctx context.Context, unitID string) (*models.InventoryUnit, error)
	// FindOverlappingBookings lists blocking bookings on the unit that overlap the range,
	// leaving out excludeBookingID when it is set.
	FindOverlappingBookings(ctx context.Context, unitID string, stay models.DateRange, excludeBookingID string) ([]models.ExistingBooking, error)
	// FindAvailableUnitsInCategory returns the active units of a category that are free for the range.
	FindAvailableUnitsInCategory(ctx context.Context, categoryID string, stay models.DateRange) (models.CategoryAvailability, error)
	// ListPublishedCategories returns published categories with MaxGuests >= minCapacity, ordered by name.
	ListPublishedCategories(ctx context.Context, minCapacity int) ([]models.RoomCategory, error)
	// GetBooking returns the booking or ErrNotFound.
	GetBooking(ctx context.Context, bookingID string) (*models.ExistingBooking, error)
	// CountUnitsInCategory counts every unit in the category, active or not.
	CountUnitsInCategory(ctx context.Context, categoryID string) (int, error)
}
