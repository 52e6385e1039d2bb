package availability

import (
	"context"
	"errors"
	"fmt"

	inventoryRepo "roomcheck/database/repository/inventory"
	"roomcheck/models"
)

// ResolveCategory counts free units across a category. guests is accepted for
// symmetry with the other tiers; capacity is the category's own concern.
func (e *Engine) ResolveCategory(ctx context.Context, categoryID string, stay models.DateRange, guests int, excludeBookingID string) (Verdict, error) {
	avail, err := e.Repo.FindAvailableUnitsInCategory(ctx, categoryID, stay)
	if err != nil {
		return nil, infraError("find available units in category", err)
	}
	if avail.Count > 0 {
		return Available{
			Count:   avail.Count,
			UnitIDs: avail.UnitIDs,
			Message: fmt.Sprintf("%d room(s) available in this category", avail.Count),
		}, nil
	}

	// An edited booking may be the one occupying the last free unit.
	if excludeBookingID != "" {
		v, err := e.keepCurrentUnit(ctx, categoryID, stay, excludeBookingID)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}

	total, err := e.Repo.CountUnitsInCategory(ctx, categoryID)
	if err != nil {
		return nil, infraError("count units in category", err)
	}
	if total == 0 {
		return NotFound{Message: "Room category not found or has no units"}, nil
	}

	return CapacityConflict{
		Message:         fmt.Sprintf("All %d units in this category are booked for the selected dates", total),
		SuggestWaitlist: true,
	}, nil
}

// keepCurrentUnit re-validates the unit the edited booking already holds. It
// returns a nil verdict when the fallback does not apply or the unit is taken.
func (e *Engine) keepCurrentUnit(ctx context.Context, categoryID string, stay models.DateRange, bookingID string) (Verdict, error) {
	booking, err := e.Repo.GetBooking(ctx, bookingID)
	if errors.Is(err, inventoryRepo.ErrNotFound) {
		return NotFound{Message: "Booking being edited was not found"}, nil
	}
	if err != nil {
		return nil, infraError("get booking", err)
	}

	unitID := booking.UnitID()
	if unitID == "" {
		return nil, nil
	}

	unit, err := e.Repo.GetUnit(ctx, unitID)
	if errors.Is(err, inventoryRepo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, infraError("get unit", err)
	}
	// Only a unit of this category can stand in for it.
	if !unit.IsActive || unit.CategoryID != categoryID {
		return nil, nil
	}

	v, err := e.checkUnit(ctx, unitID, stay, bookingID)
	if err != nil {
		return nil, err
	}
	if avail, ok := v.(Available); ok {
		avail.Message = "Current room unit is still available for the selected dates"
		return avail, nil
	}
	return nil, nil
}
