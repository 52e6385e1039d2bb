package availability

import (
	"context"
	"errors"
	"fmt"

	inventoryRepo "roomcheck/database/repository/inventory"
	"roomcheck/models"
)

const msgUnitNotFound = "Room unit not found or inactive"

// ResolveUnit checks a single physical unit.
func (e *Engine) ResolveUnit(ctx context.Context, unitID string, stay models.DateRange, excludeBookingID string) (Verdict, error) {
	unit, err := e.Repo.GetUnit(ctx, unitID)
	if errors.Is(err, inventoryRepo.ErrNotFound) {
		return NotFound{Message: msgUnitNotFound}, nil
	}
	if err != nil {
		return nil, infraError("get unit", err)
	}
	if !unit.IsActive {
		return NotFound{Message: msgUnitNotFound}, nil
	}
	return e.checkUnit(ctx, unit.ID, stay, excludeBookingID)
}

// checkUnit runs the overlap query for a unit already known to exist.
func (e *Engine) checkUnit(ctx context.Context, unitID string, stay models.DateRange, excludeBookingID string) (Verdict, error) {
	bookings, err := e.Repo.FindOverlappingBookings(ctx, unitID, stay, excludeBookingID)
	if err != nil {
		return nil, infraError("find overlapping bookings", err)
	}

	if conflicts := conflictsWith(bookings, stay, excludeBookingID); len(conflicts) > 0 {
		return CapacityConflict{
			Message:         fmt.Sprintf("Room unit is already booked for %d overlapping stay(s)", len(conflicts)),
			Conflicts:       conflicts,
			SuggestWaitlist: true,
		}, nil
	}

	return Available{
		Count:   1,
		UnitIDs: []string{unitID},
		Message: "Room unit is available for the selected dates",
	}, nil
}
