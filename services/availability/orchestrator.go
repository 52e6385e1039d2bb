package availability

import (
	"context"

	"roomcheck/models"

	"go.uber.org/zap"
)

const (
	tierUnit     = "unit"
	tierCategory = "category"
	tierGeneral  = "general"
)

// Validate checks the request shape, picks the narrowest resolver the request
// allows (unit, then category, then any suitable category) and returns its verdict.
// The returned error is always an *InfrastructureError.
func (e *Engine) Validate(ctx context.Context, req models.StayRequest) (Verdict, error) {
	if msg := checkRequest(req); msg != "" {
		return StructuralError{Message: msg}, nil
	}

	stay := req.Range()
	var (
		tier string
		v    Verdict
		err  error
	)
	switch {
	case req.RoomUnitID != "":
		tier = tierUnit
		v, err = e.ResolveUnit(ctx, req.RoomUnitID, stay, req.ExcludeBookingID)
	case req.RoomCategoryID != "":
		tier = tierCategory
		v, err = e.ResolveCategory(ctx, req.RoomCategoryID, stay, req.GuestsCount, req.ExcludeBookingID)
	default:
		tier = tierGeneral
		v, err = e.ResolveAny(ctx, stay, req.GuestsCount, req.ExcludeBookingID)
	}

	if err != nil {
		e.logger().Error("availability lookup failed",
			zap.String("tier", tier),
			zap.String("stay", stay.String()),
			zap.String("roomUnitId", req.RoomUnitID),
			zap.String("roomCategoryId", req.RoomCategoryID),
			zap.Error(err))
		return nil, infraError("validate "+tier, err)
	}

	res := v.Result()
	e.logger().Debug("availability validated",
		zap.String("tier", tier),
		zap.String("stay", stay.String()),
		zap.Bool("isValid", res.IsValid),
		zap.Int("availableUnits", res.AvailableUnits))
	return v, nil
}

// checkRequest returns a client-facing message for a malformed request, or "".
func checkRequest(req models.StayRequest) string {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return "checkIn and checkOut are required"
	}
	if !req.CheckOut.After(req.CheckIn) {
		return "checkOut must be after checkIn"
	}
	if req.GuestsCount < 0 {
		return "guestsCount must not be negative"
	}
	if req.RoomUnitID == "" && req.RoomCategoryID == "" && req.GuestsCount < 1 {
		return "guestsCount must be at least 1 when no room or category is specified"
	}
	return ""
}
