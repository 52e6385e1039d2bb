package availability

import (
	"net/http"

	"roomcheck/models"
)

// Verdict is the outcome of a validation. The set of variants is closed:
// Available, CapacityConflict, NotFound and StructuralError.
type Verdict interface {
	Result() models.ValidationResult
	verdict()
}

// Available means at least one unit can take the stay.
type Available struct {
	Count   int
	UnitIDs []string
	Message string
}

// CapacityConflict is the normal negative answer. SuggestWaitlist is false only
// when no product could ever fit the request.
type CapacityConflict struct {
	Message         string
	Conflicts       []models.ExistingBooking
	SuggestWaitlist bool
}

// NotFound means a referenced unit, category or booking does not exist.
type NotFound struct {
	Message string
}

// StructuralError means the request itself is malformed.
type StructuralError struct {
	Message string
}

func (Available) verdict()        {}
func (CapacityConflict) verdict() {}
func (NotFound) verdict()         {}
func (StructuralError) verdict()  {}

func (v Available) Result() models.ValidationResult {
	return models.ValidationResult{
		IsValid:            true,
		Message:            v.Message,
		AvailableUnits:     v.Count,
		AvailableRoomUnits: v.UnitIDs,
	}
}

func (v CapacityConflict) Result() models.ValidationResult {
	return models.ValidationResult{
		Message:             v.Message,
		SuggestedWaitlist:   v.SuggestWaitlist,
		ConflictingBookings: v.Conflicts,
	}
}

func (v NotFound) Result() models.ValidationResult {
	return models.ValidationResult{Message: v.Message}
}

func (v StructuralError) Result() models.ValidationResult {
	return models.ValidationResult{Message: v.Message}
}

// StatusCode maps a validation outcome to its HTTP status. It is the only place
// that translation happens.
func StatusCode(v Verdict, err error) int {
	if err != nil {
		return http.StatusInternalServerError
	}
	switch v.(type) {
	case Available:
		return http.StatusOK
	case CapacityConflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	case StructuralError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
