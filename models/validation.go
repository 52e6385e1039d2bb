package models

// ValidationResult is the response shape shared by every resolver path.
type ValidationResult struct {
	IsValid             bool              `json:"isValid"`
	Message             string            `json:"message"`
	AvailableUnits      int               `json:"availableUnits"`
	SuggestedWaitlist   bool              `json:"suggestedWaitlist"`
	ConflictingBookings []ExistingBooking `json:"conflictingBookings,omitempty"`
	AvailableRoomUnits  []string          `json:"availableRoomUnits,omitempty"`
}
