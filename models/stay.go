package models

import "time"

// DateLayout is the calendar-date wire format for check-in and check-out.
const DateLayout = "2006-01-02"

// DateRange is a half-open stay interval [CheckIn, CheckOut).
// The checkout day itself is not occupied, so same-day turnover is allowed.
type DateRange struct {
	CheckIn  time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut time.Time `bson:"checkOut" json:"checkOut"`
}

// Overlaps reports whether two half-open ranges share at least one night.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Valid reports whether both ends are set and CheckOut is strictly after CheckIn.
func (r DateRange) Valid() bool {
	return !r.CheckIn.IsZero() && !r.CheckOut.IsZero() && r.CheckOut.After(r.CheckIn)
}

// Nights is the number of occupied nights, rounded down.
func (r DateRange) Nights() int {
	if !r.Valid() {
		return 0
	}
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func (r DateRange) String() string {
	return r.CheckIn.Format(DateLayout) + "/" + r.CheckOut.Format(DateLayout)
}

// StayRequest is a single availability question. Empty identifiers mean "not set".
type StayRequest struct {
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	GuestsCount int       `json:"guestsCount"`

	RoomCategoryID string `json:"roomCategoryId,omitempty"`
	RoomUnitID     string `json:"roomUnitId,omitempty"`

	// ExcludeBookingID is only set when validating an edit to an existing booking,
	// so that booking's own occupancy is not counted against itself.
	ExcludeBookingID string `json:"excludeBookingId,omitempty"`
}

// Range returns the requested stay as a DateRange.
func (r StayRequest) Range() DateRange {
	return DateRange{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
}
