package models

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentFailed    PaymentStatus = "failed"
)

// NonBlockingStatuses never hold a unit. Repositories filter on this list so the
// rule lives in one place.
var NonBlockingStatuses = []PaymentStatus{PaymentCancelled, PaymentRefunded, PaymentFailed}

// ExistingBooking is the read-only view of a stored booking.
type ExistingBooking struct {
	ID            string        `bson:"id" json:"id" db:"id"`
	RoomUnitID    *string       `bson:"roomUnitId,omitempty" json:"roomUnitId,omitempty" db:"room_unit_id"`
	CheckIn       time.Time     `bson:"checkIn" json:"checkIn" db:"check_in"`
	CheckOut      time.Time     `bson:"checkOut" json:"checkOut" db:"check_out"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus" db:"payment_status"`
}

// BlocksInventory reports whether the booking occupies its unit.
func (b ExistingBooking) BlocksInventory() bool {
	for _, s := range NonBlockingStatuses {
		if b.PaymentStatus == s {
			return false
		}
	}
	return true
}

// Range returns the stored stay.
func (b ExistingBooking) Range() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// UnitID returns the assigned unit, or "" when none is assigned yet.
func (b ExistingBooking) UnitID() string {
	if b.RoomUnitID == nil {
		return ""
	}
	return *b.RoomUnitID
}

// NonBlockingStatusStrings is NonBlockingStatuses as plain strings for query builders.
func NonBlockingStatusStrings() []string {
	out := make([]string, len(NonBlockingStatuses))
	for i, s := range NonBlockingStatuses {
		out[i] = string(s)
	}
	return out
}
