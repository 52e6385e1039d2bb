package availability

import (
	"testing"

	"roomcheck/models"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		a, b       models.DateRange
		wantResult bool
	}{
		{"identical", stay("2025-03-10", "2025-03-13"), stay("2025-03-10", "2025-03-13"), true},
		{"partial", stay("2025-03-10", "2025-03-13"), stay("2025-03-12", "2025-03-15"), true},
		{"contained", stay("2025-03-10", "2025-03-20"), stay("2025-03-12", "2025-03-13"), true},
		{"back to back", stay("2025-03-10", "2025-03-13"), stay("2025-03-13", "2025-03-16"), false},
		{"disjoint", stay("2025-03-10", "2025-03-13"), stay("2025-04-01", "2025-04-03"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.a.CheckIn, tt.a.CheckOut, tt.b.CheckIn, tt.b.CheckOut)
			assert.Equal(t, tt.wantResult, got)

			// symmetric in its arguments
			assert.Equal(t, got, Overlaps(tt.b.CheckIn, tt.b.CheckOut, tt.a.CheckIn, tt.a.CheckOut))
			// and agrees with the model helper
			assert.Equal(t, got, tt.a.Overlaps(tt.b))
		})
	}
}

func TestConflictsWith(t *testing.T) {
	s := stay("2025-03-12", "2025-03-15")
	bookings := []models.ExistingBooking{
		booking("b-confirmed", "u1", "2025-03-10", "2025-03-13", models.PaymentConfirmed),
		booking("b-cancelled", "u1", "2025-03-10", "2025-03-13", models.PaymentCancelled),
		booking("b-refunded", "u1", "2025-03-10", "2025-03-13", models.PaymentRefunded),
		booking("b-before", "u1", "2025-03-01", "2025-03-12", models.PaymentConfirmed),
		booking("b-self", "u1", "2025-03-12", "2025-03-15", models.PaymentPending),
	}

	got := conflictsWith(bookings, s, "b-self")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "b-confirmed", got[0].ID)
	}
}
