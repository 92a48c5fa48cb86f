package bookingRepo

import (
	"time"

	"wellbook/models"
)

// Ledger owns the append-only booking history and assigns booking ids.
type Ledger interface {
	// Append stores a new confirmed booking and returns it with its assigned
	// id. Ids start at 1 and are strictly increasing with no reuse. Append
	// cannot fail; an impossible internal state is a programming error and
	// panics rather than being masked.
	Append(clientID int, providerID int, providerName string, slotID int, startTime time.Time, createdAt time.Time) models.Booking
	// ListByClient returns the client's bookings in creation order. A client
	// with no bookings yields an empty slice, not an error.
	ListByClient(clientID int) []models.Booking
	// Count reports the total number of bookings ever appended.
	Count() int
}
