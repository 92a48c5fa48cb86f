package bookingRepo

import (
	"fmt"
	"sync"
	"time"

	"wellbook/models"
)

// MemoryLedger is the in-process Ledger implementation. The id counter is
// advanced under the same mutex as the append itself, so ids are unique and
// strictly increasing even under concurrent reservations, and no id is ever
// assigned without its booking being stored.
type MemoryLedger struct {
	mu       sync.Mutex
	nextID   int64
	bookings []models.Booking
	byClient map[int][]int // indexes into bookings, creation order
}

// NewMemoryLedger returns an empty ledger; the first booking gets id 1.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{nextID: 1, byClient: make(map[int][]int)}
}

// Append stores a new confirmed booking.
func (l *MemoryLedger) Append(clientID int, providerID int, providerName string, slotID int, startTime time.Time, createdAt time.Time) models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	if int64(len(l.bookings)) != l.nextID-1 {
		panic(fmt.Sprintf("booking ledger corrupted: %d records, next id %d", len(l.bookings), l.nextID))
	}

	booking := models.Booking{
		ID:           l.nextID,
		ClientID:     clientID,
		ProviderID:   providerID,
		ProviderName: providerName,
		SlotID:       slotID,
		StartTime:    startTime,
		Status:       models.BookingConfirmed,
		CreatedAt:    createdAt,
	}
	l.nextID++
	l.byClient[clientID] = append(l.byClient[clientID], len(l.bookings))
	l.bookings = append(l.bookings, booking)
	return booking
}

// ListByClient returns the client's bookings in creation order.
func (l *MemoryLedger) ListByClient(clientID int) []models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	idxs := l.byClient[clientID]
	out := make([]models.Booking, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, l.bookings[i])
	}
	return out
}

// Count reports the total number of bookings ever appended.
func (l *MemoryLedger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bookings)
}
