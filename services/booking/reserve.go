package booking

import (
	"wellbook/models"
)

// Reserve books a specific slot for a client. The registry's compare-and-swap
// decides the winner when callers race on the same slot; once the transition
// lands, the ledger append cannot fail, so a booked slot always has exactly
// one booking behind it.
func (s *DefaultReservationService) Reserve(clientID, providerID, slotID int) (*models.Booking, error) {
	if _, err := s.Clients.GetByID(clientID); err != nil {
		return nil, err
	}

	provider, err := s.Registry.GetByID(providerID)
	if err != nil {
		return nil, err
	}

	// Single atomic step: locates the slot and claims it. Losing racers get
	// ErrSlotNotAvailable from here, not from a stale pre-check.
	slot, err := s.Registry.TrySetBooked(providerID, slotID)
	if err != nil {
		return nil, err
	}

	booking := s.Ledger.Append(clientID, provider.ID, provider.Name, slot.ID, slot.StartTime, s.now())
	return &booking, nil
}

// ListClientBookings returns the client's bookings in creation order.
func (s *DefaultReservationService) ListClientBookings(clientID int) ([]models.Booking, error) {
	if _, err := s.Clients.GetByID(clientID); err != nil {
		return nil, err
	}
	return s.Ledger.ListByClient(clientID), nil
}
