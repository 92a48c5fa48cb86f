package booking

import (
	"time"

	"wellbook/models"
)

// FindAvailableProviders returns providers matching the category that have at
// least one available slot strictly in the future. Matched providers are
// returned whole, with their full slot lists, in registry order.
func (s *DefaultReservationService) FindAvailableProviders(category string) ([]models.Provider, error) {
	asOf := s.now()

	var available []models.Provider
	for _, p := range s.Registry.GetByCategory(category) {
		if hasFutureAvailability(p, asOf) {
			available = append(available, p)
		}
	}

	if len(available) == 0 {
		return nil, ErrNoMatch
	}
	return available, nil
}

// ListProviders returns the full registry dump, booked slots included.
func (s *DefaultReservationService) ListProviders() []models.Provider {
	return s.Registry.GetAll()
}

func hasFutureAvailability(p models.Provider, asOf time.Time) bool {
	for _, slot := range p.Slots {
		if slot.Status == models.SlotAvailable && slot.StartTime.After(asOf) {
			return true
		}
	}
	return false
}
