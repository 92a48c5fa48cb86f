package booking

import (
	"time"

	bookingRepo "wellbook/database/repository/booking"
	clientRepo "wellbook/database/repository/client"
	providerRepo "wellbook/database/repository/provider"
	"wellbook/models"
	"wellbook/utils"
)

// ReservationService defines the interface for provider search and slot
// reservation.
type ReservationService interface {
	FindAvailableProviders(category string) ([]models.Provider, error)
	Reserve(clientID, providerID, slotID int) (*models.Booking, error)
	ListProviders() []models.Provider
	ListClientBookings(clientID int) ([]models.Booking, error)
}

// DefaultReservationService implements ReservationService. It holds no state
// of its own; it coordinates the registry and the ledger and keeps slot status
// and booking existence in lockstep.
type DefaultReservationService struct {
	Registry providerRepo.Registry
	Ledger   bookingRepo.Ledger
	Clients  clientRepo.Repository
	Clock    utils.Clock
}

func (s *DefaultReservationService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now()
}
