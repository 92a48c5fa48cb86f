package providerRepo

import (
	"errors"

	"wellbook/models"
)

var (
	// ErrDuplicateProvider is returned by Register on an id collision.
	ErrDuplicateProvider = errors.New("provider already registered")
	// ErrProviderNotFound is returned by GetByID for an unknown provider.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrSlotNotFound is returned when a provider/slot pair does not resolve,
	// whether the provider or the slot within it is missing.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrSlotNotAvailable is returned by TrySetBooked when the slot has
	// already been booked.
	ErrSlotNotAvailable = errors.New("slot not available")
)

// Registry defines access to provider records and their slots. It is the only
// path through which slot status may change.
type Registry interface {
	// Register inserts a new provider with its initial slot set.
	Register(provider models.Provider) error
	// GetByID retrieves a provider snapshot by its unique id.
	GetByID(id int) (models.Provider, error)
	// GetAll retrieves all providers in registration order.
	GetAll() []models.Provider
	// GetByCategory returns providers carrying an exact category tag match.
	// Order is registration order, stable across calls.
	GetByCategory(category string) []models.Provider
	// FindSlot retrieves a slot snapshot.
	FindSlot(providerID, slotID int) (models.Slot, error)
	// TrySetBooked atomically transitions a slot from available to booked and
	// returns the slot as captured at the moment of transition. At most one
	// caller ever succeeds for a given slot.
	TrySetBooked(providerID, slotID int) (models.Slot, error)
}
