package models

import "time"

// SlotStatus is the lifecycle state of a bookable slot. A slot moves from
// Available to Booked exactly once and never back.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// Slot represents a single reservable time unit belonging to one provider.
// The slot id is unique across the whole registry, not just within its owner.
type Slot struct {
	ID        int        `json:"slot_id"`
	StartTime time.Time  `json:"start_time"` // serializes as RFC 3339
	Status    SlotStatus `json:"status"`
}

// Provider is an entity offering bookable time slots under one or more
// category tags. Identity and categories are fixed at registration; only
// slot status changes afterwards, and only through the registry.
type Provider struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"` // case-sensitive exact-match tags
	Slots      []Slot   `json:"availability"`
}
