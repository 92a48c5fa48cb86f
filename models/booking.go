package models

import "time"

// BookingConfirmed is the only booking status this service issues;
// cancellation does not exist here, so a booking never leaves it.
const BookingConfirmed = "confirmed"

// Booking is an immutable record of a successful reservation. The start time
// is captured from the slot at booking time so the record stands on its own.
type Booking struct {
	ID           int64     `json:"booking_id"`
	ClientID     int       `json:"client_id"`
	ProviderID   int       `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	SlotID       int       `json:"slot_id"`
	StartTime    time.Time `json:"start_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
