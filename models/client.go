package models

// Client is read-only reference data; the reservation flow only ever checks
// that one exists.
type Client struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
