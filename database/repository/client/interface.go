package clientRepo

import (
	"errors"

	"wellbook/models"
)

// ErrClientNotFound is returned for an unknown client id.
var ErrClientNotFound = errors.New("client not found")

// Repository holds read-only client reference data.
type Repository interface {
	// Register inserts a client; a duplicate id overwrites nothing and is
	// reported as an error.
	Register(client models.Client) error
	// GetByID retrieves a client.
	GetByID(id int) (models.Client, error)
	// GetAll retrieves all clients in registration order.
	GetAll() []models.Client
}
