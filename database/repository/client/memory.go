package clientRepo

import (
	"fmt"
	"sync"

	"wellbook/models"
)

// MemoryRepo is the in-process client store.
type MemoryRepo struct {
	mu      sync.RWMutex
	clients map[int]models.Client
	order   []int
}

// NewMemoryRepo returns an empty client repository.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{clients: make(map[int]models.Client)}
}

// Register inserts a client.
func (r *MemoryRepo) Register(client models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[client.ID]; exists {
		return fmt.Errorf("client %d already registered", client.ID)
	}
	r.clients[client.ID] = client
	r.order = append(r.order, client.ID)
	return nil
}

// GetByID retrieves a client.
func (r *MemoryRepo) GetByID(id int) (models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[id]
	if !ok {
		return models.Client{}, ErrClientNotFound
	}
	return client, nil
}

// GetAll retrieves all clients in registration order.
func (r *MemoryRepo) GetAll() []models.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Client, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.clients[id])
	}
	return out
}
