package providerRepo

import (
	"sync"
	"sync/atomic"
	"time"

	"wellbook/models"
)

const (
	statusAvailable int32 = iota
	statusBooked
)

// slotRecord keeps slot status in an atomic so the available->booked
// transition is a single compare-and-swap. Start time never changes.
type slotRecord struct {
	id     int
	start  time.Time
	status atomic.Int32
}

func (s *slotRecord) currentStatus() models.SlotStatus {
	if s.status.Load() == statusBooked {
		return models.SlotBooked
	}
	return models.SlotAvailable
}

func (s *slotRecord) snapshot() models.Slot {
	return models.Slot{ID: s.id, StartTime: s.start, Status: s.currentStatus()}
}

type providerRecord struct {
	id         int
	name       string
	categories []string
	slots      []*slotRecord
}

func (p *providerRecord) snapshot() models.Provider {
	slots := make([]models.Slot, len(p.slots))
	for i, s := range p.slots {
		slots[i] = s.snapshot()
	}
	return models.Provider{
		ID:         p.id,
		Name:       p.name,
		Categories: append([]string(nil), p.categories...),
		Slots:      slots,
	}
}

// MemoryRegistry is the in-process Registry implementation. The RWMutex only
// guards the provider map and registration order; slot status lives in the
// per-slot atomic, so reservations on different slots never serialize on each
// other.
type MemoryRegistry struct {
	mu        sync.RWMutex
	providers map[int]*providerRecord
	order     []int
}

// NewMemoryRegistry returns an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{providers: make(map[int]*providerRecord)}
}

// Register inserts a provider and its initial slots.
func (r *MemoryRegistry) Register(provider models.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[provider.ID]; exists {
		return ErrDuplicateProvider
	}

	rec := &providerRecord{
		id:         provider.ID,
		name:       provider.Name,
		categories: append([]string(nil), provider.Categories...),
	}
	for _, s := range provider.Slots {
		sr := &slotRecord{id: s.ID, start: s.StartTime}
		if s.Status == models.SlotBooked {
			sr.status.Store(statusBooked)
		}
		rec.slots = append(rec.slots, sr)
	}

	r.providers[provider.ID] = rec
	r.order = append(r.order, provider.ID)
	return nil
}

// GetByID retrieves a provider snapshot.
func (r *MemoryRegistry) GetByID(id int) (models.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.providers[id]
	if !ok {
		return models.Provider{}, ErrProviderNotFound
	}
	return rec.snapshot(), nil
}

// GetAll retrieves all providers in registration order.
func (r *MemoryRegistry) GetAll() []models.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]models.Provider, 0, len(r.order))
	for _, id := range r.order {
		providers = append(providers, r.providers[id].snapshot())
	}
	return providers
}

// GetByCategory returns providers whose tags contain an exact match.
func (r *MemoryRegistry) GetByCategory(category string) []models.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Provider
	for _, id := range r.order {
		rec := r.providers[id]
		for _, c := range rec.categories {
			if c == category {
				matched = append(matched, rec.snapshot())
				break
			}
		}
	}
	return matched
}

// FindSlot retrieves a slot snapshot. A missing provider and a missing slot
// report the same way; callers that care resolve the provider first.
func (r *MemoryRegistry) FindSlot(providerID, slotID int) (models.Slot, error) {
	rec, err := r.findSlotRecord(providerID, slotID)
	if err != nil {
		return models.Slot{}, err
	}
	return rec.snapshot(), nil
}

// TrySetBooked performs the atomic available->booked transition.
func (r *MemoryRegistry) TrySetBooked(providerID, slotID int) (models.Slot, error) {
	rec, err := r.findSlotRecord(providerID, slotID)
	if err != nil {
		return models.Slot{}, err
	}
	if !rec.status.CompareAndSwap(statusAvailable, statusBooked) {
		return models.Slot{}, ErrSlotNotAvailable
	}
	return models.Slot{ID: rec.id, StartTime: rec.start, Status: models.SlotBooked}, nil
}

func (r *MemoryRegistry) findSlotRecord(providerID, slotID int) (*slotRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prov, ok := r.providers[providerID]
	if !ok {
		return nil, ErrSlotNotFound
	}
	// Linear scan; slot lists are small.
	for _, s := range prov.slots {
		if s.id == slotID {
			return s, nil
		}
	}
	return nil, ErrSlotNotFound
}
