package store

import (
	"sync"

	"github.com/merchops/sku-dash-be/internal/models"
)

// SKUs is the in-memory SKU catalog. It is filled once at seed time and
// read-only afterwards; the order slice preserves seed-file order so that
// unsorted listings are stable.
type SKUs struct {
	mu    sync.RWMutex
	byID  map[string]models.SKU
	order []string
}

// NewSKUs creates an empty catalog.
func NewSKUs() *SKUs {
	return &SKUs{byID: make(map[string]models.SKU)}
}

// Insert adds a SKU, overwriting any previous record with the same id.
func (s *SKUs) Insert(sku models.SKU) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[sku.ID]; !exists {
		s.order = append(s.order, sku.ID)
	}
	s.byID[sku.ID] = sku
}

// Get looks a SKU up by id.
func (s *SKUs) Get(id string) (models.SKU, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sku, ok := s.byID[id]
	return sku, ok
}

// List returns all SKUs in catalog order.
func (s *SKUs) List() []models.SKU {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SKU, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}
