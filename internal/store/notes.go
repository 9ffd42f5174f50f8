package store

import (
	"sync"

	"github.com/merchops/sku-dash-be/internal/models"
)

// Notes is the in-memory note store. Empty at startup; mutated only through
// API calls. The order slice preserves insertion order for listings.
type Notes struct {
	mu    sync.RWMutex
	byID  map[string]models.Note
	order []string
}

// NewNotes creates an empty note store.
func NewNotes() *Notes {
	return &Notes{byID: make(map[string]models.Note)}
}

// Insert adds a note.
func (s *Notes) Insert(n models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[n.ID]; !exists {
		s.order = append(s.order, n.ID)
	}
	s.byID[n.ID] = n
}

// Get looks a note up by id.
func (s *Notes) Get(id string) (models.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.byID[id]
	return n, ok
}

// Update replaces an existing note. Returns false if the note is missing.
func (s *Notes) Update(n models.Note) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[n.ID]; !ok {
		return false
	}
	s.byID[n.ID] = n
	return true
}

// Delete removes a note by id. Returns false if the note was not present,
// so a missing id is a reportable condition rather than a fault.
func (s *Notes) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// ListBySKU returns all notes referencing the given SKU id, in insertion
// order. The SKU itself is never checked for existence.
func (s *Notes) ListBySKU(skuID string) []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Note, 0)
	for _, id := range s.order {
		if n := s.byID[id]; n.SKUID == skuID {
			out = append(out, n)
		}
	}
	return out
}
