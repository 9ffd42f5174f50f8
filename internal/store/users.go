// Package store holds the in-memory state of the application. Each store
// owns its map behind a mutex and is constructed once at startup, then
// injected into the services that use it. Nothing here touches disk; the
// seed package fills the user and SKU stores before the server starts.
package store

import (
	"sync"

	"github.com/merchops/sku-dash-be/internal/models"
)

// Users is an in-memory user store with unique username and email.
type Users struct {
	mu         sync.RWMutex
	byID       map[string]models.User
	byUsername map[string]string // username -> id
	byEmail    map[string]string // email -> id
}

// NewUsers creates an empty user store.
func NewUsers() *Users {
	return &Users{
		byID:       make(map[string]models.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

// Insert adds a user if neither its username nor its email is taken.
// The check and the insert run under one lock so concurrent registrations
// cannot produce duplicates. Returns false on conflict.
func (s *Users) Insert(u models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[u.Username]; taken {
		return false
	}
	if _, taken := s.byEmail[u.Email]; taken {
		return false
	}

	s.byID[u.ID] = u
	s.byUsername[u.Username] = u.ID
	s.byEmail[u.Email] = u.ID
	return true
}

// GetByUsername looks a user up by exact (case-sensitive) username.
func (s *Users) GetByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return models.User{}, false
	}
	u, ok := s.byID[id]
	return u, ok
}

// Get looks a user up by id.
func (s *Users) Get(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	return u, ok
}

// Len reports the number of stored users.
func (s *Users) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
