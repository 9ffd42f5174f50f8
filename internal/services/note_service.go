package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/merchops/sku-dash-be/internal/apperr"
	"github.com/merchops/sku-dash-be/internal/models"
	"github.com/merchops/sku-dash-be/internal/store"
)

// NoteServiceProvider defines the interface for note management.
type NoteServiceProvider interface {
	ListForSKU(skuID string) []models.Note
	Create(skuID, content string, author models.User) models.Note
	Update(noteID, content string, caller models.User) (models.Note, error)
	Delete(noteID string, caller models.User) error
}

// NoteService provides CRUD over per-SKU notes. Notes are readable by every
// authenticated user; mutating a note takes its creator or the merch_ops role.
type NoteService struct {
	notes *store.Notes
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes *store.Notes) *NoteService {
	return &NoteService{notes: notes}
}

// ListForSKU returns all notes attached to a SKU id in insertion order.
// The id is a soft reference, so an unknown SKU simply yields no notes.
func (s *NoteService) ListForSKU(skuID string) []models.Note {
	return s.notes.ListBySKU(skuID)
}

// Create stores a new note for the given SKU id on behalf of author.
func (s *NoteService) Create(skuID, content string, author models.User) models.Note {
	now := time.Now()
	note := models.Note{
		ID:        uuid.New().String(),
		SKUID:     skuID,
		UserID:    author.ID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes.Insert(note)
	return note
}

// Update overwrites a note's content and refreshes its updated_at. The id,
// SKU reference and created_at never change.
func (s *NoteService) Update(noteID, content string, caller models.User) (models.Note, error) {
	note, found := s.notes.Get(noteID)
	if !found {
		return models.Note{}, fmt.Errorf("note %s: %w", noteID, apperr.ErrNotFound)
	}
	if !canMutate(note, caller) {
		return models.Note{}, fmt.Errorf("note %s: %w", noteID, apperr.ErrForbidden)
	}

	note.Content = content
	note.UpdatedAt = time.Now()
	if !s.notes.Update(note) {
		return models.Note{}, fmt.Errorf("note %s: %w", noteID, apperr.ErrNotFound)
	}
	return note, nil
}

// Delete removes a note. A missing id is a NotFound error, not a fault.
func (s *NoteService) Delete(noteID string, caller models.User) error {
	note, found := s.notes.Get(noteID)
	if !found {
		return fmt.Errorf("note %s: %w", noteID, apperr.ErrNotFound)
	}
	if !canMutate(note, caller) {
		return fmt.Errorf("note %s: %w", noteID, apperr.ErrForbidden)
	}

	if !s.notes.Delete(noteID) {
		return fmt.Errorf("note %s: %w", noteID, apperr.ErrNotFound)
	}
	return nil
}

func canMutate(note models.Note, caller models.User) bool {
	return note.UserID == caller.ID || caller.Role == models.RoleMerchOps
}
