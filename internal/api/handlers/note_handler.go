package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/merchops/sku-dash-be/internal/apperr"
	"github.com/merchops/sku-dash-be/internal/auth"
	"github.com/merchops/sku-dash-be/internal/services"
	"github.com/rs/zerolog/log"
)

// NoteHandler handles per-SKU note management.
type NoteHandler struct {
	service services.NoteServiceProvider
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(service services.NoteServiceProvider) *NoteHandler {
	return &NoteHandler{service: service}
}

// CreatePayload defines the structure for note creation requests.
type CreatePayload struct {
	SKUID   string `json:"sku_id"`
	Content string `json:"content"`
}

// ListForSKU returns every note attached to a SKU id.
func (h *NoteHandler) ListForSKU(w http.ResponseWriter, r *http.Request) {
	skuID := chi.URLParam(r, "sku_id")
	respondWithJSON(w, http.StatusOK, h.service.ListForSKU(skuID))
}

// Create stores a new note owned by the caller.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Could not resolve user from token")
		return
	}

	var payload CreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note := h.service.Create(payload.SKUID, payload.Content, user)
	respondWithJSON(w, http.StatusCreated, note)
}

// Update overwrites a note's content. The content is taken from a JSON body
// {"content": ...} or, failing that, from a "content" query parameter.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Could not resolve user from token")
		return
	}

	id := chi.URLParam(r, "note_id")

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Content == "" {
		payload.Content = r.URL.Query().Get("content")
	}

	note, err := h.service.Update(id, payload.Content, user)
	if err != nil {
		log.Warn().Err(err).Str("note_id", id).Msg("Failed to update note")
		respondWithError(w, apperr.HTTPStatus(err), mutationMessage(err))
		return
	}
	respondWithJSON(w, http.StatusOK, note)
}

// Delete removes a note.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Could not resolve user from token")
		return
	}

	id := chi.URLParam(r, "note_id")
	if err := h.service.Delete(id, user); err != nil {
		log.Warn().Err(err).Str("note_id", id).Msg("Failed to delete note")
		respondWithError(w, apperr.HTTPStatus(err), mutationMessage(err))
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}

func mutationMessage(err error) string {
	if apperr.HTTPStatus(err) == http.StatusForbidden {
		return "Access forbidden"
	}
	return "Note not found"
}
