package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/merchops/sku-dash-be/internal/apperr"
	"github.com/merchops/sku-dash-be/internal/services"
	"github.com/rs/zerolog/log"
)

// SKUHandler handles catalog queries.
type SKUHandler struct {
	service services.SKUServiceProvider
}

// NewSKUHandler creates a new SKUHandler.
func NewSKUHandler(service services.SKUServiceProvider) *SKUHandler {
	return &SKUHandler{service: service}
}

// List returns the catalog filtered by the optional query parameters.
func (h *SKUHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	skus := h.service.List(services.SKUQuery{
		Search:     q.Get("search"),
		FilterType: q.Get("filter_type"),
		SortBy:     q.Get("sort_by"),
		SortOrder:  q.Get("sort_order"),
	})
	respondWithJSON(w, http.StatusOK, skus)
}

// Get returns a single SKU by id.
func (h *SKUHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sku_id")
	sku, err := h.service.Get(id)
	if err != nil {
		log.Warn().Str("sku_id", id).Msg("SKU not found")
		respondWithError(w, apperr.HTTPStatus(err), "SKU not found")
		return
	}
	respondWithJSON(w, http.StatusOK, sku)
}
