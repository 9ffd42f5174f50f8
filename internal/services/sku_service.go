package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/merchops/sku-dash-be/internal/apperr"
	"github.com/merchops/sku-dash-be/internal/models"
	"github.com/merchops/sku-dash-be/internal/store"
)

// SKUQuery carries the optional listing parameters. Zero values mean "no
// search", "no filter", "catalog order".
type SKUQuery struct {
	Search     string
	FilterType string
	SortBy     string
	SortOrder  string
}

// SKUServiceProvider defines the interface for SKU catalog queries.
type SKUServiceProvider interface {
	List(q SKUQuery) []models.SKU
	Get(id string) (models.SKU, error)
}

// SKUService answers read-only queries against the seeded catalog.
type SKUService struct {
	skus *store.SKUs
}

// NewSKUService creates a new SKUService.
func NewSKUService(skus *store.SKUs) *SKUService {
	return &SKUService{skus: skus}
}

// List applies search, filter and sort over the full catalog, in that order.
// The result is a pure function of the catalog and the query.
func (s *SKUService) List(q SKUQuery) []models.SKU {
	skus := s.skus.List()

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		matched := skus[:0]
		for _, sku := range skus {
			if strings.Contains(strings.ToLower(sku.Name), needle) {
				matched = append(matched, sku)
			}
		}
		skus = matched
	}

	switch q.FilterType {
	case "high_return":
		matched := skus[:0]
		for _, sku := range skus {
			if sku.ReturnPercentage > 10 {
				matched = append(matched, sku)
			}
		}
		skus = matched
	case "low_content":
		matched := skus[:0]
		for _, sku := range skus {
			if sku.ContentScore < 5 {
				matched = append(matched, sku)
			}
		}
		skus = matched
	}

	if less := lessFunc(q.SortBy); less != nil {
		desc := q.SortOrder == "desc"
		sort.SliceStable(skus, func(i, j int) bool {
			if desc {
				return less(skus[j], skus[i])
			}
			return less(skus[i], skus[j])
		})
	}

	return skus
}

// lessFunc maps a sort_by value to an ascending comparison. Unknown fields
// leave the listing unsorted.
func lessFunc(sortBy string) func(a, b models.SKU) bool {
	switch sortBy {
	case "name":
		return func(a, b models.SKU) bool { return a.Name < b.Name }
	case "sales":
		return func(a, b models.SKU) bool { return a.Sales < b.Sales }
	case "return_percentage":
		return func(a, b models.SKU) bool { return a.ReturnPercentage < b.ReturnPercentage }
	case "content_score":
		return func(a, b models.SKU) bool { return a.ContentScore < b.ContentScore }
	}
	return nil
}

// Get retrieves a single SKU by id.
func (s *SKUService) Get(id string) (models.SKU, error) {
	sku, found := s.skus.Get(id)
	if !found {
		return models.SKU{}, fmt.Errorf("SKU %s: %w", id, apperr.ErrNotFound)
	}
	return sku, nil
}
