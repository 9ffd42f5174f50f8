package services

import (
	"testing"

	"github.com/merchops/sku-dash-be/internal/apperr"
	"github.com/merchops/sku-dash-be/internal/models"
	"github.com/merchops/sku-dash-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededCatalog(t *testing.T) *SKUService {
	t.Helper()

	skus := store.NewSKUs()
	for _, sku := range []models.SKU{
		{ID: "s1", Name: "Blue Widget", Sales: 120.5, ReturnPercentage: 4.2, ContentScore: 7.8},
		{ID: "s2", Name: "Gadget", Sales: 80.0, ReturnPercentage: 12.6, ContentScore: 6.1},
		{ID: "s3", Name: "Green widget", Sales: 300.0, ReturnPercentage: 2.9, ContentScore: 4.4},
		{ID: "s4", Name: "Stand", Sales: 10.0, ReturnPercentage: 10.0, ContentScore: 5.0},
	} {
		skus.Insert(sku)
	}
	return NewSKUService(skus)
}

func ids(skus []models.SKU) []string {
	out := make([]string, len(skus))
	for i, s := range skus {
		out[i] = s.ID
	}
	return out
}

func TestList_NoParamsKeepsCatalogOrder(t *testing.T) {
	svc := seededCatalog(t)
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, ids(svc.List(SKUQuery{})))
}

func TestList_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := seededCatalog(t)
	assert.Equal(t, []string{"s1", "s3"}, ids(svc.List(SKUQuery{Search: "Widget"})))
	assert.Empty(t, ids(svc.List(SKUQuery{Search: "nothing"})))
}

func TestList_FilterHighReturn(t *testing.T) {
	svc := seededCatalog(t)

	// Strictly greater than 10: s4 sits exactly on the threshold and stays out.
	assert.Equal(t, []string{"s2"}, ids(svc.List(SKUQuery{FilterType: "high_return"})))
}

func TestList_FilterLowContent(t *testing.T) {
	svc := seededCatalog(t)

	// Strictly less than 5: s4 at exactly 5.0 stays out.
	assert.Equal(t, []string{"s3"}, ids(svc.List(SKUQuery{FilterType: "low_content"})))
}

func TestList_UnknownFilterIsNoOp(t *testing.T) {
	svc := seededCatalog(t)
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, ids(svc.List(SKUQuery{FilterType: "bogus"})))
}

func TestList_SortAscThenDescReverses(t *testing.T) {
	svc := seededCatalog(t)

	asc := ids(svc.List(SKUQuery{SortBy: "sales"}))
	desc := ids(svc.List(SKUQuery{SortBy: "sales", SortOrder: "desc"}))

	assert.Equal(t, []string{"s4", "s2", "s1", "s3"}, asc)
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestList_SortByName(t *testing.T) {
	svc := seededCatalog(t)
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, ids(svc.List(SKUQuery{SortBy: "name"})))
}

func TestList_UnknownSortByLeavesOrder(t *testing.T) {
	svc := seededCatalog(t)
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, ids(svc.List(SKUQuery{SortBy: "created_at"})))
}

func TestList_IsPure(t *testing.T) {
	svc := seededCatalog(t)
	q := SKUQuery{Search: "widget", FilterType: "high_return", SortBy: "sales", SortOrder: "desc"}

	first := svc.List(q)
	second := svc.List(q)
	assert.Equal(t, first, second)

	// Earlier queries must not disturb the catalog either.
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, ids(svc.List(SKUQuery{})))
}

func TestGet(t *testing.T) {
	svc := seededCatalog(t)

	sku, err := svc.Get("s2")
	require.NoError(t, err)
	assert.Equal(t, "Gadget", sku.Name)

	_, err = svc.Get("missing")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
