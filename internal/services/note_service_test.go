package services

import (
	"testing"
	"time"

	"github.com/merchops/sku-dash-be/internal/apperr"
	"github.com/merchops/sku-dash-be/internal/models"
	"github.com/merchops/sku-dash-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	brandUser  = models.User{ID: "u-brand", Username: "brand", Role: models.RoleBrandUser}
	otherBrand = models.User{ID: "u-other", Username: "other", Role: models.RoleBrandUser}
	merchOps   = models.User{ID: "u-merch", Username: "merch", Role: models.RoleMerchOps}
)

func TestCreateThenList(t *testing.T) {
	svc := NewNoteService(store.NewNotes())

	note := svc.Create("SKU-1", "check images", brandUser)

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "SKU-1", note.SKUID)
	assert.Equal(t, brandUser.ID, note.UserID)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	listed := svc.ListForSKU("SKU-1")
	require.Len(t, listed, 1)
	assert.Equal(t, note, listed[0])
}

func TestListForSKU_InsertionOrderAndSoftReference(t *testing.T) {
	svc := NewNoteService(store.NewNotes())

	first := svc.Create("SKU-1", "first", brandUser)
	svc.Create("SKU-2", "unrelated", brandUser)
	second := svc.Create("SKU-1", "second", merchOps)

	listed := svc.ListForSKU("SKU-1")
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)

	// The SKU id is never validated; an unknown one just lists nothing.
	assert.Empty(t, svc.ListForSKU("no-such-sku"))
}

func TestUpdate_ChangesContentAndUpdatedAtOnly(t *testing.T) {
	svc := NewNoteService(store.NewNotes())
	created := svc.Create("SKU-1", "draft", brandUser)

	time.Sleep(5 * time.Millisecond)
	updated, err := svc.Update(created.ID, "final", brandUser)
	require.NoError(t, err)

	assert.Equal(t, "final", updated.Content)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.SKUID, updated.SKUID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdate_MissingNote(t *testing.T) {
	svc := NewNoteService(store.NewNotes())

	_, err := svc.Update("missing", "x", brandUser)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdate_Authorization(t *testing.T) {
	svc := NewNoteService(store.NewNotes())
	created := svc.Create("SKU-1", "draft", brandUser)

	_, err := svc.Update(created.ID, "hijack", otherBrand)
	require.ErrorIs(t, err, apperr.ErrForbidden)

	// merch_ops may edit anyone's note
	_, err = svc.Update(created.ID, "reviewed", merchOps)
	require.NoError(t, err)
}

func TestDelete(t *testing.T) {
	svc := NewNoteService(store.NewNotes())
	created := svc.Create("SKU-1", "temp", brandUser)

	require.NoError(t, svc.Delete(created.ID, brandUser))
	assert.Empty(t, svc.ListForSKU("SKU-1"))
}

func TestDelete_MissingNoteIsNotFound(t *testing.T) {
	svc := NewNoteService(store.NewNotes())

	err := svc.Delete("missing", brandUser)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDelete_Authorization(t *testing.T) {
	svc := NewNoteService(store.NewNotes())
	created := svc.Create("SKU-1", "temp", brandUser)

	require.ErrorIs(t, svc.Delete(created.ID, otherBrand), apperr.ErrForbidden)
	require.NoError(t, svc.Delete(created.ID, merchOps))
}
