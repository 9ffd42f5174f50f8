package seed

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/merchops/sku-dash-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUsers(t *testing.T) {
	path := writeFile(t, "users.json", `[
		{"userid":"u1","username":"alice","email":"a@x.com","role":"brand_user","password":"pw1"},
		{"userid":"u2","username":"bob","email":"b@x.com","role":"merch_ops","password":"pw2"}
	]`)

	users := store.NewUsers()
	require.NoError(t, Users(path, users))
	assert.Equal(t, 2, users.Len())

	alice, found := users.GetByUsername("alice")
	require.True(t, found)
	assert.Equal(t, "u1", alice.ID)
	assert.Equal(t, "brand_user", alice.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(alice.PasswordHash), []byte("pw1")))
}

func TestUsers_MissingFile(t *testing.T) {
	err := Users(filepath.Join(t.TempDir(), "absent.json"), store.NewUsers())
	require.Error(t, err)
}

func TestSKUs_RoundingAndSharedSeries(t *testing.T) {
	path := writeFile(t, "skus.json", `[
		{"id":"s1","name":"Blue Widget","sales":100.567,"returnPercentage":4.26,"contentScore":7.84},
		{"id":"s2","name":"Gadget","sales":20.004,"returnPercentage":12.65,"contentScore":6.15}
	]`)

	skus := store.NewSKUs()
	require.NoError(t, SKUs(path, skus))

	listed := skus.List()
	require.Len(t, listed, 2)

	assert.Equal(t, 100.57, listed[0].Sales)
	assert.Equal(t, 4.3, listed[0].ReturnPercentage)
	assert.Equal(t, 7.8, listed[0].ContentScore)
	assert.Equal(t, 20.0, listed[1].Sales)

	// One series per process start, shared verbatim across all SKUs.
	require.Len(t, listed[0].SalesData, 12)
	assert.Equal(t, listed[0].SalesData, listed[1].SalesData)
}

func TestSKUs_MissingFile(t *testing.T) {
	err := SKUs(filepath.Join(t.TempDir(), "absent.json"), store.NewSKUs())
	require.Error(t, err)
}

func TestSalesSeries(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	series := SalesSeries(rng, now)
	require.Len(t, series, 12)

	assert.Equal(t, "Month 1", series[0].Month)
	assert.Equal(t, "Month 12", series[11].Month)
	assert.Equal(t, "2026-08", series[11].Date, "last point lands on the current month")

	for i, p := range series {
		assert.GreaterOrEqual(t, p.Sales, 0.7*1000.0, "point %d below the possible floor", i)
		assert.LessOrEqual(t, p.Sales, 1.3*50000.0, "point %d above the possible ceiling", i)
	}

	// Dates step back 30 days per point, so they never decrease.
	for i := 1; i < len(series); i++ {
		assert.LessOrEqual(t, series[i-1].Date, series[i].Date)
	}
}
