// Package seed populates the in-memory stores from the static JSON files in
// the data directory. It runs exactly once, before the HTTP server starts;
// nothing is ever written back.
package seed

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/merchops/sku-dash-be/internal/models"
	"github.com/merchops/sku-dash-be/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// seedUser is the on-disk shape of one users.json entry.
type seedUser struct {
	UserID   string `json:"userid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// seedSKU is the on-disk shape of one skus.json entry.
type seedSKU struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Sales            float64 `json:"sales"`
	ReturnPercentage float64 `json:"returnPercentage"`
	ContentScore     float64 `json:"contentScore"`
}

// Users reads the users seed file and fills the store, hashing each seed
// password with bcrypt. A missing or malformed file is a fatal startup error
// surfaced to the caller.
func Users(path string, users *store.Users) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read users seed: %w", err)
	}

	var entries []seedUser
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse users seed: %w", err)
	}

	for _, e := range entries {
		hash, err := bcrypt.GenerateFromPassword([]byte(e.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password for %q: %w", e.Username, err)
		}
		users.Insert(models.User{
			ID:           e.UserID,
			Username:     e.Username,
			Email:        e.Email,
			Role:         e.Role,
			PasswordHash: string(hash),
		})
	}
	return nil
}

// SKUs reads the SKUs seed file and fills the catalog. Every seeded SKU
// shares one synthetic 12-month sales series generated per process start.
func SKUs(path string, skus *store.SKUs) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read skus seed: %w", err)
	}

	var entries []seedSKU
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse skus seed: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	series := SalesSeries(rng, time.Now())
	now := time.Now()

	for _, e := range entries {
		skus.Insert(models.SKU{
			ID:               e.ID,
			Name:             e.Name,
			Sales:            round2(e.Sales),
			ReturnPercentage: round1(e.ReturnPercentage),
			ContentScore:     round1(e.ContentScore),
			CreatedAt:        now,
			SalesData:        series,
		})
	}
	return nil
}

// SalesSeries generates the shared 12-month synthetic series: a random base
// between 1000 and 50000, each month varying between 0.7x and 1.3x of it.
// The last point lands on the current month; earlier points step back 30
// days at a time.
func SalesSeries(rng *rand.Rand, now time.Time) []models.SalesPoint {
	base := uniform(rng, 1000, 50000)

	series := make([]models.SalesPoint, 0, 12)
	for month := 0; month < 12; month++ {
		series = append(series, models.SalesPoint{
			Month: fmt.Sprintf("Month %d", month+1),
			Sales: round2(base * uniform(rng, 0.7, 1.3)),
			Date:  now.AddDate(0, 0, -30*(11-month)).Format("2006-01"),
		})
	}
	return series
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
