package models

import "time"

// SalesPoint is one month of the synthetic sales series attached to a SKU.
type SalesPoint struct {
	Month string  `json:"month"` // "Month 1" .. "Month 12"
	Sales float64 `json:"sales"`
	Date  string  `json:"date"` // "2006-01"
}

// SKU represents one sellable product with its sales metrics.
// The catalog is read-only after the startup seed.
type SKU struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Sales            float64      `json:"sales"`
	ReturnPercentage float64      `json:"return_percentage"`
	ContentScore     float64      `json:"content_score"`
	CreatedAt        time.Time    `json:"created_at"`
	SalesData        []SalesPoint `json:"sales_data"`
}
