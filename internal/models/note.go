package models

import "time"

// Note is a free-text annotation attached to a SKU. SKUID is a soft
// reference: it is never validated against the catalog. UserID records the
// creator and gates update/delete.
type Note struct {
	ID        string    `json:"id"`
	SKUID     string    `json:"sku_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
