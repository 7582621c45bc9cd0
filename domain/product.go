package domain

import (
	"time"
)

// Product belongs to exactly one tenant. TenantID always holds the
// tenant's canonical id, never a subdomain.
type Product struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Inventory   int       `json:"inventory"`
	ImageURLs   []string  `json:"image_urls"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
