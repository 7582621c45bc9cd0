package domain

import "time"

// Tenant is a store owning its own products and orders. ID is the
// canonical identifier assigned by the storage backend.
type Tenant struct {
	ID             string         `json:"id"`
	Subdomain      string         `json:"subdomain"`
	Name           string         `json:"name"`
	Description    *string        `json:"description"`
	LogoURL        *string        `json:"logo_url"`
	PaymentDetails map[string]any `json:"payment_details"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
