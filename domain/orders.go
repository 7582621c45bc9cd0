package domain

import "time"

const (
	OrderStatusPendingPayment = "pending_payment"
	OrderStatusVerified       = "verified"
	OrderStatusShipped        = "shipped"
	OrderStatusCancelled      = "cancelled"
)

type Order struct {
	ID                   string         `json:"id"`
	TenantID             string         `json:"tenant_id"`
	CustomerName         string         `json:"customer_name"`
	CustomerEmail        string         `json:"customer_email"`
	ShippingAddress      map[string]any `json:"shipping_address"`
	OrderTotal           float64        `json:"order_total"`
	Status               string         `json:"status"`
	TransactionID        *string        `json:"transaction_id"`
	PaymentScreenshotURL *string        `json:"payment_screenshot_url"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// OrderPatch carries the fields a partial order update may touch.
// Nil fields are left untouched.
type OrderPatch struct {
	Status               *string
	TransactionID        *string
	PaymentScreenshotURL *string
}

func (p OrderPatch) IsEmpty() bool {
	return p.Status == nil && p.TransactionID == nil && p.PaymentScreenshotURL == nil
}

// Apply copies the non-nil patch fields onto o.
func (p OrderPatch) Apply(o *Order) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.TransactionID != nil {
		o.TransactionID = p.TransactionID
	}
	if p.PaymentScreenshotURL != nil {
		o.PaymentScreenshotURL = p.PaymentScreenshotURL
	}
}
