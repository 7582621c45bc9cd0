package mongo

import (
	"time"

	"oneMinuteShop/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type tenantDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Subdomain      string             `bson:"subdomain"`
	Name           string             `bson:"name"`
	Description    *string            `bson:"description"`
	LogoURL        *string            `bson:"logo_url"`
	PaymentDetails bson.M             `bson:"payment_details"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func newTenantDocument(t *domain.Tenant) tenantDocument {
	return tenantDocument{
		Subdomain:      t.Subdomain,
		Name:           t.Name,
		Description:    t.Description,
		LogoURL:        t.LogoURL,
		PaymentDetails: bson.M(t.PaymentDetails),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (d tenantDocument) toDomain() domain.Tenant {
	return domain.Tenant{
		ID:             d.ID.Hex(),
		Subdomain:      d.Subdomain,
		Name:           d.Name,
		Description:    d.Description,
		LogoURL:        d.LogoURL,
		PaymentDetails: normalizeMap(d.PaymentDetails),
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
}

type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TenantID    string             `bson:"tenant_id"`
	Name        string             `bson:"name"`
	Description *string            `bson:"description"`
	Price       float64            `bson:"price"`
	Inventory   int                `bson:"inventory"`
	ImageURLs   []string           `bson:"image_urls"`
	IsActive    bool               `bson:"is_active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func newProductDocument(p *domain.Product) productDocument {
	return productDocument{
		TenantID:    p.TenantID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Inventory:   p.Inventory,
		ImageURLs:   p.ImageURLs,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d productDocument) toDomain() domain.Product {
	imageURLs := append([]string{}, d.ImageURLs...)
	return domain.Product{
		ID:          d.ID.Hex(),
		TenantID:    d.TenantID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Inventory:   d.Inventory,
		ImageURLs:   imageURLs,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

type orderDocument struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	TenantID             string             `bson:"tenant_id"`
	CustomerName         string             `bson:"customer_name"`
	CustomerEmail        string             `bson:"customer_email"`
	ShippingAddress      bson.M             `bson:"shipping_address"`
	OrderTotal           float64            `bson:"order_total"`
	Status               string             `bson:"status"`
	TransactionID        *string            `bson:"transaction_id"`
	PaymentScreenshotURL *string            `bson:"payment_screenshot_url"`
	CreatedAt            time.Time          `bson:"created_at"`
	UpdatedAt            time.Time          `bson:"updated_at"`
}

func newOrderDocument(o *domain.Order) orderDocument {
	return orderDocument{
		TenantID:             o.TenantID,
		CustomerName:         o.CustomerName,
		CustomerEmail:        o.CustomerEmail,
		ShippingAddress:      bson.M(o.ShippingAddress),
		OrderTotal:           o.OrderTotal,
		Status:               o.Status,
		TransactionID:        o.TransactionID,
		PaymentScreenshotURL: o.PaymentScreenshotURL,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

func (d orderDocument) toDomain() domain.Order {
	return domain.Order{
		ID:                   d.ID.Hex(),
		TenantID:             d.TenantID,
		CustomerName:         d.CustomerName,
		CustomerEmail:        d.CustomerEmail,
		ShippingAddress:      normalizeMap(d.ShippingAddress),
		OrderTotal:           d.OrderTotal,
		Status:               d.Status,
		TransactionID:        d.TransactionID,
		PaymentScreenshotURL: d.PaymentScreenshotURL,
		CreatedAt:            d.CreatedAt.UTC(),
		UpdatedAt:            d.UpdatedAt.UTC(),
	}
}

// objectID parses a canonical id, mapping malformed input to
// domain.ErrInvalidID.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
