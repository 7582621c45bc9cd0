package postgres

import (
	"time"

	"oneMinuteShop/domain"

	"gorm.io/datatypes"
)

// CREATE TABLE public.tenant (
//     id              UUID PRIMARY KEY,
//     subdomain       TEXT NOT NULL UNIQUE,
//     name            TEXT NOT NULL,
//     description     TEXT,
//     logo_url        TEXT,
//     payment_details JSONB,
//     created_at      TIMESTAMPTZ,
//     updated_at      TIMESTAMPTZ
// );

type tenantModel struct {
	ID             string            `gorm:"column:id;type:uuid;primaryKey"`
	Subdomain      string            `gorm:"column:subdomain;type:text;not null;uniqueIndex"`
	Name           string            `gorm:"column:name;type:text;not null"`
	Description    *string           `gorm:"column:description;type:text"`
	LogoURL        *string           `gorm:"column:logo_url;type:text"`
	PaymentDetails datatypes.JSONMap `gorm:"column:payment_details;type:jsonb"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (tenantModel) TableName() string {
	return domain.CollectionTenant
}

func (m tenantModel) toDomain() domain.Tenant {
	details := map[string]any{}
	for k, v := range m.PaymentDetails {
		details[k] = v
	}
	return domain.Tenant{
		ID:             m.ID,
		Subdomain:      m.Subdomain,
		Name:           m.Name,
		Description:    m.Description,
		LogoURL:        m.LogoURL,
		PaymentDetails: details,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

type productModel struct {
	ID          string                      `gorm:"column:id;type:uuid;primaryKey"`
	TenantID    string                      `gorm:"column:tenant_id;type:text;not null;index:idx_product_tenant_created,priority:1"`
	Name        string                      `gorm:"column:name;type:text;not null"`
	Description *string                     `gorm:"column:description;type:text"`
	Price       float64                     `gorm:"column:price;type:numeric"`
	Inventory   int                         `gorm:"column:inventory"`
	ImageURLs   datatypes.JSONSlice[string] `gorm:"column:image_urls;type:jsonb"`
	IsActive    bool                        `gorm:"column:is_active"`
	CreatedAt   time.Time                   `gorm:"column:created_at;autoCreateTime:false;index:idx_product_tenant_created,priority:2,sort:desc"`
	UpdatedAt   time.Time                   `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (productModel) TableName() string {
	return domain.CollectionProduct
}

func (m productModel) toDomain() domain.Product {
	return domain.Product{
		ID:          m.ID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Inventory:   m.Inventory,
		ImageURLs:   append([]string{}, m.ImageURLs...),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

type orderModel struct {
	ID                   string            `gorm:"column:id;type:uuid;primaryKey"`
	TenantID             string            `gorm:"column:tenant_id;type:text;not null;index:idx_order_tenant_created,priority:1"`
	CustomerName         string            `gorm:"column:customer_name;type:text"`
	CustomerEmail        string            `gorm:"column:customer_email;type:text"`
	ShippingAddress      datatypes.JSONMap `gorm:"column:shipping_address;type:jsonb"`
	OrderTotal           float64           `gorm:"column:order_total;type:numeric"`
	Status               string            `gorm:"column:status;type:text"`
	TransactionID        *string           `gorm:"column:transaction_id;type:text"`
	PaymentScreenshotURL *string           `gorm:"column:payment_screenshot_url;type:text"`
	CreatedAt            time.Time         `gorm:"column:created_at;autoCreateTime:false;index:idx_order_tenant_created,priority:2,sort:desc"`
	UpdatedAt            time.Time         `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (orderModel) TableName() string {
	return domain.CollectionOrder
}

func (m orderModel) toDomain() domain.Order {
	address := map[string]any{}
	for k, v := range m.ShippingAddress {
		address[k] = v
	}
	return domain.Order{
		ID:                   m.ID,
		TenantID:             m.TenantID,
		CustomerName:         m.CustomerName,
		CustomerEmail:        m.CustomerEmail,
		ShippingAddress:      address,
		OrderTotal:           m.OrderTotal,
		Status:               m.Status,
		TransactionID:        m.TransactionID,
		PaymentScreenshotURL: m.PaymentScreenshotURL,
		CreatedAt:            m.CreatedAt.UTC(),
		UpdatedAt:            m.UpdatedAt.UTC(),
	}
}
