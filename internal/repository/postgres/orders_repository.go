package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oneMinuteShop/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(store *Store) *OrdersRepository {
	return &OrdersRepository{
		DB: store.DB,
	}
}

func (r *OrdersRepository) Create(ctx context.Context, order *domain.Order) error {
	model := orderModel{
		ID:                   uuid.NewString(),
		TenantID:             order.TenantID,
		CustomerName:         order.CustomerName,
		CustomerEmail:        order.CustomerEmail,
		ShippingAddress:      datatypes.JSONMap(order.ShippingAddress),
		OrderTotal:           order.OrderTotal,
		Status:               order.Status,
		TransactionID:        order.TransactionID,
		PaymentScreenshotURL: order.PaymentScreenshotURL,
		CreatedAt:            order.CreatedAt,
		UpdatedAt:            order.UpdatedAt,
	}

	if err := r.DB.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	order.ID = model.ID

	return nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, id string) (domain.Order, error) {
	if !validID(id) {
		return domain.Order{}, domain.ErrInvalidID
	}

	var model orderModel
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("failed to find order: %w", err)
	}

	return model.toDomain(), nil
}

func (r *OrdersRepository) FindByTenant(ctx context.Context, tenantID string) ([]domain.Order, error) {
	var models []orderModel
	err := r.DB.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, m.toDomain())
	}

	return orders, nil
}

func (r *OrdersRepository) Patch(ctx context.Context, id string, patch domain.OrderPatch, updatedAt time.Time) error {
	if !validID(id) {
		return domain.ErrInvalidID
	}

	updateData := map[string]interface{}{"updated_at": updatedAt}
	if patch.Status != nil {
		updateData["status"] = *patch.Status
	}
	if patch.TransactionID != nil {
		updateData["transaction_id"] = *patch.TransactionID
	}
	if patch.PaymentScreenshotURL != nil {
		updateData["payment_screenshot_url"] = *patch.PaymentScreenshotURL
	}

	row := r.DB.WithContext(ctx).Model(&orderModel{}).Where("id = ?", id).Updates(updateData)
	if err := row.Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if row.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}
