package postgres

import (
	"context"
	"errors"
	"fmt"

	"oneMinuteShop/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{
		DB: store.DB,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	model := productModel{
		ID:          uuid.NewString(),
		TenantID:    product.TenantID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Inventory:   product.Inventory,
		ImageURLs:   datatypes.JSONSlice[string](product.ImageURLs),
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	if err := r.DB.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	product.ID = model.ID

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}
	if !validID(id) {
		return domain.Product{}, domain.ErrInvalidID
	}

	var model productModel
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return model.toDomain(), nil
}

func (r *ProductRepository) FindByTenant(ctx context.Context, tenantID string, onlyActive bool) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var models []productModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	products := make([]domain.Product, 0, len(models))
	for _, m := range models {
		products = append(products, m.toDomain())
	}

	return products, nil
}

// Update overwrites every mutable field; tenant_id and created_at are
// left as stored.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if !validID(product.ID) {
		return domain.ErrInvalidID
	}

	updateData := map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"inventory":   product.Inventory,
		"image_urls":  datatypes.JSONSlice[string](product.ImageURLs),
		"is_active":   product.IsActive,
		"updated_at":  product.UpdatedAt,
	}

	result := r.DB.WithContext(ctx).Model(&productModel{}).Where("id = ?", product.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if !validID(id) {
		return domain.ErrInvalidID
	}

	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&productModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}
