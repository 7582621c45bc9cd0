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

type TenantRepository struct {
	DB *gorm.DB
}

func NewTenantRepository(store *Store) *TenantRepository {
	return &TenantRepository{
		DB: store.DB,
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	model := tenantModel{
		ID:             uuid.NewString(),
		Subdomain:      tenant.Subdomain,
		Name:           tenant.Name,
		Description:    tenant.Description,
		LogoURL:        tenant.LogoURL,
		PaymentDetails: datatypes.JSONMap(tenant.PaymentDetails),
		CreatedAt:      tenant.CreatedAt,
		UpdatedAt:      tenant.UpdatedAt,
	}

	if err := r.DB.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSubdomainExists
		}
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	tenant.ID = model.ID

	return nil
}

func (r *TenantRepository) FindByID(ctx context.Context, id string) (domain.Tenant, error) {
	if !validID(id) {
		return domain.Tenant{}, domain.ErrInvalidID
	}

	return r.findOne(ctx, "id = ?", id)
}

func (r *TenantRepository) FindBySubdomain(ctx context.Context, subdomain string) (domain.Tenant, error) {
	return r.findOne(ctx, "subdomain = ?", subdomain)
}

func (r *TenantRepository) findOne(ctx context.Context, query string, arg any) (domain.Tenant, error) {
	if err := ctx.Err(); err != nil {
		return domain.Tenant{}, fmt.Errorf("context error: %w", err)
	}

	var model tenantModel
	err := r.DB.WithContext(ctx).Where(query, arg).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Tenant{}, domain.ErrTenantNotFound
		}
		return domain.Tenant{}, fmt.Errorf("failed to find tenant: %w", err)
	}

	return model.toDomain(), nil
}
