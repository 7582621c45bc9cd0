package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oneMinuteShop/business/tenant"
	"oneMinuteShop/domain"
	"oneMinuteShop/pkg/logger"
	"oneMinuteShop/pkg/metrics"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindByTenant(ctx context.Context, tenantID string, onlyActive bool) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type productService struct {
	productRepo ProductRepository
	resolver    *tenant.Resolver
	guard       *tenant.Guard
	now         func() time.Time
}

func NewProductService(productRepo ProductRepository, resolver *tenant.Resolver, guard *tenant.Guard) *productService {
	return &productService{
		productRepo: productRepo,
		resolver:    resolver,
		guard:       guard,
		now:         tenant.Now,
	}
}

// resolveTenant turns an unresolvable reference into domain.ErrInvalidTenant.
func (s *productService) resolveTenant(ctx context.Context, ref string) (domain.Tenant, error) {
	t, err := s.resolver.Resolve(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			logger.Warn("invalid tenant reference", "tenant_ref", ref)
			return domain.Tenant{}, domain.ErrInvalidTenant
		}
		logger.Error("failed to resolve tenant", "tenant_ref", ref, "error", err)
		return domain.Tenant{}, err
	}
	return t, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	owner, err := s.resolveTenant(ctx, product.TenantID)
	if err != nil {
		return nil, err
	}

	product.TenantID = owner.ID
	if product.ImageURLs == nil {
		product.ImageURLs = []string{}
	}
	now := s.now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created successfully", "product_id", product.ID, "tenant_id", product.TenantID)

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, tenantRef string, onlyActive bool) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when list products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	owner, err := s.resolveTenant(ctx, tenantRef)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByTenant(ctx, owner.ID, onlyActive)
	if err != nil {
		logger.Error("failed to find products", "tenant_id", owner.ID, "error", err)
		return nil, err
	}

	return products, nil
}

// UpdateProduct overwrites every mutable field of the stored product.
// product.TenantID is the caller's tenant reference; the stored owner is
// never changed.
func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		if domain.KindOf(err) == domain.KindUnknown {
			logger.Error("failed to find product", "product_id", product.ID, "error", err)
		}
		return nil, err
	}

	if err := s.guard.Authorize(ctx, existing.TenantID, product.TenantID); err != nil {
		if errors.Is(err, domain.ErrTenantMismatch) {
			metrics.TenantScopeDenials.WithLabelValues(domain.CollectionProduct).Inc()
			logger.Warn("product update denied", "product_id", product.ID, "tenant_ref", product.TenantID)
		}
		return nil, err
	}

	product.TenantID = existing.TenantID
	if product.ImageURLs == nil {
		product.ImageURLs = []string{}
	}
	product.UpdatedAt = s.now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		logger.Error("failed to update product", "product_id", product.ID, "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updatedProduct, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", "product_id", product.ID, "error", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	logger.Info("product updated successfully", "product_id", product.ID)

	return &updatedProduct, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id, tenantRef string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if domain.KindOf(err) == domain.KindUnknown {
			logger.Error("failed to find product", "product_id", id, "error", err)
		}
		return err
	}

	if err := s.guard.Authorize(ctx, existing.TenantID, tenantRef); err != nil {
		if errors.Is(err, domain.ErrTenantMismatch) {
			metrics.TenantScopeDenials.WithLabelValues(domain.CollectionProduct).Inc()
			logger.Warn("product delete denied", "product_id", id, "tenant_ref", tenantRef)
		}
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		logger.Error("failed to delete product", "product_id", id, "error", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info("product deleted successfully", "product_id", id)

	return nil
}
