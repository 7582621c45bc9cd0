package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oneMinuteShop/business/tenant"
	"oneMinuteShop/domain"
	"oneMinuteShop/pkg/logger"
)

type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (domain.Order, error)
	FindByTenant(ctx context.Context, tenantID string) ([]domain.Order, error)
	Patch(ctx context.Context, id string, patch domain.OrderPatch, updatedAt time.Time) error
}

type OrdersService struct {
	orderRepo OrdersRepository
	resolver  *tenant.Resolver
	now       func() time.Time
}

func NewOrdersService(orderRepo OrdersRepository, resolver *tenant.Resolver) *OrdersService {
	return &OrdersService{
		orderRepo: orderRepo,
		resolver:  resolver,
		now:       tenant.Now,
	}
}

func (s *OrdersService) resolveTenant(ctx context.Context, ref string) (domain.Tenant, error) {
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

// CreateOrder stores a checkout. Inventory is not decremented.
func (s *OrdersService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	owner, err := s.resolveTenant(ctx, order.TenantID)
	if err != nil {
		return nil, err
	}

	order.TenantID = owner.ID
	if order.Status == "" {
		order.Status = domain.OrderStatusPendingPayment
	}
	if order.ShippingAddress == nil {
		order.ShippingAddress = map[string]any{}
	}
	now := s.now()
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := s.orderRepo.Create(ctx, order); err != nil {
		logger.Error("failed to create order", "error", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	logger.Info("order created", "order_id", order.ID, "tenant_id", order.TenantID)

	return order, nil
}

func (s *OrdersService) ListOrders(ctx context.Context, tenantRef string) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	owner, err := s.resolveTenant(ctx, tenantRef)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByTenant(ctx, owner.ID)
	if err != nil {
		logger.Error("failed to find orders", "tenant_id", owner.ID, "error", err)
		return nil, err
	}

	return orders, nil
}

// UpdateOrder applies the non-nil fields of patch. An empty patch returns
// the stored order untouched. Any caller holding the order id may update
// it; no tenant check is made here.
func (s *OrdersService) UpdateOrder(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	existing, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if domain.KindOf(err) == domain.KindUnknown {
			logger.Error("failed to find order", "order_id", id, "error", err)
		}
		return nil, err
	}

	if patch.IsEmpty() {
		return &existing, nil
	}

	if err := s.orderRepo.Patch(ctx, id, patch, s.now()); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		logger.Error("failed to update order", "order_id", id, "error", err)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	updated, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to fetch updated order", "order_id", id, "error", err)
		return nil, fmt.Errorf("failed to fetch updated order: %w", err)
	}

	logger.Info("order updated", "order_id", id)

	return &updated, nil
}
