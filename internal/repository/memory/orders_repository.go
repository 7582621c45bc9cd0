package memory

import (
	"context"
	"fmt"
	"time"

	"oneMinuteShop/domain"

	"github.com/google/uuid"
)

type OrdersRepository struct {
	store *Store
}

func NewOrdersRepository(store *Store) *OrdersRepository {
	return &OrdersRepository{store: store}
}

func (r *OrdersRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	order.ID = uuid.NewString()
	r.store.orders[order.ID] = entry[domain.Order]{seq: r.store.next(), value: cloneOrder(*order)}

	return nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, id string) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}
	if !validID(id) {
		return domain.Order{}, domain.ErrInvalidID
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	return cloneOrder(e.value), nil
}

func (r *OrdersRepository) FindByTenant(ctx context.Context, tenantID string) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []entry[domain.Order]
	for _, e := range r.store.orders {
		if e.value.TenantID == tenantID {
			matched = append(matched, entry[domain.Order]{seq: e.seq, value: cloneOrder(e.value)})
		}
	}

	return newestFirst(matched, func(o domain.Order) time.Time { return o.CreatedAt }), nil
}

func (r *OrdersRepository) Patch(ctx context.Context, id string, patch domain.OrderPatch, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if !validID(id) {
		return domain.ErrInvalidID
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}

	patch.Apply(&e.value)
	e.value.UpdatedAt = updatedAt
	r.store.orders[id] = e

	return nil
}
