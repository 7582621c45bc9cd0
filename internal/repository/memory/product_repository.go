package memory

import (
	"context"
	"fmt"
	"time"

	"oneMinuteShop/domain"

	"github.com/google/uuid"
)

type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product.ID = uuid.NewString()
	if product.ImageURLs == nil {
		product.ImageURLs = []string{}
	}
	r.store.products[product.ID] = entry[domain.Product]{seq: r.store.next(), value: cloneProduct(*product)}

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}
	if !validID(id) {
		return domain.Product{}, domain.ErrInvalidID
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}

	return cloneProduct(e.value), nil
}

func (r *ProductRepository) FindByTenant(ctx context.Context, tenantID string, onlyActive bool) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []entry[domain.Product]
	for _, e := range r.store.products {
		if e.value.TenantID != tenantID {
			continue
		}
		if onlyActive && !e.value.IsActive {
			continue
		}
		matched = append(matched, entry[domain.Product]{seq: e.seq, value: cloneProduct(e.value)})
	}

	return newestFirst(matched, func(p domain.Product) time.Time { return p.CreatedAt }), nil
}

// Update overwrites every mutable field. ID, TenantID and CreatedAt keep
// their stored values.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if !validID(product.ID) {
		return domain.ErrInvalidID
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.products[product.ID]
	if !ok {
		return domain.ErrProductNotFound
	}

	updated := e.value
	updated.Name = product.Name
	updated.Description = product.Description
	updated.Price = product.Price
	updated.Inventory = product.Inventory
	updated.ImageURLs = product.ImageURLs
	updated.IsActive = product.IsActive
	updated.UpdatedAt = product.UpdatedAt
	e.value = cloneProduct(updated)
	r.store.products[product.ID] = e

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if !validID(id) {
		return domain.ErrInvalidID
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.store.products, id)

	return nil
}
