package memory

import (
	"context"
	"fmt"

	"oneMinuteShop/domain"

	"github.com/google/uuid"
)

type TenantRepository struct {
	store *Store
}

func NewTenantRepository(store *Store) *TenantRepository {
	return &TenantRepository{store: store}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, e := range r.store.tenants {
		if e.value.Subdomain == tenant.Subdomain {
			return domain.ErrSubdomainExists
		}
	}

	tenant.ID = uuid.NewString()
	r.store.tenants[tenant.ID] = entry[domain.Tenant]{seq: r.store.next(), value: cloneTenant(*tenant)}

	return nil
}

func (r *TenantRepository) FindByID(ctx context.Context, id string) (domain.Tenant, error) {
	if err := ctx.Err(); err != nil {
		return domain.Tenant{}, fmt.Errorf("context error: %w", err)
	}
	if !validID(id) {
		return domain.Tenant{}, domain.ErrInvalidID
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.tenants[id]
	if !ok {
		return domain.Tenant{}, domain.ErrTenantNotFound
	}

	return cloneTenant(e.value), nil
}

func (r *TenantRepository) FindBySubdomain(ctx context.Context, subdomain string) (domain.Tenant, error) {
	if err := ctx.Err(); err != nil {
		return domain.Tenant{}, fmt.Errorf("context error: %w", err)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.tenants {
		if e.value.Subdomain == subdomain {
			return cloneTenant(e.value), nil
		}
	}

	return domain.Tenant{}, domain.ErrTenantNotFound
}
