package tenant

import (
	"context"
	"errors"
	"fmt"

	"oneMinuteShop/domain"
	"oneMinuteShop/pkg/logger"
	"oneMinuteShop/pkg/metrics"
)

// TenantRepository contract interface
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	// FindByID returns domain.ErrInvalidID when id is not shaped like a
	// canonical id for the backend, domain.ErrTenantNotFound on a miss.
	FindByID(ctx context.Context, id string) (domain.Tenant, error)
	FindBySubdomain(ctx context.Context, subdomain string) (domain.Tenant, error)
}

// TenantCache memoizes successful resolutions. Implementations report a
// miss with ok == false and a nil error.
type TenantCache interface {
	Get(ctx context.Context, ref string) (tenant domain.Tenant, ok bool, err error)
	Set(ctx context.Context, ref string, tenant domain.Tenant) error
}

// Resolver maps a caller supplied reference, either a canonical id or a
// subdomain, to a tenant.
type Resolver struct {
	tenantRepo TenantRepository
	cache      TenantCache
}

func NewResolver(tenantRepo TenantRepository, cache TenantCache) *Resolver {
	return &Resolver{
		tenantRepo: tenantRepo,
		cache:      cache,
	}
}

// Resolve tries an id lookup first and falls back to a subdomain lookup.
// It returns domain.ErrTenantNotFound when neither matches; any other
// error comes from the store.
func (r *Resolver) Resolve(ctx context.Context, ref string) (domain.Tenant, error) {
	if ref == "" {
		metrics.TenantResolutions.WithLabelValues(metrics.ResolveMiss).Inc()
		return domain.Tenant{}, domain.ErrTenantNotFound
	}

	if r.cache != nil {
		tenant, ok, err := r.cache.Get(ctx, ref)
		if err != nil {
			logger.Warn("tenant cache lookup failed", "ref", ref, "error", err)
		} else if ok {
			metrics.TenantResolutions.WithLabelValues(metrics.ResolvedFromCache).Inc()
			return tenant, nil
		}
	}

	tenant, outcome, err := r.lookup(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			metrics.TenantResolutions.WithLabelValues(metrics.ResolveMiss).Inc()
		}
		return domain.Tenant{}, err
	}
	metrics.TenantResolutions.WithLabelValues(outcome).Inc()

	if r.cache != nil {
		if err := r.cache.Set(ctx, ref, tenant); err != nil {
			logger.Warn("tenant cache store failed", "ref", ref, "error", err)
		}
	}

	return tenant, nil
}

func (r *Resolver) lookup(ctx context.Context, ref string) (domain.Tenant, string, error) {
	tenant, err := r.tenantRepo.FindByID(ctx, ref)
	switch {
	case err == nil:
		return tenant, metrics.ResolvedByID, nil
	case errors.Is(err, domain.ErrInvalidID), errors.Is(err, domain.ErrTenantNotFound):
	default:
		return domain.Tenant{}, "", fmt.Errorf("failed to resolve tenant by id: %w", err)
	}

	tenant, err = r.tenantRepo.FindBySubdomain(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			return domain.Tenant{}, "", domain.ErrTenantNotFound
		}
		return domain.Tenant{}, "", fmt.Errorf("failed to resolve tenant by subdomain: %w", err)
	}

	return tenant, metrics.ResolvedBySubdomain, nil
}
