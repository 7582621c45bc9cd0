package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oneMinuteShop/domain"
	"oneMinuteShop/pkg/logger"
)

type tenantService struct {
	tenantRepo TenantRepository
	now        func() time.Time
}

func NewTenantService(tenantRepo TenantRepository) *tenantService {
	return &tenantService{
		tenantRepo: tenantRepo,
		now:        Now,
	}
}

// Now is the clock shared by the resource services. Stores keep
// millisecond precision, so timestamps are truncated up front.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *tenantService) CreateTenant(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create tenant")
		return nil, fmt.Errorf("context error: %w", err)
	}

	_, err := s.tenantRepo.FindBySubdomain(ctx, tenant.Subdomain)
	switch {
	case err == nil:
		logger.Warn("subdomain already taken", "subdomain", tenant.Subdomain)
		return nil, domain.ErrSubdomainExists
	case !errors.Is(err, domain.ErrTenantNotFound):
		logger.Error("failed to check subdomain", "subdomain", tenant.Subdomain, "error", err)
		return nil, err
	}

	if tenant.PaymentDetails == nil {
		tenant.PaymentDetails = map[string]any{}
	}
	now := s.now()
	tenant.CreatedAt = now
	tenant.UpdatedAt = now

	// The unique index still rejects a concurrent create that slipped past
	// the lookup above.
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		if errors.Is(err, domain.ErrSubdomainExists) {
			return nil, err
		}
		logger.Error("failed to create new tenant", "error", err)
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	logger.Info("tenant created successfully", "tenant_id", tenant.ID, "subdomain", tenant.Subdomain)

	return tenant, nil
}

func (s *tenantService) GetTenantBySubdomain(ctx context.Context, subdomain string) (domain.Tenant, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get tenant by subdomain")
		return domain.Tenant{}, fmt.Errorf("context error: %w", err)
	}

	tenant, err := s.tenantRepo.FindBySubdomain(ctx, subdomain)
	if err != nil {
		if !errors.Is(err, domain.ErrTenantNotFound) {
			logger.Error("failed to find tenant", "subdomain", subdomain, "error", err)
		}
		return domain.Tenant{}, err
	}

	return tenant, nil
}
