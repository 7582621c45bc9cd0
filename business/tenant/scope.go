package tenant

import (
	"context"
	"errors"

	"oneMinuteShop/domain"
)

// Guard checks that a stored resource belongs to the tenant a caller
// refers to.
type Guard struct {
	resolver *Resolver
}

func NewGuard(resolver *Resolver) *Guard {
	return &Guard{resolver: resolver}
}

// Authorize allows the call when callerRef equals storedTenantID or
// resolves to the tenant with that id. Every other outcome, including an
// unknown callerRef, is domain.ErrTenantMismatch. Store failures are
// returned as is.
func (g *Guard) Authorize(ctx context.Context, storedTenantID, callerRef string) error {
	if storedTenantID == callerRef {
		return nil
	}

	tenant, err := g.resolver.Resolve(ctx, callerRef)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			return domain.ErrTenantMismatch
		}
		return err
	}

	if tenant.ID != storedTenantID {
		return domain.ErrTenantMismatch
	}

	return nil
}
