package tenant

import (
	"context"
	"errors"
	"testing"

	"oneMinuteShop/domain"
	"oneMinuteShop/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func TestGuard_Authorize(t *testing.T) {
	repo := memory.NewTenantRepository(memory.NewStore())
	acme := seedTenant(t, repo, "acme")
	globex := seedTenant(t, repo, "globex")
	guard := NewGuard(NewResolver(repo, nil))

	tests := []struct {
		name      string
		callerRef string
		wantErr   error
	}{
		{"same id", acme.ID, nil},
		{"owner subdomain", "acme", nil},
		{"other tenant id", globex.ID, domain.ErrTenantMismatch},
		{"other tenant subdomain", "globex", domain.ErrTenantMismatch},
		{"unknown reference", "initech", domain.ErrTenantMismatch},
		{"empty reference", "", domain.ErrTenantMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.Authorize(context.Background(), acme.ID, tt.callerRef)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGuard_LiteralMatchSkipsLookup(t *testing.T) {
	guard := NewGuard(NewResolver(failingRepo{err: errors.New("down")}, nil))

	assert.NoError(t, guard.Authorize(context.Background(), "legacy-owner", "legacy-owner"))
}

func TestGuard_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("down")
	guard := NewGuard(NewResolver(failingRepo{err: boom}, nil))

	err := guard.Authorize(context.Background(), "owner", "acme")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrTenantMismatch)
}
