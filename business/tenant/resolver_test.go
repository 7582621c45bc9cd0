package tenant

import (
	"context"
	"errors"
	"testing"

	"oneMinuteShop/domain"
	"oneMinuteShop/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTenant(t *testing.T, repo TenantRepository, subdomain string) domain.Tenant {
	t.Helper()
	tenant := &domain.Tenant{Subdomain: subdomain, Name: subdomain, PaymentDetails: map[string]any{}}
	require.NoError(t, repo.Create(context.Background(), tenant))
	return *tenant
}

type failingRepo struct {
	TenantRepository
	err error
}

func (f failingRepo) FindByID(context.Context, string) (domain.Tenant, error) {
	return domain.Tenant{}, f.err
}

func (f failingRepo) FindBySubdomain(context.Context, string) (domain.Tenant, error) {
	return domain.Tenant{}, f.err
}

type mapCache struct {
	entries map[string]domain.Tenant
	getErr  error
	sets    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]domain.Tenant{}}
}

func (c *mapCache) Get(_ context.Context, ref string) (domain.Tenant, bool, error) {
	if c.getErr != nil {
		return domain.Tenant{}, false, c.getErr
	}
	t, ok := c.entries[ref]
	return t, ok, nil
}

func (c *mapCache) Set(_ context.Context, ref string, t domain.Tenant) error {
	c.sets++
	c.entries[ref] = t
	return nil
}

func TestResolve_ByIDAndSubdomain(t *testing.T) {
	repo := memory.NewTenantRepository(memory.NewStore())
	acme := seedTenant(t, repo, "acme")
	seedTenant(t, repo, "globex")
	resolver := NewResolver(repo, nil)
	ctx := context.Background()

	byID, err := resolver.Resolve(ctx, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, acme, byID)

	bySubdomain, err := resolver.Resolve(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, acme, bySubdomain)
}

func TestResolve_NotFound(t *testing.T) {
	repo := memory.NewTenantRepository(memory.NewStore())
	seedTenant(t, repo, "acme")
	resolver := NewResolver(repo, nil)

	for _, ref := range []string{"", "nope", "0b7c2f4e-9a55-4e8b-8f2a-3c1d5e6f7a8b"} {
		_, err := resolver.Resolve(context.Background(), ref)
		assert.ErrorIs(t, err, domain.ErrTenantNotFound, ref)
	}
}

func TestResolve_IDShapedSubdomainFallsBack(t *testing.T) {
	repo := memory.NewTenantRepository(memory.NewStore())
	idShaped := "0b7c2f4e-9a55-4e8b-8f2a-3c1d5e6f7a8b"
	tenant := seedTenant(t, repo, idShaped)
	resolver := NewResolver(repo, nil)

	got, err := resolver.Resolve(context.Background(), idShaped)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, got.ID)
}

func TestResolve_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	resolver := NewResolver(failingRepo{err: boom}, nil)

	_, err := resolver.Resolve(context.Background(), "acme")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrTenantNotFound)
}

func TestResolve_UsesCache(t *testing.T) {
	repo := memory.NewTenantRepository(memory.NewStore())
	acme := seedTenant(t, repo, "acme")
	cache := newMapCache()
	ctx := context.Background()

	_, err := NewResolver(repo, cache).Resolve(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// a failing store proves the second lookup is served from the cache
	cached, err := NewResolver(failingRepo{err: errors.New("down")}, cache).Resolve(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, acme, cached)
}

func TestResolve_CacheErrorIgnored(t *testing.T) {
	repo := memory.NewTenantRepository(memory.NewStore())
	acme := seedTenant(t, repo, "acme")
	cache := newMapCache()
	cache.getErr = errors.New("redis unavailable")

	got, err := NewResolver(repo, cache).Resolve(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, acme.ID, got.ID)
}

func TestResolve_MissNotCached(t *testing.T) {
	repo := memory.NewTenantRepository(memory.NewStore())
	cache := newMapCache()
	resolver := NewResolver(repo, cache)

	_, err := resolver.Resolve(context.Background(), "later")
	require.ErrorIs(t, err, domain.ErrTenantNotFound)
	assert.Zero(t, cache.sets)

	seedTenant(t, repo, "later")
	_, err = resolver.Resolve(context.Background(), "later")
	assert.NoError(t, err)
}
