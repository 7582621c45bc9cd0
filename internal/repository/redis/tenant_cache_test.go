package redis

import (
	"context"
	"testing"
	"time"

	"oneMinuteShop/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*TenantCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewTenantCache(client, ttl), mr
}

func TestTenantCache_SetGet(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	desc := "fresh produce"
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tenant := domain.Tenant{
		ID:             "6650f1a2b3c4d5e6f7a8b9c0",
		Subdomain:      "acme",
		Name:           "Acme",
		Description:    &desc,
		PaymentDetails: map[string]any{"bank": "BCA"},
		CreatedAt:      created,
		UpdatedAt:      created,
	}

	require.NoError(t, cache.Set(ctx, "acme", tenant))
	assert.True(t, mr.Exists("tenant:ref:acme"))

	got, ok, err := cache.Get(ctx, "acme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tenant.ID, got.ID)
	assert.Equal(t, "acme", got.Subdomain)
	assert.Equal(t, desc, *got.Description)
	assert.Equal(t, "BCA", got.PaymentDetails["bank"])
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestTenantCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	_, ok, err := cache.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTenantCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "acme", domain.Tenant{ID: "1", Subdomain: "acme"}))
	mr.FastForward(31 * time.Second)

	_, ok, err := cache.Get(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTenantCache_CorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("tenant:ref:acme", "not-json"))

	_, ok, err := cache.Get(context.Background(), "acme")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestTenantCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, _, err := cache.Get(context.Background(), "acme")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), "acme", domain.Tenant{}))
}
