package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"oneMinuteShop/domain"

	"github.com/redis/go-redis/v9"
)

// TenantCache keeps resolved tenants keyed by the reference they were
// resolved from, so an id and a subdomain get separate entries.
type TenantCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTenantCache(client *redis.Client, ttl time.Duration) *TenantCache {
	return &TenantCache{
		client: client,
		ttl:    ttl,
	}
}

func tenantKey(ref string) string {
	// key format: "tenant:ref:{ref}"
	return fmt.Sprintf("tenant:ref:%s", ref)
}

// Get reports false without an error when the reference is not cached.
func (c *TenantCache) Get(ctx context.Context, ref string) (domain.Tenant, bool, error) {
	val, err := c.client.Get(ctx, tenantKey(ref)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Tenant{}, false, nil
		}
		return domain.Tenant{}, false, fmt.Errorf("failed to get tenant from Redis: %w", err)
	}

	var tenant domain.Tenant
	if err := json.Unmarshal(val, &tenant); err != nil {
		return domain.Tenant{}, false, fmt.Errorf("failed to unmarshal tenant: %w", err)
	}

	return tenant, true, nil
}

func (c *TenantCache) Set(ctx context.Context, ref string, tenant domain.Tenant) error {
	jsonData, err := json.Marshal(tenant)
	if err != nil {
		return fmt.Errorf("failed to marshal tenant: %w", err)
	}

	if err := c.client.Set(ctx, tenantKey(ref), jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store tenant in Redis: %w", err)
	}

	return nil
}
