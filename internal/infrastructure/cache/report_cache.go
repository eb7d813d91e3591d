package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	appfinance "github.com/erp/ledger/internal/application/finance"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// tenantPrefix starts every report key of a tenant: ledger:flow:{tenant}:{gen}:{hash}
func tenantPrefix(tenantID uuid.UUID) string {
	return appfinance.AccountFlowCachePrefix + tenantID.String() + ":"
}

// generationKey holds the tenant's invalidation counter. It sits outside
// tenantPrefix so invalidation scans never delete it.
func generationKey(tenantID uuid.UUID) string {
	return appfinance.AccountFlowCachePrefix + "gen:" + tenantID.String()
}

// RedisReportCache stores serialized reports in Redis
type RedisReportCache struct {
	client    redis.UniversalClient
	scanBatch int64
}

// NewRedisReportCache creates a report cache on an existing client
func NewRedisReportCache(client redis.UniversalClient) *RedisReportCache {
	return &RedisReportCache{client: client, scanBatch: 200}
}

// Get returns the cached value; a missing key is (nil, false, nil)
func (c *RedisReportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read report cache: %w", err)
	}
	return raw, true, nil
}

// Set stores value for ttl
func (c *RedisReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write report cache: %w", err)
	}
	return nil
}

// Generation returns the tenant's invalidation counter; an unset counter is 0
func (c *RedisReportCache) Generation(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(tenantID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read report cache generation: %w", err)
	}
	return gen, nil
}

// InvalidateTenant advances the tenant's generation, then deletes every cached
// report of the tenant. It walks the keyspace with SCAN so a large cache never blocks Redis.
func (c *RedisReportCache) InvalidateTenant(ctx context.Context, tenantID uuid.UUID) error {
	if err := c.client.Incr(ctx, generationKey(tenantID)).Err(); err != nil {
		return fmt.Errorf("failed to advance report cache generation: %w", err)
	}
	iter := c.client.Scan(ctx, 0, tenantPrefix(tenantID)+"*", c.scanBatch).Iterator()
	batch := make([]string, 0, c.scanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if int64(len(batch)) >= c.scanBatch {
			if err := c.client.Unlink(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("failed to invalidate report cache: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan report cache: %w", err)
	}
	if len(batch) > 0 {
		if err := c.client.Unlink(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to invalidate report cache: %w", err)
		}
	}
	return nil
}

// InMemoryReportCache keeps reports in process memory
type InMemoryReportCache struct {
	m *expiringMap

	mu   sync.Mutex
	gens map[uuid.UUID]int64
}

// NewInMemoryReportCache creates an in-memory report cache
func NewInMemoryReportCache() *InMemoryReportCache {
	return &InMemoryReportCache{m: newExpiringMap(time.Minute), gens: make(map[uuid.UUID]int64)}
}

// Get returns the cached value if present and unexpired
func (c *InMemoryReportCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.m.get(key)
	return v, ok, nil
}

// Set stores value for ttl
func (c *InMemoryReportCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.m.set(key, value, ttl)
	return nil
}

// Generation returns the tenant's invalidation counter
func (c *InMemoryReportCache) Generation(_ context.Context, tenantID uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[tenantID], nil
}

// InvalidateTenant advances the tenant's generation and drops its cached reports
func (c *InMemoryReportCache) InvalidateTenant(_ context.Context, tenantID uuid.UUID) error {
	c.mu.Lock()
	c.gens[tenantID]++
	c.mu.Unlock()
	c.m.deletePrefix(tenantPrefix(tenantID))
	return nil
}

// Close stops the sweeper
func (c *InMemoryReportCache) Close() error {
	c.m.close()
	return nil
}
