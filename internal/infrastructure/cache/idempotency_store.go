package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

const defaultIdempotencyPrefix = "ledger:event:idempotency:"

// RedisIdempotencyStore records processed event IDs in Redis so every
// instance of the service skips events another one already handled.
type RedisIdempotencyStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisIdempotencyStore creates a store on an existing client
func NewRedisIdempotencyStore(client redis.UniversalClient, keyPrefix string) *RedisIdempotencyStore {
	if keyPrefix == "" {
		keyPrefix = defaultIdempotencyPrefix
	}
	return &RedisIdempotencyStore{client: client, keyPrefix: keyPrefix}
}

// MarkProcessed sets the key with SET NX and a TTL; false means it was already there
func (s *RedisIdempotencyStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.keyPrefix+eventID, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark event as processed: %w", err)
	}
	return ok, nil
}

// IsProcessed reports whether the event ID is recorded
func (s *RedisIdempotencyStore) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.keyPrefix+eventID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check if event is processed: %w", err)
	}
	return n > 0, nil
}

// Close is a no-op; the client is owned by the Factory
func (s *RedisIdempotencyStore) Close() error {
	return nil
}

// InMemoryIdempotencyStore keeps processed event IDs in process memory.
// State is not shared between instances.
type InMemoryIdempotencyStore struct {
	m *expiringMap
}

// NewInMemoryIdempotencyStore creates a store that sweeps expired IDs every five minutes
func NewInMemoryIdempotencyStore() *InMemoryIdempotencyStore {
	return &InMemoryIdempotencyStore{m: newExpiringMap(5 * time.Minute)}
}

// MarkProcessed records eventID unless it is already recorded and unexpired
func (s *InMemoryIdempotencyStore) MarkProcessed(_ context.Context, eventID string, ttl time.Duration) (bool, error) {
	return s.m.setIfAbsent(eventID, nil, ttl), nil
}

// IsProcessed reports whether eventID is recorded and unexpired
func (s *InMemoryIdempotencyStore) IsProcessed(_ context.Context, eventID string) (bool, error) {
	_, ok := s.m.get(eventID)
	return ok, nil
}

// Close stops the sweeper; safe to call more than once
func (s *InMemoryIdempotencyStore) Close() error {
	s.m.close()
	return nil
}

// Size returns the number of stored IDs, expired ones included until swept
func (s *InMemoryIdempotencyStore) Size() int {
	return s.m.size()
}

var (
	_ shared.IdempotencyStore = (*RedisIdempotencyStore)(nil)
	_ shared.IdempotencyStore = (*InMemoryIdempotencyStore)(nil)
)
