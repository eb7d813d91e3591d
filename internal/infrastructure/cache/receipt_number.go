package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	receiptSequencePrefix = "ledger:seq:"
	receiptDateLayout     = "20060102"
	// sequences outlive their day so late writers near midnight still see the counter
	receiptSequenceTTL = 48 * time.Hour
)

// FormatReceiptNumber renders prefix + yyyyMMdd + a zero-padded daily sequence,
// e.g. YSK202401150001. Sequences past 9999 keep growing in width.
func FormatReceiptNumber(prefix string, at time.Time, seq int64) string {
	return fmt.Sprintf("%s%s%04d", prefix, at.Format(receiptDateLayout), seq)
}

func receiptSequenceKey(tenantID uuid.UUID, prefix string, at time.Time) string {
	return receiptSequencePrefix + tenantID.String() + ":" + prefix + ":" + at.Format(receiptDateLayout)
}

// RedisReceiptNumberGenerator draws daily sequences from Redis INCR
type RedisReceiptNumberGenerator struct {
	client redis.UniversalClient
}

// NewRedisReceiptNumberGenerator creates a generator on an existing client
func NewRedisReceiptNumberGenerator(client redis.UniversalClient) *RedisReceiptNumberGenerator {
	return &RedisReceiptNumberGenerator{client: client}
}

// Next returns the next number for tenant, prefix and the day of at
func (g *RedisReceiptNumberGenerator) Next(ctx context.Context, tenantID uuid.UUID, prefix string, at time.Time) (string, error) {
	key := receiptSequenceKey(tenantID, prefix, at)

	pipe := g.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, receiptSequenceTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to draw receipt sequence: %w", err)
	}
	return FormatReceiptNumber(prefix, at, incr.Val()), nil
}

// InMemoryReceiptNumberGenerator keeps daily sequences in process memory.
// Numbers are unique per process only; the database unique index is the backstop.
type InMemoryReceiptNumberGenerator struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewInMemoryReceiptNumberGenerator creates an in-memory generator
func NewInMemoryReceiptNumberGenerator() *InMemoryReceiptNumberGenerator {
	return &InMemoryReceiptNumberGenerator{counters: make(map[string]int64)}
}

// Next returns the next number for tenant, prefix and the day of at
func (g *InMemoryReceiptNumberGenerator) Next(_ context.Context, tenantID uuid.UUID, prefix string, at time.Time) (string, error) {
	key := receiptSequenceKey(tenantID, prefix, at)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.counters[key]++
	return FormatReceiptNumber(prefix, at, g.counters[key]), nil
}
