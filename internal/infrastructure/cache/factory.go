package cache

import (
	"context"
	"fmt"
	"time"

	appfinance "github.com/erp/ledger/internal/application/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Factory builds the Redis-backed ledger caches, or in-memory equivalents
// when Redis is not configured or unreachable and fallback is allowed.
type Factory struct {
	client                *redis.Client
	logger                *zap.Logger
	allowInMemoryFallback bool
	closers               []func() error
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*Factory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to memory.
// Defaults to true.
func WithInMemoryFallback(allow bool) FactoryOption {
	return func(f *Factory) {
		f.allowInMemoryFallback = allow
	}
}

// WithClient uses an existing client instead of dialing one
func WithClient(client *redis.Client) FactoryOption {
	return func(f *Factory) {
		f.client = client
	}
}

// NewFactory connects to Redis when cfg.Host is set. An empty host selects
// the in-memory implementations without trying to connect.
func NewFactory(ctx context.Context, cfg config.RedisConfig, opts ...FactoryOption) (*Factory, error) {
	f := &Factory{
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client != nil || cfg.Host == "" {
		return f, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("redis required but unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory caches. "+
			"Receipt sequences and idempotency are then per instance.",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return f, nil
	}
	f.client = client
	f.closers = append(f.closers, client.Close)
	f.logger.Info("connected to Redis", zap.String("addr", cfg.Addr()))
	return f, nil
}

// UsesRedis reports whether the factory hands out Redis-backed implementations
func (f *Factory) UsesRedis() bool {
	return f.client != nil
}

// Client returns the Redis client, or nil in memory mode
func (f *Factory) Client() *redis.Client {
	return f.client
}

// IdempotencyStore returns the processed-event store
func (f *Factory) IdempotencyStore() shared.IdempotencyStore {
	if f.client != nil {
		return NewRedisIdempotencyStore(f.client, "")
	}
	store := NewInMemoryIdempotencyStore()
	f.closers = append(f.closers, store.Close)
	return store
}

// ReceiptNumbers returns the receipt number generator
func (f *Factory) ReceiptNumbers() appfinance.ReceiptNumberGenerator {
	if f.client != nil {
		return NewRedisReceiptNumberGenerator(f.client)
	}
	return NewInMemoryReceiptNumberGenerator()
}

// ReportCache returns the account flow cache
func (f *Factory) ReportCache() appfinance.ReportCache {
	if f.client != nil {
		return NewRedisReportCache(f.client)
	}
	c := NewInMemoryReportCache()
	f.closers = append(f.closers, c.Close)
	return c
}

// Close releases the client and stops in-memory sweepers
func (f *Factory) Close() error {
	var firstErr error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	f.closers = nil
	return firstErr
}
