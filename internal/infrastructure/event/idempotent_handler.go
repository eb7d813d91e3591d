package event

import (
	"context"
	"sync/atomic"

	"github.com/erp/ledger/internal/domain/shared"
	"go.uber.org/zap"
)

// IdempotencyMetrics counts what the idempotent wrapper did with each delivery
type IdempotencyMetrics struct {
	Processed atomic.Int64
	Duplicate atomic.Int64
	Failed    atomic.Int64
}

// IdempotencyStats is a snapshot of IdempotencyMetrics
type IdempotencyStats struct {
	Processed int64 `json:"processed"`
	Duplicate int64 `json:"duplicate"`
	Failed    int64 `json:"failed"`
}

// Stats returns a snapshot of the counters
func (m *IdempotencyMetrics) Stats() IdempotencyStats {
	return IdempotencyStats{
		Processed: m.Processed.Load(),
		Duplicate: m.Duplicate.Load(),
		Failed:    m.Failed.Load(),
	}
}

// IdempotentHandler runs the wrapped handler at most once per event ID
// within the configured TTL.
type IdempotentHandler struct {
	handler shared.EventHandler
	store   shared.IdempotencyStore
	config  shared.IdempotencyConfig
	logger  *zap.Logger
	metrics *IdempotencyMetrics
}

// IdempotentHandlerOption configures an IdempotentHandler
type IdempotentHandlerOption func(*IdempotentHandler)

// WithIdempotencyConfig overrides the default TTL and enabled flag
func WithIdempotencyConfig(config shared.IdempotencyConfig) IdempotentHandlerOption {
	return func(h *IdempotentHandler) {
		h.config = config
	}
}

// WithIdempotencyMetrics shares a metrics collector between handlers
func WithIdempotencyMetrics(metrics *IdempotencyMetrics) IdempotentHandlerOption {
	return func(h *IdempotentHandler) {
		if metrics != nil {
			h.metrics = metrics
		}
	}
}

// NewIdempotentHandler wraps handler with duplicate detection backed by store
func NewIdempotentHandler(handler shared.EventHandler, store shared.IdempotencyStore, logger *zap.Logger, opts ...IdempotentHandlerOption) *IdempotentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &IdempotentHandler{
		handler: handler,
		store:   store,
		config:  shared.DefaultIdempotencyConfig(),
		logger:  logger,
		metrics: &IdempotencyMetrics{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// EventTypes delegates to the wrapped handler
func (h *IdempotentHandler) EventTypes() []string {
	return h.handler.EventTypes()
}

// Handle marks the event as processed and runs the wrapped handler when the mark is new.
// A store failure does not block processing.
func (h *IdempotentHandler) Handle(ctx context.Context, ev shared.DomainEvent) error {
	if !h.config.Enabled || h.store == nil {
		return h.run(ctx, ev)
	}

	eventID := ev.EventID().String()
	isNew, err := h.store.MarkProcessed(ctx, eventID, h.config.TTL)
	switch {
	case err != nil:
		h.logger.Warn("idempotency check failed, processing anyway",
			zap.String("event_id", eventID),
			zap.String("event_type", ev.EventType()),
			zap.Error(err),
		)
	case !isNew:
		h.metrics.Duplicate.Add(1)
		h.logger.Debug("duplicate event skipped",
			zap.String("event_id", eventID),
			zap.String("event_type", ev.EventType()),
		)
		return nil
	}

	return h.run(ctx, ev)
}

// Metrics returns the collector used by this handler
func (h *IdempotentHandler) Metrics() *IdempotencyMetrics {
	return h.metrics
}

func (h *IdempotentHandler) run(ctx context.Context, ev shared.DomainEvent) error {
	// The mark stays on failure; a redelivery is accepted only after the TTL.
	if err := h.handler.Handle(ctx, ev); err != nil {
		h.metrics.Failed.Add(1)
		return err
	}
	h.metrics.Processed.Add(1)
	return nil
}

var _ shared.EventHandler = (*IdempotentHandler)(nil)
