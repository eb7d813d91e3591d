package finance

import (
	"context"
	"fmt"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ReportCacheInvalidator drops a tenant's cached account flows whenever a
// ledger event changes what they would show.
type ReportCacheInvalidator struct {
	cache ReportCache
}

// NewReportCacheInvalidator creates a new ReportCacheInvalidator
func NewReportCacheInvalidator(cache ReportCache) *ReportCacheInvalidator {
	return &ReportCacheInvalidator{cache: cache}
}

// EventTypes implements shared.EventHandler
func (h *ReportCacheInvalidator) EventTypes() []string {
	return finance.LedgerEventTypes()
}

// Handle implements shared.EventHandler
func (h *ReportCacheInvalidator) Handle(ctx context.Context, event shared.DomainEvent) error {
	if err := h.cache.InvalidateTenant(ctx, event.TenantID()); err != nil {
		return fmt.Errorf("failed to invalidate account flow cache: %w", err)
	}
	logger.L(ctx).Debug("account flow cache invalidated",
		zap.String("tenant_id", event.TenantID().String()),
		zap.String("event_type", event.EventType()),
	)
	return nil
}
