package telemetry

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope for ledger metrics
const MeterName = "github.com/erp/ledger/ledger"

// LedgerMetrics holds the business instruments of the ledger. It reads the
// global meter provider, so it records nothing until metrics are enabled.
type LedgerMetrics struct {
	documents    metric.Int64Counter
	transitions  metric.Int64Counter
	balanceDelta metric.Float64Histogram
	reportTime   metric.Float64Histogram
	cacheLookups metric.Int64Counter
}

// NewLedgerMetrics creates the ledger instruments on the global meter provider
func NewLedgerMetrics() (*LedgerMetrics, error) {
	return NewLedgerMetricsWithMeter(otel.Meter(MeterName))
}

// NewLedgerMetricsWithMeter creates the ledger instruments on meter
func NewLedgerMetricsWithMeter(meter metric.Meter) (*LedgerMetrics, error) {
	m := &LedgerMetrics{}
	var err error

	if m.documents, err = meter.Int64Counter("ledger.documents.written",
		metric.WithDescription("Financial documents created, updated or deleted"),
		metric.WithUnit("{document}")); err != nil {
		return nil, err
	}
	if m.transitions, err = meter.Int64Counter("ledger.review.transitions",
		metric.WithDescription("Review status transitions by outcome"),
		metric.WithUnit("{transition}")); err != nil {
		return nil, err
	}
	if m.balanceDelta, err = meter.Float64Histogram("ledger.member.balance_delta",
		metric.WithDescription("Absolute member advance-payment change per review transition"),
		metric.WithUnit("{currency}")); err != nil {
		return nil, err
	}
	if m.reportTime, err = meter.Float64Histogram("ledger.account_flow.duration",
		metric.WithDescription("Account flow computation time"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(5, 10, 25, 50, 100, 250, 500, 1000, 2500)); err != nil {
		return nil, err
	}
	if m.cacheLookups, err = meter.Int64Counter("ledger.account_flow.cache_lookups",
		metric.WithDescription("Account flow cache lookups by result")); err != nil {
		return nil, err
	}
	return m, nil
}

// DocumentWritten counts a document write (create, update, delete)
func (m *LedgerMetrics) DocumentWritten(ctx context.Context, docType, action string) {
	if m == nil {
		return
	}
	m.documents.Add(ctx, 1, metric.WithAttributes(
		attribute.String("document_type", docType),
		attribute.String("action", action),
	))
}

// Transition counts one per-id review outcome and the balance it moved
func (m *LedgerMetrics) Transition(ctx context.Context, target string, ok bool, delta decimal.Decimal) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("target_status", target),
		attribute.Bool("success", ok),
	)
	m.transitions.Add(ctx, 1, attrs)
	if ok && !delta.IsZero() {
		m.balanceDelta.Record(ctx, delta.Abs().InexactFloat64(), attrs)
	}
}

// ReportComputed records how long an account flow took to build
func (m *LedgerMetrics) ReportComputed(ctx context.Context, d time.Duration) {
	if m == nil {
		return
	}
	m.reportTime.Record(ctx, float64(d.Microseconds())/1000.0)
}

// CacheLookup counts an account flow cache hit or miss
func (m *LedgerMetrics) CacheLookup(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
