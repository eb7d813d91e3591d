package finance

import (
	"context"
	"errors"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func asDomainError(err error) *shared.DomainError {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de
	}
	return nil
}

// dedupeIDs drops repeated ids while keeping first-seen order
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func validateBatch(ids []uuid.UUID, max int) error {
	if len(ids) == 0 {
		return shared.NewValidationError("At least one id is required",
			shared.FieldError{Field: "ids", Message: "is required"})
	}
	if max > 0 && len(ids) > max {
		return shared.NewValidationError("Too many ids in one request",
			shared.FieldError{Field: "ids", Message: "exceeds the batch limit"})
	}
	return nil
}

// publishAfterCommit hands committed events to the publisher. Failures are
// logged only; the write they describe has already been committed.
func publishAfterCommit(ctx context.Context, publisher shared.EventPublisher, events []shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.L(ctx).Warn("failed to publish ledger events",
			zap.Int("count", len(events)),
			zap.Error(err),
		)
	}
}
