package finance

import (
	"context"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// AccountItemService reads ledger lines for display
type AccountItemService struct {
	items finance.AccountItemRepository
}

// NewAccountItemService creates a new AccountItemService
func NewAccountItemService(items finance.AccountItemRepository) *AccountItemService {
	return &AccountItemService{items: items}
}

// GetDetailList returns the lines of a document with signed, rounded amounts.
// A nil header id means nothing is selected yet and yields an empty list.
func (s *AccountItemService) GetDetailList(ctx context.Context, tenantID, headerID uuid.UUID) ([]AccountItemView, error) {
	if headerID == uuid.Nil {
		return []AccountItemView{}, nil
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "account_item", "detail_list")
	defer span.End()

	lines, err := s.items.FindByHeaderID(ctx, tenantID, headerID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	views := make([]AccountItemView, 0, len(lines))
	for i := range lines {
		views = append(views, toAccountItemView(&lines[i]))
	}
	return views, nil
}
