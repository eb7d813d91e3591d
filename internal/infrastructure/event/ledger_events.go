package event

import (
	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/partner"
)

// RegisterLedgerEvents registers every event the ledger publishes
func RegisterLedgerEvents(serializer *EventSerializer) {
	serializer.Register(finance.EventTypeAdvanceChargeCreated, &finance.AdvanceChargeCreatedEvent{})
	serializer.Register(finance.EventTypeAdvanceChargeUpdated, &finance.AdvanceChargeUpdatedEvent{})
	serializer.Register(finance.EventTypeAdvanceChargeAudited, &finance.AdvanceChargeReviewedEvent{})
	serializer.Register(finance.EventTypeAdvanceChargeUnaudited, &finance.AdvanceChargeReviewedEvent{})
	serializer.Register(finance.EventTypeAdvanceChargeDeleted, &finance.AdvanceChargeDeletedEvent{})
	serializer.Register(finance.EventTypeOpeningBalanceRecorded, &finance.OpeningBalanceRecordedEvent{})

	serializer.Register(partner.EventTypeMemberCreated, &partner.MemberCreatedEvent{})
	serializer.Register(partner.EventTypeMemberAdvancePaymentChanged, &partner.MemberAdvancePaymentChangedEvent{})
}
