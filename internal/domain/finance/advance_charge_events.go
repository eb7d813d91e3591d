package finance

import (
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type names
const (
	AggregateTypeAdvanceCharge  = "AdvanceCharge"
	AggregateTypeOpeningBalance = "OpeningBalance"
)

// Event type names
const (
	EventTypeAdvanceChargeCreated   = "AdvanceChargeCreated"
	EventTypeAdvanceChargeUpdated   = "AdvanceChargeUpdated"
	EventTypeAdvanceChargeAudited   = "AdvanceChargeAudited"
	EventTypeAdvanceChargeUnaudited = "AdvanceChargeUnaudited"
	EventTypeAdvanceChargeDeleted   = "AdvanceChargeDeleted"
	EventTypeOpeningBalanceRecorded = "OpeningBalanceRecorded"
)

// LedgerEventTypes lists every event that changes what the account flow shows
func LedgerEventTypes() []string {
	return []string{
		EventTypeAdvanceChargeAudited,
		EventTypeAdvanceChargeUnaudited,
		EventTypeAdvanceChargeDeleted,
		EventTypeOpeningBalanceRecorded,
	}
}

// AdvanceChargeCreatedEvent is raised when a new advance charge is created
type AdvanceChargeCreatedEvent struct {
	shared.BaseDomainEvent
	ReceiptNumber   string          `json:"receipt_number"`
	MemberID        uuid.UUID       `json:"member_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CollectedAmount decimal.Decimal `json:"collected_amount"`
	ReceiptDate     time.Time       `json:"receipt_date"`
}

// NewAdvanceChargeCreatedEvent creates a new AdvanceChargeCreatedEvent
func NewAdvanceChargeCreatedEvent(ac *AdvanceCharge) *AdvanceChargeCreatedEvent {
	return &AdvanceChargeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAdvanceChargeCreated, AggregateTypeAdvanceCharge, ac.ID, ac.TenantID),
		ReceiptNumber:   ac.ReceiptNumber,
		MemberID:        ac.MemberID,
		TotalAmount:     ac.TotalAmount,
		CollectedAmount: ac.CollectedAmount,
		ReceiptDate:     ac.ReceiptDate,
	}
}

// AdvanceChargeUpdatedEvent is raised when an unaudited advance charge is revised
type AdvanceChargeUpdatedEvent struct {
	shared.BaseDomainEvent
	ReceiptNumber   string          `json:"receipt_number"`
	MemberID        uuid.UUID       `json:"member_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CollectedAmount decimal.Decimal `json:"collected_amount"`
}

// NewAdvanceChargeUpdatedEvent creates a new AdvanceChargeUpdatedEvent
func NewAdvanceChargeUpdatedEvent(ac *AdvanceCharge) *AdvanceChargeUpdatedEvent {
	return &AdvanceChargeUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAdvanceChargeUpdated, AggregateTypeAdvanceCharge, ac.ID, ac.TenantID),
		ReceiptNumber:   ac.ReceiptNumber,
		MemberID:        ac.MemberID,
		TotalAmount:     ac.TotalAmount,
		CollectedAmount: ac.CollectedAmount,
	}
}

// AdvanceChargeReviewedEvent carries the data of an audit or un-audit
type AdvanceChargeReviewedEvent struct {
	shared.BaseDomainEvent
	ReceiptNumber string          `json:"receipt_number"`
	MemberID      uuid.UUID       `json:"member_id"`
	Status        ReviewStatus    `json:"status"`
	BalanceDelta  decimal.Decimal `json:"balance_delta"`
}

// NewAdvanceChargeAuditedEvent creates the event raised when a charge is audited
func NewAdvanceChargeAuditedEvent(ac *AdvanceCharge) *AdvanceChargeReviewedEvent {
	return newAdvanceChargeReviewedEvent(EventTypeAdvanceChargeAudited, ac)
}

// NewAdvanceChargeUnauditedEvent creates the event raised when a charge is un-audited
func NewAdvanceChargeUnauditedEvent(ac *AdvanceCharge) *AdvanceChargeReviewedEvent {
	return newAdvanceChargeReviewedEvent(EventTypeAdvanceChargeUnaudited, ac)
}

func newAdvanceChargeReviewedEvent(eventType string, ac *AdvanceCharge) *AdvanceChargeReviewedEvent {
	return &AdvanceChargeReviewedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeAdvanceCharge, ac.ID, ac.TenantID),
		ReceiptNumber:   ac.ReceiptNumber,
		MemberID:        ac.MemberID,
		Status:          ac.Status,
		BalanceDelta:    ac.BalanceDelta(ac.Status),
	}
}

// AdvanceChargeDeletedEvent is raised when an advance charge is soft-deleted
type AdvanceChargeDeletedEvent struct {
	shared.BaseDomainEvent
	ReceiptNumber string    `json:"receipt_number"`
	MemberID      uuid.UUID `json:"member_id"`
}

// NewAdvanceChargeDeletedEvent creates a new AdvanceChargeDeletedEvent
func NewAdvanceChargeDeletedEvent(ac *AdvanceCharge) *AdvanceChargeDeletedEvent {
	return &AdvanceChargeDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAdvanceChargeDeleted, AggregateTypeAdvanceCharge, ac.ID, ac.TenantID),
		ReceiptNumber:   ac.ReceiptNumber,
		MemberID:        ac.MemberID,
	}
}

// OpeningBalanceRecordedEvent is raised when an opening balance is booked
type OpeningBalanceRecordedEvent struct {
	shared.BaseDomainEvent
	PartyKind PartyKind       `json:"party_kind"`
	PartyID   uuid.UUID       `json:"party_id"`
	AccountID uuid.UUID       `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// NewOpeningBalanceRecordedEvent creates a new OpeningBalanceRecordedEvent
func NewOpeningBalanceRecordedEvent(ob *OpeningBalance) *OpeningBalanceRecordedEvent {
	return &OpeningBalanceRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOpeningBalanceRecorded, AggregateTypeOpeningBalance, ob.ID, ob.TenantID),
		PartyKind:       ob.PartyKind,
		PartyID:         ob.PartyID,
		AccountID:       ob.AccountID,
		Amount:          ob.Amount,
	}
}
