package partner

import (
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	AggregateTypeMember                  = "Member"
	EventTypeMemberCreated               = "MemberCreated"
	EventTypeMemberAdvancePaymentChanged = "MemberAdvancePaymentChanged"
)

// MemberCreatedEvent is raised when a new member is registered
type MemberCreatedEvent struct {
	shared.BaseDomainEvent
	MemberNumber string `json:"member_number"`
	Name         string `json:"name"`
}

// NewMemberCreatedEvent creates a new MemberCreatedEvent
func NewMemberCreatedEvent(m *Member) *MemberCreatedEvent {
	return &MemberCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberCreated, AggregateTypeMember, m.ID, m.TenantID),
		MemberNumber:    m.MemberNumber,
		Name:            m.Name,
	}
}

// MemberAdvancePaymentChangedEvent is raised when the prepaid balance moves
type MemberAdvancePaymentChangedEvent struct {
	shared.BaseDomainEvent
	OldBalance decimal.Decimal `json:"old_balance"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// NewMemberAdvancePaymentChangedEvent creates a new MemberAdvancePaymentChangedEvent
func NewMemberAdvancePaymentChangedEvent(m *Member, oldBalance, newBalance decimal.Decimal) *MemberAdvancePaymentChangedEvent {
	return &MemberAdvancePaymentChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberAdvancePaymentChanged, AggregateTypeMember, m.ID, m.TenantID),
		OldBalance:      oldBalance,
		NewBalance:      newBalance,
	}
}
