package partner

import (
	"regexp"
	"strings"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberStatus represents the status of a member
type MemberStatus string

const (
	MemberStatusEnabled  MemberStatus = "enabled"
	MemberStatusDisabled MemberStatus = "disabled"
)

// IsValid checks if the status is a known MemberStatus
func (s MemberStatus) IsValid() bool {
	return s == MemberStatusEnabled || s == MemberStatusDisabled
}

// Member is a retail member holding an advance-payment (prepaid) balance.
// AdvancePayment never goes below zero; it is moved only through the
// repository's guarded UpdateAdvanceChargeAmount inside a transaction.
type Member struct {
	shared.TenantAggregateRoot
	MemberNumber   string          `json:"member_number"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	AdvancePayment decimal.Decimal `json:"advance_payment"`
	Status         MemberStatus    `json:"status"`
	Remark         string          `json:"remark"`
	Sort           int             `json:"sort"`
}

// NewMember creates an enabled member with a zero balance
func NewMember(tenantID uuid.UUID, memberNumber, name string) (*Member, error) {
	if err := validateMemberNumber(memberNumber); err != nil {
		return nil, err
	}
	if err := validateMemberName(name); err != nil {
		return nil, err
	}

	m := &Member{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		MemberNumber:        strings.ToUpper(memberNumber),
		Name:                name,
		AdvancePayment:      decimal.Zero,
		Status:              MemberStatusEnabled,
	}

	m.AddDomainEvent(NewMemberCreatedEvent(m))
	return m, nil
}

// SetContact sets phone and email; empty values clear them
func (m *Member) SetContact(phone, email string) error {
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	m.Phone = phone
	m.Email = email
	m.Touch()
	return nil
}

// SetRemark sets the remark
func (m *Member) SetRemark(remark string) {
	m.Remark = remark
	m.Touch()
}

// SetSort sets the display order
func (m *Member) SetSort(sort int) {
	m.Sort = sort
	m.Touch()
}

// Disable disables the member
func (m *Member) Disable() error {
	if m.Status == MemberStatusDisabled {
		return shared.NewDomainError(shared.CodeInvalidState, "Member is already disabled")
	}
	m.Status = MemberStatusDisabled
	m.Touch()
	return nil
}

// Enable re-enables the member
func (m *Member) Enable() error {
	if m.Status == MemberStatusEnabled {
		return shared.NewDomainError(shared.CodeInvalidState, "Member is already enabled")
	}
	m.Status = MemberStatusEnabled
	m.Touch()
	return nil
}

// ApplyAdvancePaymentDelta moves the in-memory balance by delta.
// Zero deltas are rejected and the result may not be negative.
func (m *Member) ApplyAdvancePaymentDelta(delta decimal.Decimal) error {
	if err := ValidateAdvancePaymentDelta(delta); err != nil {
		return err
	}
	next := m.AdvancePayment.Add(delta)
	if next.IsNegative() {
		return shared.NewDomainError(shared.CodeInsufficientBalance,
			"Member advance payment "+m.AdvancePayment.StringFixed(2)+" cannot cover "+delta.Neg().StringFixed(2))
	}
	old := m.AdvancePayment
	m.AdvancePayment = next
	m.Touch()

	m.AddDomainEvent(NewMemberAdvancePaymentChangedEvent(m, old, next))
	return nil
}

// ValidateAdvancePaymentDelta rejects zero deltas
func ValidateAdvancePaymentDelta(delta decimal.Decimal) error {
	if delta.IsZero() {
		return shared.NewValidationError("Advance payment change cannot be zero",
			shared.FieldError{Field: "amount", Message: "must not be zero"})
	}
	return nil
}

// IsEnabled returns true if the member is enabled
func (m *Member) IsEnabled() bool {
	return m.Status == MemberStatusEnabled
}

// Validation functions

func validateMemberNumber(number string) error {
	if number == "" {
		return shared.NewValidationError("Member number cannot be empty",
			shared.FieldError{Field: "memberNumber", Message: "is required"})
	}
	if len(number) > 50 {
		return shared.NewValidationError("Member number cannot exceed 50 characters",
			shared.FieldError{Field: "memberNumber", Message: "max length is 50"})
	}
	for _, r := range number {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewValidationError("Member number can only contain letters, numbers, underscores, and hyphens",
				shared.FieldError{Field: "memberNumber", Message: "invalid characters"})
		}
	}
	return nil
}

func validateMemberName(name string) error {
	if name == "" {
		return shared.NewValidationError("Member name cannot be empty",
			shared.FieldError{Field: "name", Message: "is required"})
	}
	if len(name) > 200 {
		return shared.NewValidationError("Member name cannot exceed 200 characters",
			shared.FieldError{Field: "name", Message: "max length is 200"})
	}
	return nil
}

var (
	phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func validatePhone(phone string) error {
	if len(phone) > 50 || !phonePattern.MatchString(phone) {
		return shared.NewValidationError("Invalid phone number format",
			shared.FieldError{Field: "phone", Message: "invalid format"})
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 || !emailPattern.MatchString(email) {
		return shared.NewValidationError("Invalid email format",
			shared.FieldError{Field: "email", Message: "invalid format"})
	}
	return nil
}
