package finance

import (
	"fmt"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdvanceChargeLineInput is one allocation line of an advance charge
type AdvanceChargeLineInput struct {
	AccountID   uuid.UUID
	AccountName string
	Amount      decimal.Decimal
	Remark      string
}

// AdvanceChargeInput carries the editable content of an advance charge
type AdvanceChargeInput struct {
	MemberID               uuid.UUID
	MemberName             string
	ReceiptDate            time.Time
	FinancialPersonnelID   *uuid.UUID
	FinancialPersonnelName string
	OperatorID             *uuid.UUID
	OperatorName           string
	TotalAmount            decimal.Decimal
	CollectedAmount        decimal.Decimal
	Remark                 string
	Lines                  []AdvanceChargeLineInput
	Files                  []Attachment
}

// Validate checks header presence, line amounts and the amount invariants:
// sum(lines) == total and 0 <= collected <= total.
func (in AdvanceChargeInput) Validate() error {
	var errs []shared.FieldError
	if in.MemberID == uuid.Nil {
		errs = append(errs, shared.FieldError{Field: "memberId", Message: "is required"})
	}
	if in.ReceiptDate.IsZero() {
		errs = append(errs, shared.FieldError{Field: "receiptDate", Message: "is required"})
	}
	if len(in.Lines) == 0 {
		errs = append(errs, shared.FieldError{Field: "lines", Message: "at least one line is required"})
	}
	lineTotal := decimal.Zero
	for i, line := range in.Lines {
		if line.AccountID == uuid.Nil {
			errs = append(errs, shared.FieldError{Field: fieldAt("lines", i, "accountId"), Message: "is required"})
		}
		if line.Amount.IsNegative() {
			errs = append(errs, shared.FieldError{Field: fieldAt("lines", i, "amount"), Message: "must be >= 0"})
		}
		lineTotal = lineTotal.Add(line.Amount)
	}
	if in.TotalAmount.IsNegative() {
		errs = append(errs, shared.FieldError{Field: "totalAmount", Message: "must be >= 0"})
	}
	if len(in.Lines) > 0 && !lineTotal.Equal(in.TotalAmount) {
		errs = append(errs, shared.FieldError{
			Field:   "totalAmount",
			Message: fmt.Sprintf("must equal the sum of line amounts (%s)", lineTotal.StringFixed(2)),
		})
	}
	if in.CollectedAmount.IsNegative() {
		errs = append(errs, shared.FieldError{Field: "collectedAmount", Message: "must be >= 0"})
	}
	if in.CollectedAmount.GreaterThan(in.TotalAmount) {
		errs = append(errs, shared.FieldError{Field: "collectedAmount", Message: "cannot exceed totalAmount"})
	}
	for i, f := range in.Files {
		errs = append(errs, f.Validate(i)...)
	}

	if len(errs) > 0 {
		return shared.NewValidationError("Invalid advance charge", errs...)
	}
	return nil
}

// AdvanceCharge is a prepayment received from a member.
// Audit credits the member's advance-payment balance with CollectedAmount; un-audit reverses it.
type AdvanceCharge struct {
	shared.TenantAggregateRoot
	ReceiptNumber          string              `json:"receipt_number"`
	MemberID               uuid.UUID           `json:"member_id"`
	MemberName             string              `json:"member_name"`
	ReceiptDate            time.Time           `json:"receipt_date"`
	FinancialPersonnelID   *uuid.UUID          `json:"financial_personnel_id"`
	FinancialPersonnelName string              `json:"financial_personnel_name"`
	OperatorID             *uuid.UUID          `json:"operator_id"`
	OperatorName           string              `json:"operator_name"`
	TotalAmount            decimal.Decimal     `json:"total_amount"`
	CollectedAmount        decimal.Decimal     `json:"collected_amount"`
	Status                 ReviewStatus        `json:"status"`
	Remark                 string              `json:"remark"`
	Lines                  []AccountItemDetail `json:"lines"`
	Files                  []Attachment        `json:"files"`
	DeletedAt              *time.Time          `json:"deleted_at,omitempty"`
}

// NewAdvanceCharge creates an unaudited advance charge
func NewAdvanceCharge(tenantID uuid.UUID, receiptNumber string, in AdvanceChargeInput) (*AdvanceCharge, error) {
	if receiptNumber == "" {
		return nil, shared.NewValidationError("Receipt number is required",
			shared.FieldError{Field: "receiptNumber", Message: "is required"})
	}
	if len(receiptNumber) > 50 {
		return nil, shared.NewValidationError("Receipt number cannot exceed 50 characters",
			shared.FieldError{Field: "receiptNumber", Message: "max length is 50"})
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ac := &AdvanceCharge{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ReceiptNumber:       receiptNumber,
		Status:              ReviewStatusUnaudited,
	}
	if err := ac.apply(in); err != nil {
		return nil, err
	}

	ac.AddDomainEvent(NewAdvanceChargeCreatedEvent(ac))
	return ac, nil
}

// Revise replaces header, lines and attachments. Only unaudited charges can be revised.
// It returns the attachments no longer referenced so their objects can be released.
func (ac *AdvanceCharge) Revise(in AdvanceChargeInput) ([]Attachment, error) {
	if ac.IsDeleted() {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Advance charge has been deleted")
	}
	if err := (ReviewStateMachine{}).EnsureEditable(ac); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	removed := removedAttachments(ac.Files, in.Files)
	if err := ac.apply(in); err != nil {
		return nil, err
	}
	ac.Touch()

	ac.AddDomainEvent(NewAdvanceChargeUpdatedEvent(ac))
	return removed, nil
}

func (ac *AdvanceCharge) apply(in AdvanceChargeInput) error {
	lines := make([]AccountItemDetail, 0, len(in.Lines))
	for i, l := range in.Lines {
		line, err := NewAccountItemDetail(ac.TenantID, ac.ID, DocumentTypeAdvanceCharge, i+1, l.AccountID, l.AccountName, l.Amount, l.Remark)
		if err != nil {
			return err
		}
		line.SetBillNumber(ac.ReceiptNumber)
		lines = append(lines, *line)
	}

	files := make([]Attachment, 0, len(in.Files))
	for _, f := range in.Files {
		if f.ID == uuid.Nil {
			f.ID = uuid.New()
		}
		files = append(files, f)
	}

	ac.MemberID = in.MemberID
	ac.MemberName = in.MemberName
	ac.ReceiptDate = in.ReceiptDate
	ac.FinancialPersonnelID = in.FinancialPersonnelID
	ac.FinancialPersonnelName = in.FinancialPersonnelName
	ac.OperatorID = in.OperatorID
	ac.OperatorName = in.OperatorName
	ac.TotalAmount = in.TotalAmount
	ac.CollectedAmount = in.CollectedAmount
	ac.Remark = in.Remark
	ac.Lines = lines
	ac.Files = files
	return nil
}

// ChangeStatus runs the review transition and records the matching event.
// The caller moves the member balance by BalanceDelta inside the same transaction.
func (ac *AdvanceCharge) ChangeStatus(target ReviewStatus) error {
	if ac.IsDeleted() {
		return shared.NewDomainError(shared.CodeNotFound, "Advance charge has been deleted")
	}
	if target == ReviewStatusAudited {
		if ac.CollectedAmount.IsNegative() || ac.CollectedAmount.GreaterThan(ac.TotalAmount) {
			return shared.NewValidationError("Collected amount must be between 0 and the total amount",
				shared.FieldError{Field: "collectedAmount", Message: "cannot exceed totalAmount"})
		}
	}
	if err := (ReviewStateMachine{}).Transition(ac, target); err != nil {
		return err
	}
	ac.Touch()

	if target == ReviewStatusAudited {
		ac.AddDomainEvent(NewAdvanceChargeAuditedEvent(ac))
	} else {
		ac.AddDomainEvent(NewAdvanceChargeUnauditedEvent(ac))
	}
	return nil
}

// BalanceDelta is the change to the member's advance payment caused by moving into status:
// +CollectedAmount on audit, -CollectedAmount on un-audit.
func (ac *AdvanceCharge) BalanceDelta(status ReviewStatus) decimal.Decimal {
	if status == ReviewStatusAudited {
		return ac.CollectedAmount
	}
	return ac.CollectedAmount.Neg()
}

// MarkDeleted soft-deletes an unaudited charge
func (ac *AdvanceCharge) MarkDeleted() error {
	if ac.IsDeleted() {
		return shared.NewDomainError(shared.CodeNotFound, "Advance charge has already been deleted")
	}
	if err := (ReviewStateMachine{}).EnsureDeletable(ac); err != nil {
		return err
	}
	now := time.Now()
	ac.DeletedAt = &now
	ac.UpdatedAt = now

	ac.AddDomainEvent(NewAdvanceChargeDeletedEvent(ac))
	return nil
}

// IsDeleted reports whether the charge was soft-deleted
func (ac *AdvanceCharge) IsDeleted() bool {
	return ac.DeletedAt != nil
}

// IsAudited returns true if the charge is audited
func (ac *AdvanceCharge) IsAudited() bool {
	return ac.Status == ReviewStatusAudited
}

// ReviewStatus implements ReviewableDocument
func (ac *AdvanceCharge) ReviewStatus() ReviewStatus {
	return ac.Status
}

// DeclaredTotal implements ReviewableDocument
func (ac *AdvanceCharge) DeclaredTotal() decimal.Decimal {
	return ac.TotalAmount
}

// LineTotal implements ReviewableDocument
func (ac *AdvanceCharge) LineTotal() decimal.Decimal {
	return SumAmounts(ac.Lines)
}

func (ac *AdvanceCharge) applyReviewStatus(status ReviewStatus) {
	ac.Status = status
}

func fieldAt(collection string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", collection, index, field)
}
