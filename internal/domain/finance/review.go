package finance

import (
	"fmt"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ReviewStatus is the audit state shared by all reviewable financial documents
type ReviewStatus int

const (
	ReviewStatusUnaudited ReviewStatus = 0
	ReviewStatusAudited   ReviewStatus = 1
)

// IsValid checks if the status is a known ReviewStatus
func (s ReviewStatus) IsValid() bool {
	return s == ReviewStatusUnaudited || s == ReviewStatusAudited
}

// String returns the string representation of ReviewStatus
func (s ReviewStatus) String() string {
	switch s {
	case ReviewStatusUnaudited:
		return "unaudited"
	case ReviewStatusAudited:
		return "audited"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseReviewStatus converts a wire value into a ReviewStatus
func ParseReviewStatus(v int) (ReviewStatus, error) {
	s := ReviewStatus(v)
	if !s.IsValid() {
		return s, shared.NewValidationError(fmt.Sprintf("Unknown review status %d", v),
			shared.FieldError{Field: "status", Message: "must be 0 (unaudited) or 1 (audited)"})
	}
	return s, nil
}

// ReviewableDocument is implemented by every document that goes through audit
type ReviewableDocument interface {
	ReviewStatus() ReviewStatus
	// DeclaredTotal is the header total entered by the user
	DeclaredTotal() decimal.Decimal
	// LineTotal is the sum of the document's line amounts
	LineTotal() decimal.Decimal
	applyReviewStatus(status ReviewStatus)
}

// ReviewStateMachine holds the unaudited <-> audited lifecycle rules.
// Unaudited documents may be edited and deleted; audited ones are frozen
// until they are un-audited.
type ReviewStateMachine struct{}

// EnsureEditable fails with INVALID_STATE unless the document is unaudited
func (ReviewStateMachine) EnsureEditable(doc ReviewableDocument) error {
	if doc.ReviewStatus() != ReviewStatusUnaudited {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot modify document in %s status", doc.ReviewStatus()))
	}
	return nil
}

// EnsureDeletable fails with INVALID_STATE unless the document is unaudited
func (ReviewStateMachine) EnsureDeletable(doc ReviewableDocument) error {
	if doc.ReviewStatus() != ReviewStatusUnaudited {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot delete document in %s status", doc.ReviewStatus()))
	}
	return nil
}

// Transition moves the document to target. Totals are re-validated on audit.
// Asking for the status the document already has is a CONFLICT: the caller acted on a stale view.
func (ReviewStateMachine) Transition(doc ReviewableDocument, target ReviewStatus) error {
	if !target.IsValid() {
		return shared.NewValidationError(fmt.Sprintf("Unknown review status %d", int(target)),
			shared.FieldError{Field: "status", Message: "must be 0 (unaudited) or 1 (audited)"})
	}
	current := doc.ReviewStatus()
	if !current.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Document has unknown status %d", int(current)))
	}
	if current == target {
		return shared.NewDomainError(shared.CodeConflict,
			fmt.Sprintf("Document is already %s", current))
	}
	if target == ReviewStatusAudited {
		declared, lines := doc.DeclaredTotal(), doc.LineTotal()
		if !declared.Equal(lines) {
			return shared.NewValidationError(
				fmt.Sprintf("Total amount %s does not match line total %s", declared.StringFixed(2), lines.StringFixed(2)),
				shared.FieldError{Field: "totalAmount", Message: "must equal the sum of line amounts"})
		}
	}
	doc.applyReviewStatus(target)
	return nil
}
