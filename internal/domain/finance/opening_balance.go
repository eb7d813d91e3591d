package finance

import (
	"fmt"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartyKind identifies the kind of counterparty a document is booked against
type PartyKind string

const (
	PartyKindSupplier PartyKind = "supplier"
	PartyKindCustomer PartyKind = "customer"
	PartyKindMember   PartyKind = "member"
)

// IsValid checks if the party kind is known
func (k PartyKind) IsValid() bool {
	switch k {
	case PartyKindSupplier, PartyKindCustomer, PartyKindMember:
		return true
	}
	return false
}

// String returns the string representation of PartyKind
func (k PartyKind) String() string {
	return string(k)
}

// OpeningBalanceInput carries the data of an opening balance
type OpeningBalanceInput struct {
	PartyKind   PartyKind
	PartyID     uuid.UUID
	PartyName   string
	AccountID   uuid.UUID
	AccountName string
	Amount      decimal.Decimal
	BalanceDate time.Time
	Remark      string
}

// OpeningBalance books the balance a party or account carried before the ledger started.
// It has a single line without a bill number, so the account flow always puts it first.
// Its amount may be negative; the neutral money direction decides how it is shown.
type OpeningBalance struct {
	shared.TenantAggregateRoot
	ReceiptNumber string            `json:"receipt_number"`
	PartyKind     PartyKind         `json:"party_kind"`
	PartyID       uuid.UUID         `json:"party_id"`
	PartyName     string            `json:"party_name"`
	AccountID     uuid.UUID         `json:"account_id"`
	AccountName   string            `json:"account_name"`
	Amount        decimal.Decimal   `json:"amount"`
	BalanceDate   time.Time         `json:"balance_date"`
	Status        ReviewStatus      `json:"status"`
	Remark        string            `json:"remark"`
	Line          AccountItemDetail `json:"line"`
}

// NewOpeningBalance creates an opening balance; it is audited on creation
func NewOpeningBalance(tenantID uuid.UUID, receiptNumber string, in OpeningBalanceInput) (*OpeningBalance, error) {
	var errs []shared.FieldError
	if receiptNumber == "" {
		errs = append(errs, shared.FieldError{Field: "receiptNumber", Message: "is required"})
	}
	if !in.PartyKind.IsValid() {
		errs = append(errs, shared.FieldError{Field: "partyKind", Message: fmt.Sprintf("unknown party kind %q", in.PartyKind)})
	}
	if in.PartyID == uuid.Nil {
		errs = append(errs, shared.FieldError{Field: "partyId", Message: "is required"})
	}
	if in.AccountID == uuid.Nil {
		errs = append(errs, shared.FieldError{Field: "accountId", Message: "is required"})
	}
	if in.BalanceDate.IsZero() {
		errs = append(errs, shared.FieldError{Field: "balanceDate", Message: "is required"})
	}
	if len(errs) > 0 {
		return nil, shared.NewValidationError("Invalid opening balance", errs...)
	}

	ob := &OpeningBalance{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ReceiptNumber:       receiptNumber,
		PartyKind:           in.PartyKind,
		PartyID:             in.PartyID,
		PartyName:           in.PartyName,
		AccountID:           in.AccountID,
		AccountName:         in.AccountName,
		Amount:              in.Amount,
		BalanceDate:         in.BalanceDate,
		Status:              ReviewStatusUnaudited,
		Remark:              in.Remark,
	}
	ob.Line = AccountItemDetail{
		BaseEntity:   shared.NewBaseEntity(),
		TenantID:     tenantID,
		HeaderID:     ob.ID,
		LineNo:       1,
		DocumentType: DocumentTypeOpeningBalance,
		AccountID:    in.AccountID,
		AccountName:  in.AccountName,
		EachAmount:   in.Amount,
		NeedDebt:     decimal.Zero,
		FinishDebt:   decimal.Zero,
		Remark:       in.Remark,
	}

	if err := (ReviewStateMachine{}).Transition(ob, ReviewStatusAudited); err != nil {
		return nil, err
	}

	ob.AddDomainEvent(NewOpeningBalanceRecordedEvent(ob))
	return ob, nil
}

// ReviewStatus implements ReviewableDocument
func (ob *OpeningBalance) ReviewStatus() ReviewStatus {
	return ob.Status
}

// DeclaredTotal implements ReviewableDocument
func (ob *OpeningBalance) DeclaredTotal() decimal.Decimal {
	return ob.Amount
}

// LineTotal implements ReviewableDocument
func (ob *OpeningBalance) LineTotal() decimal.Decimal {
	return ob.Line.EachAmount
}

func (ob *OpeningBalance) applyReviewStatus(status ReviewStatus) {
	ob.Status = status
}
