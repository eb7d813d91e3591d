package finance

import (
	"fmt"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpeningBalanceBillNumber is shown in place of an absent bill number.
// It is a presentation value only and is never stored.
const OpeningBalanceBillNumber = "QiChu"

// AccountItemDetail is one ledger line of a financial document.
// Lines are owned by their document; only the account flow reads them across documents.
type AccountItemDetail struct {
	shared.BaseEntity
	TenantID      uuid.UUID       `json:"tenant_id"`
	HeaderID      uuid.UUID       `json:"header_id"`
	LineNo        int             `json:"line_no"`
	DocumentType  DocumentType    `json:"document_type"`
	AccountID     uuid.UUID       `json:"account_id"`
	AccountName   string          `json:"account_name"`
	InOutItemID   *uuid.UUID      `json:"in_out_item_id,omitempty"`
	InOutItemName string          `json:"in_out_item_name,omitempty"`
	BillNumber    *string         `json:"bill_number,omitempty"` // nil marks an opening-balance entry
	EachAmount    decimal.Decimal `json:"each_amount"`           // unsigned magnitude
	NeedDebt      decimal.Decimal `json:"need_debt"`
	FinishDebt    decimal.Decimal `json:"finish_debt"`
	Remark        string          `json:"remark"`
}

// NewAccountItemDetail creates a ledger line for a document
func NewAccountItemDetail(
	tenantID, headerID uuid.UUID,
	docType DocumentType,
	lineNo int,
	accountID uuid.UUID,
	accountName string,
	amount decimal.Decimal,
	remark string,
) (*AccountItemDetail, error) {
	if !docType.IsValid() {
		return nil, shared.NewValidationError("Invalid document type",
			shared.FieldError{Field: "documentType", Message: fmt.Sprintf("unknown type %q", docType)})
	}
	if accountID == uuid.Nil {
		return nil, shared.NewValidationError("Account is required",
			shared.FieldError{Field: fmt.Sprintf("lines[%d].accountId", lineNo), Message: "is required"})
	}
	if amount.IsNegative() {
		return nil, shared.NewValidationError("Line amount cannot be negative",
			shared.FieldError{Field: fmt.Sprintf("lines[%d].amount", lineNo), Message: "must be >= 0"})
	}

	return &AccountItemDetail{
		BaseEntity:   shared.NewBaseEntity(),
		TenantID:     tenantID,
		HeaderID:     headerID,
		LineNo:       lineNo,
		DocumentType: docType,
		AccountID:    accountID,
		AccountName:  accountName,
		EachAmount:   amount,
		NeedDebt:     decimal.Zero,
		FinishDebt:   decimal.Zero,
		Remark:       remark,
	}, nil
}

// SetBillNumber links the line to a source document. An empty number clears it.
func (d *AccountItemDetail) SetBillNumber(number string) {
	if number == "" {
		d.BillNumber = nil
		return
	}
	d.BillNumber = &number
}

// IsOpeningBalance reports whether the line has no source document
func (d *AccountItemDetail) IsOpeningBalance() bool {
	return d.BillNumber == nil || *d.BillNumber == ""
}

// DisplayBillNumber returns the bill number, or the opening-balance sentinel when absent
func (d *AccountItemDetail) DisplayBillNumber() string {
	if d.IsOpeningBalance() {
		return OpeningBalanceBillNumber
	}
	return *d.BillNumber
}

// SignedAmount applies the document's money direction to the line amount
func (d *AccountItemDetail) SignedAmount() decimal.Decimal {
	return d.DocumentType.Direction().Apply(d.EachAmount)
}

// SetNeedDebt sets the amount that must eventually be settled
func (d *AccountItemDetail) SetNeedDebt(need decimal.Decimal) error {
	if need.IsNegative() {
		return shared.NewValidationError("Need debt cannot be negative",
			shared.FieldError{Field: "needDebt", Message: "must be >= 0"})
	}
	if need.LessThan(d.FinishDebt) {
		return shared.NewValidationError("Need debt cannot be below the settled amount",
			shared.FieldError{Field: "needDebt", Message: fmt.Sprintf("must be >= %s", d.FinishDebt.StringFixed(2))})
	}
	d.NeedDebt = need
	return nil
}

// ApplySettlement records a settled amount. FinishDebt only grows and never exceeds NeedDebt.
func (d *AccountItemDetail) ApplySettlement(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewValidationError("Settlement amount must be positive",
			shared.FieldError{Field: "amount", Message: "must be > 0"})
	}
	next := d.FinishDebt.Add(amount)
	if next.GreaterThan(d.NeedDebt) {
		return shared.NewValidationError(
			fmt.Sprintf("Settlement %s exceeds outstanding debt %s", amount.StringFixed(2), d.OutstandingDebt().StringFixed(2)),
			shared.FieldError{Field: "amount", Message: "exceeds outstanding debt"})
	}
	d.FinishDebt = next
	d.Touch()
	return nil
}

// OutstandingDebt returns NeedDebt - FinishDebt
func (d *AccountItemDetail) OutstandingDebt() decimal.Decimal {
	return d.NeedDebt.Sub(d.FinishDebt)
}

// SumAmounts totals the unsigned line amounts
func SumAmounts(lines []AccountItemDetail) decimal.Decimal {
	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].EachAmount)
	}
	return total
}
