package finance

import (
	"github.com/shopspring/decimal"
)

// MoneyDirection tells how an unsigned amount affects a running balance
type MoneyDirection int

const (
	// DirectionNeutral leaves the sign to the recorded amount (opening balances, transfers)
	DirectionNeutral MoneyDirection = iota
	// DirectionInbound adds to the balance (receipts, advance charges, income)
	DirectionInbound
	// DirectionOutbound subtracts from the balance (payments, expenses)
	DirectionOutbound
)

// String returns the string representation of MoneyDirection
func (d MoneyDirection) String() string {
	switch d {
	case DirectionInbound:
		return "inbound"
	case DirectionOutbound:
		return "outbound"
	default:
		return "neutral"
	}
}

// Apply converts an unsigned magnitude into the signed amount for this direction.
//
//	inbound:  v
//	outbound: 0 - v
//	neutral:  v < 0 ? -v : v
//
// The neutral rule is kept as written; account-flow balances depend on it.
func (d MoneyDirection) Apply(magnitude decimal.Decimal) decimal.Decimal {
	switch d {
	case DirectionInbound:
		return magnitude
	case DirectionOutbound:
		return decimal.Zero.Sub(magnitude)
	default:
		if magnitude.LessThan(decimal.Zero) {
			return magnitude.Neg()
		}
		return magnitude
	}
}

// DocumentType is the sub-type tag carried by every financial document and its lines
type DocumentType string

const (
	DocumentTypeAdvanceCharge  DocumentType = "advance_charge"
	DocumentTypeReceipt        DocumentType = "receipt"
	DocumentTypeIncome         DocumentType = "income"
	DocumentTypePayment        DocumentType = "payment"
	DocumentTypeExpense        DocumentType = "expense"
	DocumentTypeTransfer       DocumentType = "transfer"
	DocumentTypeOpeningBalance DocumentType = "opening_balance"
)

// IsValid checks if the document type is known
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeAdvanceCharge, DocumentTypeReceipt, DocumentTypeIncome,
		DocumentTypePayment, DocumentTypeExpense, DocumentTypeTransfer, DocumentTypeOpeningBalance:
		return true
	}
	return false
}

// String returns the string representation of DocumentType
func (t DocumentType) String() string {
	return string(t)
}

// Direction maps the document type to its money direction. Unknown types are neutral.
func (t DocumentType) Direction() MoneyDirection {
	switch t {
	case DocumentTypeAdvanceCharge, DocumentTypeReceipt, DocumentTypeIncome:
		return DirectionInbound
	case DocumentTypePayment, DocumentTypeExpense:
		return DirectionOutbound
	default:
		return DirectionNeutral
	}
}

// moneyPlaces is the number of decimal places surfaced for money
const moneyPlaces = 2

// RoundMoney rounds half-up on the magnitude to 2 places and keeps the sign:
// 12.345 -> 12.35, -12.345 -> -12.35.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	rounded := v.Abs().Round(moneyPlaces)
	if v.IsNegative() {
		return rounded.Neg()
	}
	return rounded
}

// RoundMagnitude returns the non-negative, 2-place rounded magnitude of v.
// Unsigned money fields are always surfaced through it.
func RoundMagnitude(v decimal.Decimal) decimal.Decimal {
	return v.Abs().Round(moneyPlaces)
}
