package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// AccountFlowEntry is one ledger line as read for the account flow
type AccountFlowEntry struct {
	ReceiptNumber string
	DocumentType  DocumentType
	PartyKind     PartyKind
	PartyName     string
	BillNumber    *string
	EachAmount    decimal.Decimal
	ReceiptDate   time.Time
}

// IsOpeningBalance reports whether the entry is an opening-balance row
func (e AccountFlowEntry) IsOpeningBalance() bool {
	return e.DocumentType == DocumentTypeOpeningBalance || e.BillNumber == nil || *e.BillNumber == ""
}

// SignedAmount applies the entry's money direction. Opening-balance rows always use the neutral rule.
func (e AccountFlowEntry) SignedAmount() decimal.Decimal {
	if e.IsOpeningBalance() {
		return DirectionNeutral.Apply(e.EachAmount)
	}
	return e.DocumentType.Direction().Apply(e.EachAmount)
}

// AccountFlowRow is one row of the account-flow report
type AccountFlowRow struct {
	ReceiptNumber string          `json:"receipt_number"`
	SubType       DocumentType    `json:"sub_type"`
	UseType       PartyKind       `json:"use_type"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	ReceiptDate   time.Time       `json:"receipt_date"`
}

// SortAccountFlowEntries orders entries in place: opening balances first,
// then by receipt date ascending, ties broken by receipt number ascending.
func SortAccountFlowEntries(entries []AccountFlowEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsOpeningBalance() != b.IsOpeningBalance() {
			return a.IsOpeningBalance()
		}
		if !a.ReceiptDate.Equal(b.ReceiptDate) {
			return a.ReceiptDate.Before(b.ReceiptDate)
		}
		return a.ReceiptNumber < b.ReceiptNumber
	})
}

// BuildAccountFlow sorts the full set of entries and folds the running balance.
// The input must be the whole range; the balance of a row depends on every row before it.
func BuildAccountFlow(entries []AccountFlowEntry) []AccountFlowRow {
	sorted := make([]AccountFlowEntry, len(entries))
	copy(sorted, entries)
	SortAccountFlowEntries(sorted)

	rows := make([]AccountFlowRow, 0, len(sorted))
	balance := decimal.Zero
	for _, e := range sorted {
		amount := e.SignedAmount()
		balance = balance.Add(amount)

		receiptNumber := e.ReceiptNumber
		if e.IsOpeningBalance() {
			receiptNumber = OpeningBalanceBillNumber
		}
		rows = append(rows, AccountFlowRow{
			ReceiptNumber: receiptNumber,
			SubType:       e.DocumentType,
			UseType:       e.PartyKind,
			Name:          e.PartyName,
			Amount:        RoundMoney(amount),
			Balance:       RoundMoney(balance),
			ReceiptDate:   e.ReceiptDate,
		})
	}
	return rows
}
