package finance

import (
	"testing"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLine(t *testing.T, docType DocumentType, amount string) *AccountItemDetail {
	line, err := NewAccountItemDetail(uuid.New(), uuid.New(), docType, 1, uuid.New(), "Cash", decimal.RequireFromString(amount), "")
	require.NoError(t, err)
	return line
}

func TestNewAccountItemDetail_Validation(t *testing.T) {
	tests := []struct {
		name      string
		docType   DocumentType
		accountID uuid.UUID
		amount    string
	}{
		{"unknown document type", DocumentType("bogus"), uuid.New(), "10"},
		{"missing account", DocumentTypeAdvanceCharge, uuid.Nil, "10"},
		{"negative amount", DocumentTypeAdvanceCharge, uuid.New(), "-0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAccountItemDetail(uuid.New(), uuid.New(), tt.docType, 1, tt.accountID, "", decimal.RequireFromString(tt.amount), "")
			require.Error(t, err)
			assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
		})
	}
}

func TestAccountItemDetail_BillNumber(t *testing.T) {
	line := newTestLine(t, DocumentTypeReceipt, "10")

	assert.True(t, line.IsOpeningBalance())
	assert.Equal(t, OpeningBalanceBillNumber, line.DisplayBillNumber())

	line.SetBillNumber("YSK202401010001")
	assert.False(t, line.IsOpeningBalance())
	assert.Equal(t, "YSK202401010001", line.DisplayBillNumber())

	empty := ""
	line.BillNumber = &empty
	assert.True(t, line.IsOpeningBalance())
	assert.Equal(t, OpeningBalanceBillNumber, line.DisplayBillNumber())

	line.SetBillNumber("")
	assert.Nil(t, line.BillNumber)
}

func TestAccountItemDetail_SignedAmount(t *testing.T) {
	assert.Equal(t, "50", newTestLine(t, DocumentTypeAdvanceCharge, "50").SignedAmount().String())
	assert.Equal(t, "-50", newTestLine(t, DocumentTypePayment, "50").SignedAmount().String())
	assert.Equal(t, "50", newTestLine(t, DocumentTypeOpeningBalance, "50").SignedAmount().String())
}

func TestAccountItemDetail_ApplySettlement(t *testing.T) {
	line := newTestLine(t, DocumentTypePayment, "100")
	require.NoError(t, line.SetNeedDebt(decimal.NewFromInt(100)))

	require.NoError(t, line.ApplySettlement(decimal.NewFromInt(30)))
	assert.True(t, line.FinishDebt.Equal(decimal.NewFromInt(30)))
	assert.True(t, line.OutstandingDebt().Equal(decimal.NewFromInt(70)))

	t.Run("rejects non-positive", func(t *testing.T) {
		err := line.ApplySettlement(decimal.Zero)
		assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
	})

	t.Run("rejects overpayment and keeps state", func(t *testing.T) {
		err := line.ApplySettlement(decimal.NewFromInt(71))
		assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
		assert.True(t, line.FinishDebt.Equal(decimal.NewFromInt(30)))
	})

	t.Run("settles exactly to need", func(t *testing.T) {
		require.NoError(t, line.ApplySettlement(decimal.NewFromInt(70)))
		assert.True(t, line.OutstandingDebt().IsZero())
	})
}

func TestAccountItemDetail_SetNeedDebt(t *testing.T) {
	line := newTestLine(t, DocumentTypePayment, "100")
	require.NoError(t, line.SetNeedDebt(decimal.NewFromInt(50)))
	require.NoError(t, line.ApplySettlement(decimal.NewFromInt(40)))

	assert.Error(t, line.SetNeedDebt(decimal.NewFromInt(-1)))
	assert.Error(t, line.SetNeedDebt(decimal.NewFromInt(39)))
	assert.NoError(t, line.SetNeedDebt(decimal.NewFromInt(40)))
}

func TestSumAmounts(t *testing.T) {
	lines := []AccountItemDetail{
		*newTestLine(t, DocumentTypeAdvanceCharge, "60.10"),
		*newTestLine(t, DocumentTypeAdvanceCharge, "39.90"),
	}
	assert.True(t, SumAmounts(lines).Equal(decimal.NewFromInt(100)))
	assert.True(t, SumAmounts(nil).IsZero())
}
