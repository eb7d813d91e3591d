package models

import (
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialDocumentModel_AdvanceChargeMapping(t *testing.T) {
	personnel := uuid.New()
	ac, err := finance.NewAdvanceCharge(uuid.New(), "YSK202403010001", finance.AdvanceChargeInput{
		MemberID:               uuid.New(),
		MemberName:             "Alice",
		ReceiptDate:            time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		FinancialPersonnelID:   &personnel,
		FinancialPersonnelName: "Bob",
		TotalAmount:            decimal.NewFromInt(100),
		CollectedAmount:        decimal.NewFromInt(80),
		Lines: []finance.AdvanceChargeLineInput{
			{AccountID: uuid.New(), AccountName: "Cash", Amount: decimal.NewFromInt(100), Remark: "front desk"},
		},
		Files: []finance.Attachment{{FileName: "slip.png", StorageKey: "advance/slip.png", FileSize: 42}},
	})
	require.NoError(t, err)

	model := AdvanceChargeModelFromDomain(ac)
	assert.Equal(t, finance.DocumentTypeAdvanceCharge, model.DocumentType)
	assert.Equal(t, finance.PartyKindMember, model.PartyKind)
	assert.Equal(t, ac.MemberID, model.PartyID)
	require.Len(t, model.Lines, 1)
	require.Len(t, model.Files, 1)
	assert.Equal(t, ac.ID, model.Files[0].DocumentID)
	assert.False(t, model.DeletedAt.Valid)

	back := model.ToAdvanceCharge()
	assert.Equal(t, ac.ID, back.ID)
	assert.Equal(t, ac.TenantID, back.TenantID)
	assert.Equal(t, "Alice", back.MemberName)
	assert.Equal(t, &personnel, back.FinancialPersonnelID)
	assert.True(t, back.CollectedAmount.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "YSK202403010001", back.Lines[0].DisplayBillNumber())
	assert.Equal(t, "advance/slip.png", back.Files[0].StorageKey)
	assert.Nil(t, back.DeletedAt)
}

func TestOpeningBalanceModelFromDomain(t *testing.T) {
	ob, err := finance.NewOpeningBalance(uuid.New(), "QC1", finance.OpeningBalanceInput{
		PartyKind:   finance.PartyKindSupplier,
		PartyID:     uuid.New(),
		AccountID:   uuid.New(),
		Amount:      decimal.NewFromInt(100),
		BalanceDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	model := OpeningBalanceModelFromDomain(ob)
	assert.Equal(t, finance.DocumentTypeOpeningBalance, model.DocumentType)
	assert.Equal(t, finance.ReviewStatusAudited, model.Status)
	require.NotNil(t, model.AccountID)
	assert.Equal(t, ob.AccountID, *model.AccountID)
	require.Len(t, model.Lines, 1)
	assert.Nil(t, model.Lines[0].BillNumber)
}
