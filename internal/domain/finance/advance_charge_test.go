package finance

import (
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func validAdvanceChargeInput() AdvanceChargeInput {
	return AdvanceChargeInput{
		MemberID:        uuid.New(),
		MemberName:      "Alice",
		ReceiptDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount:     decimal.NewFromInt(100),
		CollectedAmount: decimal.NewFromInt(100),
		Lines: []AdvanceChargeLineInput{
			{AccountID: uuid.New(), AccountName: "Cash", Amount: decimal.NewFromInt(60)},
			{AccountID: uuid.New(), AccountName: "Bank", Amount: decimal.NewFromInt(40)},
		},
	}
}

func createTestAdvanceCharge(t *testing.T) *AdvanceCharge {
	ac, err := NewAdvanceCharge(uuid.New(), "YSK202403010001", validAdvanceChargeInput())
	require.NoError(t, err)
	return ac
}

func createAuditedAdvanceCharge(t *testing.T) *AdvanceCharge {
	ac := createTestAdvanceCharge(t)
	require.NoError(t, ac.ChangeStatus(ReviewStatusAudited))
	return ac
}

func fieldsOf(t *testing.T, err error) []string {
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	fields := make([]string, 0, len(domainErr.Details))
	for _, d := range domainErr.Details {
		fields = append(fields, d.Field)
	}
	return fields
}

// ============================================
// Creation
// ============================================

func TestNewAdvanceCharge(t *testing.T) {
	ac := createTestAdvanceCharge(t)

	assert.Equal(t, ReviewStatusUnaudited, ac.Status)
	assert.Equal(t, 1, ac.Version)
	require.Len(t, ac.Lines, 2)
	assert.Equal(t, 1, ac.Lines[0].LineNo)
	assert.Equal(t, ac.ID, ac.Lines[0].HeaderID)
	assert.Equal(t, DocumentTypeAdvanceCharge, ac.Lines[1].DocumentType)
	assert.Equal(t, "YSK202403010001", ac.Lines[1].DisplayBillNumber())

	events := ac.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeAdvanceChargeCreated, events[0].EventType())
}

func TestNewAdvanceCharge_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *AdvanceChargeInput)
		wantField string
	}{
		{"missing member", func(in *AdvanceChargeInput) { in.MemberID = uuid.Nil }, "memberId"},
		{"missing receipt date", func(in *AdvanceChargeInput) { in.ReceiptDate = time.Time{} }, "receiptDate"},
		{"no lines", func(in *AdvanceChargeInput) { in.Lines = nil }, "lines"},
		{"negative line", func(in *AdvanceChargeInput) { in.Lines[0].Amount = decimal.NewFromInt(-1) }, "lines[0].amount"},
		{"line without account", func(in *AdvanceChargeInput) { in.Lines[1].AccountID = uuid.Nil }, "lines[1].accountId"},
		{"totals disagree", func(in *AdvanceChargeInput) {
			in.TotalAmount = decimal.NewFromInt(90)
			in.CollectedAmount = decimal.Zero
		}, "totalAmount"},
		{"collected above total", func(in *AdvanceChargeInput) { in.CollectedAmount = decimal.NewFromInt(101) }, "collectedAmount"},
		{"negative collected", func(in *AdvanceChargeInput) { in.CollectedAmount = decimal.NewFromInt(-1) }, "collectedAmount"},
		{"attachment without location", func(in *AdvanceChargeInput) { in.Files = []Attachment{{FileName: "a.pdf"}} }, "files[0].url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAdvanceChargeInput()
			tt.mutate(&in)

			_, err := NewAdvanceCharge(uuid.New(), "YSK1", in)
			require.Error(t, err)
			assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
			assert.Contains(t, fieldsOf(t, err), tt.wantField)
		})
	}

	t.Run("missing receipt number", func(t *testing.T) {
		_, err := NewAdvanceCharge(uuid.New(), "", validAdvanceChargeInput())
		assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
	})
}

// ============================================
// Revise
// ============================================

func TestAdvanceCharge_Revise(t *testing.T) {
	in := validAdvanceChargeInput()
	in.Files = []Attachment{
		{FileName: "keep.pdf", StorageKey: "advance/keep.pdf"},
		{FileName: "drop.pdf", StorageKey: "advance/drop.pdf"},
	}
	ac, err := NewAdvanceCharge(uuid.New(), "YSK1", in)
	require.NoError(t, err)
	ac.ClearDomainEvents()

	revised := validAdvanceChargeInput()
	revised.TotalAmount = decimal.NewFromInt(50)
	revised.CollectedAmount = decimal.NewFromInt(20)
	revised.Lines = []AdvanceChargeLineInput{{AccountID: uuid.New(), Amount: decimal.NewFromInt(50)}}
	revised.Files = []Attachment{{FileName: "keep.pdf", StorageKey: "advance/keep.pdf"}}

	removed, err := ac.Revise(revised)
	require.NoError(t, err)

	require.Len(t, removed, 1)
	assert.Equal(t, "advance/drop.pdf", removed[0].StorageKey)
	assert.True(t, ac.TotalAmount.Equal(decimal.NewFromInt(50)))
	require.Len(t, ac.Lines, 1)
	assert.Len(t, ac.Files, 1)
	assert.Equal(t, EventTypeAdvanceChargeUpdated, ac.GetDomainEvents()[0].EventType())
}

func TestAdvanceCharge_Revise_AuditedRejected(t *testing.T) {
	ac := createAuditedAdvanceCharge(t)

	_, err := ac.Revise(validAdvanceChargeInput())
	assert.Equal(t, shared.CodeInvalidState, shared.ErrorCode(err))
}

// ============================================
// Review transitions
// ============================================

func TestAdvanceCharge_ChangeStatus(t *testing.T) {
	ac := createTestAdvanceCharge(t)
	ac.ClearDomainEvents()

	require.NoError(t, ac.ChangeStatus(ReviewStatusAudited))
	assert.True(t, ac.IsAudited())
	assert.True(t, ac.BalanceDelta(ReviewStatusAudited).Equal(decimal.NewFromInt(100)))

	err := ac.ChangeStatus(ReviewStatusAudited)
	assert.Equal(t, shared.CodeConflict, shared.ErrorCode(err))

	require.NoError(t, ac.ChangeStatus(ReviewStatusUnaudited))
	assert.False(t, ac.IsAudited())
	assert.True(t, ac.BalanceDelta(ReviewStatusUnaudited).Equal(decimal.NewFromInt(-100)))

	events := ac.GetDomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, EventTypeAdvanceChargeAudited, events[0].EventType())
	assert.Equal(t, EventTypeAdvanceChargeUnaudited, events[1].EventType())

	reviewed, ok := events[1].(*AdvanceChargeReviewedEvent)
	require.True(t, ok)
	assert.True(t, reviewed.BalanceDelta.Equal(decimal.NewFromInt(-100)))
}

func TestAdvanceCharge_ChangeStatus_RevalidatesTotals(t *testing.T) {
	ac := createTestAdvanceCharge(t)
	// lines no longer sum to the header total
	ac.Lines = ac.Lines[:1]

	err := ac.ChangeStatus(ReviewStatusAudited)
	assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
	assert.Equal(t, ReviewStatusUnaudited, ac.Status)
}

func TestAdvanceCharge_ChangeStatus_CollectedAboveTotal(t *testing.T) {
	ac := createTestAdvanceCharge(t)
	ac.CollectedAmount = decimal.NewFromInt(500)

	err := ac.ChangeStatus(ReviewStatusAudited)
	assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
}

// ============================================
// Delete
// ============================================

func TestAdvanceCharge_MarkDeleted(t *testing.T) {
	ac := createTestAdvanceCharge(t)

	require.NoError(t, ac.MarkDeleted())
	assert.True(t, ac.IsDeleted())

	assert.Equal(t, shared.CodeNotFound, shared.ErrorCode(ac.MarkDeleted()))
	assert.Equal(t, shared.CodeNotFound, shared.ErrorCode(ac.ChangeStatus(ReviewStatusAudited)))
}

func TestAdvanceCharge_MarkDeleted_AuditedRejected(t *testing.T) {
	ac := createAuditedAdvanceCharge(t)

	err := ac.MarkDeleted()
	assert.Equal(t, shared.CodeInvalidState, shared.ErrorCode(err))
	assert.False(t, ac.IsDeleted())
}
