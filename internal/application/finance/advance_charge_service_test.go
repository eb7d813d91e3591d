package finance

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/partner"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type advanceChargeFixture struct {
	tenantID  uuid.UUID
	member    *partner.Member
	charges   *MockAdvanceChargeRepository
	members   *MockMemberRepository
	numbers   *MockReceiptNumberGenerator
	storage   *MockAttachmentStorage
	publisher *MockEventPublisher
	exporter  *recordingExporter
	svc       *AdvanceChargeService
}

func newAdvanceChargeFixture(t *testing.T) *advanceChargeFixture {
	t.Helper()
	tenantID := uuid.New()
	member, err := partner.NewMember(tenantID, "M001", "Alice")
	require.NoError(t, err)

	f := &advanceChargeFixture{
		tenantID:  tenantID,
		member:    member,
		charges:   new(MockAdvanceChargeRepository),
		members:   new(MockMemberRepository),
		numbers:   new(MockReceiptNumberGenerator),
		storage:   new(MockAttachmentStorage),
		publisher: &MockEventPublisher{},
		exporter:  &recordingExporter{},
	}
	scope := NewNoOpTransactionScope(f.charges, new(MockOpeningBalanceRepository), f.members)
	f.svc = NewAdvanceChargeService(f.charges, f.members, scope, f.numbers, f.exporter, AdvanceChargeConfig{
		ReceiptPrefix: "YSK",
		MaxBatchSize:  10,
	})
	f.svc.SetEventPublisher(f.publisher)
	f.svc.SetAttachmentStorage(f.storage)
	f.svc.now = func() time.Time { return time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC) }
	return f
}

func (f *advanceChargeFixture) request(total, collected string) AdvanceChargeRequest {
	return AdvanceChargeRequest{
		MemberID:        f.member.ID,
		ReceiptDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		TotalAmount:     decimal.RequireFromString(total),
		CollectedAmount: decimal.RequireFromString(collected),
		Lines: []AdvanceChargeLineRequest{
			{AccountID: uuid.New(), AccountName: "Cash", Amount: decimal.RequireFromString(total)},
		},
	}
}

func (f *advanceChargeFixture) charge(t *testing.T, collected string, status finance.ReviewStatus) *finance.AdvanceCharge {
	t.Helper()
	req := f.request("100", collected)
	ac, err := finance.NewAdvanceCharge(f.tenantID, "YSK202401150001", req.toInput(f.member.Name))
	require.NoError(t, err)
	ac.Status = status
	ac.ClearDomainEvents()
	return ac
}

func decimalEq(v int64) any {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(v)) })
}

func TestAdvanceChargeService_AddOrUpdate_Create(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	ctx := context.Background()

	f.members.On("FindByIDForTenant", mock.Anything, f.tenantID, f.member.ID).Return(f.member, nil)
	f.numbers.On("Next", mock.Anything, f.tenantID, "YSK", mock.Anything).Return("YSK202401150001", nil)
	f.charges.On("ExistsByReceiptNumber", mock.Anything, f.tenantID, "YSK202401150001", uuid.Nil).Return(false, nil)
	f.charges.On("Create", mock.Anything, mock.MatchedBy(func(ac *finance.AdvanceCharge) bool {
		return ac.MemberName == "Alice" && ac.Status == finance.ReviewStatusUnaudited
	})).Return(nil)

	saved, err := f.svc.AddOrUpdate(ctx, f.tenantID, f.request("100", "80"))

	require.NoError(t, err)
	assert.True(t, saved.Created)
	assert.Equal(t, "YSK202401150001", saved.ReceiptNumber)
	assert.Equal(t, []string{finance.EventTypeAdvanceChargeCreated}, f.publisher.EventTypes())
	f.charges.AssertExpectations(t)
}

func TestAdvanceChargeService_AddOrUpdate_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f *advanceChargeFixture, req *AdvanceChargeRequest)
		wantField string
	}{
		{
			name: "line total differs from header total",
			mutate: func(_ *advanceChargeFixture, req *AdvanceChargeRequest) {
				req.TotalAmount = decimal.NewFromInt(90)
				req.CollectedAmount = decimal.NewFromInt(50)
			},
			wantField: "totalAmount",
		},
		{
			name: "collected above total",
			mutate: func(_ *advanceChargeFixture, req *AdvanceChargeRequest) {
				req.CollectedAmount = decimal.NewFromInt(120)
			},
			wantField: "collectedAmount",
		},
		{
			name: "no lines",
			mutate: func(_ *advanceChargeFixture, req *AdvanceChargeRequest) {
				req.Lines = nil
			},
			wantField: "lines",
		},
		{
			name: "missing receipt date",
			mutate: func(_ *advanceChargeFixture, req *AdvanceChargeRequest) {
				req.ReceiptDate = time.Time{}
			},
			wantField: "receiptDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAdvanceChargeFixture(t)
			f.members.On("FindByIDForTenant", mock.Anything, f.tenantID, f.member.ID).Return(f.member, nil)
			f.numbers.On("Next", mock.Anything, f.tenantID, "YSK", mock.Anything).Return("YSK202401150002", nil)

			req := f.request("100", "80")
			tt.mutate(f, &req)

			_, err := f.svc.AddOrUpdate(context.Background(), f.tenantID, req)

			require.Error(t, err)
			var de *shared.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, shared.CodeValidation, de.Code)
			fields := make([]string, 0, len(de.Details))
			for _, d := range de.Details {
				fields = append(fields, d.Field)
			}
			assert.Contains(t, fields, tt.wantField)
			f.charges.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAdvanceChargeService_AddOrUpdate_UnknownMember(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	f.members.On("FindByIDForTenant", mock.Anything, f.tenantID, f.member.ID).
		Return(nil, shared.NewNotFoundError("Member", f.member.ID))

	_, err := f.svc.AddOrUpdate(context.Background(), f.tenantID, f.request("100", "80"))

	require.Error(t, err)
	assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
	assert.Equal(t, "memberId", asDomainError(err).Details[0].Field)
}

func TestAdvanceChargeService_AddOrUpdate_DuplicateReceiptNumber(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	f.members.On("FindByIDForTenant", mock.Anything, f.tenantID, f.member.ID).Return(f.member, nil)
	f.charges.On("ExistsByReceiptNumber", mock.Anything, f.tenantID, "YSK-MANUAL", uuid.Nil).Return(true, nil)

	req := f.request("100", "80")
	req.ReceiptNumber = "YSK-MANUAL"
	_, err := f.svc.AddOrUpdate(context.Background(), f.tenantID, req)

	assert.Equal(t, shared.CodeAlreadyExists, shared.ErrorCode(err))
	f.numbers.AssertNotCalled(t, "Next", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.charges.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdvanceChargeService_AddOrUpdate_Update(t *testing.T) {
	t.Run("audited charge cannot be edited", func(t *testing.T) {
		f := newAdvanceChargeFixture(t)
		existing := f.charge(t, "80", finance.ReviewStatusAudited)
		f.members.On("FindByIDForTenant", mock.Anything, f.tenantID, f.member.ID).Return(f.member, nil)
		f.charges.On("FindByIDForUpdate", mock.Anything, f.tenantID, existing.ID).Return(existing, nil)

		req := f.request("100", "50")
		req.ID = &existing.ID
		_, err := f.svc.AddOrUpdate(context.Background(), f.tenantID, req)

		assert.Equal(t, shared.CodeInvalidState, shared.ErrorCode(err))
		f.charges.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("dropped attachments are released", func(t *testing.T) {
		f := newAdvanceChargeFixture(t)
		existing := f.charge(t, "80", finance.ReviewStatusUnaudited)
		existing.Files = []finance.Attachment{
			{ID: uuid.New(), FileName: "a.png", StorageKey: "tenant/a.png"},
			{ID: uuid.New(), FileName: "b.png", StorageKey: "tenant/b.png"},
		}
		f.members.On("FindByIDForTenant", mock.Anything, f.tenantID, f.member.ID).Return(f.member, nil)
		f.charges.On("FindByIDForUpdate", mock.Anything, f.tenantID, existing.ID).Return(existing, nil)
		f.charges.On("SaveWithLock", mock.Anything, existing).Return(nil)
		f.storage.On("Delete", mock.Anything, "tenant/a.png").Return(errors.New("bucket unavailable"))

		req := f.request("100", "60")
		req.ID = &existing.ID
		req.ReceiptNumber = "IGNORED"
		req.Files = []AttachmentRequest{{FileName: "b.png", StorageKey: "tenant/b.png"}}
		saved, err := f.svc.AddOrUpdate(context.Background(), f.tenantID, req)

		require.NoError(t, err)
		assert.False(t, saved.Created)
		assert.Equal(t, "YSK202401150001", saved.ReceiptNumber)
		assert.True(t, existing.CollectedAmount.Equal(decimal.NewFromInt(60)))
		f.storage.AssertExpectations(t)
		assert.Equal(t, []string{finance.EventTypeAdvanceChargeUpdated}, f.publisher.EventTypes())
	})
}

func TestAdvanceChargeService_UpdateStatusByIDs_RoundTrip(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	ctx := context.Background()
	ac := f.charge(t, "80", finance.ReviewStatusUnaudited)

	f.charges.On("FindByIDForUpdate", mock.Anything, f.tenantID, ac.ID).Return(ac, nil)
	f.charges.On("UpdateStatusWithLock", mock.Anything, ac).Return(nil)
	f.members.On("UpdateAdvanceChargeAmount", mock.Anything, f.tenantID, f.member.ID, decimalEq(80)).
		Return(decimal.NewFromInt(80), nil).Once()
	f.members.On("UpdateAdvanceChargeAmount", mock.Anything, f.tenantID, f.member.ID, decimalEq(-80)).
		Return(decimal.Zero, nil).Once()

	result, err := f.svc.UpdateStatusByIDs(ctx, f.tenantID, []uuid.UUID{ac.ID}, int(finance.ReviewStatusAudited))
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, finance.ReviewStatusAudited, ac.Status)

	result, err = f.svc.UpdateStatusByIDs(ctx, f.tenantID, []uuid.UUID{ac.ID}, int(finance.ReviewStatusUnaudited))
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, finance.ReviewStatusUnaudited, ac.Status)

	f.members.AssertExpectations(t)
	assert.Equal(t, []string{
		finance.EventTypeAdvanceChargeAudited,
		finance.EventTypeAdvanceChargeUnaudited,
	}, f.publisher.EventTypes())
}

func TestAdvanceChargeService_UpdateStatusByIDs_MixedBatch(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	ok := f.charge(t, "0", finance.ReviewStatusUnaudited)
	already := f.charge(t, "30", finance.ReviewStatusAudited)
	missing := uuid.New()

	f.charges.On("FindByIDForUpdate", mock.Anything, f.tenantID, ok.ID).Return(ok, nil)
	f.charges.On("FindByIDForUpdate", mock.Anything, f.tenantID, already.ID).Return(already, nil)
	f.charges.On("FindByIDForUpdate", mock.Anything, f.tenantID, missing).
		Return(nil, shared.NewNotFoundError("Advance charge", missing))
	f.charges.On("UpdateStatusWithLock", mock.Anything, ok).Return(nil)

	result, err := f.svc.UpdateStatusByIDs(context.Background(), f.tenantID,
		[]uuid.UUID{ok.ID, already.ID, missing, ok.ID}, int(finance.ReviewStatusAudited))

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 3)
	assert.True(t, result.Outcomes[0].Success)
	assert.Equal(t, shared.CodeConflict, result.Outcomes[1].Code)
	assert.Equal(t, shared.CodeNotFound, result.Outcomes[2].Code)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 2, result.FailureCount)
	// zero collected amount never touches the member balance
	f.members.AssertNotCalled(t, "UpdateAdvanceChargeAmount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdvanceChargeService_UpdateStatusByIDs_InsufficientBalance(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	ac := f.charge(t, "80", finance.ReviewStatusAudited)

	f.charges.On("FindByIDForUpdate", mock.Anything, f.tenantID, ac.ID).Return(ac, nil)
	f.members.On("UpdateAdvanceChargeAmount", mock.Anything, f.tenantID, f.member.ID, decimalEq(-80)).
		Return(decimal.Zero, shared.NewDomainError(shared.CodeInsufficientBalance, "Advance payment would become negative"))

	result, err := f.svc.UpdateStatusByIDs(context.Background(), f.tenantID, []uuid.UUID{ac.ID}, int(finance.ReviewStatusUnaudited))

	require.NoError(t, err)
	assert.Equal(t, shared.CodeInsufficientBalance, result.Outcomes[0].Code)
	f.charges.AssertNotCalled(t, "UpdateStatusWithLock", mock.Anything, mock.Anything)
	assert.Empty(t, f.publisher.EventTypes())
}

func TestAdvanceChargeService_UpdateStatusByIDs_RejectsRequest(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	tooMany := make([]uuid.UUID, 11)
	for i := range tooMany {
		tooMany[i] = uuid.New()
	}

	tests := []struct {
		name   string
		ids    []uuid.UUID
		status int
	}{
		{"unknown status", []uuid.UUID{uuid.New()}, 7},
		{"no ids", nil, 1},
		{"batch too large", tooMany, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.UpdateStatusByIDs(context.Background(), f.tenantID, tt.ids, tt.status)
			assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
		})
	}
}

func TestAdvanceChargeService_DeleteByIDs(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	unaudited := f.charge(t, "10", finance.ReviewStatusUnaudited)
	audited := f.charge(t, "10", finance.ReviewStatusAudited)
	missing := uuid.New()

	f.charges.On("FindByIDForUpdate", mock.Anything, f.tenantID, unaudited.ID).Return(unaudited, nil)
	f.charges.On("FindByIDForUpdate", mock.Anything, f.tenantID, audited.ID).Return(audited, nil)
	f.charges.On("FindByIDForUpdate", mock.Anything, f.tenantID, missing).
		Return(nil, shared.NewNotFoundError("Advance charge", missing))
	f.charges.On("SoftDeleteWithLock", mock.Anything, unaudited).Return(nil)

	result, err := f.svc.DeleteByIDs(context.Background(), f.tenantID, []uuid.UUID{unaudited.ID, audited.ID, missing})

	require.NoError(t, err)
	assert.True(t, result.Outcomes[0].Success)
	assert.Equal(t, shared.CodeInvalidState, result.Outcomes[1].Code)
	assert.Equal(t, shared.CodeNotFound, result.Outcomes[2].Code)
	assert.True(t, unaudited.IsDeleted())
	assert.False(t, audited.IsDeleted())
	assert.Equal(t, []string{finance.EventTypeAdvanceChargeDeleted}, f.publisher.EventTypes())
}

func TestAdvanceChargeService_GetDetailByID(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	ac := f.charge(t, "80", finance.ReviewStatusAudited)
	ac.Files = []finance.Attachment{
		{ID: uuid.New(), FileName: "slip.pdf", StorageKey: "tenant/slip.pdf"},
		{ID: uuid.New(), FileName: "photo.png", URL: "https://cdn.example.com/photo.png"},
	}
	f.member.AdvancePayment = decimal.NewFromInt(80)

	f.charges.On("FindByIDForTenant", mock.Anything, f.tenantID, ac.ID).Return(ac, nil)
	f.members.On("FindByIDForTenant", mock.Anything, f.tenantID, f.member.ID).Return(f.member, nil)
	f.storage.On("PresignDownload", mock.Anything, "tenant/slip.pdf").Return("https://s3.example.com/slip?sig=1", nil)

	detail, err := f.svc.GetDetailByID(context.Background(), f.tenantID, ac.ID)

	require.NoError(t, err)
	assert.Equal(t, "Alice", detail.MemberName)
	assert.Equal(t, "audited", detail.StatusLabel)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, "100", detail.Lines[0].EachAmount.String())
	assert.Equal(t, "https://s3.example.com/slip?sig=1", detail.Files[0].DownloadURL)
	assert.Empty(t, detail.Files[1].DownloadURL)
	require.NotNil(t, detail.MemberAdvancePayment)
	assert.True(t, detail.MemberAdvancePayment.Equal(decimal.NewFromInt(80)))
	f.storage.AssertExpectations(t)
}

func TestAdvanceChargeService_GetDetailByID_RoundsMemberBalance(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	ac := f.charge(t, "80", finance.ReviewStatusAudited)
	f.member.AdvancePayment = decimal.RequireFromString("12.3456")

	f.charges.On("FindByIDForTenant", mock.Anything, f.tenantID, ac.ID).Return(ac, nil)
	f.members.On("FindByIDForTenant", mock.Anything, f.tenantID, f.member.ID).Return(f.member, nil)

	detail, err := f.svc.GetDetailByID(context.Background(), f.tenantID, ac.ID)

	require.NoError(t, err)
	require.NotNil(t, detail.MemberAdvancePayment)
	assert.Equal(t, "12.35", detail.MemberAdvancePayment.String())
	assert.Equal(t, "12.3456", f.member.AdvancePayment.String(), "the stored balance is left untouched")
}

func TestAdvanceChargeService_GetPageList(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	ac := f.charge(t, "80", finance.ReviewStatusUnaudited)
	status := 0

	f.charges.On("FindAllForTenant", mock.Anything, f.tenantID, mock.MatchedBy(func(filter finance.AdvanceChargeFilter) bool {
		return filter.Status != nil && *filter.Status == finance.ReviewStatusUnaudited && filter.PageSize == shared.DefaultPageSize
	})).Return([]finance.AdvanceCharge{*ac}, int64(11), nil)

	page, err := f.svc.GetPageList(context.Background(), f.tenantID, AdvanceChargeListRequest{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, int64(11), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, ac.ReceiptNumber, page.Items[0].ReceiptNumber)
}

func TestAdvanceChargeService_Export(t *testing.T) {
	f := newAdvanceChargeFixture(t)
	ac := f.charge(t, "80", finance.ReviewStatusAudited)

	f.charges.On("FindAllForTenant", mock.Anything, f.tenantID, mock.Anything).
		Return([]finance.AdvanceCharge{*ac}, int64(1), nil)
	f.charges.On("FindLinesByHeaderIDs", mock.Anything, f.tenantID, []uuid.UUID{ac.ID}).
		Return(map[uuid.UUID][]finance.AccountItemDetail{ac.ID: ac.Lines}, nil)

	var buf bytes.Buffer
	err := f.svc.Export(context.Background(), f.tenantID, AdvanceChargeListRequest{}, true, ExportLanguageEN, &buf)

	require.NoError(t, err)
	require.Len(t, f.exporter.sheets, 2)
	main := f.exporter.sheets[0]
	assert.Equal(t, "Advance Charges", main.Name)
	assert.Equal(t, "Member", main.Columns[0].Header)
	assert.Equal(t, []any{"Alice", "YSK202401150001", "2024-01-15", 80.0, 100.0, "", "", "", "Audited"}, main.Rows[0])
	detail := f.exporter.sheets[1]
	require.Len(t, detail.Rows, 1)
	assert.Equal(t, "Cash", detail.Rows[0][2])
}

func TestResolveExportLanguage(t *testing.T) {
	tests := []struct {
		header   string
		fallback ExportLanguage
		want     ExportLanguage
	}{
		{"", ExportLanguageZH, ExportLanguageZH},
		{"", ExportLanguageEN, ExportLanguageEN},
		{"en-US,en;q=0.9", ExportLanguageZH, ExportLanguageEN},
		{"zh-CN,zh;q=0.9,en;q=0.5", ExportLanguageEN, ExportLanguageZH},
		{"de-DE", ExportLanguageEN, ExportLanguageEN},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveExportLanguage(tt.header, tt.fallback))
		})
	}
}
