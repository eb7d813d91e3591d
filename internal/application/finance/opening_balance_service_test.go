package finance

import (
	"context"
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOpeningBalanceFixture() (*OpeningBalanceService, *MockOpeningBalanceRepository, *MockReceiptNumberGenerator, *MockEventPublisher) {
	repo := new(MockOpeningBalanceRepository)
	numbers := new(MockReceiptNumberGenerator)
	publisher := &MockEventPublisher{}
	scope := NewNoOpTransactionScope(new(MockAdvanceChargeRepository), repo, new(MockMemberRepository))
	svc := NewOpeningBalanceService(scope, numbers, "")
	svc.SetEventPublisher(publisher)
	return svc, repo, numbers, publisher
}

func TestOpeningBalanceService_RecordOpeningBalance(t *testing.T) {
	tenantID := uuid.New()
	req := OpeningBalanceRequest{
		PartyKind:   "supplier",
		PartyID:     uuid.New(),
		PartyName:   "Acme Supplies",
		AccountID:   uuid.New(),
		AccountName: "Bank",
		Amount:      decimal.RequireFromString("-250.505"),
		BalanceDate: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	t.Run("books an audited document", func(t *testing.T) {
		svc, repo, numbers, publisher := newOpeningBalanceFixture()
		numbers.On("Next", mock.Anything, tenantID, "QC", mock.Anything).Return("QC202401150001", nil)
		repo.On("ExistsFor", mock.Anything, tenantID, finance.PartyKindSupplier, req.PartyID, req.AccountID).Return(false, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(ob *finance.OpeningBalance) bool {
			return ob.Status == finance.ReviewStatusAudited && ob.Line.BillNumber == nil
		})).Return(nil)

		resp, err := svc.RecordOpeningBalance(context.Background(), tenantID, req)

		require.NoError(t, err)
		assert.Equal(t, "QC202401150001", resp.ReceiptNumber)
		assert.Equal(t, int(finance.ReviewStatusAudited), resp.Status)
		assert.Equal(t, "-250.51", resp.Amount.String())
		assert.Equal(t, []string{finance.EventTypeOpeningBalanceRecorded}, publisher.EventTypes())
		repo.AssertExpectations(t)
	})

	t.Run("second opening balance for the pair is rejected", func(t *testing.T) {
		svc, repo, numbers, publisher := newOpeningBalanceFixture()
		numbers.On("Next", mock.Anything, tenantID, "QC", mock.Anything).Return("QC202401150002", nil)
		repo.On("ExistsFor", mock.Anything, tenantID, finance.PartyKindSupplier, req.PartyID, req.AccountID).Return(true, nil)

		_, err := svc.RecordOpeningBalance(context.Background(), tenantID, req)

		assert.Equal(t, shared.CodeAlreadyExists, shared.ErrorCode(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Empty(t, publisher.EventTypes())
	})

	t.Run("unknown party kind", func(t *testing.T) {
		svc, _, numbers, _ := newOpeningBalanceFixture()
		numbers.On("Next", mock.Anything, tenantID, "QC", mock.Anything).Return("QC202401150003", nil)

		bad := req
		bad.PartyKind = "employee"
		_, err := svc.RecordOpeningBalance(context.Background(), tenantID, bad)

		assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
	})
}
