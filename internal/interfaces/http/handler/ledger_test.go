package handler

import (
	"net/http"
	"testing"
	"time"

	financeapp "github.com/erp/ledger/internal/application/finance"
	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLedgerRouter(svc *mockLedgerServices) http.Handler {
	return newTestRouter(NewLedgerHandler(svc, svc, svc))
}

func TestLedgerHandler_GetDetailList(t *testing.T) {
	headerID := uuid.New()
	svc := new(mockLedgerServices)
	svc.On("GetDetailList", mock.Anything, testTenantID, headerID).Return([]financeapp.AccountItemView{
		{HeaderID: headerID, LineNo: 1, BillNumber: "YSK202603010001", EachAmount: decimal.RequireFromString("-100.00")},
	}, nil)

	w := doRequest(newLedgerRouter(svc), http.MethodGet, "/api/v1/finance/account-items/"+headerID.String(), "")

	assert.Equal(t, http.StatusOK, w.Code)
	items := decodeResponse(t, w).Data.([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "-100", items[0].(map[string]any)["each_amount"])
}

func TestLedgerHandler_GetAccountFlow(t *testing.T) {
	partyID := uuid.New()

	t.Run("query is forwarded", func(t *testing.T) {
		svc := new(mockLedgerServices)
		svc.On("GetAccountFlow", mock.Anything, testTenantID, mock.MatchedBy(func(q finance.AccountFlowQuery) bool {
			return q.PartyKind == finance.PartyKindMember &&
				q.PartyID != nil && *q.PartyID == partyID &&
				q.AccountID == nil &&
				q.From != nil && q.From.Month() == time.January &&
				q.To != nil && q.To.Month() == time.March
		})).Return([]finance.AccountFlowRow{
			{ReceiptNumber: "QiChu", SubType: finance.DocumentTypeOpeningBalance, Amount: decimal.NewFromInt(50), Balance: decimal.NewFromInt(50)},
			{ReceiptNumber: "YSK202603010001", SubType: finance.DocumentTypeAdvanceCharge, Amount: decimal.NewFromInt(-100), Balance: decimal.NewFromInt(-50)},
		}, nil)

		w := doRequest(newLedgerRouter(svc), http.MethodGet,
			"/api/v1/finance/account-flow?party_kind=member&party_id="+partyID.String()+"&from=2026-01-01&to=2026-03-31", "")

		assert.Equal(t, http.StatusOK, w.Code)
		rows := decodeResponse(t, w).Data.([]any)
		require.Len(t, rows, 2)
		assert.Equal(t, "QiChu", rows[0].(map[string]any)["receipt_number"])
		svc.AssertExpectations(t)
	})

	t.Run("unknown party kind", func(t *testing.T) {
		svc := new(mockLedgerServices)
		w := doRequest(newLedgerRouter(svc), http.MethodGet, "/api/v1/finance/account-flow?party_kind=vendor&party_id="+partyID.String(), "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetAccountFlow")
	})

	t.Run("service validation", func(t *testing.T) {
		svc := new(mockLedgerServices)
		svc.On("GetAccountFlow", mock.Anything, testTenantID, finance.AccountFlowQuery{}).
			Return(nil, finance.AccountFlowQuery{}.Validate())

		w := doRequest(newLedgerRouter(svc), http.MethodGet, "/api/v1/finance/account-flow", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "partyId", resp.Error.Details[0].Field)
	})
}

func TestLedgerHandler_RecordOpeningBalance(t *testing.T) {
	partyID, accountID := uuid.New(), uuid.New()
	body := `{"party_kind":"customer","party_id":"` + partyID.String() + `","account_id":"` + accountID.String() +
		`","amount":"-20.5","balance_date":"2026-01-01T00:00:00Z"}`

	t.Run("created", func(t *testing.T) {
		svc := new(mockLedgerServices)
		svc.On("RecordOpeningBalance", mock.Anything, testTenantID, mock.MatchedBy(func(req financeapp.OpeningBalanceRequest) bool {
			return req.PartyID == partyID && req.Amount.Equal(decimal.RequireFromString("-20.5"))
		})).Return(&financeapp.OpeningBalanceResponse{ID: uuid.New(), ReceiptNumber: "QC202601010001", Amount: decimal.RequireFromString("-20.5"), Status: 1}, nil)

		w := doRequest(newLedgerRouter(svc), http.MethodPost, "/api/v1/finance/opening-balances", body)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := new(mockLedgerServices)
		svc.On("RecordOpeningBalance", mock.Anything, testTenantID, mock.Anything).Return(nil, shared.ErrAlreadyExists)

		w := doRequest(newLedgerRouter(svc), http.MethodPost, "/api/v1/finance/opening-balances", body)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeAlreadyExists, decodeResponse(t, w).Error.Code)
	})

	t.Run("missing party", func(t *testing.T) {
		svc := new(mockLedgerServices)
		w := doRequest(newLedgerRouter(svc), http.MethodPost, "/api/v1/finance/opening-balances", `{"party_kind":"customer"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decodeResponse(t, w).Error.Code)
	})
}
