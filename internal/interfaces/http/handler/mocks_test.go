package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	financeapp "github.com/erp/ledger/internal/application/finance"
	partnerapp "github.com/erp/ledger/internal/application/partner"
	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/erp/ledger/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTenantID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

type registrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

func newTestRouter(registrars ...registrar) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Tenant(middleware.DefaultTenantConfig()))
	api := r.Group("/api/v1")
	for _, reg := range registrars {
		reg.RegisterRoutes(api)
	}
	return r
}

func doRequest(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.TenantHeader, testTenantID.String())
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

type mockAdvanceChargeService struct {
	mock.Mock
}

func (m *mockAdvanceChargeService) AddOrUpdate(ctx context.Context, tenantID uuid.UUID, req financeapp.AdvanceChargeRequest) (*financeapp.AdvanceChargeSaved, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeapp.AdvanceChargeSaved), args.Error(1)
}

func (m *mockAdvanceChargeService) GetPageList(ctx context.Context, tenantID uuid.UUID, req financeapp.AdvanceChargeListRequest) (*shared.Paginated[financeapp.AdvanceChargeSummary], error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[financeapp.AdvanceChargeSummary]), args.Error(1)
}

func (m *mockAdvanceChargeService) GetDetailByID(ctx context.Context, tenantID, id uuid.UUID) (*financeapp.AdvanceChargeDetail, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeapp.AdvanceChargeDetail), args.Error(1)
}

func (m *mockAdvanceChargeService) DeleteByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (*financeapp.BatchResult, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeapp.BatchResult), args.Error(1)
}

func (m *mockAdvanceChargeService) UpdateStatusByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID, status int) (*financeapp.BatchResult, error) {
	args := m.Called(ctx, tenantID, ids, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeapp.BatchResult), args.Error(1)
}

func (m *mockAdvanceChargeService) Export(ctx context.Context, tenantID uuid.UUID, req financeapp.AdvanceChargeListRequest, withDetail bool, lang financeapp.ExportLanguage, w io.Writer) error {
	args := m.Called(ctx, tenantID, req, withDetail, lang, w)
	if args.Error(0) == nil {
		_, _ = w.Write([]byte("xlsx-bytes"))
	}
	return args.Error(0)
}

func (m *mockAdvanceChargeService) ExportDetail(ctx context.Context, tenantID uuid.UUID, receiptNumber string, lang financeapp.ExportLanguage, w io.Writer) error {
	args := m.Called(ctx, tenantID, receiptNumber, lang, w)
	if args.Error(0) == nil {
		_, _ = w.Write([]byte("xlsx-bytes"))
	}
	return args.Error(0)
}

func (m *mockAdvanceChargeService) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (m *mockAdvanceChargeService) FileExtension() string {
	return ".xlsx"
}

type mockLedgerServices struct {
	mock.Mock
}

func (m *mockLedgerServices) GetDetailList(ctx context.Context, tenantID, headerID uuid.UUID) ([]financeapp.AccountItemView, error) {
	args := m.Called(ctx, tenantID, headerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]financeapp.AccountItemView), args.Error(1)
}

func (m *mockLedgerServices) GetAccountFlow(ctx context.Context, tenantID uuid.UUID, query finance.AccountFlowQuery) ([]finance.AccountFlowRow, error) {
	args := m.Called(ctx, tenantID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.AccountFlowRow), args.Error(1)
}

func (m *mockLedgerServices) RecordOpeningBalance(ctx context.Context, tenantID uuid.UUID, req financeapp.OpeningBalanceRequest) (*financeapp.OpeningBalanceResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeapp.OpeningBalanceResponse), args.Error(1)
}

type mockMemberService struct {
	mock.Mock
}

func (m *mockMemberService) Create(ctx context.Context, tenantID uuid.UUID, req partnerapp.CreateMemberRequest) (*partnerapp.MemberResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.MemberResponse), args.Error(1)
}

func (m *mockMemberService) Update(ctx context.Context, tenantID, id uuid.UUID, req partnerapp.UpdateMemberRequest) (*partnerapp.MemberResponse, error) {
	args := m.Called(ctx, tenantID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.MemberResponse), args.Error(1)
}

func (m *mockMemberService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*partnerapp.MemberResponse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.MemberResponse), args.Error(1)
}

func (m *mockMemberService) List(ctx context.Context, tenantID uuid.UUID, req partnerapp.MemberListRequest) (*shared.Paginated[partnerapp.MemberResponse], error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[partnerapp.MemberResponse]), args.Error(1)
}
