package finance

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/partner"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockEventPublisher records published events
type MockEventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (m *MockEventPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return nil
}

func (m *MockEventPublisher) EventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.EventType())
	}
	return types
}

// MockAdvanceChargeRepository is a mock implementation of finance.AdvanceChargeRepository
type MockAdvanceChargeRepository struct {
	mock.Mock
}

func (m *MockAdvanceChargeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.AdvanceCharge, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.AdvanceCharge), args.Error(1)
}

func (m *MockAdvanceChargeRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*finance.AdvanceCharge, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.AdvanceCharge), args.Error(1)
}

func (m *MockAdvanceChargeRepository) FindByReceiptNumber(ctx context.Context, tenantID uuid.UUID, receiptNumber string) (*finance.AdvanceCharge, error) {
	args := m.Called(ctx, tenantID, receiptNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.AdvanceCharge), args.Error(1)
}

func (m *MockAdvanceChargeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter finance.AdvanceChargeFilter) ([]finance.AdvanceCharge, int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]finance.AdvanceCharge), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdvanceChargeRepository) FindLinesByHeaderIDs(ctx context.Context, tenantID uuid.UUID, headerIDs []uuid.UUID) (map[uuid.UUID][]finance.AccountItemDetail, error) {
	args := m.Called(ctx, tenantID, headerIDs)
	return args.Get(0).(map[uuid.UUID][]finance.AccountItemDetail), args.Error(1)
}

func (m *MockAdvanceChargeRepository) ExistsByReceiptNumber(ctx context.Context, tenantID uuid.UUID, receiptNumber string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, receiptNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdvanceChargeRepository) Create(ctx context.Context, charge *finance.AdvanceCharge) error {
	return m.Called(ctx, charge).Error(0)
}

func (m *MockAdvanceChargeRepository) SaveWithLock(ctx context.Context, charge *finance.AdvanceCharge) error {
	return m.Called(ctx, charge).Error(0)
}

func (m *MockAdvanceChargeRepository) UpdateStatusWithLock(ctx context.Context, charge *finance.AdvanceCharge) error {
	return m.Called(ctx, charge).Error(0)
}

func (m *MockAdvanceChargeRepository) SoftDeleteWithLock(ctx context.Context, charge *finance.AdvanceCharge) error {
	return m.Called(ctx, charge).Error(0)
}

// MockMemberRepository is a mock implementation of partner.MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Member, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]partner.Member, error) {
	args := m.Called(ctx, tenantID, ids)
	return args.Get(0).([]partner.Member), args.Error(1)
}

func (m *MockMemberRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter partner.MemberFilter) ([]partner.Member, int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]partner.Member), args.Get(1).(int64), args.Error(2)
}

func (m *MockMemberRepository) ExistsByMemberNumber(ctx context.Context, tenantID uuid.UUID, memberNumber string) (bool, error) {
	args := m.Called(ctx, tenantID, memberNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) Save(ctx context.Context, member *partner.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepository) UpdateAdvanceChargeAmount(ctx context.Context, tenantID, memberID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, memberID, delta)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockOpeningBalanceRepository is a mock implementation of finance.OpeningBalanceRepository
type MockOpeningBalanceRepository struct {
	mock.Mock
}

func (m *MockOpeningBalanceRepository) Create(ctx context.Context, ob *finance.OpeningBalance) error {
	return m.Called(ctx, ob).Error(0)
}

func (m *MockOpeningBalanceRepository) ExistsFor(ctx context.Context, tenantID uuid.UUID, partyKind finance.PartyKind, partyID, accountID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, partyKind, partyID, accountID)
	return args.Bool(0), args.Error(1)
}

// MockAccountItemRepository is a mock implementation of finance.AccountItemRepository
type MockAccountItemRepository struct {
	mock.Mock
}

func (m *MockAccountItemRepository) FindByHeaderID(ctx context.Context, tenantID, headerID uuid.UUID) ([]finance.AccountItemDetail, error) {
	args := m.Called(ctx, tenantID, headerID)
	return args.Get(0).([]finance.AccountItemDetail), args.Error(1)
}

// MockAccountFlowReader is a mock implementation of finance.AccountFlowReader
type MockAccountFlowReader struct {
	mock.Mock
}

func (m *MockAccountFlowReader) FindFlowEntries(ctx context.Context, tenantID uuid.UUID, query finance.AccountFlowQuery) ([]finance.AccountFlowEntry, error) {
	args := m.Called(ctx, tenantID, query)
	return args.Get(0).([]finance.AccountFlowEntry), args.Error(1)
}

// MockReceiptNumberGenerator is a mock implementation of ReceiptNumberGenerator
type MockReceiptNumberGenerator struct {
	mock.Mock
}

func (m *MockReceiptNumberGenerator) Next(ctx context.Context, tenantID uuid.UUID, prefix string, at time.Time) (string, error) {
	args := m.Called(ctx, tenantID, prefix, at)
	return args.String(0), args.Error(1)
}

// MockAttachmentStorage is a mock implementation of AttachmentStorage
type MockAttachmentStorage struct {
	mock.Mock
}

func (m *MockAttachmentStorage) PresignDownload(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// memoryReportCache is an in-process ReportCache for tests
type memoryReportCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	gens        map[uuid.UUID]int64
	genErr      error
	invalidated []uuid.UUID
}

func newMemoryReportCache() *memoryReportCache {
	return &memoryReportCache{entries: make(map[string][]byte), gens: make(map[uuid.UUID]int64)}
}

func (c *memoryReportCache) Generation(_ context.Context, tenantID uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.genErr != nil {
		return 0, c.genErr
	}
	return c.gens[tenantID], nil
}

func (c *memoryReportCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memoryReportCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memoryReportCache) InvalidateTenant(_ context.Context, tenantID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, tenantID)
	c.gens[tenantID]++
	c.entries = make(map[string][]byte)
	return nil
}

// recordingExporter keeps the sheets it was asked to write
type recordingExporter struct {
	sheets []Sheet
}

func (e *recordingExporter) Write(_ io.Writer, sheets ...Sheet) error {
	e.sheets = append(e.sheets, sheets...)
	return nil
}

func (e *recordingExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *recordingExporter) FileExtension() string { return ".xlsx" }
