package partner

import (
	"context"
	"testing"

	"github.com/erp/ledger/internal/domain/partner"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

type capturePublisher struct {
	events []shared.DomainEvent
}

func (p *capturePublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

func TestMemberService_Create(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates member", func(t *testing.T) {
		repo := new(MockMemberRepository)
		pub := &capturePublisher{}
		svc := NewMemberService(repo, 0)
		svc.SetEventPublisher(pub)

		repo.On("ExistsByMemberNumber", mock.Anything, tenantID, "VIP-001").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Member")).Return(nil)

		resp, err := svc.Create(context.Background(), tenantID, CreateMemberRequest{
			MemberNumber: "vip-001",
			Name:         "Alice",
			Phone:        "+86 138 0000 0000",
		})

		require.NoError(t, err)
		assert.Equal(t, "VIP-001", resp.MemberNumber)
		assert.True(t, resp.AdvancePayment.IsZero())
		assert.Equal(t, "enabled", resp.Status)
		require.Len(t, pub.events, 1)
		assert.Equal(t, partner.EventTypeMemberCreated, pub.events[0].EventType())
	})

	t.Run("duplicate number", func(t *testing.T) {
		repo := new(MockMemberRepository)
		svc := NewMemberService(repo, 0)
		repo.On("ExistsByMemberNumber", mock.Anything, tenantID, "VIP-001").Return(true, nil)

		_, err := svc.Create(context.Background(), tenantID, CreateMemberRequest{MemberNumber: "VIP-001", Name: "Alice"})

		assert.Equal(t, shared.CodeAlreadyExists, shared.ErrorCode(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invalid email", func(t *testing.T) {
		repo := new(MockMemberRepository)
		svc := NewMemberService(repo, 0)
		repo.On("ExistsByMemberNumber", mock.Anything, tenantID, "VIP-002").Return(false, nil)

		_, err := svc.Create(context.Background(), tenantID, CreateMemberRequest{MemberNumber: "VIP-002", Name: "Bob", Email: "bob@"})

		assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
	})
}

func TestMemberService_Update(t *testing.T) {
	tenantID := uuid.New()
	member, err := partner.NewMember(tenantID, "M1", "Alice")
	require.NoError(t, err)
	member.AdvancePayment = decimal.NewFromInt(50)

	repo := new(MockMemberRepository)
	repo.On("FindByIDForTenant", mock.Anything, tenantID, member.ID).Return(member, nil)
	repo.On("Save", mock.Anything, member).Return(nil)
	svc := NewMemberService(repo, 0)

	name := "Alice Zhang"
	disabled := false
	resp, err := svc.Update(context.Background(), tenantID, member.ID, UpdateMemberRequest{Name: &name, Enabled: &disabled})

	require.NoError(t, err)
	assert.Equal(t, "Alice Zhang", resp.Name)
	assert.Equal(t, "disabled", resp.Status)
	assert.True(t, resp.AdvancePayment.Equal(decimal.NewFromInt(50)))
}

func TestMemberService_List(t *testing.T) {
	tenantID := uuid.New()
	m1, _ := partner.NewMember(tenantID, "M1", "Alice")
	m2, _ := partner.NewMember(tenantID, "M2", "Bob")

	repo := new(MockMemberRepository)
	repo.On("FindAllForTenant", mock.Anything, tenantID, mock.MatchedBy(func(f partner.MemberFilter) bool {
		return f.Phone == "138" && f.PageSize == 20 && f.Status != nil && *f.Status == partner.MemberStatusEnabled
	})).Return([]partner.Member{*m1, *m2}, int64(2), nil)
	svc := NewMemberService(repo, 20)

	page, err := svc.List(context.Background(), tenantID, MemberListRequest{Phone: "138", Status: "enabled"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 20, page.PageSize)
	assert.Len(t, page.Items, 2)
}

func TestMemberService_GetByID_NotFound(t *testing.T) {
	tenantID := uuid.New()
	id := uuid.New()
	repo := new(MockMemberRepository)
	repo.On("FindByIDForTenant", mock.Anything, tenantID, id).Return(nil, shared.NewNotFoundError("Member", id))

	_, err := NewMemberService(repo, 0).GetByID(context.Background(), tenantID, id)

	assert.Equal(t, shared.CodeNotFound, shared.ErrorCode(err))
}
