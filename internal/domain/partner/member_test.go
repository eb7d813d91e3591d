package partner

import (
	"testing"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMember(t *testing.T) *Member {
	m, err := NewMember(uuid.New(), "m-001", "Alice")
	require.NoError(t, err)
	return m
}

func TestNewMember(t *testing.T) {
	m := createTestMember(t)

	assert.Equal(t, "M-001", m.MemberNumber)
	assert.True(t, m.AdvancePayment.IsZero())
	assert.True(t, m.IsEnabled())
	require.Len(t, m.GetDomainEvents(), 1)
	assert.Equal(t, EventTypeMemberCreated, m.GetDomainEvents()[0].EventType())
}

func TestNewMember_Validation(t *testing.T) {
	tests := []struct {
		name   string
		number string
		member string
	}{
		{"empty number", "", "Alice"},
		{"invalid characters", "M 001", "Alice"},
		{"empty name", "M-001", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMember(uuid.New(), tt.number, tt.member)
			assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
		})
	}
}

func TestMember_SetContact(t *testing.T) {
	m := createTestMember(t)

	require.NoError(t, m.SetContact("+86 138-0000-0000", "alice@example.com"))
	assert.Equal(t, "alice@example.com", m.Email)

	assert.Error(t, m.SetContact("call me", ""))
	assert.Error(t, m.SetContact("", "not-an-email"))
	require.NoError(t, m.SetContact("", ""))
	assert.Empty(t, m.Phone)
}

func TestMember_ApplyAdvancePaymentDelta(t *testing.T) {
	m := createTestMember(t)
	m.ClearDomainEvents()

	require.NoError(t, m.ApplyAdvancePaymentDelta(decimal.NewFromInt(100)))
	assert.True(t, m.AdvancePayment.Equal(decimal.NewFromInt(100)))

	err := m.ApplyAdvancePaymentDelta(decimal.NewFromInt(-101))
	assert.Equal(t, shared.CodeInsufficientBalance, shared.ErrorCode(err))
	assert.True(t, m.AdvancePayment.Equal(decimal.NewFromInt(100)))

	err = m.ApplyAdvancePaymentDelta(decimal.Zero)
	assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))

	require.NoError(t, m.ApplyAdvancePaymentDelta(decimal.NewFromInt(-100)))
	assert.True(t, m.AdvancePayment.IsZero())
	assert.Len(t, m.GetDomainEvents(), 2)
}

func TestMember_EnableDisable(t *testing.T) {
	m := createTestMember(t)

	require.NoError(t, m.Disable())
	assert.False(t, m.IsEnabled())
	assert.Equal(t, shared.CodeInvalidState, shared.ErrorCode(m.Disable()))
	require.NoError(t, m.Enable())
	assert.Equal(t, shared.CodeInvalidState, shared.ErrorCode(m.Enable()))
}
