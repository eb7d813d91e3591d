package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoneyDirection_Apply(t *testing.T) {
	tests := []struct {
		name      string
		direction MoneyDirection
		magnitude string
		want      string
	}{
		{"inbound keeps magnitude", DirectionInbound, "50", "50"},
		{"outbound negates", DirectionOutbound, "50", "-50"},
		{"neutral keeps positive", DirectionNeutral, "50", "50"},
		{"neutral flips negative", DirectionNeutral, "-50", "50"},
		{"outbound of zero", DirectionOutbound, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.direction.Apply(decimal.RequireFromString(tt.magnitude))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestDocumentType_Direction(t *testing.T) {
	tests := []struct {
		docType DocumentType
		want    MoneyDirection
	}{
		{DocumentTypeAdvanceCharge, DirectionInbound},
		{DocumentTypeReceipt, DirectionInbound},
		{DocumentTypeIncome, DirectionInbound},
		{DocumentTypePayment, DirectionOutbound},
		{DocumentTypeExpense, DirectionOutbound},
		{DocumentTypeTransfer, DirectionNeutral},
		{DocumentTypeOpeningBalance, DirectionNeutral},
		{DocumentType("something_else"), DirectionNeutral},
	}

	for _, tt := range tests {
		t.Run(string(tt.docType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.docType.Direction())
		})
	}
}

func TestDocumentType_IsValid(t *testing.T) {
	assert.True(t, DocumentTypeAdvanceCharge.IsValid())
	assert.True(t, DocumentTypeOpeningBalance.IsValid())
	assert.False(t, DocumentType("").IsValid())
	assert.False(t, DocumentType("ADVANCE").IsValid())
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.345", "12.35"},
		{"-12.345", "-12.35"},
		{"12.344", "12.34"},
		{"-0.005", "-0.01"},
		{"0", "0"},
		{"100", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := RoundMoney(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRoundMagnitude(t *testing.T) {
	assert.Equal(t, "12.35", RoundMagnitude(decimal.RequireFromString("-12.345")).String())
	assert.Equal(t, "0.5", RoundMagnitude(decimal.RequireFromString("0.499")).String())
}
