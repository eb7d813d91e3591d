package finance

import (
	"testing"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocument struct {
	status   ReviewStatus
	declared decimal.Decimal
	lines    decimal.Decimal
}

func (f *fakeDocument) ReviewStatus() ReviewStatus            { return f.status }
func (f *fakeDocument) DeclaredTotal() decimal.Decimal        { return f.declared }
func (f *fakeDocument) LineTotal() decimal.Decimal            { return f.lines }
func (f *fakeDocument) applyReviewStatus(status ReviewStatus) { f.status = status }

func TestParseReviewStatus(t *testing.T) {
	s, err := ParseReviewStatus(1)
	require.NoError(t, err)
	assert.Equal(t, ReviewStatusAudited, s)

	_, err = ParseReviewStatus(2)
	assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
}

func TestReviewStateMachine_Transition(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	tests := []struct {
		name     string
		doc      *fakeDocument
		target   ReviewStatus
		wantCode string
		want     ReviewStatus
	}{
		{"audit balanced document", &fakeDocument{ReviewStatusUnaudited, hundred, hundred}, ReviewStatusAudited, "", ReviewStatusAudited},
		{"unaudit audited document", &fakeDocument{ReviewStatusAudited, hundred, hundred}, ReviewStatusUnaudited, "", ReviewStatusUnaudited},
		{"audit with mismatched totals", &fakeDocument{ReviewStatusUnaudited, hundred, decimal.NewFromInt(90)}, ReviewStatusAudited, shared.CodeValidation, ReviewStatusUnaudited},
		{"unaudit ignores totals", &fakeDocument{ReviewStatusAudited, hundred, decimal.NewFromInt(90)}, ReviewStatusUnaudited, "", ReviewStatusUnaudited},
		{"already audited", &fakeDocument{ReviewStatusAudited, hundred, hundred}, ReviewStatusAudited, shared.CodeConflict, ReviewStatusAudited},
		{"already unaudited", &fakeDocument{ReviewStatusUnaudited, hundred, hundred}, ReviewStatusUnaudited, shared.CodeConflict, ReviewStatusUnaudited},
		{"unknown target", &fakeDocument{ReviewStatusUnaudited, hundred, hundred}, ReviewStatus(7), shared.CodeValidation, ReviewStatusUnaudited},
		{"corrupt current status", &fakeDocument{ReviewStatus(9), hundred, hundred}, ReviewStatusAudited, shared.CodeInvalidState, ReviewStatus(9)},
	}

	var machine ReviewStateMachine
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := machine.Transition(tt.doc, tt.target)
			if tt.wantCode == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, shared.ErrorCode(err))
			}
			assert.Equal(t, tt.want, tt.doc.status)
		})
	}
}

func TestReviewStateMachine_EditAndDelete(t *testing.T) {
	var machine ReviewStateMachine
	unaudited := &fakeDocument{status: ReviewStatusUnaudited}
	audited := &fakeDocument{status: ReviewStatusAudited}

	assert.NoError(t, machine.EnsureEditable(unaudited))
	assert.NoError(t, machine.EnsureDeletable(unaudited))
	assert.Equal(t, shared.CodeInvalidState, shared.ErrorCode(machine.EnsureEditable(audited)))
	assert.Equal(t, shared.CodeInvalidState, shared.ErrorCode(machine.EnsureDeletable(audited)))
}
