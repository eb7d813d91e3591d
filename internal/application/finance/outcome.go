package finance

import (
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
)

// ItemOutcome reports the result of a batch operation for one id
type ItemOutcome struct {
	ID      uuid.UUID `json:"id"`
	Success bool      `json:"success"`
	Code    string    `json:"code,omitempty"`
	Message string    `json:"message,omitempty"`
}

// BatchResult collects per-id outcomes. A failed id never aborts its siblings.
type BatchResult struct {
	Outcomes     []ItemOutcome `json:"outcomes"`
	SuccessCount int           `json:"success_count"`
	FailureCount int           `json:"failure_count"`
}

func (r *BatchResult) succeed(id uuid.UUID) {
	r.Outcomes = append(r.Outcomes, ItemOutcome{ID: id, Success: true})
	r.SuccessCount++
}

// fail records err for id. Non-domain errors are reported with a generic
// code so storage details never reach the caller.
func (r *BatchResult) fail(id uuid.UUID, err error) {
	code := shared.ErrorCode(err)
	msg := "An unexpected error occurred"
	if code == "" {
		code = "INTERNAL_ERROR"
	} else {
		msg = domainMessage(err)
	}
	r.Outcomes = append(r.Outcomes, ItemOutcome{ID: id, Code: code, Message: msg})
	r.FailureCount++
}

func domainMessage(err error) string {
	if de := asDomainError(err); de != nil {
		return de.Message
	}
	return err.Error()
}
