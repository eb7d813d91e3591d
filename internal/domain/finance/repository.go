package finance

import (
	"context"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
)

// AdvanceChargeFilter defines filtering options for advance charge queries
type AdvanceChargeFilter struct {
	shared.PageQuery
	MemberID             *uuid.UUID    // Filter by member
	ReceiptNumber        string        // Exact receipt number
	Status               *ReviewStatus // Filter by review status
	FinancialPersonnelID *uuid.UUID    // Filter by financial personnel
	OperatorID           *uuid.UUID    // Filter by operator
	Remark               string        // Remark contains
	ReceiptDateFrom      *time.Time    // Receipt date range start (inclusive)
	ReceiptDateTo        *time.Time    // Receipt date range end (whole day inclusive)
}

// AdvanceChargeRepository defines the interface for advance charge persistence.
// Soft-deleted charges are invisible to every finder.
type AdvanceChargeRepository interface {
	// FindByIDForTenant loads the charge with its lines and attachments
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*AdvanceCharge, error)

	// FindByIDForUpdate loads the charge and locks its header row until the transaction ends
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*AdvanceCharge, error)

	// FindByReceiptNumber finds a charge by its receipt number
	FindByReceiptNumber(ctx context.Context, tenantID uuid.UUID, receiptNumber string) (*AdvanceCharge, error)

	// FindAllForTenant returns one page of headers (without lines) and the total count
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter AdvanceChargeFilter) ([]AdvanceCharge, int64, error)

	// FindLinesByHeaderIDs loads lines for several headers, keyed by header ID
	FindLinesByHeaderIDs(ctx context.Context, tenantID uuid.UUID, headerIDs []uuid.UUID) (map[uuid.UUID][]AccountItemDetail, error)

	// ExistsByReceiptNumber checks receipt number uniqueness, ignoring excludeID
	ExistsByReceiptNumber(ctx context.Context, tenantID uuid.UUID, receiptNumber string, excludeID uuid.UUID) (bool, error)

	// Create inserts a new charge with its lines and attachments
	Create(ctx context.Context, charge *AdvanceCharge) error

	// SaveWithLock replaces header, lines and attachments when the stored version matches.
	// The stored version and charge.Version are bumped on success; CONCURRENCY_CONFLICT otherwise.
	SaveWithLock(ctx context.Context, charge *AdvanceCharge) error

	// UpdateStatusWithLock persists the review status under the version check
	UpdateStatusWithLock(ctx context.Context, charge *AdvanceCharge) error

	// SoftDeleteWithLock marks header and lines deleted under the version check
	SoftDeleteWithLock(ctx context.Context, charge *AdvanceCharge) error
}

// AccountItemRepository reads ledger lines of any financial document
type AccountItemRepository interface {
	// FindByHeaderID returns the lines of a document ordered by line number
	FindByHeaderID(ctx context.Context, tenantID, headerID uuid.UUID) ([]AccountItemDetail, error)
}

// AccountFlowQuery selects the ledger lines shown in an account flow
type AccountFlowQuery struct {
	PartyKind PartyKind  `json:"party_kind,omitempty"`
	PartyID   *uuid.UUID `json:"party_id,omitempty"`
	AccountID *uuid.UUID `json:"account_id,omitempty"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"` // whole day inclusive
}

// Validate checks that the query names a party or an account
func (q AccountFlowQuery) Validate() error {
	var errs []shared.FieldError
	if q.PartyID == nil && q.AccountID == nil {
		errs = append(errs, shared.FieldError{Field: "partyId", Message: "partyId or accountId is required"})
	}
	if q.PartyID != nil && !q.PartyKind.IsValid() {
		errs = append(errs, shared.FieldError{Field: "partyKind", Message: "is required with partyId"})
	}
	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		errs = append(errs, shared.FieldError{Field: "to", Message: "must not be before from"})
	}
	if len(errs) > 0 {
		return shared.NewValidationError("Invalid account flow query", errs...)
	}
	return nil
}

// AccountFlowReader reads the entries behind an account flow: lines of audited,
// non-deleted documents inside the date range plus every opening balance regardless of date.
type AccountFlowReader interface {
	FindFlowEntries(ctx context.Context, tenantID uuid.UUID, query AccountFlowQuery) ([]AccountFlowEntry, error)
}

// OpeningBalanceRepository defines the interface for opening balance persistence
type OpeningBalanceRepository interface {
	// Create inserts the opening balance document and its line
	Create(ctx context.Context, ob *OpeningBalance) error

	// ExistsFor checks whether the party/account pair already has an opening balance
	ExistsFor(ctx context.Context, tenantID uuid.UUID, partyKind PartyKind, partyID, accountID uuid.UUID) (bool, error)
}
