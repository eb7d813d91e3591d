package partner

import (
	"context"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberFilter defines filtering options for member queries
type MemberFilter struct {
	shared.PageQuery
	MemberNumber string        // Member number contains
	Phone        string        // Phone contains
	Status       *MemberStatus // Filter by status
	CreatedFrom  *time.Time    // Creation date range start
	CreatedTo    *time.Time    // Creation date range end (whole day inclusive)
}

// MemberRepository defines the interface for member persistence
type MemberRepository interface {
	// FindByIDForTenant finds a member by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Member, error)

	// FindByIDs finds several members at once
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]Member, error)

	// FindAllForTenant returns one page of members and the total count
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter MemberFilter) ([]Member, int64, error)

	// ExistsByMemberNumber checks member number uniqueness within a tenant
	ExistsByMemberNumber(ctx context.Context, tenantID uuid.UUID, memberNumber string) (bool, error)

	// Save creates or updates a member
	Save(ctx context.Context, member *Member) error

	// UpdateAdvanceChargeAmount adds delta to the member's advance payment as a single
	// guarded update. It fails with VALIDATION_ERROR for a zero delta, NOT_FOUND when the
	// member does not exist and INSUFFICIENT_BALANCE when the result would be negative.
	// It returns the balance after the change.
	UpdateAdvanceChargeAmount(ctx context.Context, tenantID, memberID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
}
