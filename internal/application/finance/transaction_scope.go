package finance

import (
	"context"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/partner"
)

// NoOpTransactionScope runs fn against plain repositories without a transaction.
// Used in tests and wherever atomicity is provided elsewhere.
type NoOpTransactionScope struct {
	charges         finance.AdvanceChargeRepository
	openingBalances finance.OpeningBalanceRepository
	members         partner.MemberRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	charges finance.AdvanceChargeRepository,
	openingBalances finance.OpeningBalanceRepository,
	members partner.MemberRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		charges:         charges,
		openingBalances: openingBalances,
		members:         members,
	}
}

// Execute calls fn directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// AdvanceCharges returns the advance charge repository
func (s *NoOpTransactionScope) AdvanceCharges() finance.AdvanceChargeRepository {
	return s.charges
}

// OpeningBalances returns the opening balance repository
func (s *NoOpTransactionScope) OpeningBalances() finance.OpeningBalanceRepository {
	return s.openingBalances
}

// Members returns the member repository
func (s *NoOpTransactionScope) Members() partner.MemberRepository {
	return s.members
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
