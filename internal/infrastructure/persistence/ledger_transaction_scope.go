package persistence

import (
	"context"

	appfinance "github.com/erp/ledger/internal/application/finance"
	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/partner"
	"gorm.io/gorm"
)

// GormTransactionScope runs ledger work inside one GORM transaction
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn in a transaction; an error from fn rolls everything back
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appfinance.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) AdvanceCharges() finance.AdvanceChargeRepository {
	return NewGormAdvanceChargeRepository(r.tx)
}

func (r *gormTransactionalRepositories) OpeningBalances() finance.OpeningBalanceRepository {
	return NewGormOpeningBalanceRepository(r.tx)
}

func (r *gormTransactionalRepositories) Members() partner.MemberRepository {
	return NewGormMemberRepository(r.tx)
}

var _ appfinance.TransactionScope = (*GormTransactionScope)(nil)
var _ appfinance.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
