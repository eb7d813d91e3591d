package persistence

import (
	"context"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOpeningBalanceRepository implements OpeningBalanceRepository using GORM
type GormOpeningBalanceRepository struct {
	db *gorm.DB
}

// NewGormOpeningBalanceRepository creates a new GormOpeningBalanceRepository
func NewGormOpeningBalanceRepository(db *gorm.DB) *GormOpeningBalanceRepository {
	return &GormOpeningBalanceRepository{db: db}
}

// Create inserts the opening balance document and its line
func (r *GormOpeningBalanceRepository) Create(ctx context.Context, ob *finance.OpeningBalance) error {
	model := models.OpeningBalanceModelFromDomain(ob)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return translateWriteError(err, "Opening balance "+ob.ReceiptNumber)
		}
		return insertChildren(tx, model)
	})
}

// ExistsFor checks whether the party/account pair already has an opening balance
func (r *GormOpeningBalanceRepository) ExistsFor(ctx context.Context, tenantID uuid.UUID, partyKind finance.PartyKind, partyID, accountID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FinancialDocumentModel{}).
		Where("tenant_id = ? AND document_type = ?", tenantID, finance.DocumentTypeOpeningBalance).
		Where("party_kind = ? AND party_id = ? AND account_id = ?", partyKind, partyID, accountID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormOpeningBalanceRepository implements OpeningBalanceRepository
var _ finance.OpeningBalanceRepository = (*GormOpeningBalanceRepository)(nil)
