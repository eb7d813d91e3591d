package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAdvanceChargeRepository implements AdvanceChargeRepository using GORM
type GormAdvanceChargeRepository struct {
	db *gorm.DB
}

// NewGormAdvanceChargeRepository creates a new GormAdvanceChargeRepository
func NewGormAdvanceChargeRepository(db *gorm.DB) *GormAdvanceChargeRepository {
	return &GormAdvanceChargeRepository{db: db}
}

func (r *GormAdvanceChargeRepository) scoped(ctx context.Context, tenantID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.FinancialDocumentModel{}).
		Where("tenant_id = ? AND document_type = ?", tenantID, finance.DocumentTypeAdvanceCharge)
}

func (r *GormAdvanceChargeRepository) withChildren(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("line_no ASC") }).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") })
}

// FindByIDForTenant loads the charge with its lines and attachments
func (r *GormAdvanceChargeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.AdvanceCharge, error) {
	var model models.FinancialDocumentModel
	if err := r.withChildren(r.scoped(ctx, tenantID)).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Advance charge", id)
		}
		return nil, err
	}
	return model.ToAdvanceCharge(), nil
}

// FindByIDForUpdate locks the header row (SELECT ... FOR UPDATE) and then loads the charge.
// It must run inside a transaction for the lock to be held.
func (r *GormAdvanceChargeRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*finance.AdvanceCharge, error) {
	var locked struct {
		ID      uuid.UUID
		Version int
	}
	result := r.scoped(ctx, tenantID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "version").
		Where("id = ?", id).
		Limit(1).
		Scan(&locked)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.NewNotFoundError("Advance charge", id)
	}
	return r.FindByIDForTenant(ctx, tenantID, id)
}

// FindByReceiptNumber finds a charge by its receipt number
func (r *GormAdvanceChargeRepository) FindByReceiptNumber(ctx context.Context, tenantID uuid.UUID, receiptNumber string) (*finance.AdvanceCharge, error) {
	var model models.FinancialDocumentModel
	if err := r.withChildren(r.scoped(ctx, tenantID)).First(&model, "receipt_number = ?", receiptNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Advance charge "+receiptNumber+" not found")
		}
		return nil, err
	}
	return model.ToAdvanceCharge(), nil
}

// FindAllForTenant returns one page of headers and the total count
func (r *GormAdvanceChargeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter finance.AdvanceChargeFilter) ([]finance.AdvanceCharge, int64, error) {
	query := r.scoped(ctx, tenantID)

	// Apply filters
	if filter.MemberID != nil {
		query = query.Where("party_id = ?", *filter.MemberID)
	}
	if filter.ReceiptNumber != "" {
		query = query.Where("receipt_number = ?", filter.ReceiptNumber)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.FinancialPersonnelID != nil {
		query = query.Where("financial_personnel_id = ?", *filter.FinancialPersonnelID)
	}
	if filter.OperatorID != nil {
		query = query.Where("operator_id = ?", *filter.OperatorID)
	}
	if filter.Remark != "" {
		query = query.Where("remark LIKE ?", "%"+filter.Remark+"%")
	}
	if filter.ReceiptDateFrom != nil {
		query = query.Where("receipt_date >= ?", *filter.ReceiptDateFrom)
	}
	if filter.ReceiptDateTo != nil {
		query = query.Where("receipt_date < ?", shared.EndOfDayBound(*filter.ReceiptDateTo))
	}

	query = query.Session(&gorm.Session{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.PageQuery.Normalize()
	var docModels []models.FinancialDocumentModel
	if err := query.
		Order(orderClause(page.OrderBy, page.OrderDir, AdvanceChargeSortFields)).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&docModels).Error; err != nil {
		return nil, 0, err
	}

	charges := make([]finance.AdvanceCharge, len(docModels))
	for i := range docModels {
		charges[i] = *docModels[i].ToAdvanceCharge()
	}
	return charges, total, nil
}

// FindLinesByHeaderIDs loads lines for several headers, keyed by header ID
func (r *GormAdvanceChargeRepository) FindLinesByHeaderIDs(ctx context.Context, tenantID uuid.UUID, headerIDs []uuid.UUID) (map[uuid.UUID][]finance.AccountItemDetail, error) {
	result := make(map[uuid.UUID][]finance.AccountItemDetail, len(headerIDs))
	if len(headerIDs) == 0 {
		return result, nil
	}

	var lineModels []models.AccountItemModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND header_id IN ?", tenantID, headerIDs).
		Order("header_id, line_no ASC").
		Find(&lineModels).Error; err != nil {
		return nil, err
	}
	for i := range lineModels {
		line := lineModels[i].ToDomain()
		result[line.HeaderID] = append(result[line.HeaderID], *line)
	}
	return result, nil
}

// ExistsByReceiptNumber checks receipt number uniqueness across all live documents of the tenant
func (r *GormAdvanceChargeRepository) ExistsByReceiptNumber(ctx context.Context, tenantID uuid.UUID, receiptNumber string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.FinancialDocumentModel{}).
		Where("tenant_id = ? AND receipt_number = ?", tenantID, receiptNumber)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new charge with its lines and attachments
func (r *GormAdvanceChargeRepository) Create(ctx context.Context, charge *finance.AdvanceCharge) error {
	model := models.AdvanceChargeModelFromDomain(charge)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return translateWriteError(err, "Advance charge "+charge.ReceiptNumber)
		}
		return insertChildren(tx, model)
	})
}

// SaveWithLock replaces header, lines and attachments when the stored version matches
func (r *GormAdvanceChargeRepository) SaveWithLock(ctx context.Context, charge *finance.AdvanceCharge) error {
	model := models.AdvanceChargeModelFromDomain(charge)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.checkVersion(tx, charge); err != nil {
			return err
		}

		result := tx.Model(&models.FinancialDocumentModel{}).
			Where("id = ? AND tenant_id = ? AND version = ?", charge.ID, charge.TenantID, charge.Version).
			Updates(map[string]any{
				"receipt_date":             model.ReceiptDate,
				"party_id":                 model.PartyID,
				"party_name":               model.PartyName,
				"financial_personnel_id":   model.FinancialPersonnelID,
				"financial_personnel_name": model.FinancialPersonnelName,
				"operator_id":              model.OperatorID,
				"operator_name":            model.OperatorName,
				"total_amount":             model.TotalAmount,
				"collected_amount":         model.CollectedAmount,
				"status":                   model.Status,
				"remark":                   model.Remark,
				"version":                  gorm.Expr("version + 1"),
				"updated_at":               time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return concurrencyConflict()
		}

		// Replaced lines are never audited, so they are removed for good
		if err := tx.Unscoped().Where("header_id = ?", charge.ID).Delete(&models.AccountItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("document_id = ?", charge.ID).Delete(&models.DocumentAttachmentModel{}).Error; err != nil {
			return err
		}
		return insertChildren(tx, model)
	})
	if err != nil {
		return err
	}
	charge.Version++
	return nil
}

// UpdateStatusWithLock persists the review status under the version check
func (r *GormAdvanceChargeRepository) UpdateStatusWithLock(ctx context.Context, charge *finance.AdvanceCharge) error {
	result := r.db.WithContext(ctx).
		Model(&models.FinancialDocumentModel{}).
		Where("id = ? AND tenant_id = ? AND version = ?", charge.ID, charge.TenantID, charge.Version).
		Updates(map[string]any{
			"status":     charge.Status,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return concurrencyConflict()
	}
	charge.Version++
	return nil
}

// SoftDeleteWithLock marks header and lines deleted under the version check
func (r *GormAdvanceChargeRepository) SoftDeleteWithLock(ctx context.Context, charge *finance.AdvanceCharge) error {
	deletedAt := time.Now()
	if charge.DeletedAt != nil {
		deletedAt = *charge.DeletedAt
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.FinancialDocumentModel{}).
			Where("id = ? AND tenant_id = ? AND version = ? AND status = ?", charge.ID, charge.TenantID, charge.Version, finance.ReviewStatusUnaudited).
			Updates(map[string]any{
				"deleted_at": deletedAt,
				"version":    gorm.Expr("version + 1"),
				"updated_at": deletedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return concurrencyConflict()
		}
		return tx.Where("header_id = ?", charge.ID).Delete(&models.AccountItemModel{}).Error
	})
	if err != nil {
		return err
	}
	charge.Version++
	return nil
}

func (r *GormAdvanceChargeRepository) checkVersion(tx *gorm.DB, charge *finance.AdvanceCharge) error {
	var currentVersion int
	result := tx.Model(&models.FinancialDocumentModel{}).
		Where("id = ? AND tenant_id = ?", charge.ID, charge.TenantID).
		Select("version").
		Scan(&currentVersion)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Advance charge", charge.ID)
	}
	if currentVersion != charge.Version {
		return concurrencyConflict()
	}
	return nil
}

func insertChildren(tx *gorm.DB, model *models.FinancialDocumentModel) error {
	if len(model.Lines) > 0 {
		if err := tx.Create(&model.Lines).Error; err != nil {
			return err
		}
	}
	if len(model.Files) > 0 {
		if err := tx.Create(&model.Files).Error; err != nil {
			return err
		}
	}
	return nil
}

func concurrencyConflict() error {
	return shared.NewDomainError(shared.CodeConcurrencyConflict, "The document has been modified by another user")
}

// translateWriteError maps unique violations to ALREADY_EXISTS
func translateWriteError(err error, what string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.NewDomainError(shared.CodeAlreadyExists, what+" already exists")
	}
	return err
}

// Ensure GormAdvanceChargeRepository implements AdvanceChargeRepository
var _ finance.AdvanceChargeRepository = (*GormAdvanceChargeRepository)(nil)
