package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/erp/ledger/internal/domain/partner"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormMemberRepository implements MemberRepository using GORM
type GormMemberRepository struct {
	db *gorm.DB
}

// NewGormMemberRepository creates a new GormMemberRepository
func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// FindByIDForTenant finds a member by ID within a tenant
func (r *GormMemberRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Member", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds several members at once
func (r *GormMemberRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]partner.Member, error) {
	if len(ids) == 0 {
		return []partner.Member{}, nil
	}
	var memberModels []models.MemberModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&memberModels).Error; err != nil {
		return nil, err
	}
	members := make([]partner.Member, len(memberModels))
	for i := range memberModels {
		members[i] = *memberModels[i].ToDomain()
	}
	return members, nil
}

// FindAllForTenant returns one page of members and the total count
func (r *GormMemberRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter partner.MemberFilter) ([]partner.Member, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.MemberModel{}).Where("tenant_id = ?", tenantID)

	if filter.MemberNumber != "" {
		query = query.Where("member_number LIKE ?", "%"+filter.MemberNumber+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at < ?", shared.EndOfDayBound(*filter.CreatedTo))
	}

	query = query.Session(&gorm.Session{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.PageQuery.Normalize()
	var memberModels []models.MemberModel
	if err := query.
		Order(orderClause(page.OrderBy, page.OrderDir, MemberSortFields)).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&memberModels).Error; err != nil {
		return nil, 0, err
	}

	members := make([]partner.Member, len(memberModels))
	for i := range memberModels {
		members[i] = *memberModels[i].ToDomain()
	}
	return members, total, nil
}

// ExistsByMemberNumber checks member number uniqueness within a tenant
func (r *GormMemberRepository) ExistsByMemberNumber(ctx context.Context, tenantID uuid.UUID, memberNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MemberModel{}).
		Where("tenant_id = ? AND member_number = ?", tenantID, memberNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a member. The advance payment is never written here;
// it only moves through UpdateAdvanceChargeAmount.
func (r *GormMemberRepository) Save(ctx context.Context, member *partner.Member) error {
	model := models.MemberModelFromDomain(member)
	result := r.db.WithContext(ctx).
		Model(&models.MemberModel{}).
		Where("id = ? AND tenant_id = ?", member.ID, member.TenantID).
		Updates(map[string]any{
			"name":       model.Name,
			"phone":      model.Phone,
			"email":      model.Email,
			"status":     model.Status,
			"remark":     model.Remark,
			"sort":       model.Sort,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		member.Version++
		return nil
	}

	model.AdvancePayment = decimal.Zero
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateWriteError(err, "Member "+member.MemberNumber)
	}
	return nil
}

// UpdateAdvanceChargeAmount adds delta to the advance payment in a single guarded UPDATE,
// so concurrent callers can never drive the balance below zero.
func (r *GormMemberRepository) UpdateAdvanceChargeAmount(ctx context.Context, tenantID, memberID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	if err := partner.ValidateAdvancePaymentDelta(delta); err != nil {
		return decimal.Zero, err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&models.MemberModel{}).
		Where("id = ? AND tenant_id = ?", memberID, tenantID).
		Where("advance_payment + ? >= 0", delta).
		Updates(map[string]any{
			"advance_payment": gorm.Expr("advance_payment + ?", delta),
			"version":         gorm.Expr("version + 1"),
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return decimal.Zero, result.Error
	}

	var model models.MemberModel
	if err := db.Select("id", "advance_payment").First(&model, "id = ? AND tenant_id = ?", memberID, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, shared.NewNotFoundError("Member", memberID)
		}
		return decimal.Zero, err
	}
	if result.RowsAffected == 0 {
		return model.AdvancePayment, shared.NewDomainError(shared.CodeInsufficientBalance,
			"Member advance payment "+model.AdvancePayment.StringFixed(2)+" cannot cover "+delta.Neg().StringFixed(2))
	}
	return model.AdvancePayment, nil
}

// Ensure GormMemberRepository implements MemberRepository
var _ partner.MemberRepository = (*GormMemberRepository)(nil)
