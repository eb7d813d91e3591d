package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormAccountItemRepository reads ledger lines of any financial document
type GormAccountItemRepository struct {
	db *gorm.DB
}

// NewGormAccountItemRepository creates a new GormAccountItemRepository
func NewGormAccountItemRepository(db *gorm.DB) *GormAccountItemRepository {
	return &GormAccountItemRepository{db: db}
}

// FindByHeaderID returns the live lines of a document ordered by line number
func (r *GormAccountItemRepository) FindByHeaderID(ctx context.Context, tenantID, headerID uuid.UUID) ([]finance.AccountItemDetail, error) {
	var lineModels []models.AccountItemModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND header_id = ?", tenantID, headerID).
		Order("line_no ASC").
		Find(&lineModels).Error; err != nil {
		return nil, err
	}
	lines := make([]finance.AccountItemDetail, len(lineModels))
	for i := range lineModels {
		lines[i] = *lineModels[i].ToDomain()
	}
	return lines, nil
}

// flowRow is the projection scanned by FindFlowEntries
type flowRow struct {
	ReceiptNumber string
	DocumentType  string
	PartyKind     string
	PartyName     string
	BillNumber    *string
	EachAmount    decimal.Decimal
	ReceiptDate   time.Time
}

// FindFlowEntries reads lines of audited, live documents for the party and/or account.
// Opening-balance lines are included whatever their date; other lines must fall inside [From, To].
func (r *GormAccountItemRepository) FindFlowEntries(ctx context.Context, tenantID uuid.UUID, query finance.AccountFlowQuery) ([]finance.AccountFlowEntry, error) {
	tx := r.db.WithContext(ctx).
		Table("account_items AS i").
		Select("d.receipt_number, i.document_type, d.party_kind, d.party_name, i.bill_number, i.each_amount, d.receipt_date").
		Joins("JOIN financial_documents AS d ON d.id = i.header_id").
		Where("i.tenant_id = ? AND d.tenant_id = ?", tenantID, tenantID).
		Where("i.deleted_at IS NULL AND d.deleted_at IS NULL").
		Where("d.status = ?", finance.ReviewStatusAudited)

	if query.PartyID != nil {
		tx = tx.Where("d.party_kind = ? AND d.party_id = ?", query.PartyKind, *query.PartyID)
	}
	if query.AccountID != nil {
		tx = tx.Where("i.account_id = ?", *query.AccountID)
	}

	var dateConds []string
	var dateArgs []any
	if query.From != nil {
		dateConds = append(dateConds, "d.receipt_date >= ?")
		dateArgs = append(dateArgs, *query.From)
	}
	if query.To != nil {
		dateConds = append(dateConds, "d.receipt_date < ?")
		dateArgs = append(dateArgs, shared.EndOfDayBound(*query.To))
	}
	if len(dateConds) > 0 {
		openingBalance := "(i.bill_number IS NULL OR i.bill_number = '' OR i.document_type = '" + string(finance.DocumentTypeOpeningBalance) + "')"
		tx = tx.Where(openingBalance+" OR ("+strings.Join(dateConds, " AND ")+")", dateArgs...)
	}

	var rows []flowRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]finance.AccountFlowEntry, len(rows))
	for i, row := range rows {
		entries[i] = finance.AccountFlowEntry{
			ReceiptNumber: row.ReceiptNumber,
			DocumentType:  finance.DocumentType(row.DocumentType),
			PartyKind:     finance.PartyKind(row.PartyKind),
			PartyName:     row.PartyName,
			BillNumber:    row.BillNumber,
			EachAmount:    row.EachAmount,
			ReceiptDate:   row.ReceiptDate,
		}
	}
	return entries, nil
}

// Ensure GormAccountItemRepository implements the read interfaces
var (
	_ finance.AccountItemRepository = (*GormAccountItemRepository)(nil)
	_ finance.AccountFlowReader     = (*GormAccountItemRepository)(nil)
)
