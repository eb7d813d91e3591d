package models

import (
	"time"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinancialDocumentModel is the header row shared by every financial document type.
// DocumentType tells advance charges and opening balances apart.
type FinancialDocumentModel struct {
	TenantAggregateModel
	DocumentType           finance.DocumentType      `gorm:"type:varchar(30);not null;index"`
	ReceiptNumber          string                    `gorm:"type:varchar(50);not null;index"`
	ReceiptDate            time.Time                 `gorm:"not null;index"`
	PartyKind              finance.PartyKind         `gorm:"type:varchar(20);not null"`
	PartyID                uuid.UUID                 `gorm:"type:uuid;not null;index"`
	PartyName              string                    `gorm:"type:varchar(200)"`
	AccountID              *uuid.UUID                `gorm:"type:uuid"`
	AccountName            string                    `gorm:"type:varchar(200)"`
	FinancialPersonnelID   *uuid.UUID                `gorm:"type:uuid;index"`
	FinancialPersonnelName string                    `gorm:"type:varchar(100)"`
	OperatorID             *uuid.UUID                `gorm:"type:uuid;index"`
	OperatorName           string                    `gorm:"type:varchar(100)"`
	TotalAmount            decimal.Decimal           `gorm:"type:decimal(18,4);not null"`
	CollectedAmount        decimal.Decimal           `gorm:"type:decimal(18,4);not null"`
	Status                 finance.ReviewStatus      `gorm:"not null;default:0;index"`
	Remark                 string                    `gorm:"type:text"`
	Lines                  []AccountItemModel        `gorm:"foreignKey:HeaderID;references:ID"`
	Files                  []DocumentAttachmentModel `gorm:"foreignKey:DocumentID;references:ID"`
	DeletedAt              gorm.DeletedAt            `gorm:"index"`
}

// TableName returns the table name for GORM
func (FinancialDocumentModel) TableName() string {
	return "financial_documents"
}

// ToAdvanceCharge converts the header row to a domain AdvanceCharge
func (m *FinancialDocumentModel) ToAdvanceCharge() *finance.AdvanceCharge {
	ac := &finance.AdvanceCharge{
		ReceiptNumber:          m.ReceiptNumber,
		MemberID:               m.PartyID,
		MemberName:             m.PartyName,
		ReceiptDate:            m.ReceiptDate,
		FinancialPersonnelID:   m.FinancialPersonnelID,
		FinancialPersonnelName: m.FinancialPersonnelName,
		OperatorID:             m.OperatorID,
		OperatorName:           m.OperatorName,
		TotalAmount:            m.TotalAmount,
		CollectedAmount:        m.CollectedAmount,
		Status:                 m.Status,
		Remark:                 m.Remark,
		Lines:                  make([]finance.AccountItemDetail, len(m.Lines)),
		Files:                  make([]finance.Attachment, len(m.Files)),
	}
	m.PopulateTenantAggregateRoot(&ac.TenantAggregateRoot)
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		ac.DeletedAt = &deletedAt
	}
	for i := range m.Lines {
		ac.Lines[i] = *m.Lines[i].ToDomain()
	}
	for i := range m.Files {
		ac.Files[i] = m.Files[i].ToDomain()
	}
	return ac
}

// FromAdvanceCharge populates the header row from a domain AdvanceCharge
func (m *FinancialDocumentModel) FromAdvanceCharge(ac *finance.AdvanceCharge) {
	m.FromDomainTenantAggregateRoot(ac.TenantAggregateRoot)
	m.DocumentType = finance.DocumentTypeAdvanceCharge
	m.ReceiptNumber = ac.ReceiptNumber
	m.ReceiptDate = ac.ReceiptDate
	m.PartyKind = finance.PartyKindMember
	m.PartyID = ac.MemberID
	m.PartyName = ac.MemberName
	m.FinancialPersonnelID = ac.FinancialPersonnelID
	m.FinancialPersonnelName = ac.FinancialPersonnelName
	m.OperatorID = ac.OperatorID
	m.OperatorName = ac.OperatorName
	m.TotalAmount = ac.TotalAmount
	m.CollectedAmount = ac.CollectedAmount
	m.Status = ac.Status
	m.Remark = ac.Remark
	if ac.DeletedAt != nil {
		m.DeletedAt = gorm.DeletedAt{Time: *ac.DeletedAt, Valid: true}
	}

	m.Lines = make([]AccountItemModel, len(ac.Lines))
	for i := range ac.Lines {
		m.Lines[i] = *AccountItemModelFromDomain(&ac.Lines[i])
	}
	m.Files = make([]DocumentAttachmentModel, len(ac.Files))
	for i, f := range ac.Files {
		m.Files[i] = *DocumentAttachmentModelFromDomain(ac.TenantID, ac.ID, i+1, f)
	}
}

// AdvanceChargeModelFromDomain creates a header row from a domain AdvanceCharge
func AdvanceChargeModelFromDomain(ac *finance.AdvanceCharge) *FinancialDocumentModel {
	m := &FinancialDocumentModel{}
	m.FromAdvanceCharge(ac)
	return m
}

// OpeningBalanceModelFromDomain creates a header row from a domain OpeningBalance
func OpeningBalanceModelFromDomain(ob *finance.OpeningBalance) *FinancialDocumentModel {
	m := &FinancialDocumentModel{
		DocumentType:    finance.DocumentTypeOpeningBalance,
		ReceiptNumber:   ob.ReceiptNumber,
		ReceiptDate:     ob.BalanceDate,
		PartyKind:       ob.PartyKind,
		PartyID:         ob.PartyID,
		PartyName:       ob.PartyName,
		AccountName:     ob.AccountName,
		TotalAmount:     ob.Amount,
		CollectedAmount: decimal.Zero,
		Status:          ob.Status,
		Remark:          ob.Remark,
		Lines:           []AccountItemModel{*AccountItemModelFromDomain(&ob.Line)},
	}
	accountID := ob.AccountID
	m.AccountID = &accountID
	m.FromDomainTenantAggregateRoot(ob.TenantAggregateRoot)
	return m
}

// AccountItemModel is one ledger line
type AccountItemModel struct {
	BaseModel
	TenantID      uuid.UUID            `gorm:"type:uuid;not null;index"`
	HeaderID      uuid.UUID            `gorm:"type:uuid;not null;index"`
	LineNo        int                  `gorm:"not null"`
	DocumentType  finance.DocumentType `gorm:"type:varchar(30);not null"`
	AccountID     uuid.UUID            `gorm:"type:uuid;not null;index"`
	AccountName   string               `gorm:"type:varchar(200)"`
	InOutItemID   *uuid.UUID           `gorm:"type:uuid"`
	InOutItemName string               `gorm:"type:varchar(200)"`
	BillNumber    *string              `gorm:"type:varchar(50)"`
	EachAmount    decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	NeedDebt      decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	FinishDebt    decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	Remark        string               `gorm:"type:varchar(500)"`
	DeletedAt     gorm.DeletedAt       `gorm:"index"`
}

// TableName returns the table name for GORM
func (AccountItemModel) TableName() string {
	return "account_items"
}

// ToDomain converts the persistence model to a domain AccountItemDetail
func (m *AccountItemModel) ToDomain() *finance.AccountItemDetail {
	return &finance.AccountItemDetail{
		BaseEntity:    m.BaseModel.ToDomain(),
		TenantID:      m.TenantID,
		HeaderID:      m.HeaderID,
		LineNo:        m.LineNo,
		DocumentType:  m.DocumentType,
		AccountID:     m.AccountID,
		AccountName:   m.AccountName,
		InOutItemID:   m.InOutItemID,
		InOutItemName: m.InOutItemName,
		BillNumber:    m.BillNumber,
		EachAmount:    m.EachAmount,
		NeedDebt:      m.NeedDebt,
		FinishDebt:    m.FinishDebt,
		Remark:        m.Remark,
	}
}

// AccountItemModelFromDomain creates a persistence model from a domain AccountItemDetail
func AccountItemModelFromDomain(d *finance.AccountItemDetail) *AccountItemModel {
	m := &AccountItemModel{
		TenantID:      d.TenantID,
		HeaderID:      d.HeaderID,
		LineNo:        d.LineNo,
		DocumentType:  d.DocumentType,
		AccountID:     d.AccountID,
		AccountName:   d.AccountName,
		InOutItemID:   d.InOutItemID,
		InOutItemName: d.InOutItemName,
		BillNumber:    d.BillNumber,
		EachAmount:    d.EachAmount,
		NeedDebt:      d.NeedDebt,
		FinishDebt:    d.FinishDebt,
		Remark:        d.Remark,
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}

// DocumentAttachmentModel is a file reference attached to a financial document
type DocumentAttachmentModel struct {
	BaseModel
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null;index"`
	SortOrder  int       `gorm:"not null;default:0"`
	UID        string    `gorm:"type:varchar(100)"`
	FileName   string    `gorm:"type:varchar(255);not null"`
	URL        string    `gorm:"type:varchar(1000)"`
	StorageKey string    `gorm:"type:varchar(500)"`
	FileType   string    `gorm:"type:varchar(100)"`
	FileSize   int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (DocumentAttachmentModel) TableName() string {
	return "document_attachments"
}

// ToDomain converts the persistence model to a domain Attachment
func (m *DocumentAttachmentModel) ToDomain() finance.Attachment {
	return finance.Attachment{
		ID:         m.ID,
		UID:        m.UID,
		FileName:   m.FileName,
		URL:        m.URL,
		StorageKey: m.StorageKey,
		FileType:   m.FileType,
		FileSize:   m.FileSize,
	}
}

// DocumentAttachmentModelFromDomain creates a persistence model from a domain Attachment
func DocumentAttachmentModelFromDomain(tenantID, documentID uuid.UUID, sortOrder int, a finance.Attachment) *DocumentAttachmentModel {
	now := time.Now()
	return &DocumentAttachmentModel{
		BaseModel:  BaseModel{ID: a.ID, CreatedAt: now, UpdatedAt: now},
		TenantID:   tenantID,
		DocumentID: documentID,
		SortOrder:  sortOrder,
		UID:        a.UID,
		FileName:   a.FileName,
		URL:        a.URL,
		StorageKey: a.StorageKey,
		FileType:   a.FileType,
		FileSize:   a.FileSize,
	}
}

// LedgerModels lists the models of the ledger schema, for AutoMigrate in tests
func LedgerModels() []any {
	return []any{
		&FinancialDocumentModel{},
		&AccountItemModel{},
		&DocumentAttachmentModel{},
		&MemberModel{},
	}
}
