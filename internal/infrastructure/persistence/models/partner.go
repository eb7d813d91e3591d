package models

import (
	"github.com/erp/ledger/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// MemberModel is the persistence model for the Member domain entity
type MemberModel struct {
	TenantAggregateModel
	MemberNumber   string               `gorm:"type:varchar(50);not null;index"`
	Name           string               `gorm:"type:varchar(200);not null"`
	Phone          string               `gorm:"type:varchar(50);index"`
	Email          string               `gorm:"type:varchar(200)"`
	AdvancePayment decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	Status         partner.MemberStatus `gorm:"type:varchar(20);not null;default:'enabled'"`
	Remark         string               `gorm:"type:varchar(500)"`
	Sort           int                  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (MemberModel) TableName() string {
	return "members"
}

// ToDomain converts the persistence model to a domain Member entity
func (m *MemberModel) ToDomain() *partner.Member {
	member := &partner.Member{
		MemberNumber:   m.MemberNumber,
		Name:           m.Name,
		Phone:          m.Phone,
		Email:          m.Email,
		AdvancePayment: m.AdvancePayment,
		Status:         m.Status,
		Remark:         m.Remark,
		Sort:           m.Sort,
	}
	m.PopulateTenantAggregateRoot(&member.TenantAggregateRoot)
	return member
}

// FromDomain populates the persistence model from a domain Member entity
func (m *MemberModel) FromDomain(member *partner.Member) {
	m.FromDomainTenantAggregateRoot(member.TenantAggregateRoot)
	m.MemberNumber = member.MemberNumber
	m.Name = member.Name
	m.Phone = member.Phone
	m.Email = member.Email
	m.AdvancePayment = member.AdvancePayment
	m.Status = member.Status
	m.Remark = member.Remark
	m.Sort = member.Sort
}

// MemberModelFromDomain creates a new persistence model from a domain Member entity
func MemberModelFromDomain(member *partner.Member) *MemberModel {
	m := &MemberModel{}
	m.FromDomain(member)
	return m
}
