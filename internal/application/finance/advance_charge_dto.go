package finance

import (
	"time"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdvanceChargeLineRequest is one allocation line in a create/update request
type AdvanceChargeLineRequest struct {
	AccountID   uuid.UUID       `json:"account_id"`
	AccountName string          `json:"account_name" binding:"max=100"`
	Amount      decimal.Decimal `json:"amount"`
	Remark      string          `json:"remark" binding:"max=500"`
}

// AttachmentRequest references an uploaded file
type AttachmentRequest struct {
	ID         *uuid.UUID `json:"id"`
	UID        string     `json:"uid" binding:"max=100"`
	FileName   string     `json:"file_name" binding:"max=255"`
	URL        string     `json:"url" binding:"omitempty,max=1024"`
	StorageKey string     `json:"storage_key" binding:"max=512"`
	FileType   string     `json:"file_type" binding:"max=100"`
	FileSize   int64      `json:"file_size" binding:"gte=0"`
}

// AdvanceChargeRequest creates an advance charge when ID is absent and updates it otherwise
type AdvanceChargeRequest struct {
	ID                     *uuid.UUID                 `json:"id"`
	ReceiptNumber          string                     `json:"receipt_number" binding:"max=50"`
	MemberID               uuid.UUID                  `json:"member_id"`
	ReceiptDate            time.Time                  `json:"receipt_date"`
	FinancialPersonnelID   *uuid.UUID                 `json:"financial_personnel_id"`
	FinancialPersonnelName string                     `json:"financial_personnel_name" binding:"max=100"`
	TotalAmount            decimal.Decimal            `json:"total_amount"`
	CollectedAmount        decimal.Decimal            `json:"collected_amount"`
	Remark                 string                     `json:"remark" binding:"max=500"`
	Lines                  []AdvanceChargeLineRequest `json:"lines" binding:"dive"`
	Files                  []AttachmentRequest        `json:"files" binding:"dive"`
	OperatorID             *uuid.UUID                 `json:"-"` // from request context
	OperatorName           string                     `json:"-"`
}

// AdvanceChargeSaved is returned by AddOrUpdate
type AdvanceChargeSaved struct {
	ID            uuid.UUID `json:"id"`
	ReceiptNumber string    `json:"receipt_number"`
	Created       bool      `json:"created"`
}

// AdvanceChargeListRequest filters the page list
type AdvanceChargeListRequest struct {
	MemberID             *uuid.UUID `json:"member_id"`
	ReceiptNumber        string     `json:"receipt_number"`
	Status               *int       `json:"status" binding:"omitempty,oneof=0 1"`
	FinancialPersonnelID *uuid.UUID `json:"financial_personnel_id"`
	OperatorID           *uuid.UUID `json:"operator_id"`
	Remark               string     `json:"remark"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	Page                 int        `json:"page" binding:"omitempty,min=1"`
	PageSize             int        `json:"page_size" binding:"omitempty,min=1,max=500"`
	OrderBy              string     `json:"order_by"`
	OrderDir             string     `json:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (r AdvanceChargeListRequest) toFilter(defaultPageSize int) finance.AdvanceChargeFilter {
	f := finance.AdvanceChargeFilter{
		PageQuery: shared.PageQuery{
			Page:     r.Page,
			PageSize: r.PageSize,
			OrderBy:  r.OrderBy,
			OrderDir: r.OrderDir,
		},
		MemberID:             r.MemberID,
		ReceiptNumber:        r.ReceiptNumber,
		FinancialPersonnelID: r.FinancialPersonnelID,
		OperatorID:           r.OperatorID,
		Remark:               r.Remark,
		ReceiptDateFrom:      r.StartDate,
		ReceiptDateTo:        r.EndDate,
	}
	if f.PageSize == 0 {
		f.PageSize = defaultPageSize
	}
	if r.Status != nil {
		status := finance.ReviewStatus(*r.Status)
		f.Status = &status
	}
	return f
}

// AdvanceChargeSummary is one row of the page list
type AdvanceChargeSummary struct {
	ID                     uuid.UUID       `json:"id"`
	ReceiptNumber          string          `json:"receipt_number"`
	MemberID               uuid.UUID       `json:"member_id"`
	MemberName             string          `json:"member_name"`
	ReceiptDate            time.Time       `json:"receipt_date"`
	FinancialPersonnelID   *uuid.UUID      `json:"financial_personnel_id,omitempty"`
	FinancialPersonnelName string          `json:"financial_personnel_name"`
	OperatorID             *uuid.UUID      `json:"operator_id,omitempty"`
	OperatorName           string          `json:"operator_name"`
	TotalAmount            decimal.Decimal `json:"total_amount"`
	CollectedAmount        decimal.Decimal `json:"collected_amount"`
	Status                 int             `json:"status"`
	StatusLabel            string          `json:"status_label"`
	Remark                 string          `json:"remark"`
	CreatedAt              time.Time       `json:"created_at"`
	Version                int             `json:"version"`
}

// AccountItemView is a ledger line as shown to callers: signed, rounded and
// with the opening-balance sentinel in place of an absent bill number.
type AccountItemView struct {
	ID            uuid.UUID       `json:"id"`
	HeaderID      uuid.UUID       `json:"header_id"`
	LineNo        int             `json:"line_no"`
	DocumentType  string          `json:"document_type"`
	AccountID     uuid.UUID       `json:"account_id"`
	AccountName   string          `json:"account_name"`
	InOutItemID   *uuid.UUID      `json:"in_out_item_id,omitempty"`
	InOutItemName string          `json:"in_out_item_name,omitempty"`
	BillNumber    string          `json:"bill_number"`
	EachAmount    decimal.Decimal `json:"each_amount"`
	NeedDebt      decimal.Decimal `json:"need_debt"`
	FinishDebt    decimal.Decimal `json:"finish_debt"`
	Remark        string          `json:"remark"`
}

// AttachmentView is an attachment with a resolved download URL
type AttachmentView struct {
	ID          uuid.UUID `json:"id"`
	UID         string    `json:"uid"`
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	StorageKey  string    `json:"storage_key,omitempty"`
	FileType    string    `json:"file_type"`
	FileSize    int64     `json:"file_size"`
	DownloadURL string    `json:"download_url,omitempty"`
}

// AdvanceChargeDetail is the header with its lines and attachments
type AdvanceChargeDetail struct {
	AdvanceChargeSummary
	MemberAdvancePayment *decimal.Decimal  `json:"member_advance_payment,omitempty"`
	Lines                []AccountItemView `json:"lines"`
	Files                []AttachmentView  `json:"files"`
}

func toAdvanceChargeSummary(ac *finance.AdvanceCharge) AdvanceChargeSummary {
	return AdvanceChargeSummary{
		ID:                     ac.ID,
		ReceiptNumber:          ac.ReceiptNumber,
		MemberID:               ac.MemberID,
		MemberName:             ac.MemberName,
		ReceiptDate:            ac.ReceiptDate,
		FinancialPersonnelID:   ac.FinancialPersonnelID,
		FinancialPersonnelName: ac.FinancialPersonnelName,
		OperatorID:             ac.OperatorID,
		OperatorName:           ac.OperatorName,
		TotalAmount:            finance.RoundMagnitude(ac.TotalAmount),
		CollectedAmount:        finance.RoundMagnitude(ac.CollectedAmount),
		Status:                 int(ac.Status),
		StatusLabel:            ac.Status.String(),
		Remark:                 ac.Remark,
		CreatedAt:              ac.CreatedAt,
		Version:                ac.Version,
	}
}

// toAccountItemView presents a line with its direction applied
func toAccountItemView(d *finance.AccountItemDetail) AccountItemView {
	return AccountItemView{
		ID:            d.ID,
		HeaderID:      d.HeaderID,
		LineNo:        d.LineNo,
		DocumentType:  d.DocumentType.String(),
		AccountID:     d.AccountID,
		AccountName:   d.AccountName,
		InOutItemID:   d.InOutItemID,
		InOutItemName: d.InOutItemName,
		BillNumber:    d.DisplayBillNumber(),
		EachAmount:    finance.RoundMoney(d.SignedAmount()),
		NeedDebt:      finance.RoundMagnitude(d.NeedDebt),
		FinishDebt:    finance.RoundMagnitude(d.FinishDebt),
		Remark:        d.Remark,
	}
}

func toAttachmentView(a finance.Attachment) AttachmentView {
	return AttachmentView{
		ID:         a.ID,
		UID:        a.UID,
		FileName:   a.FileName,
		URL:        a.URL,
		StorageKey: a.StorageKey,
		FileType:   a.FileType,
		FileSize:   a.FileSize,
	}
}

func (r AdvanceChargeRequest) toInput(memberName string) finance.AdvanceChargeInput {
	in := finance.AdvanceChargeInput{
		MemberID:               r.MemberID,
		MemberName:             memberName,
		ReceiptDate:            r.ReceiptDate,
		FinancialPersonnelID:   r.FinancialPersonnelID,
		FinancialPersonnelName: r.FinancialPersonnelName,
		OperatorID:             r.OperatorID,
		OperatorName:           r.OperatorName,
		TotalAmount:            r.TotalAmount,
		CollectedAmount:        r.CollectedAmount,
		Remark:                 r.Remark,
		Lines:                  make([]finance.AdvanceChargeLineInput, 0, len(r.Lines)),
		Files:                  make([]finance.Attachment, 0, len(r.Files)),
	}
	for _, l := range r.Lines {
		in.Lines = append(in.Lines, finance.AdvanceChargeLineInput{
			AccountID:   l.AccountID,
			AccountName: l.AccountName,
			Amount:      l.Amount,
			Remark:      l.Remark,
		})
	}
	for _, f := range r.Files {
		a := finance.Attachment{
			UID:        f.UID,
			FileName:   f.FileName,
			URL:        f.URL,
			StorageKey: f.StorageKey,
			FileType:   f.FileType,
			FileSize:   f.FileSize,
		}
		if f.ID != nil {
			a.ID = *f.ID
		}
		in.Files = append(in.Files, a)
	}
	return in
}
