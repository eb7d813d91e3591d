package finance

import (
	"context"
	"io"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/language"
)

// ExportLanguage selects the header and label language of exported sheets
type ExportLanguage string

const (
	ExportLanguageZH ExportLanguage = "zh"
	ExportLanguageEN ExportLanguage = "en"
)

const exportDateLayout = "2006-01-02"

var exportMatcher = language.NewMatcher([]language.Tag{language.Chinese, language.English})

// ResolveExportLanguage picks zh or en from an Accept-Language header,
// falling back to fallback when nothing matches.
func ResolveExportLanguage(acceptLanguage string, fallback ExportLanguage) ExportLanguage {
	if fallback != ExportLanguageEN {
		fallback = ExportLanguageZH
	}
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	tag, _, confidence := exportMatcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	if base, _ := tag.Base(); base.String() == "en" {
		return ExportLanguageEN
	}
	return ExportLanguageZH
}

var exportLabels = map[ExportLanguage]map[string]string{
	ExportLanguageZH: {
		"sheet.main":     "预收款",
		"sheet.detail":   "预收款明细",
		"receipt_number": "单据编号",
		"member":         "会员",
		"receipt_date":   "单据日期",
		"financial":      "财务人员",
		"operator":       "操作员",
		"total_amount":   "合计金额",
		"collected":      "收款金额",
		"status":         "状态",
		"remark":         "备注",
		"account":        "账户",
		"line_amount":    "金额",
		"line_remark":    "明细备注",
		"status.audited": "已审核",
		"status.pending": "未审核",
	},
	ExportLanguageEN: {
		"sheet.main":     "Advance Charges",
		"sheet.detail":   "Advance Charge Lines",
		"receipt_number": "Receipt No.",
		"member":         "Member",
		"receipt_date":   "Receipt Date",
		"financial":      "Financial Staff",
		"operator":       "Operator",
		"total_amount":   "Total Amount",
		"collected":      "Collected Amount",
		"status":         "Status",
		"remark":         "Remark",
		"account":        "Account",
		"line_amount":    "Amount",
		"line_remark":    "Line Remark",
		"status.audited": "Audited",
		"status.pending": "Unaudited",
	},
}

func label(lang ExportLanguage, key string) string {
	if l, ok := exportLabels[lang][key]; ok {
		return l
	}
	return exportLabels[ExportLanguageZH][key]
}

func statusLabel(lang ExportLanguage, status finance.ReviewStatus) string {
	if status == finance.ReviewStatusAudited {
		return label(lang, "status.audited")
	}
	return label(lang, "status.pending")
}

// ContentType returns the MIME type of exported files
func (s *AdvanceChargeService) ContentType() string {
	return s.exporter.ContentType()
}

// FileExtension returns the extension of exported files
func (s *AdvanceChargeService) FileExtension() string {
	return s.exporter.FileExtension()
}

// Export writes every charge matching req, ignoring its paging. With withDetail
// a second sheet lists the lines of each charge.
func (s *AdvanceChargeService) Export(ctx context.Context, tenantID uuid.UUID, req AdvanceChargeListRequest, withDetail bool, lang ExportLanguage, w io.Writer) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "advance_charge", "export",
		attribute.Bool("with_detail", withDetail),
		attribute.String("language", string(lang)),
	)
	defer func() { telemetry.End(span, err) }()

	filter := req.toFilter(shared.MaxPageSize)
	filter.PageSize = shared.MaxPageSize
	filter.Page = 1

	var charges []finance.AdvanceCharge
	for {
		page, total, err := s.charges.FindAllForTenant(ctx, tenantID, filter)
		if err != nil {
			return err
		}
		charges = append(charges, page...)
		if len(page) == 0 || int64(len(charges)) >= total {
			break
		}
		filter.Page++
	}
	span.SetAttributes(attribute.Int("rows", len(charges)))

	sheets := []Sheet{s.mainSheet(lang, charges)}
	if withDetail && len(charges) > 0 {
		ids := make([]uuid.UUID, len(charges))
		for i := range charges {
			ids[i] = charges[i].ID
		}
		lines, err := s.charges.FindLinesByHeaderIDs(ctx, tenantID, ids)
		if err != nil {
			return err
		}
		for i := range charges {
			charges[i].Lines = lines[charges[i].ID]
		}
		sheets = append(sheets, s.detailSheet(lang, charges))
	}
	return s.exporter.Write(w, sheets...)
}

// ExportDetail writes one charge, found by receipt number, with its lines
func (s *AdvanceChargeService) ExportDetail(ctx context.Context, tenantID uuid.UUID, receiptNumber string, lang ExportLanguage, w io.Writer) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "advance_charge", "export_detail",
		attribute.String("receipt_number", receiptNumber),
	)
	defer func() { telemetry.End(span, err) }()

	if receiptNumber == "" {
		return shared.NewValidationError("Receipt number is required",
			shared.FieldError{Field: "receiptNumber", Message: "is required"})
	}
	charge, err := s.charges.FindByReceiptNumber(ctx, tenantID, receiptNumber)
	if err != nil {
		return err
	}
	if len(charge.Lines) == 0 {
		lines, err := s.charges.FindLinesByHeaderIDs(ctx, tenantID, []uuid.UUID{charge.ID})
		if err != nil {
			return err
		}
		charge.Lines = lines[charge.ID]
	}
	charges := []finance.AdvanceCharge{*charge}
	return s.exporter.Write(w, s.mainSheet(lang, charges), s.detailSheet(lang, charges))
}

func (s *AdvanceChargeService) mainSheet(lang ExportLanguage, charges []finance.AdvanceCharge) Sheet {
	sheet := Sheet{
		Name: label(lang, "sheet.main"),
		Columns: []Column{
			{Header: label(lang, "member"), Width: 18},
			{Header: label(lang, "receipt_number"), Width: 20},
			{Header: label(lang, "receipt_date"), Width: 14},
			{Header: label(lang, "collected"), Width: 14},
			{Header: label(lang, "total_amount"), Width: 14},
			{Header: label(lang, "financial"), Width: 14},
			{Header: label(lang, "operator"), Width: 14},
			{Header: label(lang, "remark"), Width: 30},
			{Header: label(lang, "status"), Width: 10},
		},
		Rows: make([][]any, 0, len(charges)),
	}
	for i := range charges {
		ac := &charges[i]
		sheet.Rows = append(sheet.Rows, []any{
			ac.MemberName,
			ac.ReceiptNumber,
			ac.ReceiptDate.Format(exportDateLayout),
			finance.RoundMagnitude(ac.CollectedAmount).InexactFloat64(),
			finance.RoundMagnitude(ac.TotalAmount).InexactFloat64(),
			ac.FinancialPersonnelName,
			ac.OperatorName,
			ac.Remark,
			statusLabel(lang, ac.Status),
		})
	}
	return sheet
}

func (s *AdvanceChargeService) detailSheet(lang ExportLanguage, charges []finance.AdvanceCharge) Sheet {
	sheet := Sheet{
		Name: label(lang, "sheet.detail"),
		Columns: []Column{
			{Header: label(lang, "member"), Width: 18},
			{Header: label(lang, "receipt_number"), Width: 20},
			{Header: label(lang, "account"), Width: 18},
			{Header: label(lang, "line_amount"), Width: 14},
			{Header: label(lang, "line_remark"), Width: 30},
		},
	}
	for i := range charges {
		ac := &charges[i]
		for j := range ac.Lines {
			line := &ac.Lines[j]
			sheet.Rows = append(sheet.Rows, []any{
				ac.MemberName,
				ac.ReceiptNumber,
				line.AccountName,
				finance.RoundMoney(line.SignedAmount()).InexactFloat64(),
				line.Remark,
			})
		}
	}
	return sheet
}
