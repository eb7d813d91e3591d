// Package export renders application sheets as spreadsheet files.
package export

import (
	"errors"
	"fmt"
	"io"

	appfinance "github.com/erp/ledger/internal/application/finance"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	defaultSheet    = "Sheet1"
	// Excel limits sheet names to 31 characters
	maxSheetNameLen = 31
)

// ExcelExporter writes sheets as an .xlsx workbook with a bold, shaded header row
type ExcelExporter struct{}

// NewExcelExporter creates an ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// ContentType returns the xlsx MIME type
func (e *ExcelExporter) ContentType() string {
	return xlsxContentType
}

// FileExtension returns ".xlsx"
func (e *ExcelExporter) FileExtension() string {
	return ".xlsx"
}

// Write renders the sheets in order and streams the workbook to w
func (e *ExcelExporter) Write(w io.Writer, sheets ...appfinance.Sheet) (err error) {
	if len(sheets) == 0 {
		return errors.New("export requires at least one sheet")
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, sheet := range sheets {
		name := sheetName(sheet.Name, i)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, sheet, headerStyle); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, sheet appfinance.Sheet, headerStyle int) error {
	if len(sheet.Columns) == 0 {
		return nil
	}

	headers := make([]any, len(sheet.Columns))
	for i, col := range sheet.Columns {
		headers[i] = col.Header
	}
	if err := f.SetSheetRow(name, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", name, err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(sheet.Columns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header of %s: %w", name, err)
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, name, err)
		}
	}

	for i, col := range sheet.Columns {
		if col.Width <= 0 {
			continue
		}
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, colName, colName, col.Width); err != nil {
			return fmt.Errorf("failed to set width of %s!%s: %w", name, colName, err)
		}
	}

	return f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func sheetName(name string, index int) string {
	if name == "" {
		return fmt.Sprintf("Sheet%d", index+1)
	}
	r := []rune(name)
	if len(r) > maxSheetNameLen {
		r = r[:maxSheetNameLen]
	}
	return string(r)
}

var _ appfinance.TabularExporter = (*ExcelExporter)(nil)
