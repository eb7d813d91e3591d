package export

import (
	"bytes"
	"strings"
	"testing"

	appfinance "github.com/erp/ledger/internal/application/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_Write(t *testing.T) {
	e := NewExcelExporter()
	main := appfinance.Sheet{
		Name: "Advance charges",
		Columns: []appfinance.Column{
			{Header: "Member", Width: 20},
			{Header: "Receipt No.", Width: 22},
			{Header: "Collected"},
		},
		Rows: [][]any{
			{"Alice", "YSK202401150001", 100.5},
			{"Bob", "YSK202401150002", 20.0},
		},
	}
	detail := appfinance.Sheet{
		Name:    "Details",
		Columns: []appfinance.Column{{Header: "Receipt No."}, {Header: "Amount"}},
		Rows:    [][]any{{"YSK202401150001", 100.5}},
	}

	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, main, detail))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Advance charges", "Details"}, f.GetSheetList())

	rows, err := f.GetRows("Advance charges")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Member", "Receipt No.", "Collected"}, rows[0])
	assert.Equal(t, "YSK202401150002", rows[2][1])
	assert.Equal(t, "100.5", rows[1][2])

	width, err := f.GetColWidth("Advance charges", "B")
	require.NoError(t, err)
	assert.InDelta(t, 22, width, 0.01)

	detailRows, err := f.GetRows("Details")
	require.NoError(t, err)
	assert.Len(t, detailRows, 2)
}

func TestExcelExporter_RequiresSheet(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewExcelExporter().Write(&buf))
}

func TestExcelExporter_Metadata(t *testing.T) {
	e := NewExcelExporter()
	assert.Equal(t, ".xlsx", e.FileExtension())
	assert.True(t, strings.HasSuffix(e.ContentType(), "spreadsheetml.sheet"))
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Sheet3", sheetName("", 2))
	assert.Equal(t, "预收款", sheetName("预收款", 0))
	assert.Len(t, []rune(sheetName(strings.Repeat("x", 40), 0)), 31)
}
