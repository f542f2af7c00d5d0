package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/plutus-labs/schedule3/internal/report"
)

func testPack() *report.Pack {
	note := &report.FinancialNote{
		Number: "2",
		Title:  "Share Capital",
		Content: []report.Element{
			{Item: &report.ResolvedNode{
				Key:   "issued-subscribed-paid-up",
				Label: "Issued, Subscribed and Paid Up",
				Value: &report.Amount{Current: 15000000, Previous: 15000000},
			}},
			{Table: &report.Table{
				Headers: []string{"Particulars", "Current Year", "Previous Year"},
				Rows:    [][]string{{"Opening", "15,00,000", "15,00,000"}},
			}},
		},
		Total: &report.Amount{Current: 15000000, Previous: 15000000},
	}

	return &report.Pack{
		BalanceSheet: []report.ResolvedNode{{
			Key:   "bs-equity-liabilities",
			Label: "EQUITY AND LIABILITIES",
			Children: []report.ResolvedNode{{
				Key:        "bs-shareholders-funds",
				Label:      "Shareholders' Funds",
				IsSubtotal: true,
				Value:      &report.Amount{Current: 15000000, Previous: 15000000},
				Children: []report.ResolvedNode{{
					Key:   "bs-share-capital",
					Label: "Share Capital",
					Note:  "2",
					Value: &report.Amount{Current: 15000000, Previous: 15000000},
				}},
			}},
		}},
		Notes: []*report.FinancialNote{note},
	}
}

func TestExcelRoundTrip(t *testing.T) {
	data, err := Excel(testPack(), "Acme Industries Limited")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Balance Sheet")
	assert.Contains(t, sheets, "Profit and Loss")
	assert.Contains(t, sheets, "Cash Flow")
	assert.Contains(t, sheets, "Note 2")
	assert.NotContains(t, sheets, "Sheet1")

	company, err := f.GetCellValue("Balance Sheet", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Industries Limited", company)

	// The share-capital line carries its note number and a hyperlink to
	// the note sheet.
	found := false
	rows, err := f.GetRows("Balance Sheet")
	require.NoError(t, err)
	for i, row := range rows {
		if len(row) > 1 && row[1] == "2" {
			found = true
			ok, target, err := f.GetCellHyperLink("Balance Sheet", cell(colNote, i+1))
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Contains(t, target, "Note 2")
		}
	}
	assert.True(t, found, "note reference column should carry the note number")

	title, err := f.GetCellValue("Note 2", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Note 2 - Share Capital", title)
}

func TestExcelFormatsAmountsIndianStyle(t *testing.T) {
	data, err := Excel(testPack(), "Acme Industries Limited")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Balance Sheet")
	require.NoError(t, err)

	found := false
	for _, row := range rows {
		for _, v := range row {
			if v == "1,50,00,000.00" {
				found = true
			}
		}
	}
	assert.True(t, found, "amounts should use lakh/crore digit grouping")
}

func TestPDFOutput(t *testing.T) {
	data, err := PDF(testPack(), "Acme Industries Limited")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 1000)
}
