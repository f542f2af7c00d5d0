// Package export renders an evaluated statement pack into shareable
// documents: an Excel workbook with one sheet per statement and note,
// and a single PDF with internal links from line items to their notes.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/plutus-labs/schedule3/internal/report"
)

const (
	colParticulars = "A"
	colNote        = "B"
	colCurrent     = "C"
	colPrevious    = "D"
)

type excelStyles struct {
	title    int
	header   int
	item     int
	subtotal int
	grand    int
	note     int
}

// Excel writes the pack to an xlsx workbook and returns its bytes. Note
// references on statement lines are hyperlinked to the note's sheet.
func Excel(pk *report.Pack, company string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	for _, st := range report.Statements {
		sheet := statementSheet(st)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
		if err := writeStatementSheet(f, sheet, st.Title(), company, pk.Statement(st), styles); err != nil {
			return nil, err
		}
	}

	for _, note := range pk.Notes {
		sheet := noteSheet(note.Number)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
		if err := writeNoteSheet(f, sheet, note, styles); err != nil {
			return nil, err
		}
	}

	// The default sheet excelize creates is not part of the report.
	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex(statementSheet(report.StatementBalanceSheet)); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func newExcelStyles(f *excelize.File) (*excelStyles, error) {
	var s excelStyles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 13},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return nil, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EDEDED"}},
		Border:    []excelize.Border{{Type: "bottom", Style: 1, Color: "999999"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return nil, err
	}
	if s.item, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return nil, err
	}
	if s.subtotal, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    []excelize.Border{{Type: "top", Style: 1, Color: "999999"}},
	}); err != nil {
		return nil, err
	}
	if s.grand, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border: []excelize.Border{
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 6, Color: "000000"},
		},
	}); err != nil {
		return nil, err
	}
	if s.note, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "0563C1", Underline: "single"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return nil, err
	}
	return &s, nil
}

func writeStatementSheet(f *excelize.File, sheet, title, company string, nodes []report.ResolvedNode, styles *excelStyles) error {
	f.SetColWidth(sheet, colParticulars, colParticulars, 52)
	f.SetColWidth(sheet, colNote, colNote, 8)
	f.SetColWidth(sheet, colCurrent, colPrevious, 18)

	row := 1
	f.MergeCell(sheet, cell(colParticulars, row), cell(colPrevious, row))
	f.SetCellValue(sheet, cell(colParticulars, row), company)
	f.SetCellStyle(sheet, cell(colParticulars, row), cell(colPrevious, row), styles.title)
	row++

	f.MergeCell(sheet, cell(colParticulars, row), cell(colPrevious, row))
	f.SetCellValue(sheet, cell(colParticulars, row), title)
	f.SetCellStyle(sheet, cell(colParticulars, row), cell(colPrevious, row), styles.title)
	row += 2

	writeColumnHeaders(f, sheet, row, styles)
	row++

	for _, n := range nodes {
		var err error
		row, err = writeStatementNode(f, sheet, row, n, 0, styles)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeColumnHeaders(f *excelize.File, sheet string, row int, styles *excelStyles) {
	f.SetCellValue(sheet, cell(colParticulars, row), "Particulars")
	f.SetCellValue(sheet, cell(colNote, row), "Note")
	f.SetCellValue(sheet, cell(colCurrent, row), "Current Year")
	f.SetCellValue(sheet, cell(colPrevious, row), "Previous Year")
	f.SetCellStyle(sheet, cell(colParticulars, row), cell(colPrevious, row), styles.header)
}

func writeStatementNode(f *excelize.File, sheet string, row int, n report.ResolvedNode, depth int, styles *excelStyles) (int, error) {
	f.SetCellValue(sheet, cell(colParticulars, row), indent(n.Label, depth))

	if n.Note != "" {
		target := noteSheet(n.Note)
		f.SetCellValue(sheet, cell(colNote, row), n.Note)
		if err := f.SetCellHyperLink(sheet, cell(colNote, row), fmt.Sprintf("'%s'!A1", target), "Location"); err != nil {
			return row, fmt.Errorf("link note %s: %w", n.Note, err)
		}
		f.SetCellStyle(sheet, cell(colNote, row), cell(colNote, row), styles.note)
	}

	if n.Value != nil {
		f.SetCellValue(sheet, cell(colCurrent, row), report.FormatIndian(n.Value.Current))
		f.SetCellValue(sheet, cell(colPrevious, row), report.FormatIndian(n.Value.Previous))
	}

	style := styles.item
	switch {
	case n.IsGrandTotal:
		style = styles.grand
	case n.IsSubtotal:
		style = styles.subtotal
	}
	f.SetCellStyle(sheet, cell(colCurrent, row), cell(colPrevious, row), style)
	if n.IsSubtotal || n.IsGrandTotal {
		f.SetCellStyle(sheet, cell(colParticulars, row), cell(colParticulars, row), style)
	}
	row++

	for _, c := range n.Children {
		var err error
		row, err = writeStatementNode(f, sheet, row, c, depth+1, styles)
		if err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeNoteSheet(f *excelize.File, sheet string, note *report.FinancialNote, styles *excelStyles) error {
	f.SetColWidth(sheet, colParticulars, colParticulars, 52)
	f.SetColWidth(sheet, colNote, colPrevious, 18)

	row := 1
	f.MergeCell(sheet, cell(colParticulars, row), cell(colPrevious, row))
	f.SetCellValue(sheet, cell(colParticulars, row), fmt.Sprintf("Note %s - %s", note.Number, note.Title))
	f.SetCellStyle(sheet, cell(colParticulars, row), cell(colPrevious, row), styles.title)
	row += 2

	for _, el := range note.Content {
		switch {
		case el.Item != nil:
			var err error
			row, err = writeNoteItem(f, sheet, row, *el.Item, 0, styles)
			if err != nil {
				return err
			}
		case el.Table != nil:
			row = writeNoteTable(f, sheet, row, el.Table, styles)
		case el.Text != "":
			f.MergeCell(sheet, cell(colParticulars, row), cell(colPrevious, row))
			f.SetCellValue(sheet, cell(colParticulars, row), el.Text)
			row += 2
		}
	}

	if note.Total != nil {
		f.SetCellValue(sheet, cell(colParticulars, row), "Total")
		f.SetCellValue(sheet, cell(colCurrent, row), report.FormatIndian(note.Total.Current))
		f.SetCellValue(sheet, cell(colPrevious, row), report.FormatIndian(note.Total.Previous))
		f.SetCellStyle(sheet, cell(colParticulars, row), cell(colPrevious, row), styles.grand)
		row++
	}

	if note.Footer != "" {
		row++
		f.MergeCell(sheet, cell(colParticulars, row), cell(colPrevious, row))
		f.SetCellValue(sheet, cell(colParticulars, row), note.Footer)
	}
	return nil
}

func writeNoteItem(f *excelize.File, sheet string, row int, n report.ResolvedNode, depth int, styles *excelStyles) (int, error) {
	f.SetCellValue(sheet, cell(colParticulars, row), indent(n.Label, depth))
	if n.Value != nil {
		f.SetCellValue(sheet, cell(colCurrent, row), report.FormatIndian(n.Value.Current))
		f.SetCellValue(sheet, cell(colPrevious, row), report.FormatIndian(n.Value.Previous))
	}
	style := styles.item
	if n.IsSubtotal || n.IsGrandTotal {
		style = styles.subtotal
	}
	f.SetCellStyle(sheet, cell(colCurrent, row), cell(colPrevious, row), style)
	row++

	for _, c := range n.Children {
		var err error
		row, err = writeNoteItem(f, sheet, row, c, depth+1, styles)
		if err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeNoteTable(f *excelize.File, sheet string, row int, tbl *report.Table, styles *excelStyles) int {
	for i, h := range tbl.Headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, cell(col, row), h)
		f.SetCellStyle(sheet, cell(col, row), cell(col, row), styles.header)
	}
	row++
	for _, tr := range tbl.Rows {
		for i, v := range tr {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(sheet, cell(col, row), v)
		}
		row++
	}
	return row + 1
}

func statementSheet(s report.Statement) string {
	switch s {
	case report.StatementBalanceSheet:
		return "Balance Sheet"
	case report.StatementProfitLoss:
		return "Profit and Loss"
	case report.StatementCashFlow:
		return "Cash Flow"
	default:
		return string(s)
	}
}

func noteSheet(number string) string {
	return "Note " + number
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func indent(label string, depth int) string {
	if depth == 0 {
		return label
	}
	var buf bytes.Buffer
	for i := 0; i < depth; i++ {
		buf.WriteString("    ")
	}
	buf.WriteString(label)
	return buf.String()
}
