package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/plutus-labs/schedule3/internal/report"
)

const (
	pdfLabelWidth  = 92.0
	pdfNoteWidth   = 14.0
	pdfAmountWidth = 42.0
	pdfRowHeight   = 6.0
)

// PDF renders the pack as a single A4 document: each statement on its own
// page, followed by the notes. Note references are clickable internal links.
func PDF(pk *report.Pack, company string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5, company, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	// Internal link anchors must exist before the statement pages refer
	// to them, so allocate one per note up front.
	anchors := make(map[string]int, len(pk.Notes))
	for _, n := range pk.Notes {
		anchors[n.Number] = pdf.AddLink()
	}

	for _, st := range report.Statements {
		pdf.AddPage()
		writePDFHeading(pdf, company, st.Title())
		writePDFColumnHeaders(pdf)
		for _, n := range pk.Statement(st) {
			writePDFNode(pdf, n, 0, anchors)
		}
	}

	for _, note := range pk.Notes {
		pdf.AddPage()
		pdf.SetLink(anchors[note.Number], 0, -1)
		writePDFNote(pdf, note)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writePDFHeading(pdf *gofpdf.Fpdf, company, title string) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, company, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, title, "", 1, "C", false, 0, "")
	pdf.Ln(3)
}

func writePDFColumnHeaders(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(237, 237, 237)
	pdf.CellFormat(pdfLabelWidth, pdfRowHeight, "Particulars", "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfNoteWidth, pdfRowHeight, "Note", "1", 0, "C", true, 0, "")
	pdf.CellFormat(pdfAmountWidth, pdfRowHeight, "Current Year", "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfAmountWidth, pdfRowHeight, "Previous Year", "1", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "", 9)
}

func writePDFNode(pdf *gofpdf.Fpdf, n report.ResolvedNode, depth int, anchors map[string]int) {
	if n.IsSubtotal || n.IsGrandTotal {
		pdf.SetFont("Arial", "B", 9)
	}

	label := indent(n.Label, depth)
	pdf.CellFormat(pdfLabelWidth, pdfRowHeight, label, "", 0, "L", false, 0, "")

	noteLink := 0
	if n.Note != "" {
		noteLink = anchors[n.Note]
	}
	if noteLink != 0 {
		pdf.SetTextColor(5, 99, 193)
		pdf.CellFormat(pdfNoteWidth, pdfRowHeight, n.Note, "", 0, "C", false, noteLink, "")
		pdf.SetTextColor(0, 0, 0)
	} else {
		pdf.CellFormat(pdfNoteWidth, pdfRowHeight, n.Note, "", 0, "C", false, 0, "")
	}

	cur, prev := "", ""
	if n.Value != nil {
		cur = report.FormatIndian(n.Value.Current)
		prev = report.FormatIndian(n.Value.Previous)
	}
	border := ""
	if n.IsGrandTotal {
		border = "TB"
	} else if n.IsSubtotal {
		border = "T"
	}
	pdf.CellFormat(pdfAmountWidth, pdfRowHeight, cur, border, 0, "R", false, 0, "")
	pdf.CellFormat(pdfAmountWidth, pdfRowHeight, prev, border, 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, c := range n.Children {
		writePDFNode(pdf, c, depth+1, anchors)
	}
}

func writePDFNote(pdf *gofpdf.Fpdf, note *report.FinancialNote) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Note %s - %s", note.Number, note.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Arial", "", 9)

	for _, el := range note.Content {
		switch {
		case el.Item != nil:
			writePDFNoteItem(pdf, *el.Item, 0)
		case el.Table != nil:
			writePDFTable(pdf, el.Table)
		case el.Text != "":
			pdf.MultiCell(0, 5, el.Text, "", "L", false)
			pdf.Ln(2)
		}
	}

	if note.Total != nil {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(pdfLabelWidth+pdfNoteWidth, pdfRowHeight, "Total", "T", 0, "L", false, 0, "")
		pdf.CellFormat(pdfAmountWidth, pdfRowHeight, report.FormatIndian(note.Total.Current), "TB", 0, "R", false, 0, "")
		pdf.CellFormat(pdfAmountWidth, pdfRowHeight, report.FormatIndian(note.Total.Previous), "TB", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 9)
	}

	if note.Footer != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "I", 8)
		pdf.MultiCell(0, 4, note.Footer, "", "L", false)
		pdf.SetFont("Arial", "", 9)
	}
}

func writePDFNoteItem(pdf *gofpdf.Fpdf, n report.ResolvedNode, depth int) {
	if n.IsSubtotal || n.IsGrandTotal {
		pdf.SetFont("Arial", "B", 9)
	}
	pdf.CellFormat(pdfLabelWidth+pdfNoteWidth, pdfRowHeight, indent(n.Label, depth), "", 0, "L", false, 0, "")
	cur, prev := "", ""
	if n.Value != nil {
		cur = report.FormatIndian(n.Value.Current)
		prev = report.FormatIndian(n.Value.Previous)
	}
	pdf.CellFormat(pdfAmountWidth, pdfRowHeight, cur, "", 0, "R", false, 0, "")
	pdf.CellFormat(pdfAmountWidth, pdfRowHeight, prev, "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 9)

	for _, c := range n.Children {
		writePDFNoteItem(pdf, c, depth+1)
	}
}

func writePDFTable(pdf *gofpdf.Fpdf, tbl *report.Table) {
	if len(tbl.Headers) == 0 {
		return
	}
	width := 190.0 / float64(len(tbl.Headers))

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(237, 237, 237)
	for _, h := range tbl.Headers {
		pdf.CellFormat(width, pdfRowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range tbl.Rows {
		for i, v := range row {
			align := "L"
			if i > 0 {
				align = "R"
			}
			pdf.CellFormat(width, pdfRowHeight, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
	pdf.SetFont("Arial", "", 9)
}
