package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/plutus-labs/schedule3/internal/report"
)

// Parse reads a trial-balance export, detecting the format from the file
// name extension. CSV is assumed when the extension is unrecognized.
func Parse(r io.Reader, filename string) (report.Rows, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return ParseXLSX(r)
	default:
		return ParseCSV(r)
	}
}

// ParseCSV reads a comma-separated trial balance. Rows above the header
// (report titles, company name, period captions) are skipped.
func ParseCSV(r io.Reader) (report.Rows, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		records = append(records, rec)
	}
	return mapRecords(records)
}

// ParseXLSX reads the first sheet of an Excel workbook.
func ParseXLSX(r io.Reader) (report.Rows, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	xl, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}
	defer xl.Close()

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}
	records, err := xl.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return mapRecords(records)
}

func mapRecords(records [][]string) (report.Rows, error) {
	headerIdx := -1
	var mapping columnMapping
	for i, rec := range records {
		m, err := mapColumns(rec)
		if err != nil {
			continue
		}
		headerIdx = i
		mapping = m
		break
	}
	if headerIdx < 0 {
		return nil, ErrNoHeader
	}

	var rows report.Rows
	for _, rec := range records[headerIdx+1:] {
		row, ok := mapRecord(rec, mapping)
		if ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func mapRecord(rec []string, m columnMapping) (report.LedgerRow, bool) {
	cell := func(idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	row := report.LedgerRow{
		Level1:   cell(m.level1),
		Level2:   cell(m.level2),
		Current:  parseAmount(cell(m.current)),
		Previous: parseAmount(cell(m.previous)),
	}
	// Blank descriptions are separator/total lines in most exports.
	if row.Level1 == "" {
		return report.LedgerRow{}, false
	}
	return row, true
}
