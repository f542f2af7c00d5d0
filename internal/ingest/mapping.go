// Package ingest turns a raw trial-balance export (CSV or XLSX) into
// ledger rows. Accounting packages disagree on column naming, so headers
// are located by synonym matching rather than fixed positions.
package ingest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoHeader       = errors.New("no header row found")
	ErrMissingColumns = errors.New("required columns not found")
)

// columnMapping holds the resolved index of each required column.
type columnMapping struct {
	level1   int
	level2   int
	current  int
	previous int
}

var headerSynonyms = map[string][]string{
	"level1":   {"level 1 desc", "level 1", "particulars", "account head", "ledger group", "primary group"},
	"level2":   {"level 2 desc", "level 2", "sub group", "sub-group", "ledger name", "account name", "sub head"},
	"current":  {"amount current", "amountcurrent", "current year", "closing balance cy", "this year"},
	"previous": {"amount previous", "amountprevious", "previous year", "prior year", "closing balance py", "last year"},
}

// mapColumns locates the four required columns in a header row. The
// level-2 column is optional; everything else must be present.
func mapColumns(header []string) (columnMapping, error) {
	m := columnMapping{level1: -1, level2: -1, current: -1, previous: -1}
	assign := func(field string, idx int) {
		switch field {
		case "level1":
			if m.level1 < 0 {
				m.level1 = idx
			}
		case "level2":
			if m.level2 < 0 {
				m.level2 = idx
			}
		case "current":
			if m.current < 0 {
				m.current = idx
			}
		case "previous":
			if m.previous < 0 {
				m.previous = idx
			}
		}
	}

	for idx, cell := range header {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		if normalized == "" {
			continue
		}
		for field, synonyms := range headerSynonyms {
			for _, syn := range synonyms {
				if strings.Contains(normalized, syn) {
					assign(field, idx)
					break
				}
			}
		}
	}

	if m.level1 < 0 || m.current < 0 || m.previous < 0 {
		return m, fmt.Errorf("%w: need level-1 description, current and previous amount columns", ErrMissingColumns)
	}
	return m, nil
}
