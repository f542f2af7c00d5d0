package ingest

import (
	"strings"
	"time"

	"github.com/plutus-labs/schedule3/internal/report"
)

// Adjustment is a manual journal entry applied on top of the imported
// trial balance, for audit corrections the export does not carry.
type Adjustment struct {
	ID        string    `json:"id"`
	Level1    string    `json:"level1"`
	Level2    string    `json:"level2"`
	Current   float64   `json:"amount_current"`
	Previous  float64   `json:"amount_previous"`
	Narration string    `json:"narration"`
	CreatedAt time.Time `json:"created_at"`
}

// Apply joins adjustments onto the raw rows before evaluation. An
// adjustment whose descriptions match an existing row (case-insensitive,
// exact) adds to that row; otherwise it lands as a new row so the keyword
// aggregator still sees it. The input slice is not modified.
func Apply(rows report.Rows, adjustments []Adjustment) report.Rows {
	out := make(report.Rows, len(rows))
	copy(out, rows)

	for _, adj := range adjustments {
		merged := false
		for i := range out {
			if strings.EqualFold(out[i].Level1, adj.Level1) && strings.EqualFold(out[i].Level2, adj.Level2) {
				out[i].Current += adj.Current
				out[i].Previous += adj.Previous
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, report.LedgerRow{
				Level1:   adj.Level1,
				Level2:   adj.Level2,
				Current:  adj.Current,
				Previous: adj.Previous,
			})
		}
	}
	return out
}
