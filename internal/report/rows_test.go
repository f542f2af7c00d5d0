package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRows() Rows {
	return Rows{
		{Level1: "Inventories", Level2: "Raw Material", Current: 100, Previous: 80},
		{Level1: "Inventories", Level2: "Finished Goods", Current: 40, Previous: 35},
		{Level1: "Trade Receivables", Level2: "Unsecured, considered good", Current: 250, Previous: 210},
		{Level1: "Deferred Tax Liability", Level2: "", Current: 12, Previous: 9},
	}
}

func TestAmountEmptyLevel1SelectsNothing(t *testing.T) {
	rows := sampleRows()

	assert.Zero(t, rows.Amount(PeriodCurrent, nil, nil))
	assert.Zero(t, rows.Amount(PeriodCurrent, []string{}, []string{"raw"}))
}

func TestAmountSumsAllLevel1Matches(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, 140.0, rows.Amount(PeriodCurrent, []string{"inventories"}, nil))
	assert.Equal(t, 115.0, rows.Amount(PeriodPrevious, []string{"inventories"}, nil))
}

func TestAmountCaseInsensitive(t *testing.T) {
	rows := sampleRows()

	upper := rows.Amount(PeriodCurrent, []string{"INVENTORIES"}, nil)
	lower := rows.Amount(PeriodCurrent, []string{"inventories"}, nil)
	assert.Equal(t, lower, upper)
}

func TestAmountSubstringMatch(t *testing.T) {
	rows := Rows{
		{Level1: "Taxation Reserve", Current: 5},
		{Level1: "Contax Services", Current: 7},
	}

	// Substring containment, no word boundaries: "tax" hits both.
	assert.Equal(t, 12.0, rows.Amount(PeriodCurrent, []string{"tax"}, nil))
}

func TestAmountLevel2Filter(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, 100.0, rows.Amount(PeriodCurrent, []string{"inventories"}, []string{"raw"}))
	// An empty level-2 list filters nothing.
	assert.Equal(t, 140.0, rows.Amount(PeriodCurrent, []string{"inventories"}, []string{}))
	// No level-2 match, no contribution.
	assert.Zero(t, rows.Amount(PeriodCurrent, []string{"inventories"}, []string{"stores"}))
}

func TestMatchAmountBothPeriods(t *testing.T) {
	rows := sampleRows()

	got := rows.MatchAmount(&Match{Level1: []string{"trade receivables"}})
	assert.Equal(t, Amount{Current: 250, Previous: 210}, got)
	assert.Equal(t, Amount{}, rows.MatchAmount(nil))
}
