package report

import "strings"

// Rows is the flat ledger-row dataset a statement is derived from.
type Rows []LedgerRow

func (r LedgerRow) amount(p Period) float64 {
	if p == PeriodPrevious {
		return r.Previous
	}
	return r.Current
}

// Amount sums the requested period over every row matching the two-level
// keyword filter. Matching is case-insensitive substring containment: the
// filter is tolerant of inconsistent upstream labelling, so "tax" matches
// "Taxation" as well as "Tax Payable".
//
// An empty level-1 list selects nothing and returns 0. An empty level-2
// list applies no level-2 filter.
func (rs Rows) Amount(p Period, level1, level2 []string) float64 {
	if len(level1) == 0 {
		return 0
	}
	var sum float64
	for _, row := range rs {
		if !containsAny(row.Level1, level1) {
			continue
		}
		if len(level2) > 0 && !containsAny(row.Level2, level2) {
			continue
		}
		sum += row.amount(p)
	}
	return sum
}

// MatchAmount evaluates a Match filter for both periods at once.
func (rs Rows) MatchAmount(m *Match) Amount {
	if m == nil {
		return Amount{}
	}
	return Amount{
		Current:  rs.Amount(PeriodCurrent, m.Level1, m.Level2),
		Previous: rs.Amount(PeriodPrevious, m.Level1, m.Level2),
	}
}

func containsAny(desc string, keywords []string) bool {
	desc = strings.ToLower(desc)
	for _, kw := range keywords {
		if strings.Contains(desc, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
