// Package notes computes the numbered disclosure notes that back the
// statement line items. Each provider is independent: it reads the ledger
// rows through keyword aggregation, mixes in company constants where the
// trial balance cannot supply a figure, and publishes a content forest the
// statements address by key path.
package notes

import "github.com/plutus-labs/schedule3/internal/report"

type provider struct {
	number string
	build  func(rows report.Rows) *report.FinancialNote
}

func (p provider) Number() string { return p.number }

func (p provider) Build(rows report.Rows) *report.FinancialNote {
	n := p.build(rows)
	n.Number = p.number
	return n
}

// Registry returns the standard provider set in disclosure order. Note 1
// is the accounting policies text and has no computed content.
func Registry() []report.NoteProvider {
	return []report.NoteProvider{
		provider{"1", accountingPolicies},
		provider{"2", shareCapital},
		provider{"3", reservesSurplus},
		provider{"4", longTermBorrowings},
		provider{"5", tradePayables},
		provider{"6", otherCurrentLiabilities},
		provider{"7", shortTermProvisions},
		provider{"8", propertyPlantEquipment},
		provider{"9", inventories},
		provider{"10", tradeReceivables},
		provider{"11", cashAndBank},
		provider{"12", shortTermLoansAdvances},
		provider{"13", revenueFromOperations},
		provider{"14", otherIncome},
		provider{"15", costOfMaterials},
		provider{"16", employeeBenefits},
		provider{"17", financeCosts},
		provider{"18", depreciation},
		provider{"19", otherExpenses},
		provider{"20", taxExpense},
		provider{"21", earningsPerShare},
	}
}

// item builds a leaf content line.
func item(key, label string, v report.Amount) report.Element {
	return report.Element{Item: &report.ResolvedNode{Key: key, Label: label, Value: &v}}
}

// group builds a content line whose value is the sum of its children.
func group(key, label string, children ...report.ResolvedNode) report.Element {
	var sum report.Amount
	for _, c := range children {
		if c.Value != nil {
			sum = sum.Add(*c.Value)
		}
	}
	return report.Element{Item: &report.ResolvedNode{
		Key: key, Label: label, Value: &sum, Children: children,
	}}
}

func child(key, label string, v report.Amount) report.ResolvedNode {
	return report.ResolvedNode{Key: key, Label: label, Value: &v}
}

func text(s string) report.Element {
	return report.Element{Text: s}
}

func table(headers []string, rows [][]string) report.Element {
	return report.Element{Table: &report.Table{Headers: headers, Rows: rows}}
}

// match aggregates both periods for a keyword filter.
func match(rows report.Rows, level1 []string, level2 []string) report.Amount {
	return rows.MatchAmount(&report.Match{Level1: level1, Level2: level2})
}

// totalOf sums the item values in a content forest, skipping text and
// table elements. Providers use it so a note's printed total is always
// the sum of its own lines.
func totalOf(content []report.Element) *report.Amount {
	var sum report.Amount
	for _, el := range content {
		if el.Item != nil && el.Item.Value != nil {
			sum = sum.Add(*el.Item.Value)
		}
	}
	return &sum
}

func fmtRow(label string, v report.Amount) []string {
	return []string{label, report.FormatIndian(v.Current), report.FormatIndian(v.Previous)}
}
