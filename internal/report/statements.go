package report

import "fmt"

// Statement identifies one of the three rendered statements.
type Statement string

const (
	StatementBalanceSheet Statement = "balance-sheet"
	StatementProfitLoss   Statement = "profit-loss"
	StatementCashFlow     Statement = "cash-flow"
)

var Statements = []Statement{StatementBalanceSheet, StatementProfitLoss, StatementCashFlow}

// Title returns the printed heading for a statement.
func (s Statement) Title() string {
	switch s {
	case StatementBalanceSheet:
		return "Balance Sheet"
	case StatementProfitLoss:
		return "Statement of Profit and Loss"
	case StatementCashFlow:
		return "Cash Flow Statement"
	default:
		return string(s)
	}
}

// ParseStatement accepts the route/CLI spelling of a statement name.
func ParseStatement(s string) (Statement, error) {
	switch Statement(s) {
	case StatementBalanceSheet, StatementProfitLoss, StatementCashFlow:
		return Statement(s), nil
	}
	return "", fmt.Errorf("unknown statement %q", s)
}

// Template returns the authored line-item tree for a statement.
func (s Statement) Template() []TemplateNode {
	switch s {
	case StatementBalanceSheet:
		return BalanceSheetTemplate()
	case StatementProfitLoss:
		return ProfitLossTemplate()
	case StatementCashFlow:
		return CashFlowTemplate()
	default:
		return nil
	}
}

func (s Statement) overrides() map[string]Resolver {
	switch s {
	case StatementBalanceSheet:
		return balanceSheetOverrides()
	case StatementProfitLoss:
		return profitLossOverrides()
	case StatementCashFlow:
		return cashFlowOverrides()
	default:
		return nil
	}
}

// Pack is one full evaluation: the three resolved statements plus the
// notes they reference, ready for rendering.
type Pack struct {
	BalanceSheet []ResolvedNode   `json:"balance_sheet"`
	ProfitLoss   []ResolvedNode   `json:"profit_loss"`
	CashFlow     []ResolvedNode   `json:"cash_flow"`
	Notes        []*FinancialNote `json:"notes"`
}

// Statement returns the resolved forest for the named statement.
func (pk *Pack) Statement(s Statement) []ResolvedNode {
	switch s {
	case StatementBalanceSheet:
		return pk.BalanceSheet
	case StatementProfitLoss:
		return pk.ProfitLoss
	case StatementCashFlow:
		return pk.CashFlow
	default:
		return nil
	}
}

// Note returns a note from the pack by printed number, or nil.
func (pk *Pack) Note(number string) *FinancialNote {
	for _, n := range pk.Notes {
		if n.Number == number {
			return n
		}
	}
	return nil
}

// BuildPack computes the notes from the ledger rows and evaluates every
// statement template against them. Each statement gets its own fresh pass,
// so registered totals never bleed between trees; cross-statement figures
// travel through notes only.
func BuildPack(rows Rows, providers []NoteProvider) *Pack {
	notes := make([]*FinancialNote, 0, len(providers))
	for _, pr := range providers {
		notes = append(notes, pr.Build(rows))
	}

	pk := &Pack{Notes: notes}
	pk.BalanceSheet = EvaluateStatement(StatementBalanceSheet, rows, notes)
	pk.ProfitLoss = EvaluateStatement(StatementProfitLoss, rows, notes)
	pk.CashFlow = EvaluateStatement(StatementCashFlow, rows, notes)
	return pk
}

// EvaluateStatement runs one statement template through a fresh pass.
func EvaluateStatement(s Statement, rows Rows, notes []*FinancialNote) []ResolvedNode {
	return Evaluate(s.Template(), NewPass(rows, notes, s.overrides()))
}
