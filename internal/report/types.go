package report

// Period selects which column of a ledger row an aggregation reads.
type Period int

const (
	PeriodCurrent Period = iota
	PeriodPrevious
)

// LedgerRow is one mapped trial-balance line: a two-level category
// description with a current-year and prior-year amount. Rows are
// immutable once imported; missing amounts are stored as 0.
type LedgerRow struct {
	Level1   string  `json:"level1"`
	Level2   string  `json:"level2"`
	Current  float64 `json:"amount_current"`
	Previous float64 `json:"amount_previous"`
}

// Amount carries a current-year and prior-year figure as a pair. Statement
// values always move together, so the pair is the unit of computation.
type Amount struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

func (a Amount) Add(b Amount) Amount {
	return Amount{Current: a.Current + b.Current, Previous: a.Previous + b.Previous}
}

func (a Amount) Sub(b Amount) Amount {
	return Amount{Current: a.Current - b.Current, Previous: a.Previous - b.Previous}
}

func (a Amount) Neg() Amount {
	return Amount{Current: -a.Current, Previous: -a.Previous}
}

// Abs returns the amount with both periods made non-negative. Contra
// balances (e.g. excess provisions) are presented unsigned on some rows.
func (a Amount) Abs() Amount {
	out := a
	if out.Current < 0 {
		out.Current = -out.Current
	}
	if out.Previous < 0 {
		out.Previous = -out.Previous
	}
	return out
}

// Match is a two-level keyword filter against ledger row descriptions.
// Level1 must be non-empty for the filter to select anything; an empty
// Level2 means the level-2 description is not filtered at all.
type Match struct {
	Level1 []string `json:"level1"`
	Level2 []string `json:"level2,omitempty"`
}

// Formula derives a value from two totals registered earlier in the same
// evaluation pass. Operands name registered ids, not node keys.
type Formula struct {
	Left  string `json:"left"`
	Op    string `json:"op"` // "+" or "-"
	Right string `json:"right"`
}

// TemplateNode describes one line of a financial statement. Templates are
// authored once as package data and never mutated at runtime.
//
// At most one resolution rule applies per node; when several are present
// the evaluator picks by fixed precedence (see processNode).
type TemplateNode struct {
	Key          string         `json:"key"`
	Label        string         `json:"label"`
	Note         string         `json:"note,omitempty"`
	IsSubtotal   bool           `json:"is_subtotal,omitempty"`
	IsGrandTotal bool           `json:"is_grand_total,omitempty"`
	Keywords     *Match         `json:"keywords,omitempty"`
	Formula      *Formula       `json:"formula,omitempty"`
	ID           string         `json:"id,omitempty"`
	Children     []TemplateNode `json:"children,omitempty"`
}

// ResolvedNode is a template node after evaluation. Value is nil when no
// resolution rule produced a figure — section headers render as blank, and
// a broken cross-reference degrades to blank rather than failing the run.
type ResolvedNode struct {
	Key          string         `json:"key"`
	Label        string         `json:"label"`
	Note         string         `json:"note,omitempty"`
	IsSubtotal   bool           `json:"is_subtotal,omitempty"`
	IsGrandTotal bool           `json:"is_grand_total,omitempty"`
	Value        *Amount        `json:"value,omitempty"`
	Children     []ResolvedNode `json:"children,omitempty"`
}

// Table is a pre-formatted string grid for disclosures that are not
// numeric hierarchies (ageing schedules, movement tables). The engine
// passes tables through to renderers verbatim.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Element is one entry in a note's content forest: exactly one of Item,
// Table, or Text is set.
type Element struct {
	Item  *ResolvedNode `json:"item,omitempty"`
	Table *Table        `json:"table,omitempty"`
	Text  string        `json:"text,omitempty"`
}

// FinancialNote is a numbered disclosure note. Statement line items pull
// figures out of a note's content by key path; they never re-derive them.
type FinancialNote struct {
	Number  string    `json:"number"`
	Title   string    `json:"title"`
	Content []Element `json:"content"`
	Footer  string    `json:"footer,omitempty"`
	Total   *Amount   `json:"total,omitempty"`
}

// NoteProvider computes one disclosure note from the ledger rows. Providers
// are independent of each other and of the statement templates; the engine
// consumes their output only through key-path lookup.
type NoteProvider interface {
	Number() string
	Build(rows Rows) *FinancialNote
}
