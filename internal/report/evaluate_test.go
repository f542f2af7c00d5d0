package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessNodeKeywordLookup(t *testing.T) {
	rows := Rows{{Level1: "Inventories", Level2: "Raw Material", Current: 100, Previous: 80}}
	tree := []TemplateNode{{Key: "inv", Label: "Inventories", Keywords: &Match{Level1: []string{"inventories"}}}}

	out := Evaluate(tree, NewPass(rows, nil, nil))

	require.Len(t, out, 1)
	require.NotNil(t, out[0].Value)
	assert.Equal(t, Amount{Current: 100, Previous: 80}, *out[0].Value)
}

func TestProcessNodeSumsChildren(t *testing.T) {
	tree := []TemplateNode{{
		Key: "parent", Label: "Current assets",
		Children: []TemplateNode{
			{Key: "a", Label: "A", Keywords: &Match{Level1: []string{"alpha"}}},
			{Key: "b", Label: "B", Keywords: &Match{Level1: []string{"beta"}}},
			{Key: "header", Label: "Header"}, // resolves nil, counts as 0
		},
	}}
	rows := Rows{
		{Level1: "Alpha", Current: 50, Previous: 20},
		{Level1: "Beta", Current: 30, Previous: 10},
	}

	out := Evaluate(tree, NewPass(rows, nil, nil))

	require.NotNil(t, out[0].Value)
	assert.Equal(t, Amount{Current: 80, Previous: 30}, *out[0].Value)
	assert.Nil(t, out[0].Children[2].Value)
}

func TestProcessNodeFormula(t *testing.T) {
	tree := []TemplateNode{
		{Key: "a", Label: "A", ID: "x", Keywords: &Match{Level1: []string{"alpha"}}},
		{Key: "b", Label: "B", ID: "y", Keywords: &Match{Level1: []string{"beta"}}},
		{Key: "sum", Label: "A plus B", Formula: &Formula{Left: "x", Op: "+", Right: "y"}},
		{Key: "diff", Label: "A less B", Formula: &Formula{Left: "x", Op: "-", Right: "y"}},
	}
	rows := Rows{
		{Level1: "Alpha", Current: 200, Previous: 150},
		{Level1: "Beta", Current: 50, Previous: 25},
	}

	out := Evaluate(tree, NewPass(rows, nil, nil))

	require.NotNil(t, out[2].Value)
	assert.Equal(t, Amount{Current: 250, Previous: 175}, *out[2].Value)
	require.NotNil(t, out[3].Value)
	assert.Equal(t, Amount{Current: 150, Previous: 125}, *out[3].Value)
}

func TestFormulaMissingOperandResolvesBlank(t *testing.T) {
	tree := []TemplateNode{
		{Key: "a", Label: "A", ID: "x", Keywords: &Match{Level1: []string{"alpha"}}},
		{Key: "b", Label: "B", Formula: &Formula{Left: "x", Op: "+", Right: "y"}},
	}
	rows := Rows{{Level1: "Alpha", Current: 200, Previous: 150}}

	out := Evaluate(tree, NewPass(rows, nil, nil))

	assert.Nil(t, out[1].Value)
}

func TestFormulaSeesOnlyEarlierRegistrations(t *testing.T) {
	// "total" references an id registered by a later sibling; traversal
	// order decides visibility, so it resolves blank.
	tree := []TemplateNode{
		{Key: "total", Label: "Total", Formula: &Formula{Left: "x", Op: "+", Right: "x"}},
		{Key: "a", Label: "A", ID: "x", Keywords: &Match{Level1: []string{"alpha"}}},
	}
	rows := Rows{{Level1: "Alpha", Current: 10}}

	out := Evaluate(tree, NewPass(rows, nil, nil))

	assert.Nil(t, out[0].Value)
}

func TestOverrideTakesPrecedence(t *testing.T) {
	// The node satisfies every other rule too; the override must win.
	tree := []TemplateNode{{
		Key: "row", Label: "Row",
		Keywords: &Match{Level1: []string{"alpha"}},
		Formula:  &Formula{Left: "x", Op: "+", Right: "y"},
		Children: []TemplateNode{{Key: "child", Label: "C", Keywords: &Match{Level1: []string{"alpha"}}}},
	}}
	rows := Rows{{Level1: "Alpha", Current: 10, Previous: 5}}
	overrides := map[string]Resolver{"row": Fixed(999, 888)}

	out := Evaluate(tree, NewPass(rows, nil, overrides))

	require.NotNil(t, out[0].Value)
	assert.Equal(t, Amount{Current: 999, Previous: 888}, *out[0].Value)
}

func TestKeywordsTakePrecedenceOverChildren(t *testing.T) {
	tree := []TemplateNode{{
		Key: "row", Label: "Row",
		Keywords: &Match{Level1: []string{"alpha"}},
		Children: []TemplateNode{{Key: "child", Label: "C", Keywords: &Match{Level1: []string{"beta"}}}},
	}}
	rows := Rows{
		{Level1: "Alpha", Current: 10},
		{Level1: "Beta", Current: 99},
	}

	out := Evaluate(tree, NewPass(rows, nil, nil))

	require.NotNil(t, out[0].Value)
	assert.Equal(t, 10.0, out[0].Value.Current)
}

func TestBareNodeResolvesBlank(t *testing.T) {
	out := Evaluate([]TemplateNode{{Key: "hdr", Label: "ASSETS"}}, NewPass(nil, nil, nil))
	assert.Nil(t, out[0].Value)
}

func TestEvaluateIdempotent(t *testing.T) {
	rows := Rows{
		{Level1: "Inventories", Level2: "Raw Material", Current: 100, Previous: 80},
		{Level1: "Trade Payables", Level2: "MSME", Current: 60, Previous: 45},
	}
	tree := []TemplateNode{
		{Key: "a", Label: "A", ID: "x", Keywords: &Match{Level1: []string{"inventories"}}},
		{Key: "b", Label: "B", ID: "y", Keywords: &Match{Level1: []string{"payables"}}},
		{Key: "t", Label: "T", Formula: &Formula{Left: "x", Op: "+", Right: "y"}},
	}

	first := Evaluate(tree, NewPass(rows, nil, nil))
	second := Evaluate(tree, NewPass(rows, nil, nil))

	assert.Equal(t, first, second)
}

func TestStatementReadsNoteItemByPath(t *testing.T) {
	buildNote := func(current float64) *FinancialNote {
		return &FinancialNote{
			Number: "9",
			Title:  "Inventories",
			Content: []Element{
				{Text: "Valued at lower of cost and net realisable value."},
				{Item: &ResolvedNode{
					Key: "total", Label: "Total",
					Value: &Amount{Current: current, Previous: 300},
				}},
			},
		}
	}
	tree := []TemplateNode{{Key: "bs-inv", Label: "Inventories", Note: "9"}}
	overrides := map[string]Resolver{"bs-inv": FromNote("9", "total")}

	out := Evaluate(tree, NewPass(nil, []*FinancialNote{buildNote(400)}, overrides))
	require.NotNil(t, out[0].Value)
	assert.Equal(t, 400.0, out[0].Value.Current)

	// An edited note flows straight through on the next evaluation; the
	// statement never re-derives the figure.
	edited := Evaluate(tree, NewPass(nil, []*FinancialNote{buildNote(555)}, overrides))
	require.NotNil(t, edited[0].Value)
	assert.Equal(t, 555.0, edited[0].Value.Current)
}

func TestNoteItemNestedLookup(t *testing.T) {
	note := &FinancialNote{
		Number: "11",
		Content: []Element{
			{Item: &ResolvedNode{
				Key: "cash-equivalents", Label: "Cash and cash equivalents",
				Children: []ResolvedNode{
					{Key: "cash-on-hand", Label: "Cash on hand", Value: &Amount{Current: 7, Previous: 5}},
					{Key: "bank-current", Label: "In current accounts", Value: &Amount{Current: 93, Previous: 70}},
				},
			}},
		},
	}

	item := note.Item("cash-equivalents", "cash-on-hand")
	require.NotNil(t, item)
	assert.Equal(t, 7.0, item.Value.Current)

	assert.Nil(t, note.Item("cash-equivalents", "missing"))
	assert.Nil(t, note.Item("missing"))
}

func TestMissingNotePathResolvesBlank(t *testing.T) {
	tree := []TemplateNode{{Key: "row", Label: "Row", Note: "9"}}
	overrides := map[string]Resolver{"row": FromNote("9", "gone")}

	out := Evaluate(tree, NewPass(nil, nil, overrides))
	assert.Nil(t, out[0].Value)
}

func TestResolverCombinators(t *testing.T) {
	p := NewPass(nil, []*FinancialNote{{
		Number: "4",
		Total:  &Amount{Current: -120, Previous: 100},
	}}, nil)

	neg := Negated(NoteTotal("4"))(p)
	require.NotNil(t, neg)
	assert.Equal(t, Amount{Current: 120, Previous: -100}, *neg)

	abs := Absolute(NoteTotal("4"))(p)
	require.NotNil(t, abs)
	assert.Equal(t, Amount{Current: 120, Previous: 100}, *abs)

	delta := Delta(NoteTotal("4"))(p)
	require.NotNil(t, delta)
	assert.Equal(t, Amount{Current: -220}, *delta)

	opening := Opening(NoteTotal("4"))(p)
	require.NotNil(t, opening)
	assert.Equal(t, Amount{Current: 100}, *opening)

	assert.Nil(t, Negated(NoteTotal("99"))(p))
	assert.Nil(t, SumOf(NoteTotal("98"), NoteTotal("99"))(p))

	sum := SumOf(NoteTotal("4"), Fixed(20, 0))(p)
	require.NotNil(t, sum)
	assert.Equal(t, Amount{Current: -100, Previous: 100}, *sum)
}

func TestTotalsOf(t *testing.T) {
	p := NewPass(nil, nil, nil)
	p.register("a", Amount{Current: 1, Previous: 2})
	p.register("b", Amount{Current: 10, Previous: 20})

	got := TotalsOf("a", "b")(p)
	require.NotNil(t, got)
	assert.Equal(t, Amount{Current: 11, Previous: 22}, *got)

	assert.Nil(t, TotalsOf("a", "missing")(p))
}
