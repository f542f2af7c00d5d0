package report

// Resolver computes a node's value from the pass context. A nil result
// means "no figure" and renders as a blank cell.
type Resolver func(p *Pass) *Amount

// Pass is the context for one evaluation of one statement tree: the ledger
// rows, the built notes, the per-statement key overrides, and the total
// table that formula nodes read. A fresh Pass is created for every
// evaluation, so nothing leaks between renders and evaluation is
// idempotent.
type Pass struct {
	Rows      Rows
	Overrides map[string]Resolver

	notes  map[string]*FinancialNote
	totals map[string]Amount
}

// NewPass builds an evaluation context over the given rows and notes.
func NewPass(rows Rows, notes []*FinancialNote, overrides map[string]Resolver) *Pass {
	byNumber := make(map[string]*FinancialNote, len(notes))
	for _, n := range notes {
		byNumber[n.Number] = n
	}
	return &Pass{
		Rows:      rows,
		Overrides: overrides,
		notes:     byNumber,
		totals:    make(map[string]Amount),
	}
}

// Note returns the note with the given printed number, or nil.
func (p *Pass) Note(number string) *FinancialNote {
	return p.notes[number]
}

// Total returns a total registered earlier in this pass.
func (p *Pass) Total(id string) (Amount, bool) {
	a, ok := p.totals[id]
	return a, ok
}

func (p *Pass) register(id string, a Amount) {
	p.totals[id] = a
}

// Evaluate resolves a statement template against the pass context,
// producing a value-populated tree of the same shape.
func Evaluate(tree []TemplateNode, p *Pass) []ResolvedNode {
	out := make([]ResolvedNode, 0, len(tree))
	for _, n := range tree {
		out = append(out, processNode(n, p))
	}
	return out
}

// processNode resolves one node. Children are processed first, in template
// order, so their registered ids are visible to the parent and to later
// siblings. The node's own value is then decided by a fixed precedence:
//
//  1. an override registered for the node's key
//  2. a keyword filter against the ledger rows
//  3. the sum of the resolved children (nil children count as 0)
//  4. a formula over previously registered totals
//  5. no rule: nil value (a structural label)
//
// Every missing-data path degrades to 0 or nil rather than failing; a
// partially populated statement is still useful to a reviewer.
func processNode(n TemplateNode, p *Pass) ResolvedNode {
	out := ResolvedNode{
		Key:          n.Key,
		Label:        n.Label,
		Note:         n.Note,
		IsSubtotal:   n.IsSubtotal,
		IsGrandTotal: n.IsGrandTotal,
	}
	if len(n.Children) > 0 {
		out.Children = make([]ResolvedNode, 0, len(n.Children))
		for _, c := range n.Children {
			out.Children = append(out.Children, processNode(c, p))
		}
	}

	switch {
	case p.Overrides[n.Key] != nil:
		out.Value = p.Overrides[n.Key](p)

	case n.Keywords != nil:
		v := p.Rows.MatchAmount(n.Keywords)
		out.Value = &v

	case len(out.Children) > 0:
		var sum Amount
		for _, c := range out.Children {
			if c.Value != nil {
				sum = sum.Add(*c.Value)
			}
		}
		out.Value = &sum

	case n.Formula != nil:
		left, okL := p.Total(n.Formula.Left)
		right, okR := p.Total(n.Formula.Right)
		if okL && okR {
			var v Amount
			if n.Formula.Op == "-" {
				v = left.Sub(right)
			} else {
				v = left.Add(right)
			}
			out.Value = &v
		}
	}

	// Totals register in traversal order; a formula can only see ids that
	// resolved before it. Template authors control the order.
	if n.ID != "" && out.Value != nil {
		p.register(n.ID, *out.Value)
	}
	return out
}
