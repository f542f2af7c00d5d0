package report

// Item walks a note's content forest by key path: the first segment
// selects a top-level item, subsequent segments descend through children.
// A missing note item returns nil; callers degrade to a blank value.
func (n *FinancialNote) Item(path ...string) *ResolvedNode {
	if n == nil || len(path) == 0 {
		return nil
	}
	for i := range n.Content {
		item := n.Content[i].Item
		if item != nil && item.Key == path[0] {
			return findNested(item, path[1:])
		}
	}
	return nil
}

func findNested(item *ResolvedNode, path []string) *ResolvedNode {
	if len(path) == 0 {
		return item
	}
	for i := range item.Children {
		if item.Children[i].Key == path[0] {
			return findNested(&item.Children[i], path[1:])
		}
	}
	return nil
}

// FromNote wires a statement line to an addressable item inside a note.
// This is the cross-statement contract: the statement shows exactly what
// the note shows, so the two can never disagree. If the note or path is
// missing the line resolves blank.
func FromNote(number string, path ...string) Resolver {
	return func(p *Pass) *Amount {
		item := p.Note(number).Item(path...)
		if item == nil || item.Value == nil {
			return nil
		}
		v := *item.Value
		return &v
	}
}

// NoteTotal wires a statement line to a note's overall total.
func NoteTotal(number string) Resolver {
	return func(p *Pass) *Amount {
		n := p.Note(number)
		if n == nil || n.Total == nil {
			return nil
		}
		v := *n.Total
		return &v
	}
}

// Negated flips the sign of another resolver's result. Used for contra
// presentation, e.g. income shown inside an outflow block.
func Negated(r Resolver) Resolver {
	return func(p *Pass) *Amount {
		a := r(p)
		if a == nil {
			return nil
		}
		v := a.Neg()
		return &v
	}
}

// Absolute presents another resolver's result unsigned.
func Absolute(r Resolver) Resolver {
	return func(p *Pass) *Amount {
		a := r(p)
		if a == nil {
			return nil
		}
		v := a.Abs()
		return &v
	}
}

// Fixed injects a literal figure, for rows whose value comes from outside
// the trial balance (e.g. number of shares).
func Fixed(current, previous float64) Resolver {
	return func(*Pass) *Amount {
		return &Amount{Current: current, Previous: previous}
	}
}

// SumOf adds the results of several resolvers, treating nil as 0. The
// result is nil only when every operand is nil.
func SumOf(resolvers ...Resolver) Resolver {
	return func(p *Pass) *Amount {
		var sum Amount
		any := false
		for _, r := range resolvers {
			if a := r(p); a != nil {
				sum = sum.Add(*a)
				any = true
			}
		}
		if !any {
			return nil
		}
		return &sum
	}
}

// TotalsOf adds totals already registered in the pass. Unlike a Formula it
// takes any number of operands; like a Formula it resolves nil when any
// operand has not been registered yet.
func TotalsOf(ids ...string) Resolver {
	return func(p *Pass) *Amount {
		var sum Amount
		for _, id := range ids {
			a, ok := p.Total(id)
			if !ok {
				return nil
			}
			sum = sum.Add(a)
		}
		return &sum
	}
}

// Delta converts a balance pair into the year-on-year movement used on the
// cash flow statement. Only the current year's movement is derivable from
// a two-column trial balance; the prior column is reported as 0.
func Delta(r Resolver) Resolver {
	return func(p *Pass) *Amount {
		a := r(p)
		if a == nil {
			return nil
		}
		return &Amount{Current: a.Current - a.Previous}
	}
}

// Opening reports the prior-year balance as the current figure, for the
// "opening cash and cash equivalents" line.
func Opening(r Resolver) Resolver {
	return func(p *Pass) *Amount {
		a := r(p)
		if a == nil {
			return nil
		}
		return &Amount{Current: a.Previous}
	}
}

// Diff subtracts the second resolver's result from the first, treating nil
// as 0 on either side; nil only when both are nil.
func Diff(a, b Resolver) Resolver {
	return func(p *Pass) *Amount {
		left := a(p)
		right := b(p)
		if left == nil && right == nil {
			return nil
		}
		var v Amount
		if left != nil {
			v = *left
		}
		if right != nil {
			v = v.Sub(*right)
		}
		return &v
	}
}
