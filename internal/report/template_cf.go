package report

// CashFlowTemplate is the indirect-method cash flow statement. It is built
// almost entirely from note references and registered totals: movements
// are year-on-year deltas of balance-sheet notes, so only the current
// column carries a figure on those rows.
func CashFlowTemplate() []TemplateNode {
	return []TemplateNode{
		{Key: "cf-operating", Label: "A. CASH FLOW FROM OPERATING ACTIVITIES"},
		{Key: "cf-pbt", Label: "Profit before tax", ID: "cf-pbt"},
		{
			Key: "cf-adjustments", Label: "Adjustments for:", IsSubtotal: true, ID: "cf-adjustments",
			Children: []TemplateNode{
				{Key: "cf-adj-depreciation", Label: "Depreciation and amortisation"},
				{Key: "cf-adj-finance-costs", Label: "Finance costs"},
				{Key: "cf-adj-interest-income", Label: "Interest income"},
			},
		},
		{
			Key: "cf-operating-gross", Label: "Operating profit before working capital changes",
			IsSubtotal: true, ID: "cf-operating-gross",
			Formula: &Formula{Left: "cf-pbt", Op: "+", Right: "cf-adjustments"},
		},
		{
			Key: "cf-working-capital", Label: "Changes in working capital:", IsSubtotal: true, ID: "cf-working-capital",
			Children: []TemplateNode{
				{Key: "cf-wc-inventories", Label: "(Increase)/decrease in inventories"},
				{Key: "cf-wc-receivables", Label: "(Increase)/decrease in trade receivables"},
				{Key: "cf-wc-loans-advances", Label: "(Increase)/decrease in loans and advances"},
				{Key: "cf-wc-payables", Label: "Increase/(decrease) in trade payables"},
				{Key: "cf-wc-other-liabilities", Label: "Increase/(decrease) in other current liabilities"},
			},
		},
		{
			Key: "cf-cash-generated", Label: "Cash generated from operations", IsSubtotal: true, ID: "cf-cash-generated",
			Formula: &Formula{Left: "cf-operating-gross", Op: "+", Right: "cf-working-capital"},
		},
		{Key: "cf-taxes-paid", Label: "Direct taxes paid (net of refunds)", ID: "cf-taxes-paid"},
		{
			Key: "cf-operating-net", Label: "Net cash from operating activities (A)",
			IsGrandTotal: true, ID: "cf-operating-net",
			Formula: &Formula{Left: "cf-cash-generated", Op: "+", Right: "cf-taxes-paid"},
		},

		{Key: "cf-investing", Label: "B. CASH FLOW FROM INVESTING ACTIVITIES"},
		{
			Key: "cf-investing-net", Label: "Net cash used in investing activities (B)",
			IsGrandTotal: true, ID: "cf-investing-net",
			Children: []TemplateNode{
				{Key: "cf-inv-ppe", Label: "Purchase of property, plant and equipment"},
				{Key: "cf-inv-interest", Label: "Interest received"},
			},
		},

		{Key: "cf-financing", Label: "C. CASH FLOW FROM FINANCING ACTIVITIES"},
		{
			Key: "cf-financing-net", Label: "Net cash from financing activities (C)",
			IsGrandTotal: true, ID: "cf-financing-net",
			Children: []TemplateNode{
				{Key: "cf-fin-borrowings", Label: "Proceeds from/(repayment of) borrowings"},
				{Key: "cf-fin-finance-costs", Label: "Finance costs paid"},
			},
		},

		{
			Key: "cf-net-change", Label: "Net increase/(decrease) in cash and cash equivalents (A+B+C)",
			IsSubtotal: true, ID: "cf-net-change",
		},
		{Key: "cf-opening-cash", Label: "Cash and cash equivalents at the beginning of the year", ID: "cf-opening-cash"},
		{
			Key: "cf-closing-cash", Label: "Cash and cash equivalents at the end of the year",
			IsGrandTotal: true,
			Formula:      &Formula{Left: "cf-net-change", Op: "+", Right: "cf-opening-cash"},
		},
	}
}

func cashFlowOverrides() map[string]Resolver {
	profitBeforeTax := Diff(
		SumOf(NoteTotal("13"), NoteTotal("14")),
		SumOf(NoteTotal("15"), NoteTotal("16"), NoteTotal("17"), NoteTotal("18"), NoteTotal("19")),
	)
	return map[string]Resolver{
		"cf-pbt":                 profitBeforeTax,
		"cf-adj-depreciation":    NoteTotal("18"),
		"cf-adj-finance-costs":   NoteTotal("17"),
		"cf-adj-interest-income": Negated(FromNote("14", "interest-income")),
		// Asset balances rising consume cash; liability balances rising
		// release it.
		"cf-wc-inventories":       Negated(Delta(NoteTotal("9"))),
		"cf-wc-receivables":       Negated(Delta(NoteTotal("10"))),
		"cf-wc-loans-advances":    Negated(Delta(NoteTotal("12"))),
		"cf-wc-payables":          Delta(NoteTotal("5")),
		"cf-wc-other-liabilities": Delta(NoteTotal("6")),
		"cf-taxes-paid":           Negated(NoteTotal("20")),
		"cf-inv-ppe":              Negated(FromNote("8", "additions")),
		"cf-inv-interest":         FromNote("14", "interest-income"),
		"cf-fin-borrowings":       Delta(NoteTotal("4")),
		"cf-fin-finance-costs":    Negated(NoteTotal("17")),
		"cf-net-change":           TotalsOf("cf-operating-net", "cf-investing-net", "cf-financing-net"),
		"cf-opening-cash":         Opening(NoteTotal("11")),
	}
}
