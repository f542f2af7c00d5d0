package report

// ProfitLossTemplate is the Schedule III statement of profit and loss.
// The derived rows (total revenue, profit before tax, profit for the
// year) are formula nodes over ids registered by earlier lines.
func ProfitLossTemplate() []TemplateNode {
	return []TemplateNode{
		{Key: "pl-income", Label: "INCOME"},
		{Key: "pl-revenue-operations", Label: "Revenue from operations", Note: "13", ID: "revenue"},
		{Key: "pl-other-income", Label: "Other income", Note: "14", ID: "other-income"},
		{
			Key: "pl-total-revenue", Label: "Total revenue", IsSubtotal: true, ID: "total-revenue",
			Formula: &Formula{Left: "revenue", Op: "+", Right: "other-income"},
		},
		{
			Key: "pl-expenses", Label: "EXPENSES", IsSubtotal: true, ID: "total-expenses",
			Children: []TemplateNode{
				{Key: "pl-cost-materials", Label: "Cost of materials consumed", Note: "15"},
				{Key: "pl-inventory-change", Label: "Changes in inventories of finished goods and work-in-progress",
					Keywords: &Match{Level1: []string{"changes in inventor", "increase/(decrease)"}}},
				{Key: "pl-employee-benefits", Label: "Employee benefits expense", Note: "16"},
				{Key: "pl-finance-costs", Label: "Finance costs", Note: "17"},
				{Key: "pl-depreciation", Label: "Depreciation and amortisation expense", Note: "18"},
				{Key: "pl-other-expenses", Label: "Other expenses", Note: "19"},
			},
		},
		{
			Key: "pl-pbt", Label: "Profit before tax", IsSubtotal: true, ID: "pbt",
			Formula: &Formula{Left: "total-revenue", Op: "-", Right: "total-expenses"},
		},
		{
			Key: "pl-tax", Label: "Tax expense", Note: "20", ID: "tax",
			Children: []TemplateNode{
				{Key: "pl-current-tax", Label: "Current tax"},
				{Key: "pl-deferred-tax", Label: "Deferred tax"},
			},
		},
		{
			Key: "pl-pat", Label: "Profit for the year", IsGrandTotal: true, ID: "pat",
			Formula: &Formula{Left: "pbt", Op: "-", Right: "tax"},
		},
		{
			Key: "pl-eps", Label: "Earnings per equity share (face value Rs. 10 each)", Note: "21",
			Children: []TemplateNode{
				{Key: "pl-eps-basic", Label: "Basic (Rs.)"},
				{Key: "pl-eps-diluted", Label: "Diluted (Rs.)"},
			},
		},
	}
}

func profitLossOverrides() map[string]Resolver {
	return map[string]Resolver{
		"pl-revenue-operations": NoteTotal("13"),
		"pl-other-income":       NoteTotal("14"),
		"pl-cost-materials":     NoteTotal("15"),
		"pl-employee-benefits":  NoteTotal("16"),
		"pl-finance-costs":      NoteTotal("17"),
		"pl-depreciation":       NoteTotal("18"),
		"pl-other-expenses":     NoteTotal("19"),
		"pl-tax":                NoteTotal("20"),
		"pl-current-tax":        FromNote("20", "current-tax"),
		"pl-deferred-tax":       FromNote("20", "deferred-tax"),
		// EPS rows are ratios; summing them into a parent would be
		// meaningless, so the parent is a plain label and each row reads
		// its own note item.
		"pl-eps":         func(*Pass) *Amount { return nil },
		"pl-eps-basic":   FromNote("21", "basic"),
		"pl-eps-diluted": FromNote("21", "diluted"),
	}
}
