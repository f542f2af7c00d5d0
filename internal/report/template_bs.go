package report

// BalanceSheetTemplate is the Schedule III balance sheet layout. Leaves
// that carry a Note reference are wired to that note through the override
// table so the statement can never disagree with its disclosure.
func BalanceSheetTemplate() []TemplateNode {
	return []TemplateNode{
		{Key: "bs-equity-liabilities", Label: "EQUITY AND LIABILITIES"},
		{
			Key: "bs-shareholders-funds", Label: "Shareholders' funds",
			IsSubtotal: true, ID: "shareholders-funds",
			Children: []TemplateNode{
				{Key: "bs-share-capital", Label: "Share capital", Note: "2"},
				{Key: "bs-reserves-surplus", Label: "Reserves and surplus", Note: "3"},
			},
		},
		{
			Key: "bs-non-current-liabilities", Label: "Non-current liabilities",
			IsSubtotal: true, ID: "non-current-liabilities",
			Children: []TemplateNode{
				{Key: "bs-long-term-borrowings", Label: "Long-term borrowings", Note: "4"},
				{
					Key: "bs-deferred-tax", Label: "Deferred tax liabilities (net)",
					Keywords: &Match{Level1: []string{"deferred tax"}},
				},
			},
		},
		{
			Key: "bs-current-liabilities", Label: "Current liabilities",
			IsSubtotal: true, ID: "current-liabilities",
			Children: []TemplateNode{
				{Key: "bs-short-term-borrowings", Label: "Short-term borrowings",
					Keywords: &Match{Level1: []string{"short term borrowing", "short-term borrowing", "cash credit"}}},
				{Key: "bs-trade-payables", Label: "Trade payables", Note: "5"},
				{Key: "bs-other-current-liabilities", Label: "Other current liabilities", Note: "6"},
				{Key: "bs-short-term-provisions", Label: "Short-term provisions", Note: "7"},
			},
		},
		{Key: "bs-total-equity-liabilities", Label: "TOTAL", IsGrandTotal: true, ID: "total-equity-liabilities"},
		{Key: "bs-assets", Label: "ASSETS"},
		{
			Key: "bs-non-current-assets", Label: "Non-current assets",
			IsSubtotal: true, ID: "non-current-assets",
			Children: []TemplateNode{
				{Key: "bs-ppe", Label: "Property, plant and equipment", Note: "8"},
				{Key: "bs-capital-wip", Label: "Capital work-in-progress",
					Keywords: &Match{Level1: []string{"capital work"}}},
				{Key: "bs-long-term-loans-advances", Label: "Long-term loans and advances",
					Keywords: &Match{Level1: []string{"loans and advances"}, Level2: []string{"long term", "long-term", "security deposit"}}},
			},
		},
		{
			Key: "bs-current-assets", Label: "Current assets",
			IsSubtotal: true, ID: "current-assets",
			Children: []TemplateNode{
				{Key: "bs-inventories", Label: "Inventories", Note: "9"},
				{Key: "bs-trade-receivables", Label: "Trade receivables", Note: "10"},
				{Key: "bs-cash-bank", Label: "Cash and bank balances", Note: "11"},
				{Key: "bs-short-term-loans-advances", Label: "Short-term loans and advances", Note: "12"},
			},
		},
		{
			Key: "bs-total-assets", Label: "TOTAL", IsGrandTotal: true, ID: "total-assets",
			Formula: &Formula{Left: "non-current-assets", Op: "+", Right: "current-assets"},
		},
	}
}

// balanceSheetOverrides wires note-bearing leaves to their notes. The
// liabilities grand total spans three section totals, which a binary
// formula cannot express, so it resolves through TotalsOf.
func balanceSheetOverrides() map[string]Resolver {
	return map[string]Resolver{
		"bs-share-capital":             FromNote("2", "issued-subscribed-paid-up"),
		"bs-reserves-surplus":          NoteTotal("3"),
		"bs-long-term-borrowings":      NoteTotal("4"),
		"bs-trade-payables":            NoteTotal("5"),
		"bs-other-current-liabilities": NoteTotal("6"),
		"bs-short-term-provisions":     NoteTotal("7"),
		"bs-total-equity-liabilities":  TotalsOf("shareholders-funds", "non-current-liabilities", "current-liabilities"),
		"bs-ppe":                       FromNote("8", "net-block"),
		"bs-inventories":               NoteTotal("9"),
		"bs-trade-receivables":         NoteTotal("10"),
		"bs-cash-bank":                 NoteTotal("11"),
		"bs-short-term-loans-advances": NoteTotal("12"),
	}
}
