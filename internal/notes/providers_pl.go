package notes

import "github.com/plutus-labs/schedule3/internal/report"

func revenueFromOperations(rows report.Rows) *report.FinancialNote {
	content := []report.Element{
		item("sale-of-products", "Sale of products",
			match(rows, []string{"sales", "revenue from operations"}, nil)),
		item("sale-of-services", "Sale of services",
			match(rows, []string{"job work", "service income", "labour charges received"}, nil)),
		item("other-operating", "Other operating revenue (scrap)",
			match(rows, []string{"scrap"}, nil)),
	}
	return &report.FinancialNote{
		Title:   "Revenue from Operations",
		Content: content,
		Footer:  "Revenue is stated net of GST and trade discounts.",
		Total:   totalOf(content),
	}
}

func otherIncome(rows report.Rows) *report.FinancialNote {
	content := []report.Element{
		item("interest-income", "Interest income",
			match(rows, []string{"interest received", "interest income", "interest on fd"}, nil)),
		item("discount-received", "Discount received",
			match(rows, []string{"discount received"}, nil)),
		item("misc-income", "Miscellaneous income",
			match(rows, []string{"miscellaneous income", "other income", "exchange gain"}, nil)),
	}
	return &report.FinancialNote{
		Title:   "Other Income",
		Content: content,
		Total:   totalOf(content),
	}
}

func costOfMaterials(rows report.Rows) *report.FinancialNote {
	opening := match(rows, []string{"opening stock"}, []string{"raw material"})
	purchases := match(rows, []string{"purchase"}, nil)
	closing := match(rows, []string{"closing stock"}, []string{"raw material"}).Abs()
	consumed := opening.Add(purchases).Sub(closing)

	content := []report.Element{
		item("opening-stock", "Opening stock of raw materials", opening),
		item("purchases", "Add: purchases", purchases),
		item("closing-stock", "Less: closing stock of raw materials", closing),
		item("consumed", "Cost of materials consumed", consumed),
	}
	n := &report.FinancialNote{Title: "Cost of Materials Consumed", Content: content}
	n.Total = &consumed
	return n
}

func employeeBenefits(rows report.Rows) *report.FinancialNote {
	content := []report.Element{
		item("salaries-wages", "Salaries, wages and bonus",
			match(rows, []string{"salaries", "salary", "wages", "bonus"}, nil)),
		item("contribution-funds", "Contribution to provident and other funds",
			match(rows, []string{"provident fund", "pf contribution", "esi contribution"}, nil)),
		item("gratuity", "Gratuity expense",
			match(rows, []string{"gratuity"}, nil)),
		item("staff-welfare", "Staff welfare expenses",
			match(rows, []string{"staff welfare", "labour welfare"}, nil)),
	}
	return &report.FinancialNote{
		Title:   "Employee Benefits Expense",
		Content: content,
		Total:   totalOf(content),
	}
}

func financeCosts(rows report.Rows) *report.FinancialNote {
	content := []report.Element{
		item("interest-borrowings", "Interest on borrowings",
			match(rows, []string{"interest paid"}, []string{"loan", "cash credit", "borrowing"})),
		item("bank-charges", "Bank charges",
			match(rows, []string{"bank charges"}, nil)),
	}
	return &report.FinancialNote{
		Title:   "Finance Costs",
		Content: content,
		Total:   totalOf(content),
	}
}

func depreciation(rows report.Rows) *report.FinancialNote {
	content := []report.Element{
		// "depreciation" alone would also sweep up the accumulated
		// depreciation balance; the expense line carries its own label.
		item("depreciation", "Depreciation on property, plant and equipment",
			match(rows, []string{"depreciation expense", "depreciation for the year"}, nil)),
	}
	return &report.FinancialNote{
		Title:   "Depreciation and Amortisation Expense",
		Content: content,
		Total:   totalOf(content),
	}
}

func otherExpenses(rows report.Rows) *report.FinancialNote {
	content := []report.Element{
		item("power-fuel", "Power and fuel",
			match(rows, []string{"power", "electricity", "fuel"}, nil)),
		// A bare "rent" keyword would also match "Current Tax" under
		// substring matching, so the phrasings are spelled out.
		item("rent", "Rent",
			match(rows, []string{"rent paid", "rent expense", "office rent", "factory rent", "godown rent"}, nil)),
		item("repairs", "Repairs and maintenance",
			match(rows, []string{"repair"}, nil)),
		item("insurance", "Insurance",
			match(rows, []string{"insurance"}, nil)),
		item("freight", "Freight and forwarding",
			match(rows, []string{"freight", "carriage", "transport"}, nil)),
		item("legal-professional", "Legal and professional charges",
			match(rows, []string{"legal", "professional", "consultancy"}, nil)),
		item("audit-fees", "Payment to auditors",
			match(rows, []string{"audit fee"}, nil)),
		item("misc", "Miscellaneous expenses",
			match(rows, []string{"printing", "stationery", "telephone", "travelling", "conveyance", "office expense", "miscellaneous expense"}, nil)),
	}
	return &report.FinancialNote{
		Title:   "Other Expenses",
		Content: content,
		Total:   totalOf(content),
	}
}

func taxExpense(rows report.Rows) *report.FinancialNote {
	current := match(rows, []string{"current tax", "income tax expense", "provision for tax"}, nil)
	deferred := match(rows, []string{"deferred tax"}, []string{"charge", "expense", "credit"})
	content := []report.Element{
		item("current-tax", "Current tax", current),
		item("deferred-tax", "Deferred tax", deferred),
	}
	return &report.FinancialNote{
		Title:   "Tax Expense",
		Content: content,
		Total:   totalOf(content),
	}
}

func earningsPerShare(rows report.Rows) *report.FinancialNote {
	income := match(rows, []string{"sales", "revenue", "scrap", "interest received", "discount received"}, nil)
	expenses := match(rows, []string{"purchase", "opening stock", "salaries", "salary", "wages", "power", "rent paid", "rent expense",
		"repair", "insurance", "freight", "interest paid", "bank charges", "depreciation expense", "legal", "professional",
		"audit fee", "printing", "stationery", "telephone", "travelling", "current tax"}, nil)
	closing := match(rows, []string{"closing stock"}, nil).Abs()
	profit := income.Sub(expenses).Add(closing)

	basic := report.Amount{
		Current:  profit.Current / issuedShares,
		Previous: profit.Previous / issuedShares,
	}
	content := []report.Element{
		item("profit-attributable", "Profit attributable to equity shareholders", profit),
		item("weighted-shares", "Weighted average number of equity shares",
			report.Amount{Current: issuedShares, Previous: issuedShares}),
		item("basic", "Basic earnings per share (Rs.)", basic),
		// No dilutive instruments are outstanding.
		item("diluted", "Diluted earnings per share (Rs.)", basic),
	}
	return &report.FinancialNote{
		Title:   "Earnings per Share",
		Content: content,
	}
}
