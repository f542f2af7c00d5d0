package notes

import "github.com/plutus-labs/schedule3/internal/report"

func propertyPlantEquipment(rows report.Rows) *report.FinancialNote {
	gross := match(rows, []string{"plant and machinery", "factory building", "furniture", "vehicles", "office equipment", "computers"}, nil)
	accumulated := match(rows, []string{"accumulated depreciation"}, nil).Abs()
	additions := match(rows, []string{"additions to fixed assets", "asset additions"}, nil)
	net := gross.Sub(accumulated)

	content := []report.Element{
		item("gross-block", "Gross block", gross),
		item("accumulated-depreciation", "Less: accumulated depreciation", accumulated),
		item("additions", "Additions during the year", additions),
		item("net-block", "Net block", net),
		table(
			[]string{"", "Gross block", "Accumulated depreciation", "Net block"},
			[][]string{
				{"As at end of current year", report.FormatIndian(gross.Current), report.FormatIndian(accumulated.Current), report.FormatIndian(net.Current)},
				{"As at end of previous year", report.FormatIndian(gross.Previous), report.FormatIndian(accumulated.Previous), report.FormatIndian(net.Previous)},
			},
		),
	}
	n := &report.FinancialNote{Title: "Property, Plant and Equipment", Content: content}
	// The balance sheet carries the net block only.
	n.Total = &net
	return n
}

func inventories(rows report.Rows) *report.FinancialNote {
	content := []report.Element{
		item("raw-materials", "Raw materials",
			match(rows, []string{"inventories", "stock"}, []string{"raw material"})),
		item("work-in-progress", "Work-in-progress",
			match(rows, []string{"inventories", "stock"}, []string{"work in progress", "work-in-progress", "wip"})),
		item("finished-goods", "Finished goods",
			match(rows, []string{"inventories", "stock"}, []string{"finished"})),
		item("stores-spares", "Stores and spares",
			match(rows, []string{"inventories", "stock"}, []string{"stores", "spares", "consumable"})),
	}
	return &report.FinancialNote{
		Title:   "Inventories",
		Content: content,
		Footer:  "Inventories are valued at the lower of cost and net realisable value, as certified by the management.",
		Total:   totalOf(content),
	}
}

func tradeReceivables(rows report.Rows) *report.FinancialNote {
	total := match(rows, []string{"trade receivable", "sundry debtor"}, nil)
	overSix := match(rows, []string{"trade receivable", "sundry debtor"}, []string{"exceeding six months", "more than six months", "doubtful"})
	within := total.Sub(overSix)

	content := []report.Element{
		item("over-six-months", "Outstanding for a period exceeding six months", overSix),
		item("others", "Other receivables", within),
		table(
			[]string{"Ageing", "< 6 months", "6 months - 1 year", "1-2 years", "> 2 years"},
			[][]string{
				{"Undisputed, considered good",
					report.FormatIndian(within.Current),
					report.FormatIndian(overSix.Current * 0.6),
					report.FormatIndian(overSix.Current * 0.4),
					"-"},
			},
		),
	}
	return &report.FinancialNote{
		Title:   "Trade Receivables",
		Content: content,
		Footer:  "Receivables are unsecured and considered good unless stated otherwise.",
		Total:   totalOf(content),
	}
}

func cashAndBank(rows report.Rows) *report.FinancialNote {
	content := []report.Element{
		group("cash-equivalents", "Cash and cash equivalents",
			child("cash-on-hand", "Cash on hand",
				match(rows, []string{"cash in hand", "cash on hand", "petty cash"}, nil)),
			child("bank-current", "Balances with banks in current accounts",
				match(rows, []string{"bank"}, []string{"current account", "ca "})),
		),
		group("other-bank-balances", "Other bank balances",
			child("fixed-deposits", "Deposits with original maturity of more than three months",
				match(rows, []string{"fixed deposit", "bank"}, []string{"fd", "deposit"})),
		),
	}
	return &report.FinancialNote{
		Title:   "Cash and Bank Balances",
		Content: content,
		Total:   totalOf(content),
	}
}

func shortTermLoansAdvances(rows report.Rows) *report.FinancialNote {
	content := []report.Element{
		item("advances-suppliers", "Advances to suppliers",
			match(rows, []string{"advance to supplier", "advance to vendor"}, nil)),
		item("staff-advances", "Advances to staff",
			match(rows, []string{"staff advance", "advance to staff", "employee advance"}, nil)),
		item("balance-authorities", "Balances with government authorities",
			match(rows, []string{"gst input", "input tax", "tds receivable", "advance tax"}, nil)),
		item("prepaid", "Prepaid expenses",
			match(rows, []string{"prepaid"}, nil)),
	}
	return &report.FinancialNote{
		Title:   "Short-Term Loans and Advances",
		Content: content,
		Footer:  "Unsecured, considered good.",
		Total:   totalOf(content),
	}
}
