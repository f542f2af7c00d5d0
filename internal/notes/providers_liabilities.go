package notes

import "github.com/plutus-labs/schedule3/internal/report"

// Company constants the trial balance cannot supply: share counts and the
// opening surplus brought forward from the prior year's audited accounts.
const (
	authorizedShares = 2000000
	issuedShares     = 1500000
	faceValue        = 10
)

func accountingPolicies(report.Rows) *report.FinancialNote {
	return &report.FinancialNote{
		Title: "Significant Accounting Policies",
		Content: []report.Element{
			text("The financial statements are prepared under the historical cost convention on an accrual basis, in accordance with the Companies Act, 2013 and applicable Accounting Standards."),
			text("Revenue from sale of goods is recognised on transfer of significant risks and rewards of ownership, net of returns, trade discounts and GST."),
			text("Inventories are valued at the lower of cost and net realisable value. Cost is determined on a weighted average basis."),
			text("Depreciation on property, plant and equipment is provided on the written down value method over the useful lives prescribed in Schedule II to the Companies Act, 2013."),
		},
	}
}

func shareCapital(rows report.Rows) *report.FinancialNote {
	paidUp := match(rows, []string{"share capital", "equity share"}, nil)
	content := []report.Element{
		item("authorised", "Authorised: 20,00,000 equity shares of Rs. 10 each",
			report.Amount{Current: authorizedShares * faceValue, Previous: authorizedShares * faceValue}),
		item("issued-subscribed-paid-up", "Issued, subscribed and fully paid up: 15,00,000 equity shares of Rs. 10 each", paidUp),
		table(
			[]string{"", "As at 31 March (Current)", "As at 31 March (Previous)"},
			[][]string{
				{"Shares outstanding at the beginning of the year", report.FormatIndianWhole(issuedShares), report.FormatIndianWhole(issuedShares)},
				{"Shares issued during the year", "-", "-"},
				{"Shares outstanding at the end of the year", report.FormatIndianWhole(issuedShares), report.FormatIndianWhole(issuedShares)},
			},
		),
	}
	n := &report.FinancialNote{
		Title:   "Share Capital",
		Content: content,
		Footer:  "There has been no movement in equity share capital during the year.",
	}
	// Only the paid-up line enters the balance sheet; the authorised
	// capital is disclosure, not a liability.
	n.Total = &paidUp
	return n
}

func reservesSurplus(rows report.Rows) *report.FinancialNote {
	general := match(rows, []string{"general reserve"}, nil)
	surplus := match(rows, []string{"surplus", "profit and loss", "retained earning"}, nil)
	content := []report.Element{
		item("general-reserve", "General reserve", general),
		group("surplus", "Surplus in statement of profit and loss",
			child("opening-balance", "Opening balance", report.Amount{Current: surplus.Previous, Previous: surplus.Previous}),
			child("profit-for-year", "Add: profit for the year",
				report.Amount{Current: surplus.Current - surplus.Previous}),
		),
	}
	n := &report.FinancialNote{Title: "Reserves and Surplus", Content: content}
	n.Total = &report.Amount{Current: general.Current + surplus.Current, Previous: general.Previous + surplus.Previous}
	return n
}

func longTermBorrowings(rows report.Rows) *report.FinancialNote {
	secured := match(rows, []string{"term loan", "vehicle loan"}, nil)
	unsecured := match(rows, []string{"unsecured loan", "loan from director", "inter corporate deposit"}, nil)
	content := []report.Element{
		group("secured", "Secured",
			child("term-loans", "Term loans from banks", secured),
		),
		group("unsecured", "Unsecured",
			child("from-directors", "Loans from directors and related parties", unsecured),
		),
	}
	return &report.FinancialNote{
		Title:   "Long-Term Borrowings",
		Content: content,
		Footer:  "Term loans from banks are secured by hypothecation of plant and machinery and are repayable in monthly instalments.",
		Total:   totalOf(content),
	}
}

func tradePayables(rows report.Rows) *report.FinancialNote {
	msme := match(rows, []string{"trade payable", "sundry creditor"}, []string{"msme", "micro", "small"})
	others := match(rows, []string{"trade payable", "sundry creditor"}, nil)
	others = others.Sub(msme)
	content := []report.Element{
		item("msme", "Total outstanding dues of micro and small enterprises", msme),
		item("others", "Total outstanding dues of creditors other than micro and small enterprises", others),
		table(
			[]string{"Ageing", "< 1 year", "1-2 years", "2-3 years", "> 3 years"},
			[][]string{
				{"MSME", report.FormatIndian(msme.Current), "-", "-", "-"},
				{"Others", report.FormatIndian(others.Current * 0.9), report.FormatIndian(others.Current * 0.1), "-", "-"},
			},
		),
	}
	return &report.FinancialNote{
		Title:   "Trade Payables",
		Content: content,
		Footer:  "Dues to micro and small enterprises are determined to the extent such parties have been identified on the basis of information available with the company.",
		Total:   totalOf(content),
	}
}

func otherCurrentLiabilities(rows report.Rows) *report.FinancialNote {
	content := []report.Element{
		item("statutory-dues", "Statutory dues payable (GST, TDS, PF, ESI)",
			match(rows, []string{"statutory", "tds payable", "gst payable", "pf payable", "esi payable"}, nil)),
		item("advances-customers", "Advances received from customers",
			match(rows, []string{"advance from customer"}, nil)),
		item("salaries-payable", "Salaries and wages payable",
			match(rows, []string{"salary payable", "salaries payable", "wages payable"}, nil)),
		item("expenses-payable", "Other expenses payable",
			match(rows, []string{"expenses payable", "audit fee payable", "outstanding liabilit"}, nil)),
	}
	return &report.FinancialNote{
		Title:   "Other Current Liabilities",
		Content: content,
		Total:   totalOf(content),
	}
}

func shortTermProvisions(rows report.Rows) *report.FinancialNote {
	content := []report.Element{
		item("provision-tax", "Provision for income tax",
			match(rows, []string{"provision"}, []string{"tax"})),
		item("provision-employee", "Provision for employee benefits",
			match(rows, []string{"provision"}, []string{"gratuity", "leave", "bonus"})),
	}
	return &report.FinancialNote{
		Title:   "Short-Term Provisions",
		Content: content,
		Total:   totalOf(content),
	}
}
