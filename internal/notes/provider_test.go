package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plutus-labs/schedule3/internal/report"
)

// sampleTrialBalance mimics a mapped export from an accounting package:
// inconsistent casing and free-text level-2 descriptions.
func sampleTrialBalance() report.Rows {
	return report.Rows{
		{Level1: "Equity Share Capital", Level2: "", Current: 15000000, Previous: 15000000},
		{Level1: "General Reserve", Level2: "", Current: 2500000, Previous: 2500000},
		{Level1: "Surplus in Profit and Loss", Level2: "", Current: 4800000, Previous: 3900000},
		{Level1: "Term Loan from Bank", Level2: "HDFC Machinery Loan", Current: 3200000, Previous: 4100000},
		{Level1: "Trade Payables", Level2: "MSME Creditors", Current: 900000, Previous: 700000},
		{Level1: "Trade Payables", Level2: "Other Creditors", Current: 2100000, Previous: 1800000},
		{Level1: "Statutory Dues", Level2: "TDS Payable", Current: 150000, Previous: 120000},
		{Level1: "Provision", Level2: "Provision for Tax", Current: 400000, Previous: 350000},
		{Level1: "Plant and Machinery", Level2: "", Current: 9000000, Previous: 8000000},
		{Level1: "Accumulated Depreciation", Level2: "", Current: -2400000, Previous: -1800000},
		{Level1: "Inventories", Level2: "Raw Material", Current: 1800000, Previous: 1500000},
		{Level1: "Inventories", Level2: "Finished Goods", Current: 1200000, Previous: 1000000},
		{Level1: "Trade Receivables", Level2: "Considered Good", Current: 3400000, Previous: 2900000},
		{Level1: "Cash in Hand", Level2: "", Current: 80000, Previous: 60000},
		{Level1: "Bank", Level2: "Current Account - SBI", Current: 1500000, Previous: 1100000},
		{Level1: "Prepaid Expenses", Level2: "Insurance Policy", Current: 60000, Previous: 45000},
		{Level1: "Additions to Fixed Assets", Level2: "Plant and Machinery", Current: 1000000, Previous: 800000},
		{Level1: "Sales", Level2: "Domestic", Current: 42000000, Previous: 36000000},
		{Level1: "Scrap Disposal Income", Level2: "", Current: 300000, Previous: 250000},
		{Level1: "Interest Received", Level2: "On Fixed Deposits", Current: 90000, Previous: 70000},
		{Level1: "Purchases", Level2: "Raw Material", Current: 26000000, Previous: 22000000},
		{Level1: "Salaries and Wages", Level2: "Factory", Current: 5200000, Previous: 4600000},
		{Level1: "Interest Paid", Level2: "Term Loan", Current: 380000, Previous: 420000},
		{Level1: "Bank Charges", Level2: "", Current: 45000, Previous: 40000},
		{Level1: "Depreciation Expense", Level2: "", Current: 600000, Previous: 550000},
		{Level1: "Power and Fuel", Level2: "Factory Electricity", Current: 1400000, Previous: 1250000},
		{Level1: "Audit Fees", Level2: "", Current: 150000, Previous: 150000},
		{Level1: "Current Tax", Level2: "", Current: 950000, Previous: 800000},
	}
}

func TestRegistryNumbersAreUniqueAndOrdered(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Registry() {
		require.False(t, seen[p.Number()], "duplicate note number %s", p.Number())
		seen[p.Number()] = true
	}
	assert.True(t, seen["1"])
	assert.True(t, seen["21"])
}

func TestProvidersStampTheirNumber(t *testing.T) {
	rows := sampleTrialBalance()
	for _, p := range Registry() {
		n := p.Build(rows)
		require.NotNil(t, n)
		assert.Equal(t, p.Number(), n.Number)
		assert.NotEmpty(t, n.Title)
	}
}

func TestShareCapitalAddressablePaths(t *testing.T) {
	n := provider{"2", shareCapital}.Build(sampleTrialBalance())

	paid := n.Item("issued-subscribed-paid-up")
	require.NotNil(t, paid)
	require.NotNil(t, paid.Value)
	assert.Equal(t, 15000000.0, paid.Value.Current)

	// The note total is the paid-up line, not authorised plus paid-up.
	require.NotNil(t, n.Total)
	assert.Equal(t, paid.Value.Current, n.Total.Current)
}

func TestPPENetBlock(t *testing.T) {
	n := provider{"8", propertyPlantEquipment}.Build(sampleTrialBalance())

	net := n.Item("net-block")
	require.NotNil(t, net)
	require.NotNil(t, net.Value)
	assert.Equal(t, 9000000.0-2400000.0, net.Value.Current)
	assert.Equal(t, 8000000.0-1800000.0, net.Value.Previous)

	require.NotNil(t, n.Total)
	assert.Equal(t, *net.Value, *n.Total)
}

func TestTradePayablesSplitsMSME(t *testing.T) {
	n := provider{"5", tradePayables}.Build(sampleTrialBalance())

	msme := n.Item("msme")
	others := n.Item("others")
	require.NotNil(t, msme)
	require.NotNil(t, others)
	assert.Equal(t, 900000.0, msme.Value.Current)
	assert.Equal(t, 2100000.0, others.Value.Current)
	require.NotNil(t, n.Total)
	assert.Equal(t, 3000000.0, n.Total.Current)
}

func TestCashAndBankNestedItems(t *testing.T) {
	n := provider{"11", cashAndBank}.Build(sampleTrialBalance())

	cash := n.Item("cash-equivalents", "cash-on-hand")
	require.NotNil(t, cash)
	assert.Equal(t, 80000.0, cash.Value.Current)

	bank := n.Item("cash-equivalents", "bank-current")
	require.NotNil(t, bank)
	assert.Equal(t, 1500000.0, bank.Value.Current)
}

func TestCostOfMaterialsDerivation(t *testing.T) {
	rows := report.Rows{
		{Level1: "Opening Stock", Level2: "Raw Material", Current: 100, Previous: 90},
		{Level1: "Purchases", Level2: "Raw Material", Current: 1000, Previous: 900},
		{Level1: "Closing Stock", Level2: "Raw Material", Current: -150, Previous: -100},
	}
	n := provider{"15", costOfMaterials}.Build(rows)

	consumed := n.Item("consumed")
	require.NotNil(t, consumed)
	assert.Equal(t, 100.0+1000-150, consumed.Value.Current)
	require.NotNil(t, n.Total)
	assert.Equal(t, consumed.Value.Current, n.Total.Current)
}

func TestEarningsPerShareUsesShareCount(t *testing.T) {
	n := provider{"21", earningsPerShare}.Build(sampleTrialBalance())

	basic := n.Item("basic")
	diluted := n.Item("diluted")
	require.NotNil(t, basic)
	require.NotNil(t, diluted)
	assert.Equal(t, *basic.Value, *diluted.Value)

	profit := n.Item("profit-attributable")
	require.NotNil(t, profit)
	assert.InDelta(t, profit.Value.Current/issuedShares, basic.Value.Current, 0.0001)
}

func TestBuildPackStatementsAgreeWithNotes(t *testing.T) {
	rows := sampleTrialBalance()
	pack := report.BuildPack(rows, Registry())

	require.Len(t, pack.Notes, len(Registry()))

	findRow := func(forest []report.ResolvedNode, key string) *report.ResolvedNode {
		var walk func(nodes []report.ResolvedNode) *report.ResolvedNode
		walk = func(nodes []report.ResolvedNode) *report.ResolvedNode {
			for i := range nodes {
				if nodes[i].Key == key {
					return &nodes[i]
				}
				if found := walk(nodes[i].Children); found != nil {
					return found
				}
			}
			return nil
		}
		return walk(forest)
	}

	// Balance sheet lines mirror their notes exactly.
	inv := findRow(pack.BalanceSheet, "bs-inventories")
	require.NotNil(t, inv)
	require.NotNil(t, inv.Value)
	assert.Equal(t, *pack.Note("9").Total, *inv.Value)

	ppe := findRow(pack.BalanceSheet, "bs-ppe")
	require.NotNil(t, ppe)
	assert.Equal(t, *pack.Note("8").Item("net-block").Value, *ppe.Value)

	// The liabilities grand total covers all three sections.
	totalEL := findRow(pack.BalanceSheet, "bs-total-equity-liabilities")
	require.NotNil(t, totalEL)
	require.NotNil(t, totalEL.Value)

	shf := findRow(pack.BalanceSheet, "bs-shareholders-funds")
	ncl := findRow(pack.BalanceSheet, "bs-non-current-liabilities")
	cl := findRow(pack.BalanceSheet, "bs-current-liabilities")
	want := shf.Value.Add(*ncl.Value).Add(*cl.Value)
	assert.Equal(t, want, *totalEL.Value)

	// Profit and loss derived rows chain through registered totals.
	pbt := findRow(pack.ProfitLoss, "pl-pbt")
	require.NotNil(t, pbt)
	require.NotNil(t, pbt.Value)
	rev := findRow(pack.ProfitLoss, "pl-total-revenue")
	exp := findRow(pack.ProfitLoss, "pl-expenses")
	assert.Equal(t, rev.Value.Sub(*exp.Value), *pbt.Value)

	// Cash flow closing cash ties back to the cash note's prior balance
	// plus the year's movement.
	closing := findRow(pack.CashFlow, "cf-closing-cash")
	require.NotNil(t, closing)
	require.NotNil(t, closing.Value)
	netChange := findRow(pack.CashFlow, "cf-net-change")
	opening := findRow(pack.CashFlow, "cf-opening-cash")
	assert.Equal(t, netChange.Value.Add(*opening.Value), *closing.Value)
}

func TestBuildPackIdempotent(t *testing.T) {
	rows := sampleTrialBalance()
	first := report.BuildPack(rows, Registry())
	second := report.BuildPack(rows, Registry())
	assert.Equal(t, first, second)
}
