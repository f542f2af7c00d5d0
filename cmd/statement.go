package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plutus-labs/schedule3/internal/client"
	"github.com/plutus-labs/schedule3/internal/report"
)

var statementBatch string

var statementCmd = &cobra.Command{
	Use:       "statement <balance-sheet|profit-loss|cash-flow>",
	Short:     "Print a financial statement",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(report.StatementBalanceSheet), string(report.StatementProfitLoss), string(report.StatementCashFlow)},
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := report.ParseStatement(args[0])
		if err != nil {
			return err
		}

		c := client.New(flagServer)
		resp, err := c.GetStatement(context.Background(), st, statementBatch)
		if err != nil {
			return err
		}

		printStatement(resp)
		return nil
	},
}

func printStatement(resp *client.StatementResponse) {
	const w = 100
	labelW := w - 40

	fmt.Println()
	fmt.Println(center(flagCompany, w))
	fmt.Println(center(resp.Title, w))
	fmt.Println(center(strings.Repeat("=", 24), w))
	fmt.Println()

	fmt.Printf("%-*s %-5s %15s %15s\n", labelW, "Particulars", "Note", "Current", "Previous")
	fmt.Printf("%s\n", strings.Repeat("─", w))
	for _, line := range resp.Lines {
		printStatementNode(line, 0, labelW)
	}
}

func printStatementNode(n report.ResolvedNode, depth, labelW int) {
	label := strings.Repeat("  ", depth) + n.Label
	if len(label) > labelW {
		label = label[:labelW-2] + ".."
	}

	cur, prev := "", ""
	if n.Value != nil {
		cur = report.FormatIndian(n.Value.Current)
		prev = report.FormatIndian(n.Value.Previous)
	}

	if n.IsGrandTotal {
		fmt.Printf("%-*s %-5s %15s %15s\n", labelW, "", "", strings.Repeat("─", 13), strings.Repeat("─", 13))
	}
	fmt.Printf("%-*s %-5s %15s %15s\n", labelW, label, n.Note, cur, prev)
	if n.IsGrandTotal {
		fmt.Printf("%-*s %-5s %15s %15s\n", labelW, "", "", strings.Repeat("═", 13), strings.Repeat("═", 13))
	}

	for _, c := range n.Children {
		printStatementNode(c, depth+1, labelW)
	}
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	pad := (w - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func init() {
	statementCmd.Flags().StringVar(&statementBatch, "batch", "", "Batch ID (defaults to latest import)")
	rootCmd.AddCommand(statementCmd)
}
