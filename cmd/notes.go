package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plutus-labs/schedule3/internal/client"
	"github.com/plutus-labs/schedule3/internal/report"
)

var notesBatch string

var notesCmd = &cobra.Command{
	Use:   "notes [number]",
	Short: "Print the disclosure notes, or one note by number",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		if len(args) == 1 {
			note, err := c.GetNote(context.Background(), args[0], notesBatch)
			if err != nil {
				return err
			}
			printNote(note)
			return nil
		}

		notes, err := c.ListNotes(context.Background(), notesBatch)
		if err != nil {
			return err
		}
		for _, n := range notes {
			printNote(n)
			fmt.Println()
		}
		return nil
	},
}

func printNote(n *report.FinancialNote) {
	fmt.Printf("Note %s - %s\n", n.Number, n.Title)
	fmt.Println(strings.Repeat("─", 84))

	for _, el := range n.Content {
		switch {
		case el.Item != nil:
			printNoteItem(*el.Item, 0)
		case el.Table != nil:
			printNoteTable(el.Table)
		case el.Text != "":
			fmt.Println(el.Text)
		}
	}

	if n.Total != nil {
		fmt.Println(strings.Repeat("─", 84))
		fmt.Printf("%-52s %15s %15s\n", "Total",
			report.FormatIndian(n.Total.Current),
			report.FormatIndian(n.Total.Previous))
	}
	if n.Footer != "" {
		fmt.Println()
		fmt.Println(n.Footer)
	}
}

func printNoteItem(n report.ResolvedNode, depth int) {
	cur, prev := "", ""
	if n.Value != nil {
		cur = report.FormatIndian(n.Value.Current)
		prev = report.FormatIndian(n.Value.Previous)
	}
	fmt.Printf("%-52s %15s %15s\n", strings.Repeat("  ", depth)+n.Label, cur, prev)
	for _, c := range n.Children {
		printNoteItem(c, depth+1)
	}
}

func printNoteTable(tbl *report.Table) {
	fmt.Println()
	for _, h := range tbl.Headers {
		fmt.Printf("%-20s ", h)
	}
	fmt.Println()
	for _, row := range tbl.Rows {
		for _, v := range row {
			fmt.Printf("%-20s ", v)
		}
		fmt.Println()
	}
	fmt.Println()
}

func init() {
	notesCmd.Flags().StringVar(&notesBatch, "batch", "", "Batch ID (defaults to latest import)")
	rootCmd.AddCommand(notesCmd)
}
