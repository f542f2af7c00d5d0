package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plutus-labs/schedule3/internal/client"
)

var importCmd = &cobra.Command{
	Use:   "import <trial-balance-file>",
	Short: "Import a trial-balance export (CSV or XLSX)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		c := client.New(flagServer)
		batch, err := c.ImportTrialBalance(context.Background(), args[0], f)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d rows from %s (batch %s)\n", batch.RowCount, batch.SourceFile, batch.ID)
		return nil
	},
}

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "List imported trial-balance batches",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)
		batches, err := c.ListBatches(context.Background())
		if err != nil {
			return err
		}
		if len(batches) == 0 {
			fmt.Println("No batches imported yet.")
			return nil
		}

		fmt.Printf("%-38s %-30s %8s  %s\n", "ID", "SOURCE", "ROWS", "IMPORTED")
		for _, b := range batches {
			fmt.Printf("%-38s %-30s %8d  %s\n", b.ID, b.SourceFile, b.RowCount, b.ImportedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(batchesCmd)
}
