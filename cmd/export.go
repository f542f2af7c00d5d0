package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plutus-labs/schedule3/internal/client"
)

var (
	exportBatch  string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <xlsx|pdf>",
	Short: "Export the statement pack to Excel or PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)
		ctx := context.Background()

		var data []byte
		var err error
		out := exportOutput

		switch args[0] {
		case "xlsx":
			data, err = c.ExportExcel(ctx, exportBatch)
			if out == "" {
				out = "financial-statements.xlsx"
			}
		case "pdf":
			data, err = c.ExportPDF(ctx, exportBatch)
			if out == "" {
				out = "financial-statements.pdf"
			}
		default:
			return fmt.Errorf("unknown export format %q (want xlsx or pdf)", args[0])
		}
		if err != nil {
			return err
		}

		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d bytes)\n", out, len(data))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportBatch, "batch", "", "Batch ID (defaults to latest import)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	rootCmd.AddCommand(exportCmd)
}
