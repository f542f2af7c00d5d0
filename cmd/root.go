package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagServer  string
	flagDB      string
	flagCompany string
)

var rootCmd = &cobra.Command{
	Use:   "schedule3",
	Short: "Schedule III financial statements from a trial balance",
	Long:  "Builds a Schedule III statement pack (balance sheet, profit and loss, cash flow and notes) from a trial-balance export, backed by SQLite, with Excel and PDF output.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "http://localhost:8888", "Server address")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "schedule3.db", "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&flagCompany, "company", "Acme Industries Limited", "Company name printed on statements")
}

func Execute() error {
	return rootCmd.Execute()
}
