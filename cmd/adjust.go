package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plutus-labs/schedule3/internal/client"
	"github.com/plutus-labs/schedule3/internal/ingest"
)

var (
	adjustLevel2    string
	adjustCurrent   float64
	adjustPrevious  float64
	adjustNarration string
)

var adjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "Manage manual trial-balance adjustments",
}

var adjustAddCmd = &cobra.Command{
	Use:   "add <level1-description>",
	Short: "Record an adjustment on top of the imported trial balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)
		adj, err := c.CreateAdjustment(context.Background(), ingest.Adjustment{
			Level1:    args[0],
			Level2:    adjustLevel2,
			Current:   adjustCurrent,
			Previous:  adjustPrevious,
			Narration: adjustNarration,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Adjustment %s recorded\n", adj.ID)
		return nil
	},
}

var adjustListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded adjustments",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)
		adjustments, err := c.ListAdjustments(context.Background())
		if err != nil {
			return err
		}
		if len(adjustments) == 0 {
			fmt.Println("No adjustments recorded.")
			return nil
		}

		fmt.Printf("%-38s %-24s %-18s %14s %14s  %s\n", "ID", "LEVEL 1", "LEVEL 2", "CURRENT", "PREVIOUS", "NARRATION")
		for _, a := range adjustments {
			fmt.Printf("%-38s %-24s %-18s %14.2f %14.2f  %s\n", a.ID, a.Level1, a.Level2, a.Current, a.Previous, a.Narration)
		}
		return nil
	},
}

var adjustDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an adjustment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)
		if err := c.DeleteAdjustment(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Adjustment %s deleted\n", args[0])
		return nil
	},
}

func init() {
	adjustAddCmd.Flags().StringVar(&adjustLevel2, "level2", "", "Level 2 description")
	adjustAddCmd.Flags().Float64Var(&adjustCurrent, "current", 0, "Current-year amount")
	adjustAddCmd.Flags().Float64Var(&adjustPrevious, "previous", 0, "Previous-year amount")
	adjustAddCmd.Flags().StringVar(&adjustNarration, "narration", "", "Narration")

	adjustCmd.AddCommand(adjustAddCmd)
	adjustCmd.AddCommand(adjustListCmd)
	adjustCmd.AddCommand(adjustDeleteCmd)
	rootCmd.AddCommand(adjustCmd)
}
