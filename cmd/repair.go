package cmd

import (
	"fmt"

	"github.com/mfigueredo/viatico/internal/cli"

	"github.com/spf13/cobra"
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Recompute daily budget totals from the expense store",
	Long: "Rebuilds every trip's per-day spent amounts from the recorded expenses. " +
		"Use this after an interrupted registration left a trip's running totals stale.",
	RunE: runRepair,
}

func init() {
	rootCmd.AddCommand(repairCmd)
}

func runRepair(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	updated, err := a.ledger.RebuildSpentTotals()
	if err != nil {
		return err
	}

	fmt.Println()
	if updated == 0 {
		fmt.Println("  All trip totals already match the expense store.")
	} else {
		fmt.Println(cli.Success("Rebuilt totals for %d trip(s).", updated))
	}
	fmt.Println()
	return nil
}
