package cmd

import (
	"errors"
	"fmt"

	"github.com/mfigueredo/viatico/internal/cli"
	"github.com/mfigueredo/viatico/internal/ledger"
	"github.com/mfigueredo/viatico/internal/model"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget [YYYY-MM-DD]",
	Short: "Remaining daily budget for a date (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	date := model.Today()
	if len(args) == 1 {
		date, err = model.ParseDate(args[0])
		if err != nil {
			return err
		}
	}

	trip, err := a.ledger.ActiveTrip()
	if err != nil {
		return err
	}
	if trip == nil {
		fmt.Println()
		fmt.Println("  No active trip.")
		fmt.Println()
		return nil
	}

	remaining, err := a.ledger.RemainingBudget(trip, date)
	if errors.Is(err, ledger.ErrDateOutOfRange) {
		fmt.Println()
		fmt.Println(cli.Error("%s is outside the trip's range %s.",
			date, cli.FormatRange(trip.StartDate, trip.EndDate)))
		fmt.Println()
		return nil
	}
	if err != nil {
		return err
	}

	home := a.cfg.General.HomeCurrency
	fmt.Println()
	line := fmt.Sprintf("Remaining budget for %s: %s", date, cli.FormatMoney(remaining, home))
	if remaining < 0 {
		fmt.Println(cli.Warning("%s (over budget)", line))
	} else {
		fmt.Println(cli.Success("%s", line))
	}
	fmt.Println()
	return nil
}
