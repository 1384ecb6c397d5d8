package cmd

import (
	"fmt"

	"github.com/mfigueredo/viatico/internal/cli"
	"github.com/mfigueredo/viatico/internal/model"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active trip and today's budget position",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	trip, err := a.ledger.ActiveTrip()
	if err != nil {
		return err
	}
	if trip == nil {
		fmt.Println()
		fmt.Println("  No active trip. Start one with `viatico trip start`.")
		fmt.Println()
		return nil
	}

	home := a.cfg.General.HomeCurrency

	fmt.Println()
	fmt.Println(cli.RenderTitle("TRIP  " + trip.Destination))
	fmt.Println()
	fmt.Printf("  %s %s\n", cli.Label("Dates:       "), cli.FormatRange(trip.StartDate, trip.EndDate))
	fmt.Printf("  %s %s\n", cli.Label("Daily budget:"), cli.FormatMoney(trip.DailyBudget, home))
	kind := "domestic"
	if trip.Foreign {
		kind = "foreign (" + a.cfg.General.ForeignCurrency + " expenses converted)"
	}
	fmt.Printf("  %s %s\n", cli.Label("Type:        "), kind)

	today := model.Today()
	if trip.Contains(today) {
		remaining, err := a.ledger.RemainingBudget(trip, today)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("Remaining today (%s): %s", today, cli.FormatMoney(remaining, home))
		if remaining < 0 {
			fmt.Printf("  %s\n", cli.Warning("%s (over budget)", line))
		} else {
			fmt.Printf("  %s\n", cli.Success("%s", line))
		}
	}
	fmt.Println()
	return nil
}
