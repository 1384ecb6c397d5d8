package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mfigueredo/viatico/internal/cli"
	"github.com/mfigueredo/viatico/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Manage trips",
}

var tripStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new trip (finalizes any active one)",
	RunE:  runTripStart,
}

var tripFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finalize the active trip",
	RunE:  runTripFinish,
}

func init() {
	tripCmd.AddCommand(tripStartCmd, tripFinishCmd)
	rootCmd.AddCommand(tripCmd)
}

func runTripStart(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var (
		destination string
		foreign     bool
		startStr    string
		endStr      string
		budgetStr   string
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Destination").
			Validate(nonEmpty).
			Value(&destination),
		huh.NewConfirm().
			Title("Is this a foreign trip?").
			Value(&foreign),
		huh.NewInput().
			Title("Start date").
			Placeholder("YYYY-MM-DD").
			Validate(validDate).
			Value(&startStr),
		huh.NewInput().
			Title("End date").
			Placeholder("YYYY-MM-DD").
			Validate(validDate).
			Value(&endStr),
		huh.NewInput().
			Title("Daily budget ("+a.cfg.General.HomeCurrency+")").
			Validate(positiveAmount).
			Value(&budgetStr),
	))
	if err := form.Run(); err != nil {
		return err
	}

	start, err := model.ParseDate(startStr)
	if err != nil {
		return err
	}
	end, err := model.ParseDate(endStr)
	if err != nil {
		return err
	}
	budget, err := strconv.ParseFloat(strings.TrimSpace(budgetStr), 64)
	if err != nil {
		return err
	}

	trip, err := a.ledger.CreateTrip(strings.TrimSpace(destination), foreign, start, end, budget)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success("Trip to %s created: %s, %s/day.",
		trip.Destination,
		cli.FormatRange(trip.StartDate, trip.EndDate),
		cli.FormatMoney(trip.DailyBudget, a.cfg.General.HomeCurrency)))
	fmt.Println()
	return nil
}

func runTripFinish(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	finalized, err := a.ledger.FinalizeActiveTrip()
	if err != nil {
		return err
	}
	fmt.Println()
	if finalized {
		fmt.Println(cli.Success("Trip finalized."))
	} else {
		fmt.Println("  No active trip to finalize.")
	}
	fmt.Println()
	return nil
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validDate(s string) error {
	_, err := model.ParseDate(s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func positiveAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive amount")
	}
	return nil
}
