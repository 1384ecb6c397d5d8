package cmd

import (
	"fmt"

	"github.com/mfigueredo/viatico/internal/cli"
	"github.com/mfigueredo/viatico/internal/model"
	"github.com/mfigueredo/viatico/internal/report"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Spending reports for the active trip",
}

var reportDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Spending per day, split by payment method",
	RunE:  runReportDaily,
}

var reportCategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Spending per category, split by payment method",
	RunE:  runReportCategory,
}

var reportTotalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Whole-trip totals",
	RunE:  runReportTotals,
}

func init() {
	reportCmd.AddCommand(reportDailyCmd, reportCategoryCmd, reportTotalsCmd)
	rootCmd.AddCommand(reportCmd)
}

// tripExpenses resolves the active trip and its expenses for the report
// commands. A nil trip with nil error means "nothing to report" and the
// message has already been printed.
func tripExpenses(a *app) (*model.Trip, []model.Expense, error) {
	trip, err := a.ledger.ActiveTrip()
	if err != nil {
		return nil, nil, err
	}
	if trip == nil {
		fmt.Println()
		fmt.Println("  No active trip.")
		fmt.Println()
		return nil, nil, nil
	}
	expenses, err := a.ledger.ExpensesForTrip(trip)
	if err != nil {
		return nil, nil, err
	}
	if len(expenses) == 0 {
		fmt.Println()
		fmt.Println("  No expenses recorded for this trip.")
		fmt.Println()
		return nil, nil, nil
	}
	return trip, expenses, nil
}

func runReportDaily(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	trip, expenses, err := tripExpenses(a)
	if err != nil || trip == nil {
		return err
	}

	home := a.cfg.General.HomeCurrency
	rows := make([][]string, 0)
	for _, r := range report.Daily(expenses) {
		rows = append(rows, []string{
			cli.FormatDate(r.Date),
			cli.FormatMoney(r.Cash, ""),
			cli.FormatMoney(r.Card, ""),
			cli.FormatMoney(r.Total, ""),
		})
	}
	totals := report.Totals(expenses)
	rows = append(rows, []string{
		"TOTAL",
		cli.FormatMoney(totals.Cash, ""),
		cli.FormatMoney(totals.Card, ""),
		cli.FormatMoney(totals.Total, ""),
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY REPORT  %s (%s)", trip.Destination, home)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Cash", "Card", "Total"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runReportCategory(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	trip, expenses, err := tripExpenses(a)
	if err != nil || trip == nil {
		return err
	}

	home := a.cfg.General.HomeCurrency
	rows := make([][]string, 0)
	for _, r := range report.ByCategory(expenses) {
		rows = append(rows, []string{
			string(r.Category),
			cli.FormatMoney(r.Cash, ""),
			cli.FormatMoney(r.Card, ""),
			cli.FormatMoney(r.Total, ""),
		})
	}
	totals := report.Totals(expenses)
	rows = append(rows, []string{
		"TOTAL",
		cli.FormatMoney(totals.Cash, ""),
		cli.FormatMoney(totals.Card, ""),
		cli.FormatMoney(totals.Total, ""),
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CATEGORY REPORT  %s (%s)", trip.Destination, home)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Cash", "Card", "Total"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runReportTotals(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	trip, expenses, err := tripExpenses(a)
	if err != nil || trip == nil {
		return err
	}

	home := a.cfg.General.HomeCurrency
	totals := report.Totals(expenses)

	fmt.Println()
	fmt.Println(cli.RenderTitle("TRIP TOTALS  " + trip.Destination))
	fmt.Println()
	fmt.Printf("  %s %s\n", cli.Label("Cash: "), cli.FormatMoney(totals.Cash, home))
	fmt.Printf("  %s %s\n", cli.Label("Card: "), cli.FormatMoney(totals.Card, home))
	fmt.Printf("  %s %s\n", cli.Label("Total:"), cli.FormatMoney(totals.Total, home))

	budget := trip.DailyBudget * float64(trip.Days())
	diff := budget - totals.Total
	line := fmt.Sprintf("Against %s budgeted: %s", cli.FormatMoney(budget, home), cli.FormatMoney(diff, home))
	if diff < 0 {
		fmt.Printf("  %s\n", cli.Warning("%s over", line))
	} else {
		fmt.Printf("  %s\n", cli.Success("%s under", line))
	}
	fmt.Println()
	return nil
}
