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

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and list expenses on the active trip",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register an expense on the active trip",
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active trip's expenses",
	RunE:  runExpenseList,
}

func init() {
	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(cmd *cobra.Command, _ []string) error {
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
	foreign := a.cfg.General.ForeignCurrency

	var (
		dateStr   = model.Today().String()
		amountStr string
		currency  = home
		method    model.PaymentMethod
		category  model.Category
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Date").
			Placeholder("YYYY-MM-DD").
			Validate(validDate).
			Value(&dateStr),
		huh.NewInput().
			Title("Amount").
			Validate(positiveAmount).
			Value(&amountStr),
		huh.NewSelect[string]().
			Title("Currency").
			Options(huh.NewOptions(home, foreign)...).
			Value(&currency),
		huh.NewSelect[model.PaymentMethod]().
			Title("Payment method").
			Options(huh.NewOptions(model.PaymentMethods()...)...).
			Value(&method),
		huh.NewSelect[model.Category]().
			Title("Category").
			Options(huh.NewOptions(model.Categories()...)...).
			Value(&category),
	))
	if err := form.Run(); err != nil {
		return err
	}

	date, err := model.ParseDate(dateStr)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil {
		return err
	}

	expense, err := a.ledger.RegisterExpense(cmd.Context(), trip, date, amount, method, category, currency)
	if err != nil {
		return err
	}

	remaining, err := a.ledger.RemainingBudget(trip, date)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success("Recorded %s (%s, %s).",
		cli.FormatMoney(expense.HomeAmount, home), expense.Category, expense.Method))
	line := fmt.Sprintf("Remaining budget for %s: %s", date, cli.FormatMoney(remaining, home))
	if remaining < 0 {
		fmt.Println(cli.Warning("%s (over budget)", line))
	} else {
		fmt.Println("  " + line)
	}
	fmt.Println()
	return nil
}

func runExpenseList(_ *cobra.Command, _ []string) error {
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
		fmt.Println("  No active trip.")
		fmt.Println()
		return nil
	}

	expenses, err := a.ledger.ExpensesForTrip(trip)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Println()
		fmt.Println("  No expenses recorded for this trip.")
		fmt.Println()
		return nil
	}

	home := a.cfg.General.HomeCurrency
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			string(e.Category),
			string(e.Method),
			cli.FormatMoney(e.OriginalAmount, e.Currency),
			cli.FormatMoney(e.HomeAmount, home),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSES  " + trip.Destination))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Category", "Method", "Original", "In " + home},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
