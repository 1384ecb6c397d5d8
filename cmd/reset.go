package cmd

import (
	"fmt"

	"github.com/mfigueredo/viatico/internal/cli"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagResetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all trips and expenses",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetForce, "force", "f", false, "Skip confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if !flagResetForce {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Delete ALL trips and expenses?").
				Description("This cannot be undone.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println()
			fmt.Println("  Nothing deleted.")
			fmt.Println()
			return nil
		}
	}

	if err := a.store.Reset(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.Success("All trips and expenses deleted."))
	fmt.Println()
	return nil
}
