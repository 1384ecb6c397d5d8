package cmd

import (
	"fmt"

	"github.com/mfigueredo/viatico/internal/cli"
	"github.com/mfigueredo/viatico/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataDir := config.DataDir(cfg)
	if flagDataDir != "" {
		dataDir = flagDataDir
	}

	apiKey := config.RatesAPIKey(cfg)
	keyStatus := "not set (rate lookups will fall back to 1)"
	if apiKey != "" {
		keyStatus = maskKey(apiKey)
	}

	fmt.Println()
	fmt.Printf("  %s %s\n", cli.Label("Config file:     "), config.ConfigPath())
	fmt.Printf("  %s %s\n", cli.Label("Data directory:  "), dataDir)
	fmt.Printf("  %s %s\n", cli.Label("Home currency:   "), cfg.General.HomeCurrency)
	fmt.Printf("  %s %s\n", cli.Label("Foreign currency:"), cfg.General.ForeignCurrency)
	fmt.Printf("  %s %ds\n", cli.Label("Rate cache TTL:  "), cfg.Rates.TTLSeconds)
	fmt.Printf("  %s %s\n", cli.Label("Rates API key:   "), keyStatus)
	fmt.Println()
	return nil
}

func maskKey(key string) string {
	if len(key) > 8 {
		return key[:4] + "..." + key[len(key)-4:]
	}
	return "****"
}
