// Package cmd wires the viatico command tree. Commands resolve the config,
// stores, rate cache, and ledger here and pass them down; nothing below
// this package reads flags or prompts.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mfigueredo/viatico/internal/cli"
	"github.com/mfigueredo/viatico/internal/config"
	"github.com/mfigueredo/viatico/internal/ledger"
	"github.com/mfigueredo/viatico/internal/rates"
	"github.com/mfigueredo/viatico/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "viatico",
	Short: "Travel daily-budget tracker",
	Long:  "Track trip spending against a daily budget, with foreign-currency expenses converted to your home currency.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Error("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

// app bundles the resolved collaborators for one command invocation.
type app struct {
	cfg    config.Config
	store  *store.Store
	cache  *rates.Cache
	ledger *ledger.Ledger
}

// newApp builds the config → store → rate cache → ledger chain.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dataDir := config.DataDir(cfg)
	if flagDataDir != "" {
		dataDir = flagDataDir
	}
	st := store.New(dataDir)

	client := rates.NewClient(config.RatesAPIKey(cfg), cfg.Rates.BaseURL)
	cache, err := rates.Open(
		filepath.Join(dataDir, "rates.db"),
		client,
		cfg.General.HomeCurrency,
		cfg.General.ForeignCurrency,
		time.Duration(cfg.Rates.TTLSeconds)*time.Second,
	)
	if err != nil {
		return nil, err
	}

	led := ledger.New(st, st, cache, ledger.WithWarnf(warnf))

	return &app{cfg: cfg, store: st, cache: cache, ledger: led}, nil
}

// Close releases the app's resources.
func (a *app) Close() {
	_ = a.cache.Close()
}

func warnf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintln(os.Stderr, cli.Warning("Warning: "+format, args...))
}
