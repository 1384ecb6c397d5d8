// Package config loads and saves viatico configuration from a TOML file
// under the XDG config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all viatico configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Rates   RatesConfig   `toml:"rates"`
}

// GeneralConfig holds currency and storage preferences.
type GeneralConfig struct {
	DataDir         string `toml:"data_dir,omitempty"`
	HomeCurrency    string `toml:"home_currency"`
	ForeignCurrency string `toml:"foreign_currency"`
}

// RatesConfig holds exchange-rate lookup settings.
type RatesConfig struct {
	APIKey     string `toml:"api_key,omitempty"`
	BaseURL    string `toml:"base_url,omitempty"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// DefaultConfig returns the default configuration: budgets in COP, USD as
// the supported foreign currency, rates cached for an hour.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			HomeCurrency:    "COP",
			ForeignCurrency: "USD",
		},
		Rates: RatesConfig{
			TTLSeconds: 3600,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "viatico")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "viatico")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding trip, expense, and rate-cache data:
// the configured override, or the XDG data directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "viatico")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "viatico")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// RatesAPIKey returns the rate API key from env var or config, in that order.
func RatesAPIKey(cfg Config) string {
	if key := os.Getenv("VIATICO_RATES_API_KEY"); key != "" {
		return key
	}
	return cfg.Rates.APIKey
}
