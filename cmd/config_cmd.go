package cmd

import (
	"fmt"

	"github.com/theirongolddev/padma/internal/config"
	"github.com/theirongolddev/padma/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if flagBackend != "" {
		cfg.General.Backend = flagBackend
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.DataDir())
	fmt.Printf("    Backend:        %s\n", cfg.General.Backend)
	if cfg.General.Backend == config.BackendSQLite {
		fmt.Printf("    Database:       %s/%s\n", cfg.DataDir(), store.DBFile)
	}
	fmt.Printf("    Currency:       %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	if path := cfg.LogPath(); path != "" {
		fmt.Printf("    File:  %s\n", path)
	} else {
		fmt.Println("    File:  disabled")
	}
	fmt.Println()

	if err := cfg.Validate(); err != nil {
		fmt.Printf("  Problem: %v\n\n", err)
	}
	fmt.Println("  Edit the file above or run `padma setup` to reconfigure.")
	return nil
}
