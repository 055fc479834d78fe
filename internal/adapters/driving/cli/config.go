package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probe-labs/scout-cli/internal/adapters/driven/config/file"
	"github.com/probe-labs/scout-cli/internal/core/domain"
)

var configDirFlag string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage scout configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file with the default values",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.PersistentFlags().StringVar(&configDirFlag, "dir", "", "config directory (default ~/.scout)")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	store, err := file.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	if err := store.Write(domain.DefaultEngineConfig()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	cmd.Printf("Wrote %s\n", store.Path())
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := file.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	config := store.EngineConfig()
	cmd.Println(titleStyle.Render("Configuration"))
	cmd.Printf("  File: %s\n", store.Path())
	cmd.Printf("  Bootstrap delay:    %s\n", config.BootstrapDelay)
	cmd.Printf("  Refresh interval:   %s\n", config.RefreshInterval)
	cmd.Printf("  Discovery interval: %s\n", config.DiscoveryInterval)
	cmd.Printf("  Retention:          %s\n", config.Retention)
	if len(config.WatchPaths) > 0 {
		cmd.Printf("  Watch paths:        %v\n", config.WatchPaths)
	}
	if config.SnapshotDir != "" {
		cmd.Printf("  Snapshot dir:       %s\n", config.SnapshotDir)
	}
	return nil
}
