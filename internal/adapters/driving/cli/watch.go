package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/probe-labs/scout-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the discovery engine in the foreground",
	Long: `Runs the discovery engine until interrupted.

The scheduler performs an incremental refresh every refresh interval
and a full re-discovery every discovery interval, after an initial
bootstrap delay. Configured watch paths are observed for file changes
and ingested as storage captures. Press Ctrl-C to stop.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if engine == nil || scheduler == nil {
		return errors.New("discovery engine not configured")
	}
	ctx := cmd.Context()

	if fsWatcher != nil {
		if err := fsWatcher.Start(ctx); err != nil {
			return fmt.Errorf("starting filesystem watcher: %w", err)
		}
		defer fsWatcher.Stop()
	}

	schedulerDone := make(chan error, 1)
	go func() { schedulerDone <- scheduler.Start(ctx) }()

	cmd.Printf("scout watching (refresh %s, discovery %s)\n",
		engineConfig.RefreshInterval, engineConfig.DiscoveryInterval)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		cmd.Printf("\nReceived %s, shutting down\n", sig)
	case err := <-schedulerDone:
		if err != nil {
			return fmt.Errorf("scheduler stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	if err := scheduler.Stop(); err != nil {
		logger.Warn("Stopping scheduler: %v", err)
	}
	if err := engine.Shutdown(ctx); err != nil {
		return fmt.Errorf("engine shutdown: %w", err)
	}
	return nil
}
