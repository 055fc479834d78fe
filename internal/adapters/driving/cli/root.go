// Package cli implements the scout command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/probe-labs/scout-cli/internal/adapters/driving/watcher"
	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
	"github.com/probe-labs/scout-cli/internal/core/ports/driving"
	"github.com/probe-labs/scout-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services aggregates everything the commands need. The composition
// root builds the engine and its collaborators, then injects them here
// before Execute.
type Services struct {
	// Engine is the discovery engine driving surface.
	Engine driving.DiscoveryEngine

	// Scheduler drives the refresh and full-discovery timers.
	Scheduler driving.DiscoveryScheduler

	// Watcher feeds filesystem changes into the engine. Optional.
	Watcher *watcher.Watcher

	// Snapshots persists exported snapshots. Optional.
	Snapshots driven.SnapshotStore

	// EngineConfig is the effective configuration.
	EngineConfig domain.EngineConfig
}

var (
	engine       driving.DiscoveryEngine
	scheduler    driving.DiscoveryScheduler
	fsWatcher    *watcher.Watcher
	snapshots    driven.SnapshotStore
	engineConfig = domain.DefaultEngineConfig()

	verboseFlag bool
)

// SetServices injects the composed services into the command tree.
func SetServices(services *Services) {
	engine = services.Engine
	scheduler = services.Scheduler
	fsWatcher = services.Watcher
	snapshots = services.Snapshots
	engineConfig = services.EngineConfig
}

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Content discovery and indexing engine",
	Long: `Scout captures heterogeneous content events, builds a deduplicated
classified index, and serves ranked keyword search over it.

Content arrives from three provenances: page structure (dom), observed
network responses (ajax) and persisted key/value changes (storage).
Every capture is normalised into a canonical record, classified,
enriched with derived metadata and projected into the search index.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// seedIndex populates the in-memory index from the configured watch
// paths. One-shot commands call it so there is content to query; under
// `scout watch` the watcher and scheduler keep the index current
// instead.
func seedIndex(cmd *cobra.Command) {
	if fsWatcher == nil {
		return
	}
	if err := fsWatcher.Scan(cmd.Context()); err != nil {
		logger.Warn("Scanning watch paths: %v", err)
	}
}
