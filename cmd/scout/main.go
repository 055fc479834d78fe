// Command scout runs the content discovery and indexing engine.
package main

import (
	"fmt"
	"os"

	"github.com/probe-labs/scout-cli/internal/adapters/driven/config/file"
	"github.com/probe-labs/scout-cli/internal/adapters/driven/snapshot/sqlite"
	"github.com/probe-labs/scout-cli/internal/adapters/driven/storage/memory"
	"github.com/probe-labs/scout-cli/internal/adapters/driving/cli"
	"github.com/probe-labs/scout-cli/internal/adapters/driving/watcher"
	"github.com/probe-labs/scout-cli/internal/core/services"
	"github.com/probe-labs/scout-cli/internal/normalisers"
	"github.com/probe-labs/scout-cli/internal/normalisers/dom"
	"github.com/probe-labs/scout-cli/internal/normalisers/network"
	"github.com/probe-labs/scout-cli/internal/normalisers/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	config := configStore.EngineConfig()

	registry := normalisers.NewRegistry()
	registry.Register(dom.New())
	registry.Register(network.New())
	registry.Register(storage.New())

	engine := services.NewEngine(
		memory.NewContentStore(),
		memory.NewMetadataStore(),
		memory.NewGraph(),
		memory.NewSearchIndex(),
		registry,
		config.Retention,
	)

	snapshots, err := sqlite.NewStore(config.SnapshotDir)
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}
	defer snapshots.Close()

	cli.SetServices(&cli.Services{
		Engine:       engine,
		Scheduler:    services.NewScheduler(config, engine),
		Watcher:      watcher.New(engine, config.WatchPaths),
		Snapshots:    snapshots,
		EngineConfig: config,
	})

	return cli.Execute()
}
