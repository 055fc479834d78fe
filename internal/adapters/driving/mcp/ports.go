package mcp

import (
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
	"github.com/probe-labs/scout-cli/internal/core/ports/driving"
)

// Ports aggregates the driving-side dependencies of the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Engine serves queries over the content index.
	Engine driving.DiscoveryEngine

	// Snapshots lists persisted exports. Optional; without it the
	// snapshots resource serves an empty list.
	Snapshots driven.SnapshotStore
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}
