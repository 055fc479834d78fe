package domain

import "time"

// EngineConfig holds the discovery engine's tunable parameters.
// Exact wall-clock cadence is configuration, not engine logic.
type EngineConfig struct {
	// BootstrapDelay is how long the scheduler waits before starting
	// either timer.
	BootstrapDelay time.Duration

	// RefreshInterval drives the incremental refresh timer.
	RefreshInterval time.Duration

	// DiscoveryInterval drives the full re-discovery timer.
	// Independent of RefreshInterval.
	DiscoveryInterval time.Duration

	// Retention is how long a record may live before the refresh cycle
	// evicts it.
	Retention time.Duration

	// WatchPaths are directories the filesystem observer watches.
	WatchPaths []string

	// SnapshotDir is where exported snapshots are persisted.
	// Empty means the default data directory.
	SnapshotDir string
}

// DefaultEngineConfig returns the configuration used when no config file
// overrides are present.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		BootstrapDelay:    5 * time.Second,
		RefreshInterval:   30 * time.Second,
		DiscoveryInterval: 5 * time.Minute,
		Retention:         24 * time.Hour,
	}
}
