package driven

import "github.com/probe-labs/scout-cli/internal/core/domain"

// ConfigStore loads engine configuration from the host environment.
type ConfigStore interface {
	// EngineConfig returns the effective configuration, with file
	// values layered over domain defaults.
	EngineConfig() domain.EngineConfig
}
