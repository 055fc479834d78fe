package file

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileConfig is the on-disk TOML schema. Durations are Go duration
// strings ("30s", "5m"); empty or missing fields fall back to the
// domain defaults.
type fileConfig struct {
	Engine struct {
		BootstrapDelay    string `toml:"bootstrap_delay"`
		RefreshInterval   string `toml:"refresh_interval"`
		DiscoveryInterval string `toml:"discovery_interval"`
		Retention         string `toml:"retention"`
	} `toml:"engine"`
	Watch struct {
		Paths []string `toml:"paths"`
	} `toml:"watch"`
	Snapshot struct {
		Dir string `toml:"dir"`
	} `toml:"snapshot"`
}

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Configuration is stored in a TOML file within the scout config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	loaded   fileConfig
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.scout/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".scout")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the TOML config file. A missing file is fine; the store
// then serves pure defaults.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.loaded = fileConfig{}
			return nil
		}
		return err
	}

	var loaded fileConfig
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	s.loaded = loaded
	return nil
}

// EngineConfig returns the effective engine configuration: file values
// layered over the domain defaults, so a partial config file only
// overrides the keys it names.
func (s *ConfigStore) EngineConfig() domain.EngineConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	config := domain.DefaultEngineConfig()
	overlayDuration(&config.BootstrapDelay, s.loaded.Engine.BootstrapDelay)
	overlayDuration(&config.RefreshInterval, s.loaded.Engine.RefreshInterval)
	overlayDuration(&config.DiscoveryInterval, s.loaded.Engine.DiscoveryInterval)
	overlayDuration(&config.Retention, s.loaded.Engine.Retention)
	if len(s.loaded.Watch.Paths) > 0 {
		config.WatchPaths = append([]string(nil), s.loaded.Watch.Paths...)
	}
	if s.loaded.Snapshot.Dir != "" {
		config.SnapshotDir = s.loaded.Snapshot.Dir
	}
	return config
}

// overlayDuration replaces dst when raw holds a parseable duration.
// Unparseable values are treated as absent rather than fatal.
func overlayDuration(dst *time.Duration, raw string) {
	if raw == "" {
		return
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return
	}
	*dst = d
}

// Write persists a config snapshot back to disk with restricted
// permissions. Used by the CLI to seed a starter config file.
func (s *ConfigStore) Write(config domain.EngineConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out fileConfig
	out.Engine.BootstrapDelay = config.BootstrapDelay.String()
	out.Engine.RefreshInterval = config.RefreshInterval.String()
	out.Engine.DiscoveryInterval = config.DiscoveryInterval.String()
	out.Engine.Retention = config.Retention.String()
	out.Watch.Paths = config.WatchPaths
	out.Snapshot.Dir = config.SnapshotDir

	data, err := toml.Marshal(out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return err
	}

	s.loaded = out
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
