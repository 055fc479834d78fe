package cli

import (
	"context"
	"errors"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
	"github.com/probe-labs/scout-cli/internal/core/ports/driving"
)

// mockEngine is a configurable driving.DiscoveryEngine test double.
type mockEngine struct {
	results  []domain.SearchResult
	status   domain.IndexingStatus
	insights domain.Insights
	snapshot *domain.Snapshot
	err      error
}

var _ driving.DiscoveryEngine = (*mockEngine)(nil)

func (m *mockEngine) OnStructuralContentCaptured(context.Context, *domain.RawElement) {}
func (m *mockEngine) OnNetworkResponseCaptured(context.Context, string, string)       {}
func (m *mockEngine) OnPersistedValueChanged(context.Context, string, string, string) {
}
func (m *mockEngine) Index(context.Context, *domain.RawEvent, domain.Source) {}

func (m *mockEngine) Search(context.Context, string, domain.SearchFilters) ([]domain.SearchResult, error) {
	return m.results, m.err
}

func (m *mockEngine) Neighbors(context.Context, string) ([]domain.Relationship, error) {
	return nil, m.err
}

func (m *mockEngine) Status(context.Context) (domain.IndexingStatus, error) {
	return m.status, m.err
}

func (m *mockEngine) Insights(context.Context) (domain.Insights, error) {
	return m.insights, m.err
}

func (m *mockEngine) ExportSnapshot(context.Context) (*domain.Snapshot, error) {
	return m.snapshot, m.err
}

func (m *mockEngine) Refresh(context.Context) error       { return m.err }
func (m *mockEngine) FullDiscovery(context.Context) error { return m.err }
func (m *mockEngine) Shutdown(context.Context) error      { return m.err }

// mockSnapshotStore records saves and serves a fixed listing.
type mockSnapshotStore struct {
	saved []*domain.Snapshot
	infos []driven.SnapshotInfo
	err   error
}

var _ driven.SnapshotStore = (*mockSnapshotStore)(nil)

func (m *mockSnapshotStore) Save(_ context.Context, snapshot *domain.Snapshot) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, snapshot)
	return nil
}

func (m *mockSnapshotStore) Get(context.Context, string) (*domain.Snapshot, error) {
	return nil, errors.New("not implemented")
}

func (m *mockSnapshotStore) List(context.Context) ([]driven.SnapshotInfo, error) {
	return m.infos, m.err
}

func (m *mockSnapshotStore) Close() error { return nil }

// setupTestServices injects mock services and returns a cleanup that
// restores the previous wiring.
func setupTestServices(mock *mockEngine, store driven.SnapshotStore) func() {
	oldEngine := engine
	oldSnapshots := snapshots
	engine = mock
	snapshots = store
	return func() {
		engine = oldEngine
		snapshots = oldSnapshots
	}
}
