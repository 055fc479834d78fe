package mcp

import (
	"context"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
	"github.com/probe-labs/scout-cli/internal/core/ports/driving"
)

// mockEngine is a configurable driving.DiscoveryEngine test double.
type mockEngine struct {
	results       []domain.SearchResult
	relationships []domain.Relationship
	status        domain.IndexingStatus
	insights      domain.Insights
	err           error

	lastQuery   string
	lastFilters domain.SearchFilters
}

var _ driving.DiscoveryEngine = (*mockEngine)(nil)

func (m *mockEngine) OnStructuralContentCaptured(context.Context, *domain.RawElement) {}
func (m *mockEngine) OnNetworkResponseCaptured(context.Context, string, string)       {}
func (m *mockEngine) OnPersistedValueChanged(context.Context, string, string, string) {}
func (m *mockEngine) Index(context.Context, *domain.RawEvent, domain.Source)          {}

func (m *mockEngine) Search(_ context.Context, query string, filters domain.SearchFilters) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastFilters = filters
	return m.results, m.err
}

func (m *mockEngine) Neighbors(context.Context, string) ([]domain.Relationship, error) {
	return m.relationships, m.err
}

func (m *mockEngine) Status(context.Context) (domain.IndexingStatus, error) {
	return m.status, m.err
}

func (m *mockEngine) Insights(context.Context) (domain.Insights, error) {
	return m.insights, m.err
}

func (m *mockEngine) ExportSnapshot(context.Context) (*domain.Snapshot, error) {
	return nil, m.err
}

func (m *mockEngine) Refresh(context.Context) error       { return m.err }
func (m *mockEngine) FullDiscovery(context.Context) error { return m.err }
func (m *mockEngine) Shutdown(context.Context) error      { return m.err }

// mockSnapshotStore is a configurable driven.SnapshotStore test double.
type mockSnapshotStore struct {
	infos []driven.SnapshotInfo
	err   error
}

var _ driven.SnapshotStore = (*mockSnapshotStore)(nil)

func (m *mockSnapshotStore) Save(context.Context, *domain.Snapshot) error { return m.err }

func (m *mockSnapshotStore) Get(context.Context, string) (*domain.Snapshot, error) {
	return nil, m.err
}

func (m *mockSnapshotStore) List(context.Context) ([]driven.SnapshotInfo, error) {
	return m.infos, m.err
}

func (m *mockSnapshotStore) Close() error { return nil }
