package driving

import (
	"context"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// DiscoveryEngine is the engine's full driving surface.
//
// Ingestion is best-effort: the observer callbacks and Index never
// return an error to the caller. Duplicates and unextractable captures
// no-op silently; unexpected failures are counted and logged.
type DiscoveryEngine interface {
	// OnStructuralContentCaptured ingests one discovered structural unit.
	OnStructuralContentCaptured(ctx context.Context, element *domain.RawElement)

	// OnNetworkResponseCaptured ingests one observed network response.
	OnNetworkResponseCaptured(ctx context.Context, url, payload string)

	// OnPersistedValueChanged ingests one persisted key/value change.
	OnPersistedValueChanged(ctx context.Context, key, value, storeKind string)

	// Index ingests a raw event from the given provenance.
	Index(ctx context.Context, raw *domain.RawEvent, source domain.Source)

	// Search returns records ranked by keyword relevance.
	// Malformed queries and filter combinations yield an empty result,
	// never an error surfaced as a failure; search is advisory.
	Search(ctx context.Context, query string, filters domain.SearchFilters) ([]domain.SearchResult, error)

	// Neighbors returns the ordered relationship list for a record ID.
	Neighbors(ctx context.Context, id string) ([]domain.Relationship, error)

	// Status returns the current indexing status snapshot.
	Status(ctx context.Context) (domain.IndexingStatus, error)

	// Insights returns distributions, graph stats and recommendations.
	Insights(ctx context.Context) (domain.Insights, error)

	// ExportSnapshot returns a full serialisable dump of all four stores
	// plus insights.
	ExportSnapshot(ctx context.Context) (*domain.Snapshot, error)

	// Refresh re-scans currently-visible structural content and evicts
	// records older than the retention window from all owned stores.
	Refresh(ctx context.Context) error

	// FullDiscovery resets the indexing status, re-derives all
	// structural content, and rebuilds relationship edges for every
	// indexed record.
	FullDiscovery(ctx context.Context) error

	// Shutdown stops background work and clears all stores.
	// After Shutdown the engine accepts no further events.
	Shutdown(ctx context.Context) error
}

// StructuralSource supplies the currently-visible structural content for
// scheduled re-scans. It is an external collaborator; the engine never
// reaches into the host surface itself.
type StructuralSource interface {
	// Scan returns the structural units currently visible.
	Scan(ctx context.Context) ([]domain.RawElement, error)
}

// StructuralSourceFunc adapts a function to the StructuralSource interface.
type StructuralSourceFunc func(ctx context.Context) ([]domain.RawElement, error)

// Scan calls the wrapped function.
func (f StructuralSourceFunc) Scan(ctx context.Context) ([]domain.RawElement, error) {
	return f(ctx)
}
