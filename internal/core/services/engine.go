package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
	"github.com/probe-labs/scout-cli/internal/core/ports/driving"
	"github.com/probe-labs/scout-cli/internal/logger"
)

// Ensure Engine implements the interface.
var _ driving.DiscoveryEngine = (*Engine)(nil)

// Recommendation texts produced by the fixed insight heuristics.
const (
	recommendCoverage = "Few dashboard records discovered; consider widening structural capture for better coverage"
	recommendQuality  = "Over 30% of records score below 0.5 quality; review source extraction"
	recommendLinking  = "Low relationship density; enable deeper structural capture to link related content"
)

// coverageFloor is the dashboard-category count below which the
// coverage recommendation fires.
const coverageFloor = 5

// Engine is the content discovery and indexing engine. It exclusively
// owns the four stores; collaborators only hand it raw events and read
// query results.
//
// Every mutating pipeline (build, dedupe, classify, enrich, commit,
// graph update, projection update) runs as one atomic unit under a
// single mutex, so the duplicate check can never observe a
// half-committed record. Reads go through the stores' own locks and see
// only fully committed state.
type Engine struct {
	contentStore  driven.ContentStore
	metadataStore driven.MetadataStore
	graph         driven.RelationshipGraph
	searchIndex   driven.SearchIndex
	registry      driven.NormaliserRegistry
	classifier    *Classifier
	enricher      *Enricher
	status        *StatusTracker
	structural    driving.StructuralSource
	retention     time.Duration

	mu     sync.Mutex
	closed bool
}

// NewEngine creates an engine over the four owned stores.
// The structural source is optional; without it the scheduler's
// re-scans only evict.
func NewEngine(
	contentStore driven.ContentStore,
	metadataStore driven.MetadataStore,
	graph driven.RelationshipGraph,
	searchIndex driven.SearchIndex,
	registry driven.NormaliserRegistry,
	retention time.Duration,
) *Engine {
	return &Engine{
		contentStore:  contentStore,
		metadataStore: metadataStore,
		graph:         graph,
		searchIndex:   searchIndex,
		registry:      registry,
		classifier:    NewClassifier(),
		enricher:      NewEnricher(),
		status:        NewStatusTracker(),
		retention:     retention,
	}
}

// SetStructuralSource sets the collaborator that supplies
// currently-visible structural content for scheduled re-scans.
func (e *Engine) SetStructuralSource(source driving.StructuralSource) {
	e.structural = source
}

// OnStructuralContentCaptured ingests one discovered structural unit.
func (e *Engine) OnStructuralContentCaptured(ctx context.Context, element *domain.RawElement) {
	e.Index(ctx, &domain.RawEvent{Element: element}, domain.SourceDOM)
}

// OnNetworkResponseCaptured ingests one observed network response.
func (e *Engine) OnNetworkResponseCaptured(ctx context.Context, url, payload string) {
	e.Index(ctx, &domain.RawEvent{URL: url, Payload: payload}, domain.SourceAJAX)
}

// OnPersistedValueChanged ingests one persisted key/value change.
func (e *Engine) OnPersistedValueChanged(ctx context.Context, key, value, storeKind string) {
	e.Index(ctx, &domain.RawEvent{Key: key, Value: value, StoreKind: storeKind}, domain.SourceStorage)
}

// Index ingests a raw event. It is best-effort: duplicates and
// unextractable captures no-op silently, unexpected failures are
// counted and logged, and nothing propagates to the caller.
func (e *Engine) Index(ctx context.Context, raw *domain.RawEvent, source domain.Source) {
	// 1. Build the candidate record (pure transform, no lock needed).
	record, err := e.registry.Build(ctx, raw, source)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoContent),
			errors.Is(err, domain.ErrInvalidInput),
			errors.Is(err, domain.ErrUnsupportedSource):
			// Extraction failure: silent no-op.
			logger.Debug("Skipping unextractable %s capture: %v", source, err)
		default:
			e.status.Record(domain.OutcomeFailed)
			logger.Error("Build failed for %s capture: %v", source, err)
		}
		return
	}

	// 2..7 happen under the single mutation lock.
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		// Captured but never indexed.
		e.status.Record(domain.OutcomePending)
		return
	}

	if err := e.commit(ctx, record); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			logger.Debug("Dropping duplicate %s capture %s", source, record.ID)
			return
		}
		e.status.Record(domain.OutcomeFailed)
		logger.Error("Indexing failed for %s: %v", record.ID, err)
		return
	}

	e.status.Record(domain.OutcomeIndexed)
	logger.Debug("Indexed %s (%s, %s)", record.ID, record.Type, record.Classification.Category)
}

// commit runs dedupe, classify, enrich and the store writes for one
// candidate. Caller holds the mutation lock.
func (e *Engine) commit(ctx context.Context, record *domain.ContentRecord) error {
	// 2. Dedupe on the (text, source) pair.
	dup, err := e.contentStore.HasTextSource(ctx, record.Text, record.Source)
	if err != nil {
		return fmt.Errorf("dedupe check: %w", err)
	}
	if dup {
		return domain.ErrDuplicate
	}

	// 3. Classify, then precompute the searchable text.
	record.Classification = e.classifier.Classify(record)
	record.SearchableText = buildSearchableText(record)

	// 4. Enrich.
	enrichment := e.enricher.Enrich(record)

	// 5. Commit to the primary index and metadata store.
	if err := e.contentStore.Save(ctx, record); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	if err := e.metadataStore.Save(ctx, record.ID, enrichment); err != nil {
		return fmt.Errorf("save enrichment: %w", err)
	}

	// 6. Relationship graph update.
	if err := e.graph.Add(ctx, record.ID, record.Relationships); err != nil {
		return fmt.Errorf("graph update: %w", err)
	}

	// 7. Search projection update.
	if err := e.searchIndex.Upsert(ctx, project(record)); err != nil {
		return fmt.Errorf("project record: %w", err)
	}
	return nil
}

// Search returns records ranked by keyword relevance. Search is
// advisory: empty queries and unmatched filters yield an empty result.
func (e *Engine) Search(ctx context.Context, query string, filters domain.SearchFilters) ([]domain.SearchResult, error) {
	logger.Section("Search")
	logger.Debug("Query: %q filters: %+v", query, filters)

	scored, err := e.searchIndex.Query(ctx, query, filters)
	if err != nil {
		logger.Warn("Search index query failed: %v", err)
		return []domain.SearchResult{}, nil
	}

	results := make([]domain.SearchResult, 0, len(scored))
	for _, hit := range scored {
		record, err := e.contentStore.Get(ctx, hit.ID)
		if err != nil {
			// Projection totality means this should not happen; skip
			// rather than fail an advisory query.
			logger.Warn("Search hit %s missing from primary index", hit.ID)
			continue
		}
		results = append(results, domain.SearchResult{
			Record:    *record,
			Relevance: hit.Relevance,
		})
	}
	logger.Info("Search returned %d results", len(results))
	return results, nil
}

// Neighbors returns the ordered relationship list for a record ID.
func (e *Engine) Neighbors(ctx context.Context, id string) ([]domain.Relationship, error) {
	return e.graph.Neighbors(ctx, id)
}

// Status returns the current indexing status snapshot.
func (e *Engine) Status(ctx context.Context) (domain.IndexingStatus, error) {
	total, err := e.contentStore.Count(ctx)
	if err != nil {
		return domain.IndexingStatus{}, fmt.Errorf("count records: %w", err)
	}
	return e.status.Snapshot(total), nil
}

// Insights aggregates distributions, graph stats and recommendations.
func (e *Engine) Insights(ctx context.Context) (domain.Insights, error) {
	records, err := e.contentStore.List(ctx)
	if err != nil {
		return domain.Insights{}, fmt.Errorf("list records: %w", err)
	}

	insights := domain.Insights{
		Status:     e.status.Snapshot(len(records)),
		ByType:     make(map[domain.ContentType]int),
		ByCategory: make(map[domain.Category]int),
		ByPriority: make(map[domain.Priority]int),
	}
	for i := range records {
		insights.ByType[records[i].Type]++
		insights.ByCategory[records[i].Classification.Category]++
		insights.ByPriority[records[i].Classification.Priority]++
	}

	insights.Relationships, err = e.graph.Stats(ctx, len(records))
	if err != nil {
		return domain.Insights{}, fmt.Errorf("graph stats: %w", err)
	}

	enrichments, err := e.metadataStore.All(ctx)
	if err != nil {
		return domain.Insights{}, fmt.Errorf("list enrichments: %w", err)
	}
	insights.Recommendations = recommendations(insights, enrichments, len(records))
	return insights, nil
}

// recommendations applies the fixed insight heuristics.
func recommendations(insights domain.Insights, enrichments map[string]domain.Enrichment, total int) []string {
	recs := make([]string, 0, 3)

	if insights.ByCategory[domain.CategoryDashboard] < coverageFloor {
		recs = append(recs, recommendCoverage)
	}

	if total > 0 {
		lowQuality := 0
		for _, e := range enrichments {
			if e.QualityScore < 0.5 {
				lowQuality++
			}
		}
		if float64(lowQuality)/float64(total) > 0.3 {
			recs = append(recs, recommendQuality)
		}
	}

	if insights.Relationships.AverageEdgesPerRecord < 2 {
		recs = append(recs, recommendLinking)
	}
	return recs
}

// ExportSnapshot returns a full serialisable dump of all four stores
// plus insights.
func (e *Engine) ExportSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	records, err := e.contentStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	enrichments, err := e.metadataStore.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enrichments: %w", err)
	}
	graph, err := e.graph.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dump graph: %w", err)
	}
	entries, err := e.searchIndex.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dump search index: %w", err)
	}
	insights, err := e.Insights(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now(),
		Records:     records,
		Enrichments: enrichments,
		Graph:       graph,
		Entries:     entries,
		Insights:    insights,
	}, nil
}

// Refresh re-scans currently-visible structural content, then evicts
// records older than the retention window. Eviction removes a record
// from the primary index, the metadata store and the search projection
// together, or not at all; stale graph adjacency is purged by the next
// full-discovery rebuild.
func (e *Engine) Refresh(ctx context.Context) error {
	logger.Section("Incremental Refresh")

	e.rescanStructural(ctx)

	cutoff := time.Now().Add(-e.retention)
	records, err := e.contentStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	evicted := 0
	for i := range records {
		if !records[i].Timestamp.Before(cutoff) {
			continue
		}
		if err := e.evictLocked(ctx, records[i].ID); err != nil {
			return err
		}
		evicted++
	}
	if evicted > 0 {
		logger.Info("Evicted %d expired records", evicted)
	}
	return nil
}

// evictLocked removes one record from the three projection-coupled
// stores. Caller holds the mutation lock.
func (e *Engine) evictLocked(ctx context.Context, id string) error {
	if err := e.contentStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("evict %s from index: %w", id, err)
	}
	if err := e.metadataStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("evict %s from metadata: %w", id, err)
	}
	if err := e.searchIndex.Delete(ctx, id); err != nil {
		return fmt.Errorf("evict %s from projection: %w", id, err)
	}
	return nil
}

// FullDiscovery resets the status counters, re-derives structural
// content, and rebuilds relationship edges for every indexed record.
// External-source discovery is a collaborator concern and intentionally
// a no-op here.
func (e *Engine) FullDiscovery(ctx context.Context) error {
	logger.Section("Full Discovery")

	e.status.Reset()
	e.rescanStructural(ctx)

	records, err := e.contentStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.graph.Clear(ctx); err != nil {
		return fmt.Errorf("clear graph: %w", err)
	}
	for i := range records {
		if err := e.graph.Add(ctx, records[i].ID, records[i].Relationships); err != nil {
			return fmt.Errorf("rebuild edges for %s: %w", records[i].ID, err)
		}
	}
	logger.Info("Rebuilt relationship edges for %d records", len(records))
	return nil
}

// rescanStructural ingests the currently-visible structural content,
// if a structural source is attached. Re-ingesting unchanged elements
// dedupes away; only changed or new content commits.
func (e *Engine) rescanStructural(ctx context.Context) {
	if e.structural == nil {
		return
	}
	elements, err := e.structural.Scan(ctx)
	if err != nil {
		logger.Warn("Structural scan failed: %v", err)
		return
	}
	for i := range elements {
		e.OnStructuralContentCaptured(ctx, &elements[i])
	}
}

// Shutdown stops accepting events and clears all four stores.
// No partial teardown state is observable afterwards.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true

	var errs []error
	for name, clear := range map[string]func(context.Context) error{
		"content":  e.contentStore.Clear,
		"metadata": e.metadataStore.Clear,
		"graph":    e.graph.Clear,
		"search":   e.searchIndex.Clear,
	} {
		if err := clear(ctx); err != nil {
			errs = append(errs, fmt.Errorf("clear %s store: %w", name, err))
		}
	}
	e.status.Reset()
	logger.Info("Engine shut down, stores cleared")
	return errors.Join(errs...)
}

// buildSearchableText joins title, description, text and tags with
// single spaces, lowercased. All matching and ranking runs against it.
func buildSearchableText(record *domain.ContentRecord) string {
	parts := make([]string, 0, 3+len(record.Classification.Tags))
	for _, p := range []string{record.Title, record.Description, record.Text} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, record.Classification.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// project rebuilds the search entry for a record. Entries are always
// derived whole from their record, never edited in place.
func project(record *domain.ContentRecord) domain.SearchEntry {
	return domain.SearchEntry{
		ID:             record.ID,
		Title:          record.Title,
		Description:    record.Description,
		Text:           record.Text,
		Type:           record.Type,
		Category:       record.Classification.Category,
		Priority:       record.Classification.Priority,
		Tags:           record.Classification.Tags,
		SearchableText: record.SearchableText,
		Timestamp:      record.Timestamp,
	}
}
