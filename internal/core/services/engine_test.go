package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probe-labs/scout-cli/internal/adapters/driven/storage/memory"
	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driving"
	"github.com/probe-labs/scout-cli/internal/normalisers"
	"github.com/probe-labs/scout-cli/internal/normalisers/dom"
	"github.com/probe-labs/scout-cli/internal/normalisers/network"
	"github.com/probe-labs/scout-cli/internal/normalisers/storage"
)

// newTestEngine wires an engine over the real in-memory stores, the way
// the composition root does.
func newTestEngine(retention time.Duration) (*Engine, *memory.ContentStore, *memory.MetadataStore, *memory.SearchIndex) {
	registry := normalisers.NewRegistry()
	registry.Register(dom.New())
	registry.Register(network.New())
	registry.Register(storage.New())

	contentStore := memory.NewContentStore()
	metadataStore := memory.NewMetadataStore()
	searchIndex := memory.NewSearchIndex()
	engine := NewEngine(contentStore, metadataStore, memory.NewGraph(), searchIndex, registry, retention)
	return engine, contentStore, metadataStore, searchIndex
}

func domEvent(id, text string) *domain.RawEvent {
	return &domain.RawEvent{
		Element: &domain.RawElement{Tag: "div", ID: id, Text: text},
	}
}

func TestEngine_Index_Commit(t *testing.T) {
	engine, contentStore, metadataStore, searchIndex := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.Index(ctx, domEvent("panel", "Dashboard system health metric"), domain.SourceDOM)

	records, err := contentStore.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	record := records[0]

	// Classification ran: both dashboard and system fire, system wins.
	assert.Equal(t, domain.CategorySystem, record.Classification.Category)
	assert.NotEmpty(t, record.SearchableText)

	// Enrichment committed alongside.
	enrichment, err := metadataStore.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, enrichment.WordCount)

	// Projection totality: exactly one entry with the same ID.
	entries, err := searchIndex.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, record.ID, entries[0].ID)
}

func TestEngine_Index_DuplicateDropped(t *testing.T) {
	engine, _, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.Index(ctx, domEvent("panel", "Dashboard system health metric"), domain.SourceDOM)
	engine.Index(ctx, domEvent("panel", "Dashboard system health metric"), domain.SourceDOM)

	status, err := engine.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalContent)
	assert.Equal(t, 1, status.IndexedContent)
	assert.Zero(t, status.FailedContent)
}

func TestEngine_Index_SameTextDifferentStructureIsDuplicate(t *testing.T) {
	engine, contentStore, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	// Structurally distinct captures of identical text from the same
	// provenance are redundant: identity is not the dedup key.
	engine.Index(ctx, domEvent("panel-a", "identical body text"), domain.SourceDOM)
	engine.Index(ctx, domEvent("panel-b", "identical body text"), domain.SourceDOM)

	count, err := contentStore.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEngine_Index_SameTextDifferentSourceSurvives(t *testing.T) {
	engine, contentStore, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.Index(ctx, domEvent("panel", "shared text"), domain.SourceDOM)
	engine.Index(ctx, &domain.RawEvent{Key: "cache-entry", Value: "shared text"}, domain.SourceStorage)

	count, err := contentStore.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestEngine_Index_Unextractable_SilentNoOp(t *testing.T) {
	engine, contentStore, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	// No title, no text.
	engine.Index(ctx, &domain.RawEvent{Element: &domain.RawElement{Tag: "div"}}, domain.SourceDOM)
	// Malformed event for the source.
	engine.Index(ctx, &domain.RawEvent{}, domain.SourceAJAX)
	// Unknown provenance.
	engine.Index(ctx, domEvent("x", "text"), domain.Source("clipboard"))

	count, err := contentStore.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	status, err := engine.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.FailedContent)
	assert.Zero(t, status.IndexedContent)
}

func TestEngine_ObserverCallbacks(t *testing.T) {
	engine, contentStore, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.OnStructuralContentCaptured(ctx, &domain.RawElement{Tag: "div", ID: "a", Text: "structural"})
	engine.OnNetworkResponseCaptured(ctx, "https://api.example.com/users", `{"users": []}`)
	engine.OnPersistedValueChanged(ctx, "prefs", `{"theme":"dark"}`, "localStorage")

	count, err := contentStore.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestEngine_Search_RankedAndFiltered(t *testing.T) {
	engine, _, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	// One high-priority dashboard record and one low-priority record.
	engine.Index(ctx, domEvent("dash", "dashboard overview for operators"), domain.SourceDOM)
	engine.Index(ctx, domEvent("other", "notes mentioning dashboard styling"), domain.SourceDOM)

	results, err := engine.Search(ctx, "dashboard", domain.SearchFilters{
		Priority: domain.PriorityHigh,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, domain.PriorityHigh, r.Record.Classification.Priority)
	}
}

func TestEngine_Search_FilterExcludes(t *testing.T) {
	engine, _, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.Index(ctx, domEvent("dash", "dashboard overview"), domain.SourceDOM)
	engine.Index(ctx, domEvent("sys", "system dashboard notes"), domain.SourceDOM)

	// The second record classifies as system (last match wins), so a
	// dashboard-category filter returns only the first.
	results, err := engine.Search(ctx, "dashboard", domain.SearchFilters{
		Category: domain.CategoryDashboard,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.CategoryDashboard, results[0].Record.Classification.Category)
}

func TestEngine_Search_RelevanceOrdering(t *testing.T) {
	engine, _, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.Index(ctx, domEvent("sparse", "metric shown once"), domain.SourceDOM)
	engine.Index(ctx, domEvent("dense", "metric metric metric everywhere"), domain.SourceDOM)

	results, err := engine.Search(ctx, "metric", domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Greater(t, results[0].Relevance, results[1].Relevance)
	assert.Equal(t, "metric metric metric everywhere", results[0].Record.Text)
}

func TestEngine_Search_EmptyQueryAndNoMatch(t *testing.T) {
	engine, _, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.Index(ctx, domEvent("a", "some text"), domain.SourceDOM)

	results, err := engine.Search(ctx, "", domain.SearchFilters{})
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = engine.Search(ctx, "absent", domain.SearchFilters{})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestEngine_Neighbors(t *testing.T) {
	engine, _, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	raw := &domain.RawEvent{
		Element: &domain.RawElement{
			Tag:   "section",
			ID:    "panel",
			Text:  "linked content",
			Links: []string{"https://example.com/docs"},
		},
	}
	engine.Index(ctx, raw, domain.SourceDOM)

	records, err := engine.Search(ctx, "linked", domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	neighbors, err := engine.Neighbors(ctx, records[0].Record.ID)
	require.NoError(t, err)
	require.Len(t, neighbors, 1)
	assert.Equal(t, domain.RelationLink, neighbors[0].Type)
}

func TestEngine_Status_TotalTracksLiveIndex(t *testing.T) {
	engine, contentStore, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.Index(ctx, domEvent("a", "first record"), domain.SourceDOM)
	engine.Index(ctx, domEvent("b", "second record"), domain.SourceDOM)

	status, err := engine.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalContent)
	require.NotNil(t, status.LastIndexed)

	// Drop one record behind the tracker's back: the total must follow
	// the live index, not an internal counter.
	records, err := contentStore.List(ctx)
	require.NoError(t, err)
	require.NoError(t, contentStore.Delete(ctx, records[0].ID))

	status, err = engine.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalContent)
	assert.Equal(t, 2, status.IndexedContent)
}

func TestEngine_Insights(t *testing.T) {
	engine, _, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.Index(ctx, domEvent("dash", "dashboard overview"), domain.SourceDOM)
	engine.Index(ctx, domEvent("plain", "plain note"), domain.SourceDOM)

	insights, err := engine.Insights(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, insights.Status.TotalContent)
	assert.Equal(t, 2, insights.ByType[domain.ContentTypeText])
	assert.Equal(t, 1, insights.ByCategory[domain.CategoryDashboard])
	assert.Equal(t, 1, insights.ByCategory[domain.CategoryUnknown])
	assert.Equal(t, 1, insights.ByPriority[domain.PriorityHigh])

	// Fewer than five dashboard records: the coverage recommendation
	// fires.
	assert.Contains(t, insights.Recommendations, recommendCoverage)
	// Sparse graph: the linking recommendation fires too.
	assert.Contains(t, insights.Recommendations, recommendLinking)
	// Quality floor is 0.5, so the quality recommendation cannot fire
	// from enriched records.
	assert.NotContains(t, insights.Recommendations, recommendQuality)
}

func TestEngine_Insights_EmptyIndex(t *testing.T) {
	engine, _, _, _ := newTestEngine(time.Hour)

	insights, err := engine.Insights(context.Background())
	require.NoError(t, err)
	assert.Zero(t, insights.Status.TotalContent)
	assert.Zero(t, insights.Relationships.AverageEdgesPerRecord)
	assert.Contains(t, insights.Recommendations, recommendCoverage)
}

func TestEngine_Refresh_EvictsExpiredAtomically(t *testing.T) {
	engine, contentStore, metadataStore, searchIndex := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.Index(ctx, domEvent("old", "aged out content"), domain.SourceDOM)
	engine.Index(ctx, domEvent("new", "fresh content"), domain.SourceDOM)

	// Age the first record past the retention window.
	records, err := contentStore.List(ctx)
	require.NoError(t, err)
	var oldID string
	for i := range records {
		if records[i].Text == "aged out content" {
			records[i].Timestamp = time.Now().Add(-2 * time.Hour)
			require.NoError(t, contentStore.Save(ctx, &records[i]))
			oldID = records[i].ID
		}
	}
	require.NotEmpty(t, oldID)

	require.NoError(t, engine.Refresh(ctx))

	// Gone from every projection-coupled store, present in none.
	_, err = contentStore.Get(ctx, oldID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = metadataStore.Get(ctx, oldID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	entries, err := searchIndex.All(ctx)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEqual(t, oldID, entry.ID)
	}

	// The fresh record is untouched.
	count, err := contentStore.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEngine_Refresh_RescansStructuralSource(t *testing.T) {
	engine, contentStore, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.SetStructuralSource(driving.StructuralSourceFunc(
		func(context.Context) ([]domain.RawElement, error) {
			return []domain.RawElement{
				{Tag: "div", ID: "scanned", Text: "scanned content"},
			}, nil
		}))

	require.NoError(t, engine.Refresh(ctx))
	count, err := contentStore.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Re-scanning unchanged content dedupes away.
	require.NoError(t, engine.Refresh(ctx))
	count, err = contentStore.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEngine_FullDiscovery_ResetsStatusAndRebuildsEdges(t *testing.T) {
	engine, _, _, _ := newTestEngine(time.Hour)
	ctx := context.Background()

	raw := &domain.RawEvent{
		Element: &domain.RawElement{
			Tag:   "section",
			ID:    "panel",
			Text:  "content with a link",
			Links: []string{"https://example.com"},
		},
	}
	engine.Index(ctx, raw, domain.SourceDOM)

	require.NoError(t, engine.FullDiscovery(ctx))

	status, err := engine.Status(ctx)
	require.NoError(t, err)
	// Counters reset, but the live total still reflects the index.
	assert.Zero(t, status.IndexedContent)
	assert.Equal(t, 1, status.TotalContent)
	assert.Nil(t, status.LastIndexed)

	// Edges rebuilt from the stored records, not duplicated.
	records, err := engine.Search(ctx, "link", domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	neighbors, err := engine.Neighbors(ctx, records[0].Record.ID)
	require.NoError(t, err)
	assert.Len(t, neighbors, 1)
}

func TestEngine_Shutdown_ClearsEverything(t *testing.T) {
	engine, contentStore, metadataStore, searchIndex := newTestEngine(time.Hour)
	ctx := context.Background()

	engine.Index(ctx, domEvent("a", "some content"), domain.SourceDOM)
	require.NoError(t, engine.Shutdown(ctx))

	count, err := contentStore.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	all, err := metadataStore.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	entries, err := searchIndex.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Events after shutdown are captured but never indexed.
	engine.Index(ctx, domEvent("b", "late content"), domain.SourceDOM)
	status, err := engine.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.TotalContent)
	assert.Equal(t, 1, status.PendingContent)

	// Shutdown is idempotent.
	require.NoError(t, engine.Shutdown(ctx))
}

func TestEngine_ConcurrentIngest(t *testing.T) {
	engine, contentStore, _, searchIndex := newTestEngine(time.Hour)
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			// Every goroutine races the same capture; exactly one
			// commit may survive deduplication.
			engine.Index(ctx, domEvent("shared", "contended text"), domain.SourceDOM)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	count, err := contentStore.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	entries, err := searchIndex.All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
