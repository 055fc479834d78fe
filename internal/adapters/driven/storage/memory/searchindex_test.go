package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

func entry(id, searchable string) domain.SearchEntry {
	return domain.SearchEntry{
		ID:             id,
		SearchableText: searchable,
		Category:       domain.CategoryUnknown,
		Priority:       domain.PriorityLow,
		Type:           domain.ContentTypeText,
	}
}

func TestSearchIndex_UpsertAndQuery(t *testing.T) {
	index := NewSearchIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, entry("a", "dashboard system health overview")))
	require.NoError(t, index.Upsert(ctx, entry("b", "unrelated text about weather")))

	results, err := index.Query(ctx, "dashboard", domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, 1, results[0].Relevance)
}

func TestSearchIndex_Query_SubstringMatch(t *testing.T) {
	index := NewSearchIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, entry("a", "service health dashboard")))

	// The whole query must appear as a contiguous substring.
	results, err := index.Query(ctx, "health dash", domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, results, 1)

	results, err = index.Query(ctx, "dashboard health", domain.SearchFilters{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchIndex_Query_CaseInsensitive(t *testing.T) {
	index := NewSearchIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, entry("a", "metric collection service")))

	results, err := index.Query(ctx, "METRIC", domain.SearchFilters{})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchIndex_Query_RelevanceSumsWordCounts(t *testing.T) {
	index := NewSearchIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, entry("low", "system check")))
	require.NoError(t, index.Upsert(ctx, entry("high", "system check system status system check")))

	results, err := index.Query(ctx, "system check", domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "high", results[0].ID)
	// "system" occurs 3 times, "check" twice.
	assert.Equal(t, 5, results[0].Relevance)
	assert.Equal(t, "low", results[1].ID)
	assert.Equal(t, 2, results[1].Relevance)
}

func TestSearchIndex_Query_StableTies(t *testing.T) {
	index := NewSearchIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, entry("first", "alpha status report")))
	require.NoError(t, index.Upsert(ctx, entry("second", "beta status report")))

	results, err := index.Query(ctx, "status", domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	// Equal relevance keeps insertion order.
	assert.Equal(t, "first", results[0].ID)
	assert.Equal(t, "second", results[1].ID)
}

func TestSearchIndex_Query_Filters(t *testing.T) {
	index := NewSearchIndex()
	ctx := context.Background()

	dash := entry("dash", "dashboard overview")
	dash.Category = domain.CategoryDashboard
	dash.Priority = domain.PriorityHigh
	require.NoError(t, index.Upsert(ctx, dash))

	sys := entry("sys", "system dashboard notes")
	sys.Category = domain.CategorySystem
	sys.Priority = domain.PriorityLow
	require.NoError(t, index.Upsert(ctx, sys))

	results, err := index.Query(ctx, "dashboard", domain.SearchFilters{Priority: domain.PriorityHigh})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "dash", results[0].ID)

	// All supplied filters must pass.
	results, err = index.Query(ctx, "dashboard", domain.SearchFilters{
		Category: domain.CategoryDashboard,
		Priority: domain.PriorityLow,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchIndex_Query_NoMatch_EmptyNotNil(t *testing.T) {
	index := NewSearchIndex()

	results, err := index.Query(context.Background(), "anything", domain.SearchFilters{})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchIndex_Upsert_Replaces(t *testing.T) {
	index := NewSearchIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, entry("a", "old text")))
	require.NoError(t, index.Upsert(ctx, entry("a", "new text")))

	all, err := index.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new text", all[0].SearchableText)
}

func TestSearchIndex_DeleteAndClear(t *testing.T) {
	index := NewSearchIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, entry("a", "one")))
	require.NoError(t, index.Upsert(ctx, entry("b", "two")))

	require.NoError(t, index.Delete(ctx, "a"))
	all, err := index.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)

	// Deleting an absent ID is a no-op.
	require.NoError(t, index.Delete(ctx, "missing"))

	require.NoError(t, index.Clear(ctx))
	all, err = index.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
