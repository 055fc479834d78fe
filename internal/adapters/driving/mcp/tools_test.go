package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		engine := &mockEngine{
			results: []domain.SearchResult{
				{
					Record: domain.ContentRecord{
						ID:     "dom-panel-status",
						Title:  "Status",
						Text:   "service status overview",
						Source: domain.SourceDOM,
						Classification: domain.Classification{
							Category: domain.CategoryService,
							Priority: domain.PriorityHigh,
							Tags:     []string{"service", "status"},
						},
					},
					Relevance: 3,
				},
			},
		}

		server, err := NewServer(&Ports{Engine: engine})
		require.NoError(t, err)

		input := SearchInput{Query: "status", Category: "service"}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "status", engine.lastQuery)
		assert.Equal(t, domain.CategoryService, engine.lastFilters.Category)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "dom-panel-status", output.Results[0].RecordID)
		assert.Equal(t, "Status", output.Results[0].Title)
		assert.Equal(t, "service", output.Results[0].Category)
		assert.Equal(t, "high", output.Results[0].Priority)
		assert.Equal(t, "dom", output.Results[0].Source)
		assert.Equal(t, 3, output.Results[0].Relevance)
	})

	t.Run("limit truncates results", func(t *testing.T) {
		engine := &mockEngine{
			results: []domain.SearchResult{
				{Record: domain.ContentRecord{ID: "a"}, Relevance: 3},
				{Record: domain.ContentRecord{ID: "b"}, Relevance: 2},
				{Record: domain.ContentRecord{ID: "c"}, Relevance: 1},
			},
		}
		server, err := NewServer(&Ports{Engine: engine})
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "x", Limit: 2})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, "a", output.Results[0].RecordID)
		assert.Equal(t, "b", output.Results[1].RecordID)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		engine := &mockEngine{err: errors.New("index unavailable")}
		server, err := NewServer(&Ports{Engine: engine})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "index unavailable")
	})
}

func TestServer_handleInsights(t *testing.T) {
	ctx := context.Background()

	engine := &mockEngine{
		insights: domain.Insights{
			Status: domain.IndexingStatus{
				TotalContent:   4,
				IndexedContent: 4,
			},
			ByCategory: map[domain.Category]int{
				domain.CategoryDashboard: 1,
				domain.CategoryUnknown:   3,
			},
			ByPriority: map[domain.Priority]int{
				domain.PriorityHigh: 1,
				domain.PriorityLow:  3,
			},
			Relationships:   domain.RelationshipStats{TotalEdges: 2},
			Recommendations: []string{"widen capture"},
		},
	}
	server, err := NewServer(&Ports{Engine: engine})
	require.NoError(t, err)

	_, output, err := server.handleInsights(ctx, nil, InsightsInput{})

	require.NoError(t, err)
	assert.Equal(t, 4, output.TotalContent)
	assert.Equal(t, 1, output.ByCategory["dashboard"])
	assert.Equal(t, 3, output.ByPriority["low"])
	assert.Equal(t, 2, output.TotalEdges)
	assert.Equal(t, []string{"widen capture"}, output.Recommendations)
}
